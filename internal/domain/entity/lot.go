package entity

import (
	"time"

	"github.com/google/uuid"

	"lotmarket/internal/domain/value"
)

type Lot struct {
	ID                uuid.UUID       `json:"id"`
	TenantID          uuid.UUID       `json:"tenant_id"`
	Title             string          `json:"title"`
	Currency          string          `json:"currency"`
	Status            value.LotStatus `json:"status"`
	POCount           int             `json:"po_count"`
	ExpectedPOCount   int             `json:"expected_po_count"`
	OffersReceivedAt  *time.Time      `json:"offers_received_at,omitempty"`
	SaleInProgressAt  *time.Time      `json:"sale_in_progress_at,omitempty"`
	ProcessingAt      *time.Time      `json:"processing_at,omitempty"`
	OrderProcessingAt *time.Time      `json:"order_processing_at,omitempty"`
	SoldAt            *time.Time      `json:"sold_at,omitempty"`
	ClosedAt          *time.Time      `json:"closed_at,omitempty"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// Round — пронумерованное окно торга внутри лота.
type Round struct {
	ID       uuid.UUID         `json:"id"`
	LotID    uuid.UUID         `json:"lot_id"`
	Number   int               `json:"round_number"`
	Status   value.RoundStatus `json:"status"`
	TenantID uuid.UUID         `json:"-"`
}

// Invite доступ покупателя к одному лоту. RoundID == nil следует за live
// раундом, пока первое разрешение его не закрепит.
type Invite struct {
	Token    string     `json:"token"`
	TenantID uuid.UUID  `json:"tenant_id"`
	LotID    uuid.UUID  `json:"lot_id"`
	BuyerID  uuid.UUID  `json:"buyer_id"`
	RoundID  *uuid.UUID `json:"round_id,omitempty"`
}

type LineItem struct {
	ID      uuid.UUID `json:"id"`
	LotID   uuid.UUID `json:"lot_id"`
	LineRef string    `json:"line_ref"`
	Qty     int       `json:"qty"`
}

type PurchaseOrder struct {
	ID          uuid.UUID  `json:"id"`
	TenantID    uuid.UUID  `json:"tenant_id"`
	LotID       uuid.UUID  `json:"lot_id"`
	BuyerID     *uuid.UUID `json:"buyer_id,omitempty"`
	DocumentURL string     `json:"document_url"`
	UploadedAt  time.Time  `json:"uploaded_at"`
}
