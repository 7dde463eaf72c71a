package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"lotmarket/internal/domain/value"
)

// EmailOffer — письмо покупателя, разобранное в таблицу предложений.
type EmailOffer struct {
	ID              uuid.UUID              `json:"id"`
	TenantID        uuid.UUID              `json:"tenant_id"`
	LotID           *uuid.UUID             `json:"lot_id,omitempty"`
	DealID          *uuid.UUID             `json:"deal_id,omitempty"`
	BatchID         *uuid.UUID             `json:"batch_id,omitempty"`
	ThreadID        *uuid.UUID             `json:"thread_id,omitempty"`
	RoundID         *uuid.UUID             `json:"round_id,omitempty"`
	SourceMessageID string                 `json:"source_message_id"`
	BuyerEmail      string                 `json:"buyer_email"`
	BuyerName       string                 `json:"buyer_name"`
	ReceivedAt      time.Time              `json:"received_at"`
	Currency        string                 `json:"currency"`
	RawHTML         string                 `json:"-"`
	Status          value.EmailOfferStatus `json:"status"`
	Lines           []EmailOfferLine       `json:"lines"`
}

type EmailOfferLine struct {
	ID          uuid.UUID         `json:"id"`
	LineRefRaw  string            `json:"line_ref"`
	LineRefNorm string            `json:"line_ref_normalized"`
	LineItemID  *uuid.UUID        `json:"line_item_id,omitempty"`
	Qty         *int              `json:"qty,omitempty"`
	Amount      *decimal.Decimal  `json:"amount,omitempty"`
	PricingMode value.PricingMode `json:"pricing_mode"`
	Notes       []string          `json:"notes,omitempty"`
}

// Offer агрегированное предложение для распределения: пришло через API или
// собрано из письма.
type Offer struct {
	ID           uuid.UUID         `json:"id"`
	TenantID     uuid.UUID         `json:"tenant_id"`
	LotID        *uuid.UUID        `json:"lot_id,omitempty"`
	DealID       *uuid.UUID        `json:"deal_id,omitempty"`
	RoundID      *uuid.UUID        `json:"round_id,omitempty"`
	BuyerID      *uuid.UUID        `json:"buyer_id,omitempty"`
	BuyerEmail   string            `json:"buyer_email,omitempty"`
	Source       value.OfferSource `json:"source"`
	Mode         value.OfferMode   `json:"mode"`
	Currency     string            `json:"currency"`
	TotalAmount  *decimal.Decimal  `json:"total_amount,omitempty"`
	Status       *string           `json:"status"`
	EmailOfferID *uuid.UUID        `json:"email_offer_id,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	Lines        []OfferLine       `json:"lines,omitempty"`
}

type OfferLine struct {
	ID             uuid.UUID       `json:"id"`
	LineItemID     uuid.UUID       `json:"line_item_id"`
	LineRef        string          `json:"line_ref"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Qty            int             `json:"qty"`
	ExtendedAmount decimal.Decimal `json:"extended_amount"`
}
