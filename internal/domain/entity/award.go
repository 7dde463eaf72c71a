package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AwardedLine неизменяемая строка выигрыша. UnitPrice и Qty nil, если
// сохранённое значение не читается как число.
type AwardedLine struct {
	ID             uuid.UUID        `json:"id"`
	LotID          uuid.UUID        `json:"lot_id"`
	RoundID        *uuid.UUID       `json:"round_id,omitempty"`
	BuyerID        uuid.UUID        `json:"buyer_id"`
	LineItemID     uuid.UUID        `json:"line_item_id"`
	OfferID        *uuid.UUID       `json:"offer_id,omitempty"`
	UnitPrice      *decimal.Decimal `json:"unit_price"`
	Qty            *int             `json:"qty"`
	ExtendedAmount decimal.Decimal  `json:"extended_amount"`
	CreatedAt      time.Time        `json:"created_at"`
}

type Notification struct {
	TenantID uuid.UUID `json:"tenant_id"`
	LotID    uuid.UUID `json:"lot_id"`
	Kind     string    `json:"kind"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
}
