// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import "github.com/shopspring/decimal"

// OfferRequest Предложение покупателя по ссылке-приглашению
type OfferRequest struct {
	// Mode take_all или lines
	Mode string `json:"mode" validate:"required,oneof=take_all lines"`

	// Total Сумма за весь лот (только take_all)
	Total *decimal.Decimal `json:"total,omitempty" validate:"required_if=Mode take_all"`

	// Lines Построчные цены (только lines)
	Lines []OfferLineRequest `json:"lines,omitempty" validate:"required_if=Mode lines,dive"`
}

type OfferLineRequest struct {
	LineRef   string          `json:"line_ref" validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Qty       *int            `json:"qty,omitempty" validate:"omitempty,gte=0"`
}

type Offer struct {
	ID          string           `json:"id"`
	LotID       string           `json:"lot_id"`
	RoundID     *string          `json:"round_id"`
	Mode        string           `json:"mode"`
	Currency    string           `json:"currency"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
	Status      *string          `json:"status"`
	Lines       []OfferLine      `json:"lines"`
}

type OfferLine struct {
	LineItemID     string          `json:"line_item_id"`
	LineRef        string          `json:"line_ref"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Qty            int             `json:"qty"`
	ExtendedAmount decimal.Decimal `json:"extended_amount"`
}

// LotStatusRequest Запрошенный статус лота
type LotStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type PurchaseOrderRequest struct {
	DocumentURL string  `json:"document_url" validate:"required"`
	BuyerID     *string `json:"buyer_id,omitempty" validate:"omitempty,uuid"`
}

type ExpectedPOCountRequest struct {
	ExpectedPOCount *int `json:"expected_po_count" validate:"required"`
}

type Lot struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Currency          string  `json:"currency"`
	Status            string  `json:"status"`
	POCount           int     `json:"po_count"`
	ExpectedPOCount   int     `json:"expected_po_count"`
	OffersReceivedAt  *string `json:"offers_received_at"`
	SaleInProgressAt  *string `json:"sale_in_progress_at"`
	ProcessingAt      *string `json:"processing_at"`
	OrderProcessingAt *string `json:"order_processing_at"`
	SoldAt            *string `json:"sold_at"`
	ClosedAt          *string `json:"closed_at"`
}

// InviteResults Итоги торга для покупателя
type InviteResults struct {
	Invite         Invite          `json:"invite"`
	EffectiveRound *EffectiveRound `json:"effective_round"`
	IsWinner       bool            `json:"is_winner"`
	Awards         []AwardedLine   `json:"awards"`
	AwardsTotal    decimal.Decimal `json:"awards_total"`
}

type Invite struct {
	Token   string  `json:"token"`
	LotID   string  `json:"lot_id"`
	BuyerID string  `json:"buyer_id"`
	RoundID *string `json:"round_id"`
}

type EffectiveRound struct {
	ID     string `json:"id"`
	Number *int   `json:"round_number"`
	Source string `json:"source"`
}

type AwardedLine struct {
	ID             string           `json:"id"`
	LineItemID     string           `json:"line_item_id"`
	RoundID        *string          `json:"round_id"`
	UnitPrice      *decimal.Decimal `json:"unit_price"`
	Qty            *int             `json:"qty"`
	ExtendedAmount decimal.Decimal  `json:"extended_amount"`
}

// PollResponse Результат опроса почтового ящика
type PollResponse struct {
	// Processed Сколько писем сохранено как предложения
	Processed int           `json:"processed"`
	Messages  []PollMessage `json:"messages"`
}

type PollMessage struct {
	MessageID string  `json:"message_id"`
	Outcome   string  `json:"outcome"`
	Status    string  `json:"status,omitempty"`
	OfferID   *string `json:"offer_id,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
