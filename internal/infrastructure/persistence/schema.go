package persistence

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"lotmarket/internal/domain/entity"
	"lotmarket/internal/domain/value"
)

// lotSchema — строка таблицы lots.
type lotSchema struct {
	ID                uuid.UUID      `db:"id"`
	TenantID          uuid.UUID      `db:"tenant_id"`
	Title             string         `db:"title"`
	Currency          sql.NullString `db:"currency"`
	Status            string         `db:"status"`
	POCount           int            `db:"po_count"`
	ExpectedPOCount   int            `db:"expected_po_count"`
	OffersReceivedAt  sql.NullTime   `db:"offers_received_at"`
	SaleInProgressAt  sql.NullTime   `db:"sale_in_progress_at"`
	ProcessingAt      sql.NullTime   `db:"processing_at"`
	OrderProcessingAt sql.NullTime   `db:"order_processing_at"`
	SoldAt            sql.NullTime   `db:"sold_at"`
	ClosedAt          sql.NullTime   `db:"closed_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

const lotColumns = `id, tenant_id, title, currency, status, po_count, expected_po_count,
	offers_received_at, sale_in_progress_at, processing_at, order_processing_at,
	sold_at, closed_at, updated_at`

func (s *lotSchema) toDomain() *entity.Lot {
	return &entity.Lot{
		ID:                s.ID,
		TenantID:          s.TenantID,
		Title:             s.Title,
		Currency:          s.Currency.String,
		Status:            value.LotStatus(s.Status),
		POCount:           s.POCount,
		ExpectedPOCount:   s.ExpectedPOCount,
		OffersReceivedAt:  timePtr(s.OffersReceivedAt),
		SaleInProgressAt:  timePtr(s.SaleInProgressAt),
		ProcessingAt:      timePtr(s.ProcessingAt),
		OrderProcessingAt: timePtr(s.OrderProcessingAt),
		SoldAt:            timePtr(s.SoldAt),
		ClosedAt:          timePtr(s.ClosedAt),
		UpdatedAt:         s.UpdatedAt,
	}
}

type roundSchema struct {
	ID       uuid.UUID `db:"id"`
	TenantID uuid.UUID `db:"tenant_id"`
	LotID    uuid.UUID `db:"lot_id"`
	Number   int       `db:"round_number"`
	Status   string    `db:"status"`
}

func (s *roundSchema) toDomain() *entity.Round {
	return &entity.Round{
		ID:       s.ID,
		TenantID: s.TenantID,
		LotID:    s.LotID,
		Number:   s.Number,
		Status:   value.RoundStatus(s.Status),
	}
}

type inviteSchema struct {
	Token    string        `db:"token"`
	TenantID uuid.UUID     `db:"tenant_id"`
	LotID    uuid.UUID     `db:"lot_id"`
	BuyerID  uuid.UUID     `db:"buyer_id"`
	RoundID  uuid.NullUUID `db:"round_id"`
}

func (s *inviteSchema) toDomain() *entity.Invite {
	return &entity.Invite{
		Token:    s.Token,
		TenantID: s.TenantID,
		LotID:    s.LotID,
		BuyerID:  s.BuyerID,
		RoundID:  uuidPtr(s.RoundID),
	}
}

type lineItemSchema struct {
	ID      uuid.UUID `db:"id"`
	LotID   uuid.UUID `db:"lot_id"`
	LineRef string    `db:"line_ref"`
	Qty     int       `db:"qty"`
}

func (s lineItemSchema) toDomain() entity.LineItem {
	return entity.LineItem{ID: s.ID, LotID: s.LotID, LineRef: s.LineRef, Qty: s.Qty}
}

type batchSchema struct {
	ID       uuid.UUID      `db:"id"`
	TenantID uuid.UUID      `db:"tenant_id"`
	LotID    uuid.UUID      `db:"lot_id"`
	RoundID  uuid.NullUUID  `db:"round_id"`
	BatchKey string         `db:"batch_key"`
	Currency sql.NullString `db:"currency"`
}

func (s batchSchema) toDomain() entity.LotEmailBatch {
	return entity.LotEmailBatch{
		ID:       s.ID,
		TenantID: s.TenantID,
		LotID:    s.LotID,
		RoundID:  uuidPtr(s.RoundID),
		BatchKey: s.BatchKey,
		Currency: s.Currency.String,
	}
}

type threadSchema struct {
	ID         uuid.UUID      `db:"id"`
	TenantID   uuid.UUID      `db:"tenant_id"`
	DealID     uuid.UUID      `db:"deal_id"`
	SubjectKey string         `db:"subject_key"`
	Currency   sql.NullString `db:"currency"`
}

func (s *threadSchema) toDomain() *entity.DealThread {
	return &entity.DealThread{
		ID:         s.ID,
		TenantID:   s.TenantID,
		DealID:     s.DealID,
		SubjectKey: s.SubjectKey,
		Currency:   s.Currency.String,
	}
}

type emailOfferSchema struct {
	ID              uuid.UUID     `db:"id"`
	TenantID        uuid.UUID     `db:"tenant_id"`
	LotID           uuid.NullUUID `db:"lot_id"`
	DealID          uuid.NullUUID `db:"deal_id"`
	BatchID         uuid.NullUUID `db:"batch_id"`
	ThreadID        uuid.NullUUID `db:"thread_id"`
	RoundID         uuid.NullUUID `db:"round_id"`
	SourceMessageID string        `db:"source_message_id"`
	BuyerEmail      string        `db:"buyer_email"`
	BuyerName       string        `db:"buyer_name"`
	ReceivedAt      time.Time     `db:"received_at"`
	Currency        string        `db:"currency"`
	RawHTML         string        `db:"raw_html"`
	Status          string        `db:"status"`
}

func fromEmailOffer(e *entity.EmailOffer) emailOfferSchema {
	return emailOfferSchema{
		ID:              e.ID,
		TenantID:        e.TenantID,
		LotID:           nullUUID(e.LotID),
		DealID:          nullUUID(e.DealID),
		BatchID:         nullUUID(e.BatchID),
		ThreadID:        nullUUID(e.ThreadID),
		RoundID:         nullUUID(e.RoundID),
		SourceMessageID: e.SourceMessageID,
		BuyerEmail:      e.BuyerEmail,
		BuyerName:       e.BuyerName,
		ReceivedAt:      e.ReceivedAt,
		Currency:        e.Currency,
		RawHTML:         e.RawHTML,
		Status:          string(e.Status),
	}
}

type emailOfferLineSchema struct {
	ID           uuid.UUID           `db:"id"`
	EmailOfferID uuid.UUID           `db:"email_offer_id"`
	LineRefRaw   string              `db:"line_ref_raw"`
	LineRefNorm  string              `db:"line_ref_norm"`
	LineItemID   uuid.NullUUID       `db:"line_item_id"`
	Qty          sql.NullInt64       `db:"qty"`
	Amount       decimal.NullDecimal `db:"amount"`
	PricingMode  string              `db:"pricing_mode"`
	Notes        []string            `db:"notes"`
}

func fromEmailOfferLine(offerID uuid.UUID, l entity.EmailOfferLine) emailOfferLineSchema {
	s := emailOfferLineSchema{
		ID:           l.ID,
		EmailOfferID: offerID,
		LineRefRaw:   l.LineRefRaw,
		LineRefNorm:  l.LineRefNorm,
		LineItemID:   nullUUID(l.LineItemID),
		PricingMode:  string(l.PricingMode),
		Notes:        l.Notes,
	}

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	if s.Notes == nil {
		s.Notes = []string{}
	}

	if l.Qty != nil {
		s.Qty = sql.NullInt64{Int64: int64(*l.Qty), Valid: true}
	}

	if l.Amount != nil {
		s.Amount = decimal.NewNullDecimal(*l.Amount)
	}

	return s
}

type offerSchema struct {
	ID           uuid.UUID           `db:"id"`
	TenantID     uuid.UUID           `db:"tenant_id"`
	LotID        uuid.NullUUID       `db:"lot_id"`
	DealID       uuid.NullUUID       `db:"deal_id"`
	RoundID      uuid.NullUUID       `db:"round_id"`
	BuyerID      uuid.NullUUID       `db:"buyer_id"`
	BuyerEmail   string              `db:"buyer_email"`
	Source       string              `db:"source"`
	Mode         string              `db:"mode"`
	Currency     string              `db:"currency"`
	TotalAmount  decimal.NullDecimal `db:"total_amount"`
	Status       sql.NullString      `db:"status"`
	EmailOfferID uuid.NullUUID       `db:"email_offer_id"`
	CreatedAt    time.Time           `db:"created_at"`
}

func fromOffer(o *entity.Offer) offerSchema {
	s := offerSchema{
		ID:           o.ID,
		TenantID:     o.TenantID,
		LotID:        nullUUID(o.LotID),
		DealID:       nullUUID(o.DealID),
		RoundID:      nullUUID(o.RoundID),
		BuyerID:      nullUUID(o.BuyerID),
		BuyerEmail:   o.BuyerEmail,
		Source:       string(o.Source),
		Mode:         string(o.Mode),
		Currency:     o.Currency,
		EmailOfferID: nullUUID(o.EmailOfferID),
		CreatedAt:    o.CreatedAt,
	}

	if o.TotalAmount != nil {
		s.TotalAmount = decimal.NewNullDecimal(*o.TotalAmount)
	}

	if o.Status != nil {
		s.Status = sql.NullString{String: *o.Status, Valid: true}
	}

	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	return s
}

type offerLineSchema struct {
	ID             uuid.UUID       `db:"id"`
	OfferID        uuid.UUID       `db:"offer_id"`
	LineItemID     uuid.UUID       `db:"line_item_id"`
	LineRef        string          `db:"line_ref"`
	UnitPrice      decimal.Decimal `db:"unit_price"`
	Qty            int             `db:"qty"`
	ExtendedAmount decimal.Decimal `db:"extended_amount"`
}

func fromOfferLine(offerID uuid.UUID, l entity.OfferLine) offerLineSchema {
	id := l.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return offerLineSchema{
		ID:             id,
		OfferID:        offerID,
		LineItemID:     l.LineItemID,
		LineRef:        l.LineRef,
		UnitPrice:      l.UnitPrice,
		Qty:            l.Qty,
		ExtendedAmount: l.ExtendedAmount,
	}
}

// awardLineSchema читает числа как текст: в старых строках встречается мусор.
type awardLineSchema struct {
	ID             uuid.UUID      `db:"id"`
	LotID          uuid.UUID      `db:"lot_id"`
	RoundID        uuid.NullUUID  `db:"round_id"`
	BuyerID        uuid.UUID      `db:"buyer_id"`
	LineItemID     uuid.UUID      `db:"line_item_id"`
	OfferID        uuid.NullUUID  `db:"offer_id"`
	UnitPrice      sql.NullString `db:"unit_price"`
	Qty            sql.NullString `db:"qty"`
	ExtendedAmount sql.NullString `db:"extended_amount"`
	CreatedAt      time.Time      `db:"created_at"`
}

func (s awardLineSchema) toDomain() entity.AwardedLine {
	line := entity.AwardedLine{
		ID:             s.ID,
		LotID:          s.LotID,
		RoundID:        uuidPtr(s.RoundID),
		BuyerID:        s.BuyerID,
		LineItemID:     s.LineItemID,
		OfferID:        uuidPtr(s.OfferID),
		ExtendedAmount: decimal.Zero,
		CreatedAt:      s.CreatedAt,
	}

	if d, ok := coerceDecimal(s.UnitPrice); ok {
		line.UnitPrice = &d
	}

	if d, ok := coerceDecimal(s.Qty); ok {
		qty := int(d.Round(0).IntPart())
		line.Qty = &qty
	}

	if d, ok := coerceDecimal(s.ExtendedAmount); ok {
		line.ExtendedAmount = d
	}

	return line
}

type credentialSchema struct {
	TenantID       uuid.UUID `db:"tenant_id"`
	UserID         string    `db:"user_id"`
	MailboxAddress string    `db:"mailbox_address"`
	RefreshToken   string    `db:"refresh_token"`
	AccessToken    string    `db:"access_token"`
	ExpiresAt      time.Time `db:"expires_at"`
}

func (s *credentialSchema) toDomain() *entity.MailboxCredential {
	return &entity.MailboxCredential{
		TenantID:       s.TenantID,
		UserID:         s.UserID,
		MailboxAddress: s.MailboxAddress,
		RefreshToken:   s.RefreshToken,
		AccessToken:    s.AccessToken,
		ExpiresAt:      s.ExpiresAt,
	}
}

func coerceDecimal(s sql.NullString) (decimal.Decimal, bool) {
	if !s.Valid {
		return decimal.Zero, false
	}

	raw := strings.TrimSpace(s.String)
	if raw == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}

	return d, true
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func uuidPtr(u uuid.NullUUID) *uuid.UUID {
	if !u.Valid {
		return nil
	}
	v := u.UUID
	return &v
}

func nullUUID(u *uuid.UUID) uuid.NullUUID {
	if u == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *u, Valid: true}
}
