package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"lotmarket/internal/domain"
	"lotmarket/internal/domain/entity"
	"lotmarket/internal/domain/service/lineref"
	"lotmarket/internal/domain/service/offer"
	"lotmarket/internal/domain/service/offertable"
	"lotmarket/internal/domain/value"
	"lotmarket/pkg/errcodes"
	"lotmarket/pkg/logx"
)

type Outcome string

const (
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeUnmatched Outcome = "unmatched"
	OutcomeNoTable   Outcome = "no_table"
	OutcomeIngested  Outcome = "ingested"
	OutcomeFailed    Outcome = "failed"
)

// MessageResult итог обработки одного письма. EmailOfferID заполнен, если
// письмо сохранено, даже когда следующий шаг упал.
type MessageResult struct {
	MessageID    string
	Outcome      Outcome
	Status       value.EmailOfferStatus
	EmailOfferID *uuid.UUID
	OfferID      *uuid.UUID
	Err          error
}

type PollResult struct {
	Processed int
	Results   []MessageResult
}

func (i *Ingestor) ingest(ctx context.Context, tenantID uuid.UUID, o outreach, msg entity.InboundMessage) MessageResult {
	res := MessageResult{MessageID: msg.ID}

	fail := func(err error) MessageResult {
		res.Outcome = OutcomeFailed
		res.Err = err
		return res
	}

	seen, err := i.offers.ExistsByMessageID(ctx, tenantID, msg.ID)
	if err != nil {
		return fail(fmt.Errorf("offers.ExistsByMessageID: %w", err))
	}

	if seen {
		res.Outcome = OutcomeDuplicate
		return res
	}

	sc, err := i.match(ctx, tenantID, o, msg.Subject)
	if err != nil {
		return fail(err)
	}

	// Не помечаем как обработанное: контекст может появиться к следующему опросу.
	if sc == nil {
		res.Outcome = OutcomeUnmatched
		return res
	}

	body := msg.HTMLBody
	if strings.TrimSpace(body) == "" {
		body = msg.TextPreview
	}

	raw := offertable.Extract(body)
	if len(raw) == 0 {
		res.Outcome = OutcomeNoTable
		return res
	}

	email, err := i.buildEmailOffer(ctx, tenantID, sc, msg)
	if err != nil {
		return fail(err)
	}

	idx, err := i.lineIndex(ctx, tenantID, sc)
	if err != nil {
		return fail(err)
	}

	rows := resolveRows(parseRows(raw), idx)

	email.Status = classify(rows)
	email.Lines = lo.Map(rows, func(r ResolvedRow, _ int) entity.EmailOfferLine {
		return r.toEmailOfferLine()
	})

	if err := i.offers.Create(ctx, email); err != nil {
		return fail(fmt.Errorf("offers.Create: %w", err))
	}

	res.Status = email.Status
	res.EmailOfferID = &email.ID

	if sc.batch != nil {
		i.notifyLot(ctx, tenantID, sc.batch.LotID)
	}

	aggregateID, err := i.synthesize(ctx, email, rows)
	if err != nil {
		return fail(fmt.Errorf("synthesize aggregate offer: %w", err))
	}

	res.OfferID = aggregateID
	res.Outcome = OutcomeIngested

	logger(ctx).Info("email offer ingested",
		slog.String(logx.FieldMessageID, msg.ID),
		slog.String(logx.FieldOfferID, email.ID.String()),
		slog.String(logx.FieldStatus, string(email.Status)),
		slog.Int("rows", len(rows)),
	)

	return res
}

func (i *Ingestor) buildEmailOffer(
	ctx context.Context,
	tenantID uuid.UUID,
	sc *scope,
	msg entity.InboundMessage,
) (*entity.EmailOffer, error) {
	receivedAt := msg.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = i.now()
	}

	email := &entity.EmailOffer{
		ID:              uuid.New(),
		TenantID:        tenantID,
		SourceMessageID: msg.ID,
		BuyerEmail:      strings.ToLower(strings.TrimSpace(msg.Sender.Address)),
		BuyerName:       msg.Sender.Name,
		ReceivedAt:      receivedAt.UTC(),
		RawHTML:         msg.HTMLBody,
	}

	switch {
	case sc.batch != nil:
		b := sc.batch
		email.LotID = &b.LotID
		email.BatchID = &b.ID

		res, err := i.rounds.ResolveForLot(ctx, tenantID, b.LotID, b.RoundID)
		if err != nil {
			return nil, fmt.Errorf("rounds.ResolveForLot: %w", err)
		}
		email.RoundID = res.RoundID

		currency := b.Currency
		if currency == "" {
			currency, err = i.outreach.LotCurrency(ctx, tenantID, b.LotID)
			if err != nil && !domain.HasCode(err, errcodes.LotNotFound) {
				return nil, fmt.Errorf("outreach.LotCurrency: %w", err)
			}
		}
		email.Currency = i.currency(currency)

	case sc.thread != nil:
		t := sc.thread
		email.DealID = &t.DealID
		email.ThreadID = &t.ID
		email.Currency = i.currency(t.Currency)
	}

	return email, nil
}

func (i *Ingestor) currency(c string) string {
	if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
		return c
	}
	return i.cfg.DefaultCurrency
}

func (i *Ingestor) lineIndex(ctx context.Context, tenantID uuid.UUID, sc *scope) (lineref.Index, error) {
	var (
		items []entity.LineItem
		err   error
	)

	if sc.batch != nil {
		items, err = i.outreach.LotLineItems(ctx, tenantID, sc.batch.LotID)
		if err != nil {
			return lineref.Index{}, fmt.Errorf("outreach.LotLineItems: %w", err)
		}
	} else {
		items, err = i.outreach.DealLineItems(ctx, tenantID, sc.thread.DealID)
		if err != nil {
			return lineref.Index{}, fmt.Errorf("outreach.DealLineItems: %w", err)
		}
	}

	return lineref.NewIndex(lo.Map(items, func(li entity.LineItem, _ int) lineref.Line {
		return lineref.Line{ID: li.ID, LineRef: li.LineRef}
	})), nil
}

// synthesize пишет агрегированное предложение для распределения, если хотя бы
// одна строка сопоставлена и имеет цену.
func (i *Ingestor) synthesize(ctx context.Context, email *entity.EmailOffer, rows []ResolvedRow) (*uuid.UUID, error) {
	if i.aggregates == nil {
		return nil, nil
	}

	lines, total := aggregateLines(rows)
	if len(lines) == 0 || !total.IsPositive() {
		return nil, nil
	}

	aggregate := &entity.Offer{
		ID:           uuid.New(),
		TenantID:     email.TenantID,
		LotID:        email.LotID,
		DealID:       email.DealID,
		RoundID:      email.RoundID,
		BuyerEmail:   email.BuyerEmail,
		Source:       value.OfferSourceEmail,
		Mode:         value.OfferModeTakeAll,
		Currency:     email.Currency,
		TotalAmount:  &total,
		EmailOfferID: &email.ID,
		CreatedAt:    i.now().UTC(),
		Lines:        lines,
	}

	if i.buyers != nil && aggregate.BuyerEmail != "" {
		buyerID, err := i.buyers.BuyerIDByEmail(ctx, email.TenantID, aggregate.BuyerEmail)
		if err != nil {
			logger(ctx).Warn("buyer lookup failed", logx.Error(err))
		}
		aggregate.BuyerID = buyerID
	}

	if err := offer.CreateSubmitted(ctx, i.aggregates, aggregate); err != nil {
		return nil, err
	}

	return &aggregate.ID, nil
}

func (i *Ingestor) notifyLot(ctx context.Context, tenantID, lotID uuid.UUID) {
	if i.lots == nil {
		return
	}

	if err := i.lots.OnOfferCreated(ctx, tenantID, lotID); err != nil {
		logger(ctx).Warn("lot offer hook failed",
			slog.String(logx.FieldLotID, lotID.String()),
			logx.Error(err),
		)
	}
}

type nopObserver struct{}

func (nopObserver) ObserveMessage(string)             {}
func (nopObserver) ObservePoll(string, time.Duration) {}
