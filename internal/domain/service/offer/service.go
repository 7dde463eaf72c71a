package offer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"lotmarket/internal/domain"
	"lotmarket/internal/domain/entity"
	"lotmarket/internal/domain/service/lineref"
	"lotmarket/internal/domain/service/round"
	"lotmarket/internal/domain/value"
	"lotmarket/pkg/errcodes"
	"lotmarket/pkg/logx"
)

//go:generate moq -rm -out service_mock.gen.go . Store InviteRepository LotRepository RoundResolver LotHook

type Store interface {
	// Create сохраняет предложение со строками в одной транзакции.
	Create(ctx context.Context, offer *entity.Offer) error
}

type InviteRepository interface {
	GetByToken(ctx context.Context, tenantID uuid.UUID, token string) (*entity.Invite, error)
}

type LotRepository interface {
	GetByID(ctx context.Context, tenantID, lotID uuid.UUID) (*entity.Lot, error)
	LotLineItems(ctx context.Context, tenantID, lotID uuid.UUID) ([]entity.LineItem, error)
}

type RoundResolver interface {
	ResolveForInvite(ctx context.Context, invite entity.Invite) (round.Resolution, error)
}

type LotHook interface {
	OnOfferCreated(ctx context.Context, tenantID, lotID uuid.UUID) error
}

type SubmissionLine struct {
	LineRef   string
	UnitPrice decimal.Decimal
	Qty       *int
}

// Submission предложение покупателя, отправленное по ссылке-приглашению.
type Submission struct {
	Mode  value.OfferMode
	Total decimal.Decimal
	Lines []SubmissionLine
}

type Service struct {
	store   Store
	invites InviteRepository
	lots    LotRepository
	rounds  RoundResolver
	hook    LotHook
	now     func() time.Time
}

func NewService(store Store, invites InviteRepository, lots LotRepository, rounds RoundResolver) *Service {
	return &Service{
		store:   store,
		invites: invites,
		lots:    lots,
		rounds:  rounds,
		now:     time.Now,
	}
}

func (s *Service) WithLotHook(hook LotHook) *Service {
	s.hook = hook
	return s
}

// Submit проверяет и сохраняет предложение в эффективном раунде инвайта.
func (s *Service) Submit(ctx context.Context, tenantID uuid.UUID, token string, sub Submission) (*entity.Offer, error) {
	if sub.Mode != value.OfferModeTakeAll && sub.Mode != value.OfferModeLines {
		return nil, invalid(errcodes.InvalidOfferMode, fmt.Sprintf("unknown offer mode %q", sub.Mode))
	}

	invite, err := s.invites.GetByToken(ctx, tenantID, token)
	if err != nil {
		return nil, domain.NotFound(fmt.Errorf("invites.GetByToken: %w", err), errcodes.InviteNotFound, "Invite not found")
	}

	lot, err := s.lots.GetByID(ctx, tenantID, invite.LotID)
	if err != nil {
		return nil, domain.NotFound(fmt.Errorf("lots.GetByID: %w", err), errcodes.LotNotFound, "Lot not found")
	}

	offer := &entity.Offer{
		ID:        uuid.New(),
		TenantID:  tenantID,
		LotID:     &lot.ID,
		BuyerID:   &invite.BuyerID,
		Source:    value.OfferSourceAPI,
		Mode:      sub.Mode,
		Currency:  lot.Currency,
		CreatedAt: s.now().UTC(),
	}

	switch sub.Mode {
	case value.OfferModeTakeAll:
		if !sub.Total.IsPositive() {
			return nil, invalid(errcodes.InvalidTotal, "take-all total must be positive")
		}
		total := sub.Total
		offer.TotalAmount = &total

	case value.OfferModeLines:
		lines, total, err := s.lines(ctx, tenantID, lot.ID, sub.Lines)
		if err != nil {
			return nil, err
		}
		offer.Lines = lines
		offer.TotalAmount = &total
	}

	res, err := s.rounds.ResolveForInvite(ctx, *invite)
	if err != nil {
		return nil, fmt.Errorf("rounds.ResolveForInvite: %w", err)
	}
	offer.RoundID = res.RoundID

	if err := CreateSubmitted(ctx, s.store, offer); err != nil {
		return nil, err
	}

	logger(ctx).Info("offer submitted",
		slog.String(logx.FieldOfferID, offer.ID.String()),
		slog.String(logx.FieldLotID, lot.ID.String()),
		slog.String("mode", string(offer.Mode)),
	)

	if s.hook != nil {
		if err := s.hook.OnOfferCreated(ctx, tenantID, lot.ID); err != nil {
			logger(ctx).Warn("lot offer hook failed", slog.String(logx.FieldLotID, lot.ID.String()), logx.Error(err))
		}
	}

	return offer, nil
}

func (s *Service) lines(ctx context.Context, tenantID, lotID uuid.UUID, in []SubmissionLine) ([]entity.OfferLine, decimal.Decimal, error) {
	if len(in) == 0 {
		return nil, decimal.Zero, invalid(errcodes.NoUsableLines, "offer has no lines")
	}

	items, err := s.lots.LotLineItems(ctx, tenantID, lotID)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("lots.LotLineItems: %w", err)
	}

	qtyByID := make(map[uuid.UUID]int, len(items))
	refs := make([]lineref.Line, 0, len(items))

	for _, li := range items {
		qtyByID[li.ID] = li.Qty
		refs = append(refs, lineref.Line{ID: li.ID, LineRef: li.LineRef})
	}

	idx := lineref.NewIndex(refs)

	lines := make([]entity.OfferLine, 0, len(in))
	total := decimal.Zero

	for _, l := range in {
		ref := strings.TrimSpace(l.LineRef)

		if !l.UnitPrice.IsPositive() {
			return nil, decimal.Zero, invalid(errcodes.InvalidUnitPrice, fmt.Sprintf("unit price for %q must be positive", ref))
		}

		_, id := idx.Resolve(ref)
		if id == nil {
			return nil, decimal.Zero, invalid(errcodes.UnknownLineRef, fmt.Sprintf("line ref %q is not part of the lot", ref))
		}

		qty := qtyByID[*id]
		if l.Qty != nil {
			qty = *l.Qty
		}

		if qty <= 0 {
			continue
		}

		ext := l.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))

		lines = append(lines, entity.OfferLine{
			ID:             uuid.New(),
			LineItemID:     *id,
			LineRef:        ref,
			UnitPrice:      l.UnitPrice,
			Qty:            qty,
			ExtendedAmount: ext,
		})

		total = total.Add(ext)
	}

	if len(lines) == 0 {
		return nil, decimal.Zero, invalid(errcodes.NoUsableLines, "no line with a positive quantity")
	}

	return lines, total, nil
}

// CreateSubmitted пишет агрегированное предложение со статусом "submitted".
// Если check-constraint отверг статус, делается ещё одна попытка с null.
func CreateSubmitted(ctx context.Context, store Store, offer *entity.Offer) error {
	status := value.OfferStatusSubmitted
	offer.Status = &status

	err := store.Create(ctx, offer)
	if err != nil && domain.HasCode(err, errcodes.ConstraintViolation) {
		logger(ctx).Warn("offer status rejected, retrying without status",
			slog.String(logx.FieldOfferID, offer.ID.String()),
			logx.Error(err),
		)

		offer.Status = nil
		err = store.Create(ctx, offer)
	}

	if err != nil {
		return fmt.Errorf("store.Create: %w", err)
	}

	return nil
}

func invalid(code failure.ErrorCode, msg string) error {
	return failure.NewInvalidArgumentError(msg, failure.WithCode(code), failure.WithDescription(msg))
}
