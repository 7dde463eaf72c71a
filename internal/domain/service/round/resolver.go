package round

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"lotmarket/internal/domain"
	"lotmarket/internal/domain/entity"
	"lotmarket/pkg/errcodes"
	"lotmarket/pkg/logx"
)

//go:generate moq -rm -out resolver_mock.gen.go . RoundRepository:RoundRepositoryMock InvitePinner:InvitePinnerMock

// RoundRepository отдаёт раунды лота. Live и Latest возвращают nil, nil,
// если подходящего раунда нет.
type RoundRepository interface {
	GetByID(ctx context.Context, tenantID, roundID uuid.UUID) (*entity.Round, error)
	Live(ctx context.Context, tenantID, lotID uuid.UUID) (*entity.Round, error)
	Latest(ctx context.Context, tenantID, lotID uuid.UUID) (*entity.Round, error)
}

// InvitePinner закрепляет раунд, если инвайт ещё не закреплён, и отдаёт
// фактически записанный раунд.
type InvitePinner interface {
	PinRound(ctx context.Context, tenantID uuid.UUID, token string, roundID uuid.UUID) (uuid.UUID, error)
}

type Source string

const (
	SourcePinned Source = "pinned"
	SourceLive   Source = "live"
	SourceLatest Source = "latest"
	SourceNone   Source = "none"
)

// Resolution описывает эффективный раунд. RoundID == nil означает, что у
// лота нет раундов и запросы идут по всему лоту.
type Resolution struct {
	RoundID     *uuid.UUID
	RoundNumber *int
	Source      Source
	Backfilled  bool
}

type Resolver struct {
	rounds  RoundRepository
	invites InvitePinner
}

func NewResolver(rounds RoundRepository, invites InvitePinner) *Resolver {
	return &Resolver{
		rounds:  rounds,
		invites: invites,
	}
}

// ResolveForInvite: закреплённый раунд, иначе live, иначе последний.
// Найденный раунд записывается в инвайт; ошибка записи только логируется.
func (r *Resolver) ResolveForInvite(ctx context.Context, invite entity.Invite) (Resolution, error) {
	res, err := r.ResolveForLot(ctx, invite.TenantID, invite.LotID, invite.RoundID)
	if err != nil {
		return Resolution{}, err
	}

	if invite.RoundID != nil || res.RoundID == nil {
		return res, nil
	}

	stored, err := r.invites.PinRound(ctx, invite.TenantID, invite.Token, *res.RoundID)
	if err != nil {
		logger(ctx).Warn("invite round backfill failed",
			slog.String(logx.FieldLotID, invite.LotID.String()),
			slog.String(logx.FieldRoundID, res.RoundID.String()),
			logx.Error(err),
		)
		return res, nil
	}

	// Закрепили не мы: авторитетен записанный раунд.
	if stored != *res.RoundID {
		return r.pinned(ctx, invite.TenantID, stored), nil
	}

	res.Backfilled = true

	return res, nil
}

// ResolveForLot применяет тот же порядок без записи, например для рассылок,
// у которых раунд может быть не закреплён.
func (r *Resolver) ResolveForLot(ctx context.Context, tenantID, lotID uuid.UUID, pinned *uuid.UUID) (Resolution, error) {
	if pinned != nil {
		return r.pinned(ctx, tenantID, *pinned), nil
	}

	live, err := r.rounds.Live(ctx, tenantID, lotID)
	if err != nil {
		return Resolution{}, fmt.Errorf("rounds.Live: %w", err)
	}

	if live != nil {
		return found(live, SourceLive), nil
	}

	latest, err := r.rounds.Latest(ctx, tenantID, lotID)
	if err != nil {
		return Resolution{}, fmt.Errorf("rounds.Latest: %w", err)
	}

	if latest != nil {
		return found(latest, SourceLatest), nil
	}

	return Resolution{Source: SourceNone}, nil
}

func (r *Resolver) pinned(ctx context.Context, tenantID, roundID uuid.UUID) Resolution {
	res := Resolution{RoundID: &roundID, Source: SourcePinned}

	// Номер нужен только для отображения, id остаётся авторитетным.
	rnd, err := r.rounds.GetByID(ctx, tenantID, roundID)
	if err != nil {
		if !domain.HasCode(err, errcodes.RoundNotFound) {
			logger(ctx).Warn("pinned round lookup failed",
				slog.String(logx.FieldRoundID, roundID.String()),
				logx.Error(err),
			)
		}
		return res
	}

	res.RoundNumber = &rnd.Number

	return res
}

func found(rnd *entity.Round, source Source) Resolution {
	id := rnd.ID
	number := rnd.Number

	return Resolution{RoundID: &id, RoundNumber: &number, Source: source}
}
