package award

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"lotmarket/internal/domain"
	"lotmarket/internal/domain/entity"
	"lotmarket/internal/domain/service/round"
	"lotmarket/pkg/errcodes"
	"lotmarket/pkg/logx"
)

//go:generate moq -rm -out ledger_mock.gen.go . AwardRepository InviteRepository RoundResolver

// AwardRepository читает строки выигрышей. roundID == nil означает все раунды.
type AwardRepository interface {
	ListForBuyer(ctx context.Context, tenantID, lotID, buyerID uuid.UUID, roundID *uuid.UUID) ([]entity.AwardedLine, error)
}

type InviteRepository interface {
	GetByToken(ctx context.Context, tenantID uuid.UUID, token string) (*entity.Invite, error)
}

type RoundResolver interface {
	ResolveForInvite(ctx context.Context, invite entity.Invite) (round.Resolution, error)
}

type Ledger struct {
	awards  AwardRepository
	invites InviteRepository
	rounds  RoundResolver
}

func NewLedger(awards AwardRepository, invites InviteRepository, rounds RoundResolver) *Ledger {
	return &Ledger{
		awards:  awards,
		invites: invites,
		rounds:  rounds,
	}
}

// AwardsFor возвращает выигранные покупателем строки, при заданном roundID
// только по этому раунду.
func (l *Ledger) AwardsFor(ctx context.Context, tenantID, lotID, buyerID uuid.UUID, roundID *uuid.UUID) ([]entity.AwardedLine, error) {
	lines, err := l.awards.ListForBuyer(ctx, tenantID, lotID, buyerID, roundID)
	if err != nil {
		return nil, fmt.Errorf("awards.ListForBuyer: %w", err)
	}

	return lines, nil
}

func IsWinner(lines []entity.AwardedLine) bool {
	return len(lines) > 0
}

// Total суммирует сохранённые суммы строк, из цены и qty они не пересчитываются.
func Total(lines []entity.AwardedLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.ExtendedAmount)
	}

	return total
}

type EffectiveRound struct {
	ID     uuid.UUID
	Number *int
	Source round.Source
}

type InviteResults struct {
	Invite         entity.Invite
	EffectiveRound *EffectiveRound
	IsWinner       bool
	Awards         []entity.AwardedLine
	AwardsTotal    decimal.Decimal
}

// InviteResults находит эффективный раунд инвайта и читает выигрыш покупателя
// в нём. Если раундов нет, берётся весь лот.
func (l *Ledger) InviteResults(ctx context.Context, tenantID uuid.UUID, token string) (InviteResults, error) {
	invite, err := l.invites.GetByToken(ctx, tenantID, token)
	if err != nil {
		return InviteResults{}, domain.NotFound(
			fmt.Errorf("invites.GetByToken: %w", err), errcodes.InviteNotFound, "Invite not found",
		)
	}

	res, err := l.rounds.ResolveForInvite(ctx, *invite)
	if err != nil {
		return InviteResults{}, fmt.Errorf("rounds.ResolveForInvite: %w", err)
	}

	if res.Backfilled {
		invite.RoundID = res.RoundID
	}

	awards, err := l.AwardsFor(ctx, tenantID, invite.LotID, invite.BuyerID, res.RoundID)
	if err != nil {
		return InviteResults{}, err
	}

	out := InviteResults{
		Invite:      *invite,
		IsWinner:    IsWinner(awards),
		Awards:      awards,
		AwardsTotal: Total(awards),
	}

	if res.RoundID != nil {
		out.EffectiveRound = &EffectiveRound{ID: *res.RoundID, Number: res.RoundNumber, Source: res.Source}
	}

	logger(ctx).Debug("invite results",
		slog.String(logx.FieldLotID, invite.LotID.String()),
		slog.Bool("winner", out.IsWinner),
	)

	return out, nil
}
