package persistence

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lotmarket/internal/domain"
	"lotmarket/internal/domain/entity"
	"lotmarket/pkg/errcodes"
)

type InviteRepository struct {
	store
}

func NewInviteRepository(db *sqlx.DB) *InviteRepository {
	return &InviteRepository{store: store{db: db}}
}

func (r *InviteRepository) GetByToken(ctx context.Context, tenantID uuid.UUID, token string) (*entity.Invite, error) {
	query := `
		SELECT token, tenant_id, lot_id, buyer_id, round_id
		FROM invites
		WHERE tenant_id = $1 AND token = $2`

	var schema inviteSchema
	if err := r.db.GetContext(ctx, &schema, query, tenantID, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.InviteNotFound, "invite not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get invite")
	}

	return schema.toDomain(), nil
}

// PinRound закрепляет раунд за инвайтом и возвращает раунд, который в итоге
// записан. Уже закреплённый раунд не меняется: тогда возвращается он.
func (r *InviteRepository) PinRound(
	ctx context.Context,
	tenantID uuid.UUID,
	token string,
	roundID uuid.UUID,
) (uuid.UUID, error) {
	query := `
		UPDATE invites
		SET round_id = $1
		WHERE tenant_id = $2 AND token = $3 AND round_id IS NULL`

	res, err := r.db.ExecContext(ctx, query, roundID, tenantID, token)
	if err != nil {
		return uuid.Nil, writeError(err, "failed to pin invite round")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return uuid.Nil, domain.WrapError(err, errcodes.InternalServerError, "failed to pin invite round")
	}

	if affected > 0 {
		return roundID, nil
	}

	// параллельный запрос успел закрепить свой раунд
	invite, err := r.GetByToken(ctx, tenantID, token)
	if err != nil {
		return uuid.Nil, err
	}

	if invite.RoundID == nil {
		return uuid.Nil, domain.NewError(errcodes.InternalServerError, "invite round was not pinned")
	}

	return *invite.RoundID, nil
}

type OutreachRepository struct {
	store
}

func NewOutreachRepository(db *sqlx.DB) *OutreachRepository {
	return &OutreachRepository{store: store{db: db}}
}

func (r *OutreachRepository) ListBatches(ctx context.Context, tenantID uuid.UUID) ([]entity.LotEmailBatch, error) {
	query := `
		SELECT id, tenant_id, lot_id, round_id, batch_key, currency
		FROM lot_email_batches
		WHERE tenant_id = $1
		ORDER BY length(batch_key) DESC, batch_key`

	var schemas []batchSchema
	if err := r.db.SelectContext(ctx, &schemas, query, tenantID); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list email batches")
	}

	batches := make([]entity.LotEmailBatch, 0, len(schemas))
	for _, s := range schemas {
		batches = append(batches, s.toDomain())
	}

	return batches, nil
}

// ThreadBySubjectKey возвращает nil, nil если ключ темы никому не принадлежит.
func (r *OutreachRepository) ThreadBySubjectKey(
	ctx context.Context,
	tenantID uuid.UUID,
	subjectKey string,
) (*entity.DealThread, error) {
	query := `
		SELECT t.id, t.tenant_id, t.deal_id, t.subject_key, d.currency
		FROM deal_threads t
		JOIN deals d ON d.id = t.deal_id AND d.tenant_id = t.tenant_id
		WHERE t.tenant_id = $1 AND t.subject_key = $2`

	var schema threadSchema
	if err := r.db.GetContext(ctx, &schema, query, tenantID, strings.ToUpper(subjectKey)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil //nolint:nilnil
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get deal thread")
	}

	return schema.toDomain(), nil
}

func (r *OutreachRepository) LotLineItems(ctx context.Context, tenantID, lotID uuid.UUID) ([]entity.LineItem, error) {
	return lotLineItems(ctx, r.db, tenantID, lotID)
}

func (r *OutreachRepository) DealLineItems(ctx context.Context, tenantID, dealID uuid.UUID) ([]entity.LineItem, error) {
	query := `
		SELECT l.id, l.line_ref, l.qty
		FROM deal_lines l
		JOIN deals d ON d.id = l.deal_id
		WHERE d.tenant_id = $1 AND l.deal_id = $2
		ORDER BY l.line_ref, l.id`

	var schemas []lineItemSchema
	if err := r.db.SelectContext(ctx, &schemas, query, tenantID, dealID); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list deal lines")
	}

	return toLineItems(schemas), nil
}

func (r *OutreachRepository) LotCurrency(ctx context.Context, tenantID, lotID uuid.UUID) (string, error) {
	return NewLotRepository(r.db).LotCurrency(ctx, tenantID, lotID)
}

type BuyerRepository struct {
	store
}

func NewBuyerRepository(db *sqlx.DB) *BuyerRepository {
	return &BuyerRepository{store: store{db: db}}
}

// BuyerIDByEmail ищет покупателя по адресу без учёта регистра; nil если не найден.
func (r *BuyerRepository) BuyerIDByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*uuid.UUID, error) {
	query := `SELECT id FROM buyers WHERE tenant_id = $1 AND lower(email) = lower($2) LIMIT 1`

	var id uuid.UUID
	if err := r.db.GetContext(ctx, &id, query, tenantID, strings.TrimSpace(email)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to find buyer")
	}

	return &id, nil
}
