package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lotmarket/internal/domain"
	"lotmarket/internal/domain/entity"
	"lotmarket/internal/domain/value"
	"lotmarket/pkg/errcodes"
)

type RoundRepository struct {
	store
}

func NewRoundRepository(db *sqlx.DB) *RoundRepository {
	return &RoundRepository{store: store{db: db}}
}

func (r *RoundRepository) GetByID(ctx context.Context, tenantID, roundID uuid.UUID) (*entity.Round, error) {
	query := `
		SELECT id, tenant_id, lot_id, round_number, status
		FROM rounds
		WHERE tenant_id = $1 AND id = $2`

	var schema roundSchema
	if err := r.db.GetContext(ctx, &schema, query, tenantID, roundID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.RoundNotFound, "round not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get round")
	}

	return schema.toDomain(), nil
}

// Live — live-раунд с наибольшим номером, nil если такого нет.
func (r *RoundRepository) Live(ctx context.Context, tenantID, lotID uuid.UUID) (*entity.Round, error) {
	query := `
		SELECT id, tenant_id, lot_id, round_number, status
		FROM rounds
		WHERE tenant_id = $1 AND lot_id = $2 AND status = $3
		ORDER BY round_number DESC
		LIMIT 1`

	return r.first(ctx, "failed to get live round", query, tenantID, lotID, string(value.RoundStatusLive))
}

// Latest — раунд с наибольшим номером в любом статусе, nil если раундов нет.
func (r *RoundRepository) Latest(ctx context.Context, tenantID, lotID uuid.UUID) (*entity.Round, error) {
	query := `
		SELECT id, tenant_id, lot_id, round_number, status
		FROM rounds
		WHERE tenant_id = $1 AND lot_id = $2
		ORDER BY round_number DESC
		LIMIT 1`

	return r.first(ctx, "failed to get latest round", query, tenantID, lotID)
}

func (r *RoundRepository) first(ctx context.Context, message, query string, args ...any) (*entity.Round, error) {
	var schema roundSchema
	if err := r.db.GetContext(ctx, &schema, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil //nolint:nilnil
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, message)
	}

	return schema.toDomain(), nil
}
