package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lotmarket/internal/domain"
	"lotmarket/internal/domain/entity"
	"lotmarket/internal/domain/value"
	"lotmarket/pkg/errcodes"
)

// phaseColumns — колонка времени, которая ставится при входе в статус.
var phaseColumns = map[value.LotStatus]string{ //nolint:gochecknoglobals
	value.LotStatusOffersReceived:  "offers_received_at",
	value.LotStatusSaleInProgress:  "sale_in_progress_at",
	value.LotStatusProcessing:      "processing_at",
	value.LotStatusOrderProcessing: "order_processing_at",
	value.LotStatusSold:            "sold_at",
	value.LotStatusClosed:          "closed_at",
}

type LotRepository struct {
	store
}

func NewLotRepository(db *sqlx.DB) *LotRepository {
	return &LotRepository{store: store{db: db}}
}

// GetByID возвращает лот арендатора.
func (r *LotRepository) GetByID(ctx context.Context, tenantID, lotID uuid.UUID) (*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE tenant_id = $1 AND id = $2`

	var schema lotSchema
	if err := r.db.GetContext(ctx, &schema, query, tenantID, lotID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.LotNotFound, "lot not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get lot")
	}

	return schema.toDomain(), nil
}

// CompareAndSetStatus меняет статус только если лот всё ещё в expected.
// stamp=false не перетирает уже поставленное время фазы.
func (r *LotRepository) CompareAndSetStatus(
	ctx context.Context,
	tenantID, lotID uuid.UUID,
	expected, next value.LotStatus,
	at time.Time,
	stamp bool,
) (bool, error) {
	set := "status = $1, updated_at = $2"
	if col, ok := phaseColumns[next]; ok {
		if stamp {
			set += fmt.Sprintf(", %s = $2", col)
		} else {
			set += fmt.Sprintf(", %[1]s = COALESCE(%[1]s, $2)", col)
		}
	}

	query := `UPDATE lots SET ` + set + ` WHERE tenant_id = $3 AND id = $4 AND status = $5`

	res, err := r.db.ExecContext(ctx, query, string(next), at, tenantID, lotID, string(expected))
	if err != nil {
		return false, writeError(err, "failed to update lot status")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
	}

	return rows > 0, nil
}

func (r *LotRepository) SetExpectedPOCount(ctx context.Context, tenantID, lotID uuid.UUID, count int) error {
	query := `
		UPDATE lots
		SET expected_po_count = $1, updated_at = $2
		WHERE tenant_id = $3 AND id = $4`

	res, err := r.db.ExecContext(ctx, query, count, time.Now().UTC(), tenantID, lotID)
	if err != nil {
		return writeError(err, "failed to set expected po count")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
	}

	if rows == 0 {
		return domain.NewError(errcodes.LotNotFound, "lot not found")
	}

	return nil
}

// LotCurrency возвращает валюту лота, пустую строку если она не задана.
func (r *LotRepository) LotCurrency(ctx context.Context, tenantID, lotID uuid.UUID) (string, error) {
	var currency sql.NullString

	err := r.db.GetContext(ctx, &currency, `SELECT currency FROM lots WHERE tenant_id = $1 AND id = $2`, tenantID, lotID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.NewError(errcodes.LotNotFound, "lot not found")
		}
		return "", domain.WrapError(err, errcodes.InternalServerError, "failed to get lot currency")
	}

	return currency.String, nil
}

func (r *LotRepository) LotLineItems(ctx context.Context, tenantID, lotID uuid.UUID) ([]entity.LineItem, error) {
	return lotLineItems(ctx, r.db, tenantID, lotID)
}

func lotLineItems(ctx context.Context, q sqlx.QueryerContext, tenantID, lotID uuid.UUID) ([]entity.LineItem, error) {
	query := `
		SELECT id, lot_id, line_ref, qty
		FROM line_items
		WHERE tenant_id = $1 AND lot_id = $2
		ORDER BY line_ref, id`

	var schemas []lineItemSchema
	if err := sqlx.SelectContext(ctx, q, &schemas, query, tenantID, lotID); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list line items")
	}

	return toLineItems(schemas), nil
}

func toLineItems(schemas []lineItemSchema) []entity.LineItem {
	items := make([]entity.LineItem, 0, len(schemas))
	for _, s := range schemas {
		items = append(items, s.toDomain())
	}
	return items
}
