package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lotmarket/internal/domain"
	"lotmarket/internal/domain/entity"
	"lotmarket/pkg/errcodes"
)

type AwardRepository struct {
	store
}

func NewAwardRepository(db *sqlx.DB) *AwardRepository {
	return &AwardRepository{store: store{db: db}}
}

// ListForBuyer возвращает строки выигрыша покупателя. roundID == nil — по
// всему лоту.
func (r *AwardRepository) ListForBuyer(
	ctx context.Context,
	tenantID, lotID, buyerID uuid.UUID,
	roundID *uuid.UUID,
) ([]entity.AwardedLine, error) {
	query := `
		SELECT id, lot_id, round_id, buyer_id, line_item_id, offer_id,
		       unit_price::text AS unit_price,
		       qty::text AS qty,
		       extended_amount::text AS extended_amount,
		       created_at
		FROM award_lines
		WHERE tenant_id = $1 AND lot_id = $2 AND buyer_id = $3
		  AND ($4::uuid IS NULL OR round_id = $4)
		ORDER BY created_at, id`

	var schemas []awardLineSchema
	if err := r.db.SelectContext(ctx, &schemas, query, tenantID, lotID, buyerID, nullUUID(roundID)); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list award lines")
	}

	lines := make([]entity.AwardedLine, 0, len(schemas))
	for _, s := range schemas {
		lines = append(lines, s.toDomain())
	}

	return lines, nil
}

type PurchaseOrderRepository struct {
	store
}

func NewPurchaseOrderRepository(db *sqlx.DB) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{store: store{db: db}}
}

// Create сохраняет документ и пересчитывает po_count лота по строкам.
func (r *PurchaseOrderRepository) Create(ctx context.Context, po *entity.PurchaseOrder) (int, error) {
	var count int

	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		// блокируем лот, чтобы параллельные загрузки считали по очереди
		var locked uuid.UUID
		if err := tx.GetContext(ctx, &locked,
			`SELECT id FROM lots WHERE tenant_id = $1 AND id = $2 FOR UPDATE`, po.TenantID, po.LotID,
		); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.NewError(errcodes.LotNotFound, "lot not found")
			}
			return domain.WrapError(err, errcodes.InternalServerError, "failed to lock lot")
		}

		insert := `
			INSERT INTO purchase_orders (id, tenant_id, lot_id, buyer_id, document_url, uploaded_at)
			VALUES ($1, $2, $3, $4, $5, $6)`

		if _, err := tx.ExecContext(ctx, insert,
			po.ID, po.TenantID, po.LotID, nullUUID(po.BuyerID), po.DocumentURL, po.UploadedAt,
		); err != nil {
			return writeError(err, "failed to insert purchase order")
		}

		recount := `
			UPDATE lots
			SET po_count = (SELECT count(*) FROM purchase_orders WHERE lot_id = $1 AND tenant_id = $2),
			    updated_at = $3
			WHERE id = $1 AND tenant_id = $2
			RETURNING po_count`

		if err := tx.GetContext(ctx, &count, recount, po.LotID, po.TenantID, time.Now().UTC()); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to recount purchase orders")
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

type NotificationRepository struct {
	store
}

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{store: store{db: db}}
}

func (r *NotificationRepository) Notify(ctx context.Context, n entity.Notification) error {
	query := `
		INSERT INTO notifications (id, tenant_id, lot_id, kind, title, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := r.db.ExecContext(ctx, query,
		uuid.New(), n.TenantID, n.LotID, n.Kind, n.Title, n.Body, time.Now().UTC(),
	); err != nil {
		return writeError(err, "failed to insert notification")
	}

	return nil
}
