package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lotmarket/internal/domain"
	"lotmarket/internal/domain/entity"
	"lotmarket/pkg/errcodes"
)

type EmailOfferRepository struct {
	store
}

func NewEmailOfferRepository(db *sqlx.DB) *EmailOfferRepository {
	return &EmailOfferRepository{store: store{db: db}}
}

func (r *EmailOfferRepository) ExistsByMessageID(ctx context.Context, tenantID uuid.UUID, messageID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM email_offers WHERE tenant_id = $1 AND source_message_id = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, tenantID, messageID); err != nil {
		return false, domain.WrapError(err, errcodes.InternalServerError, "failed to check email offer existence")
	}

	return exists, nil
}

// Create сохраняет письмо и все его строки атомарно.
func (r *EmailOfferRepository) Create(ctx context.Context, offer *entity.EmailOffer) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO email_offers (
				id, tenant_id, lot_id, deal_id, batch_id, thread_id, round_id,
				source_message_id, buyer_email, buyer_name, received_at,
				currency, raw_html, status
			) VALUES (
				:id, :tenant_id, :lot_id, :deal_id, :batch_id, :thread_id, :round_id,
				:source_message_id, :buyer_email, :buyer_name, :received_at,
				:currency, :raw_html, :status
			)`

		if _, err := tx.NamedExecContext(ctx, query, fromEmailOffer(offer)); err != nil {
			return writeError(err, "failed to insert email offer")
		}

		lineQuery := `
			INSERT INTO email_offer_lines (
				id, email_offer_id, line_ref_raw, line_ref_norm, line_item_id,
				qty, amount, pricing_mode, notes
			) VALUES (
				:id, :email_offer_id, :line_ref_raw, :line_ref_norm, :line_item_id,
				:qty, :amount, :pricing_mode, :notes
			)`

		for i, line := range offer.Lines {
			if _, err := tx.NamedExecContext(ctx, lineQuery, fromEmailOfferLine(offer.ID, line)); err != nil {
				return writeError(err, fmt.Sprintf("failed to insert email offer line %d", i))
			}
		}

		return nil
	})
}

type OfferRepository struct {
	store
}

func NewOfferRepository(db *sqlx.DB) *OfferRepository {
	return &OfferRepository{store: store{db: db}}
}

// Create сохраняет агрегированное предложение со строками. Нарушение
// check-ограничения статуса приходит как errcodes.ConstraintViolation.
func (r *OfferRepository) Create(ctx context.Context, offer *entity.Offer) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO offers (
				id, tenant_id, lot_id, deal_id, round_id, buyer_id, buyer_email,
				source, mode, currency, total_amount, status, email_offer_id, created_at
			) VALUES (
				:id, :tenant_id, :lot_id, :deal_id, :round_id, :buyer_id, :buyer_email,
				:source, :mode, :currency, :total_amount, :status, :email_offer_id, :created_at
			)`

		if _, err := tx.NamedExecContext(ctx, query, fromOffer(offer)); err != nil {
			return writeError(err, "failed to insert offer")
		}

		if len(offer.Lines) == 0 {
			return nil
		}

		lines := make([]offerLineSchema, 0, len(offer.Lines))
		for _, l := range offer.Lines {
			lines = append(lines, fromOfferLine(offer.ID, l))
		}

		lineQuery := `
			INSERT INTO offer_lines (id, offer_id, line_item_id, line_ref, unit_price, qty, extended_amount)
			VALUES (:id, :offer_id, :line_item_id, :line_ref, :unit_price, :qty, :extended_amount)`

		if _, err := tx.NamedExecContext(ctx, lineQuery, lines); err != nil {
			return writeError(err, "failed to insert offer lines")
		}

		return nil
	})
}
