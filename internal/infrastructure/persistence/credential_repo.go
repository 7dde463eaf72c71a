package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lotmarket/internal/domain"
	"lotmarket/internal/domain/entity"
	"lotmarket/pkg/errcodes"
)

type CredentialRepository struct {
	store
}

func NewCredentialRepository(db *sqlx.DB) *CredentialRepository {
	return &CredentialRepository{store: store{db: db}}
}

func (r *CredentialRepository) Get(ctx context.Context, tenantID uuid.UUID, userID string) (*entity.MailboxCredential, error) {
	query := `
		SELECT tenant_id, user_id, mailbox_address, refresh_token, access_token, expires_at
		FROM mailbox_credentials
		WHERE tenant_id = $1 AND user_id = $2`

	var schema credentialSchema
	if err := r.db.GetContext(ctx, &schema, query, tenantID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.CredentialMissing, "mailbox credential not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get mailbox credential")
	}

	return schema.toDomain(), nil
}

// SaveTokens записывает обновлённую пару токенов. Пустой refresh token не
// затирает сохранённый: провайдер не всегда его ротирует.
func (r *CredentialRepository) SaveTokens(ctx context.Context, cred entity.MailboxCredential) error {
	query := `
		UPDATE mailbox_credentials
		SET access_token = $1,
		    refresh_token = COALESCE(NULLIF($2, ''), refresh_token),
		    expires_at = $3
		WHERE tenant_id = $4 AND user_id = $5`

	res, err := r.db.ExecContext(ctx, query,
		cred.AccessToken, cred.RefreshToken, cred.ExpiresAt, cred.TenantID, cred.UserID,
	)
	if err != nil {
		return writeError(err, "failed to save mailbox tokens")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
	}

	if rows == 0 {
		return domain.NewError(errcodes.CredentialMissing, "mailbox credential not found")
	}

	return nil
}

// ListConnected — ящики, которые можно опрашивать.
func (r *CredentialRepository) ListConnected(ctx context.Context) ([]entity.MailboxCredential, error) {
	query := `
		SELECT tenant_id, user_id, mailbox_address, refresh_token, access_token, expires_at
		FROM mailbox_credentials
		WHERE refresh_token <> '' OR access_token <> ''
		ORDER BY tenant_id, user_id`

	var schemas []credentialSchema
	if err := r.db.SelectContext(ctx, &schemas, query); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list mailbox credentials")
	}

	creds := make([]entity.MailboxCredential, 0, len(schemas))
	for i := range schemas {
		creds = append(creds, *schemas[i].toDomain())
	}

	return creds, nil
}
