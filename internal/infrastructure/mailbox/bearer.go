package mailbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"lotmarket/pkg/contextx"
)

var errNoAccessToken = errors.New("no access token in context")

// Refresher выпускает новый токен в обход кэша.
type Refresher interface {
	Refresh(ctx context.Context, tenantID uuid.UUID, userID string) (string, error)
}

type contextKeyAccessToken struct{}

func withAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, contextKeyAccessToken{}, token)
}

// bearer отдаёт транспорту токен текущего вызова. После 401 обновляет его
// для ящика из контекста опроса.
type bearer struct {
	refresher Refresher
}

func (b bearer) BearerToken(ctx context.Context) (string, error) {
	token, _ := ctx.Value(contextKeyAccessToken{}).(string)
	if token == "" {
		return "", errNoAccessToken
	}

	return token, nil
}

func (b bearer) Refresh(ctx context.Context) (string, error) {
	if b.refresher == nil {
		return "", errors.New("token refresh is not configured")
	}

	rawTenant, err := contextx.TenantIDFromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("contextx.TenantIDFromContext: %w", err)
	}

	tenantID, err := uuid.Parse(rawTenant.String())
	if err != nil {
		return "", fmt.Errorf("uuid.Parse: %w", err)
	}

	userID, err := contextx.UserIDFromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("contextx.UserIDFromContext: %w", err)
	}

	return b.refresher.Refresh(ctx, tenantID, userID.String()) //nolint:wrapcheck
}
