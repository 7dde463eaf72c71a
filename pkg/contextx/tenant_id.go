package contextx

import (
	"context"
	"fmt"
)

type TenantID string

type contextKeyTenantID struct{}

func (t TenantID) String() string {
	return string(t)
}

func WithTenantID(ctx context.Context, tenantID TenantID) context.Context {
	return context.WithValue(ctx, contextKeyTenantID{}, tenantID)
}

func TenantIDFromContext(ctx context.Context) (TenantID, error) {
	tenantID, ok := ctx.Value(contextKeyTenantID{}).(TenantID)
	if !ok {
		return "", fmt.Errorf("tenant id: %w", ErrNoValue)
	}

	return tenantID, nil
}
