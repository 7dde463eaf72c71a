package contextx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"lotmarket/pkg/contextx"
)

func TestTenantID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	tenantID, err := contextx.TenantIDFromContext(ctx)
	rq.Empty(tenantID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "tenant id: no value in context")

	ctx = contextx.WithTenantID(ctx, "9b2f6a0e-5d1c-4a57-9a0b-3f1e2d4c5b6a")

	tenantID, err = contextx.TenantIDFromContext(ctx)
	rq.NoError(err)
	rq.Equal(contextx.TenantID("9b2f6a0e-5d1c-4a57-9a0b-3f1e2d4c5b6a"), tenantID)
}
