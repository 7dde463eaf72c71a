package middlewarex

import (
	"net/http"

	"lotmarket/pkg/contextx"
)

const (
	headerNameTenantID = "X-Tenant-Id"
	headerNameUserID   = "X-User-Id"
)

// Tenant copies the tenant and user resolved by the upstream auth gateway
// into the request context. Missing headers are left for handlers to reject.
func Tenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if tenantID := r.Header.Get(headerNameTenantID); tenantID != "" {
			ctx = contextx.WithTenantID(ctx, contextx.TenantID(tenantID))
		}

		if userID := r.Header.Get(headerNameUserID); userID != "" {
			ctx = contextx.WithUserID(ctx, contextx.UserID(userID))
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
