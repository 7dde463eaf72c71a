package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"lotmarket/pkg/httpx"
)

type staticAuthenticator struct {
	token     string
	refreshed string
	refreshes int
}

func (a *staticAuthenticator) BearerToken(context.Context) (string, error) {
	return a.token, nil
}

func (a *staticAuthenticator) Refresh(context.Context) (string, error) {
	a.refreshes++
	a.token = a.refreshed

	return a.token, nil
}

func TestAuthBearerRoundTripper(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name          string
		acceptToken   string
		wantStatus    int
		wantRefreshes int
	}{
		{
			name:        "Current token accepted",
			acceptToken: "old",
			wantStatus:  http.StatusOK,
		},
		{
			name:          "Refresh after 401",
			acceptToken:   "new",
			wantStatus:    http.StatusOK,
			wantRefreshes: 1,
		},
		{
			name:          "Refreshed token still rejected",
			acceptToken:   "other",
			wantStatus:    http.StatusUnauthorized,
			wantRefreshes: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("Authorization") != "Bearer "+tc.acceptToken {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				w.WriteHeader(http.StatusOK)
			}))
			defer srv.Close()

			auth := &staticAuthenticator{token: "old", refreshed: "new"}
			client := &http.Client{Transport: httpx.NewAuthBearerRoundTripper(http.DefaultTransport, auth)}

			req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, http.NoBody)
			rq.NoError(err)

			resp, err := client.Do(req)
			rq.NoError(err)

			defer resp.Body.Close()

			rq.Equal(tc.wantStatus, resp.StatusCode)
			rq.Equal(tc.wantRefreshes, auth.refreshes)
			rq.Empty(req.Header.Get("Authorization"))
		})
	}
}
