package httpx

import (
	"context"
	"fmt"
	"net/http"
)

// authenticator hands out a bearer token for outgoing requests. Refresh is
// called once after the upstream rejects the current token with 401.
type authenticator interface {
	BearerToken(ctx context.Context) (string, error)
	Refresh(ctx context.Context) (string, error)
}

type AuthBearerRoundTripper struct {
	next          http.RoundTripper
	authenticator authenticator
}

func NewAuthBearerRoundTripper(
	next http.RoundTripper,
	authenticator authenticator,
) AuthBearerRoundTripper {
	return AuthBearerRoundTripper{
		next:          next,
		authenticator: authenticator,
	}
}

func (rt AuthBearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := rt.authenticator.BearerToken(req.Context())
	if err != nil {
		return nil, fmt.Errorf("authenticator.BearerToken: %w", err)
	}

	resp, err := rt.next.RoundTrip(withBearer(req, token))
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	if resp.StatusCode != http.StatusUnauthorized || !replayable(req) {
		return resp, nil
	}

	resp.Body.Close()

	token, err = rt.authenticator.Refresh(req.Context())
	if err != nil {
		return nil, fmt.Errorf("authenticator.Refresh: %w", err)
	}

	retry := withBearer(req, token)

	if req.GetBody != nil {
		if retry.Body, err = req.GetBody(); err != nil {
			return nil, fmt.Errorf("req.GetBody: %w", err)
		}
	}

	return rt.next.RoundTrip(retry) //nolint:wrapcheck
}

// withBearer clones the request; RoundTrippers must not mutate the caller's.
func withBearer(req *http.Request, token string) *http.Request {
	r := req.Clone(req.Context())
	r.Header.Set("Authorization", "Bearer "+token)

	return r
}

func replayable(req *http.Request) bool {
	return req.Body == nil || req.Body == http.NoBody || req.GetBody != nil
}
