package mailbox_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"lotmarket/internal/infrastructure/mailbox"
	"lotmarket/pkg/contextx"
)

type refresher struct {
	token string
	calls int
}

func (r *refresher) Refresh(context.Context, uuid.UUID, string) (string, error) {
	r.calls++
	return r.token, nil
}

const firstPage = `{
	"value": [{
		"id": "AAMk-1",
		"subject": "RE: Offer request [LOT-7F3K]",
		"receivedDateTime": "2026-03-02T09:15:00Z",
		"from": {"emailAddress": {"name": "Jane Buyer", "address": "jane@buyer.example"}},
		"body": {"contentType": "html", "content": "<table><tr><td>Line Ref</td><td>Offer</td></tr></table>"},
		"bodyPreview": "Line Ref Offer"
	}],
	"@odata.nextLink": "%s/me/messages?page=2"
}`

const secondPage = `{
	"value": [{
		"id": "AAMk-2",
		"subject": "RE: [LOT-7F3K]",
		"receivedDateTime": "2026-03-01T18:00:00Z",
		"from": {"emailAddress": {"name": "", "address": "ops@other.example"}},
		"body": {"contentType": "text", "content": "we pass"},
		"bodyPreview": "we pass"
	}]
}`

func TestFetchMessages(t *testing.T) {
	rq := require.New(t)

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("Bearer token-1", r.Header.Get("Authorization"))

		if r.URL.Query().Get("page") == "2" {
			fmt.Fprint(w, secondPage)
			return
		}

		rq.Equal("/me/messages", r.URL.Path)
		rq.Equal("contains(subject,'[LOT-')", r.URL.Query().Get("$filter"))
		rq.Equal("receivedDateTime desc", r.URL.Query().Get("$orderby"))
		rq.Equal("25", r.URL.Query().Get("$top"))

		fmt.Fprintf(w, firstPage, srv.URL)
	}))
	defer srv.Close()

	client := mailbox.NewGraphClient(mailbox.GraphConfig{BaseURL: srv.URL, PageSize: 25, MaxPages: 2}, nil)

	msgs, err := client.FetchMessages(context.Background(), "token-1", "[LOT-")
	rq.NoError(err)
	rq.Len(msgs, 2)

	rq.Equal("AAMk-1", msgs[0].ID)
	rq.Equal("jane@buyer.example", msgs[0].Sender.Address)
	rq.Contains(msgs[0].HTMLBody, "<table>")
	rq.Equal(2026, msgs[0].ReceivedAt.Year())

	rq.Empty(msgs[1].HTMLBody)
	rq.Equal("we pass", msgs[1].TextPreview)
}

func TestFetchMessagesStopsAtPageLimit(t *testing.T) {
	rq := require.New(t)

	var (
		srv   *httptest.Server
		pages int
	)
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		pages++
		fmt.Fprintf(w, firstPage, srv.URL)
	}))
	defer srv.Close()

	client := mailbox.NewGraphClient(mailbox.GraphConfig{BaseURL: srv.URL}, nil)

	msgs, err := client.FetchMessages(context.Background(), "token-1", "[LOT-")
	rq.NoError(err)
	rq.Len(msgs, 1)
	rq.Equal(1, pages)
}

func TestFetchMessagesRefreshesRejectedToken(t *testing.T) {
	rq := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, secondPage)
	}))
	defer srv.Close()

	ref := &refresher{token: "fresh"}
	client := mailbox.NewGraphClient(mailbox.GraphConfig{BaseURL: srv.URL}, ref)

	ctx := contextx.WithTenantID(context.Background(), contextx.TenantID(uuid.NewString()))
	ctx = contextx.WithUserID(ctx, "seller-1")

	msgs, err := client.FetchMessages(ctx, "stale", "[DL-")
	rq.NoError(err)
	rq.Len(msgs, 1)
	rq.Equal(1, ref.calls)
}

func TestFetchMessagesFailure(t *testing.T) {
	rq := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, `{"error":{"code":"ServiceUnavailable"}}`)
	}))
	defer srv.Close()

	client := mailbox.NewGraphClient(mailbox.GraphConfig{BaseURL: srv.URL}, nil)

	_, err := client.FetchMessages(context.Background(), "token-1", "[LOT-")
	rq.ErrorContains(err, "mailbox responded 503")

	_, err = client.FetchMessages(context.Background(), "", "[LOT-")
	rq.ErrorContains(err, "no access token")
}
