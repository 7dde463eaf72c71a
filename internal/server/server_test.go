package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"lotmarket/internal/domain/entity"
	"lotmarket/internal/domain/service/award"
	"lotmarket/internal/domain/service/ingest"
	"lotmarket/internal/domain/service/offer"
	"lotmarket/internal/domain/service/round"
	"lotmarket/internal/domain/value"
	"lotmarket/pkg/errcodes"
	"lotmarket/pkg/middlewarex"
	"lotmarket/pkg/rest"
	"lotmarket/pkg/tests"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type fixture struct {
	offers  *offerServiceMock
	results *resultsServiceMock
	lots    *lotServiceMock
	polls   *pollServiceMock
	client  tests.APIClient
	anon    tests.APIClient
	tenant  uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		offers:  &offerServiceMock{},
		results: &resultsServiceMock{},
		lots:    &lotServiceMock{},
		polls:   &pollServiceMock{},
		tenant:  uuid.New(),
	}

	r := chi.NewRouter()
	r.Use(middlewarex.Tenant)
	NewServer(
		NewOfferServer(f.offers, f.results),
		NewLotServer(f.lots),
		NewMailServer(f.polls),
	).RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	f.anon = tests.NewAPIClient(srv.URL, srv.Client())
	f.client = f.anon.WithTenant(f.tenant.String(), "seller@example.com")

	return f
}

func TestPostInviteOffer(t *testing.T) {
	rq := require.New(t)
	f := newFixture(t)

	lotID := uuid.New()
	total := decimal.RequireFromString("90")
	status := value.OfferStatusSubmitted

	f.offers.SubmitFunc = func(_ context.Context, tenantID uuid.UUID, token string, sub offer.Submission) (*entity.Offer, error) {
		rq.Equal(f.tenant, tenantID)
		rq.Equal("inv-1", token)
		rq.Equal(value.OfferModeLines, sub.Mode)
		rq.Len(sub.Lines, 2)
		rq.Nil(sub.Lines[1].Qty)

		return &entity.Offer{
			ID:          uuid.New(),
			LotID:       &lotID,
			Mode:        sub.Mode,
			Currency:    "USD",
			TotalAmount: &total,
			Status:      &status,
			Lines:       []entity.OfferLine{{LineItemID: uuid.New(), LineRef: "LN-001", Qty: 5}},
		}, nil
	}

	var out rest.Offer

	resp, err := f.client.PostJSON(context.Background(), "/v1/invites/inv-1/offers", nil,
		`{"mode":"lines","lines":[{"line_ref":"LN-001","unit_price":"12","qty":5},{"line_ref":"LN-002","unit_price":7.5}]}`,
		&out, nil)
	rq.NoError(err)
	rq.Equal(http.StatusCreated, resp.StatusCode)
	rq.Equal(lotID.String(), out.LotID)
	rq.True(total.Equal(*out.TotalAmount))
	rq.Equal("submitted", *out.Status)
	rq.Len(out.Lines, 1)
}

func TestPostInviteOfferRejected(t *testing.T) {
	testCases := []struct {
		name     string
		headers  bool
		body     string
		svcErr   error
		status   int
		code     string
		noSubmit bool
	}{
		{
			name:     "no tenant header",
			body:     `{"mode":"take_all","total":100}`,
			status:   http.StatusBadRequest,
			code:     errcodes.TenantRequired.String(),
			noSubmit: true,
		},
		{
			name:     "unknown mode",
			headers:  true,
			body:     `{"mode":"auction"}`,
			status:   http.StatusBadRequest,
			code:     errcodes.ValidationError.String(),
			noSubmit: true,
		},
		{
			name:     "take all without total",
			headers:  true,
			body:     `{"mode":"take_all"}`,
			status:   http.StatusBadRequest,
			code:     errcodes.ValidationError.String(),
			noSubmit: true,
		},
		{
			name:    "invite not found",
			headers: true,
			body:    `{"mode":"take_all","total":100}`,
			svcErr: failure.NewNotFoundError("no invite",
				failure.WithCode(errcodes.InviteNotFound), failure.WithDescription("Invite not found")),
			status: http.StatusNotFound,
			code:   errcodes.InviteNotFound.String(),
		},
		{
			name:    "unknown line ref",
			headers: true,
			body:    `{"mode":"lines","lines":[{"line_ref":"ZZ","unit_price":1}]}`,
			svcErr: failure.NewInvalidArgumentError("unknown", failure.WithCode(errcodes.UnknownLineRef)),
			status: http.StatusBadRequest,
			code:   errcodes.UnknownLineRef.String(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)
			f := newFixture(t)

			f.offers.SubmitFunc = func(context.Context, uuid.UUID, string, offer.Submission) (*entity.Offer, error) {
				return nil, tc.svcErr
			}

			client := f.anon
			if tc.headers {
				client = f.client
			}

			var errOut errorBody

			resp, err := client.PostJSON(context.Background(), "/v1/invites/inv-1/offers", nil, tc.body, nil, &errOut)
			rq.NoError(err)
			rq.Equal(tc.status, resp.StatusCode)
			rq.Equal(tc.code, errOut.Code)

			if tc.noSubmit {
				rq.Empty(f.offers.SubmitCalls())
			}
		})
	}
}

func TestGetInviteResults(t *testing.T) {
	rq := require.New(t)
	f := newFixture(t)

	roundID := uuid.New()
	number := 2
	price := decimal.RequireFromString("12.5")
	qty := 10

	f.results.InviteResultsFunc = func(_ context.Context, _ uuid.UUID, token string) (award.InviteResults, error) {
		rq.Equal("inv-seed", token)

		return award.InviteResults{
			Invite:         entity.Invite{Token: token, LotID: uuid.New(), BuyerID: uuid.New(), RoundID: &roundID},
			EffectiveRound: &award.EffectiveRound{ID: roundID, Number: &number, Source: round.SourcePinned},
			IsWinner:       true,
			Awards: []entity.AwardedLine{
				{ID: uuid.New(), LineItemID: uuid.New(), RoundID: &roundID, UnitPrice: &price, Qty: &qty, ExtendedAmount: decimal.NewFromInt(125)},
			},
			AwardsTotal: decimal.NewFromInt(125),
		}, nil
	}

	var out rest.InviteResults

	resp, err := f.client.Get(context.Background(), "/v1/invites/inv-seed/results", nil, &out, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.True(out.IsWinner)
	rq.Equal(roundID.String(), out.EffectiveRound.ID)
	rq.Equal("pinned", out.EffectiveRound.Source)
	rq.Len(out.Awards, 1)
	rq.True(decimal.NewFromInt(125).Equal(out.AwardsTotal))
}

func TestPostLotStatus(t *testing.T) {
	testCases := []struct {
		name   string
		path   string
		body   string
		svcErr error
		status int
		code   string
	}{
		{name: "status", path: "/status", body: `{"status":"sold"}`, status: http.StatusOK},
		{name: "transition alias", path: "/transition", body: `{"status":"sold"}`, status: http.StatusOK},
		{
			name:   "unknown status",
			path:   "/status",
			body:   `{"status":"archived"}`,
			status: http.StatusBadRequest,
			code:   errcodes.InvalidLotStatus.String(),
		},
		{
			name: "lost race",
			path: "/status",
			body: `{"status":"sold"}`,
			svcErr: failure.NewConflictError("moved", failure.WithCode(errcodes.LotStatusChanged)),
			status: http.StatusConflict,
			code:   errcodes.LotStatusChanged.String(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)
			f := newFixture(t)

			id := uuid.New()

			f.lots.TransitionFunc = func(_ context.Context, _ uuid.UUID, lotID uuid.UUID, requested value.LotStatus) (*entity.Lot, error) {
				rq.Equal(id, lotID)
				if tc.svcErr != nil {
					return nil, tc.svcErr
				}
				return &entity.Lot{ID: lotID, Status: requested}, nil
			}

			var (
				out    rest.Lot
				errOut errorBody
			)

			resp, err := f.client.PostJSON(context.Background(), "/v1/lots/"+id.String()+tc.path, nil, tc.body, &out, &errOut)
			rq.NoError(err)
			rq.Equal(tc.status, resp.StatusCode)

			if tc.status == http.StatusOK {
				rq.Equal("sold", out.Status)
			} else {
				rq.Equal(tc.code, errOut.Code)
			}
		})
	}
}

func TestPostLotPurchaseOrder(t *testing.T) {
	rq := require.New(t)
	f := newFixture(t)

	id := uuid.New()
	buyerID := uuid.New()

	f.lots.RecordPurchaseOrderFunc = func(_ context.Context, po entity.PurchaseOrder) (*entity.Lot, error) {
		rq.Equal(f.tenant, po.TenantID)
		rq.Equal(id, po.LotID)
		rq.Equal(buyerID, *po.BuyerID)
		return &entity.Lot{ID: id, Status: value.LotStatusSaleInProgress, POCount: 1}, nil
	}

	var out rest.Lot

	resp, err := f.client.Post(context.Background(), "/v1/lots/"+id.String()+"/purchase-orders", nil,
		rest.PurchaseOrderRequest{DocumentURL: "s3://po/1.pdf", BuyerID: lo.ToPtr(buyerID.String())}, &out, nil)
	rq.NoError(err)
	rq.Equal(http.StatusCreated, resp.StatusCode)
	rq.Equal(1, out.POCount)
	rq.Equal("sale_in_progress", out.Status)

	var errOut errorBody

	resp, err = f.client.Post(context.Background(), "/v1/lots/not-a-uuid/purchase-orders", nil,
		rest.PurchaseOrderRequest{DocumentURL: "s3://po/1.pdf"}, nil, &errOut)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(errcodes.InvalidLotID.String(), errOut.Code)
	rq.Len(f.lots.RecordPurchaseOrderCalls(), 1)
}

func TestPutExpectedPOCount(t *testing.T) {
	rq := require.New(t)
	f := newFixture(t)

	id := uuid.New()

	f.lots.SetExpectedPOCountFunc = func(_ context.Context, _ uuid.UUID, lotID uuid.UUID, count int) (*entity.Lot, error) {
		return &entity.Lot{ID: lotID, ExpectedPOCount: count}, nil
	}

	var out rest.Lot

	resp, err := f.client.Put(context.Background(), "/v1/lots/"+id.String()+"/expected-po-count", nil,
		map[string]int{"expected_po_count": 0}, &out, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Zero(out.ExpectedPOCount)

	var errOut errorBody

	resp, err = f.client.Put(context.Background(), "/v1/lots/"+id.String()+"/expected-po-count", nil,
		map[string]int{}, nil, &errOut)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Len(f.lots.SetExpectedPOCountCalls(), 1)
}

func TestPostEmailPoll(t *testing.T) {
	rq := require.New(t)
	f := newFixture(t)

	offerID := uuid.New()

	f.polls.PollFunc = func(_ context.Context, tenantID uuid.UUID, userID string) (ingest.PollResult, error) {
		rq.Equal(f.tenant, tenantID)
		rq.Equal("seller@example.com", userID)

		return ingest.PollResult{
			Processed: 1,
			Results: []ingest.MessageResult{
				{MessageID: "m1", Outcome: ingest.OutcomeIngested, Status: value.EmailOfferParsed, OfferID: &offerID},
				{MessageID: "m2", Outcome: ingest.OutcomeDuplicate},
			},
		}, nil
	}

	var out rest.PollResponse

	resp, err := f.client.Post(context.Background(), "/v1/email/poll", nil, struct{}{}, &out, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal(1, out.Processed)
	rq.Len(out.Messages, 2)
	rq.Equal(offerID.String(), *out.Messages[0].OfferID)

	var errOut errorBody

	resp, err = f.anon.Post(context.Background(), "/v1/email/poll",
		http.Header{"X-Tenant-Id": []string{f.tenant.String()}}, struct{}{}, nil, &errOut)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(errcodes.UserRequired.String(), errOut.Code)
}
