package offer_test

import (
	"context"
	"errors"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"lotmarket/internal/domain"
	"lotmarket/internal/domain/entity"
	"lotmarket/internal/domain/service/offer"
	"lotmarket/internal/domain/service/round"
	"lotmarket/internal/domain/value"
	"lotmarket/pkg/errcodes"
)

var (
	tenantID = uuid.MustParse("c2f3d4e5-0000-4000-8000-000000000001")
	lotID    = uuid.MustParse("c2f3d4e5-0000-4000-8000-000000000002")
	buyerID  = uuid.MustParse("c2f3d4e5-0000-4000-8000-000000000003")
	lineA    = uuid.MustParse("c2f3d4e5-0000-4000-8000-00000000000a")
	lineB    = uuid.MustParse("c2f3d4e5-0000-4000-8000-00000000000b")
	roundID  = uuid.MustParse("c2f3d4e5-0000-4000-8000-0000000000ff")
)

type deps struct {
	store   *offer.StoreMock
	invites *offer.InviteRepositoryMock
	lots    *offer.LotRepositoryMock
	rounds  *offer.RoundResolverMock
	hook    *offer.LotHookMock
}

func newDeps() deps {
	return deps{
		store: &offer.StoreMock{CreateFunc: func(context.Context, *entity.Offer) error { return nil }},
		invites: &offer.InviteRepositoryMock{
			GetByTokenFunc: func(_ context.Context, _ uuid.UUID, token string) (*entity.Invite, error) {
				if token != "inv-1" {
					return nil, domain.NewError(errcodes.InviteNotFound, "invite not found")
				}
				return &entity.Invite{Token: token, TenantID: tenantID, LotID: lotID, BuyerID: buyerID}, nil
			},
		},
		lots: &offer.LotRepositoryMock{
			GetByIDFunc: func(context.Context, uuid.UUID, uuid.UUID) (*entity.Lot, error) {
				return &entity.Lot{ID: lotID, TenantID: tenantID, Currency: "USD", Status: value.LotStatusOpen}, nil
			},
			LotLineItemsFunc: func(context.Context, uuid.UUID, uuid.UUID) ([]entity.LineItem, error) {
				return []entity.LineItem{
					{ID: lineA, LotID: lotID, LineRef: "LN-001", Qty: 10},
					{ID: lineB, LotID: lotID, LineRef: "LN-002", Qty: 4},
				}, nil
			},
		},
		rounds: &offer.RoundResolverMock{
			ResolveForInviteFunc: func(context.Context, entity.Invite) (round.Resolution, error) {
				return round.Resolution{RoundID: &roundID, Source: round.SourceLive, Backfilled: true}, nil
			},
		},
		hook: &offer.LotHookMock{OnOfferCreatedFunc: func(context.Context, uuid.UUID, uuid.UUID) error { return nil }},
	}
}

func (d deps) service() *offer.Service {
	return offer.NewService(d.store, d.invites, d.lots, d.rounds).WithLotHook(d.hook)
}

func qty(n int) *int { return &n }

func TestSubmitLines(t *testing.T) {
	rq := require.New(t)

	d := newDeps()

	got, err := d.service().Submit(context.Background(), tenantID, "inv-1", offer.Submission{
		Mode: value.OfferModeLines,
		Lines: []offer.SubmissionLine{
			{LineRef: "ln001", UnitPrice: decimal.NewFromInt(12), Qty: qty(5)},
			{LineRef: "LN 002", UnitPrice: decimal.RequireFromString("7.50")},
		},
	})
	rq.NoError(err)

	rq.Equal(&roundID, got.RoundID)
	rq.Equal(&buyerID, got.BuyerID)
	rq.Equal(value.OfferStatusSubmitted, *got.Status)
	rq.Len(got.Lines, 2)
	rq.Equal(lineA, got.Lines[0].LineItemID)
	rq.Equal(5, got.Lines[0].Qty)
	rq.Equal(4, got.Lines[1].Qty)
	rq.True(decimal.NewFromInt(90).Equal(*got.TotalAmount), got.TotalAmount.String())

	rq.Len(d.store.CreateCalls(), 1)
	rq.Len(d.hook.OnOfferCreatedCalls(), 1)
}

func TestSubmitTakeAll(t *testing.T) {
	rq := require.New(t)

	d := newDeps()

	got, err := d.service().Submit(context.Background(), tenantID, "inv-1", offer.Submission{
		Mode:  value.OfferModeTakeAll,
		Total: decimal.NewFromInt(15000),
	})
	rq.NoError(err)
	rq.True(decimal.NewFromInt(15000).Equal(*got.TotalAmount))
	rq.Empty(got.Lines)
	rq.Empty(d.lots.LotLineItemsCalls())
}

func TestSubmitRejected(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		token    string
		sub      offer.Submission
		wantCode failure.ErrorCode
		notFound bool
	}{
		{name: "Unknown mode", token: "inv-1", sub: offer.Submission{Mode: "bundle"}, wantCode: errcodes.InvalidOfferMode},
		{name: "Unknown invite", token: "inv-x", sub: offer.Submission{Mode: value.OfferModeTakeAll, Total: decimal.NewFromInt(1)}, wantCode: errcodes.InviteNotFound, notFound: true},
		{name: "Non-positive total", token: "inv-1", sub: offer.Submission{Mode: value.OfferModeTakeAll}, wantCode: errcodes.InvalidTotal},
		{name: "No lines", token: "inv-1", sub: offer.Submission{Mode: value.OfferModeLines}, wantCode: errcodes.NoUsableLines},
		{
			name:     "Zero unit price",
			token:    "inv-1",
			sub:      offer.Submission{Mode: value.OfferModeLines, Lines: []offer.SubmissionLine{{LineRef: "LN-001", UnitPrice: decimal.Zero}}},
			wantCode: errcodes.InvalidUnitPrice,
		},
		{
			name:     "Unknown line ref",
			token:    "inv-1",
			sub:      offer.Submission{Mode: value.OfferModeLines, Lines: []offer.SubmissionLine{{LineRef: "LN-404", UnitPrice: decimal.NewFromInt(3)}}},
			wantCode: errcodes.UnknownLineRef,
		},
		{
			name:     "Only zero quantities",
			token:    "inv-1",
			sub:      offer.Submission{Mode: value.OfferModeLines, Lines: []offer.SubmissionLine{{LineRef: "LN-001", UnitPrice: decimal.NewFromInt(3), Qty: qty(0)}}},
			wantCode: errcodes.NoUsableLines,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			d := newDeps()

			_, err := d.service().Submit(context.Background(), tenantID, tc.token, tc.sub)
			rq.Error(err)
			rq.Equal(tc.wantCode, failure.Code(err))
			rq.Equal(tc.notFound, failure.IsNotFoundError(err))
			rq.Equal(!tc.notFound, failure.IsInvalidArgumentError(err))
			rq.Empty(d.store.CreateCalls())
			rq.Empty(d.hook.OnOfferCreatedCalls())
		})
	}
}

func TestCreateSubmitted(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name      string
		errs      []error
		wantErr   bool
		wantCalls int
		nilStatus bool
	}{
		{name: "Accepted", errs: []error{nil}, wantCalls: 1},
		{name: "Status rejected once", errs: []error{domain.NewError(errcodes.ConstraintViolation, "check"), nil}, wantCalls: 2, nilStatus: true},
		{name: "Unrelated failure", errs: []error{errors.New("disk full")}, wantCalls: 1, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var calls int
			store := &offer.StoreMock{CreateFunc: func(context.Context, *entity.Offer) error {
				calls++
				return tc.errs[calls-1]
			}}

			o := &entity.Offer{ID: uuid.New()}
			err := offer.CreateSubmitted(context.Background(), store, o)

			rq.Equal(tc.wantErr, err != nil)
			rq.Equal(tc.wantCalls, calls)
			rq.Equal(tc.nilStatus, o.Status == nil)
		})
	}
}
