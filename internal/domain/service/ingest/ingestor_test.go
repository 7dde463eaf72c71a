package ingest_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"lotmarket/internal/domain"
	"lotmarket/internal/domain/entity"
	"lotmarket/internal/domain/service/ingest"
	"lotmarket/internal/domain/service/round"
	"lotmarket/internal/domain/value"
	"lotmarket/pkg/errcodes"
)

const (
	batchKey  = "LOT-7Q2K"
	offerHTML = `<table><tr><th>Line Ref</th><th>Qty</th><th>Offer</th></tr>` +
		`<tr><td>LN-001</td><td>2</td><td>150</td></tr></table>`
)

var (
	tenantID = uuid.MustParse("0b1a6a50-5d1e-4a53-9a55-7c1c0f1f0001")
	lotID    = uuid.MustParse("0b1a6a50-5d1e-4a53-9a55-7c1c0f1f0002")
	dealID   = uuid.MustParse("0b1a6a50-5d1e-4a53-9a55-7c1c0f1f0003")
	lineID   = uuid.MustParse("0b1a6a50-5d1e-4a53-9a55-7c1c0f1f0004")
	roundID  = uuid.MustParse("0b1a6a50-5d1e-4a53-9a55-7c1c0f1f0005")
	buyerID  = uuid.MustParse("0b1a6a50-5d1e-4a53-9a55-7c1c0f1f0006")
)

// emailStore хранит предложения по message id, повторный опрос видит прошлые вставки.
type emailStore struct {
	mu      sync.Mutex
	offers  map[string]*entity.EmailOffer
	failFor map[string]error
}

func newEmailStore() *emailStore {
	return &emailStore{offers: map[string]*entity.EmailOffer{}, failFor: map[string]error{}}
}

func (s *emailStore) mock() *ingest.EmailOfferStoreMock {
	return &ingest.EmailOfferStoreMock{
		ExistsByMessageIDFunc: func(_ context.Context, _ uuid.UUID, messageID string) (bool, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			_, ok := s.offers[messageID]
			return ok, nil
		},
		CreateFunc: func(_ context.Context, offer *entity.EmailOffer) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			if err := s.failFor[offer.SourceMessageID]; err != nil {
				return err
			}
			s.offers[offer.SourceMessageID] = offer
			return nil
		},
	}
}

type fixture struct {
	fetcher    *ingest.MailFetcherMock
	tokens     *ingest.TokenProviderMock
	locker     *ingest.LockerMock
	emails     *emailStore
	emailMock  *ingest.EmailOfferStoreMock
	aggregates *ingest.AggregateOfferStoreMock
	outreach   *ingest.OutreachRepositoryMock
	buyers     *ingest.BuyerDirectoryMock
	rounds     *ingest.RoundResolverMock
	lots       *ingest.LotHookMock
	observer   *ingest.ObserverMock
}

func newFixture(messages ...entity.InboundMessage) *fixture {
	f := &fixture{emails: newEmailStore()}
	f.emailMock = f.emails.mock()

	f.fetcher = &ingest.MailFetcherMock{
		FetchMessagesFunc: func(_ context.Context, _ string, filter string) ([]entity.InboundMessage, error) {
			if filter != "Offer request" {
				return nil, nil
			}
			return messages, nil
		},
	}
	f.tokens = &ingest.TokenProviderMock{
		AccessTokenFunc: func(context.Context, uuid.UUID, string) (string, error) {
			return "access-token", nil
		},
	}
	f.locker = &ingest.LockerMock{
		AcquireFunc: func(context.Context, string, time.Duration) (string, bool, error) {
			return "lock-token", true, nil
		},
		ReleaseFunc: func(context.Context, string, string) error {
			return nil
		},
	}
	f.aggregates = &ingest.AggregateOfferStoreMock{
		CreateFunc: func(context.Context, *entity.Offer) error { return nil },
	}
	f.outreach = &ingest.OutreachRepositoryMock{
		ListBatchesFunc: func(context.Context, uuid.UUID) ([]entity.LotEmailBatch, error) {
			return []entity.LotEmailBatch{{
				ID:       uuid.New(),
				TenantID: tenantID,
				LotID:    lotID,
				BatchKey: batchKey,
				Currency: "eur",
			}}, nil
		},
		ThreadBySubjectKeyFunc: func(_ context.Context, _ uuid.UUID, key string) (*entity.DealThread, error) {
			if key != "DL-AB12CD" {
				return nil, nil
			}
			return &entity.DealThread{ID: uuid.New(), TenantID: tenantID, DealID: dealID, SubjectKey: key}, nil
		},
		LotLineItemsFunc: func(context.Context, uuid.UUID, uuid.UUID) ([]entity.LineItem, error) {
			return []entity.LineItem{{ID: lineID, LotID: lotID, LineRef: "ln-001", Qty: 4}}, nil
		},
		DealLineItemsFunc: func(context.Context, uuid.UUID, uuid.UUID) ([]entity.LineItem, error) {
			return []entity.LineItem{{ID: lineID, LineRef: "LN 001"}}, nil
		},
		LotCurrencyFunc: func(context.Context, uuid.UUID, uuid.UUID) (string, error) {
			return "", nil
		},
	}
	f.buyers = &ingest.BuyerDirectoryMock{
		BuyerIDByEmailFunc: func(context.Context, uuid.UUID, string) (*uuid.UUID, error) {
			return &buyerID, nil
		},
	}
	f.rounds = &ingest.RoundResolverMock{
		ResolveForLotFunc: func(context.Context, uuid.UUID, uuid.UUID, *uuid.UUID) (round.Resolution, error) {
			return round.Resolution{RoundID: &roundID, Source: round.SourceLive}, nil
		},
	}
	f.lots = &ingest.LotHookMock{
		OnOfferCreatedFunc: func(context.Context, uuid.UUID, uuid.UUID) error { return nil },
	}
	f.observer = &ingest.ObserverMock{
		ObserveMessageFunc: func(string) {},
		ObservePollFunc:    func(string, time.Duration) {},
	}

	return f
}

func (f *fixture) ingestor() *ingest.Ingestor {
	return ingest.NewIngestor(
		ingest.Config{
			LotSubjectFilter:  "Offer request",
			DealSubjectFilter: "[DL-",
			LockTTL:           time.Minute,
		},
		f.fetcher,
		f.tokens,
		f.emailMock,
		f.outreach,
		f.rounds,
	).
		WithAggregates(f.aggregates, f.buyers).
		WithLocker(f.locker).
		WithLotHook(f.lots).
		WithObserver(f.observer)
}

func message(id, subject, body string) entity.InboundMessage {
	return entity.InboundMessage{
		ID:         id,
		Subject:    subject,
		ReceivedAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		Sender:     entity.Sender{Address: "Buyer@Example.com", Name: "Buyer Co"},
		HTMLBody:   body,
	}
}

func TestPollParsedOffer(t *testing.T) {
	rq := require.New(t)

	f := newFixture(message("msg-1", "Re: Offer request "+batchKey, offerHTML))

	res, err := f.ingestor().Poll(context.Background(), tenantID, "user-1")
	rq.NoError(err)
	rq.Equal(1, res.Processed)
	rq.Len(res.Results, 1)
	rq.Equal(ingest.OutcomeIngested, res.Results[0].Outcome)

	stored := f.emails.offers["msg-1"]
	rq.NotNil(stored)
	rq.Equal(value.EmailOfferParsed, stored.Status)
	rq.Equal("EUR", stored.Currency)
	rq.Equal("buyer@example.com", stored.BuyerEmail)
	rq.Equal(&lotID, stored.LotID)
	rq.Equal(&roundID, stored.RoundID)
	rq.Len(stored.Lines, 1)

	line := stored.Lines[0]
	rq.Equal("LN-001", line.LineRefRaw)
	rq.Equal("LN001", line.LineRefNorm)
	rq.Equal(&lineID, line.LineItemID)
	rq.Equal(2, *line.Qty)
	rq.True(decimal.NewFromInt(150).Equal(*line.Amount))
	rq.Equal(value.PricingPerUnit, line.PricingMode)
	rq.Empty(line.Notes)

	rq.Len(f.aggregates.CreateCalls(), 1)
	agg := f.aggregates.CreateCalls()[0].Offer
	rq.Equal(value.OfferStatusSubmitted, *agg.Status)
	rq.True(decimal.NewFromInt(300).Equal(*agg.TotalAmount))
	rq.Equal(&buyerID, agg.BuyerID)
	rq.Equal(&stored.ID, agg.EmailOfferID)
	rq.Len(agg.Lines, 1)
	rq.Equal(lineID, agg.Lines[0].LineItemID)

	rq.Len(f.lots.OnOfferCreatedCalls(), 1)
	rq.Equal(lotID, f.lots.OnOfferCreatedCalls()[0].LotID)
	rq.Len(f.locker.ReleaseCalls(), 1)
	rq.Equal("poll:"+tenantID.String(), f.locker.ReleaseCalls()[0].Key)
}

func TestPollUnknownLineRef(t *testing.T) {
	rq := require.New(t)

	body := `<table><tr><th>Line Ref</th><th>Qty</th><th>Offer</th></tr>` +
		`<tr><td>LN-999</td><td>2</td><td>150</td></tr></table>`

	f := newFixture(message("msg-1", "Offer request "+batchKey, body))

	res, err := f.ingestor().Poll(context.Background(), tenantID, "user-1")
	rq.NoError(err)
	rq.Equal(1, res.Processed)

	stored := f.emails.offers["msg-1"]
	rq.Equal(value.EmailOfferNeedsReview, stored.Status)
	rq.Equal([]string{ingest.NoteUnknownLineRef}, stored.Lines[0].Notes)
	rq.Nil(stored.Lines[0].LineItemID)

	// Ни одной сопоставленной строки: агрегат не создаётся.
	rq.Empty(f.aggregates.CreateCalls())
	rq.Nil(res.Results[0].OfferID)
}

func TestPollIsIdempotent(t *testing.T) {
	rq := require.New(t)

	f := newFixture(message("msg-1", "Offer request "+batchKey, offerHTML))
	ingestor := f.ingestor()

	first, err := ingestor.Poll(context.Background(), tenantID, "user-1")
	rq.NoError(err)
	rq.Equal(1, first.Processed)

	second, err := ingestor.Poll(context.Background(), tenantID, "user-1")
	rq.NoError(err)
	rq.Equal(0, second.Processed)
	rq.Equal(ingest.OutcomeDuplicate, second.Results[0].Outcome)

	rq.Len(f.emailMock.CreateCalls(), 1)
	rq.Len(f.aggregates.CreateCalls(), 1)
}

func TestPollSkipsMessages(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		message entity.InboundMessage
		want    ingest.Outcome
	}{
		{
			name:    "No outreach context",
			message: message("msg-1", "Lunch on Friday?", offerHTML),
			want:    ingest.OutcomeUnmatched,
		},
		{
			name:    "Unknown deal thread",
			message: message("msg-1", "Re: [DL-ZZZZZZ] quote", offerHTML),
			want:    ingest.OutcomeUnmatched,
		},
		{
			name:    "No offer table",
			message: message("msg-1", "Offer request "+batchKey, "<p>Thanks, will reply tomorrow</p>"),
			want:    ingest.OutcomeNoTable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			f := newFixture(tc.message)

			res, err := f.ingestor().Poll(context.Background(), tenantID, "user-1")
			rq.NoError(err)
			rq.Equal(0, res.Processed)
			rq.Equal(tc.want, res.Results[0].Outcome)
			rq.Empty(f.emailMock.CreateCalls())
			rq.Empty(f.lots.OnOfferCreatedCalls())
		})
	}
}

func TestPollDealThread(t *testing.T) {
	rq := require.New(t)

	body := `<table><tr><td>Line Ref</td><td>Offer</td></tr><tr><td>ln001</td><td>Total: $1,250.00</td></tr></table>`

	f := newFixture(message("msg-1", "Offer request [DL-AB12CD]", body))

	res, err := f.ingestor().Poll(context.Background(), tenantID, "user-1")
	rq.NoError(err)
	rq.Equal(1, res.Processed)

	stored := f.emails.offers["msg-1"]
	rq.Equal(&dealID, stored.DealID)
	rq.Nil(stored.LotID)
	rq.Equal("USD", stored.Currency)
	rq.Equal(value.EmailOfferParsed, stored.Status)
	rq.Equal(value.PricingTotalLine, stored.Lines[0].PricingMode)

	agg := f.aggregates.CreateCalls()[0].Offer
	rq.True(decimal.NewFromInt(1250).Equal(*agg.TotalAmount))
	rq.Equal(1, agg.Lines[0].Qty)

	rq.Empty(f.rounds.ResolveForLotCalls())
	rq.Empty(f.lots.OnOfferCreatedCalls())
}

func TestPollAggregateStatusRetry(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		errs       []error
		wantCalls  int
		outcome    ingest.Outcome
	}{
		{
			name:      "Check constraint rejects status",
			errs:      []error{domain.NewError(errcodes.ConstraintViolation, "offers_status_check"), nil},
			wantCalls: 2,
			outcome:   ingest.OutcomeIngested,
		},
		{
			name: "Second attempt fails too",
			errs: []error{
				domain.NewError(errcodes.ConstraintViolation, "offers_status_check"),
				domain.NewError(errcodes.ConstraintViolation, "offers_status_check"),
			},
			wantCalls: 2,
			outcome:   ingest.OutcomeFailed,
		},
		{
			name:      "Other errors are not retried",
			errs:      []error{errors.New("connection refused")},
			wantCalls: 1,
			outcome:   ingest.OutcomeFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			f := newFixture(message("msg-1", "Offer request "+batchKey, offerHTML))

			var statuses []*string
			f.aggregates.CreateFunc = func(_ context.Context, offer *entity.Offer) error {
				statuses = append(statuses, offer.Status)
				return tc.errs[len(statuses)-1]
			}

			res, err := f.ingestor().Poll(context.Background(), tenantID, "user-1")
			rq.NoError(err)
			rq.Equal(tc.outcome, res.Results[0].Outcome)
			rq.Len(statuses, tc.wantCalls)
			rq.Equal(value.OfferStatusSubmitted, *statuses[0])

			if tc.wantCalls > 1 {
				rq.Nil(statuses[1])
			}

			// Письмо уже сохранено и засчитывается как обработанное.
			rq.Equal(1, res.Processed)
			rq.NotNil(res.Results[0].EmailOfferID)
		})
	}
}

func TestPollIsolatesMessageFailures(t *testing.T) {
	rq := require.New(t)

	f := newFixture(
		message("msg-1", "Offer request "+batchKey, offerHTML),
		message("msg-2", "Offer request "+batchKey, offerHTML),
	)
	f.emails.failFor["msg-1"] = errors.New("deadlock detected")

	res, err := f.ingestor().Poll(context.Background(), tenantID, "user-1")
	rq.NoError(err)
	rq.Equal(1, res.Processed)
	rq.Equal(ingest.OutcomeFailed, res.Results[0].Outcome)
	rq.ErrorContains(res.Results[0].Err, "deadlock detected")
	rq.Equal(ingest.OutcomeIngested, res.Results[1].Outcome)

	outcomes := make([]string, 0, 2)
	for _, c := range f.observer.ObserveMessageCalls() {
		outcomes = append(outcomes, c.Outcome)
	}
	rq.Equal([]string{"failed", "ingested"}, outcomes)
}

func TestPollBestEffortSideEffects(t *testing.T) {
	rq := require.New(t)

	f := newFixture(message("msg-1", "Offer request "+batchKey, offerHTML))
	f.lots.OnOfferCreatedFunc = func(context.Context, uuid.UUID, uuid.UUID) error {
		return errors.New("lot status changed")
	}
	f.buyers.BuyerIDByEmailFunc = func(context.Context, uuid.UUID, string) (*uuid.UUID, error) {
		return nil, errors.New("timeout")
	}

	res, err := f.ingestor().Poll(context.Background(), tenantID, "user-1")
	rq.NoError(err)
	rq.Equal(ingest.OutcomeIngested, res.Results[0].Outcome)
	rq.Nil(f.aggregates.CreateCalls()[0].Offer.BuyerID)
}

func TestPollAborts(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		prepare func(f *fixture)
		check   func(err error)
	}{
		{
			name: "Poll already running",
			prepare: func(f *fixture) {
				f.locker.AcquireFunc = func(context.Context, string, time.Duration) (string, bool, error) {
					return "", false, nil
				}
			},
			check: func(err error) {
				rq.True(failure.IsConflictError(err))
				rq.Equal(errcodes.PollInProgress, failure.Code(err))
			},
		},
		{
			name: "No mailbox credential",
			prepare: func(f *fixture) {
				f.tokens.AccessTokenFunc = func(context.Context, uuid.UUID, string) (string, error) {
					return "", errors.New("refresh token revoked")
				}
			},
			check: func(err error) {
				rq.True(failure.IsUnprocessableEntityError(err))
				rq.Equal(errcodes.CredentialMissing, failure.Code(err))
			},
		},
		{
			name: "Mail fetch failure",
			prepare: func(f *fixture) {
				f.fetcher.FetchMessagesFunc = func(context.Context, string, string) ([]entity.InboundMessage, error) {
					return nil, errors.New("503 Service Unavailable")
				}
			},
			check: func(err error) {
				rq.True(domain.HasCode(err, errcodes.MailFetchFailed))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			f := newFixture(message("msg-1", "Offer request "+batchKey, offerHTML))
			tc.prepare(f)

			_, err := f.ingestor().Poll(context.Background(), tenantID, "user-1")
			rq.Error(err)
			tc.check(err)
			rq.Empty(f.emailMock.CreateCalls())
		})
	}
}

func TestPollStopsOnCancel(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())

	f := newFixture(
		message("msg-1", "Offer request "+batchKey, offerHTML),
		message("msg-2", "Offer request "+batchKey, offerHTML),
	)
	f.lots.OnOfferCreatedFunc = func(context.Context, uuid.UUID, uuid.UUID) error {
		cancel()
		return nil
	}

	res, err := f.ingestor().Poll(ctx, tenantID, "user-1")
	rq.ErrorIs(err, context.Canceled)
	rq.Equal(1, res.Processed)
	rq.Contains(f.emails.offers, "msg-1")
	rq.NotContains(f.emails.offers, "msg-2")
	rq.Len(f.locker.ReleaseCalls(), 1)
}
