package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/google/uuid"

	"lotmarket/internal/domain"
	"lotmarket/internal/domain/entity"
	"lotmarket/internal/domain/service/round"
	"lotmarket/pkg/contextx"
	"lotmarket/pkg/errcodes"
	"lotmarket/pkg/logx"
)

//go:generate moq -rm -out ingestor_mock.gen.go . MailFetcher TokenProvider Locker EmailOfferStore AggregateOfferStore OutreachRepository BuyerDirectory RoundResolver LotHook Observer

type MailFetcher interface {
	FetchMessages(ctx context.Context, accessToken, subjectFilter string) ([]entity.InboundMessage, error)
}

// TokenProvider отдаёт рабочий access token, обновляя его перед истечением.
type TokenProvider interface {
	AccessToken(ctx context.Context, tenantID uuid.UUID, userID string) (string, error)
}

// Locker не даёт опрашивать одного арендатора параллельно. Acquire
// возвращает false, если ключ уже занят.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	Release(ctx context.Context, key, token string) error
}

type EmailOfferStore interface {
	ExistsByMessageID(ctx context.Context, tenantID uuid.UUID, messageID string) (bool, error)
	// Create сохраняет предложение со всеми строками в одной транзакции.
	Create(ctx context.Context, offer *entity.EmailOffer) error
}

type AggregateOfferStore interface {
	Create(ctx context.Context, offer *entity.Offer) error
}

// OutreachRepository знает, что было разослано: рассылки лотов, треды сделок
// и позиции, на которые отвечают покупатели. Поиск без совпадения даёт nil, nil.
type OutreachRepository interface {
	ListBatches(ctx context.Context, tenantID uuid.UUID) ([]entity.LotEmailBatch, error)
	ThreadBySubjectKey(ctx context.Context, tenantID uuid.UUID, subjectKey string) (*entity.DealThread, error)
	LotLineItems(ctx context.Context, tenantID, lotID uuid.UUID) ([]entity.LineItem, error)
	DealLineItems(ctx context.Context, tenantID, dealID uuid.UUID) ([]entity.LineItem, error)
	LotCurrency(ctx context.Context, tenantID, lotID uuid.UUID) (string, error)
}

type BuyerDirectory interface {
	BuyerIDByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*uuid.UUID, error)
}

type RoundResolver interface {
	ResolveForLot(ctx context.Context, tenantID, lotID uuid.UUID, pinned *uuid.UUID) (round.Resolution, error)
}

type LotHook interface {
	OnOfferCreated(ctx context.Context, tenantID, lotID uuid.UUID) error
}

type Observer interface {
	ObserveMessage(outcome string)
	ObservePoll(result string, took time.Duration)
}

type Config struct {
	LotSubjectFilter  string
	DealSubjectFilter string
	DefaultCurrency   string
	LockTTL           time.Duration
}

var dealSubjectKey = regexp.MustCompile(`\[(DL-[A-Z0-9]{6})\]`) //nolint:gochecknoglobals

type Ingestor struct {
	cfg      Config
	fetcher  MailFetcher
	tokens   TokenProvider
	offers   EmailOfferStore
	outreach OutreachRepository
	rounds   RoundResolver

	aggregates AggregateOfferStore
	buyers     BuyerDirectory
	locker     Locker
	lots       LotHook
	observer   Observer
	now        func() time.Time
}

func NewIngestor(
	cfg Config,
	fetcher MailFetcher,
	tokens TokenProvider,
	offers EmailOfferStore,
	outreach OutreachRepository,
	rounds RoundResolver,
) *Ingestor {
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = "USD"
	}

	return &Ingestor{
		cfg:      cfg,
		fetcher:  fetcher,
		tokens:   tokens,
		offers:   offers,
		outreach: outreach,
		rounds:   rounds,
		observer: nopObserver{},
		now:      time.Now,
	}
}

func (i *Ingestor) WithAggregates(store AggregateOfferStore, buyers BuyerDirectory) *Ingestor {
	i.aggregates = store
	i.buyers = buyers
	return i
}

func (i *Ingestor) WithLocker(locker Locker) *Ingestor {
	i.locker = locker
	return i
}

func (i *Ingestor) WithLotHook(hook LotHook) *Ingestor {
	i.lots = hook
	return i
}

func (i *Ingestor) WithObserver(observer Observer) *Ingestor {
	if observer != nil {
		i.observer = observer
	}
	return i
}

// Poll забирает ответы из ящика пользователя и разбирает каждое новое письмо.
// Ошибка одного письма не останавливает остальные.
func (i *Ingestor) Poll(ctx context.Context, tenantID uuid.UUID, userID string) (PollResult, error) {
	started := i.now()

	result, err := i.poll(ctx, tenantID, userID)

	switch {
	case err == nil:
		i.observer.ObservePoll("ok", time.Since(started))
	case failure.IsConflictError(err):
		i.observer.ObservePoll("locked", time.Since(started))
	default:
		i.observer.ObservePoll("failed", time.Since(started))
	}

	return result, err
}

func (i *Ingestor) poll(ctx context.Context, tenantID uuid.UUID, userID string) (PollResult, error) {
	ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldTenantID, tenantID.String())))
	// нужны транспорту почты для повторной авторизации после 401
	ctx = contextx.WithTenantID(ctx, contextx.TenantID(tenantID.String()))
	ctx = contextx.WithUserID(ctx, contextx.UserID(userID))

	if i.locker != nil {
		key := "poll:" + tenantID.String()

		token, ok, err := i.locker.Acquire(ctx, key, i.cfg.LockTTL)
		if err != nil {
			return PollResult{}, fmt.Errorf("locker.Acquire: %w", err)
		}

		if !ok {
			return PollResult{}, failure.NewConflictError(
				"poll already running for tenant",
				failure.WithCode(errcodes.PollInProgress),
				failure.WithDescription("Mailbox poll is already in progress"),
			)
		}

		defer func() {
			if err := i.locker.Release(context.WithoutCancel(ctx), key, token); err != nil {
				logger(ctx).Warn("poll lock release failed", logx.Error(err))
			}
		}()
	}

	accessToken, err := i.tokens.AccessToken(ctx, tenantID, userID)
	if err != nil {
		return PollResult{}, failure.NewUnprocessableEntityError(
			fmt.Sprintf("tokens.AccessToken: %v", err),
			failure.WithCode(errcodes.CredentialMissing),
			failure.WithDescription("No usable mailbox credential"),
		)
	}

	messages, err := i.fetch(ctx, accessToken)
	if err != nil {
		return PollResult{}, err
	}

	outreach, err := i.loadOutreach(ctx, tenantID)
	if err != nil {
		return PollResult{}, err
	}

	result := PollResult{Results: make([]MessageResult, 0, len(messages))}

	for _, msg := range messages {
		if err := ctx.Err(); err != nil {
			logger(ctx).Info("poll interrupted", slog.Int(logx.FieldProcessed, result.Processed))
			return result, fmt.Errorf("poll interrupted: %w", err)
		}

		res := i.ingest(ctx, tenantID, outreach, msg)
		i.observer.ObserveMessage(string(res.Outcome))

		if res.Err != nil {
			logger(ctx).Error("message ingestion failed",
				slog.String(logx.FieldMessageID, msg.ID),
				logx.Error(res.Err),
			)
		}

		if res.EmailOfferID != nil {
			result.Processed++
		}

		result.Results = append(result.Results, res)
	}

	logger(ctx).Info("mailbox poll finished",
		slog.Int("fetched", len(messages)),
		slog.Int(logx.FieldProcessed, result.Processed),
	)

	return result, nil
}

// fetch выполняет оба фильтра по теме: сначала ответы на рассылки лотов,
// затем треды сделок. Письмо из обоих списков остаётся одно.
func (i *Ingestor) fetch(ctx context.Context, accessToken string) ([]entity.InboundMessage, error) {
	var (
		all  []entity.InboundMessage
		seen = make(map[string]struct{})
	)

	for _, filter := range []string{i.cfg.LotSubjectFilter, i.cfg.DealSubjectFilter} {
		if filter == "" {
			continue
		}

		batch, err := i.fetcher.FetchMessages(ctx, accessToken, filter)
		if err != nil {
			return nil, domain.WrapError(err, errcodes.MailFetchFailed, "failed to fetch messages")
		}

		for _, msg := range batch {
			if _, dup := seen[msg.ID]; dup {
				continue
			}

			seen[msg.ID] = struct{}{}
			all = append(all, msg)
		}
	}

	return all, nil
}

type outreach struct {
	batches []entity.LotEmailBatch
}

func (i *Ingestor) loadOutreach(ctx context.Context, tenantID uuid.UUID) (outreach, error) {
	batches, err := i.outreach.ListBatches(ctx, tenantID)
	if err != nil {
		return outreach{}, fmt.Errorf("outreach.ListBatches: %w", err)
	}

	return outreach{batches: batches}, nil
}

// scope найденный контекст рассылки для письма.
type scope struct {
	batch  *entity.LotEmailBatch
	thread *entity.DealThread
}

func (i *Ingestor) match(ctx context.Context, tenantID uuid.UUID, o outreach, subject string) (*scope, error) {
	for _, b := range o.batches {
		if b.BatchKey != "" && strings.Contains(subject, b.BatchKey) {
			return &scope{batch: &b}, nil
		}
	}

	m := dealSubjectKey.FindStringSubmatch(subject)
	if m == nil {
		return nil, nil
	}

	thread, err := i.outreach.ThreadBySubjectKey(ctx, tenantID, m[1])
	if err != nil {
		return nil, fmt.Errorf("outreach.ThreadBySubjectKey: %w", err)
	}

	if thread == nil {
		return nil, nil
	}

	return &scope{thread: thread}, nil
}
