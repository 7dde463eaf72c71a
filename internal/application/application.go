package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"lotmarket/internal/config"
	"lotmarket/internal/domain/service/award"
	"lotmarket/internal/domain/service/ingest"
	"lotmarket/internal/domain/service/lot"
	"lotmarket/internal/domain/service/offer"
	"lotmarket/internal/domain/service/round"
	"lotmarket/internal/infrastructure/locker"
	"lotmarket/internal/infrastructure/mailbox"
	"lotmarket/internal/infrastructure/metrics"
	"lotmarket/internal/infrastructure/notifier"
	"lotmarket/internal/infrastructure/persistence"
	"lotmarket/internal/server"
	"lotmarket/internal/transport/bot"
	"lotmarket/internal/transport/bot/handler"
	"lotmarket/internal/worker"
	"lotmarket/migrations"
	"lotmarket/pkg/application/connectors"
	"lotmarket/pkg/application/modules"
	"lotmarket/pkg/httpx"
	"lotmarket/pkg/logx"
	"lotmarket/pkg/middlewarex"
)

const pollLockPrefix = "lotmarket:poll:"

func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	// 1. Database
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	if cfg.Postgres.AutoMigrate {
		if err := pg.Migrate(ctx, migrations.FS); err != nil {
			return fmt.Errorf("pg.Migrate: %w", err)
		}
	}

	// 2. Redis: лок опроса и очередь asynq
	rds := &connectors.Redis{
		Address:        cfg.Redis.Address,
		Username:       cfg.Redis.Username,
		Password:       cfg.Redis.Password,
		DatabaseNumber: cfg.Redis.DB,
		PoolSize:       cfg.Redis.PoolSize,
	}
	redisClient := rds.Client(ctx)
	defer rds.Close(ctx)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Address,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	// 3. Repositories
	lotRepo := persistence.NewLotRepository(db)
	roundRepo := persistence.NewRoundRepository(db)
	inviteRepo := persistence.NewInviteRepository(db)
	outreachRepo := persistence.NewOutreachRepository(db)
	buyerRepo := persistence.NewBuyerRepository(db)
	emailOfferRepo := persistence.NewEmailOfferRepository(db)
	offerRepo := persistence.NewOfferRepository(db)
	awardRepo := persistence.NewAwardRepository(db)
	poRepo := persistence.NewPurchaseOrderRepository(db)
	credentialRepo := persistence.NewCredentialRepository(db)

	collector := metrics.NewCollector(prometheus.DefaultRegisterer)

	// 4. Notifications
	fanout := notifier.NewFanout(persistence.NewNotificationRepository(db))

	var alertBot *notifier.TelegramBot

	if cfg.Bot.Enabled() {
		tg, err := notifier.NewTelegramBot(cfg.Bot.Token, cfg.Bot.ChatID)
		if err != nil {
			return fmt.Errorf("notifier.NewTelegramBot: %w", err)
		}

		alertBot = tg
		fanout.WithAlerts(cfg.Bot.QueueSize)
	}

	// 5. Domain services
	rounds := round.NewResolver(roundRepo, inviteRepo)

	lots := lot.NewStateMachine(lotRepo, poRepo).
		WithNotifier(fanout).
		WithObserver(collector)

	offers := offer.NewService(offerRepo, inviteRepo, lotRepo, rounds).
		WithLotHook(lots)

	ledger := award.NewLedger(awardRepo, inviteRepo, rounds)

	masker := logx.NewSensitiveDataMasker()

	// тела ответов токен-эндпоинта и Graph содержат секреты и письма
	tokens := mailbox.NewTokenProvider(mailbox.OAuthConfig{
		ClientID:     cfg.Mail.OAuthClientID,
		ClientSecret: cfg.Mail.OAuthClientSecret,
		TokenURL:     cfg.Mail.TokenURL(),
		Scopes:       cfg.Mail.OAuthScopes,
		Skew:         cfg.Mail.TokenSkew,
	}, credentialRepo).WithHTTPClient(&http.Client{
		Timeout: cfg.Mail.Timeout,
		Transport: httpx.NewLoggingRoundTripper(http.DefaultTransport,
			httpx.WithSensitiveDataMasker(masker),
			httpx.WithoutResponseBody(),
		),
	})

	graph := mailbox.NewGraphClient(mailbox.GraphConfig{
		BaseURL:  cfg.Mail.GraphBaseURL,
		PageSize: cfg.Mail.PageSize,
		MaxPages: cfg.Mail.MaxPages,
		Timeout:  cfg.Mail.Timeout,
	}, tokens,
		httpx.WithSensitiveDataMasker(masker),
		httpx.WithLogFieldMaxLen(cfg.HTTP.LogFieldMaxLen),
		httpx.WithoutResponseBody(),
	)

	ingestor := ingest.NewIngestor(ingest.Config{
		LotSubjectFilter:  cfg.Mail.LotSubjectFilter,
		DealSubjectFilter: cfg.Mail.DealSubjectFilter,
		DefaultCurrency:   cfg.Mail.DefaultCurrency,
		LockTTL:           cfg.Poll.LockTTL,
	}, graph, tokens, emailOfferRepo, outreachRepo, rounds).
		WithAggregates(offerRepo, buyerRepo).
		WithLocker(locker.NewRedis(redisClient, pollLockPrefix)).
		WithLotHook(lots).
		WithObserver(collector)

	// 6. HTTP
	router := chi.NewRouter()

	router.Use(
		middlewarex.TraceID,
		middlewarex.Tenant,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, cfg.HTTP.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.HTTP.LogFieldMaxLen),
	)

	server.NewServer(
		server.NewOfferServer(offers, ledger),
		server.NewLotServer(lots),
		server.NewMailServer(ingestor),
	).RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	// 7. Modules
	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)
	modules.MetricServer{ListenAddress: cfg.HTTP.MetricsListenAddress}.Run(ctx, g)
	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
	}.Run(ctx, g)

	modules.AsynqServer{
		RedisUsername: cfg.Redis.Username,
		RedisPassword: cfg.Redis.Password,
		RedisAddress:  cfg.Redis.Address,
		RedisDB:       cfg.Redis.DB,
		Concurrency:   cfg.Poll.Concurrency,
	}.Run(ctx, g,
		modules.AsynqQueues{cfg.Poll.Queue: 1},
		modules.AsynqHandler{Pattern: worker.TypeEmailPoll, Handle: worker.NewPollTaskHandler(ingestor).Handle},
	)

	queue := asynq.NewClient(redisOpt)
	defer queue.Close()

	scheduler := worker.NewPollScheduler(credentialRepo, queue, cfg.Poll.Interval).
		WithQueue(cfg.Poll.Queue)

	if cfg.Poll.Interval > 0 {
		if err := scheduler.Start(ctx); err != nil {
			return fmt.Errorf("scheduler.Start: %w", err)
		}

		g.Go(func() error {
			<-ctx.Done()
			scheduler.Stop()
			return nil
		})
	} else {
		log.Info("poll scheduler disabled")
	}

	if alertBot != nil {
		g.Go(func() error {
			if err := alertBot.Run(ctx, fanout.Alerts()); err != nil && ctx.Err() == nil {
				return fmt.Errorf("alertBot.Run: %w", err)
			}
			return nil
		})
	}

	if cfg.Bot.ConsoleEnabled() {
		console, err := bot.New(ctx, cfg.Bot.Token, cfg.Bot.AdminID, handler.New(scheduler, credentialRepo))
		if err != nil {
			return fmt.Errorf("bot.New: %w", err)
		}

		g.Go(func() error {
			return console.Run(ctx)
		})
	}

	log.Info("application started",
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	log.Info("application stopped")

	return nil
}
