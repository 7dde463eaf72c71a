package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/pressly/goose/v3"

	"lotmarket/internal/config"
	"lotmarket/migrations"
	"lotmarket/pkg/application/connectors"
	"lotmarket/pkg/logx"
)

// migrate up|down|status|version применяет встроенные миграции к PG_DSN.
func main() {
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	log := slog.New(tint.NewHandler(os.Stderr, nil))

	if err := run(context.Background(), command); err != nil {
		log.Error("migrate failed", slog.String("command", command), logx.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, command string) error {
	_ = godotenv.Load()

	// остальной конфиг сервиса миграциям не нужен
	var cfg config.Postgres
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("env.Parse: %w", err)
	}

	pg := &connectors.Postgres{DSN: cfg.DSN, MaxOpenConns: 1, MaxIdleConns: 1}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose.SetDialect: %w", err)
	}

	return goose.RunContext(ctx, command, db.DB, ".", flag.Args()[min(1, flag.NArg()):]...)
}
