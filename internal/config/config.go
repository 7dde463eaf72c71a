package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	HTTP     HTTP
	Postgres Postgres
	Redis    Redis
	Mail     Mail
	Poll     Poll
	Bot      Bot
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"lotmarket"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
	// Debug включает tint с уровнем debug
	Debug   bool   `env:"APP_DEBUG"`
}

type HTTP struct {
	ListenAddress        string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	MetricsListenAddress string        `env:"HTTP_METRICS_LISTEN_ADDRESS" envDefault:":9090"`
	ProbeListenAddress   string        `env:"HTTP_PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	ReadHeaderTimeout    time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout      time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogFieldMaxLen       int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"4096"`
}

// Bot необязателен: без токена уведомления только пишутся в базу.
type Bot struct {
	Token     string `env:"BOT_TOKEN" json:"-"`
	ChatID    int64  `env:"BOT_CHAT_ID"`
	QueueSize int    `env:"BOT_QUEUE_SIZE" envDefault:"100"`
	// AdminID включает команды оператора (/status, /poll)
	AdminID   int64  `env:"BOT_ADMIN_ID"`
}

func (b Bot) Enabled() bool {
	return b.Token != "" && b.ChatID != 0
}

func (b Bot) ConsoleEnabled() bool {
	return b.Token != "" && b.AdminID != 0
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
