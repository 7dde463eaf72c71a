package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	rq := require.New(t)

	t.Setenv("PG_DSN", "postgres://localhost:5432/lotmarket")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("MAIL_OAUTH_CLIENT_ID", "client")
	t.Setenv("MAIL_OAUTH_CLIENT_SECRET", "secret")
	t.Setenv("MAIL_OAUTH_SCOPES", "offline_access Mail.Read Mail.ReadBasic")
	t.Setenv("POLL_INTERVAL", "90s")

	cfg, err := Load()
	rq.NoError(err)

	rq.Equal(90*time.Second, cfg.Poll.Interval)
	rq.Equal([]string{"offline_access", "Mail.Read", "Mail.ReadBasic"}, cfg.Mail.OAuthScopes)
	rq.Equal("https://login.microsoftonline.com/common/oauth2/v2.0/token", cfg.Mail.TokenURL())
	rq.Equal(2*time.Minute, cfg.Mail.TokenSkew)
	rq.False(cfg.Bot.Enabled())
}

func TestLoadMissingRequired(t *testing.T) {
	rq := require.New(t)

	t.Setenv("PG_DSN", "")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("MAIL_OAUTH_CLIENT_ID", "client")
	t.Setenv("MAIL_OAUTH_CLIENT_SECRET", "secret")

	_, err := Load()
	rq.ErrorContains(err, "PG_DSN")
}
