package config

import "time"

type Mail struct {
	GraphBaseURL string        `env:"MAIL_GRAPH_BASE_URL" envDefault:"https://graph.microsoft.com/v1.0"`
	PageSize     int           `env:"MAIL_PAGE_SIZE" envDefault:"50"`
	MaxPages     int           `env:"MAIL_MAX_PAGES" envDefault:"1"`
	Timeout      time.Duration `env:"MAIL_TIMEOUT" envDefault:"30s"`

	// Темы, по которым ищутся ответы на рассылки лотов и на треды сделок
	LotSubjectFilter  string `env:"MAIL_LOT_SUBJECT_FILTER" envDefault:"Offer Request"`
	DealSubjectFilter string `env:"MAIL_DEAL_SUBJECT_FILTER" envDefault:"[DL-"`
	DefaultCurrency   string `env:"MAIL_DEFAULT_CURRENCY" envDefault:"USD"`

	OAuthClientID     string        `env:"MAIL_OAUTH_CLIENT_ID,notEmpty"`
	OAuthClientSecret string        `env:"MAIL_OAUTH_CLIENT_SECRET,notEmpty" json:"-"`
	OAuthTenant       string        `env:"MAIL_OAUTH_TENANT" envDefault:"common"`
	OAuthTokenURL     string        `env:"MAIL_OAUTH_TOKEN_URL"`
	OAuthScopes       []string      `env:"MAIL_OAUTH_SCOPES" envSeparator:" " envDefault:"offline_access Mail.Read"`
	TokenSkew         time.Duration `env:"MAIL_TOKEN_SKEW" envDefault:"2m"`
}

// TokenURL по умолчанию собирается из арендатора Azure AD.
func (m Mail) TokenURL() string {
	if m.OAuthTokenURL != "" {
		return m.OAuthTokenURL
	}

	return "https://login.microsoftonline.com/" + m.OAuthTenant + "/oauth2/v2.0/token"
}

type Poll struct {
	// Interval 0 отключает планировщик, остаётся только POST /v1/email/poll
	Interval    time.Duration `env:"POLL_INTERVAL" envDefault:"5m"`
	Queue       string        `env:"POLL_QUEUE" envDefault:"mail"`
	Concurrency int           `env:"POLL_CONCURRENCY" envDefault:"2"`
	LockTTL     time.Duration `env:"POLL_LOCK_TTL" envDefault:"10m"`
}
