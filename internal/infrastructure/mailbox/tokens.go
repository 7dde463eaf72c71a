package mailbox

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/oauth2"

	"lotmarket/internal/domain"
	"lotmarket/internal/domain/entity"
	"lotmarket/pkg/errcodes"
	"lotmarket/pkg/logx"
)

//go:generate moq -rm -out tokens_mock.gen.go . CredentialStore

type CredentialStore interface {
	Get(ctx context.Context, tenantID uuid.UUID, userID string) (*entity.MailboxCredential, error)
	SaveTokens(ctx context.Context, cred entity.MailboxCredential) error
}

type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
	// Skew — за сколько до истечения токен считается протухшим.
	Skew time.Duration
}

// TokenProvider хранит рабочие access token'ы в памяти и обновляет их по
// refresh token'у из хранилища.
type TokenProvider struct {
	store  CredentialStore
	oauth  *oauth2.Config
	skew   time.Duration
	cache  *gocache.Cache
	client *http.Client
	now    func() time.Time
}

func NewTokenProvider(cfg OAuthConfig, store CredentialStore) *TokenProvider {
	if cfg.Skew <= 0 {
		cfg.Skew = 2 * time.Minute
	}

	return &TokenProvider{
		store: store,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
			Scopes: cfg.Scopes,
		},
		skew:  cfg.Skew,
		cache: gocache.New(time.Hour, 10*time.Minute),
		now:   time.Now,
	}
}

// WithHTTPClient задаёт клиент для обмена токенов, например с логированием.
func (p *TokenProvider) WithHTTPClient(client *http.Client) *TokenProvider {
	p.client = client
	return p
}

// AccessToken возвращает токен, который проживёт ещё хотя бы skew.
func (p *TokenProvider) AccessToken(ctx context.Context, tenantID uuid.UUID, userID string) (string, error) {
	key := cacheKey(tenantID, userID)

	if token, ok := p.cache.Get(key); ok {
		return token.(string), nil //nolint:forcetypeassert
	}

	cred, err := p.store.Get(ctx, tenantID, userID)
	if err != nil {
		return "", fmt.Errorf("store.Get: %w", err)
	}

	if cred.AccessToken != "" && cred.ExpiresAt.After(p.now().Add(p.skew)) {
		p.remember(key, cred.AccessToken, cred.ExpiresAt)
		return cred.AccessToken, nil
	}

	return p.refresh(ctx, cred)
}

// Refresh обновляет токен, даже если сохранённый ещё не истёк.
func (p *TokenProvider) Refresh(ctx context.Context, tenantID uuid.UUID, userID string) (string, error) {
	p.cache.Delete(cacheKey(tenantID, userID))

	cred, err := p.store.Get(ctx, tenantID, userID)
	if err != nil {
		return "", fmt.Errorf("store.Get: %w", err)
	}

	return p.refresh(ctx, cred)
}

func (p *TokenProvider) refresh(ctx context.Context, cred *entity.MailboxCredential) (string, error) {
	if cred.RefreshToken == "" {
		return "", domain.NewError(errcodes.CredentialMissing, "mailbox has no refresh token")
	}

	if p.client != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)
	}

	// истёкший Expiry заставляет TokenSource сходить за новым токеном
	src := p.oauth.TokenSource(ctx, &oauth2.Token{
		RefreshToken: cred.RefreshToken,
		Expiry:       p.now().Add(-time.Minute),
	})

	token, err := src.Token()
	if err != nil {
		return "", domain.WrapError(err, errcodes.CredentialMissing, "failed to refresh mailbox token")
	}

	updated := *cred
	updated.AccessToken = token.AccessToken
	updated.ExpiresAt = token.Expiry
	if token.RefreshToken != "" {
		updated.RefreshToken = token.RefreshToken
	}

	if err := p.store.SaveTokens(ctx, updated); err != nil {
		// токен рабочий, потеряем только ротацию до следующего обновления
		logger(ctx).Warn("mailbox token persist failed",
			slog.String(logx.FieldUserID, cred.UserID),
			logx.Error(err),
		)
	}

	p.remember(cacheKey(cred.TenantID, cred.UserID), updated.AccessToken, updated.ExpiresAt)

	logger(ctx).Info("mailbox token refreshed",
		slog.String(logx.FieldUserID, cred.UserID),
		slog.Time("expires-at", updated.ExpiresAt),
	)

	return updated.AccessToken, nil
}

func (p *TokenProvider) remember(key, token string, expiresAt time.Time) {
	ttl := expiresAt.Sub(p.now()) - p.skew
	if expiresAt.IsZero() || ttl <= 0 {
		return
	}

	p.cache.Set(key, token, ttl)
}

func cacheKey(tenantID uuid.UUID, userID string) string {
	return tenantID.String() + "/" + userID
}
