package locker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/xid"
)

// release удаляет ключ только если он всё ещё принадлежит владельцу токена.
var release = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`) //nolint:gochecknoglobals

// Redis — взаимное исключение между экземплярами сервиса на SET NX PX.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

// Acquire ставит ключ на ttl. false — ключ уже занят кем-то другим.
func (l *Redis) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	if ttl <= 0 {
		return "", false, errors.New("lock ttl must be positive")
	}

	token := xid.New().String()

	ok, err := l.client.SetNX(ctx, l.prefix+key, token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("redis.SetNX: %w", err)
	}

	if !ok {
		return "", false, nil
	}

	return token, true, nil
}

// Release снимает блокировку; чужой или истёкший ключ не трогается.
func (l *Redis) Release(ctx context.Context, key, token string) error {
	if err := release.Run(ctx, l.client, []string{l.prefix + key}, token).Err(); err != nil {
		return fmt.Errorf("redis.Eval: %w", err)
	}

	return nil
}
