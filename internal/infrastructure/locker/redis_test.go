package locker_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/xid"
	"github.com/stretchr/testify/require"

	"lotmarket/internal/infrastructure/locker"
)

func TestRedisLock(t *testing.T) {
	rq := require.New(t)

	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR is not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	l := locker.NewRedis(client, "test:"+xid.New().String()+":")

	token, ok, err := l.Acquire(ctx, "poll:tenant", time.Minute)
	rq.NoError(err)
	rq.True(ok)
	rq.NotEmpty(token)

	_, ok, err = l.Acquire(ctx, "poll:tenant", time.Minute)
	rq.NoError(err)
	rq.False(ok)

	// чужой токен ключ не снимает
	rq.NoError(l.Release(ctx, "poll:tenant", "someone-else"))

	_, ok, err = l.Acquire(ctx, "poll:tenant", time.Minute)
	rq.NoError(err)
	rq.False(ok)

	rq.NoError(l.Release(ctx, "poll:tenant", token))

	_, ok, err = l.Acquire(ctx, "poll:tenant", time.Minute)
	rq.NoError(err)
	rq.True(ok)

	_, _, err = l.Acquire(ctx, "poll:other", 0)
	rq.Error(err)
}
