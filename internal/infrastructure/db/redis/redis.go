package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bloghive/bloglist-api/internal/infrastructure/config"
)

// pingTimeout bounds the connectivity check; redis is an accelerator for
// the identity resolver here, so a slow ping should fail startup fast.
const pingTimeout = 5 * time.Second

// Connect builds the client for the resolved-user cache and verifies
// connectivity with a ping.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
