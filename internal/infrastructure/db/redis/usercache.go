package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/bloghive/bloglist-api/internal/core/domain"
	"github.com/bloghive/bloglist-api/internal/core/ports"
	"github.com/bloghive/bloglist-api/internal/metrics"
)

// UserCache decorates a UserFinder with a short-TTL Redis cache keyed by
// subject id. It saves the identity resolver a mongo round trip on every
// authenticated request. Cache misses and redis errors fall through to
// the wrapped finder, so auth correctness never depends on redis.
// Key format: user:<id>
type UserCache struct {
	client *redis.Client
	next   ports.UserFinder
	ttl    time.Duration
	log    zerolog.Logger
}

func NewUserCache(client *redis.Client, next ports.UserFinder, ttl time.Duration, log zerolog.Logger) *UserCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &UserCache{client: client, next: next, ttl: ttl, log: log}
}

func (c *UserCache) FindByID(ctx context.Context, id string) (*domain.User, error) {
	key := "user:" + id

	if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var cached cachedUser
		if json.Unmarshal(raw, &cached) == nil {
			metrics.UserCacheTotal.WithLabelValues("hit").Inc()
			return cached.toDomain(), nil
		}
	}
	metrics.UserCacheTotal.WithLabelValues("miss").Inc()

	user, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(fromDomain(user))
	if err == nil {
		if setErr := c.client.Set(ctx, key, raw, c.ttl).Err(); setErr != nil {
			c.log.Warn().Err(setErr).Str("user_id", id).Msg("failed to cache resolved user")
		}
	}
	return user, nil
}

// cachedUser is the redis JSON shape. It has its own explicit tags so the
// cache format cannot drift with the domain type's wire tags (which hide
// the password hash).
type cachedUser struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	PasswordHash string   `json:"password_hash"`
	BlogIDs      []string `json:"blogs"`
}

func fromDomain(u *domain.User) cachedUser {
	return cachedUser{
		ID:           u.ID,
		Username:     u.Username,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		BlogIDs:      u.BlogIDs,
	}
}

func (c cachedUser) toDomain() *domain.User {
	return &domain.User{
		ID:           c.ID,
		Username:     c.Username,
		Name:         c.Name,
		PasswordHash: c.PasswordHash,
		BlogIDs:      c.BlogIDs,
	}
}
