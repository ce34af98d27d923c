package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	appDomain "github.com/andyizyfleyr/banque-web-app-sub000/internal/domain/application"
)

const listKeyPrefix = "loans:list:"

// ApplicationListCache caches per-user application lists in redis. Every
// operation is best effort: a cache failure degrades to a repository read,
// never to a request failure.
type ApplicationListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewApplicationListCache(rdb *redis.Client, ttl time.Duration) *ApplicationListCache {
	return &ApplicationListCache{rdb: rdb, ttl: ttl}
}

func listKey(userID string) string { return listKeyPrefix + userID }

func (c *ApplicationListCache) Get(ctx context.Context, userID string) ([]appDomain.LoanApplication, bool) {
	raw, err := c.rdb.Get(ctx, listKey(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	var apps []appDomain.LoanApplication
	if err := json.Unmarshal(raw, &apps); err != nil {
		return nil, false
	}
	return apps, true
}

func (c *ApplicationListCache) Set(ctx context.Context, userID string, apps []appDomain.LoanApplication) {
	payload, err := json.Marshal(apps)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, listKey(userID), payload, c.ttl).Err()
}

func (c *ApplicationListCache) Invalidate(ctx context.Context, userID string) {
	_ = c.rdb.Del(ctx, listKey(userID)).Err()
}
