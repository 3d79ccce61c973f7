package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"academy/internal/domain"

	"github.com/redis/go-redis/v9"
)

// CatalogCache is a short-lived read-through cache for catalog result
// pages, keyed by the full filter/sort/page tuple. A nil cache (or nil
// client) is a valid no-op: the engine works without redis. Entries are
// never invalidated explicitly; the TTL bounds staleness, which is
// acceptable because catalog reads are eventually consistent anyway.
type CatalogCache struct {
	RDB *redis.Client
	TTL time.Duration
}

func (c *CatalogCache) enabled() bool {
	return c != nil && c.RDB != nil
}

func (c *CatalogCache) ttl() time.Duration {
	if c.TTL > 0 {
		return c.TTL
	}
	return time.Minute
}

// Key renders a stable cache key for a resolved catalog query.
func Key(q domain.CatalogQuery) string {
	ids := make([]string, len(q.CategoryIDs))
	for i, id := range q.CategoryIDs {
		ids[i] = fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("catalog:page:%s:%s:%s:%s:%d:%d",
		strings.Join(ids, ","), q.Status, q.Text, q.Sort, q.Page, q.PageSize)
}

// Get returns a cached page and whether it was found. Any redis or decode
// failure counts as a miss; the caller falls through to the database.
func (c *CatalogCache) Get(ctx context.Context, key string) (domain.ResultPage, bool) {
	if !c.enabled() {
		return domain.ResultPage{}, false
	}
	val, err := c.RDB.Get(ctx, key).Result()
	if err != nil {
		return domain.ResultPage{}, false
	}
	var page domain.ResultPage
	if err := json.Unmarshal([]byte(val), &page); err != nil {
		return domain.ResultPage{}, false
	}
	return page, true
}

// Set stores a page best-effort; failures are ignored.
func (c *CatalogCache) Set(ctx context.Context, key string, page domain.ResultPage) {
	if !c.enabled() {
		return
	}
	data, err := json.Marshal(page)
	if err != nil {
		return
	}
	c.RDB.Set(ctx, key, data, c.ttl())
}
