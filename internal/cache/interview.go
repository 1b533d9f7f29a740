package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Harsh-986/PrepWise/pkg/model"
	"github.com/redis/go-redis/v9"
)

// InterviewCache is a read-through cache for interview documents. Interviews
// are immutable once generated, so entries never need invalidation beyond
// their TTL.
type InterviewCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewInterviewCache(rdb *redis.Client, ttl time.Duration) *InterviewCache {
	return &InterviewCache{rdb: rdb, ttl: ttl}
}

func key(id string) string {
	return "interview:" + id
}

// Get returns the cached interview, or nil on miss or any cache error. Cache
// trouble must never fail a read that the database can serve.
func (c *InterviewCache) Get(ctx context.Context, id string) *model.Interview {
	if c == nil || c.rdb == nil {
		return nil
	}
	b, err := c.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		return nil
	}
	var iv model.Interview
	if err := json.Unmarshal(b, &iv); err != nil {
		return nil
	}
	return &iv
}

func (c *InterviewCache) Set(ctx context.Context, id string, iv *model.Interview) {
	if c == nil || c.rdb == nil {
		return
	}
	b, err := json.Marshal(iv)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key(id), b, c.ttl)
}
