package redis

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"time"

	postPort "socialorbit/internal/ports/post"

	"github.com/go-redis/redis/v8"
)

const feedKey = "feed:all"

// FeedCacheRedis keeps the rendered feed as a single JSON blob with a TTL.
// Mutations delete the key; readers fall back to the database on a miss.
type FeedCacheRedis struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewFeedCacheRedis(client *redis.Client) *FeedCacheRedis {
	ttl := 60 * time.Second
	if s := os.Getenv("FEED_CACHE_TTL"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}
	return &FeedCacheRedis{
		Client: client,
		TTL:    ttl,
	}
}

// GetFeed returns (nil, nil) when the key is absent.
func (r *FeedCacheRedis) GetFeed(ctx context.Context) ([]*postPort.PostDTO, error) {
	val, err := r.Client.Get(ctx, feedKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var posts []*postPort.PostDTO
	if err := json.Unmarshal([]byte(val), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *FeedCacheRedis) SetFeed(ctx context.Context, posts []*postPort.PostDTO) error {
	data, err := json.Marshal(posts)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, feedKey, data, r.TTL).Err()
}

func (r *FeedCacheRedis) Invalidate(ctx context.Context) error {
	return r.Client.Del(ctx, feedKey).Err()
}
