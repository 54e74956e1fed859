// README: Flight cache backed by Redis.
package flight

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix = "flight:search:"
	// Fares move quickly; a short TTL keeps results fresh while absorbing
	// repeated submissions of the same form.
	cacheTTL = 15 * time.Minute
)

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// cacheKey derives a stable key from the canonical query parameters.
func cacheKey(q Query) string {
	payload, _ := json.Marshal([]string{
		q.Origin,
		q.Destination,
		q.DepartureDate.Format(dateLayout),
		q.ReturnDate.Format(dateLayout),
	})
	sum := md5.Sum(payload)
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

// GetCached returns previously cached options for the query, or nil when the
// key is absent.
func (s *Store) GetCached(ctx context.Context, q Query) ([]Option, error) {
	val, err := s.redis.Get(ctx, cacheKey(q)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var options []Option
	if err := json.Unmarshal([]byte(val), &options); err != nil {
		return nil, err
	}
	return options, nil
}

// SetCached stores the options under the query key with the cache TTL.
func (s *Store) SetCached(ctx context.Context, q Query, options []Option) error {
	payload, err := json.Marshal(options)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, cacheKey(q), payload, cacheTTL).Err()
}
