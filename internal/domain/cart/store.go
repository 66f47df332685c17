// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the durable copy of in-progress cart state. Every mutation
// writes through before returning; the in-memory view is never read
// back except via Load.
type Store interface {
	Load(ctx context.Context, sessionID string) ([]Item, error)
	Save(ctx context.Context, sessionID string, items []Item) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisStore persists each session's cart as a single JSON-encoded
// record under a fixed per-session key
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed cart store
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// Load reads the persisted cart. A missing or malformed record is
// treated as an empty cart, never as a failure.
func (s *RedisStore) Load(ctx context.Context, sessionID string) ([]Item, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return []Item{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	return decodeItems([]byte(data)), nil
}

// Save overwrites the persisted cart with the given items
func (s *RedisStore) Save(ctx context.Context, sessionID string, items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.client.Set(ctx, cartKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Clear removes the persisted cart record
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// decodeItems parses a persisted cart payload. Malformed JSON yields an
// empty cart rather than an error, and items that violate the cart
// invariants (non-positive quantity, duplicate menu id) are dropped.
func decodeItems(data []byte) []Item {
	var raw []Item
	if err := json.Unmarshal(data, &raw); err != nil {
		return []Item{}
	}

	items := make([]Item, 0, len(raw))
	seen := make(map[int]bool, len(raw))
	for _, item := range raw {
		if item.Quantity < 1 || seen[item.MenuID] {
			continue
		}
		seen[item.MenuID] = true
		items = append(items, item)
	}
	return items
}
