// File: services/selection/store.go
package selection

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"meliyah/models"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists Selections between requests.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.Selection, error)
	Save(ctx context.Context, sel *models.Selection) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps each Selection as a JSON blob with a TTL, so
// abandoned sessions expire on their own.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore builds a store on the given client.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return "selection:" + sessionID
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.Selection, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var sel models.Selection
	if err := json.Unmarshal([]byte(data), &sel); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &sel, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, sel *models.Selection) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(sel.SessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}
