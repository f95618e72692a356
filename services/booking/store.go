package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"whattoday/models"
	"whattoday/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists booking sessions for the lifetime of the booking
// panel. It is injected into the session service rather than reached for
// globally, so tests can substitute an in-memory implementation.
type SessionStore interface {
	Save(sessionID string, session models.BookingSession) error
	Get(sessionID string) (*models.BookingSession, error)
	Delete(sessionID string) error
}

// RedisSessionStore keeps sessions as JSON blobs with a TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionStore returns a store backed by the given Redis client.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

// Save marshals and stores the session, refreshing its TTL.
func (s *RedisSessionStore) Save(sessionID string, session models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	ctx := context.Background()
	if err := s.Client.Set(ctx, utils.BookingSessionPrefix+sessionID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

// Get retrieves and unmarshals a session, or ErrSessionNotFound.
func (s *RedisSessionStore) Get(sessionID string) (*models.BookingSession, error) {
	ctx := context.Background()
	data, err := s.Client.Get(ctx, utils.BookingSessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

// Delete discards a session. Deleting an absent session is not an error.
func (s *RedisSessionStore) Delete(sessionID string) error {
	ctx := context.Background()
	if err := s.Client.Del(ctx, utils.BookingSessionPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}
