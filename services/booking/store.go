package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"garagat/models"

	"github.com/go-redis/redis/v8"
)

// SessionKeyPrefix namespaces booking sessions in Redis.
const SessionKeyPrefix = "booking:session:"

// SessionStore persists one BookingSession per ID. Save is a compare-and-set on
// Version: a new session must carry Version 0, an existing one the version it was
// loaded with. Save bumps Version on success and returns ErrSessionConflict otherwise.
type SessionStore interface {
	Load(ctx context.Context, id string) (*models.BookingSession, error)
	Save(ctx context.Context, session *models.BookingSession) error
	Delete(ctx context.Context, id string) error
}

// RedisSessionStore keeps sessions as JSON strings with a sliding TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return SessionKeyPrefix + id
}

func (s *RedisSessionStore) Load(ctx context.Context, id string) (*models.BookingSession, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.BookingSession) error {
	key := sessionKey(session.SessionID)
	expected := session.Version

	next := *session
	next.Version = expected + 1
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}

	if expected == 0 {
		ok, err := s.client.SetNX(ctx, key, data, s.ttl).Result()
		if err != nil {
			return fmt.Errorf("failed to store booking session: %w", err)
		}
		if !ok {
			return ErrSessionConflict
		}
		session.Version = next.Version
		return nil
	}

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrSessionNotFound
			}
			return err
		}
		var stored struct {
			Version int64 `json:"version"`
		}
		if err := json.Unmarshal(raw, &stored); err != nil {
			return fmt.Errorf("failed to parse booking session: %w", err)
		}
		if stored.Version != expected {
			return ErrSessionConflict
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		return err
	}

	switch err := s.client.Watch(ctx, txf, key); {
	case err == nil:
		session.Version = next.Version
		return nil
	case errors.Is(err, redis.TxFailedErr):
		return ErrSessionConflict
	case errors.Is(err, ErrSessionConflict), errors.Is(err, ErrSessionNotFound):
		return err
	default:
		return fmt.Errorf("failed to update booking session: %w", err)
	}
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}
