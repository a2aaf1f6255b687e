// Package sessionstore persists checkout session state (shipping selection,
// applied coupon) in redis, one snapshot per session.
package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"velaluz/internal/service/checkout"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "checkout_luz"

const sessionTTL = 7 * 24 * time.Hour

type redisStore struct {
	client *redis.Client
	logger *log.Logger
}

func NewRedis(client *redis.Client, logger *log.Logger) checkout.SessionStore {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &redisStore{client: client, logger: logger}
}

// Load returns the stored session. Missing or unparseable state yields a
// fresh session, same policy as the cart snapshot.
func (s *redisStore) Load(ctx context.Context, sessionID string) (checkout.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return checkout.Session{}, nil
	}
	if err != nil {
		return checkout.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var session checkout.Session
	if err := json.Unmarshal(data, &session); err != nil {
		s.logger.Printf("sessionstore: discarding corrupt session=%s error=%v", sessionID, err)
		return checkout.Session{}, nil
	}
	return session, nil
}

func (s *redisStore) Save(ctx context.Context, sessionID string, session checkout.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(sessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, sessionID)
}
