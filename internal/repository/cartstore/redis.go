package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"velaluz/internal/domain"

	"github.com/redis/go-redis/v9"
)

// storageKeyPrefix matches the storage key the storefront always used for
// the persisted cart.
const storageKeyPrefix = "carrinho_luz"

const snapshotTTL = 30 * 24 * time.Hour

type redisStore struct {
	client *redis.Client
	logger *log.Logger
}

func NewRedis(client *redis.Client, logger *log.Logger) Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &redisStore{client: client, logger: logger}
}

// Load returns the stored cart for the session. A missing or unparseable
// snapshot yields an empty cart; the shopper never sees a storage error.
func (s *redisStore) Load(ctx context.Context, sessionID string) (domain.Cart, error) {
	data, err := s.client.Get(ctx, snapshotKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("redis get: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		s.logger.Printf("cartstore: discarding corrupt snapshot session=%s error=%v", sessionID, err)
		return domain.Cart{}, nil
	}
	return cart, nil
}

func (s *redisStore) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.client.Set(ctx, snapshotKey(sessionID), data, snapshotTTL).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, snapshotKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func snapshotKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", storageKeyPrefix, sessionID)
}
