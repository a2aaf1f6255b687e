package cartstore

import (
	"context"

	"velaluz/internal/domain"
)

// Store persists one cart snapshot per checkout session. Every committed
// mutation overwrites the whole snapshot; there is no diffing.
type Store interface {
	Load(ctx context.Context, sessionID string) (domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
