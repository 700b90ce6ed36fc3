package transfer

import (
	"context"
	"time"
)

// DraftRepository keeps one draft per dashboard session. Drafts are transient:
// implementations expire them after ttl.
type DraftRepository interface {
	Get(ctx context.Context, sessionID string) (*Draft, error)
	Save(ctx context.Context, sessionID string, draft *Draft, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

// Publisher hands a submitted transfer to whatever performs it.
type Publisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}
