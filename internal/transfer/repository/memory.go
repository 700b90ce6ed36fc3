package repository

import (
	"context"
	"sync"
	"time"

	"github.com/fekuna/omnipos-stock-service/internal/transfer"
)

type memoryEntry struct {
	draft     transfer.Draft
	expiresAt time.Time
}

type MemoryRepository struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

var _ transfer.DraftRepository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]memoryEntry), now: time.Now}
}

func (r *MemoryRepository) Get(_ context.Context, sessionID string) (*transfer.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[sessionID]
	if !ok {
		return nil, nil
	}
	if !e.expiresAt.IsZero() && r.now().After(e.expiresAt) {
		delete(r.entries, sessionID)
		return nil, nil
	}
	d := e.draft.Clone()
	return &d, nil
}

func (r *MemoryRepository) Save(_ context.Context, sessionID string, d *transfer.Draft, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := memoryEntry{draft: d.Clone()}
	if ttl > 0 {
		e.expiresAt = r.now().Add(ttl)
	}
	r.entries[sessionID] = e
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sessionID)
	return nil
}
