package repository

import (
	"context"
	"sync"

	"github.com/mousam-kumari/gift-flask/internal/models"
)

// MemoryHistory keeps every committed gift idea for the lifetime of the
// process. Nothing is evicted and nothing is written to disk.
type MemoryHistory struct {
	mu    sync.RWMutex
	ideas []models.GiftIdea
	index map[models.GiftIdea]struct{}
}

// NewMemoryHistory returns an empty history.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{
		index: make(map[models.GiftIdea]struct{}),
	}
}

// Commit runs selectFn and appends its result under a single write lock,
// so concurrent requests never both accept the same idea.
func (h *MemoryHistory) Commit(ctx context.Context, selectFn func(seen func(models.GiftIdea) bool) []models.GiftIdea) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	accepted := selectFn(func(idea models.GiftIdea) bool {
		_, ok := h.index[idea]
		return ok
	})

	for _, idea := range accepted {
		h.ideas = append(h.ideas, idea)
		h.index[idea] = struct{}{}
	}
	return nil
}

// Len reports the number of committed ideas, duplicates within a batch
// included.
func (h *MemoryHistory) Len(_ context.Context) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.ideas)
}
