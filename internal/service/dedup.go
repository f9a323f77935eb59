package service

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mousam-kumari/gift-flask/internal/models"
)

// ---- Repository layer contracts -------------------------------------------

// HistoryStore is the append-only baseline every batch of ideas is checked
// against. Its scope (one per process, per tenant, ...) is decided by
// whoever constructs it.
type HistoryStore interface {
	// Commit calls selectFn with a membership test over the history as it
	// stands, then appends whatever selectFn returns. The whole sequence is
	// atomic with respect to other Commit calls.
	Commit(ctx context.Context, selectFn func(seen func(models.GiftIdea) bool) []models.GiftIdea) error

	// Len reports how many ideas have been committed so far.
	Len(ctx context.Context) int
}

// FilterAndCommit keeps the ideas not already in history, in order, and
// appends them to it. Ideas in the same batch are not compared with each
// other, only with what was committed before this call.
func FilterAndCommit(ctx context.Context, history HistoryStore, ideas []models.GiftIdea) ([]models.GiftIdea, error) {
	novel := make([]models.GiftIdea, 0, len(ideas))

	err := history.Commit(ctx, func(seen func(models.GiftIdea) bool) []models.GiftIdea {
		novel = novel[:0]
		for _, idea := range ideas {
			if !seen(idea) {
				novel = append(novel, idea)
			}
		}
		return novel
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to commit gift ideas to history", goerr.V("count", len(ideas)))
	}

	return novel, nil
}
