package service

import (
	"strings"

	"github.com/mousam-kumari/gift-flask/internal/models"
)

const (
	productNameMarker = "Product_name:"
	reasonMarker      = "Reason:"
)

// draft is the record being assembled while scanning lines. A field counts
// as set once its marker has been seen, even if the value is empty.
type draft struct {
	idea      models.GiftIdea
	hasName   bool
	hasReason bool
}

func (d draft) complete() bool {
	return d.hasName && d.hasReason
}

// Extract groups normalized text into gift ideas. A Product_name line opens
// a record (closing the previous one only if it already had a reason); a
// Reason line fills the open record. Other lines are ignored, and records
// that never get both fields are dropped without error.
func Extract(normalized string) []models.GiftIdea {
	var (
		ideas   []models.GiftIdea
		current draft
	)

	for _, line := range strings.Split(normalized, "\n") {
		switch {
		case strings.Contains(line, productNameMarker):
			if current.complete() {
				ideas = append(ideas, current.idea)
				current = draft{}
			}
			current.idea.ProductName = strings.TrimSpace(strings.ReplaceAll(line, productNameMarker, ""))
			current.hasName = true

		case strings.Contains(line, reasonMarker):
			current.idea.Reason = strings.TrimSpace(strings.ReplaceAll(line, reasonMarker, ""))
			current.hasReason = true
		}
	}

	if current.complete() {
		ideas = append(ideas, current.idea)
	}
	return ideas
}
