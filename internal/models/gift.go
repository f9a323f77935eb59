package models

import (
	"bytes"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
)

// GiftIdea is one product suggestion extracted from a model completion.
// Two ideas are the same idea iff both fields match exactly.
type GiftIdea struct {
	ProductName string `json:"Product_name"`
	Reason      string `json:"Reason"`
}

// Criteria is the structured search input. Every field is optional; an
// empty value means "not given" and contributes nothing to the prompt.
type Criteria struct {
	Age           string
	Gender        string
	Occasion      string
	RecipientType string
	Categories    []string
	PriceRange    string
}

// Age accepts either a JSON string ("25") or a JSON number (25). Numbers
// keep their literal text so 25 and "25" render the same way; the number 0
// is treated as absent.
type Age string

func (a *Age) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return goerr.Wrap(err, "failed to decode age string")
		}
		*a = Age(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return goerr.Wrap(err, "age must be a string or a number", goerr.V("age", string(data)))
	}
	// A numeric zero counts as "not given", like an empty string.
	if f, err := n.Float64(); err == nil && f == 0 {
		*a = ""
		return nil
	}
	*a = Age(n.String())
	return nil
}

// GiftIdeaRequest is the body of POST /generate_gift_idea and
// POST /generate_more_ideas.
type GiftIdeaRequest struct {
	Age           Age      `json:"age"`
	Gender        string   `json:"gender"`
	Occasion      string   `json:"occasion"`
	RecipientType string   `json:"recipient_type"`
	Categories    []string `json:"categories"`
	PriceRange    string   `json:"price_range"`
}

// Criteria copies the request into an independent Criteria value.
func (r GiftIdeaRequest) Criteria() Criteria {
	var categories []string
	if len(r.Categories) > 0 {
		categories = make([]string, len(r.Categories))
		copy(categories, r.Categories)
	}

	return Criteria{
		Age:           string(r.Age),
		Gender:        r.Gender,
		Occasion:      r.Occasion,
		RecipientType: r.RecipientType,
		Categories:    categories,
		PriceRange:    r.PriceRange,
	}
}

// SearchRequest is the body of POST /search_gift_idea.
type SearchRequest struct {
	Prompt string `json:"prompt"` // free-text query; required
}

// GiftIdeasResponse is the success payload shared by every generation route.
type GiftIdeasResponse struct {
	GiftIdeas []GiftIdea `json:"gift_ideas"`
}

// ErrorResponse is the failure payload shared by every generation route.
type ErrorResponse struct {
	Error string `json:"error"`
}
