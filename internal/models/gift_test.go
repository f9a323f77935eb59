package models_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mousam-kumari/gift-flask/internal/models"
)

func TestGiftIdeaRequestAge(t *testing.T) {
	testCases := []struct {
		name   string
		body   string
		expect string
	}{
		{"string", `{"age": "25"}`, "25"},
		{"integer", `{"age": 25}`, "25"},
		{"decimal", `{"age": 7.5}`, "7.5"},
		{"null", `{"age": null}`, ""},
		{"zero", `{"age": 0}`, ""},
		{"zero decimal", `{"age": 0.0}`, ""},
		{"zero string", `{"age": "0"}`, "0"},
		{"empty string", `{"age": ""}`, ""},
		{"absent", `{}`, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var req models.GiftIdeaRequest
			gt.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			gt.Equal(t, req.Criteria().Age, tc.expect)
		})
	}
}

func TestGiftIdeaRequestAgeRejectsOtherTypes(t *testing.T) {
	var req models.GiftIdeaRequest
	gt.Error(t, json.Unmarshal([]byte(`{"age": true}`), &req))
	gt.Error(t, json.Unmarshal([]byte(`{"age": {"years": 3}}`), &req))
}

func TestGiftIdeaRequestCategoriesMustBeStrings(t *testing.T) {
	var req models.GiftIdeaRequest
	gt.Error(t, json.Unmarshal([]byte(`{"categories": "tech"}`), &req))
	gt.Error(t, json.Unmarshal([]byte(`{"categories": [1, 2]}`), &req))
}

func TestCriteriaIsIndependentOfRequest(t *testing.T) {
	req := models.GiftIdeaRequest{Categories: []string{"books", "music"}}
	criteria := req.Criteria()

	req.Categories[0] = "changed"
	gt.Equal(t, criteria.Categories, []string{"books", "music"})
}

func TestGiftIdeaJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(models.GiftIdeasResponse{
		GiftIdeas: []models.GiftIdea{{ProductName: "Kindle", Reason: "Reads anywhere"}},
	})
	gt.NoError(t, err)
	gt.S(t, string(data)).Contains(`"gift_ideas":[{"Product_name":"Kindle","Reason":"Reads anywhere"}]`)
}
