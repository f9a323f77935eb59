package service_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/mousam-kumari/gift-flask/internal/models"
	"github.com/mousam-kumari/gift-flask/internal/service"
)

func TestExtract(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want []models.GiftIdea
	}{
		{
			name: "single record",
			text: "Product_name: Kindle\nReason: Great for readers",
			want: []models.GiftIdea{{ProductName: "Kindle", Reason: "Great for readers"}},
		},
		{
			name: "other lines ignored",
			text: "Intro text\nProduct_name: Kindle\nCompany: Amazon\nModel: 11th gen\nPrice: 13999\nReason: Great for readers\nOutro",
			want: []models.GiftIdea{{ProductName: "Kindle", Reason: "Great for readers"}},
		},
		{
			name: "trailing record without reason dropped",
			text: "Product_name: A\nReason: r1\nProduct_name: B",
			want: []models.GiftIdea{{ProductName: "A", Reason: "r1"}},
		},
		{
			name: "second name overwrites incomplete record",
			text: "Product_name: A\nProduct_name: B\nReason: r",
			want: []models.GiftIdea{{ProductName: "B", Reason: "r"}},
		},
		{
			name: "reason before any name is dropped",
			text: "Reason: orphan\nProduct_name: A\nReason: r",
			want: []models.GiftIdea{{ProductName: "A", Reason: "r"}},
		},
		{
			name: "marker in the middle of a line",
			text: "   Product_name:   Echo Dot  \n\tReason: Smart speaker ",
			want: []models.GiftIdea{{ProductName: "Echo Dot", Reason: "Smart speaker"}},
		},
		{
			name: "empty values still complete a record",
			text: "Product_name:\nReason:",
			want: []models.GiftIdea{{}},
		},
		{
			name: "no markers",
			text: "Sorry, I cannot help with that.",
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, service.Extract(tc.text), tc.want)
		})
	}
}

func TestExtractDoesNotEnforceCount(t *testing.T) {
	text := ""
	for i := 0; i < 12; i++ {
		text += "Product_name: P\nReason: R\n"
	}
	gt.A(t, service.Extract(text)).Length(12)
}

func TestExtractAfterNormalize(t *testing.T) {
	raw := "1. **Product_name:** Boat Airdopes 141\n   - Company: boAt\n   - **Reason:** Long-lasting battery.\n\n2. **Product_name:** Kindle\n   - **Reason:** Light."

	ideas := service.Extract(service.Normalize(raw))
	gt.Equal(t, ideas, []models.GiftIdea{
		{ProductName: "Boat Airdopes 141", Reason: "Longlasting battery."},
		{ProductName: "Kindle", Reason: "Light."},
	})
}
