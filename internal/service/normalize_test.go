package service_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/mousam-kumari/gift-flask/internal/service"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "bold numbered item", raw: "1. *Great-Gift*", want: "GreatGift"},
		{name: "hyphen inside word", raw: "Wi-Fi Router", want: "WiFi Router"},
		{name: "bold markers", raw: "**Product_name:** Kindle", want: "Product_name: Kindle"},
		{name: "bullet", raw: "   - **Reason:** Useful", want: "    Reason: Useful"},
		{name: "multi digit numbering", raw: "12.   Item", want: "Item"},
		{name: "decimal price loses its integer part", raw: "Price: 2.50", want: "Price: 50"},
		{name: "price range", raw: "1000-3000", want: "10003000"},
		{name: "plain text", raw: "Nothing to strip", want: "Nothing to strip"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, service.Normalize(tc.raw), tc.want)
		})
	}
}

func TestNormalizeKeepsLineBreaks(t *testing.T) {
	raw := "1.\nProduct_name: A\n2. Product_name: B"
	gt.Equal(t, service.Normalize(raw), "\nProduct_name: A\nProduct_name: B")
}
