package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// dummyCatalog is formatted the way real completions usually arrive:
// numbered, bolded and with hyphenated fields.
var dummyCatalog = []struct {
	name, company, model, price, reason string
}{
	{"boAt Rockerz 450 Bluetooth On Ear Headphones", "boAt", "Rockerz 450", "₹1,499", "Comfortable wireless headphones with long battery life, a favourite gift for music lovers."},
	{"Amazon Kindle Paperwhite (16 GB)", "Amazon", "Paperwhite 11th Gen", "₹14,999", "Glare-free reading for book lovers, with weeks of battery life."},
	{"Fire-Boltt Ninja Call Pro Smart Watch", "Fire-Boltt", "Ninja Call Pro", "₹1,799", "Affordable smartwatch with calling and health tracking, popular with young adults."},
	{"Philips Aroma Diffuser with LED Light", "Philips", "HD-2020", "₹2,199", "Creates a calm atmosphere at home and suits housewarming or festive gifting."},
	{"Wildcraft Unisex Laptop Backpack 35 L", "Wildcraft", "Evo 35", "₹2,299", "Durable everyday backpack for students and office goers."},
	{"Borosil Vacuum Insulated Flask 1 L", "Borosil", "Hydra Trek", "₹1,099", "Keeps drinks hot or cold all day, useful for commuters and travellers."},
	{"Nivea Men Grooming Gift Set", "Nivea", "Men Complete Care", "₹799", "A practical grooming kit that works for birthdays and festivals."},
	{"Funskool Monopoly Classic Board Game", "Funskool", "Monopoly Classic", "₹1,199", "Brings the family together for game nights."},
	{"JBL Go 3 Portable Bluetooth Speaker", "JBL", "Go 3", "₹2,999", "Pocket-sized waterproof speaker with strong sound for parties and trips."},
	{"Titan Karishma Analog Watch", "Titan", "NK1580SM01", "₹2,495", "A classic timepiece from a trusted Indian brand for formal occasions."},
	{"Chumbak Teal Floral Tote Bag", "Chumbak", "Teal Bloom", "₹1,295", "Colourful, roomy tote that makes a cheerful everyday gift."},
	{"Prestige Electric Kettle 1.5 L", "Prestige", "PKOSS 1.5", "₹949", "Quick tea or coffee for hostellers and new homes alike."},
}

const dummyBatchSize = 9

// dummyLLM returns canned completions for local development. Each call
// moves the window over the catalog so repeated calls still surface a few
// new ideas after deduplication.
type dummyLLM struct {
	mu     sync.Mutex
	offset int
}

// NewDummyLLM returns an LLM that never leaves the process.
func NewDummyLLM() LLM {
	return &dummyLLM{}
}

func (d *dummyLLM) GenerateResponse(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	d.mu.Lock()
	start := d.offset
	d.offset = (d.offset + 3) % len(dummyCatalog)
	d.mu.Unlock()

	var sb strings.Builder
	for i := 0; i < dummyBatchSize; i++ {
		item := dummyCatalog[(start+i)%len(dummyCatalog)]
		fmt.Fprintf(&sb, "%d. **Product_name:** %s\n", i+1, item.name)
		fmt.Fprintf(&sb, "   - Company: %s\n", item.company)
		fmt.Fprintf(&sb, "   - Model: %s\n", item.model)
		fmt.Fprintf(&sb, "   - Price: %s\n", item.price)
		fmt.Fprintf(&sb, "   - **Reason:** %s\n\n", item.reason)
	}
	return sb.String(), nil
}
