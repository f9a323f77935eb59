package service

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mousam-kumari/gift-flask/internal/models"
)

// The few-shot example is reproduced verbatim in both prompts; the model
// copies its layout, so do not reformat it.
const (
	exampleProductName = "RVA Cute Flower Shaped Floor Cushion for Kids Room Living Room, Bedroom Furnishing Velvet Throw Pillow Cushion for Home Decoration Kids Girls Women Gift (Size 35 Cm) (Pink)"
	exampleReason      = "Chosen for its cute design, suitable for kids and home decoration, and its popularity on Indian e-commerce sites."
)

const structuredIntro = "You are an expert in finding gifts for Indian people. Provide me a list of 9 popular and trending different products that can be searched using the product name. Each product should include the detailed product name, company, model, and price."

var structuredClosing = []string{
	"These gifts should be popular among Indian people and available on e-commerce websites like Amazon India. Ensure that each product is followed by its detailed product name, company, model, price, and a convincing reason for its selection. Ensure that the products are listed without any special characters such as *, -, or numbering. Here is an example:",
	"Product_name: " + exampleProductName,
	"Reason: " + exampleReason + " Always give output in this {products_schema} format.",
	"Generate 9 products with detailed product name, company, model, price, and reason for selection as a gift idea. Each reason should be just below the product name.",
}

// BuildStructuredPrompt turns criteria into a single-line instruction.
// Clauses for absent criteria are left out entirely.
func BuildStructuredPrompt(c models.Criteria) string {
	parts := []string{structuredIntro}

	if c.Age != "" {
		parts = append(parts, "for a "+c.Age+"-year-old")
	}
	if c.RecipientType != "" {
		parts = append(parts, c.RecipientType)
	}
	if c.Gender != "" {
		parts = append(parts, "who is "+c.Gender)
	}
	if len(c.Categories) > 0 {
		parts = append(parts, "and loves "+strings.Join(c.Categories, ", ")+" items")
	}
	if c.Occasion != "" {
		parts = append(parts, "suitable for "+c.Occasion)
	}
	if c.PriceRange != "" {
		parts = append(parts, "within the price range "+c.PriceRange)
	}

	parts = append(parts, structuredClosing...)
	return strings.Join(parts, " ")
}

// BuildSearchPrompt embeds a free-text query into the search template.
// An empty query is the only input the pipeline rejects.
func BuildSearchPrompt(query string) (string, error) {
	if query == "" {
		return "", goerr.Wrap(ErrInvalidInput, "'prompt' is required.")
	}

	var sb strings.Builder
	sb.WriteString("You are an expert in finding gifts for Indian people. Based on the following input: '")
	sb.WriteString(query)
	sb.WriteString("', provide me with a list of 9 popular and trending products in India that would make excellent gifts for Indian people. ")
	sb.WriteString("These products should be available for purchase on major Indian e-commerce websites like Amazon India. Ensure that the list includes detailed product names, company, model, price, followed by a convincing reason for selecting each product as a gift idea. ")
	sb.WriteString("The reason should explain why the product is a good gift for Indian recipients. Provide the output in the following format:\n\n")
	sb.WriteString("Product_name:\nCompany:\nModel:\nPrice:\nReason:\n\n")
	sb.WriteString("Here is an example:\n")
	sb.WriteString("Product_name: " + exampleProductName + "\n")
	sb.WriteString("Reason: " + exampleReason)
	return sb.String(), nil
}
