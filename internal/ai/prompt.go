package ai

import (
	"fmt"
	"strings"
)

func BuildDescriptionPrompt(dishName string, ingredientNames []string) string {
	return fmt.Sprintf(`
You are a Michelin-level chef and a professional food marketer.
Write a short, appetizing menu description (2 lines at most) that makes
customers want to order the dish.

Dish name: %s
Main ingredients: %s
Tone: premium and inviting.
Answer with the description only, no preamble.`,
		dishName,
		strings.Join(ingredientNames, ", "),
	)
}

func BuildRecipePrompt(dishName string) string {
	return fmt.Sprintf(`
Create a recipe for the dish named: "%s".

- Provide a short, appetizing description.
- List the main ingredients needed for ONE serving.
- For each ingredient, estimate the quantity for one serving and the
  current market price for one unit of it.
- Use only these units: kg, g, l, ml, pcs. Convert spoons and cups to
  grams or milliliters.

Output MUST be valid JSON and nothing else, matching this schema:
{
  "description": "string",
  "ingredients": [
    {
      "name": "string",
      "quantity": number,
      "unit": "kg | g | l | ml | pcs",
      "marketPrice": number
    }
  ]
}`,
		dishName,
	)
}

func BuildProfitabilityPrompt(name string, price, cost, margin float64) string {
	return fmt.Sprintf(`
Analyze the pricing of this menu item:

Name: %s
Selling price: %.2f
Ingredient cost: %.2f
Gross margin: %.2f%%

Answer briefly:
1. Is the price reasonable against the usual 30-35%% food-cost benchmark?
2. One short suggestion to improve profit.`,
		name,
		price,
		cost,
		margin,
	)
}
