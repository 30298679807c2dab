package menu

import "github.com/josepha8674-lab/Best-restaurant/internal/inventory"

// ComputeTotalCost rolls a recipe up into its ingredient cost against the
// given price table. Lines whose ingredient id does not resolve contribute
// zero — a recipe may reference a since-deleted ingredient. Accumulation is
// in list order so identical inputs always produce the identical float.
func ComputeTotalCost(recipe []RecipeItem, prices map[string]inventory.Ingredient) float64 {
	var total float64
	for _, line := range recipe {
		ing, ok := prices[line.IngredientID]
		if !ok {
			continue
		}
		total += line.Quantity * ing.PricePerUnit
	}
	return total
}

// Margin is (price - cost) / price as a percentage. Zero-priced items have
// no meaningful margin.
func Margin(price, cost float64) float64 {
	if price <= 0 {
		return 0
	}
	return (price - cost) / price * 100
}
