package menu

import "errors"

// Validate checks the operator-editable fields. TotalCost is not checked
// here because the service always recomputes it before saving.
func Validate(item *MenuItem) error {
	if item == nil || item.Name == "" {
		return errors.New("menu item name is required")
	}
	if item.Price < 0 {
		return errors.New("price cannot be negative")
	}
	if !item.Category.Valid() {
		return errors.New("invalid category: use main, appetizer, drink or dessert")
	}
	return nil
}

// NormalizeRecipe drops duplicate ingredient lines, keeping the first
// occurrence. A recipe holds at most one line per ingredient.
func NormalizeRecipe(recipe []RecipeItem) []RecipeItem {
	seen := make(map[string]bool, len(recipe))
	out := make([]RecipeItem, 0, len(recipe))

	for _, line := range recipe {
		if seen[line.IngredientID] {
			continue
		}
		seen[line.IngredientID] = true
		out = append(out, line)
	}
	return out
}
