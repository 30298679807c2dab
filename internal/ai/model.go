package ai

// RecipeSuggestion is the structured answer to "how would I cook this dish".
// Quantities are per single serving; MarketPrice is the estimated price for
// one unit of the ingredient.
type RecipeSuggestion struct {
	Description string                `json:"description"`
	Ingredients []SuggestedIngredient `json:"ingredients"`
}

type SuggestedIngredient struct {
	Name        string  `json:"name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"` // kg | g | l | ml | pcs
	MarketPrice float64 `json:"marketPrice"`
}
