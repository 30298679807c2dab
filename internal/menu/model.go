package menu

// Category buckets a menu item for the POS screen filter.
type Category string

const (
	CategoryMain      Category = "main"
	CategoryAppetizer Category = "appetizer"
	CategoryDrink     Category = "drink"
	CategoryDessert   Category = "dessert"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMain, CategoryAppetizer, CategoryDrink, CategoryDessert:
		return true
	}
	return false
}

// RecipeItem is one line of a menu item's recipe. The ingredient id may
// point at a since-deleted ingredient; such lines contribute zero cost.
type RecipeItem struct {
	IngredientID string  `json:"ingredientId" firestore:"ingredientId"`
	Quantity     float64 `json:"quantity" firestore:"quantity"`
}

// MenuItem is a sellable dish. TotalCost is derived from the recipe and the
// current ingredient prices; it is a cached value, never edited directly.
type MenuItem struct {
	ID          string       `json:"id" firestore:"id,omitempty"`
	Name        string       `json:"name" firestore:"name"`
	Description string       `json:"description" firestore:"description"`
	Price       float64      `json:"price" firestore:"price"`
	Category    Category     `json:"category" firestore:"category"`
	ImageURL    string       `json:"imageUrl,omitempty" firestore:"imageUrl,omitempty"`
	Recipe      []RecipeItem `json:"recipe" firestore:"recipe"`
	TotalCost   float64      `json:"totalCost" firestore:"totalCost"`
}
