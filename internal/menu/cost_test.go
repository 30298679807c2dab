package menu

import (
	"testing"

	"github.com/josepha8674-lab/Best-restaurant/internal/inventory"
)

func priceTable(ings ...inventory.Ingredient) map[string]inventory.Ingredient {
	table := make(map[string]inventory.Ingredient, len(ings))
	for _, ing := range ings {
		table[ing.ID] = ing
	}
	return table
}

func TestComputeTotalCost_SumsRecipeLines(t *testing.T) {
	prices := priceTable(
		inventory.Ingredient{ID: "pork", Name: "Pork", Unit: inventory.UnitKilogram, PricePerUnit: 180},
		inventory.Ingredient{ID: "basil", Name: "Holy Basil", Unit: inventory.UnitGram, PricePerUnit: 0.5},
	)

	recipe := []RecipeItem{
		{IngredientID: "pork", Quantity: 0.2},
		{IngredientID: "basil", Quantity: 20},
	}

	got := ComputeTotalCost(recipe, prices)
	want := 0.2*180 + 20*0.5

	if got != want {
		t.Fatalf("expected cost %v, got %v", want, got)
	}
}

func TestComputeTotalCost_EmptyRecipe(t *testing.T) {
	prices := priceTable(
		inventory.Ingredient{ID: "rice", PricePerUnit: 40},
	)

	if got := ComputeTotalCost(nil, prices); got != 0 {
		t.Fatalf("expected 0 for empty recipe, got %v", got)
	}
	if got := ComputeTotalCost([]RecipeItem{}, prices); got != 0 {
		t.Fatalf("expected 0 for empty recipe, got %v", got)
	}
}

func TestComputeTotalCost_UnresolvedIngredientContributesZero(t *testing.T) {
	prices := priceTable(
		inventory.Ingredient{ID: "rice", PricePerUnit: 40},
	)

	recipe := []RecipeItem{
		{IngredientID: "rice", Quantity: 0.5},
		{IngredientID: "deleted-ingredient", Quantity: 3},
	}

	if got := ComputeTotalCost(recipe, prices); got != 20 {
		t.Fatalf("expected unresolved line to contribute 0, got total %v", got)
	}
}

func TestComputeTotalCost_NegativeQuantityReducesCost(t *testing.T) {
	prices := priceTable(
		inventory.Ingredient{ID: "rice", PricePerUnit: 40},
		inventory.Ingredient{ID: "egg", PricePerUnit: 5},
	)

	recipe := []RecipeItem{
		{IngredientID: "rice", Quantity: 1},
		{IngredientID: "egg", Quantity: -2},
	}

	if got := ComputeTotalCost(recipe, prices); got != 30 {
		t.Fatalf("expected 30, got %v", got)
	}
}

func TestComputeTotalCost_Example(t *testing.T) {
	// ingredient priced 100 per unit, recipe uses 2 units
	prices := priceTable(
		inventory.Ingredient{ID: "ing", PricePerUnit: 100},
	)
	recipe := []RecipeItem{{IngredientID: "ing", Quantity: 2}}

	cost := ComputeTotalCost(recipe, prices)
	if cost != 200 {
		t.Fatalf("expected 200, got %v", cost)
	}

	// item priced 250 with cost 200 has a 20% margin
	if margin := Margin(250, cost); margin != 20 {
		t.Fatalf("expected margin 20, got %v", margin)
	}
}

func TestMargin_ZeroPrice(t *testing.T) {
	if got := Margin(0, 50); got != 0 {
		t.Fatalf("expected 0 margin for zero price, got %v", got)
	}
}
