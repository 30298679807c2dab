package menu

import (
	"context"
	"strconv"
	"testing"

	"github.com/josepha8674-lab/Best-restaurant/internal/inventory"
)

// --------------------------------------------------
// Fakes
// --------------------------------------------------

type fakeStore struct {
	docs     map[string]any
	upserted []string
	nextID   int
	err      error
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[string]any), nextID: 1}
}

func (f *fakeStore) Upsert(_ context.Context, _ string, id string, doc any) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if id == "" {
		id = "generated-" + strconv.Itoa(f.nextID)
		f.nextID++
	}
	f.docs[id] = doc
	f.upserted = append(f.upserted, id)
	return id, nil
}

func (f *fakeStore) Update(_ context.Context, _ string, id string, fields map[string]any) error {
	if f.err != nil {
		return f.err
	}
	f.docs[id] = fields
	return nil
}

func (f *fakeStore) Delete(_ context.Context, _ string, id string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.docs, id)
	return nil
}

type fakePrices struct {
	table map[string]inventory.Ingredient
}

func (f *fakePrices) PriceTable() map[string]inventory.Ingredient {
	return f.table
}

// --------------------------------------------------
// Tests
// --------------------------------------------------

func TestSave_RecomputesTotalCost(t *testing.T) {
	st := newFakeStore()
	prices := &fakePrices{table: map[string]inventory.Ingredient{
		"rice": {ID: "rice", PricePerUnit: 40},
	}}
	service := NewService(st, prices, nil)

	item := &MenuItem{
		Name:      "Fried Rice",
		Price:     120,
		Category:  CategoryMain,
		Recipe:    []RecipeItem{{IngredientID: "rice", Quantity: 0.5}},
		TotalCost: 9999, // stale cached value must be overwritten
	}

	if err := service.Save(context.Background(), item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.TotalCost != 20 {
		t.Fatalf("expected recomputed cost 20, got %v", item.TotalCost)
	}
	if item.ID == "" {
		t.Fatal("expected generated id to be set back on the item")
	}
}

func TestSave_DeduplicatesRecipe(t *testing.T) {
	st := newFakeStore()
	prices := &fakePrices{table: map[string]inventory.Ingredient{
		"egg": {ID: "egg", PricePerUnit: 5},
	}}
	service := NewService(st, prices, nil)

	item := &MenuItem{
		Name:     "Omelette",
		Price:    60,
		Category: CategoryMain,
		Recipe: []RecipeItem{
			{IngredientID: "egg", Quantity: 2},
			{IngredientID: "egg", Quantity: 3}, // duplicate add is a no-op
		},
	}

	if err := service.Save(context.Background(), item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(item.Recipe) != 1 {
		t.Fatalf("expected 1 recipe line after dedupe, got %d", len(item.Recipe))
	}
	if item.TotalCost != 10 {
		t.Fatalf("expected cost from first occurrence only (10), got %v", item.TotalCost)
	}
}

func TestSave_RejectsInvalidItems(t *testing.T) {
	service := NewService(newFakeStore(), &fakePrices{}, nil)

	cases := []struct {
		name string
		item *MenuItem
	}{
		{"missing name", &MenuItem{Price: 10, Category: CategoryMain}},
		{"negative price", &MenuItem{Name: "x", Price: -1, Category: CategoryMain}},
		{"bad category", &MenuItem{Name: "x", Price: 10, Category: "soup"}},
	}

	for _, tc := range cases {
		if err := service.Save(context.Background(), tc.item); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestAttachImage_WithoutStorageConfigured(t *testing.T) {
	service := NewService(newFakeStore(), &fakePrices{}, nil)

	_, err := service.AttachImage(context.Background(), "item-1", nil, "photo.jpg")
	if err == nil {
		t.Fatal("expected error when photo storage is not configured")
	}
}
