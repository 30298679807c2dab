package inventory

import (
	"context"
	"errors"

	"github.com/josepha8674-lab/Best-restaurant/internal/store"
)

// Store is the slice of the remote store this package writes through.
type Store interface {
	Upsert(ctx context.Context, collection, id string, doc any) (string, error)
	Delete(ctx context.Context, collection, id string) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Save validates and persists an ingredient. An empty ID creates a new
// document; otherwise the existing document is overwritten. The written id
// is set back on the ingredient.
func (s *Service) Save(ctx context.Context, ing *Ingredient) error {
	if ing == nil || ing.Name == "" {
		return errors.New("ingredient name is required")
	}
	if !ing.Unit.Valid() {
		return errors.New("invalid unit: use kg, g, l, ml or pcs")
	}
	if ing.PricePerUnit < 0 {
		return errors.New("price per unit cannot be negative")
	}

	id, err := s.store.Upsert(ctx, store.CollectionIngredients, ing.ID, ing)
	if err != nil {
		return err
	}

	ing.ID = id
	return nil
}

// Delete removes an ingredient. Recipes that still reference it keep the
// dangling id and simply contribute zero cost for that line.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("ingredient id is required")
	}
	return s.store.Delete(ctx, store.CollectionIngredients, id)
}
