package menu

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/josepha8674-lab/Best-restaurant/internal/inventory"
	"github.com/josepha8674-lab/Best-restaurant/internal/store"

	"github.com/google/uuid"
)

// Store is the slice of the remote store this package writes through.
type Store interface {
	Upsert(ctx context.Context, collection, id string, doc any) (string, error)
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
}

// PriceReader serves the latest synchronized ingredient price table.
type PriceReader interface {
	PriceTable() map[string]inventory.Ingredient
}

// ImageStorage uploads a menu photo and returns its public URL.
type ImageStorage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	store   Store
	prices  PriceReader
	storage ImageStorage
}

// NewService wires the menu service. storage may be nil when photo uploads
// are not configured.
func NewService(store Store, prices PriceReader, storage ImageStorage) *Service {
	return &Service{store: store, prices: prices, storage: storage}
}

// Save validates the item, normalizes its recipe, recomputes TotalCost from
// the current price table and persists it. An empty ID creates a new
// document; otherwise the document is overwritten.
func (s *Service) Save(ctx context.Context, item *MenuItem) error {
	if err := Validate(item); err != nil {
		return err
	}

	item.Recipe = NormalizeRecipe(item.Recipe)
	item.TotalCost = ComputeTotalCost(item.Recipe, s.prices.PriceTable())

	id, err := s.store.Upsert(ctx, store.CollectionMenuItems, item.ID, item)
	if err != nil {
		return err
	}

	item.ID = id
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("menu item id is required")
	}
	return s.store.Delete(ctx, store.CollectionMenuItems, id)
}

// AttachImage uploads a photo for the item and merges its URL into the
// stored document.
func (s *Service) AttachImage(
	ctx context.Context,
	itemID string,
	file multipart.File,
	filename string,
) (string, error) {

	if s.storage == nil {
		return "", errors.New("photo storage is not configured")
	}
	if itemID == "" {
		return "", errors.New("menu item id is required")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", errors.New("invalid file")
	}

	key := fmt.Sprintf("menu-items/%s/%s%s", itemID, uuid.New().String(), ext)

	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return "", err
	}

	err = s.store.Update(ctx, store.CollectionMenuItems, itemID, map[string]any{
		"imageUrl": url,
	})
	if err != nil {
		return "", err
	}

	return url, nil
}
