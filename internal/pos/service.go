package pos

import (
	"context"
	"errors"
	"time"

	"github.com/josepha8674-lab/Best-restaurant/internal/menu"
	"github.com/josepha8674-lab/Best-restaurant/internal/store"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrUnknownMenuItem = errors.New("unknown menu item")
	ErrInvalidPayment  = errors.New("invalid payment method: use cash or qrcode")
	ErrNoLineForItem   = errors.New("no cart line for that menu item")
)

// SaleWriter persists a finished sale.
type SaleWriter interface {
	Upsert(ctx context.Context, collection, id string, doc any) (string, error)
}

// MenuReader resolves a menu item id against the live menu snapshot.
type MenuReader interface {
	MenuItem(id string) (menu.MenuItem, bool)
}

// Service owns the active cart and turns it into sales.
type Service struct {
	cart   *Cart
	writer SaleWriter
	reader MenuReader
}

func NewService(writer SaleWriter, reader MenuReader) *Service {
	return &Service{
		cart:   NewCart(),
		writer: writer,
		reader: reader,
	}
}

func (s *Service) Cart() *Cart {
	return s.cart
}

// AddItem snapshots the current menu item into the cart.
func (s *Service) AddItem(menuItemID string) (CartItem, error) {
	item, ok := s.reader.MenuItem(menuItemID)
	if !ok {
		return CartItem{}, ErrUnknownMenuItem
	}
	return s.cart.Add(item), nil
}

func (s *Service) ChangeQuantity(menuItemID string, delta int) error {
	if !s.cart.ChangeQuantity(menuItemID, delta) {
		return ErrNoLineForItem
	}
	return nil
}

func (s *Service) RemoveItem(menuItemID string) error {
	if !s.cart.Remove(menuItemID) {
		return ErrNoLineForItem
	}
	return nil
}

// Checkout freezes the cart into a Sale, persists it and only then clears
// the cart. A failed write leaves the cart untouched so the operator can
// retry without re-ringing the order. An empty cart produces no Sale.
func (s *Service) Checkout(ctx context.Context, method PaymentMethod) (*Sale, error) {
	if !method.Valid() {
		return nil, ErrInvalidPayment
	}

	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	var amount, cost float64
	for _, line := range lines {
		amount += line.Price * float64(line.Qty)
		cost += line.MenuItem.TotalCost * float64(line.Qty)
	}

	sale := &Sale{
		ID:            uuid.New().String(),
		Timestamp:     time.Now().UnixMilli(),
		Items:         lines,
		TotalAmount:   amount,
		TotalCost:     cost,
		PaymentMethod: method,
	}

	if _, err := s.writer.Upsert(ctx, store.CollectionSales, sale.ID, sale); err != nil {
		return nil, err
	}

	s.cart.Clear()
	return sale, nil
}
