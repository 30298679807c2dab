package pos

import (
	"sync"

	"github.com/josepha8674-lab/Best-restaurant/internal/menu"

	"github.com/google/uuid"
)

// Cart is the open checkout session. It is exclusively local state with a
// single owner; the mutex only covers concurrent HTTP handlers touching the
// same session. A cart has no persisted identity until it becomes a Sale.
type Cart struct {
	mu    sync.Mutex
	lines []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts a menu item into the cart. Adding an item already present
// increments its quantity instead of creating a second line.
func (c *Cart) Add(item menu.MenuItem) CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MenuItem.ID == item.ID {
			c.lines[i].Qty++
			return c.lines[i]
		}
	}

	line := CartItem{
		MenuItem: item,
		CartID:   uuid.New().String(),
		Qty:      1,
	}
	c.lines = append(c.lines, line)
	return line
}

// ChangeQuantity adjusts a line by delta, clamping at 1. Dropping a line
// entirely is Remove's job, never a side effect of decrementing. Returns
// false when no line matches the menu item id.
func (c *Cart) ChangeQuantity(menuItemID string, delta int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MenuItem.ID == menuItemID {
			qty := c.lines[i].Qty + delta
			if qty < 1 {
				qty = 1
			}
			c.lines[i].Qty = qty
			return true
		}
	}
	return false
}

// Remove deletes the line regardless of its quantity.
func (c *Cart) Remove(menuItemID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MenuItem.ID == menuItemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Lines returns a copy of the current cart lines.
func (c *Cart) Lines() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]CartItem, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, line := range c.lines {
		total += line.Price * float64(line.Qty)
	}
	return total
}

func (c *Cart) TotalCost() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, line := range c.lines {
		total += line.MenuItem.TotalCost * float64(line.Qty)
	}
	return total
}

func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// Clear starts a fresh open cart for the next transaction.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}
