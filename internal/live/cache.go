package live

import (
	"context"
	"log"
	"sync"

	"github.com/josepha8674-lab/Best-restaurant/internal/inventory"
	"github.com/josepha8674-lab/Best-restaurant/internal/menu"
	"github.com/josepha8674-lab/Best-restaurant/internal/pos"
	"github.com/josepha8674-lab/Best-restaurant/internal/store"
)

// Subscriber is the slice of the remote store the cache consumes.
type Subscriber interface {
	Subscribe(
		ctx context.Context,
		collection string,
		onSnapshot func([]store.Document),
		onError func(error),
	) (stop func())
}

// Cache mirrors the three remote collections in process memory. Each
// collection is replaced wholesale on every snapshot, never merged. All
// mutation happens in subscription callbacks; views only read. MenuItem
// total costs are recomputed from the current price table whenever either
// the ingredient or the menu snapshot changes, so a price edit flows into
// every dependent item without touching the stored documents.
//
// Collections arrive at independent times and in no guaranteed order; the
// cache never assumes referential integrity before all three have loaded.
type Cache struct {
	mu sync.RWMutex

	ingredients []inventory.Ingredient
	menuItems   []menu.MenuItem
	sales       []pos.Sale

	loaded   map[string]bool
	failures map[string]error

	listeners []func(collection string)
	stops     []func()
}

func NewCache() *Cache {
	return &Cache{
		loaded:   make(map[string]bool),
		failures: make(map[string]error),
	}
}

// OnChange registers a callback fired after a collection snapshot has been
// applied. Register before Start; callbacks run outside the cache lock.
func (c *Cache) OnChange(fn func(collection string)) {
	c.listeners = append(c.listeners, fn)
}

// Start opens the three collection subscriptions.
func (c *Cache) Start(ctx context.Context, sub Subscriber) {
	c.stops = append(c.stops,
		sub.Subscribe(ctx, store.CollectionIngredients, c.applyIngredients, c.failFor(store.CollectionIngredients)),
		sub.Subscribe(ctx, store.CollectionMenuItems, c.applyMenuItems, c.failFor(store.CollectionMenuItems)),
		sub.Subscribe(ctx, store.CollectionSales, c.applySales, c.failFor(store.CollectionSales)),
	)
}

// Stop unsubscribes from all collections. No snapshots are delivered after
// it returns.
func (c *Cache) Stop() {
	for _, stop := range c.stops {
		stop()
	}
	c.stops = nil
}

// ---------------------------------------------
// Snapshot application
// ---------------------------------------------

func (c *Cache) applyIngredients(docs []store.Document) {
	ingredients := make([]inventory.Ingredient, 0, len(docs))
	for _, doc := range docs {
		var ing inventory.Ingredient
		if err := doc.DataTo(&ing); err != nil {
			log.Printf("live: skipping bad ingredient doc %s: %v", doc.ID, err)
			continue
		}
		ing.ID = doc.ID
		ingredients = append(ingredients, ing)
	}

	c.mu.Lock()
	c.ingredients = ingredients
	c.loaded[store.CollectionIngredients] = true
	delete(c.failures, store.CollectionIngredients)
	c.recomputeCosts()
	c.mu.Unlock()

	c.notify(store.CollectionIngredients)
}

func (c *Cache) applyMenuItems(docs []store.Document) {
	items := make([]menu.MenuItem, 0, len(docs))
	for _, doc := range docs {
		var item menu.MenuItem
		if err := doc.DataTo(&item); err != nil {
			log.Printf("live: skipping bad menu item doc %s: %v", doc.ID, err)
			continue
		}
		item.ID = doc.ID
		items = append(items, item)
	}

	c.mu.Lock()
	c.menuItems = items
	c.loaded[store.CollectionMenuItems] = true
	delete(c.failures, store.CollectionMenuItems)
	c.recomputeCosts()
	c.mu.Unlock()

	c.notify(store.CollectionMenuItems)
}

func (c *Cache) applySales(docs []store.Document) {
	sales := make([]pos.Sale, 0, len(docs))
	for _, doc := range docs {
		var sale pos.Sale
		if err := doc.DataTo(&sale); err != nil {
			log.Printf("live: skipping bad sale doc %s: %v", doc.ID, err)
			continue
		}
		sale.ID = doc.ID
		sales = append(sales, sale)
	}

	c.mu.Lock()
	c.sales = sales
	c.loaded[store.CollectionSales] = true
	delete(c.failures, store.CollectionSales)
	c.mu.Unlock()

	c.notify(store.CollectionSales)
}

// recomputeCosts derives every menu item's TotalCost from the current price
// table. Full recompute on every change: recipes are short and incremental
// caching here buys staleness bugs, not speed. Caller holds the lock.
func (c *Cache) recomputeCosts() {
	prices := make(map[string]inventory.Ingredient, len(c.ingredients))
	for _, ing := range c.ingredients {
		prices[ing.ID] = ing
	}
	for i := range c.menuItems {
		c.menuItems[i].TotalCost = menu.ComputeTotalCost(c.menuItems[i].Recipe, prices)
	}
}

// failFor records a subscription error against its own collection. A failed
// stream never delivers again this session, so only a restart resolves it;
// snapshots from the other, still-healthy collections must not clear it.
func (c *Cache) failFor(collection string) func(error) {
	return func(err error) {
		log.Printf("live: %s subscription error: %v", collection, err)

		c.mu.Lock()
		c.failures[collection] = err
		c.mu.Unlock()
	}
}

func (c *Cache) notify(collection string) {
	for _, fn := range c.listeners {
		fn(collection)
	}
}

// ---------------------------------------------
// Readers
// ---------------------------------------------

func (c *Cache) Ingredients() []inventory.Ingredient {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]inventory.Ingredient, len(c.ingredients))
	copy(out, c.ingredients)
	return out
}

func (c *Cache) MenuItems() []menu.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]menu.MenuItem, len(c.menuItems))
	copy(out, c.menuItems)
	return out
}

func (c *Cache) MenuItem(id string) (menu.MenuItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.menuItems {
		if item.ID == id {
			return item, true
		}
	}
	return menu.MenuItem{}, false
}

// Sales returns the log newest first, as delivered by the store.
func (c *Cache) Sales() []pos.Sale {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]pos.Sale, len(c.sales))
	copy(out, c.sales)
	return out
}

// PriceTable returns the ingredient price lookup keyed by id.
func (c *Cache) PriceTable() map[string]inventory.Ingredient {
	c.mu.RLock()
	defer c.mu.RUnlock()

	prices := make(map[string]inventory.Ingredient, len(c.ingredients))
	for _, ing := range c.ingredients {
		prices[ing.ID] = ing
	}
	return prices
}

// Ready reports whether every collection has delivered at least once.
func (c *Cache) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.loaded[store.CollectionIngredients] &&
		c.loaded[store.CollectionMenuItems] &&
		c.loaded[store.CollectionSales]
}

// Failure returns a recorded subscription error, nil while all three
// streams are healthy.
func (c *Cache) Failure() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, collection := range []string{
		store.CollectionIngredients,
		store.CollectionMenuItems,
		store.CollectionSales,
	} {
		if err := c.failures[collection]; err != nil {
			return err
		}
	}
	return nil
}
