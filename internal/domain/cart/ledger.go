// internal/domain/cart/ledger.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jewelbellery/storefront-backend/internal/domain/catalog"
	"github.com/jewelbellery/storefront-backend/internal/storage"
)

// Ledger holds the line items of one session's cart. It is rehydrated from
// the session store on construction and written back after every mutation.
// Store failures never propagate: reads degrade to an empty cart and failed
// writes are logged and dropped.
type Ledger struct {
	store  storage.Store
	logger *logrus.Logger
	key    string
	items  []LineItem
}

// NewLedger creates a cart ledger for the given session, loading any
// previously persisted cart. A missing or unparseable stored value yields
// an empty cart.
func NewLedger(ctx context.Context, store storage.Store, sessionID string, logger *logrus.Logger) *Ledger {
	l := &Ledger{
		store:  store,
		logger: logger,
		key:    cartKey(sessionID),
		items:  []LineItem{},
	}

	data, ok, err := store.Get(ctx, l.key)
	if err != nil {
		logger.WithError(err).WithField("key", l.key).Warn("Failed to load persisted cart, starting empty")
		return l
	}
	if !ok {
		return l
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		logger.WithError(err).WithField("key", l.key).Warn("Persisted cart is unparseable, starting empty")
		return l
	}
	l.items = items

	return l
}

// AddItem adds one unit of product to the cart. If a line item for the
// product already exists its quantity is incremented in place, preserving
// its position; otherwise a new line item is appended with quantity 1.
func (l *Ledger) AddItem(ctx context.Context, p catalog.Product) {
	for i := range l.items {
		if l.items[i].ProductID == p.ID {
			l.items[i].Quantity++
			l.persist(ctx)
			return
		}
	}

	l.items = append(l.items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
	l.persist(ctx)
}

// RemoveItem deletes the whole line item for productID. Removing a product
// that is not in the cart is a no-op.
func (l *Ledger) RemoveItem(ctx context.Context, productID int64) {
	for i := range l.items {
		if l.items[i].ProductID == productID {
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.persist(ctx)
			return
		}
	}
}

// Clear removes all items from the cart
func (l *Ledger) Clear(ctx context.Context) {
	l.items = []LineItem{}
	l.persist(ctx)
}

// Items returns a snapshot of the current line items in first-add order
func (l *Ledger) Items() []LineItem {
	items := make([]LineItem, len(l.items))
	copy(items, l.items)
	return items
}

// Total returns the sum of price * quantity over all line items
func (l *Ledger) Total() int64 {
	var total int64
	for _, item := range l.items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// ItemCount returns the number of distinct line items
func (l *Ledger) ItemCount() int {
	return len(l.items)
}

// Totals returns the calculated totals for the current cart state
func (l *Ledger) Totals() Totals {
	var totals Totals

	totals.ItemCount = len(l.items)
	for _, item := range l.items {
		totals.TotalQuantity += item.Quantity
		totals.TotalAmount += item.Price * int64(item.Quantity)
	}

	return totals
}

func (l *Ledger) persist(ctx context.Context) {
	data, err := json.Marshal(l.items)
	if err != nil {
		l.logger.WithError(err).WithField("key", l.key).Warn("Failed to serialize cart")
		return
	}

	if err := l.store.Set(ctx, l.key, string(data)); err != nil {
		l.logger.WithError(err).WithField("key", l.key).Warn("Failed to persist cart")
	}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}
