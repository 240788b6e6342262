package session_test

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jewelbellery/storefront-backend/internal/domain/catalog"
	"github.com/jewelbellery/storefront-backend/internal/domain/session"
	"github.com/jewelbellery/storefront-backend/internal/storage"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestManagerGet(t *testing.T) {
	ctx := context.Background()
	manager := session.NewManager(storage.NewMemoryStore(), testLogger())

	t.Run("constructs a session on first use and reuses it", func(t *testing.T) {
		first := manager.Get(ctx, "session-1")
		second := manager.Get(ctx, "session-1")

		assert.Same(t, first, second)
		assert.Equal(t, 1, manager.Len())
	})

	t.Run("distinct session IDs get distinct sessions", func(t *testing.T) {
		a := manager.Get(ctx, "session-1")
		b := manager.Get(ctx, "session-2")

		assert.NotSame(t, a, b)
	})
}

func TestSessionStateSurvivesEnd(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	manager := session.NewManager(store, testLogger())
	band := catalog.Product{ID: 6, Name: "Minimalist Band", Price: 499, Image: "https://example.com/band.jpg"}

	sess := manager.Get(ctx, "session-1")
	sess.AddItem(ctx, band)
	sess.AddItem(ctx, band)
	sess.SetDeliveryPincode(ctx, "560001")

	// Tear down the in-memory instance; the store keeps the state
	manager.End("session-1")
	assert.Equal(t, 0, manager.Len())

	rehydrated := manager.Get(ctx, "session-1")
	require.NotSame(t, sess, rehydrated)

	items, totals := rehydrated.Cart()
	require.Len(t, items, 1)
	assert.Equal(t, band.ID, items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, int64(998), totals.TotalAmount)
	assert.Equal(t, "560001", rehydrated.DeliveryPincode())
}

func TestSessionOperations(t *testing.T) {
	ctx := context.Background()
	manager := session.NewManager(storage.NewMemoryStore(), testLogger())
	ring := catalog.Product{ID: 1, Name: "Aurora Diamond Ring", Price: 2499, Image: "https://example.com/ring.jpg"}
	pendant := catalog.Product{ID: 2, Name: "Moonstone Pendant", Price: 1299, Image: "https://example.com/pendant.jpg"}

	sess := manager.Get(ctx, "session-ops")

	sess.AddItem(ctx, ring)
	sess.AddItem(ctx, pendant)
	assert.Equal(t, 2, sess.CartItemCount())

	sess.RemoveItem(ctx, ring.ID)
	items, totals := sess.Cart()
	require.Len(t, items, 1)
	assert.Equal(t, pendant.ID, items[0].ProductID)
	assert.Equal(t, pendant.Price, totals.TotalAmount)

	sess.ClearCart(ctx)
	assert.Equal(t, 0, sess.CartItemCount())
}
