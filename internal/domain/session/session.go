// internal/domain/session/session.go
package session

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/jewelbellery/storefront-backend/internal/domain/cart"
	"github.com/jewelbellery/storefront-backend/internal/domain/catalog"
	"github.com/jewelbellery/storefront-backend/internal/domain/prefs"
	"github.com/jewelbellery/storefront-backend/internal/storage"
)

// Session bundles one storefront session's state: its cart ledger and its
// delivery preferences. State lives in memory and is mirrored to the
// session store after every mutation; a mutex serializes mutations so
// operations within a session never interleave.
type Session struct {
	ID string

	mu    sync.Mutex
	cart  *cart.Ledger
	prefs *prefs.Preferences
}

// New constructs a session, rehydrating cart and preferences from the store
func New(ctx context.Context, store storage.Store, sessionID string, logger *logrus.Logger) *Session {
	return &Session{
		ID:    sessionID,
		cart:  cart.NewLedger(ctx, store, sessionID, logger),
		prefs: prefs.NewPreferences(ctx, store, sessionID, logger),
	}
}

// AddItem adds one unit of product to the session cart
func (s *Session) AddItem(ctx context.Context, p catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AddItem(ctx, p)
}

// RemoveItem removes the line item for productID, if present
func (s *Session) RemoveItem(ctx context.Context, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveItem(ctx, productID)
}

// ClearCart removes all items from the session cart
func (s *Session) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear(ctx)
}

// Cart returns a snapshot of the cart lines and their totals
func (s *Session) Cart() ([]cart.LineItem, cart.Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items(), s.cart.Totals()
}

// CartItemCount returns the number of distinct line items in the cart
func (s *Session) CartItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount()
}

// SetDeliveryPincode sanitizes and stores the delivery pincode, returning
// the stored value
func (s *Session) SetDeliveryPincode(ctx context.Context, raw string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs.SetDeliveryPincode(ctx, raw)
}

// DeliveryPincode returns the stored delivery pincode, or "" when unset
func (s *Session) DeliveryPincode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs.DeliveryPincode()
}

// Manager owns the live sessions. Sessions are constructed on first use,
// rehydrating from the shared store; ending a session only drops the
// in-memory instance, persisted state stays in the store until it expires.
type Manager struct {
	store  storage.Store
	logger *logrus.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a session manager over the given store
func NewManager(store storage.Store, logger *logrus.Logger) *Manager {
	return &Manager{
		store:    store,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for sessionID, constructing it on first use
func (m *Manager) Get(ctx context.Context, sessionID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[sessionID]; ok {
		return s
	}

	s := New(ctx, m.store, sessionID, m.logger)
	m.sessions[sessionID] = s
	return s
}

// End tears down the in-memory session instance. The next Get for the same
// ID rehydrates from the store.
func (m *Manager) End(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
