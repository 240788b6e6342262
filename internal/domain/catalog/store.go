// internal/domain/catalog/store.go
package catalog

import "strings"

// Store exposes the fixed product set and substring filtering over it.
// The product list is static for the process lifetime.
type Store struct {
	products []Product
}

// NewStore creates a catalog store over the given products
func NewStore(products []Product) *Store {
	return &Store{products: products}
}

// Default returns the catalog store seeded with the JewelBellery collection
func Default() *Store {
	return NewStore([]Product{
		{ID: 1, Name: "Aurora Diamond Ring", Price: 2499, Image: "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?q=80&w=800&auto=format&fit=crop&ixlib=rb-4.0.3&s=1"},
		{ID: 2, Name: "Moonstone Pendant", Price: 1299, Image: "https://images.unsplash.com/photo-1549237515-66d7f5b0e9b5?q=80&w=800&auto=format&fit=crop&ixlib=rb-4.0.3&s=2"},
		{ID: 3, Name: "Gold Hoop Earrings", Price: 899, Image: "https://images.unsplash.com/photo-1556228720-4f6f0f1b0d3b?q=80&w=800&auto=format&fit=crop&ixlib=rb-4.0.3&s=3"},
		{ID: 4, Name: "Sapphire Bracelet", Price: 3199, Image: "https://images.unsplash.com/photo-1619880199256-3a3ce1b8b0e0?q=80&w=800&auto=format&fit=crop&ixlib=rb-4.0.3&s=4"},
		{ID: 5, Name: "Pearl Classic Set", Price: 1999, Image: "https://images.unsplash.com/photo-1602810316360-8b2a6c4a1a7a?q=80&w=800&auto=format&fit=crop&ixlib=rb-4.0.3&s=5"},
		{ID: 6, Name: "Minimalist Band", Price: 499, Image: "https://images.unsplash.com/photo-1526318472351-c75fcf070e5d?q=80&w=800&auto=format&fit=crop&ixlib=rb-4.0.3&s=6"},
	})
}

// List returns all products in catalog order
func (s *Store) List() []Product {
	products := make([]Product, len(s.products))
	copy(products, s.products)
	return products
}

// Filter returns the products whose name contains query, matched
// case-insensitively. An empty query returns the full list.
func (s *Store) Filter(query string) []Product {
	if query == "" {
		return s.List()
	}

	needle := strings.ToLower(query)
	filtered := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Get returns the product with the given id
func (s *Store) Get(id int64) (Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
