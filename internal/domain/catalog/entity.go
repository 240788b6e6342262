// internal/domain/catalog/entity.go
package catalog

// Product represents a catalog product. Products are defined at process
// start and never mutated.
type Product struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"` // Whole currency units
	Image string `json:"image"`
}
