// internal/domain/cart/entity.go
package cart

// LineItem represents one product-and-quantity pair in a cart. The product
// fields are a snapshot taken when the item was first added, which is also
// the shape persisted to the session store.
type LineItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int   `json:"item_count"`     // Number of unique items
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	TotalAmount   int64 `json:"total_amount"`   // Sum of price * quantity
}
