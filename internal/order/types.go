package order

// Order represents a row in the orders table. Immutable after creation.
type Order struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"user_id"`
	OrderTotal float64 `json:"order_total"`
}

// OrderItem represents a row in the order_items table. One per distinct
// product of its parent order; never mutated after creation.
type OrderItem struct {
	ID         int64   `json:"id"`
	OrderID    int64   `json:"order_id"`
	ProductID  int64   `json:"product_id"`
	ProductNum int     `json:"product_num"`
	Price      float64 `json:"price"`
	ItemTotal  float64 `json:"item_total"`
}

// Line is one requested (product, quantity) pair before aggregation.
type Line struct {
	ProductID int64
	Number    int
}
