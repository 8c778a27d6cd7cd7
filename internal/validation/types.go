package validation

// OrderItemRequest is one line of a POST /order body.
type OrderItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Number    int   `json:"number" validate:"required,min=1"` // quantity ordered
}

// OrderRequest is the payload for POST /order.
type OrderRequest struct {
	UserID int64              `json:"user_id" validate:"required"`
	Items  []OrderItemRequest `json:"items" validate:"required,min=1,dive"` // at least one item
}

// ProductCreateRequest is the payload for POST /product.
type ProductCreateRequest struct {
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"required,gt=0"`
	StockLeft int     `json:"stock_left" validate:"gte=0"`
}

// ProductListRequest is the payload for POST /product/getlist.
type ProductListRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1"`
}

// StockUpdateRequest is the payload for PUT /product/{id}.
// AddAmount is a delta; negative values decrement stock.
type StockUpdateRequest struct {
	AddAmount int `json:"add_amount" validate:"required"`
}

// UserCreateRequest is the payload for POST /user.
type UserCreateRequest struct {
	Name   string  `json:"name" validate:"required"`
	Orders []int64 `json:"orders"` // optional initial order ids
}

// UserOrderUpdateRequest is the payload for PUT /user/{id}.
type UserOrderUpdateRequest struct {
	OrderID int64 `json:"order_id" validate:"required"`
}
