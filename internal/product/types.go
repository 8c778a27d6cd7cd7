package product

import "errors"

// Product represents a row in the products table.
type Product struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	StockLeft int     `json:"stock_left"`
}

// ErrInsufficientStock is returned when a stock adjustment would drive
// stock_left below zero. The row is left unchanged.
var ErrInsufficientStock = errors.New("stock is not enough for this order")
