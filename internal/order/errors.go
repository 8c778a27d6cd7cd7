package order

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound signals an absent order.
var ErrNotFound = errors.New("order not found")

// InsufficientStockError aggregates every product whose stock cannot cover
// the request, not just the first.
type InsufficientStockError struct {
	Shortfalls []Shortfall
}

func (e *InsufficientStockError) Error() string {
	lines := make([]string, 0, len(e.Shortfalls))
	for _, s := range e.Shortfalls {
		lines = append(lines, fmt.Sprintf("Product %s - Ordered: %d, Stock left: %d",
			s.ProductName, s.Ordered, s.StockLeft))
	}
	return "Some products have insufficient stock:\n" + strings.Join(lines, "\n")
}
