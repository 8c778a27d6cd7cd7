package clients

import (
	"context"
	"fmt"
	"net/http"
)

// ProductClient talks to the product service. baseURL includes the
// /product path prefix, e.g. http://product-service:8000/product.
type ProductClient struct {
	baseURL string
	hc      *http.Client
}

func NewProductClient(baseURL string) *ProductClient {
	return &ProductClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: defaultTimeout},
	}
}

// GetList fetches product records for the given ids in one batched call.
// The product service answers 404 when any requested id is missing, so a
// nil error means every id was found.
func (c *ProductClient) GetList(ctx context.Context, ids []int64) ([]Product, error) {
	var products []Product
	err := do(ctx, c.hc, "Product", http.MethodPost, c.baseURL+"/getlist", map[string][]int64{"ids": ids}, &products)
	if err != nil {
		return nil, err
	}
	return products, nil
}

// AdjustStock applies a stock delta; negative deltas decrement. The product
// service rejects adjustments that would drive stock below zero.
func (c *ProductClient) AdjustStock(ctx context.Context, id int64, delta int) (Product, error) {
	var p Product
	err := do(ctx, c.hc, "Product", http.MethodPut, fmt.Sprintf("%s/%d", c.baseURL, id), map[string]int{"add_amount": delta}, &p)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}
