package order

import "github.com/example/shop-microservices/internal/clients"

// Snapshot is a product record read at validation time, augmented with the
// aggregated requested quantity and the computed line total. It lives only
// for the duration of one CreateOrder call.
type Snapshot struct {
	Product     clients.Product
	OrderNumber int     // aggregated requested quantity
	ItemTotal   float64 // OrderNumber * unit price
}

// Shortfall reports one product whose stock cannot cover the request.
type Shortfall struct {
	ProductName string
	Ordered     int
	StockLeft   int
}

// aggregate collapses requested lines by product id, summing quantities.
// The returned ids keep first-seen order.
func aggregate(lines []Line) ([]int64, map[int64]int) {
	ids := make([]int64, 0, len(lines))
	quantities := make(map[int64]int, len(lines))
	for _, l := range lines {
		if _, seen := quantities[l.ProductID]; !seen {
			ids = append(ids, l.ProductID)
		}
		quantities[l.ProductID] += l.Number
	}
	return ids, quantities
}

// buildSnapshots compares each fetched product against its aggregated
// quantity. It is a pure function: either every product becomes a Snapshot,
// or the violating ones come back as Shortfalls and no snapshot is usable.
func buildSnapshots(products []clients.Product, quantities map[int64]int) ([]Snapshot, []Shortfall) {
	snapshots := make([]Snapshot, 0, len(products))
	var shortfalls []Shortfall
	for _, p := range products {
		n := quantities[p.ID]
		if p.StockLeft < n {
			shortfalls = append(shortfalls, Shortfall{
				ProductName: p.Name,
				Ordered:     n,
				StockLeft:   p.StockLeft,
			})
			continue
		}
		snapshots = append(snapshots, Snapshot{
			Product:     p,
			OrderNumber: n,
			ItemTotal:   float64(n) * p.Price,
		})
	}
	if len(shortfalls) > 0 {
		return nil, shortfalls
	}
	return snapshots, nil
}

// orderTotal sums the line totals. Computed once; never recomputed.
func orderTotal(snapshots []Snapshot) float64 {
	var total float64
	for _, s := range snapshots {
		total += s.ItemTotal
	}
	return total
}
