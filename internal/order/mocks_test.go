package order

import (
	"context"
	"errors"
	"sync"

	"github.com/example/shop-microservices/internal/clients"
)

// mockStore keeps orders and items in memory behind the Store interface.
type mockStore struct {
	mu         sync.Mutex
	nextID     int64
	nextItemID int64
	orders     map[int64]Order
	items      map[int64][]OrderItem

	failCreateItem bool
}

func newMockStore() *mockStore {
	return &mockStore{
		orders: map[int64]Order{},
		items:  map[int64][]OrderItem{},
	}
}

func (m *mockStore) CreateOrder(ctx context.Context, userID int64, total float64) (Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	o := Order{ID: m.nextID, UserID: userID, OrderTotal: total}
	m.orders[o.ID] = o
	return o, nil
}

func (m *mockStore) CreateItem(ctx context.Context, item OrderItem) (OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreateItem {
		return OrderItem{}, errors.New("insert failed")
	}
	m.nextItemID++
	item.ID = m.nextItemID
	m.items[item.OrderID] = append(m.items[item.OrderID], item)
	return item, nil
}

func (m *mockStore) GetOrder(ctx context.Context, id int64) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (m *mockStore) ListItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]OrderItem(nil), m.items[orderID]...), nil
}

// mockProducts implements ProductDirectory over a fixed product set and
// records every stock adjustment.
type mockProducts struct {
	mu          sync.Mutex
	products    map[int64]clients.Product
	adjustments []adjustment

	getListErr error
	adjustErr  error
}

type adjustment struct {
	productID int64
	delta     int
}

func newMockProducts(ps ...clients.Product) *mockProducts {
	m := &mockProducts{products: map[int64]clients.Product{}}
	for _, p := range ps {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProducts) GetList(ctx context.Context, ids []int64) ([]clients.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getListErr != nil {
		return nil, m.getListErr
	}
	var out []clients.Product
	for _, id := range ids {
		p, ok := m.products[id]
		if !ok {
			return nil, &clients.StatusError{Service: "Product", Code: 404, Detail: "Products not found"}
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockProducts) AdjustStock(ctx context.Context, id int64, delta int) (clients.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.adjustErr != nil {
		return clients.Product{}, m.adjustErr
	}
	p := m.products[id]
	p.StockLeft += delta
	m.products[id] = p
	m.adjustments = append(m.adjustments, adjustment{productID: id, delta: delta})
	return p, nil
}

// mockUsers implements UserDirectory and records appended links.
type mockUsers struct {
	mu        sync.Mutex
	links     map[int64][]int64
	appendErr error
}

func newMockUsers() *mockUsers {
	return &mockUsers{links: map[int64][]int64{}}
}

func (m *mockUsers) AppendOrder(ctx context.Context, userID, orderID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.appendErr != nil {
		return m.appendErr
	}
	m.links[userID] = append(m.links[userID], orderID)
	return nil
}
