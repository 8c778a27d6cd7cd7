package order

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/shop-microservices/internal/clients"
)

// ProductDirectory is the Product Directory contract as the orchestrator
// sees it: batched lookup plus atomic stock adjustment.
type ProductDirectory interface {
	GetList(ctx context.Context, ids []int64) ([]clients.Product, error)
	AdjustStock(ctx context.Context, id int64, delta int) (clients.Product, error)
}

// UserDirectory is the User Directory contract as the orchestrator sees it.
type UserDirectory interface {
	AppendOrder(ctx context.Context, userID, orderID int64) error
}

// Service sequences the cross-service calls realizing one logical
// order-creation operation.
type Service struct {
	store    Store
	products ProductDirectory
	users    UserDirectory
	log      *slog.Logger
}

func NewService(store Store, products ProductDirectory, users UserDirectory, log *slog.Logger) *Service {
	return &Service{store: store, products: products, users: users, log: log}
}

// CreateOrder validates stock, persists the order and its items, then
// pushes stock decrements and the user-order link.
//
// Any validation failure aborts before persistence. Failures while pushing
// decrements or the user link surface to the caller with the order already
// durable; there is no compensation, so stock and the user's order list may
// lag the persisted order. Retrying the call creates a new order.
func (s *Service) CreateOrder(ctx context.Context, userID int64, lines []Line) (Order, error) {
	ids, quantities := aggregate(lines)

	products, err := s.products.GetList(ctx, ids)
	if err != nil {
		return Order{}, err
	}

	snapshots, shortfalls := buildSnapshots(products, quantities)
	if len(shortfalls) > 0 {
		return Order{}, &InsufficientStockError{Shortfalls: shortfalls}
	}

	o, err := s.store.CreateOrder(ctx, userID, orderTotal(snapshots))
	if err != nil {
		return Order{}, err
	}

	for _, snap := range snapshots {
		item := OrderItem{
			OrderID:    o.ID,
			ProductID:  snap.Product.ID,
			ProductNum: snap.OrderNumber,
			Price:      snap.Product.Price,
			ItemTotal:  snap.ItemTotal,
		}
		if _, err := s.store.CreateItem(ctx, item); err != nil {
			return Order{}, fmt.Errorf("order %d persisted, item for product %d failed: %w", o.ID, snap.Product.ID, err)
		}
	}

	for _, snap := range snapshots {
		if _, err := s.products.AdjustStock(ctx, snap.Product.ID, -snap.OrderNumber); err != nil {
			s.log.Warn("order persisted but stock decrement failed",
				"order_id", o.ID, "product_id", snap.Product.ID, "err", err)
			return Order{}, err
		}
	}

	if err := s.users.AppendOrder(ctx, userID, o.ID); err != nil {
		s.log.Warn("order persisted but user link failed",
			"order_id", o.ID, "user_id", userID, "err", err)
		return Order{}, err
	}

	s.log.Info("order created", "order_id", o.ID, "user_id", userID, "order_total", o.OrderTotal)
	return o, nil
}

// GetOrder returns the order or ErrNotFound.
func (s *Service) GetOrder(ctx context.Context, id int64) (Order, error) {
	o, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return Order{}, err
	}
	if o == nil {
		return Order{}, ErrNotFound
	}
	return *o, nil
}

// GetOrderItems returns the order's items in insertion order, or
// ErrNotFound when the order has none.
func (s *Service) GetOrderItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	items, err := s.store.ListItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return items, nil
}
