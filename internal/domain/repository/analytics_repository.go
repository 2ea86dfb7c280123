package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hubxp/backoffice-api/internal/domain/entity"
)

// OrderPredicate is a resolved, concrete selection over the order collection.
// All constraints combine conjunctively. The zero value matches every order.
type OrderPredicate struct {
	// StartDate/EndDate bound order.date inclusively on either end.
	StartDate *time.Time
	EndDate   *time.Time

	// ProductID requires the order to reference this product.
	ProductID *primitive.ObjectID

	// ProductPool, when HasProductPool is set, requires the order to
	// reference at least one product in the pool. An empty pool therefore
	// matches no orders at all — not "unconstrained".
	ProductPool    []primitive.ObjectID
	HasProductPool bool
}

// IsUnconstrained reports whether the predicate matches every order.
func (p *OrderPredicate) IsUnconstrained() bool {
	return p.StartDate == nil && p.EndDate == nil && p.ProductID == nil && !p.HasProductPool
}

// AnalyticsRepository provides read access to the order records feeding
// dashboard and report aggregations. It owns no state; every call is a fresh
// query against the store.
type AnalyticsRepository interface {
	// OrdersMatching returns all orders satisfying the predicate, in no
	// particular order. Connectivity failures propagate to the caller.
	OrdersMatching(ctx context.Context, p *OrderPredicate) ([]entity.Order, error)
}
