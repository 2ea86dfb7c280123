package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hubxp/backoffice-api/internal/domain/entity"
	domainRepo "github.com/hubxp/backoffice-api/internal/domain/repository"
)

type analyticsRepository struct {
	collection *mongo.Collection
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *mongo.Database) domainRepo.AnalyticsRepository {
	return &analyticsRepository{collection: db.Collection("orders")}
}

// OrdersMatching streams every order satisfying the predicate. Aggregation
// happens in the application layer; this only evaluates the predicate.
func (r *analyticsRepository) OrdersMatching(ctx context.Context, p *domainRepo.OrderPredicate) ([]entity.Order, error) {
	cursor, err := r.collection.Find(ctx, MatchOrders(p))
	if err != nil {
		return nil, wrapStoreErr(err)
	}

	orders := []entity.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, wrapStoreErr(err)
	}
	return orders, nil
}
