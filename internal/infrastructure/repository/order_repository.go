package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hubxp/backoffice-api/internal/domain/entity"
	domainRepo "github.com/hubxp/backoffice-api/internal/domain/repository"
)

type orderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *mongo.Database) domainRepo.OrderRepository {
	return &orderRepository{collection: db.Collection("orders")}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	now := time.Now().UTC()
	if order.Date.IsZero() {
		order.Date = now
	}
	order.CreatedAt = now
	order.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return wrapStoreErr(err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = id
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Order, error) {
	var order entity.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return &order, nil
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	order.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"date":       order.Date,
		"productIds": order.ProductIDs,
		"total":      order.Total,
		"updatedAt":  order.UpdatedAt,
	}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": order.ID}, update)
	return wrapStoreErr(err)
}

func (r *orderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return wrapStoreErr(err)
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	predicate := &domainRepo.OrderPredicate{
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		ProductID: params.ProductID,
	}
	filter := MatchOrders(predicate)

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, wrapStoreErr(err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(int64(params.Pagination.Offset())).
		SetLimit(int64(params.Pagination.PerPage))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, wrapStoreErr(err)
	}

	orders := []entity.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, 0, wrapStoreErr(err)
	}
	return orders, total, nil
}
