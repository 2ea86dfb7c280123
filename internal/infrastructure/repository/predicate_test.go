package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	domainRepo "github.com/hubxp/backoffice-api/internal/domain/repository"
)

func TestMatchOrdersNilPredicate(t *testing.T) {
	assert.Equal(t, bson.M{}, MatchOrders(nil))
}

func TestMatchOrdersEmptyPredicate(t *testing.T) {
	assert.Equal(t, bson.M{}, MatchOrders(&domainRepo.OrderPredicate{}))
}

func TestOrderPredicateIsUnconstrained(t *testing.T) {
	assert.True(t, (&domainRepo.OrderPredicate{}).IsUnconstrained())

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, (&domainRepo.OrderPredicate{StartDate: &start}).IsUnconstrained())
	// An empty pool is a real constraint: it matches no orders at all.
	assert.False(t, (&domainRepo.OrderPredicate{HasProductPool: true}).IsUnconstrained())
}

func TestMatchOrdersDateRange(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	match := MatchOrders(&domainRepo.OrderPredicate{StartDate: &start, EndDate: &end})
	assert.Equal(t, bson.M{"date": bson.M{"$gte": start, "$lte": end}}, match)
}

func TestMatchOrdersStartDateOnly(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	match := MatchOrders(&domainRepo.OrderPredicate{StartDate: &start})
	assert.Equal(t, bson.M{"date": bson.M{"$gte": start}}, match)
}

func TestMatchOrdersProductID(t *testing.T) {
	productID := primitive.NewObjectID()

	match := MatchOrders(&domainRepo.OrderPredicate{ProductID: &productID})
	assert.Equal(t, bson.M{"productIds": productID}, match)
}

func TestMatchOrdersProductPool(t *testing.T) {
	pool := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}

	match := MatchOrders(&domainRepo.OrderPredicate{ProductPool: pool, HasProductPool: true})
	assert.Equal(t, bson.M{"productIds": bson.M{"$in": pool}}, match)
}

func TestMatchOrdersEmptyPoolMatchesNothing(t *testing.T) {
	// The empty $in list must survive translation: it is what makes a
	// category without products match zero orders.
	match := MatchOrders(&domainRepo.OrderPredicate{HasProductPool: true})
	assert.Equal(t, bson.M{"productIds": bson.M{"$in": []primitive.ObjectID{}}}, match)
}

func TestMatchOrdersProductIDAndPoolCombineConjunctively(t *testing.T) {
	productID := primitive.NewObjectID()
	pool := []primitive.ObjectID{productID, primitive.NewObjectID()}

	match := MatchOrders(&domainRepo.OrderPredicate{
		ProductID:      &productID,
		ProductPool:    pool,
		HasProductPool: true,
	})

	conds, ok := match["$and"].([]bson.M)
	require.True(t, ok, "expected $and of product conditions")
	require.Len(t, conds, 2)
	assert.Equal(t, bson.M{"productIds": productID}, conds[0])
	assert.Equal(t, bson.M{"productIds": bson.M{"$in": pool}}, conds[1])
	_, direct := match["productIds"]
	assert.False(t, direct)
}

func TestMatchOrdersCombinesDateAndProductFilters(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	productID := primitive.NewObjectID()

	match := MatchOrders(&domainRepo.OrderPredicate{StartDate: &start, ProductID: &productID})
	assert.Equal(t, bson.M{
		"date":       bson.M{"$gte": start},
		"productIds": productID,
	}, match)
}
