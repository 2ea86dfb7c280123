package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	domainRepo "github.com/hubxp/backoffice-api/internal/domain/repository"
)

// MatchOrders translates an OrderPredicate into the filter document used to
// select orders. A nil or zero predicate produces an empty filter, which
// matches every order.
func MatchOrders(p *domainRepo.OrderPredicate) bson.M {
	match := bson.M{}
	if p == nil || p.IsUnconstrained() {
		return match
	}

	if p.StartDate != nil || p.EndDate != nil {
		dateRange := bson.M{}
		if p.StartDate != nil {
			dateRange["$gte"] = *p.StartDate
		}
		if p.EndDate != nil {
			dateRange["$lte"] = *p.EndDate
		}
		match["date"] = dateRange
	}

	// Product membership and pool intersection are independent constraints on
	// the same field, so when both apply they go through $and. An empty pool
	// keeps its $in clause: {$in: []} matches nothing, which is the required
	// behavior for a category that owns no products.
	var productConds []bson.M
	if p.ProductID != nil {
		productConds = append(productConds, bson.M{"productIds": *p.ProductID})
	}
	if p.HasProductPool {
		pool := p.ProductPool
		if pool == nil {
			pool = []primitive.ObjectID{}
		}
		productConds = append(productConds, bson.M{"productIds": bson.M{"$in": pool}})
	}

	switch len(productConds) {
	case 1:
		for k, v := range productConds[0] {
			match[k] = v
		}
	case 2:
		match["$and"] = productConds
	}

	return match
}
