package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hubxp/backoffice-api/internal/domain/entity"
	"github.com/hubxp/backoffice-api/internal/domain/repository"
)

// DashboardService computes sales metrics over the order collection. Each call
// is a self-contained read: no state is kept between invocations and nothing
// is cached.
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	productRepo   repository.ProductRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository, productRepo repository.ProductRepository) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		productRepo:   productRepo,
	}
}

// DashboardFilters narrows the orders feeding the dashboard. All fields are
// optional and combine conjunctively.
type DashboardFilters struct {
	CategoryID *primitive.ObjectID
	ProductID  *primitive.ObjectID
	StartDate  *time.Time
	EndDate    *time.Time
}

// PeriodBucket is one calendar month of matching orders. Period is formatted
// "{year}-{month}" with the month not zero-padded, e.g. "2025-2" for February.
// The format is kept for compatibility with existing dashboard consumers.
type PeriodBucket struct {
	Period  string  `json:"period"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

// DashboardData is the combined dashboard result. The summary fields are all
// zero when no orders match, never null.
type DashboardData struct {
	TotalOrders    int64          `json:"totalOrders"`
	TotalRevenue   float64        `json:"totalRevenue"`
	AvgOrderValue  float64        `json:"avgOrderValue"`
	OrdersByPeriod []PeriodBucket `json:"ordersByPeriod"`
}

// GetDashboardData resolves the filters into a concrete order predicate,
// evaluates it against the store, and aggregates the matching orders.
func (s *DashboardService) GetDashboardData(ctx context.Context, filters *DashboardFilters) (*DashboardData, error) {
	predicate, err := s.resolvePredicate(ctx, filters)
	if err != nil {
		return nil, err
	}

	orders, err := s.analyticsRepo.OrdersMatching(ctx, predicate)
	if err != nil {
		return nil, err
	}

	data := summarizeOrders(orders)
	data.OrdersByPeriod = bucketByMonth(orders)
	return data, nil
}

// resolvePredicate turns loosely-specified filters into a concrete predicate.
// A category filter requires a two-step lookup: the category resolves to the
// set of products it owns, and orders must reference at least one of them. A
// category with no products yields an empty pool, which matches zero orders.
// A failed lookup propagates unchanged; it is never treated as "no products".
func (s *DashboardService) resolvePredicate(ctx context.Context, filters *DashboardFilters) (*repository.OrderPredicate, error) {
	predicate := &repository.OrderPredicate{}
	if filters == nil {
		return predicate, nil
	}

	predicate.StartDate = filters.StartDate
	predicate.EndDate = filters.EndDate
	predicate.ProductID = filters.ProductID

	if filters.CategoryID != nil {
		pool, err := s.productRepo.ListIDsByCategory(ctx, *filters.CategoryID)
		if err != nil {
			return nil, err
		}
		predicate.ProductPool = pool
		predicate.HasProductPool = true
	}

	return predicate, nil
}

// summarizeOrders computes the order count, revenue sum, and mean order value.
func summarizeOrders(orders []entity.Order) *DashboardData {
	data := &DashboardData{
		TotalOrders: int64(len(orders)),
	}
	for _, order := range orders {
		data.TotalRevenue += order.Total
	}
	if data.TotalOrders > 0 {
		data.AvgOrderValue = data.TotalRevenue / float64(data.TotalOrders)
	}
	return data
}

// bucketByMonth groups orders by calendar (year, month) and returns the
// buckets in chronological order. Months with no orders are omitted. Sorting
// is done on the year/month pair, not on the formatted period string, so
// "2025-2" correctly precedes "2025-10".
func bucketByMonth(orders []entity.Order) []PeriodBucket {
	type monthKey struct {
		year  int
		month time.Month
	}

	buckets := make(map[monthKey]*PeriodBucket)
	for _, order := range orders {
		// Normalize to UTC before extracting the calendar month, same as the
		// daily report keys. A date with an offset must not shift buckets.
		date := order.Date.UTC()
		key := monthKey{year: date.Year(), month: date.Month()}
		bucket, ok := buckets[key]
		if !ok {
			bucket = &PeriodBucket{Period: fmt.Sprintf("%d-%d", key.year, int(key.month))}
			buckets[key] = bucket
		}
		bucket.Count++
		bucket.Revenue += order.Total
	}

	keys := make([]monthKey, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	result := make([]PeriodBucket, 0, len(keys))
	for _, key := range keys {
		result = append(result, *buckets[key])
	}
	return result
}
