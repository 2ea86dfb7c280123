package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hubxp/backoffice-api/internal/domain/entity"
)

func TestGenerateSalesReportEvenSplit(t *testing.T) {
	productA := primitive.NewObjectID()
	productB := primitive.NewObjectID()
	productC := primitive.NewObjectID()

	analyticsRepo := &fakeAnalyticsRepo{
		orders: []entity.Order{
			{
				ID:         primitive.NewObjectID(),
				Date:       *dateUTC(2025, 3, 15),
				ProductIDs: []primitive.ObjectID{productA, productB, productC},
				Total:      90,
			},
		},
	}
	svc := NewReportService(analyticsRepo)

	report, err := svc.GenerateSalesReport(context.Background(), *dateUTC(2025, 3, 1), *dateUTC(2025, 3, 31))
	require.NoError(t, err)

	require.Len(t, report.ProductSales, 3)
	for _, productID := range []primitive.ObjectID{productA, productB, productC} {
		sales := report.ProductSales[productID.Hex()]
		require.NotNil(t, sales)
		assert.Equal(t, int64(1), sales.Count)
		assert.Equal(t, 30.0, sales.TotalAmount)
	}
}

func TestGenerateSalesReportDuplicateProductCountsTwice(t *testing.T) {
	productA := primitive.NewObjectID()
	productB := primitive.NewObjectID()

	analyticsRepo := &fakeAnalyticsRepo{
		orders: []entity.Order{
			{
				ID:         primitive.NewObjectID(),
				Date:       *dateUTC(2025, 3, 15),
				ProductIDs: []primitive.ObjectID{productA, productA, productB},
				Total:      90,
			},
		},
	}
	svc := NewReportService(analyticsRepo)

	report, err := svc.GenerateSalesReport(context.Background(), *dateUTC(2025, 3, 1), *dateUTC(2025, 3, 31))
	require.NoError(t, err)

	salesA := report.ProductSales[productA.Hex()]
	require.NotNil(t, salesA)
	assert.Equal(t, int64(2), salesA.Count)
	assert.Equal(t, 60.0, salesA.TotalAmount)

	salesB := report.ProductSales[productB.Hex()]
	require.NotNil(t, salesB)
	assert.Equal(t, int64(1), salesB.Count)
	assert.Equal(t, 30.0, salesB.TotalAmount)
}

func TestGenerateSalesReportDailyBucketsAndSummary(t *testing.T) {
	productA := primitive.NewObjectID()

	analyticsRepo := &fakeAnalyticsRepo{
		orders: []entity.Order{
			{ID: primitive.NewObjectID(), Date: *dateUTC(2025, 3, 10), ProductIDs: []primitive.ObjectID{productA}, Total: 100},
			{ID: primitive.NewObjectID(), Date: *dateUTC(2025, 3, 10), ProductIDs: []primitive.ObjectID{productA}, Total: 50},
			{ID: primitive.NewObjectID(), Date: *dateUTC(2025, 3, 12), ProductIDs: []primitive.ObjectID{productA}, Total: 25},
		},
	}
	svc := NewReportService(analyticsRepo)

	report, err := svc.GenerateSalesReport(context.Background(), *dateUTC(2025, 3, 1), *dateUTC(2025, 3, 31))
	require.NoError(t, err)

	require.Len(t, report.DailySales, 2)
	day10 := report.DailySales["2025-03-10"]
	require.NotNil(t, day10)
	assert.Equal(t, int64(2), day10.OrderCount)
	assert.Equal(t, 150.0, day10.TotalAmount)

	day12 := report.DailySales["2025-03-12"]
	require.NotNil(t, day12)
	assert.Equal(t, int64(1), day12.OrderCount)
	assert.Equal(t, 25.0, day12.TotalAmount)

	assert.Equal(t, int64(3), report.Summary.TotalOrders)
	assert.Equal(t, 175.0, report.Summary.TotalSalesAmount)
	assert.InDelta(t, 58.3333, report.Summary.AverageOrderValue, 0.001)
	assert.Equal(t, "2025-03-01", report.Summary.Period.StartDate)
	assert.Equal(t, "2025-03-31", report.Summary.Period.EndDate)
}

func TestGenerateSalesReportEmptyWindow(t *testing.T) {
	analyticsRepo := &fakeAnalyticsRepo{}
	svc := NewReportService(analyticsRepo)

	report, err := svc.GenerateSalesReport(context.Background(), *dateUTC(2025, 3, 1), *dateUTC(2025, 3, 31))
	require.NoError(t, err)

	assert.Empty(t, report.DailySales)
	assert.Empty(t, report.ProductSales)
	assert.Equal(t, int64(0), report.Summary.TotalOrders)
	assert.Equal(t, 0.0, report.Summary.TotalSalesAmount)
	assert.Equal(t, 0.0, report.Summary.AverageOrderValue)
}

func TestGenerateSalesReportOrderWithoutProducts(t *testing.T) {
	// A stored order with an empty product list still counts toward the
	// daily totals but contributes nothing to product sales.
	analyticsRepo := &fakeAnalyticsRepo{
		orders: []entity.Order{
			{ID: primitive.NewObjectID(), Date: *dateUTC(2025, 3, 10), Total: 40},
		},
	}
	svc := NewReportService(analyticsRepo)

	report, err := svc.GenerateSalesReport(context.Background(), *dateUTC(2025, 3, 1), *dateUTC(2025, 3, 31))
	require.NoError(t, err)

	require.NotNil(t, report.DailySales["2025-03-10"])
	assert.Equal(t, 40.0, report.DailySales["2025-03-10"].TotalAmount)
	assert.Empty(t, report.ProductSales)
}

func TestGenerateSalesReportFetchFailureAborts(t *testing.T) {
	analyticsRepo := &fakeAnalyticsRepo{err: errors.New("cursor timeout")}
	svc := NewReportService(analyticsRepo)

	report, err := svc.GenerateSalesReport(context.Background(), *dateUTC(2025, 3, 1), *dateUTC(2025, 3, 31))
	require.Error(t, err)
	assert.Nil(t, report)
}

func TestGenerateSalesReportPassesWindowToStore(t *testing.T) {
	analyticsRepo := &fakeAnalyticsRepo{}
	svc := NewReportService(analyticsRepo)

	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 28, 23, 59, 59, 0, time.UTC)
	_, err := svc.GenerateSalesReport(context.Background(), start, end)
	require.NoError(t, err)

	p := analyticsRepo.lastPredicate
	require.NotNil(t, p)
	require.NotNil(t, p.StartDate)
	require.NotNil(t, p.EndDate)
	assert.True(t, p.StartDate.Equal(start))
	assert.True(t, p.EndDate.Equal(end))
	assert.Nil(t, p.ProductID)
	assert.False(t, p.HasProductPool)
}
