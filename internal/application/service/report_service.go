package service

import (
	"context"
	"time"

	"github.com/hubxp/backoffice-api/internal/domain/entity"
	"github.com/hubxp/backoffice-api/internal/domain/repository"
)

// ReportService produces the offline daily sales report consumed by the batch
// job. It is all-or-nothing: a fetch failure aborts the whole report.
type ReportService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewReportService creates a new report service
func NewReportService(analyticsRepo repository.AnalyticsRepository) *ReportService {
	return &ReportService{analyticsRepo: analyticsRepo}
}

// DailySales accumulates the orders of one calendar day.
type DailySales struct {
	TotalAmount float64 `json:"totalAmount"`
	OrderCount  int64   `json:"orderCount"`
}

// ProductSales is the estimated contribution of one product across the
// reporting window. TotalAmount is an even split of each order's total over
// its line items — an estimate, not a sum of listed prices.
type ProductSales struct {
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}

// ReportPeriod is the reporting window, ISO date strings.
type ReportPeriod struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ReportSummary totals the daily buckets. It is derived from them, never
// recomputed from the raw orders.
type ReportSummary struct {
	Period            ReportPeriod `json:"period"`
	TotalOrders       int64        `json:"totalOrders"`
	TotalSalesAmount  float64      `json:"totalSalesAmount"`
	AverageOrderValue float64      `json:"averageOrderValue"`
}

// SalesReport is the complete batch report.
type SalesReport struct {
	Summary      ReportSummary            `json:"summary"`
	DailySales   map[string]*DailySales   `json:"dailySales"`
	ProductSales map[string]*ProductSales `json:"productSales"`
}

// GenerateSalesReport fetches the orders in [start, end] and buckets them by
// calendar day and by referenced product.
func (s *ReportService) GenerateSalesReport(ctx context.Context, start, end time.Time) (*SalesReport, error) {
	predicate := &repository.OrderPredicate{
		StartDate: &start,
		EndDate:   &end,
	}
	orders, err := s.analyticsRepo.OrdersMatching(ctx, predicate)
	if err != nil {
		return nil, err
	}

	report := buildSalesReport(orders)
	report.Summary.Period = ReportPeriod{
		StartDate: start.UTC().Format("2006-01-02"),
		EndDate:   end.UTC().Format("2006-01-02"),
	}
	return report, nil
}

// buildSalesReport buckets already-fetched orders. Each occurrence of a
// product id — duplicates included — counts once and receives an even share
// of the order total. The listed product prices are deliberately not used:
// orders carry no per-line price, so the even split is the best estimate
// available, and substituting listed prices would change what the numbers
// mean.
func buildSalesReport(orders []entity.Order) *SalesReport {
	report := &SalesReport{
		DailySales:   make(map[string]*DailySales),
		ProductSales: make(map[string]*ProductSales),
	}

	for _, order := range orders {
		dateKey := order.Date.UTC().Format("2006-01-02")

		day, ok := report.DailySales[dateKey]
		if !ok {
			day = &DailySales{}
			report.DailySales[dateKey] = day
		}
		day.TotalAmount += order.Total
		day.OrderCount++

		if len(order.ProductIDs) == 0 {
			continue
		}
		averagePrice := order.Total / float64(len(order.ProductIDs))
		for _, productID := range order.ProductIDs {
			key := productID.Hex()
			product, ok := report.ProductSales[key]
			if !ok {
				product = &ProductSales{}
				report.ProductSales[key] = product
			}
			product.Count++
			product.TotalAmount += averagePrice
		}
	}

	for _, day := range report.DailySales {
		report.Summary.TotalOrders += day.OrderCount
		report.Summary.TotalSalesAmount += day.TotalAmount
	}
	if report.Summary.TotalOrders > 0 {
		report.Summary.AverageOrderValue = report.Summary.TotalSalesAmount / float64(report.Summary.TotalOrders)
	}

	return report
}
