package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hubxp/backoffice-api/internal/domain/entity"
	"github.com/hubxp/backoffice-api/internal/domain/repository"
	"github.com/hubxp/backoffice-api/pkg/apperror"
	"github.com/hubxp/backoffice-api/pkg/pagination"
)

// OrderService handles order-related operations
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// CreateOrderInput represents the create order input. Total comes from the
// caller and is stored as-is; it is not derived from product prices.
type CreateOrderInput struct {
	Date       *time.Time
	ProductIDs []primitive.ObjectID
	Total      float64
}

// CreateOrder creates a new order. Every referenced product must exist at
// creation time; duplicates are allowed and stand for quantity.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if len(input.ProductIDs) == 0 {
		return nil, apperror.NewBadRequestError("An order must reference at least one product")
	}
	if input.Total < 0 {
		return nil, apperror.NewBadRequestError("Order total must not be negative")
	}
	if err := s.validateProducts(ctx, input.ProductIDs); err != nil {
		return nil, err
	}

	order := &entity.Order{
		ProductIDs: input.ProductIDs,
		Total:      input.Total,
	}
	if input.Date != nil {
		order.Date = *input.Date
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id primitive.ObjectID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with pagination
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// UpdateOrderInput represents the update order input
type UpdateOrderInput struct {
	ID         primitive.ObjectID
	Date       *time.Time
	ProductIDs []primitive.ObjectID
	Total      *float64
}

// UpdateOrder updates an order
func (s *OrderService) UpdateOrder(ctx context.Context, input *UpdateOrderInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if input.ProductIDs != nil {
		if len(input.ProductIDs) == 0 {
			return nil, apperror.NewBadRequestError("An order must reference at least one product")
		}
		if err := s.validateProducts(ctx, input.ProductIDs); err != nil {
			return nil, err
		}
		order.ProductIDs = input.ProductIDs
	}
	if input.Date != nil {
		order.Date = *input.Date
	}
	if input.Total != nil {
		if *input.Total < 0 {
			return nil, apperror.NewBadRequestError("Order total must not be negative")
		}
		order.Total = *input.Total
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder deletes an order
func (s *OrderService) DeleteOrder(ctx context.Context, id primitive.ObjectID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	return s.orderRepo.Delete(ctx, id)
}

// validateProducts checks every referenced product exists, resolving the
// distinct ids in one query.
func (s *OrderService) validateProducts(ctx context.Context, ids []primitive.ObjectID) error {
	distinct := make([]primitive.ObjectID, 0, len(ids))
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	products, err := s.productRepo.GetByIDs(ctx, distinct)
	if err != nil {
		return err
	}
	if len(products) == len(distinct) {
		return nil
	}

	found := make(map[primitive.ObjectID]struct{}, len(products))
	for _, product := range products {
		found[product.ID] = struct{}{}
	}
	for _, id := range distinct {
		if _, ok := found[id]; !ok {
			return apperror.NewNotFoundError("Product " + id.Hex())
		}
	}
	return nil
}
