package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hubxp/backoffice-api/internal/application/service"
	"github.com/hubxp/backoffice-api/internal/domain/repository"
	"github.com/hubxp/backoffice-api/internal/presentation/http/dto/request"
	"github.com/hubxp/backoffice-api/internal/presentation/http/dto/response"
	"github.com/hubxp/backoffice-api/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles listing orders
func (h *OrderHandler) List(c *gin.Context) {
	var filter request.OrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
	}
	params.Pagination.Validate()

	if filter.StartDate != "" {
		start, err := parseDate(filter.StartDate)
		if err != nil {
			response.Error(c, err)
			return
		}
		params.StartDate = &start
	}
	if filter.EndDate != "" {
		end, err := parseDate(filter.EndDate)
		if err != nil {
			response.Error(c, err)
			return
		}
		params.EndDate = &end
	}
	if filter.ProductID != "" {
		productID, err := parseObjectID(filter.ProductID)
		if err != nil {
			response.Error(c, err)
			return
		}
		params.ProductID = &productID
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Create handles order creation
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreateOrderInput{Total: req.Total}

	productIDs, err := parseObjectIDs(req.ProductIDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	input.ProductIDs = productIDs

	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			response.Error(c, err)
			return
		}
		input.Date = &date
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Get handles retrieving a single order
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := parseObjectID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// Update handles order updates
func (h *OrderHandler) Update(c *gin.Context) {
	id, err := parseObjectID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateOrderInput{
		ID:    id,
		Total: req.Total,
	}
	if req.ProductIDs != nil {
		productIDs, err := parseObjectIDs(req.ProductIDs)
		if err != nil {
			response.Error(c, err)
			return
		}
		input.ProductIDs = productIDs
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			response.Error(c, err)
			return
		}
		input.Date = &date
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order updated successfully", order)
}

// Delete handles order deletion
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := parseObjectID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
