package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hubxp/backoffice-api/internal/application/service"
	"github.com/hubxp/backoffice-api/internal/presentation/http/dto/request"
	"github.com/hubxp/backoffice-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard handles the dashboard aggregation query. All filters are
// optional; malformed ids or dates are rejected before touching the store.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	var req request.DashboardFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	filters := &service.DashboardFilters{}

	if req.CategoryID != "" {
		categoryID, err := parseObjectID(req.CategoryID)
		if err != nil {
			response.Error(c, err)
			return
		}
		filters.CategoryID = &categoryID
	}
	if req.ProductID != "" {
		productID, err := parseObjectID(req.ProductID)
		if err != nil {
			response.Error(c, err)
			return
		}
		filters.ProductID = &productID
	}
	if req.StartDate != "" {
		start, err := parseDate(req.StartDate)
		if err != nil {
			response.Error(c, err)
			return
		}
		filters.StartDate = &start
	}
	if req.EndDate != "" {
		end, err := parseDate(req.EndDate)
		if err != nil {
			response.Error(c, err)
			return
		}
		filters.EndDate = &end
	}

	data, err := h.dashboardService.GetDashboardData(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard data retrieved successfully", data)
}
