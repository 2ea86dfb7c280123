package request

// CreateOrderRequest represents an order creation request. Date is optional
// and defaults to the creation time; product ids may repeat to express
// quantity.
type CreateOrderRequest struct {
	Date       string   `json:"date"`
	ProductIDs []string `json:"product_ids" binding:"required,min=1"`
	Total      float64  `json:"total" binding:"min=0"`
}

// UpdateOrderRequest represents an order update request
type UpdateOrderRequest struct {
	Date       string   `json:"date"`
	ProductIDs []string `json:"product_ids" binding:"omitempty,min=1"`
	Total      *float64 `json:"total" binding:"omitempty,min=0"`
}

// OrderFilterRequest represents order filter parameters
type OrderFilterRequest struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	ProductID string `form:"product_id"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
