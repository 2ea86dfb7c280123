package request

// DashboardFilterRequest represents dashboard query parameters. The parameter
// names are camelCase for compatibility with the existing admin UI.
type DashboardFilterRequest struct {
	CategoryID string `form:"categoryId"`
	ProductID  string `form:"productId"`
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
}
