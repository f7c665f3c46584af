package handler

import (
	"github.com/storeops/backend/internal/application/accounting"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccountingHandler handles financial dashboard HTTP requests
type AccountingHandler struct {
	*BaseHandler
	dashboard *accounting.DashboardService
}

// NewAccountingHandler creates a new accounting handler
func NewAccountingHandler(base *BaseHandler, dashboard *accounting.DashboardService) *AccountingHandler {
	return &AccountingHandler{
		BaseHandler: base,
		dashboard:   dashboard,
	}
}

// GetSummary returns the aggregated financial summary for a period
func (h *AccountingHandler) GetSummary(c *gin.Context) {
	var filter accounting.SummaryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	summary, err := h.dashboard.GetSummary(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// GetEmployeeProfit returns the profit attribution for one employee
func (h *AccountingHandler) GetEmployeeProfit(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	var filter accounting.SummaryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	profit, err := h.dashboard.GetEmployeeProfit(c.Request.Context(), employeeID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profit)
}
