package handler

import (
	"github.com/storeops/backend/internal/application/inventory"
	"github.com/gin-gonic/gin"
)

// InventoryHandler handles inventory audit HTTP requests
type InventoryHandler struct {
	*BaseHandler
	auditService *inventory.AuditService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(base *BaseHandler, auditService *inventory.AuditService) *InventoryHandler {
	return &InventoryHandler{
		BaseHandler:  base,
		auditService: auditService,
	}
}

// Audit runs the stock accuracy audit and returns any discrepancies
func (h *InventoryHandler) Audit(c *gin.Context) {
	result, err := h.auditService.AuditAccuracy(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// FixDiscrepancies repairs counters that drifted from the movement history
func (h *InventoryHandler) FixDiscrepancies(c *gin.Context) {
	result, err := h.auditService.FixDiscrepancies(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// OperationsLog returns the paginated stock operation history
func (h *InventoryHandler) OperationsLog(c *gin.Context) {
	var filter inventory.OperationLogListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	entries, total, err := h.auditService.OperationsLog(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, entries, total, page, pageSize)
}
