package handler

import (
	"github.com/storeops/backend/internal/application/notification"
	"github.com/storeops/backend/internal/interfaces/http/dto"
	"github.com/storeops/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NotificationHandler handles notification feed HTTP requests
type NotificationHandler struct {
	*BaseHandler
	service *notification.Service
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(base *BaseHandler, service *notification.Service) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler: base,
		service:     service,
	}
}

func (h *NotificationHandler) recipientID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(middleware.GetJWTUserID(c))
	if err != nil {
		h.Error(c, dto.ErrCodeUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	return id, true
}

// Notify creates a notification for an employee
func (h *NotificationHandler) Notify(c *gin.Context) {
	var req notification.NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	created, err := h.service.Notify(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, created)
}

// Feed returns the authenticated employee's notification feed
func (h *NotificationHandler) Feed(c *gin.Context) {
	recipientID, ok := h.recipientID(c)
	if !ok {
		return
	}

	var filter notification.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	items, total, err := h.service.Feed(c.Request.Context(), recipientID, filter)
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
	h.SuccessWithMeta(c, items, total, page, pageSize)
}

// MarkRead marks one of the authenticated employee's notifications as read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	recipientID, ok := h.recipientID(c)
	if !ok {
		return
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid notification ID")
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), recipientID, notificationID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// UnreadCount returns the authenticated employee's unread badge count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	recipientID, ok := h.recipientID(c)
	if !ok {
		return
	}

	count, err := h.service.UnreadCount(c.Request.Context(), recipientID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, count)
}
