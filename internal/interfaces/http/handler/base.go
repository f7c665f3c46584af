package handler

import (
	"errors"
	"net/http"

	"github.com/storeops/backend/internal/domain/shared"
	"github.com/storeops/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// BaseHandler provides common functionality for all HTTP handlers
type BaseHandler struct {
	logger *zap.Logger
}

// NewBaseHandler creates a new base handler
func NewBaseHandler(logger *zap.Logger) *BaseHandler {
	return &BaseHandler{logger: logger}
}

// Success sends a successful response with data
func (h *BaseHandler) Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a successful response with data and pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data interface{}, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 response with data
func (h *BaseHandler) Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the given code and message
func (h *BaseHandler) Error(c *gin.Context, code, message string) {
	status := dto.GetHTTPStatus(code)
	requestID := h.requestID(c)

	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("code", code),
			zap.String("message", message),
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
		)
	}

	c.JSON(status, dto.NewErrorResponseWithRequestID(code, message, requestID))
}

// BadRequest sends a 400 response for malformed input
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, dto.ErrCodeNotFound, message)
}

// HandleError maps service layer errors to HTTP responses
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		h.Error(c, code, domainErr.Message)
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		h.Error(c, dto.ErrCodeValidation, err.Error())
		return
	}

	h.logger.Error("unhandled error",
		zap.Error(err),
		zap.String("request_id", h.requestID(c)),
		zap.String("path", c.Request.URL.Path),
	)
	h.Error(c, dto.ErrCodeInternal, "Internal server error")
}

// HandleBindingError maps gin binding failures to a 400 response
func (h *BaseHandler) HandleBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		h.Error(c, dto.ErrCodeValidation, err.Error())
		return
	}
	h.Error(c, dto.ErrCodeInvalidJSON, "Invalid request body")
}

func (h *BaseHandler) requestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
