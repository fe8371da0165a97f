package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/exchwatch/currency_exchange_app/internal/apperrors"
	portssvc "github.com/exchwatch/currency_exchange_app/internal/core/ports/services"
	"github.com/exchwatch/currency_exchange_app/internal/dto"
	"github.com/exchwatch/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// operationHandler handles HTTP requests for the per-user exchange ledger.
type operationHandler struct {
	operationService portssvc.OperationSvcFacade
}

// newOperationHandler creates a new operationHandler.
func newOperationHandler(os portssvc.OperationSvcFacade) *operationHandler {
	return &operationHandler{
		operationService: os,
	}
}

// registerOperationRoutes registers the authenticated operation routes.
func registerOperationRoutes(rg *gin.RouterGroup, operationService portssvc.OperationSvcFacade) {
	h := newOperationHandler(operationService)

	operations := rg.Group("/users_exchange")
	{
		operations.GET("/", h.listOperations)
		operations.POST("/", h.createOperation)
		operations.DELETE("/:id", h.deleteOperation)
	}
}

// listOperations godoc
// @Summary List own exchange operations
// @Description Lists every exchange operation owned by the authenticated user
// @Tags operations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.OperationResponse
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 500 {object} map[string]string "Failed to list operations"
// @Router /users_exchange/ [get]
func (h *operationHandler) listOperations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	operations, err := h.operationService.ListOperations(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list operations from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list operations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListOperationResponse(operations))
}

// createOperation godoc
// @Summary Record an exchange operation
// @Description Records a new exchange operation against today's or yesterday's rate for the given currency
// @Tags operations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param operation body dto.CreateOperationRequest true "Operation to record"
// @Success 201 {object} dto.OperationResponse
// @Failure 400 {object} map[string]string "Invalid request or no recent rate for currency"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 500 {object} map[string]string "Failed to create operation"
// @Router /users_exchange/ [post]
func (h *operationHandler) createOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.CreateOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind request body for CreateOperation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	operation, err := h.operationService.CreateOperation(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create operation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create operation"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToOperationResponse(*operation))
}

// deleteOperation godoc
// @Summary Delete an exchange operation
// @Description Deletes one exchange operation owned by the authenticated user
// @Tags operations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Operation ID"
// @Success 204 "Operation deleted"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 403 {object} map[string]string "Operation belongs to another user"
// @Failure 404 {object} map[string]string "Operation not found"
// @Failure 500 {object} map[string]string "Failed to delete operation"
// @Router /users_exchange/{id} [delete]
func (h *operationHandler) deleteOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	operationID := c.Param("id")
	if err := h.operationService.DeleteOperation(c.Request.Context(), userID, operationID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to delete operation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete operation"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
