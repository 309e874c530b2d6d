package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psgurav-dev/analytics-dashboard/internal/services"
)

// BulkActionHandler applies bulk row actions through the bulk action
// service. Failures are surfaced distinguishably so the caller can roll
// back its optimistic view.
type BulkActionHandler struct {
	bulk *services.BulkActionService
}

// NewBulkActionHandler creates a bulk action handler.
func NewBulkActionHandler(bulk *services.BulkActionService) *BulkActionHandler {
	return &BulkActionHandler{bulk: bulk}
}

type bulkActionRequest struct {
	UserIDs []string `json:"userIds" binding:"required"`
	Action  string   `json:"action" binding:"required"`
}

// Apply handles POST /bulk-action.
func (h *BulkActionHandler) Apply(c *gin.Context) {
	var req bulkActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_REQUEST_BODY",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	result, err := h.bulk.Apply(c.Request.Context(), req.UserIDs, req.Action)
	if err != nil {
		if errors.Is(err, services.ErrTransientFailure) {
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Code:    "BULK_ACTION_FAILED",
				Message: "Failed to update records. Please try again.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    "BULK_ACTION_ERROR",
			Message: "Bulk action error",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"updated": result.Updated,
		"message": result.Message,
	})
}
