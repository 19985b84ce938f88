package handler

import (
	"errors"
	"net/http"

	"teamboard/internal/middleware"
	"teamboard/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUserID pulls the authenticated user's id out of the gin context.
// Writes the error response itself when the request is unauthenticated.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return uuid.Nil, false
	}

	userID, ok := raw.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return uuid.Nil, false
	}
	return userID, true
}

// parseUUIDParam parses a uuid path parameter, writing the error response
// on failure.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}

// writeWorkflowError maps the workflow error taxonomy onto HTTP statuses.
func writeWorkflowError(c *gin.Context, err error) {
	var permErr *workflow.PermissionDeniedError
	var gateErr *workflow.WorkflowRejectedError
	var wipErr *workflow.WipLimitError

	switch {
	case errors.Is(err, workflow.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
	case errors.Is(err, workflow.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.As(err, &permErr):
		c.JSON(http.StatusForbidden, gin.H{"error": permErr.Reason})
	case errors.As(err, &gateErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": gateErr.Reason})
	case errors.As(err, &wipErr):
		c.JSON(http.StatusConflict, gin.H{"error": wipErr.Reason})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process move"})
	}
}
