package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eligius-health/eligius/pkg/services"
)

// mapServiceError writes the HTTP error response for a service-layer error.
func (s *Server) mapServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProtocolNotFound),
		errors.Is(err, services.ErrBatchNotFound),
		errors.Is(err, services.ErrCriterionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrRetryConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidDecision):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.logger.Error("Unexpected service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
