package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eligius-health/eligius/pkg/database"
	"github.com/eligius-health/eligius/pkg/version"
)

// healthHandler handles GET /health. Open breakers degrade the report but do
// not fail it; the server still serves reads while a dependency is down.
func (s *Server) healthHandler(c *gin.Context) {
	body := gin.H{
		"status":  "healthy",
		"version": version.Version,
	}
	if s.breakers != nil {
		open := s.breakers.OpenBreakers()
		if open == nil {
			open = []string{}
		}
		body["open_breakers"] = open
		if len(open) > 0 {
			body["status"] = "degraded"
		}
	}

	if s.db == nil {
		body["database"] = "disabled"
		c.JSON(http.StatusOK, body)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db)
	body["database"] = dbHealth
	if err != nil {
		body["status"] = "unhealthy"
		body["error"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	c.JSON(http.StatusOK, body)
}
