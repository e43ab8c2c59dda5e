package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eligius-health/eligius/pkg/models"
)

// listCriteriaHandler handles GET /api/v1/protocols/:id/criteria, returning
// the active batch with criteria and grounded entities.
func (s *Server) listCriteriaHandler(c *gin.Context) {
	batch, err := s.reviews.ActiveBatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBatchResponse(batch))
}

// decisionRequest is the body of POST /api/v1/criteria/:id/decision.
type decisionRequest struct {
	Decision     string                 `json:"decision" binding:"required"`
	Modification map[string]interface{} `json:"modification"`
}

// recordDecisionHandler handles POST /api/v1/criteria/:id/decision.
func (s *Server) recordDecisionHandler(c *gin.Context) {
	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	criterion, err := s.reviews.RecordDecision(
		c.Request.Context(),
		c.Param("id"),
		models.ReviewDecision(req.Decision),
		req.Modification,
		actor(c),
	)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCriterionResponse(criterion))
}
