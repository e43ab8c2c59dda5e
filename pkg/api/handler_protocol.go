package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eligius-health/eligius/ent/protocol"
	"github.com/eligius-health/eligius/pkg/services"
)

// maxUploadBytes caps the request body of a submission. The pipeline enforces
// its own PDF size limit; this bound just protects the HTTP layer.
const maxUploadBytes = 64 << 20

// submitProtocolHandler handles POST /api/v1/protocols.
// The document arrives either as multipart form field "file" (with optional
// "title") or as a raw application/pdf body with a "title" query parameter.
func (s *Server) submitProtocolHandler(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		title = c.Query("title")
	}

	document, err := readUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(document) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document is required"})
		return
	}

	result, err := s.protocols.Submit(c.Request.Context(), title, document)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}

	resp := gin.H{"protocol": toProtocolResponse(result.Protocol)}
	if result.Warning != "" {
		resp["warning"] = result.Warning
	}
	c.JSON(http.StatusAccepted, resp)
}

func readUpload(c *gin.Context) ([]byte, error) {
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return io.ReadAll(io.LimitReader(f, maxUploadBytes))
	}
	return io.ReadAll(io.LimitReader(c.Request.Body, maxUploadBytes))
}

// listProtocolsHandler handles GET /api/v1/protocols.
func (s *Server) listProtocolsHandler(c *gin.Context) {
	filter := services.ListFilter{}

	if v := c.Query("status"); v != "" {
		status := protocol.Status(v)
		if err := protocol.StatusValidator(status); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + v})
			return
		}
		filter.Status = &status
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filter.Offset = n
		}
	}

	protocols, err := s.protocols.List(c.Request.Context(), filter)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}

	resp := make([]ProtocolResponse, 0, len(protocols))
	for _, p := range protocols {
		resp = append(resp, toProtocolResponse(p))
	}
	c.JSON(http.StatusOK, gin.H{"protocols": resp})
}

// getProtocolHandler handles GET /api/v1/protocols/:id.
func (s *Server) getProtocolHandler(c *gin.Context) {
	p, err := s.protocols.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProtocolResponse(p))
}

// retryProtocolHandler handles POST /api/v1/protocols/:id/retry.
func (s *Server) retryProtocolHandler(c *gin.Context) {
	p, err := s.protocols.Retry(c.Request.Context(), c.Param("id"), actor(c))
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, toProtocolResponse(p))
}

// reExtractProtocolHandler handles POST /api/v1/protocols/:id/reextract.
func (s *Server) reExtractProtocolHandler(c *gin.Context) {
	if err := s.protocols.ReExtract(c.Request.Context(), c.Param("id"), actor(c)); err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "re-extraction queued"})
}

// archiveProtocolHandler handles POST /api/v1/protocols/:id/archive.
func (s *Server) archiveProtocolHandler(c *gin.Context) {
	p, err := s.protocols.Archive(c.Request.Context(), c.Param("id"), actor(c))
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProtocolResponse(p))
}

// documentURLHandler handles GET /api/v1/protocols/:id/document.
func (s *Server) documentURLHandler(c *gin.Context) {
	url, err := s.protocols.DownloadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// auditTrailHandler handles GET /api/v1/protocols/:id/audit.
func (s *Server) auditTrailHandler(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	entries, err := s.audits.ListForTarget(c.Request.Context(), "protocol", c.Param("id"), limit)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"audit": entries})
}
