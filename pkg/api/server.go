// Package api exposes the HTTP surface: protocol submission and lifecycle,
// the review workflow, audit reads, and health.
package api

import (
	"context"
	stdsql "database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eligius-health/eligius/ent"
	"github.com/eligius-health/eligius/pkg/models"
	"github.com/eligius-health/eligius/pkg/services"
)

// ProtocolAPI is the slice of the protocol service the handlers use.
type ProtocolAPI interface {
	Submit(ctx context.Context, title string, document []byte) (*services.SubmitResult, error)
	Get(ctx context.Context, id string) (*ent.Protocol, error)
	List(ctx context.Context, filter services.ListFilter) ([]*ent.Protocol, error)
	Retry(ctx context.Context, id, actor string) (*ent.Protocol, error)
	ReExtract(ctx context.Context, id, actor string) error
	Archive(ctx context.Context, id, actor string) (*ent.Protocol, error)
	DownloadURL(ctx context.Context, id string) (string, error)
}

// ReviewAPI is the slice of the review service the handlers use.
type ReviewAPI interface {
	ActiveBatch(ctx context.Context, protocolID string) (*ent.CriteriaBatch, error)
	RecordDecision(ctx context.Context, criterionID string, decision models.ReviewDecision, modification map[string]interface{}, reviewer string) (*ent.Criterion, error)
}

// AuditAPI is the slice of the audit service the handlers use.
type AuditAPI interface {
	ListForTarget(ctx context.Context, targetKind, targetID string, limit int) ([]*ent.AuditLog, error)
}

// BreakerStatus reports open circuit breakers for the health endpoint.
type BreakerStatus interface {
	OpenBreakers() []string
}

// Server is the HTTP API server.
type Server struct {
	protocols ProtocolAPI
	reviews   ReviewAPI
	audits    AuditAPI

	// db is used by the health endpoint; nil in no-database mode.
	db *stdsql.DB
	// breakers is used by the health endpoint; may be nil.
	breakers BreakerStatus
	logger   *slog.Logger

	httpServer *http.Server
}

// NewServer creates an API server.
func NewServer(protocols ProtocolAPI, reviews ReviewAPI, audits AuditAPI, db *stdsql.DB, breakers BreakerStatus, logger *slog.Logger) *Server {
	return &Server{
		protocols: protocols,
		reviews:   reviews,
		audits:    audits,
		db:        db,
		breakers:  breakers,
		logger:    logger,
	}
}

// Engine builds the gin engine with all routes registered.
func (s *Server) Engine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(securityHeaders())
	engine.Use(requestLogger(s.logger))

	engine.GET("/health", s.healthHandler)

	v1 := engine.Group("/api/v1")
	{
		v1.POST("/protocols", s.submitProtocolHandler)
		v1.GET("/protocols", s.listProtocolsHandler)
		v1.GET("/protocols/:id", s.getProtocolHandler)
		v1.POST("/protocols/:id/retry", s.retryProtocolHandler)
		v1.POST("/protocols/:id/reextract", s.reExtractProtocolHandler)
		v1.POST("/protocols/:id/archive", s.archiveProtocolHandler)
		v1.GET("/protocols/:id/document", s.documentURLHandler)
		v1.GET("/protocols/:id/criteria", s.listCriteriaHandler)
		v1.GET("/protocols/:id/audit", s.auditTrailHandler)

		v1.POST("/criteria/:id/decision", s.recordDecisionHandler)
	}

	return engine
}

// Start begins serving on addr. It returns once the listener is up; serve
// errors other than graceful shutdown are logged.
func (s *Server) Start(addr string) {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server error", slog.String("error", err.Error()))
		}
	}()
	s.logger.Info("API server listening", slog.String("addr", addr))
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// actor extracts the acting identity from the request, for the audit trail.
func actor(c *gin.Context) string {
	if v := c.GetHeader("X-Actor"); v != "" {
		return v
	}
	return "api"
}
