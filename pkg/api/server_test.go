package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eligius-health/eligius/ent"
	"github.com/eligius-health/eligius/ent/protocol"
	"github.com/eligius-health/eligius/pkg/models"
	"github.com/eligius-health/eligius/pkg/services"
)

type stubProtocolAPI struct {
	submitResult *services.SubmitResult
	submitErr    error
	getProtocol  *ent.Protocol
	getErr       error
	listResult   []*ent.Protocol
	retryErr     error
	lastTitle    string
	lastDocument []byte
	lastFilter   services.ListFilter
}

func (s *stubProtocolAPI) Submit(_ context.Context, title string, document []byte) (*services.SubmitResult, error) {
	s.lastTitle = title
	s.lastDocument = document
	return s.submitResult, s.submitErr
}

func (s *stubProtocolAPI) Get(context.Context, string) (*ent.Protocol, error) {
	return s.getProtocol, s.getErr
}

func (s *stubProtocolAPI) List(_ context.Context, filter services.ListFilter) ([]*ent.Protocol, error) {
	s.lastFilter = filter
	return s.listResult, nil
}

func (s *stubProtocolAPI) Retry(context.Context, string, string) (*ent.Protocol, error) {
	if s.retryErr != nil {
		return nil, s.retryErr
	}
	return s.getProtocol, nil
}

func (s *stubProtocolAPI) ReExtract(context.Context, string, string) error { return nil }

func (s *stubProtocolAPI) Archive(context.Context, string, string) (*ent.Protocol, error) {
	return s.getProtocol, nil
}

func (s *stubProtocolAPI) DownloadURL(context.Context, string) (string, error) {
	return "https://example.com/doc.pdf?signed=1", nil
}

type stubReviewAPI struct {
	batch        *ent.CriteriaBatch
	batchErr     error
	decisionErr  error
	lastDecision models.ReviewDecision
	lastReviewer string
}

func (s *stubReviewAPI) ActiveBatch(context.Context, string) (*ent.CriteriaBatch, error) {
	return s.batch, s.batchErr
}

func (s *stubReviewAPI) RecordDecision(_ context.Context, id string, decision models.ReviewDecision, _ map[string]interface{}, reviewer string) (*ent.Criterion, error) {
	s.lastDecision = decision
	s.lastReviewer = reviewer
	if s.decisionErr != nil {
		return nil, s.decisionErr
	}
	return &ent.Criterion{ID: id, Text: "Age >= 18"}, nil
}

type stubAuditAPI struct{}

func (stubAuditAPI) ListForTarget(context.Context, string, string, int) ([]*ent.AuditLog, error) {
	return []*ent.AuditLog{}, nil
}

func newTestServer(protocols *stubProtocolAPI, reviews *stubReviewAPI) *Server {
	return NewServer(protocols, reviews, stubAuditAPI{}, nil, nil, slog.New(slog.DiscardHandler))
}

type stubBreakerStatus struct{ open []string }

func (s stubBreakerStatus) OpenBreakers() []string { return s.open }

func doRequest(t *testing.T, s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)
	return rec
}

func TestSubmitProtocol_AcceptedWithWarning(t *testing.T) {
	protocols := &stubProtocolAPI{
		submitResult: &services.SubmitResult{
			Protocol: &ent.Protocol{ID: "p1", Title: "Trial A", Status: protocol.StatusUploaded},
			Warning:  "AI service temporarily unavailable; extraction will begin once it recovers",
		},
	}
	s := newTestServer(protocols, &stubReviewAPI{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/protocols?title=Trial+A", bytes.NewReader([]byte("%PDF-1.7 test")))
	req.Header.Set("Content-Type", "application/pdf")
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "Trial A", protocols.lastTitle)
	assert.Equal(t, []byte("%PDF-1.7 test"), protocols.lastDocument)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["warning"], "temporarily unavailable")
}

func TestSubmitProtocol_EmptyBodyRejected(t *testing.T) {
	s := newTestServer(&stubProtocolAPI{}, &stubReviewAPI{})

	rec := doRequest(t, s, http.MethodPost, "/api/v1/protocols", []byte{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProtocol_NotFound(t *testing.T) {
	s := newTestServer(&stubProtocolAPI{getErr: services.ErrProtocolNotFound}, &stubReviewAPI{})

	rec := doRequest(t, s, http.MethodGet, "/api/v1/protocols/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRetryProtocol_ConflictWhileRunning(t *testing.T) {
	s := newTestServer(&stubProtocolAPI{retryErr: services.ErrRetryConflict}, &stubReviewAPI{})

	rec := doRequest(t, s, http.MethodPost, "/api/v1/protocols/p1/retry", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListProtocols_InvalidStatusRejected(t *testing.T) {
	s := newTestServer(&stubProtocolAPI{}, &stubReviewAPI{})

	rec := doRequest(t, s, http.MethodGet, "/api/v1/protocols?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListProtocols_StatusFilterApplied(t *testing.T) {
	protocols := &stubProtocolAPI{}
	s := newTestServer(protocols, &stubReviewAPI{})

	rec := doRequest(t, s, http.MethodGet, "/api/v1/protocols?status=pending_review&limit=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, protocols.lastFilter.Status)
	assert.Equal(t, protocol.StatusPendingReview, *protocols.lastFilter.Status)
	assert.Equal(t, 10, protocols.lastFilter.Limit)
}

func TestRecordDecision_PassesActorHeader(t *testing.T) {
	reviews := &stubReviewAPI{}
	s := newTestServer(&stubProtocolAPI{}, reviews)

	body := []byte(`{"decision": "approved"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/criteria/c1/decision", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor", "dr.smith")
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.DecisionApproved, reviews.lastDecision)
	assert.Equal(t, "dr.smith", reviews.lastReviewer)
}

func TestRecordDecision_InvalidDecision(t *testing.T) {
	s := newTestServer(&stubProtocolAPI{}, &stubReviewAPI{decisionErr: services.ErrInvalidDecision})

	rec := doRequest(t, s, http.MethodPost, "/api/v1/criteria/c1/decision", []byte(`{"decision": "maybe"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordDecision_MissingBody(t *testing.T) {
	s := newTestServer(&stubProtocolAPI{}, &stubReviewAPI{})

	rec := doRequest(t, s, http.MethodPost, "/api/v1/criteria/c1/decision", []byte(`{}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth_NoDatabaseMode(t *testing.T) {
	s := newTestServer(&stubProtocolAPI{}, &stubReviewAPI{})

	rec := doRequest(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "disabled", resp["database"])
}

func TestHealth_ReportsOpenBreakers(t *testing.T) {
	s := NewServer(&stubProtocolAPI{}, &stubReviewAPI{}, stubAuditAPI{}, nil,
		stubBreakerStatus{open: []string{"gemini"}}, slog.New(slog.DiscardHandler))

	rec := doRequest(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
	assert.Equal(t, []interface{}{"gemini"}, resp["open_breakers"])
}

func TestSecurityHeaders(t *testing.T) {
	s := newTestServer(&stubProtocolAPI{}, &stubReviewAPI{})

	rec := doRequest(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
