package terminology

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eligius-health/eligius/pkg/models"
	"github.com/eligius-health/eligius/pkg/resilience"
)

func TestRxNormClient_ParsesApproximateTerm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/approximateTerm.json", r.URL.Path)
		assert.Equal(t, "metformin", r.URL.Query().Get("term"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"approximateGroup":{"candidate":[
			{"rxcui":"6809","score":"100","name":"metformin"},
			{"rxcui":"6809","score":"100","name":"metformin"},
			{"rxcui":"861007","score":"67","name":"metformin hydrochloride"}
		]}}`))
	}))
	defer srv.Close()

	client := NewRxNormClient(srv.URL, srv.Client())
	candidates, err := client.Search(context.Background(), "metformin", 5)
	require.NoError(t, err)

	// Duplicate rxcui collapsed.
	require.Len(t, candidates, 2)
	assert.Equal(t, "6809", candidates[0].Code)
	assert.Equal(t, 1.0, candidates[0].Confidence)
	assert.InDelta(t, 0.67, candidates[1].Confidence, 1e-9)
}

func TestICD10Client_ParsesPositionalArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[2,["I10","I11.9"],null,[["I10","Essential (primary) hypertension"],["I11.9","Hypertensive heart disease"]]]`))
	}))
	defer srv.Close()

	client := NewICD10Client(srv.URL, srv.Client())
	candidates, err := client.Search(context.Background(), "hypertension", 5)
	require.NoError(t, err)

	require.Len(t, candidates, 2)
	assert.Equal(t, "I10", candidates[0].Code)
	assert.Equal(t, "Essential (primary) hypertension", candidates[0].Display)
	assert.Greater(t, candidates[0].Confidence, candidates[1].Confidence)
}

func TestUMLSClient_ParsesSearchAndSkipsPlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		_, _ = w.Write([]byte(`{"result":{"results":[
			{"ui":"C0020538","name":"Hypertensive disease","rootSource":"MTH"},
			{"ui":"NONE","name":"NO RESULTS"}
		]}}`))
	}))
	defer srv.Close()

	client := NewUMLSClient(srv.URL, "test-key", srv.Client())
	candidates, err := client.Search(context.Background(), "hypertension", 5)
	require.NoError(t, err)

	require.Len(t, candidates, 1)
	assert.Equal(t, "C0020538", candidates[0].Code)
}

func TestUMLSClient_MissingKeyIsAuthError(t *testing.T) {
	client := NewUMLSClient("https://example.invalid", "", nil)
	_, err := client.Search(context.Background(), "anything", 5)
	require.Error(t, err)
	assert.Equal(t, SeverityAuth, Classify(err))
}

func TestHPOClient_ParsesTerms(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hp/search", r.URL.Path)
		_, _ = w.Write([]byte(`{"terms":[{"id":"HP:0001250","name":"Seizure"}]}`))
	}))
	defer srv.Close()

	client := NewHPOClient(srv.URL, srv.Client())
	candidates, err := client.Search(context.Background(), "seizure", 5)
	require.NoError(t, err)

	require.Len(t, candidates, 1)
	assert.Equal(t, "HP:0001250", candidates[0].Code)
	assert.Equal(t, 1.0, candidates[0].Confidence)
}

func TestGetJSON_NonOKBecomesServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewRxNormClient(srv.URL, srv.Client())
	_, err := client.Search(context.Background(), "aspirin", 5)

	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusTooManyRequests, se.Status)
	assert.Equal(t, SeverityRateLimit, Classify(err))
}

func TestResilientClient_ServesFromCacheWithoutHittingService(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"terms":[{"id":"HP:0001250","name":"Seizure"}]}`))
	}))
	defer srv.Close()

	cache, _ := newTestCache(t, time.Hour)
	breakers := resilience.NewRegistry(resilience.BreakerConfig{FailMax: 3, ResetTimeout: time.Minute}, nil)
	client := WrapClient(models.SystemHPO, NewHPOClient(srv.URL, srv.Client()), cache, breakers,
		time.Second, resilience.RetryConfig{Attempts: 1})

	for i := 0; i < 3; i++ {
		candidates, err := client.Search(context.Background(), "  Seizure ", 5)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
	}
	assert.Equal(t, 1, calls)
}

func TestResilientClient_RetriesTransientThenOpensBreaker(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	breakers := resilience.NewRegistry(resilience.BreakerConfig{FailMax: 3, ResetTimeout: time.Minute}, nil)
	client := WrapClient(models.SystemHPO, NewHPOClient(srv.URL, srv.Client()), NewCache(nil, 0, nil), breakers,
		time.Second, resilience.RetryConfig{Attempts: 3, BackoffBase: time.Millisecond, BackoffMax: time.Millisecond})

	_, err := client.Search(context.Background(), "seizure", 5)
	require.Error(t, err)
	assert.Equal(t, 3, calls)

	// Three consecutive failures opened the breaker; the next call is
	// rejected without reaching the service.
	_, err = client.Search(context.Background(), "seizure", 5)
	assert.True(t, errors.Is(err, resilience.ErrBreakerOpen))
	assert.Equal(t, 3, calls)
}

func TestResilientClient_CrosswalkSharesBreakerWithSearch(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	breakers := resilience.NewRegistry(resilience.BreakerConfig{FailMax: 3, ResetTimeout: time.Minute}, nil)
	wrapped := WrapClient(models.SystemUMLS, NewUMLSClient(srv.URL, "test-key", srv.Client()), NewCache(nil, 0, nil), breakers,
		time.Second, resilience.RetryConfig{Attempts: 3, BackoffBase: time.Millisecond, BackoffMax: time.Millisecond})

	crosswalk, ok := wrapped.(SNOMEDCrosswalker)
	require.True(t, ok)

	// The crosswalk retries like any decorated call and its failures count
	// against the shared UMLS breaker.
	_, err := crosswalk.SNOMEDCode(context.Background(), "C0011849")
	require.Error(t, err)
	assert.Equal(t, 3, calls)

	_, err = wrapped.Search(context.Background(), "diabetes", 5)
	assert.True(t, errors.Is(err, resilience.ErrBreakerOpen))
	assert.Equal(t, 3, calls)
}

func TestResilientClient_CrosswalkCachesMapping(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"result":[{"code":"https://uts-ws.nlm.nih.gov/rest/content/2023AB/source/SNOMEDCT_US/73211009"}]}`))
	}))
	defer srv.Close()

	cache, _ := newTestCache(t, time.Hour)
	breakers := resilience.NewRegistry(resilience.BreakerConfig{FailMax: 3, ResetTimeout: time.Minute}, nil)
	wrapped := WrapClient(models.SystemUMLS, NewUMLSClient(srv.URL, "test-key", srv.Client()), cache, breakers,
		time.Second, resilience.RetryConfig{Attempts: 1})
	crosswalk := wrapped.(SNOMEDCrosswalker)

	for i := 0; i < 3; i++ {
		code, err := crosswalk.SNOMEDCode(context.Background(), "C0011849")
		require.NoError(t, err)
		assert.Equal(t, "73211009", code)
	}
	assert.Equal(t, 1, calls)
}
