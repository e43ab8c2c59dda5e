package terminology

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eligius-health/eligius/pkg/models"
)

type stubClient struct {
	candidates []Candidate
	err        error
	calls      int
}

func (s *stubClient) Search(ctx context.Context, term string, limit int) ([]Candidate, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.candidates, nil
}

func testRouter(clients map[models.TerminologySystem]Client) *Router {
	return NewRouterWithClients(clients, 8, 0.7, 5, nil)
}

func TestRouter_HighestPrioritySystemWins(t *testing.T) {
	// Condition routes umls/snomed first, icd10 second.
	r := testRouter(map[models.TerminologySystem]Client{
		models.SystemUMLS: &stubClient{candidates: []Candidate{
			{Code: "C0011849", Display: "Diabetes Mellitus", System: models.SystemUMLS, Confidence: 0.95},
		}},
		models.SystemICD10: &stubClient{candidates: []Candidate{
			{Code: "E11.9", Display: "Type 2 diabetes mellitus", System: models.SystemICD10, Confidence: 0.99},
		}},
	})

	result := r.Ground(context.Background(), "diabetes mellitus", models.EntityCondition)

	require.NotNil(t, result.System)
	assert.Equal(t, models.SystemUMLS, *result.System)
	assert.Equal(t, 0.95, result.Confidence)
	// Lower-priority codes still persist.
	require.NotNil(t, result.Codes.ICD10)
	assert.Equal(t, "E11.9", *result.Codes.ICD10)
	require.NotNil(t, result.Codes.UMLSCUI)
	assert.Equal(t, "C0011849", *result.Codes.UMLSCUI)
	assert.False(t, result.NeedsReview)
	assert.Empty(t, result.Error)
}

func TestRouter_PartialFailureAbsorbed(t *testing.T) {
	r := testRouter(map[models.TerminologySystem]Client{
		models.SystemUMLS: &stubClient{err: &ServiceError{System: "umls/snomed", Status: 503}},
		models.SystemICD10: &stubClient{candidates: []Candidate{
			{Code: "I10", Display: "Essential hypertension", System: models.SystemICD10, Confidence: 0.9},
		}},
	})

	result := r.Ground(context.Background(), "hypertension", models.EntityCondition)

	require.NotNil(t, result.System)
	assert.Equal(t, models.SystemICD10, *result.System)
	assert.Empty(t, result.Error)
	assert.Nil(t, result.Codes.UMLSCUI)
}

func TestRouter_TotalFailureReportsWorstSeverity(t *testing.T) {
	r := testRouter(map[models.TerminologySystem]Client{
		models.SystemUMLS:  &stubClient{err: &ServiceError{System: "umls/snomed", Status: 401}},
		models.SystemICD10: &stubClient{err: &ServiceError{System: "icd10", Status: 503}},
	})

	result := r.Ground(context.Background(), "hypertension", models.EntityCondition)

	assert.Nil(t, result.System)
	assert.True(t, result.Codes.Empty())
	assert.True(t, result.NeedsReview)
	// Auth outranks service-unavailable.
	assert.Contains(t, result.Error, "status 401")
}

func TestRouter_DemographicNotRoutable(t *testing.T) {
	r := testRouter(nil)

	result := r.Ground(context.Background(), "age 18 or older", models.EntityDemographic)

	assert.Equal(t, "not_routable", result.Method)
	assert.Equal(t, "Entity type 'Demographic' not routable", result.Error)
	assert.True(t, result.Codes.Empty())
	assert.False(t, result.NeedsReview)
}

func TestRouter_NoMatchIsNotFailure(t *testing.T) {
	r := testRouter(map[models.TerminologySystem]Client{
		models.SystemUMLS:  &stubClient{},
		models.SystemICD10: &stubClient{},
	})

	result := r.Ground(context.Background(), "zzz unknown term", models.EntityCondition)

	assert.Equal(t, "no_match", result.Method)
	assert.Empty(t, result.Error)
	assert.True(t, result.NeedsReview)
}

func TestRouter_LowConfidenceFlagsReviewButKeepsCodes(t *testing.T) {
	r := testRouter(map[models.TerminologySystem]Client{
		models.SystemRxNorm: &stubClient{candidates: []Candidate{
			{Code: "6809", Display: "metformin", System: models.SystemRxNorm, Confidence: 0.55},
		}},
		models.SystemUMLS: &stubClient{},
	})

	result := r.Ground(context.Background(), "metphormin", models.EntityMedication)

	assert.True(t, result.NeedsReview)
	require.NotNil(t, result.Codes.RxNorm)
	assert.Equal(t, "6809", *result.Codes.RxNorm)
}

func TestRouter_BestCandidatePerSystem(t *testing.T) {
	r := testRouter(map[models.TerminologySystem]Client{
		models.SystemRxNorm: &stubClient{candidates: []Candidate{
			{Code: "1", Display: "weak", Confidence: 0.4},
			{Code: "2", Display: "strong", Confidence: 0.92},
			{Code: "3", Display: "middle", Confidence: 0.7},
		}},
		models.SystemUMLS: &stubClient{},
	})

	result := r.Ground(context.Background(), "ibuprofen", models.EntityMedication)

	require.NotNil(t, result.Codes.RxNorm)
	assert.Equal(t, "2", *result.Codes.RxNorm)
	assert.Equal(t, 0.92, result.Confidence)
	require.NotNil(t, result.Codes.PreferredTerm)
	assert.Equal(t, "strong", *result.Codes.PreferredTerm)
}

func TestRouter_GroundBatchKeepsOrder(t *testing.T) {
	r := testRouter(map[models.TerminologySystem]Client{
		models.SystemRxNorm: &stubClient{candidates: []Candidate{
			{Code: "6809", Display: "metformin", Confidence: 0.9},
		}},
		models.SystemUMLS:  &stubClient{},
		models.SystemICD10: &stubClient{},
	})

	results := r.GroundBatch(context.Background(), []GroundInput{
		{Text: "metformin", EntityType: models.EntityMedication},
		{Text: "age 18+", EntityType: models.EntityDemographic},
		{Text: "unknown", EntityType: models.EntityCondition},
	})

	require.Len(t, results, 3)
	require.NotNil(t, results[0].System)
	assert.Equal(t, models.SystemRxNorm, *results[0].System)
	assert.Equal(t, "not_routable", results[1].Method)
	assert.Equal(t, "no_match", results[2].Method)
}

type crosswalkStub struct {
	stubClient
	snomed       string
	snomedErr    error
	snomedCalls  int
	lastCUIAsked string
}

func (s *crosswalkStub) SNOMEDCode(_ context.Context, cui string) (string, error) {
	s.snomedCalls++
	s.lastCUIAsked = cui
	if s.snomedErr != nil {
		return "", s.snomedErr
	}
	return s.snomed, nil
}

func TestRouter_SNOMEDCrosswalkFillsMissingCode(t *testing.T) {
	umls := &crosswalkStub{
		stubClient: stubClient{candidates: []Candidate{
			{Code: "C0011849", Display: "Diabetes Mellitus", System: models.SystemUMLS, Confidence: 0.95},
		}},
		snomed: "73211009",
	}
	r := testRouter(map[models.TerminologySystem]Client{models.SystemUMLS: umls})

	result := r.Ground(context.Background(), "diabetes mellitus", models.EntityCondition)

	require.NotNil(t, result.Codes.SNOMED)
	assert.Equal(t, "73211009", *result.Codes.SNOMED)
	assert.Equal(t, "C0011849", umls.lastCUIAsked)
}

func TestRouter_CrosswalkFailureKeepsGrounding(t *testing.T) {
	umls := &crosswalkStub{
		stubClient: stubClient{candidates: []Candidate{
			{Code: "C0011849", Display: "Diabetes Mellitus", System: models.SystemUMLS, Confidence: 0.95},
		}},
		snomedErr: &ServiceError{System: "umls/snomed", Status: 503},
	}
	r := testRouter(map[models.TerminologySystem]Client{models.SystemUMLS: umls})

	result := r.Ground(context.Background(), "diabetes mellitus", models.EntityCondition)

	require.NotNil(t, result.Codes.UMLSCUI)
	assert.Nil(t, result.Codes.SNOMED)
	assert.Empty(t, result.Error)
}

func TestClassify_SeverityOrdering(t *testing.T) {
	auth := &ServiceError{System: "umls/snomed", Status: 401}
	unavailable := &ServiceError{System: "icd10", Status: 502}
	rateLimit := &ServiceError{System: "rxnorm", Status: 429}

	assert.Greater(t, Classify(auth), Classify(unavailable))
	assert.Greater(t, Classify(unavailable), Classify(rateLimit))
	assert.Greater(t, Classify(rateLimit), Classify(context.DeadlineExceeded))
}
