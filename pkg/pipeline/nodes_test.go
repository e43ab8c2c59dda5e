package pipeline

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eligius-health/eligius/pkg/models"
	"github.com/eligius-health/eligius/pkg/objectstore"
	"github.com/eligius-health/eligius/pkg/terminology"
)

func pdfBytes(size int) []byte {
	data := append([]byte("%PDF-1.7\n"), bytes.Repeat([]byte("x"), size)...)
	return data
}

func TestIngestNode_AcceptsValidPDF(t *testing.T) {
	store := objectstore.NewMemoryStore()
	pointer, err := store.Put(context.Background(), "p1.pdf", pdfBytes(100), "application/pdf")
	require.NoError(t, err)

	state := State{ProtocolID: "p1", FilePointer: pointer}
	IngestNode(store, 0).Run(context.Background(), &state)

	require.Nil(t, state.Error)
	assert.True(t, bytes.HasPrefix(state.PDF, []byte("%PDF-")))
}

func TestIngestNode_RejectsOversizedDocument(t *testing.T) {
	store := objectstore.NewMemoryStore()
	pointer, _ := store.Put(context.Background(), "big.pdf", pdfBytes(2048), "application/pdf")

	state := State{FilePointer: pointer}
	IngestNode(store, 1024).Run(context.Background(), &state)

	require.NotNil(t, state.Error)
	assert.Equal(t, models.ErrorPDFQuality, state.Error.Category)
}

func TestIngestNode_RejectsWrongContentType(t *testing.T) {
	store := objectstore.NewMemoryStore()
	pointer, _ := store.Put(context.Background(), "doc.docx", pdfBytes(10), "application/msword")

	state := State{FilePointer: pointer}
	IngestNode(store, 0).Run(context.Background(), &state)

	require.NotNil(t, state.Error)
	assert.Equal(t, models.ErrorPDFQuality, state.Error.Category)
}

func TestIngestNode_RejectsNonPDFBytes(t *testing.T) {
	store := objectstore.NewMemoryStore()
	pointer, _ := store.Put(context.Background(), "fake.pdf", []byte("hello"), "application/pdf")

	state := State{FilePointer: pointer}
	IngestNode(store, 0).Run(context.Background(), &state)

	require.NotNil(t, state.Error)
	assert.Equal(t, models.ErrorPDFQuality, state.Error.Category)
}

func TestIngestNode_MissingObjectIsStorageError(t *testing.T) {
	state := State{FilePointer: "mem://nope"}
	IngestNode(objectstore.NewMemoryStore(), 0).Run(context.Background(), &state)

	require.NotNil(t, state.Error)
	assert.Equal(t, models.ErrorStorage, state.Error.Category)
}

type stubExtractor struct {
	criteria []models.ExtractedCriterion
	err      error
	gotPDF   []byte
}

func (s *stubExtractor) Extract(_ context.Context, pdf []byte, _ string) ([]models.ExtractedCriterion, error) {
	s.gotPDF = pdf
	return s.criteria, s.err
}

func TestExtractNode_ClearsPDFBeforeCheckpoint(t *testing.T) {
	extractor := &stubExtractor{criteria: []models.ExtractedCriterion{{Text: "Age >= 18", Kind: models.KindInclusion}}}

	state := State{PDF: pdfBytes(10)}
	ExtractNode(extractor, "gemini-2.5-flash").Run(context.Background(), &state)

	require.Nil(t, state.Error)
	assert.Nil(t, state.PDF)
	assert.Equal(t, "gemini-2.5-flash", state.ExtractionModel)
	require.Len(t, state.Criteria, 1)
}

func TestExtractNode_FailureKeepsCategoryAndClearsPDF(t *testing.T) {
	extractor := &stubExtractor{err: models.NewCategorizedError(models.ErrorBreakerOpen, assert.AnError)}

	state := State{PDF: pdfBytes(10)}
	ExtractNode(extractor, "gemini-2.5-flash").Run(context.Background(), &state)

	require.NotNil(t, state.Error)
	assert.Equal(t, models.ErrorBreakerOpen, state.Error.Category)
	assert.Nil(t, state.PDF)
}

func TestParseNode_DerivesEntityTypesAndDefaults(t *testing.T) {
	state := State{Criteria: []models.ExtractedCriterion{
		{
			Text:     "On metformin",
			Kind:     models.KindInclusion,
			Category: "medication",
			Entities: []models.ExtractedEntity{
				{Text: "metformin"},
				{Text: ""},
				{Text: "insulin", Type: models.EntityMedication},
			},
		},
		{
			Text:     "History of something unusual",
			Kind:     models.KindExclusion,
			Category: "astrology",
			Entities: []models.ExtractedEntity{{Text: "something unusual"}},
		},
	}}

	ParseNode().Run(context.Background(), &state)

	require.Nil(t, state.Error)
	first := state.Criteria[0]
	require.Len(t, first.Entities, 2)
	assert.Equal(t, models.EntityMedication, first.Entities[0].Type)
	assert.Equal(t, models.AssertionPresent, first.AssertionStatus)

	// Unknown category falls back to Condition.
	second := state.Criteria[1]
	assert.Equal(t, models.EntityCondition, second.Entities[0].Type)
}

type stubGrounder struct {
	results []models.GroundingResult
	inputs  []terminology.GroundInput
}

func (s *stubGrounder) GroundBatch(_ context.Context, inputs []terminology.GroundInput) []models.GroundingResult {
	s.inputs = inputs
	return s.results
}

func TestGroundNode_AlignsResultsWithEntities(t *testing.T) {
	system := models.SystemRxNorm
	grounder := &stubGrounder{results: []models.GroundingResult{
		{System: &system, Confidence: 0.9},
		{Error: "entity type not routable", Method: "not_routable"},
		{Method: "no_match", NeedsReview: true},
	}}

	state := State{Criteria: []models.ExtractedCriterion{
		{Text: "c1", Entities: []models.ExtractedEntity{
			{Text: "metformin", Type: models.EntityMedication},
			{Text: "age 18", Type: models.EntityDemographic},
		}},
		{Text: "c2", Entities: []models.ExtractedEntity{
			{Text: "mystery", Type: models.EntityCondition},
		}},
	}}

	GroundNode(grounder).Run(context.Background(), &state)

	require.Nil(t, state.Error)
	require.Len(t, grounder.inputs, 3)
	require.Len(t, state.Groundings, 2)
	require.Len(t, state.Groundings[0], 2)
	require.Len(t, state.Groundings[1], 1)
	assert.Equal(t, 0.9, state.Groundings[0][0].Confidence)
	assert.Equal(t, "no_match", state.Groundings[1][0].Method)
}

func TestGroundNode_AllEntitiesFailedStillSucceeds(t *testing.T) {
	grounder := &stubGrounder{results: []models.GroundingResult{
		{Error: "umls/snomed: status 503", NeedsReview: true},
	}}
	state := State{Criteria: []models.ExtractedCriterion{
		{Text: "c1", Entities: []models.ExtractedEntity{{Text: "x", Type: models.EntityCondition}}},
	}}

	GroundNode(grounder).Run(context.Background(), &state)

	assert.Nil(t, state.Error)
	assert.NotEmpty(t, state.Groundings[0][0].Error)
}

type stubPersister struct {
	batchID string
	err     error
}

func (s *stubPersister) PersistBatch(context.Context, *State) (string, error) {
	return s.batchID, s.err
}

func TestPersistNode_SetsBatchID(t *testing.T) {
	state := State{}
	PersistNode(&stubPersister{batchID: "batch-1"}).Run(context.Background(), &state)

	require.Nil(t, state.Error)
	assert.Equal(t, "batch-1", state.BatchID)
}

func TestPersistNode_FailureIsRecorded(t *testing.T) {
	state := State{}
	PersistNode(&stubPersister{err: assert.AnError}).Run(context.Background(), &state)

	require.NotNil(t, state.Error)
	assert.Equal(t, models.ErrorPipelineFailed, state.Error.Category)
}
