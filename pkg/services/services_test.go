package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eligius-health/eligius/ent"
	"github.com/eligius-health/eligius/ent/auditlog"
	"github.com/eligius-health/eligius/ent/criterion"
	"github.com/eligius-health/eligius/ent/outboxevent"
	"github.com/eligius-health/eligius/ent/protocol"
	"github.com/eligius-health/eligius/pkg/config"
	"github.com/eligius-health/eligius/pkg/models"
	"github.com/eligius-health/eligius/pkg/objectstore"
	"github.com/eligius-health/eligius/pkg/outbox"
	"github.com/eligius-health/eligius/pkg/pipeline"
	"github.com/eligius-health/eligius/pkg/terminology"
	testdb "github.com/eligius-health/eligius/test/database"
)

var samplePDF = []byte("%PDF-1.7\nsample protocol body")

type stubExtractor struct {
	criteria []models.ExtractedCriterion
	err      error
	calls    int
}

func (s *stubExtractor) Extract(context.Context, []byte, string) ([]models.ExtractedCriterion, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.criteria, nil
}

// stubGrounder grounds every entity to a deterministic UMLS concept.
type stubGrounder struct{}

func (stubGrounder) GroundBatch(_ context.Context, inputs []terminology.GroundInput) []models.GroundingResult {
	results := make([]models.GroundingResult, len(inputs))
	for i := range inputs {
		cui := "C000" + inputs[i].Text
		preferred := inputs[i].Text
		system := models.SystemUMLS
		results[i] = models.GroundingResult{
			Codes:      models.TerminologyCodes{UMLSCUI: &cui, PreferredTerm: &preferred},
			System:     &system,
			Confidence: 0.95,
			Method:     "exact",
		}
	}
	return results
}

type testEnv struct {
	ent       *ent.Client
	store     *objectstore.MemoryStore
	extractor *stubExtractor
	writer    *BatchWriter
	runner    *PipelineRunner
	protocols *ProtocolService
	reviews   *ReviewService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	client := testdb.NewTestClient(t)
	logger := slog.New(slog.DiscardHandler)

	store := objectstore.NewMemoryStore()
	extractor := &stubExtractor{criteria: sampleCriteria()}

	writer := NewBatchWriter(client.Client, 0.85, logger)
	writer.inheritSync = true

	driver := pipeline.NewDriver([]pipeline.Node{
		pipeline.IngestNode(store, 0),
		pipeline.ExtractNode(extractor, "gemini-test"),
		pipeline.ParseNode(),
		pipeline.GroundNode(stubGrounder{}),
		pipeline.PersistNode(writer),
	}, pipeline.NewEntCheckpointStore(client.Client), logger)
	runner := NewPipelineRunner(client.Client, driver, logger)

	notifier := outbox.NewNotifier(client.DB(), logger)
	retention := &config.RetentionConfig{
		DeadLetterArchiveAfter: 7 * 24 * time.Hour,
		DoneEventTTL:           time.Hour,
		CleanupInterval:        time.Hour,
	}

	return &testEnv{
		ent:       client.Client,
		store:     store,
		extractor: extractor,
		writer:    writer,
		runner:    runner,
		protocols: NewProtocolService(client.Client, store, nil, notifier, retention, logger),
		reviews:   NewReviewService(client.Client, logger),
	}
}

func sampleCriteria() []models.ExtractedCriterion {
	return []models.ExtractedCriterion{
		{
			Text:       "Age >= 18 years at time of consent",
			Kind:       models.KindInclusion,
			Category:   "demographic",
			Confidence: 0.97,
			Page:       4,
			Entities:   []models.ExtractedEntity{{Text: "age"}},
		},
		{
			Text:       "Prior treatment with metformin within 30 days",
			Kind:       models.KindExclusion,
			Category:   "medication",
			Confidence: 0.91,
			Page:       5,
			Entities:   []models.ExtractedEntity{{Text: "metformin", Context: "prior treatment"}},
		},
	}
}

func (e *testEnv) submit(t *testing.T) *ent.Protocol {
	t.Helper()
	result, err := e.protocols.Submit(context.Background(), "NCT01234567 Phase III", samplePDF)
	require.NoError(t, err)
	return result.Protocol
}

func TestSubmit_CreatesProtocolEventAndAudit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.submit(t)
	assert.Equal(t, protocol.StatusUploaded, p.Status)
	assert.Equal(t, "NCT01234567 Phase III", p.Title)

	// The document is durable before the row exists.
	data, contentType, err := env.store.Fetch(ctx, p.FilePointer)
	require.NoError(t, err)
	assert.Equal(t, samplePDF, data)
	assert.Equal(t, "application/pdf", contentType)

	events, err := env.ent.OutboxEvent.Query().
		Where(
			outboxevent.AggregateID(p.ID),
			outboxevent.KindEQ(models.EventProtocolUploaded),
			outboxevent.StatusEQ(outboxevent.StatusPending),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, events)

	audits, err := env.ent.AuditLog.Query().
		Where(auditlog.TargetID(p.ID), auditlog.EventKind(AuditProtocolUploaded)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, audits)
}

func TestSubmit_RejectsEmptyDocument(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.protocols.Submit(context.Background(), "Empty", nil)
	assert.Error(t, err)
}

func TestPipeline_FullRunReachesPendingReview(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.submit(t)
	require.NoError(t, env.runner.Run(ctx, p.ID, false))

	reloaded, err := env.ent.Protocol.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, protocol.StatusPendingReview, reloaded.Status)

	batch, err := env.reviews.ActiveBatch(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "gemini-test", batch.ExtractionModel)
	assert.Equal(t, 2, batch.TotalCount)
	assert.Zero(t, batch.ReviewedCount)
	require.Len(t, batch.Edges.Criteria, 2)

	first := batch.Edges.Criteria[0]
	assert.Equal(t, "Age >= 18 years at time of consent", first.Text)
	assert.Equal(t, models.KindInclusion, first.Kind)
	// The parse node fills entity types from the criterion category.
	require.Len(t, first.Edges.Entities, 1)
	entity := first.Edges.Entities[0]
	assert.Equal(t, models.EntityDemographic, entity.EntityType)
	require.NotNil(t, entity.UmlsCui)
	assert.Equal(t, "C000age", *entity.UmlsCui)
	assert.InDelta(t, 0.95, entity.GroundingConfidence, 1e-9)
}

func TestPipeline_MissingProtocolIsNotAnError(t *testing.T) {
	env := newTestEnv(t)

	assert.NoError(t, env.runner.Run(context.Background(), "no-such-protocol", false))
}

func TestPipeline_ExtractFailureThenRetryResumes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.extractor.err = models.NewCategorizedError(models.ErrorLLMUnavailable, errors.New("model down"))
	p := env.submit(t)

	err := env.runner.Run(ctx, p.ID, false)
	require.Error(t, err)

	failed, err := env.ent.Protocol.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, protocol.StatusExtractionFailed, failed.Status)
	require.NotNil(t, failed.ErrorReason)
	assert.Equal(t, "AI service temporarily unavailable", *failed.ErrorReason)

	retried, err := env.protocols.Retry(ctx, p.ID, "oncall")
	require.NoError(t, err)
	assert.Equal(t, protocol.StatusExtracting, retried.Status)
	assert.Nil(t, retried.ErrorReason)

	// The retry resumes the same thread from the ingest checkpoint, so the
	// second run goes straight back into extraction.
	env.extractor.err = nil
	require.NoError(t, env.runner.Run(ctx, p.ID, false))
	assert.Equal(t, 2, env.extractor.calls)

	done, err := env.ent.Protocol.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, protocol.StatusPendingReview, done.Status)
}

func TestRetry_RequeuesEventWithoutDuplicating(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.extractor.err = models.NewCategorizedError(models.ErrorLLMUnavailable, errors.New("model down"))
	p := env.submit(t)
	require.Error(t, env.runner.Run(ctx, p.ID, false))

	// Mirror the processor's bookkeeping after the failed delivery.
	uploaded, err := env.ent.OutboxEvent.Query().
		Where(outboxevent.AggregateID(p.ID)).
		Only(ctx)
	require.NoError(t, err)
	err = env.ent.OutboxEvent.UpdateOneID(uploaded.ID).
		SetStatus(outboxevent.StatusFailed).
		SetRetryCount(2).
		SetNextAttemptAt(time.Now().Add(time.Minute)).
		SetLastError("llm_unavailable: model down").
		Exec(ctx)
	require.NoError(t, err)

	_, err = env.protocols.Retry(ctx, p.ID, "oncall")
	require.NoError(t, err)

	// The stalled event is re-armed in place: no second row, fresh budget,
	// dispatchable immediately.
	events, err := env.ent.OutboxEvent.Query().
		Where(outboxevent.AggregateID(p.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, uploaded.ID, events[0].ID)
	assert.Equal(t, outboxevent.StatusPending, events[0].Status)
	assert.Zero(t, events[0].RetryCount)
	assert.Nil(t, events[0].LastError)
	assert.False(t, events[0].NextAttemptAt.After(time.Now()))
}

func TestRetry_LeavesInFlightEventAlone(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.submit(t)
	err := env.ent.Protocol.UpdateOneID(p.ID).
		SetStatus(protocol.StatusExtractionFailed).
		Exec(ctx)
	require.NoError(t, err)

	uploaded, err := env.ent.OutboxEvent.Query().
		Where(outboxevent.AggregateID(p.ID)).
		Only(ctx)
	require.NoError(t, err)
	err = env.ent.OutboxEvent.UpdateOneID(uploaded.ID).
		SetStatus(outboxevent.StatusInFlight).
		Exec(ctx)
	require.NoError(t, err)

	_, err = env.protocols.Retry(ctx, p.ID, "oncall")
	require.NoError(t, err)

	events, err := env.ent.OutboxEvent.Query().
		Where(outboxevent.AggregateID(p.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1, "a delivery already in flight must not be duplicated")
	assert.Equal(t, outboxevent.StatusInFlight, events[0].Status)
}

func TestRetry_ConflictsWhileRunning(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.submit(t)
	_, err := env.protocols.Retry(ctx, p.ID, "")
	assert.ErrorIs(t, err, ErrRetryConflict)
}

func TestRetry_RejectedForReviewedProtocol(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.submit(t)
	require.NoError(t, env.runner.Run(ctx, p.ID, false))

	_, err := env.protocols.Retry(ctx, p.ID, "")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestRetry_ClearsStructuredErrorMetadata(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.submit(t)
	err := env.ent.Protocol.UpdateOneID(p.ID).
		SetStatus(protocol.StatusDeadLetter).
		SetErrorReason("AI service temporarily unavailable").
		SetMetadata(map[string]interface{}{
			"error": map[string]interface{}{"category": "llm_unavailable"},
		}).
		Exec(ctx)
	require.NoError(t, err)

	retried, err := env.protocols.Retry(ctx, p.ID, "oncall")
	require.NoError(t, err)
	assert.Equal(t, protocol.StatusExtracting, retried.Status)
	assert.Nil(t, retried.ErrorReason)
	_, hasError := retried.Metadata["error"]
	assert.False(t, hasError)
}

func TestReview_LastDecisionCompletesProtocol(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.submit(t)
	require.NoError(t, env.runner.Run(ctx, p.ID, false))

	batch, err := env.reviews.ActiveBatch(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, batch.Edges.Criteria, 2)

	_, err = env.reviews.RecordDecision(ctx, batch.Edges.Criteria[0].ID, models.DecisionApproved, nil, "dr.smith")
	require.NoError(t, err)

	mid, err := env.ent.Protocol.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, protocol.StatusPendingReview, mid.Status)

	// Re-deciding the same criterion does not double-count it.
	_, err = env.reviews.RecordDecision(ctx, batch.Edges.Criteria[0].ID, models.DecisionRejected, nil, "dr.smith")
	require.NoError(t, err)
	counted, err := env.ent.CriteriaBatch.Get(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, counted.ReviewedCount)

	_, err = env.reviews.RecordDecision(ctx, batch.Edges.Criteria[1].ID, models.DecisionModified,
		map[string]interface{}{"text": "Age >= 21 years"}, "dr.smith")
	require.NoError(t, err)

	done, err := env.ent.Protocol.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, protocol.StatusComplete, done.Status)
}

func TestReview_ModifiedRequiresPayload(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.submit(t)
	require.NoError(t, env.runner.Run(ctx, p.ID, false))
	batch, err := env.reviews.ActiveBatch(ctx, p.ID)
	require.NoError(t, err)

	_, err = env.reviews.RecordDecision(ctx, batch.Edges.Criteria[0].ID, models.DecisionModified, nil, "")
	assert.ErrorIs(t, err, ErrInvalidDecision)
}

func TestReExtract_SupersedesBatchAndInheritsDecisions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.submit(t)
	require.NoError(t, env.runner.Run(ctx, p.ID, false))

	oldBatch, err := env.reviews.ActiveBatch(ctx, p.ID)
	require.NoError(t, err)
	_, err = env.reviews.RecordDecision(ctx, oldBatch.Edges.Criteria[0].ID, models.DecisionApproved, nil, "dr.smith")
	require.NoError(t, err)

	require.NoError(t, env.protocols.ReExtract(ctx, p.ID, "dr.smith"))

	// Second extraction keeps the age criterion verbatim and rewords the
	// other, so only the first inherits.
	env.extractor.criteria = []models.ExtractedCriterion{
		sampleCriteria()[0],
		{
			Text:       "Subjects must not have received metformin in the last month",
			Kind:       models.KindExclusion,
			Category:   "medication",
			Confidence: 0.9,
			Page:       5,
			Entities:   []models.ExtractedEntity{{Text: "metformin"}},
		},
	}
	require.NoError(t, env.runner.Run(ctx, p.ID, true))

	superseded, err := env.ent.CriteriaBatch.Get(ctx, oldBatch.ID)
	require.NoError(t, err)
	assert.True(t, superseded.IsArchived)

	fresh, err := env.reviews.ActiveBatch(ctx, p.ID)
	require.NoError(t, err)
	assert.NotEqual(t, oldBatch.ID, fresh.ID)
	assert.Equal(t, 1, fresh.ReviewedCount)

	inherited, err := env.ent.Criterion.Query().
		Where(
			criterion.BatchID(fresh.ID),
			criterion.ReviewDecisionNotNil(),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Age >= 18 years at time of consent", inherited.Text)
	assert.Equal(t, models.DecisionApproved, *inherited.ReviewDecision)

	audits, err := env.ent.AuditLog.Query().
		Where(auditlog.EventKind(AuditDecisionInherited), auditlog.TargetID(inherited.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, audits)

	// Superseded batches are read-only.
	_, err = env.reviews.RecordDecision(ctx, oldBatch.Edges.Criteria[1].ID, models.DecisionApproved, nil, "dr.smith")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestReExtract_RejectedBeforeFirstExtraction(t *testing.T) {
	env := newTestEnv(t)

	p := env.submit(t)
	err := env.protocols.ReExtract(context.Background(), p.ID, "")
	assert.ErrorIs(t, err, ErrRetryConflict)
}

func TestArchive_IdempotentAndPrunesOncePerArchival(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.submit(t)
	archived, err := env.protocols.Archive(ctx, p.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, protocol.StatusArchived, archived.Status)

	again, err := env.protocols.Archive(ctx, p.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, protocol.StatusArchived, again.Status)

	events, err := env.ent.OutboxEvent.Query().
		Where(
			outboxevent.AggregateID(p.ID),
			outboxevent.KindEQ(models.EventProtocolArchived),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, events)
}

func TestGet_LazilyArchivesExpiredDeadLetter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.submit(t)
	err := env.ent.Protocol.UpdateOneID(p.ID).
		SetStatus(protocol.StatusDeadLetter).
		SetUpdatedAt(time.Now().Add(-8 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	got, err := env.protocols.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, protocol.StatusArchived, got.Status)

	audits, err := env.ent.AuditLog.Query().
		Where(
			auditlog.TargetID(p.ID),
			auditlog.EventKind(AuditProtocolArchived),
			auditlog.Actor("retention"),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, audits)
}

func TestGet_KeepsRecentDeadLetter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.submit(t)
	err := env.ent.Protocol.UpdateOneID(p.ID).
		SetStatus(protocol.StatusDeadLetter).
		Exec(ctx)
	require.NoError(t, err)

	got, err := env.protocols.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, protocol.StatusDeadLetter, got.Status)
}

func TestList_ExcludesArchivedByDefault(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	active := env.submit(t)
	hidden := env.submit(t)
	_, err := env.protocols.Archive(ctx, hidden.ID, "admin")
	require.NoError(t, err)

	listed, err := env.protocols.List(ctx, ListFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, active.ID, listed[0].ID)

	status := protocol.StatusArchived
	archivedOnly, err := env.protocols.List(ctx, ListFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, archivedOnly, 1)
	assert.Equal(t, hidden.ID, archivedOnly[0].ID)
}

func TestActiveBatch_ErrorsBySource(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.reviews.ActiveBatch(ctx, "missing")
	assert.ErrorIs(t, err, ErrProtocolNotFound)

	p := env.submit(t)
	_, err = env.reviews.ActiveBatch(ctx, p.ID)
	assert.ErrorIs(t, err, ErrBatchNotFound)
}

func TestDownloadURL_SignsStoredDocument(t *testing.T) {
	env := newTestEnv(t)

	p := env.submit(t)
	url, err := env.protocols.DownloadURL(context.Background(), p.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, url)

	_, err = env.protocols.DownloadURL(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProtocolNotFound)
}

var _ pipeline.Grounder = stubGrounder{}
