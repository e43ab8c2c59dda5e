package outbox

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eligius-health/eligius/ent"
	"github.com/eligius-health/eligius/ent/auditlog"
	"github.com/eligius-health/eligius/ent/outboxevent"
	"github.com/eligius-health/eligius/ent/protocol"
	"github.com/eligius-health/eligius/pkg/config"
	"github.com/eligius-health/eligius/pkg/models"
	testdb "github.com/eligius-health/eligius/test/database"
)

func testOutboxConfig() *config.OutboxConfig {
	return &config.OutboxConfig{
		WorkerCount:             1,
		BatchSize:               10,
		MaxInFlight:             2,
		PollInterval:            10 * time.Millisecond,
		PollIntervalJitter:      0,
		MaxRetries:              3,
		RetryBackoffBase:        50 * time.Millisecond,
		RetryBackoffCap:         time.Second,
		GracefulShutdownTimeout: 2 * time.Second,
		ClaimLease:              time.Minute,
		OrphanScanInterval:      0, // recovery driven explicitly in tests
	}
}

func newTestProcessor(t *testing.T, cfg *config.OutboxConfig) (*ent.Client, *Processor) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client.Client, NewProcessor(client.Client, cfg, slog.New(slog.DiscardHandler))
}

func enqueueEvent(t *testing.T, client *ent.Client, kind models.EventKind, protocolID string) string {
	t.Helper()
	ctx := context.Background()
	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	event, err := Enqueue(ctx, tx, kind, models.ProtocolEventPayload{ProtocolID: protocolID})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	return event.ID
}

func createProtocol(t *testing.T, client *ent.Client, status protocol.Status) string {
	t.Helper()
	id := uuid.NewString()
	err := client.Protocol.Create().
		SetID(id).
		SetTitle("test protocol").
		SetFilePointer("mem://" + id + ".pdf").
		SetStatus(status).
		Exec(context.Background())
	require.NoError(t, err)
	return id
}

func TestProcessor_DeliversPendingEvent(t *testing.T) {
	client, p := newTestProcessor(t, testOutboxConfig())
	ctx := context.Background()

	calls := 0
	p.RegisterHandler(models.EventProtocolUploaded, func(_ context.Context, event *ent.OutboxEvent) error {
		calls++
		payload, err := models.DecodeProtocolEventPayload(event.Payload)
		require.NoError(t, err)
		assert.Equal(t, "p1", payload.ProtocolID)
		return nil
	})

	eventID := enqueueEvent(t, client, models.EventProtocolUploaded, "p1")
	p.drain(ctx, 0)

	assert.Equal(t, 1, calls)
	event, err := client.OutboxEvent.Get(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, outboxevent.StatusDone, event.Status)
	assert.Nil(t, event.LastError)
}

func TestProcessor_RetriesFailedEventWithBackoff(t *testing.T) {
	client, p := newTestProcessor(t, testOutboxConfig())
	ctx := context.Background()

	fail := true
	p.RegisterHandler(models.EventProtocolUploaded, func(context.Context, *ent.OutboxEvent) error {
		if fail {
			return models.NewCategorizedError(models.ErrorLLMUnavailable, errors.New("model down"))
		}
		return nil
	})

	eventID := enqueueEvent(t, client, models.EventProtocolUploaded, "p1")
	p.drain(ctx, 0)

	event, err := client.OutboxEvent.Get(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, outboxevent.StatusFailed, event.Status)
	assert.Equal(t, 1, event.RetryCount)
	require.NotNil(t, event.LastError)
	assert.Contains(t, *event.LastError, "llm_unavailable")

	// Not dispatchable until the backoff elapses.
	p.drain(ctx, 0)
	event, err = client.OutboxEvent.Get(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, 1, event.RetryCount)

	// The failure cleared; fast-forward the backoff and redeliver.
	fail = false
	err = client.OutboxEvent.UpdateOneID(eventID).
		SetNextAttemptAt(time.Now().Add(-time.Second)).
		Exec(ctx)
	require.NoError(t, err)

	p.drain(ctx, 0)
	event, err = client.OutboxEvent.Get(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, outboxevent.StatusDone, event.Status)
	assert.Nil(t, event.LastError)
}

func TestProcessor_NonRetryableFailureSkipsBackoffDelay(t *testing.T) {
	client, p := newTestProcessor(t, testOutboxConfig())
	ctx := context.Background()

	p.RegisterHandler(models.EventProtocolUploaded, func(context.Context, *ent.OutboxEvent) error {
		return models.NewCategorizedError(models.ErrorPDFQuality, errors.New("garbled scan"))
	})

	eventID := enqueueEvent(t, client, models.EventProtocolUploaded, "p1")
	p.drain(ctx, 0)

	event, err := client.OutboxEvent.Get(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, outboxevent.StatusFailed, event.Status)
	// Permanent failures still burn retry budget, but without waiting.
	assert.WithinDuration(t, time.Now(), event.NextAttemptAt, 2*time.Second)
}

func TestProcessor_DeadLettersEventAndProtocol(t *testing.T) {
	cfg := testOutboxConfig()
	cfg.MaxRetries = 1
	client, p := newTestProcessor(t, cfg)
	ctx := context.Background()

	protocolID := createProtocol(t, client, protocol.StatusExtracting)
	p.RegisterHandler(models.EventProtocolUploaded, func(context.Context, *ent.OutboxEvent) error {
		return models.NewCategorizedError(models.ErrorLLMUnavailable, errors.New("model down"))
	})

	eventID := enqueueEvent(t, client, models.EventProtocolUploaded, protocolID)
	p.drain(ctx, 0)

	event, err := client.OutboxEvent.Get(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, outboxevent.StatusDeadLetter, event.Status)
	assert.Equal(t, 1, event.RetryCount)

	proto, err := client.Protocol.Get(ctx, protocolID)
	require.NoError(t, err)
	assert.Equal(t, protocol.StatusDeadLetter, proto.Status)
	require.NotNil(t, proto.ErrorReason)
	assert.Equal(t, "AI service temporarily unavailable", *proto.ErrorReason)

	errMeta, ok := proto.Metadata["error"].(map[string]interface{})
	require.True(t, ok, "structured error metadata should be set")
	assert.Equal(t, "llm_unavailable", errMeta["category"])

	audits, err := client.AuditLog.Query().
		Where(
			auditlog.TargetKind("protocol"),
			auditlog.TargetID(protocolID),
			auditlog.EventKind("PROTOCOL_DEAD_LETTER"),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, audits)
}

func TestProcessor_MissingHandlerDeadLettersAsToolMissing(t *testing.T) {
	cfg := testOutboxConfig()
	cfg.MaxRetries = 1
	client, p := newTestProcessor(t, cfg)
	ctx := context.Background()

	protocolID := createProtocol(t, client, protocol.StatusExtracting)
	eventID := enqueueEvent(t, client, models.EventProtocolUploaded, protocolID)

	p.drain(ctx, 0)

	event, err := client.OutboxEvent.Get(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, outboxevent.StatusDeadLetter, event.Status)

	proto, err := client.Protocol.Get(ctx, protocolID)
	require.NoError(t, err)
	require.NotNil(t, proto.ErrorReason)
	assert.Equal(t, "UMLS grounding service unavailable", *proto.ErrorReason)
}

func TestProcessor_RespectsNextAttemptAt(t *testing.T) {
	client, p := newTestProcessor(t, testOutboxConfig())
	ctx := context.Background()

	calls := 0
	p.RegisterHandler(models.EventProtocolUploaded, func(context.Context, *ent.OutboxEvent) error {
		calls++
		return nil
	})

	eventID := enqueueEvent(t, client, models.EventProtocolUploaded, "p1")
	err := client.OutboxEvent.UpdateOneID(eventID).
		SetNextAttemptAt(time.Now().Add(time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	p.drain(ctx, 0)
	assert.Zero(t, calls)
}

func TestProcessor_ClaimIsExclusiveAcrossProcessors(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	clientA := shared.NewClient(t)
	clientB := shared.NewClient(t)
	ctx := context.Background()

	cfg := testOutboxConfig()
	pA := NewProcessor(clientA.Client, cfg, slog.New(slog.DiscardHandler))
	pB := NewProcessor(clientB.Client, cfg, slog.New(slog.DiscardHandler))

	total := 0
	handler := func(context.Context, *ent.OutboxEvent) error {
		total++
		return nil
	}
	pA.RegisterHandler(models.EventProtocolUploaded, handler)
	pB.RegisterHandler(models.EventProtocolUploaded, handler)

	for i := 0; i < 5; i++ {
		enqueueEvent(t, clientA.Client, models.EventProtocolUploaded, "p1")
	}

	pA.drain(ctx, 0)
	pB.drain(ctx, 0)

	// Each event is delivered exactly once despite two claimants.
	assert.Equal(t, 5, total)
	done, err := clientA.OutboxEvent.Query().
		Where(outboxevent.StatusEQ(outboxevent.StatusDone)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, done)
}

func TestProcessor_RecoversOrphanedClaim(t *testing.T) {
	client, p := newTestProcessor(t, testOutboxConfig())
	ctx := context.Background()

	delivered := 0
	p.RegisterHandler(models.EventProtocolUploaded, func(context.Context, *ent.OutboxEvent) error {
		delivered++
		return nil
	})

	// Simulate a worker that died after claim-commit: the event sits
	// in_flight with a stale claim.
	eventID := enqueueEvent(t, client, models.EventProtocolUploaded, "p1")
	err := client.OutboxEvent.UpdateOneID(eventID).
		SetStatus(outboxevent.StatusInFlight).
		SetUpdatedAt(time.Now().Add(-2 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	// Undispatchable until recovered: the poll predicate skips in_flight.
	p.drain(ctx, 0)
	assert.Zero(t, delivered)

	require.NoError(t, p.recoverOrphans(ctx))

	event, err := client.OutboxEvent.Get(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, outboxevent.StatusFailed, event.Status)
	assert.Equal(t, 1, event.RetryCount, "a lost claim consumes a delivery attempt")
	require.NotNil(t, event.LastError)
	assert.Contains(t, *event.LastError, "orphaned")

	p.drain(ctx, 0)
	assert.Equal(t, 1, delivered)
	event, err = client.OutboxEvent.Get(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, outboxevent.StatusDone, event.Status)
}

func TestProcessor_FreshClaimNotRecovered(t *testing.T) {
	client, p := newTestProcessor(t, testOutboxConfig())
	ctx := context.Background()

	eventID := enqueueEvent(t, client, models.EventProtocolUploaded, "p1")
	err := client.OutboxEvent.UpdateOneID(eventID).
		SetStatus(outboxevent.StatusInFlight).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, p.recoverOrphans(ctx))

	event, err := client.OutboxEvent.Get(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, outboxevent.StatusInFlight, event.Status, "a live claim keeps its lease")
}

func TestProcessor_OrphanedClaimAtRetryCapDeadLetters(t *testing.T) {
	cfg := testOutboxConfig()
	cfg.MaxRetries = 2
	client, p := newTestProcessor(t, cfg)
	ctx := context.Background()

	protocolID := createProtocol(t, client, protocol.StatusExtracting)
	eventID := enqueueEvent(t, client, models.EventProtocolUploaded, protocolID)
	err := client.OutboxEvent.UpdateOneID(eventID).
		SetStatus(outboxevent.StatusInFlight).
		SetRetryCount(1).
		SetUpdatedAt(time.Now().Add(-2 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, p.recoverOrphans(ctx))

	event, err := client.OutboxEvent.Get(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, outboxevent.StatusDeadLetter, event.Status)

	proto, err := client.Protocol.Get(ctx, protocolID)
	require.NoError(t, err)
	assert.Equal(t, protocol.StatusDeadLetter, proto.Status)
	require.NotNil(t, proto.ErrorReason)
	assert.Equal(t, "Maximum retries exceeded", *proto.ErrorReason)
}

func TestProcessor_WakeTriggersImmediatePoll(t *testing.T) {
	client, p := newTestProcessor(t, &config.OutboxConfig{
		WorkerCount:             1,
		BatchSize:               10,
		MaxInFlight:             2,
		PollInterval:            time.Hour, // only wakeups can trigger a poll
		MaxRetries:              3,
		RetryBackoffBase:        time.Millisecond,
		RetryBackoffCap:         time.Second,
		GracefulShutdownTimeout: 2 * time.Second,
	})
	ctx := context.Background()

	handled := make(chan struct{}, 1)
	p.RegisterHandler(models.EventProtocolUploaded, func(context.Context, *ent.OutboxEvent) error {
		handled <- struct{}{}
		return nil
	})

	enqueueEvent(t, client, models.EventProtocolUploaded, "p1")

	require.NoError(t, p.Start(ctx))
	defer p.Stop()
	p.Wake()

	select {
	case <-handled:
	case <-time.After(5 * time.Second):
		t.Fatal("wakeup did not trigger delivery")
	}
}
