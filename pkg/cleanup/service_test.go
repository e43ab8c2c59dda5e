package cleanup

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eligius-health/eligius/ent/checkpoint"
	"github.com/eligius-health/eligius/ent/outboxevent"
	"github.com/eligius-health/eligius/ent/protocol"
	"github.com/eligius-health/eligius/pkg/config"
	"github.com/eligius-health/eligius/pkg/database"
	"github.com/eligius-health/eligius/pkg/models"
	"github.com/eligius-health/eligius/pkg/objectstore"
	"github.com/eligius-health/eligius/pkg/outbox"
	"github.com/eligius-health/eligius/pkg/pipeline"
	"github.com/eligius-health/eligius/pkg/services"
	testdb "github.com/eligius-health/eligius/test/database"
)

func setupService(t *testing.T) (*database.Client, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)
	logger := slog.New(slog.DiscardHandler)

	cfg := &config.RetentionConfig{
		DeadLetterArchiveAfter: 7 * 24 * time.Hour,
		DoneEventTTL:           1 * time.Hour,
		CleanupInterval:        1 * time.Hour,
	}
	protocols := services.NewProtocolService(
		client.Client,
		objectstore.NewMemoryStore(),
		nil,
		outbox.NewNotifier(client.DB(), logger),
		cfg,
		logger,
	)
	pruner := pipeline.NewEntCheckpointStore(client.Client)
	return client, NewService(cfg, client.Client, protocols, pruner)
}

func createProtocol(t *testing.T, client *database.Client, status protocol.Status, updatedAt time.Time) string {
	t.Helper()
	id := uuid.NewString()
	err := client.Protocol.Create().
		SetID(id).
		SetTitle("test protocol").
		SetFilePointer("mem://" + id + ".pdf").
		SetStatus(status).
		SetUpdatedAt(updatedAt).
		Exec(context.Background())
	require.NoError(t, err)
	return id
}

func TestService_ArchivesExpiredDeadLetters(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	id := createProtocol(t, client, protocol.StatusDeadLetter, time.Now().Add(-8*24*time.Hour))

	svc.runAll(ctx)

	updated, err := client.Protocol.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, protocol.StatusArchived, updated.Status)
}

func TestService_PreservesRecentDeadLetters(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	id := createProtocol(t, client, protocol.StatusDeadLetter, time.Now().Add(-1*time.Hour))

	svc.runAll(ctx)

	updated, err := client.Protocol.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, protocol.StatusDeadLetter, updated.Status)
}

func TestService_PrunesCheckpointsOfArchivedProtocols(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	archived := createProtocol(t, client, protocol.StatusArchived, time.Now())
	active := createProtocol(t, client, protocol.StatusPendingReview, time.Now())

	for i, protocolID := range []string{archived, active} {
		err := client.Checkpoint.Create().
			SetThreadID(protocolID + ":thread-1").
			SetStep(i + 1).
			SetNode("ingest").
			SetState([]byte(`{}`)).
			Exec(ctx)
		require.NoError(t, err)
	}

	svc.runAll(ctx)

	gone, err := client.Checkpoint.Query().
		Where(checkpoint.ThreadIDHasPrefix(archived + ":")).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, gone)

	kept, err := client.Checkpoint.Query().
		Where(checkpoint.ThreadIDHasPrefix(active + ":")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, kept)
}

func TestService_PurgesOldDoneEvents(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	// Old delivered event (2 hours past a 1 hour TTL)
	err := client.OutboxEvent.Create().
		SetID(uuid.NewString()).
		SetAggregateID("p1").
		SetKind(models.EventProtocolUploaded).
		SetPayload(map[string]interface{}{"protocol_id": "p1"}).
		SetStatus(outboxevent.StatusDone).
		SetUpdatedAt(time.Now().Add(-2 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	// Recent delivered event
	err = client.OutboxEvent.Create().
		SetID(uuid.NewString()).
		SetAggregateID("p2").
		SetKind(models.EventProtocolUploaded).
		SetPayload(map[string]interface{}{"protocol_id": "p2"}).
		SetStatus(outboxevent.StatusDone).
		Exec(ctx)
	require.NoError(t, err)

	// Old but still pending: never purged
	err = client.OutboxEvent.Create().
		SetID(uuid.NewString()).
		SetAggregateID("p3").
		SetKind(models.EventProtocolUploaded).
		SetPayload(map[string]interface{}{"protocol_id": "p3"}).
		SetUpdatedAt(time.Now().Add(-2 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	remaining, err := client.OutboxEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, remaining, "old done event should be deleted, others preserved")
}
