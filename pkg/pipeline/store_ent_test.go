package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eligius-health/eligius/pkg/models"
	testdb "github.com/eligius-health/eligius/test/database"
)

func newEntStore(t *testing.T) *EntCheckpointStore {
	t.Helper()
	client := testdb.NewTestClient(t)
	return NewEntCheckpointStore(client.Client)
}

func saveStep(t *testing.T, store *EntCheckpointStore, threadID string, step int, node string) {
	t.Helper()
	err := store.Save(context.Background(), Checkpoint{
		ThreadID: threadID,
		Step:     step,
		Node:     node,
		State:    []byte(fmt.Sprintf(`{"protocol_id":"p1","step":%d}`, step)),
	})
	require.NoError(t, err)
}

func TestEntCheckpointStore_LatestReturnsHighestStep(t *testing.T) {
	store := newEntStore(t)
	ctx := context.Background()

	saveStep(t, store, "p1:t1", 1, NodeIngest)
	saveStep(t, store, "p1:t1", 2, NodeExtract)
	saveStep(t, store, "p1:t1", 3, NodeParse)

	cp, err := store.Latest(ctx, "p1:t1")
	require.NoError(t, err)
	assert.Equal(t, 3, cp.Step)
	assert.Equal(t, NodeParse, cp.Node)
	assert.JSONEq(t, `{"protocol_id":"p1","step":3}`, string(cp.State))
}

func TestEntCheckpointStore_EmptyThread(t *testing.T) {
	store := newEntStore(t)

	_, err := store.Latest(context.Background(), "p1:missing")
	assert.ErrorIs(t, err, ErrNoCheckpoint)
}

func TestEntCheckpointStore_ThreadsAreIsolated(t *testing.T) {
	store := newEntStore(t)
	ctx := context.Background()

	saveStep(t, store, "p1:t1", 1, NodeIngest)
	saveStep(t, store, "p1:t2", 2, NodeExtract)

	cp, err := store.Latest(ctx, "p1:t1")
	require.NoError(t, err)
	assert.Equal(t, 1, cp.Step)
}

func TestEntCheckpointStore_DuplicateStepRejected(t *testing.T) {
	store := newEntStore(t)

	saveStep(t, store, "p1:t1", 1, NodeIngest)
	err := store.Save(context.Background(), Checkpoint{
		ThreadID: "p1:t1",
		Step:     1,
		Node:     NodeIngest,
		State:    []byte(`{}`),
	})
	assert.Error(t, err, "the unique (thread_id, step) index must reject replays")
}

func TestEntCheckpointStore_DeleteThread(t *testing.T) {
	store := newEntStore(t)
	ctx := context.Background()

	saveStep(t, store, "p1:t1", 1, NodeIngest)
	saveStep(t, store, "p1:t1", 2, NodeExtract)
	saveStep(t, store, "p1:t2", 1, NodeIngest)

	require.NoError(t, store.DeleteThread(ctx, "p1:t1"))

	_, err := store.Latest(ctx, "p1:t1")
	assert.ErrorIs(t, err, ErrNoCheckpoint)

	cp, err := store.Latest(ctx, "p1:t2")
	require.NoError(t, err)
	assert.Equal(t, 1, cp.Step)
}

func TestEntCheckpointStore_DeleteProtocolThreads(t *testing.T) {
	store := newEntStore(t)
	ctx := context.Background()

	saveStep(t, store, "p1:t1", 1, NodeIngest)
	saveStep(t, store, "p1:t2", 1, NodeIngest)
	saveStep(t, store, "p2:t1", 1, NodeIngest)

	n, err := store.DeleteProtocolThreads(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = store.Latest(ctx, "p1:t1")
	assert.ErrorIs(t, err, ErrNoCheckpoint)
	_, err = store.Latest(ctx, "p1:t2")
	assert.ErrorIs(t, err, ErrNoCheckpoint)

	cp, err := store.Latest(ctx, "p2:t1")
	require.NoError(t, err)
	assert.Equal(t, 1, cp.Step)
}

func TestEntCheckpointStore_PrefixMatchIsExact(t *testing.T) {
	store := newEntStore(t)
	ctx := context.Background()

	// "p1" must not match threads of protocol "p10".
	saveStep(t, store, "p10:t1", 1, NodeIngest)

	n, err := store.DeleteProtocolThreads(ctx, "p1")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = store.Latest(ctx, "p10:t1")
	require.NoError(t, err)
}

func TestProtocolIDFromThread(t *testing.T) {
	assert.Equal(t, "p1", ProtocolIDFromThread("p1:abc-def"))
	assert.Equal(t, "bare", ProtocolIDFromThread("bare"))
}

func TestEntCheckpointStore_DriverRoundTrip(t *testing.T) {
	store := newEntStore(t)
	ctx := context.Background()

	ran := []string{}
	failExtract := true
	nodes := []Node{
		{Name: NodeIngest, Run: func(_ context.Context, state *State) {
			ran = append(ran, NodeIngest)
			state.PDF = []byte("pdf bytes")
		}},
		{Name: NodeExtract, Run: func(_ context.Context, state *State) {
			ran = append(ran, NodeExtract)
			if failExtract {
				state.Fail(models.ErrorLLMUnavailable, "model down")
			}
		}},
	}
	driver := NewDriver(nodes, store, nil)

	_, err := driver.Invoke(ctx, State{ProtocolID: "p1"}, "p1:t1")
	require.Error(t, err)

	// Only the ingest step committed; resume re-runs extract.
	cp, latestErr := store.Latest(ctx, "p1:t1")
	require.NoError(t, latestErr)
	assert.Equal(t, NodeIngest, cp.Node)

	failExtract = false
	state, err := driver.Resume(ctx, "p1:t1")
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf bytes"), state.PDF)
	assert.Equal(t, []string{NodeIngest, NodeExtract, NodeExtract}, ran)
}
