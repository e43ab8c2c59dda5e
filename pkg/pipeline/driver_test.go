package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eligius-health/eligius/pkg/models"
)

func recordingNode(name string, log *[]string, fail bool) Node {
	return Node{
		Name: name,
		Run: func(_ context.Context, state *State) {
			*log = append(*log, name)
			if fail {
				state.Fail(models.ErrorPipelineFailed, "%s blew up", name)
			}
		},
	}
}

func TestDriver_RunsNodesInOrderAndCheckpointsEach(t *testing.T) {
	store := NewMemoryCheckpointStore()
	var log []string
	d := NewDriver([]Node{
		recordingNode("a", &log, false),
		recordingNode("b", &log, false),
		recordingNode("c", &log, false),
	}, store, nil)

	state, err := d.Invoke(context.Background(), State{ProtocolID: "p1"}, "p1:t1")
	require.NoError(t, err)
	assert.Nil(t, state.Error)
	assert.Equal(t, []string{"a", "b", "c"}, log)
	assert.Equal(t, 3, store.Steps("p1:t1"))

	latest, err := store.Latest(context.Background(), "p1:t1")
	require.NoError(t, err)
	assert.Equal(t, 3, latest.Step)
	assert.Equal(t, "c", latest.Node)
}

func TestDriver_ErrorRoutesToEnd(t *testing.T) {
	store := NewMemoryCheckpointStore()
	var log []string
	d := NewDriver([]Node{
		recordingNode("a", &log, false),
		recordingNode("b", &log, true),
		recordingNode("c", &log, false),
	}, store, nil)

	state, err := d.Invoke(context.Background(), State{}, "p1:t1")
	require.Error(t, err)

	var ce *models.CategorizedError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, models.ErrorPipelineFailed, ce.Category)
	require.NotNil(t, state.Error)
	assert.Equal(t, "b", state.Error.Node)

	// c never ran, and the failed step was not committed.
	assert.Equal(t, []string{"a", "b"}, log)
	assert.Equal(t, 1, store.Steps("p1:t1"))
}

func TestDriver_InvokeRefusesExistingThread(t *testing.T) {
	store := NewMemoryCheckpointStore()
	var log []string
	d := NewDriver([]Node{recordingNode("a", &log, false)}, store, nil)

	_, err := d.Invoke(context.Background(), State{}, "p1:t1")
	require.NoError(t, err)

	_, err = d.Invoke(context.Background(), State{}, "p1:t1")
	assert.ErrorIs(t, err, ErrThreadExists)
	assert.Equal(t, []string{"a"}, log)
}

func TestDriver_ResumeContinuesAfterLastCommittedStep(t *testing.T) {
	store := NewMemoryCheckpointStore()
	var log []string
	nodes := []Node{
		recordingNode("a", &log, false),
		recordingNode("b", &log, false),
		recordingNode("c", &log, false),
	}
	d := NewDriver(nodes, store, nil)

	// Simulate a kill after b: checkpoint write for b's successor fails.
	ctx, cancel := context.WithCancel(context.Background())
	halfway := NewDriver([]Node{
		nodes[0],
		{Name: "b", Run: func(_ context.Context, state *State) {
			log = append(log, "b")
			cancel()
		}},
		nodes[2],
	}, store, nil)

	_, err := halfway.Invoke(ctx, State{ProtocolID: "p1"}, "p1:t1")
	// Cancellation is observed between nodes: b committed, c never started.
	require.Error(t, err)
	assert.Equal(t, []string{"a", "b"}, log)
	assert.Equal(t, 2, store.Steps("p1:t1"))

	state, err := d.Resume(context.Background(), "p1:t1")
	require.NoError(t, err)
	assert.Nil(t, state.Error)
	assert.Equal(t, []string{"a", "b", "c"}, log)
	assert.Equal(t, 3, store.Steps("p1:t1"))
}

func TestDriver_FailedCheckpointWriteReplaysNode(t *testing.T) {
	store := NewMemoryCheckpointStore()
	var log []string
	d := NewDriver([]Node{
		recordingNode("a", &log, false),
		recordingNode("b", &log, false),
	}, store, nil)

	store.FailNextSave = true
	_, err := d.Invoke(context.Background(), State{}, "p1:t1")
	require.Error(t, err)
	assert.Equal(t, 0, store.Steps("p1:t1"))

	// Nothing committed, so Resume has nothing; a fresh Invoke replays a.
	_, err = d.Resume(context.Background(), "p1:t1")
	assert.ErrorIs(t, err, ErrNoCheckpoint)

	_, err = d.Invoke(context.Background(), State{}, "p1:t1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a", "b"}, log)
}

func TestDriver_ResumeOfFinishedRunIsNoop(t *testing.T) {
	store := NewMemoryCheckpointStore()
	var log []string
	d := NewDriver([]Node{recordingNode("a", &log, false)}, store, nil)

	state, err := d.Invoke(context.Background(), State{BatchID: ""}, "p1:t1")
	require.NoError(t, err)

	resumed, err := d.Resume(context.Background(), "p1:t1")
	require.NoError(t, err)
	assert.Equal(t, state, resumed)
	assert.Equal(t, []string{"a"}, log)
}

func TestDriver_ResumeRerunsFailedNode(t *testing.T) {
	store := NewMemoryCheckpointStore()
	var log []string
	failB := true
	d := NewDriver([]Node{
		recordingNode("a", &log, false),
		{Name: "b", Run: func(_ context.Context, state *State) {
			log = append(log, "b")
			if failB {
				state.Fail(models.ErrorLLMUnavailable, "model down")
			}
		}},
		recordingNode("c", &log, false),
	}, store, nil)

	_, err := d.Invoke(context.Background(), State{}, "p1:t1")
	require.Error(t, err)
	assert.Equal(t, 1, store.Steps("p1:t1"))

	// The failure cleared up; resume re-runs b without re-running a.
	failB = false
	state, err := d.Resume(context.Background(), "p1:t1")
	require.NoError(t, err)
	assert.Nil(t, state.Error)
	assert.Equal(t, []string{"a", "b", "b", "c"}, log)
	assert.Equal(t, 3, store.Steps("p1:t1"))
}

func TestDriver_StatePersistsAcrossResume(t *testing.T) {
	store := NewMemoryCheckpointStore()
	d1 := NewDriver([]Node{
		{Name: "fill", Run: func(_ context.Context, state *State) {
			state.Criteria = []models.ExtractedCriterion{{Text: "Age >= 18", Kind: models.KindInclusion}}
		}},
	}, store, nil)
	_, err := d1.Invoke(context.Background(), State{ProtocolID: "p1"}, "p1:t1")
	require.NoError(t, err)

	var seen []models.ExtractedCriterion
	d2 := NewDriver([]Node{
		{Name: "fill", Run: func(context.Context, *State) {}},
		{Name: "check", Run: func(_ context.Context, state *State) {
			seen = state.Criteria
		}},
	}, store, nil)
	_, err = d2.Resume(context.Background(), "p1:t1")
	require.NoError(t, err)

	require.Len(t, seen, 1)
	assert.Equal(t, "Age >= 18", seen[0].Text)
}

func TestDriver_OnNodeHookSeesEveryNode(t *testing.T) {
	store := NewMemoryCheckpointStore()
	var log []string
	d := NewDriver([]Node{
		recordingNode("a", &log, false),
		recordingNode("b", &log, false),
	}, store, nil)

	var hooked []string
	d.OnNode(func(_ context.Context, node string, _ *State) {
		hooked = append(hooked, node)
	})

	_, err := d.Invoke(context.Background(), State{}, "p1:t1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, hooked)
}

func TestDriver_NoopStoreRunsAreOneShot(t *testing.T) {
	var log []string
	failB := true
	d := NewDriver([]Node{
		recordingNode("a", &log, false),
		{Name: "b", Run: func(_ context.Context, state *State) {
			log = append(log, "b")
			if failB {
				state.Fail(models.ErrorLLMUnavailable, "model down")
			}
		}},
	}, NoopCheckpointStore{}, nil)

	_, err := d.Invoke(context.Background(), State{}, "p1:t1")
	require.Error(t, err)

	// Nothing was committed: Resume finds nothing and a fresh Invoke replays
	// from the start instead of refusing the thread.
	_, err = d.Resume(context.Background(), "p1:t1")
	assert.ErrorIs(t, err, ErrNoCheckpoint)

	failB = false
	state, err := d.Invoke(context.Background(), State{}, "p1:t1")
	require.NoError(t, err)
	assert.Nil(t, state.Error)
	assert.Equal(t, []string{"a", "b", "a", "b"}, log)
}

func TestNewThreadID_PrefixesProtocol(t *testing.T) {
	id := NewThreadID("proto-1")
	assert.Equal(t, "proto-1", ProtocolIDFromThread(id))
	assert.NotEqual(t, NewThreadID("proto-1"), id)
}
