package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/eligius-health/eligius/pkg/models"
	"github.com/eligius-health/eligius/pkg/telemetry"
)

// ErrThreadExists is returned by Invoke when the thread already has
// committed steps; the caller should Resume instead.
var ErrThreadExists = errors.New("thread already has committed steps")

// Driver executes the node sequence with a checkpoint after every node.
// Cancellation is honored between nodes only: an in-flight node finishes (or
// its own context times out) and its checkpoint is not written.
type Driver struct {
	nodes  []Node
	store  CheckpointStore
	logger *slog.Logger

	// onNode, when set, runs before each node. The pipeline runner uses it
	// to move the protocol status along (extracting, grounding).
	onNode func(ctx context.Context, node string, state *State)
}

// NewDriver creates a driver over the standard node sequence.
func NewDriver(nodes []Node, store CheckpointStore, logger *slog.Logger) *Driver {
	return &Driver{nodes: nodes, store: store, logger: logger}
}

// OnNode installs a hook invoked before every node.
func (d *Driver) OnNode(hook func(ctx context.Context, node string, state *State)) {
	d.onNode = hook
}

// Invoke starts a fresh run on a new thread. It refuses threads with
// committed steps so a concurrent or finished run is never silently redone.
func (d *Driver) Invoke(ctx context.Context, initial State, threadID string) (State, error) {
	_, err := d.store.Latest(ctx, threadID)
	switch {
	case err == nil:
		return initial, ErrThreadExists
	case !errors.Is(err, ErrNoCheckpoint):
		return initial, err
	}
	return d.run(ctx, initial, threadID, 0, 0)
}

// Resume continues a run from its last committed checkpoint, re-running the
// node after it. Returns ErrNoCheckpoint when the thread has no committed
// steps; the caller then starts fresh.
func (d *Driver) Resume(ctx context.Context, threadID string) (State, error) {
	cp, err := d.store.Latest(ctx, threadID)
	if err != nil {
		return State{}, err
	}

	var state State
	if err := json.Unmarshal(cp.State, &state); err != nil {
		return State{}, fmt.Errorf("failed to decode checkpoint state: %w", err)
	}

	startIdx := d.nodeIndex(cp.Node) + 1
	if startIdx == 0 {
		return State{}, fmt.Errorf("checkpoint references unknown node %q", cp.Node)
	}

	if d.logger != nil {
		d.logger.Info("Resuming pipeline",
			slog.String("thread_id", threadID),
			slog.Int("from_step", cp.Step),
			slog.String("after_node", cp.Node))
	}
	return d.run(ctx, state, threadID, startIdx, cp.Step)
}

func (d *Driver) run(ctx context.Context, state State, threadID string, startIdx, startStep int) (State, error) {
	step := startStep
	for i := startIdx; i < len(d.nodes); i++ {
		if err := ctx.Err(); err != nil {
			return state, err
		}

		node := d.nodes[i]
		if d.onNode != nil {
			d.onNode(ctx, node.Name, &state)
		}

		start := time.Now()
		nodeCtx, span := telemetry.StartSpan(ctx, "pipeline."+node.Name,
			attribute.String("thread_id", threadID),
			attribute.String("protocol_id", state.ProtocolID))
		node.Run(nodeCtx, &state)
		var spanErr error
		if state.Error != nil {
			spanErr = errors.New(state.Error.Message)
		}
		telemetry.EndSpan(span, spanErr)
		if d.logger != nil {
			d.logger.Debug("Pipeline node finished",
				slog.String("thread_id", threadID),
				slog.String("node", node.Name),
				slog.Bool("failed", state.Error != nil),
				slog.Duration("duration", time.Since(start)))
		}

		// Failed steps are never committed: a retry resumes from the last
		// successful checkpoint and re-runs this node.
		if state.Error != nil {
			state.Error.Node = node.Name
			return state, models.NewCategorizedError(state.Error.Category, errors.New(state.Error.Message))
		}

		step++
		if err := d.checkpoint(ctx, state, threadID, step, node.Name); err != nil {
			// Step not committed: a resume replays this node.
			return state, err
		}
	}
	return state, nil
}

func (d *Driver) checkpoint(ctx context.Context, state State, threadID string, step int, node string) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}
	return d.store.Save(ctx, Checkpoint{
		ThreadID: threadID,
		Step:     step,
		Node:     node,
		State:    raw,
	})
}

func (d *Driver) nodeIndex(name string) int {
	for i, node := range d.nodes {
		if node.Name == name {
			return i
		}
	}
	return -1
}
