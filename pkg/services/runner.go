package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/eligius-health/eligius/ent"
	"github.com/eligius-health/eligius/ent/protocol"
	"github.com/eligius-health/eligius/pkg/models"
	"github.com/eligius-health/eligius/pkg/pipeline"
)

// metadataThreadKey is where the protocol's current pipeline thread id lives
// in protocol.metadata.
const metadataThreadKey = "pipeline_thread_id"

// PipelineRunner drives the extraction pipeline for one protocol at a time.
// It is invoked by the outbox dispatcher, keeps the protocol's status in sync
// with pipeline progress, and resumes from the last checkpoint after a crash
// or retry.
type PipelineRunner struct {
	client *ent.Client
	driver *pipeline.Driver
	logger *slog.Logger
}

// NewPipelineRunner creates a runner and installs its status hook on the
// driver.
func NewPipelineRunner(client *ent.Client, driver *pipeline.Driver, logger *slog.Logger) *PipelineRunner {
	r := &PipelineRunner{client: client, driver: driver, logger: logger}
	driver.OnNode(r.onNode)
	return r
}

// HandleUploaded is the outbox handler for PROTOCOL_UPLOADED events.
func (r *PipelineRunner) HandleUploaded(ctx context.Context, event *ent.OutboxEvent) error {
	payload, err := models.DecodeProtocolEventPayload(event.Payload)
	if err != nil {
		return models.NewCategorizedError(models.ErrorPipelineFailed, err)
	}
	return r.Run(ctx, payload.ProtocolID, false)
}

// HandleReExtract is the outbox handler for PROTOCOL_RE_EXTRACT events. It
// always starts a fresh pipeline thread so the document is fully
// re-extracted, producing a new batch that supersedes the current one.
func (r *PipelineRunner) HandleReExtract(ctx context.Context, event *ent.OutboxEvent) error {
	payload, err := models.DecodeProtocolEventPayload(event.Payload)
	if err != nil {
		return models.NewCategorizedError(models.ErrorPipelineFailed, err)
	}
	return r.Run(ctx, payload.ProtocolID, true)
}

// ThreadPruner deletes the checkpoints of every pipeline thread a protocol
// ever ran. Implemented by pipeline.EntCheckpointStore.
type ThreadPruner interface {
	DeleteProtocolThreads(ctx context.Context, protocolID string) (int, error)
}

// ArchivedHandler returns the outbox handler for PROTOCOL_ARCHIVED events:
// it drops the archived protocol's checkpoints.
func ArchivedHandler(pruner ThreadPruner, logger *slog.Logger) func(ctx context.Context, event *ent.OutboxEvent) error {
	return func(ctx context.Context, event *ent.OutboxEvent) error {
		payload, err := models.DecodeProtocolEventPayload(event.Payload)
		if err != nil {
			return models.NewCategorizedError(models.ErrorPipelineFailed, err)
		}
		n, err := pruner.DeleteProtocolThreads(ctx, payload.ProtocolID)
		if err != nil {
			return err
		}
		if n > 0 {
			logger.Info("Pruned checkpoints for archived protocol",
				slog.String("protocol_id", payload.ProtocolID),
				slog.Int("checkpoints", n))
		}
		return nil
	}
}

// Run executes (or resumes) the pipeline for a protocol. With fresh set, a
// new thread is minted even if one exists. Failures are reflected on the
// protocol row and returned to the caller so the outbox can count the retry.
func (r *PipelineRunner) Run(ctx context.Context, protocolID string, fresh bool) error {
	p, err := r.client.Protocol.Get(ctx, protocolID)
	if err != nil {
		if ent.IsNotFound(err) {
			// The row is gone; there is nothing to process or to mark failed.
			r.logger.Warn("Pipeline event for missing protocol",
				slog.String("protocol_id", protocolID))
			return nil
		}
		return err
	}
	if p.Status == protocol.StatusArchived {
		r.logger.Info("Skipping pipeline run for archived protocol",
			slog.String("protocol_id", protocolID))
		return nil
	}

	threadID, _ := p.Metadata[metadataThreadKey].(string)
	if fresh || threadID == "" {
		threadID = pipeline.NewThreadID(protocolID)
		if err := r.saveThreadID(ctx, p, threadID); err != nil {
			return err
		}
	}

	state, err := r.resumeOrInvoke(ctx, threadID, pipeline.State{
		ProtocolID:  protocolID,
		Title:       p.Title,
		FilePointer: p.FilePointer,
	})
	if err != nil {
		// A shutdown mid-run leaves the status as-is; the next dispatch
		// resumes from the last checkpoint.
		if ctx.Err() != nil {
			return err
		}
		r.markFailed(ctx, protocolID, state.Error)
		return err
	}

	r.logger.Info("Pipeline run complete",
		slog.String("protocol_id", protocolID),
		slog.String("batch_id", state.BatchID))
	return nil
}

func (r *PipelineRunner) resumeOrInvoke(ctx context.Context, threadID string, initial pipeline.State) (pipeline.State, error) {
	state, err := r.driver.Resume(ctx, threadID)
	if errors.Is(err, pipeline.ErrNoCheckpoint) {
		return r.driver.Invoke(ctx, initial, threadID)
	}
	return state, err
}

func (r *PipelineRunner) saveThreadID(ctx context.Context, p *ent.Protocol, threadID string) error {
	metadata := p.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	metadata[metadataThreadKey] = threadID
	_, err := p.Update().SetMetadata(metadata).Save(ctx)
	return err
}

// onNode mirrors pipeline progress onto the protocol's status.
func (r *PipelineRunner) onNode(ctx context.Context, node string, state *pipeline.State) {
	var status protocol.Status
	switch node {
	case pipeline.NodeExtract:
		status = protocol.StatusExtracting
	case pipeline.NodeGround:
		status = protocol.StatusGrounding
	default:
		return
	}
	if _, err := r.client.Protocol.UpdateOneID(state.ProtocolID).
		SetStatus(status).
		Save(ctx); err != nil {
		r.logger.Warn("Failed to update protocol status",
			slog.String("protocol_id", state.ProtocolID),
			slog.String("status", string(status)),
			slog.String("error", err.Error()))
	}
}

// markFailed records the failure status and reason on the protocol. Terminal
// statuses are never overwritten.
func (r *PipelineRunner) markFailed(ctx context.Context, protocolID string, stateErr *pipeline.StateError) {
	status := protocol.StatusExtractionFailed
	reason := models.ErrorPipelineFailed.HumanReason()
	if stateErr != nil {
		switch stateErr.Node {
		case pipeline.NodeGround, pipeline.NodePersist:
			status = protocol.StatusGroundingFailed
		}
		reason = stateErr.Category.HumanReason()
	}

	if _, err := r.client.Protocol.Update().
		Where(
			protocol.ID(protocolID),
			protocol.StatusNotIn(protocol.StatusArchived, protocol.StatusDeadLetter),
		).
		SetStatus(status).
		SetErrorReason(reason).
		Save(ctx); err != nil {
		r.logger.Error("Failed to mark protocol failed",
			slog.String("protocol_id", protocolID),
			slog.String("error", err.Error()))
	}
}
