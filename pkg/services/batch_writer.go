package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/eligius-health/eligius/ent"
	"github.com/eligius-health/eligius/ent/criteriabatch"
	"github.com/eligius-health/eligius/ent/criterion"
	"github.com/eligius-health/eligius/ent/protocol"
	"github.com/eligius-health/eligius/pkg/models"
	"github.com/eligius-health/eligius/pkg/pipeline"
)

// BatchWriter persists a finished extraction: batch, criteria and entities
// in one transaction, superseding the previous batch and moving the protocol
// to pending_review. It implements the pipeline's persist step.
type BatchWriter struct {
	client *ent.Client
	// inheritThreshold is the minimum normalized-text similarity for a new
	// criterion to inherit a reviewer decision from the superseded batch.
	inheritThreshold float64
	logger           *slog.Logger

	// inheritSync forces inheritance to run before PersistBatch returns.
	// Production runs it post-commit in a goroutine.
	inheritSync bool
}

// NewBatchWriter creates a batch writer.
func NewBatchWriter(client *ent.Client, inheritThreshold float64, logger *slog.Logger) *BatchWriter {
	return &BatchWriter{
		client:           client,
		inheritThreshold: inheritThreshold,
		logger:           logger,
	}
}

// PersistBatch implements pipeline.Persister.
func (w *BatchWriter) PersistBatch(ctx context.Context, state *pipeline.State) (string, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Supersede the previous active batch, if any.
	oldBatch, err := tx.CriteriaBatch.Query().
		Where(
			criteriabatch.ProtocolID(state.ProtocolID),
			criteriabatch.IsArchived(false),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return "", fmt.Errorf("failed to query active batch: %w", err)
	}
	if oldBatch != nil {
		if _, err := oldBatch.Update().SetIsArchived(true).Save(ctx); err != nil {
			return "", fmt.Errorf("failed to archive superseded batch: %w", err)
		}
		if err := recordAudit(ctx, tx, "pipeline", AuditBatchSuperseded, "batch", oldBatch.ID,
			map[string]interface{}{"is_archived": false},
			map[string]interface{}{"is_archived": true, "superseded_by_protocol_run": state.ProtocolID},
		); err != nil {
			return "", err
		}
	}

	batchID := uuid.NewString()
	if _, err := tx.CriteriaBatch.Create().
		SetID(batchID).
		SetProtocolID(state.ProtocolID).
		SetExtractionModel(state.ExtractionModel).
		SetTotalCount(len(state.Criteria)).
		Save(ctx); err != nil {
		return "", fmt.Errorf("failed to create batch: %w", err)
	}

	for i, extracted := range state.Criteria {
		criterionID := uuid.NewString()
		create := tx.Criterion.Create().
			SetID(criterionID).
			SetBatchID(batchID).
			SetText(extracted.Text).
			SetKind(extracted.Kind).
			SetCategory(extracted.Category).
			SetConfidence(extracted.Confidence).
			SetPage(extracted.Page).
			SetAssertionStatus(extracted.AssertionStatus)
		if len(extracted.Thresholds) > 0 {
			create.SetThresholds(extracted.Thresholds)
		}
		if extracted.Temporal != nil {
			create.SetTemporal(extracted.Temporal)
		}
		if len(extracted.Conditions) > 0 {
			create.SetConditions(extracted.Conditions)
		}
		if _, err := create.Save(ctx); err != nil {
			return "", fmt.Errorf("failed to create criterion: %w", err)
		}

		for j, entity := range extracted.Entities {
			var grounding models.GroundingResult
			if i < len(state.Groundings) && j < len(state.Groundings[i]) {
				grounding = state.Groundings[i][j]
			}
			if err := createEntity(ctx, tx, criterionID, entity, grounding); err != nil {
				return "", err
			}
		}
	}

	if _, err := tx.Protocol.UpdateOneID(state.ProtocolID).
		SetStatus(protocol.StatusPendingReview).
		Save(ctx); err != nil {
		return "", fmt.Errorf("failed to update protocol status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit batch: %w", err)
	}

	// Inheritance is post-commit and non-blocking: a failure here leaves the
	// new batch unreviewed, never half-persisted.
	if oldBatch != nil && oldBatch.ReviewedCount > 0 {
		if w.inheritSync {
			w.inheritDecisions(ctx, oldBatch.ID, batchID)
		} else {
			go w.inheritDecisions(context.WithoutCancel(ctx), oldBatch.ID, batchID)
		}
	}

	return batchID, nil
}

func createEntity(ctx context.Context, tx *ent.Tx, criterionID string, entity models.ExtractedEntity, grounding models.GroundingResult) error {
	create := tx.Entity.Create().
		SetID(uuid.NewString()).
		SetCriterionID(criterionID).
		SetText(entity.Text).
		SetEntityType(entity.Type).
		SetContext(entity.Context).
		SetGroundingConfidence(grounding.Confidence).
		SetGroundingMethod(grounding.Method).
		SetNeedsReview(grounding.NeedsReview).
		SetNillableRxnormCode(grounding.Codes.RxNorm).
		SetNillableIcd10Code(grounding.Codes.ICD10).
		SetNillableSnomedCode(grounding.Codes.SNOMED).
		SetNillableLoincCode(grounding.Codes.LOINC).
		SetNillableHpoCode(grounding.Codes.HPO).
		SetNillableUmlsCui(grounding.Codes.UMLSCUI).
		SetNillablePreferredTerm(grounding.Codes.PreferredTerm).
		SetNillableGroundingSystem(grounding.System)
	if grounding.Error != "" {
		create.SetGroundingError(grounding.Error)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to create entity: %w", err)
	}
	return nil
}

// inheritDecisions copies reviewer decisions from the superseded batch onto
// matching criteria of the new batch.
func (w *BatchWriter) inheritDecisions(ctx context.Context, oldBatchID, newBatchID string) {
	reviewed, err := w.client.Criterion.Query().
		Where(
			criterion.BatchID(oldBatchID),
			criterion.ReviewDecisionNotNil(),
		).
		All(ctx)
	if err != nil {
		w.logger.Error("Inheritance: failed to load reviewed criteria",
			slog.String("batch_id", oldBatchID),
			slog.String("error", err.Error()))
		return
	}
	if len(reviewed) == 0 {
		return
	}

	candidates := make([]reviewedCriterion, 0, len(reviewed))
	for _, c := range reviewed {
		candidates = append(candidates, reviewedCriterion{
			ID:           c.ID,
			Text:         c.Text,
			Decision:     string(*c.ReviewDecision),
			Modification: c.Modification,
		})
	}

	fresh, err := w.client.Criterion.Query().
		Where(criterion.BatchID(newBatchID)).
		All(ctx)
	if err != nil {
		w.logger.Error("Inheritance: failed to load new criteria",
			slog.String("batch_id", newBatchID),
			slog.String("error", err.Error()))
		return
	}

	tx, err := w.client.Tx(ctx)
	if err != nil {
		w.logger.Error("Inheritance: failed to start transaction",
			slog.String("error", err.Error()))
		return
	}
	defer func() { _ = tx.Rollback() }()

	inherited := 0
	for _, c := range fresh {
		match, ok := nearestReviewed(c.Text, candidates, w.inheritThreshold)
		if !ok {
			continue
		}

		update := tx.Criterion.UpdateOneID(c.ID).
			SetReviewDecision(models.ReviewDecision(match.Decision))
		if match.Modification != nil {
			update.SetModification(match.Modification)
		}
		if _, err := update.Save(ctx); err != nil {
			w.logger.Error("Inheritance: failed to update criterion",
				slog.String("criterion_id", c.ID),
				slog.String("error", err.Error()))
			return
		}

		if err := recordAudit(ctx, tx, "pipeline", AuditDecisionInherited, "criterion", c.ID,
			nil,
			map[string]interface{}{
				"decision":       match.Decision,
				"inherited_from": match.ID,
			},
		); err != nil {
			w.logger.Error("Inheritance: failed to write audit entry",
				slog.String("error", err.Error()))
			return
		}
		inherited++
	}

	if inherited > 0 {
		if _, err := tx.CriteriaBatch.UpdateOneID(newBatchID).
			AddReviewedCount(inherited).
			Save(ctx); err != nil {
			w.logger.Error("Inheritance: failed to update reviewed count",
				slog.String("error", err.Error()))
			return
		}
	}

	if err := tx.Commit(); err != nil {
		w.logger.Error("Inheritance: failed to commit",
			slog.String("error", err.Error()))
		return
	}

	w.logger.Info("Review decisions inherited",
		slog.String("from_batch", oldBatchID),
		slog.String("to_batch", newBatchID),
		slog.Int("inherited", inherited))
}
