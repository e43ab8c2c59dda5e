package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eligius-health/eligius/ent"
	"github.com/eligius-health/eligius/ent/criteriabatch"
	"github.com/eligius-health/eligius/ent/criterion"
	"github.com/eligius-health/eligius/ent/protocol"
	"github.com/eligius-health/eligius/pkg/models"
)

// ReviewService records human verdicts on extracted criteria and tracks
// per-batch review progress. When the last criterion of a batch is decided,
// the protocol moves to complete.
type ReviewService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewReviewService creates a review service.
func NewReviewService(client *ent.Client, logger *slog.Logger) *ReviewService {
	return &ReviewService{client: client, logger: logger}
}

// ActiveBatch returns the protocol's current (non-archived) batch with its
// criteria and their grounded entities.
func (s *ReviewService) ActiveBatch(ctx context.Context, protocolID string) (*ent.CriteriaBatch, error) {
	exists, err := s.client.Protocol.Query().
		Where(protocol.ID(protocolID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to look up protocol: %w", err)
	}
	if !exists {
		return nil, ErrProtocolNotFound
	}

	batch, err := s.client.CriteriaBatch.Query().
		Where(
			criteriabatch.ProtocolID(protocolID),
			criteriabatch.IsArchived(false),
		).
		WithCriteria(func(q *ent.CriterionQuery) {
			q.WithEntities().Order(ent.Asc(criterion.FieldCreatedAt))
		}).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrBatchNotFound
		}
		return nil, fmt.Errorf("failed to load active batch: %w", err)
	}
	return batch, nil
}

// RecordDecision stores a reviewer's verdict on one criterion. A "modified"
// decision must carry the modification payload. Re-deciding an already
// reviewed criterion overwrites the decision without double-counting it.
func (s *ReviewService) RecordDecision(ctx context.Context, criterionID string, decision models.ReviewDecision, modification map[string]interface{}, reviewer string) (*ent.Criterion, error) {
	if !decision.Valid() {
		return nil, ErrInvalidDecision
	}
	if decision == models.DecisionModified && len(modification) == 0 {
		return nil, fmt.Errorf("%w: modified decision requires a modification payload", ErrInvalidDecision)
	}
	if reviewer == "" {
		reviewer = "reviewer"
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	crit, err := tx.Criterion.Get(ctx, criterionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrCriterionNotFound
		}
		return nil, fmt.Errorf("failed to load criterion: %w", err)
	}

	batch, err := tx.CriteriaBatch.Get(ctx, crit.BatchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load batch: %w", err)
	}
	// Superseded batches are read-only history.
	if batch.IsArchived {
		return nil, ErrInvalidStatus
	}

	var before map[string]interface{}
	if crit.ReviewDecision != nil {
		before = map[string]interface{}{"decision": string(*crit.ReviewDecision)}
	}
	firstDecision := crit.ReviewDecision == nil

	update := crit.Update().SetReviewDecision(decision)
	if decision == models.DecisionModified {
		update.SetModification(modification)
	} else {
		update.ClearModification()
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record decision: %w", err)
	}

	if firstDecision {
		reviewedNow := batch.ReviewedCount + 1
		if _, err := batch.Update().SetReviewedCount(reviewedNow).Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to update reviewed count: %w", err)
		}
		if reviewedNow >= batch.TotalCount {
			// Completion moves the protocol forward only from pending_review;
			// a failed re-extraction in flight keeps its own status.
			if _, err := tx.Protocol.Update().
				Where(
					protocol.ID(batch.ProtocolID),
					protocol.StatusEQ(protocol.StatusPendingReview),
				).
				SetStatus(protocol.StatusComplete).
				Save(ctx); err != nil {
				return nil, fmt.Errorf("failed to complete protocol: %w", err)
			}
			s.logger.Info("All criteria reviewed",
				slog.String("protocol_id", batch.ProtocolID),
				slog.String("batch_id", batch.ID))
		}
	}

	if err := recordAudit(ctx, tx, reviewer, AuditDecisionRecorded, "criterion", criterionID,
		before,
		map[string]interface{}{"decision": string(decision)},
	); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit decision: %w", err)
	}
	return updated, nil
}
