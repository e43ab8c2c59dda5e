package services

import (
	"context"
	"fmt"

	"github.com/eligius-health/eligius/ent"
	"github.com/eligius-health/eligius/ent/auditlog"
)

// Audit event kinds.
const (
	AuditProtocolUploaded   = "PROTOCOL_UPLOADED"
	AuditProtocolRetried    = "PROTOCOL_RETRIED"
	AuditProtocolArchived   = "PROTOCOL_ARCHIVED"
	AuditProtocolDeadLetter = "PROTOCOL_DEAD_LETTER"
	AuditBatchSuperseded    = "BATCH_SUPERSEDED"
	AuditDecisionRecorded   = "DECISION_RECORDED"
	AuditDecisionInherited  = "DECISION_INHERITED"
)

// recordAudit appends one audit row inside the caller's transaction.
func recordAudit(ctx context.Context, tx *ent.Tx, actor, eventKind, targetKind, targetID string, before, after map[string]interface{}) error {
	create := tx.AuditLog.Create().
		SetActor(actor).
		SetEventKind(eventKind).
		SetTargetKind(targetKind).
		SetTargetID(targetID)
	if before != nil {
		create.SetBefore(before)
	}
	if after != nil {
		create.SetAfter(after)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to write %s audit entry: %w", eventKind, err)
	}
	return nil
}

// AuditService reads the audit trail.
type AuditService struct {
	client *ent.Client
}

// NewAuditService creates an audit reader.
func NewAuditService(client *ent.Client) *AuditService {
	return &AuditService{client: client}
}

// ListForTarget returns the audit trail for one target, newest first.
func (s *AuditService) ListForTarget(ctx context.Context, targetKind, targetID string, limit int) ([]*ent.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	entries, err := s.client.AuditLog.Query().
		Where(
			auditlog.TargetKind(targetKind),
			auditlog.TargetID(targetID),
		).
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}
