// Package outbox implements the transactional outbox: events are written in
// the same transaction as the business change they announce, then claimed
// with FOR UPDATE SKIP LOCKED and dispatched at-least-once. Every event ends
// in exactly one of done or dead_letter.
package outbox

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/eligius-health/eligius/ent"
	"github.com/eligius-health/eligius/pkg/models"
)

// WakeupChannel is the pg_notify channel the processor listens on.
const WakeupChannel = "outbox_wakeup"

// Enqueue writes a pending event inside the caller's transaction. The event
// becomes visible to the processor only when that transaction commits.
func Enqueue(ctx context.Context, tx *ent.Tx, kind models.EventKind, payload models.ProtocolEventPayload) (*ent.OutboxEvent, error) {
	raw, err := payload.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event payload: %w", err)
	}

	event, err := tx.OutboxEvent.Create().
		SetID(uuid.NewString()).
		SetAggregateID(payload.ProtocolID).
		SetKind(kind).
		SetPayload(raw).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue %s event: %w", kind, err)
	}
	return event, nil
}

// Notifier sends best-effort post-commit wakeups so the processor reacts
// without waiting out a poll interval. Polling remains the correctness
// mechanism; a lost NOTIFY only adds latency.
type Notifier struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewNotifier creates a wakeup notifier on the shared connection pool.
func NewNotifier(db *sql.DB, logger *slog.Logger) *Notifier {
	return &Notifier{db: db, logger: logger}
}

// Wakeup nudges the processor after a commit that enqueued events.
func (n *Notifier) Wakeup(ctx context.Context, aggregateID string) {
	if n == nil || n.db == nil {
		return
	}
	_, err := n.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", WakeupChannel, aggregateID)
	if err != nil && n.logger != nil {
		n.logger.Warn("Outbox wakeup notify failed",
			slog.String("aggregate_id", aggregateID),
			slog.String("error", err.Error()))
	}
}
