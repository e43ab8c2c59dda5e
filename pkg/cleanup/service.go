// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/eligius-health/eligius/ent"
	"github.com/eligius-health/eligius/ent/outboxevent"
	"github.com/eligius-health/eligius/ent/protocol"
	"github.com/eligius-health/eligius/pkg/config"
	"github.com/eligius-health/eligius/pkg/services"
)

// Service periodically enforces retention policies:
//   - Archives dead-lettered protocols past the retention window
//   - Prunes pipeline checkpoints of archived protocols
//   - Removes delivered outbox events past their TTL
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	config    *config.RetentionConfig
	client    *ent.Client
	protocols *services.ProtocolService
	pruner    services.ThreadPruner

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	client *ent.Client,
	protocols *services.ProtocolService,
	pruner services.ThreadPruner,
) *Service {
	return &Service{
		config:    cfg,
		client:    client,
		protocols: protocols,
		pruner:    pruner,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"dead_letter_archive_after", s.config.DeadLetterArchiveAfter,
		"done_event_ttl", s.config.DoneEventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.archiveExpiredDeadLetters(ctx)
	s.pruneArchivedCheckpoints(ctx)
	s.purgeDoneEvents(ctx)
}

// archiveExpiredDeadLetters is the eager counterpart of lazy archival on
// reads: protocols nobody looks at still leave dead_letter on schedule.
func (s *Service) archiveExpiredDeadLetters(ctx context.Context) {
	if s.config.DeadLetterArchiveAfter <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.config.DeadLetterArchiveAfter)
	expired, err := s.client.Protocol.Query().
		Where(
			protocol.StatusEQ(protocol.StatusDeadLetter),
			protocol.UpdatedAtLTE(cutoff),
		).
		All(ctx)
	if err != nil {
		slog.Error("Retention: dead-letter scan failed", "error", err)
		return
	}

	archived := 0
	for _, p := range expired {
		updated, err := s.protocols.ArchiveIfExpired(ctx, p)
		if err != nil {
			slog.Error("Retention: archival failed",
				"protocol_id", p.ID, "error", err)
			continue
		}
		if updated != nil {
			archived++
		}
	}
	if archived > 0 {
		slog.Info("Retention: archived expired dead letters", "count", archived)
	}
}

// pruneArchivedCheckpoints is a safety net for archivals whose
// PROTOCOL_ARCHIVED event was lost to a dead-lettered delivery.
func (s *Service) pruneArchivedCheckpoints(ctx context.Context) {
	ids, err := s.client.Protocol.Query().
		Where(protocol.StatusEQ(protocol.StatusArchived)).
		IDs(ctx)
	if err != nil {
		slog.Error("Retention: archived-protocol scan failed", "error", err)
		return
	}

	pruned := 0
	for _, id := range ids {
		n, err := s.pruner.DeleteProtocolThreads(ctx, id)
		if err != nil {
			slog.Error("Retention: checkpoint prune failed",
				"protocol_id", id, "error", err)
			continue
		}
		pruned += n
	}
	if pruned > 0 {
		slog.Info("Retention: pruned checkpoints of archived protocols", "count", pruned)
	}
}

func (s *Service) purgeDoneEvents(ctx context.Context) {
	if s.config.DoneEventTTL <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.config.DoneEventTTL)
	count, err := s.client.OutboxEvent.Delete().
		Where(
			outboxevent.StatusEQ(outboxevent.StatusDone),
			outboxevent.UpdatedAtLTE(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: outbox purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged delivered outbox events", "count", count)
	}
}
