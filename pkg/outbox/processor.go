package outbox

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"golang.org/x/sync/semaphore"

	"github.com/eligius-health/eligius/ent"
	"github.com/eligius-health/eligius/ent/outboxevent"
	"github.com/eligius-health/eligius/ent/protocol"
	"github.com/eligius-health/eligius/pkg/config"
	"github.com/eligius-health/eligius/pkg/models"
	"github.com/eligius-health/eligius/pkg/resilience"
)

// Handler processes one claimed event. A nil return marks the event done;
// any error goes through retry bookkeeping.
type Handler func(ctx context.Context, event *ent.OutboxEvent) error

// Processor polls the outbox, claims dispatchable events with
// FOR UPDATE SKIP LOCKED, and drives each to done or dead_letter.
type Processor struct {
	client   *ent.Client
	cfg      *config.OutboxConfig
	logger   *slog.Logger
	handlers map[models.EventKind]Handler

	// wake collapses pg_notify wakeups into "poll now".
	wake     chan struct{}
	inFlight *semaphore.Weighted

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewProcessor creates an outbox processor. Handlers are registered before
// Start.
func NewProcessor(client *ent.Client, cfg *config.OutboxConfig, logger *slog.Logger) *Processor {
	return &Processor{
		client:   client,
		cfg:      cfg,
		logger:   logger,
		handlers: make(map[models.EventKind]Handler),
		wake:     make(chan struct{}, 1),
		inFlight: semaphore.NewWeighted(int64(cfg.MaxInFlight)),
	}
}

// RegisterHandler binds an event kind to its handler.
func (p *Processor) RegisterHandler(kind models.EventKind, h Handler) {
	p.handlers[kind] = h
}

// Wake nudges the processor to poll immediately.
func (p *Processor) Wake() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// Start launches the worker goroutines.
func (p *Processor) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return fmt.Errorf("processor already started")
	}
	p.started = true

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.cfg.WorkerCount; i++ {
		p.wg.Add(1)
		go p.workerLoop(runCtx, i)
	}
	if p.cfg.OrphanScanInterval > 0 {
		p.wg.Add(1)
		go p.orphanLoop(runCtx)
	}
	p.logger.Info("Outbox processor started",
		slog.Int("workers", p.cfg.WorkerCount),
		slog.Int("batch_size", p.cfg.BatchSize))
	return nil
}

// Stop cancels the workers and waits for in-flight handlers, up to the
// graceful shutdown timeout.
func (p *Processor) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		p.logger.Info("Outbox processor stopped")
	case <-time.After(p.cfg.GracefulShutdownTimeout):
		p.logger.Warn("Outbox processor shutdown timed out")
	}
}

func (p *Processor) workerLoop(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(p.jitteredInterval()):
		case <-p.wake:
		}
		p.drain(ctx, id)
	}
}

// jitteredInterval spreads worker polls so replicas do not dogpile the table.
func (p *Processor) jitteredInterval() time.Duration {
	interval := p.cfg.PollInterval
	if p.cfg.PollIntervalJitter > 0 {
		interval += time.Duration(rand.Int63n(int64(2*p.cfg.PollIntervalJitter))) - p.cfg.PollIntervalJitter
	}
	if interval < 0 {
		interval = p.cfg.PollInterval
	}
	return interval
}

// drain claims and handles batches until the table has nothing dispatchable.
func (p *Processor) drain(ctx context.Context, workerID int) {
	for {
		if ctx.Err() != nil {
			return
		}

		// Backpressure: hold the poll until in-flight capacity frees up.
		if !p.inFlight.TryAcquire(1) {
			select {
			case <-ctx.Done():
			case <-time.After(p.cfg.PollInterval):
			}
			return
		}

		events, err := p.claimBatch(ctx)
		if err != nil {
			p.inFlight.Release(1)
			p.logger.Error("Outbox claim failed",
				slog.Int("worker", workerID),
				slog.String("error", err.Error()))
			return
		}
		if len(events) == 0 {
			p.inFlight.Release(1)
			return
		}

		// Claimed events for one aggregate stay in insertion order because a
		// single worker handles its whole batch sequentially.
		for _, event := range events {
			p.handleEvent(ctx, event)
		}
		p.inFlight.Release(1)
	}
}

// orphanLoop periodically recovers events whose claim lease expired.
// All replicas run it independently; the recovery update is idempotent.
func (p *Processor) orphanLoop(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.recoverOrphans(ctx); err != nil {
				p.logger.Error("Orphan recovery failed",
					slog.String("error", err.Error()))
			}
		}
	}
}

// recoverOrphans requeues in_flight events whose claim outlived the lease. A
// worker that crashed (or was killed past the shutdown timeout) between
// claim-commit and the terminal update leaves its events in_flight; without
// recovery they would never reach done or dead_letter. Requeueing counts as a
// delivery attempt so a crash-looping handler still exhausts its retry
// budget, and the re-delivery is covered by the at-least-once handler
// contract.
func (p *Processor) recoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.cfg.ClaimLease)
	orphans, err := p.client.OutboxEvent.Query().
		Where(
			outboxevent.StatusEQ(outboxevent.StatusInFlight),
			outboxevent.UpdatedAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned events: %w", err)
	}
	if len(orphans) == 0 {
		return nil
	}

	p.logger.Warn("Detected orphaned outbox events",
		slog.Int("count", len(orphans)))

	for _, event := range orphans {
		retryCount := event.RetryCount + 1
		if retryCount >= p.cfg.MaxRetries {
			p.deadLetter(ctx, event, models.ErrorPipelineFailed,
				fmt.Errorf("claim expired after %s", p.cfg.ClaimLease), retryCount)
			continue
		}
		// Compare-and-set: a worker that was merely slow may finish (or
		// another replica may recover) between the scan and this write.
		if _, err := p.client.OutboxEvent.Update().
			Where(
				outboxevent.ID(event.ID),
				outboxevent.StatusEQ(outboxevent.StatusInFlight),
				outboxevent.UpdatedAtLT(threshold),
			).
			SetStatus(outboxevent.StatusFailed).
			SetRetryCount(retryCount).
			SetNextAttemptAt(time.Now()).
			SetLastError("orphaned: claim expired").
			Save(ctx); err != nil {
			p.logger.Error("Failed to requeue orphaned event",
				slog.String("event_id", event.ID),
				slog.String("error", err.Error()))
		}
	}
	return nil
}

// claimBatch atomically claims up to BatchSize dispatchable events.
func (p *Processor) claimBatch(ctx context.Context) ([]*ent.OutboxEvent, error) {
	tx, err := p.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED, insertion order.
	events, err := tx.OutboxEvent.Query().
		Where(
			outboxevent.StatusIn(outboxevent.StatusPending, outboxevent.StatusFailed),
			outboxevent.NextAttemptAtLTE(time.Now()),
		).
		Order(ent.Asc(outboxevent.FieldCreatedAt)).
		Limit(p.cfg.BatchSize).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query dispatchable events: %w", err)
	}
	if len(events) == 0 {
		return nil, tx.Commit()
	}

	claimed := make([]*ent.OutboxEvent, 0, len(events))
	for _, event := range events {
		updated, err := event.Update().
			SetStatus(outboxevent.StatusInFlight).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to mark event in_flight: %w", err)
		}
		claimed = append(claimed, updated)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

func (p *Processor) handleEvent(ctx context.Context, event *ent.OutboxEvent) {
	handler, ok := p.handlers[event.Kind]

	var handlerErr error
	if !ok {
		handlerErr = models.NewCategorizedError(models.ErrorToolMissing,
			fmt.Errorf("no handler for event kind %s", event.Kind))
	} else {
		handlerErr = handler(ctx, event)
	}

	if handlerErr == nil {
		if _, err := p.client.OutboxEvent.UpdateOne(event).
			SetStatus(outboxevent.StatusDone).
			ClearLastError().
			Save(ctx); err != nil {
			p.logger.Error("Failed to mark event done",
				slog.String("event_id", event.ID),
				slog.String("error", err.Error()))
		}
		return
	}

	category := Categorize(handlerErr)
	retryCount := event.RetryCount + 1

	if retryCount >= p.cfg.MaxRetries {
		p.deadLetter(ctx, event, category, handlerErr, retryCount)
		return
	}

	delay := time.Duration(0)
	if category.Retryable() {
		delay = resilience.BackoffDelay(resilience.RetryConfig{
			BackoffBase: p.cfg.RetryBackoffBase,
			BackoffMax:  p.cfg.RetryBackoffCap,
		}, retryCount)
	}

	p.logger.Warn("Outbox event failed, will retry",
		slog.String("event_id", event.ID),
		slog.String("kind", string(event.Kind)),
		slog.String("category", string(category)),
		slog.Int("retry_count", retryCount),
		slog.Duration("backoff", delay),
		slog.String("error", handlerErr.Error()))

	if _, err := p.client.OutboxEvent.UpdateOne(event).
		SetStatus(outboxevent.StatusFailed).
		SetRetryCount(retryCount).
		SetNextAttemptAt(time.Now().Add(delay)).
		SetLastError(eventError(category, handlerErr)).
		Save(ctx); err != nil {
		p.logger.Error("Failed to record event retry",
			slog.String("event_id", event.ID),
			slog.String("error", err.Error()))
	}
}

// deadLetter moves the event to dead_letter and, because every event targets
// a protocol, dead-letters the protocol with a categorized error_reason and
// structured metadata.error, in one transaction.
func (p *Processor) deadLetter(ctx context.Context, event *ent.OutboxEvent, category models.ErrorCategory, handlerErr error, retryCount int) {
	reason := deadLetterReason(category)

	p.logger.Error("Outbox event dead-lettered",
		slog.String("event_id", event.ID),
		slog.String("kind", string(event.Kind)),
		slog.String("aggregate_id", event.AggregateID),
		slog.String("category", string(category)),
		slog.String("reason", reason))

	err := func() error {
		tx, err := p.client.Tx(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.OutboxEvent.UpdateOne(event).
			SetStatus(outboxevent.StatusDeadLetter).
			SetRetryCount(retryCount).
			SetLastError(eventError(category, handlerErr)).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to dead-letter event: %w", err)
		}

		proto, err := tx.Protocol.Get(ctx, event.AggregateID)
		if err != nil {
			if ent.IsNotFound(err) {
				return tx.Commit()
			}
			return fmt.Errorf("failed to load protocol: %w", err)
		}

		metadata := proto.Metadata
		if metadata == nil {
			metadata = map[string]interface{}{}
		}
		metadata["error"] = models.ErrorMetadata{
			Category:   category,
			Reason:     reason,
			RetryCount: retryCount,
		}.ToMap()

		if _, err := proto.Update().
			SetStatus(protocol.StatusDeadLetter).
			SetErrorReason(reason).
			SetMetadata(metadata).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to dead-letter protocol: %w", err)
		}

		if _, err := tx.AuditLog.Create().
			SetActor("outbox").
			SetEventKind("PROTOCOL_DEAD_LETTER").
			SetTargetKind("protocol").
			SetTargetID(proto.ID).
			SetBefore(map[string]interface{}{"status": string(proto.Status)}).
			SetAfter(map[string]interface{}{
				"status":       string(protocol.StatusDeadLetter),
				"error_reason": reason,
			}).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to write audit entry: %w", err)
		}

		return tx.Commit()
	}()
	if err != nil {
		p.logger.Error("Dead-letter transaction failed",
			slog.String("event_id", event.ID),
			slog.String("error", err.Error()))
	}
}
