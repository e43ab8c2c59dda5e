package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/eligius-health/eligius/ent"
	"github.com/eligius-health/eligius/ent/outboxevent"
	"github.com/eligius-health/eligius/ent/protocol"
	"github.com/eligius-health/eligius/pkg/config"
	"github.com/eligius-health/eligius/pkg/models"
	"github.com/eligius-health/eligius/pkg/objectstore"
	"github.com/eligius-health/eligius/pkg/outbox"
	"github.com/eligius-health/eligius/pkg/resilience"
)

// extractorBreaker is the breaker name guarding the LLM; Submit checks it to
// warn the caller that extraction will be delayed.
const extractorBreaker = "gemini"

// ProtocolService implements the protocol lifecycle: submission, retry,
// re-extraction, archival, and reads with lazy dead-letter archival.
type ProtocolService struct {
	client    *ent.Client
	store     objectstore.Store
	breakers  *resilience.Registry
	notifier  *outbox.Notifier
	retention *config.RetentionConfig
	logger    *slog.Logger
}

// NewProtocolService creates a protocol service.
func NewProtocolService(client *ent.Client, store objectstore.Store, breakers *resilience.Registry, notifier *outbox.Notifier, retention *config.RetentionConfig, logger *slog.Logger) *ProtocolService {
	return &ProtocolService{
		client:    client,
		store:     store,
		breakers:  breakers,
		retention: retention,
		notifier:  notifier,
		logger:    logger,
	}
}

// SubmitResult is the outcome of a protocol submission. Warning is non-empty
// when the document was accepted but processing is expected to be delayed.
type SubmitResult struct {
	Protocol *ent.Protocol
	Warning  string
}

// Submit stores the uploaded document, creates the protocol row, and enqueues
// the extraction event in the same transaction. The upload is accepted even
// when the LLM breaker is open; the outbox delivers the work once the
// service recovers.
func (s *ProtocolService) Submit(ctx context.Context, title string, document []byte) (*SubmitResult, error) {
	if len(document) == 0 {
		return nil, fmt.Errorf("document is empty")
	}
	if title == "" {
		title = "Untitled protocol"
	}

	id := uuid.NewString()
	pointer, err := s.store.Put(ctx, id+".pdf", document, "application/pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	p, err := tx.Protocol.Create().
		SetID(id).
		SetTitle(title).
		SetFilePointer(pointer).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create protocol: %w", err)
	}

	if _, err := outbox.Enqueue(ctx, tx, models.EventProtocolUploaded, models.ProtocolEventPayload{
		ProtocolID: id,
		Title:      title,
	}); err != nil {
		return nil, err
	}

	if err := recordAudit(ctx, tx, "api", AuditProtocolUploaded, "protocol", id,
		nil,
		map[string]interface{}{"status": string(protocol.StatusUploaded), "title": title},
	); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit submission: %w", err)
	}
	s.notifier.Wakeup(ctx, id)

	result := &SubmitResult{Protocol: p}
	if s.breakers != nil && s.breakers.State(extractorBreaker) == gobreaker.StateOpen {
		result.Warning = "AI service temporarily unavailable; extraction will begin once it recovers"
	}

	s.logger.Info("Protocol submitted",
		slog.String("protocol_id", id),
		slog.String("title", title),
		slog.Int("bytes", len(document)),
		slog.Bool("extractor_degraded", result.Warning != ""))
	return result, nil
}

// retryableStatuses are the statuses a retry can move forward from.
var retryableStatuses = []protocol.Status{
	protocol.StatusExtractionFailed,
	protocol.StatusGroundingFailed,
	protocol.StatusDeadLetter,
}

// Retry re-dispatches a failed protocol. The pipeline resumes from the last
// checkpoint rather than starting over. The status update is a compare-and-set
// so concurrent retries collapse to one.
func (s *ProtocolService) Retry(ctx context.Context, id, actor string) (*ent.Protocol, error) {
	if actor == "" {
		actor = "api"
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	p, err := tx.Protocol.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrProtocolNotFound
		}
		return nil, fmt.Errorf("failed to load protocol: %w", err)
	}

	n, err := tx.Protocol.Update().
		Where(
			protocol.ID(id),
			protocol.StatusIn(retryableStatuses...),
		).
		SetStatus(protocol.StatusExtracting).
		ClearErrorReason().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update protocol for retry: %w", err)
	}
	if n == 0 {
		switch p.Status {
		case protocol.StatusUploaded, protocol.StatusExtracting, protocol.StatusGrounding:
			return nil, ErrRetryConflict
		default:
			return nil, ErrInvalidStatus
		}
	}

	// The structured error context belongs to the failed run.
	if p.Metadata != nil {
		if _, ok := p.Metadata["error"]; ok {
			metadata := p.Metadata
			delete(metadata, "error")
			if _, err := tx.Protocol.UpdateOneID(id).SetMetadata(metadata).Save(ctx); err != nil {
				return nil, fmt.Errorf("failed to clear error metadata: %w", err)
			}
		}
	}

	if err := s.requeueEvent(ctx, tx, id, p.Title); err != nil {
		return nil, err
	}

	if err := recordAudit(ctx, tx, actor, AuditProtocolRetried, "protocol", id,
		map[string]interface{}{"status": string(p.Status)},
		map[string]interface{}{"status": string(protocol.StatusExtracting)},
	); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit retry: %w", err)
	}
	s.notifier.Wakeup(ctx, id)

	s.logger.Info("Protocol retry dispatched",
		slog.String("protocol_id", id),
		slog.String("previous_status", string(p.Status)))
	return s.client.Protocol.Get(ctx, id)
}

// requeueEvent re-arms the protocol's stalled outbox event with a fresh
/// retry budget. Retry never inserts a second event row: a duplicate would let
// two workers resume the same pipeline thread concurrently. An event that is
// already pending or in_flight is left alone (delivery is on its way), and a
// brand-new event is created only when none exists at all.
func (s *ProtocolService) requeueEvent(ctx context.Context, tx *ent.Tx, id, title string) error {
	event, err := tx.OutboxEvent.Query().
		Where(outboxevent.AggregateID(id)).
		Order(ent.Desc(outboxevent.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			_, err = outbox.Enqueue(ctx, tx, models.EventProtocolUploaded, models.ProtocolEventPayload{
				ProtocolID: id,
				Title:      title,
			})
			return err
		}
		return fmt.Errorf("failed to load outbox event: %w", err)
	}

	switch event.Status {
	case outboxevent.StatusFailed, outboxevent.StatusDeadLetter, outboxevent.StatusDone:
		if _, err := tx.OutboxEvent.UpdateOneID(event.ID).
			SetStatus(outboxevent.StatusPending).
			SetRetryCount(0).
			SetNextAttemptAt(time.Now()).
			ClearLastError().
			Save(ctx); err != nil {
			return fmt.Errorf("failed to requeue outbox event: %w", err)
		}
	default:
		// pending or in_flight: the processor is already driving it.
	}
	return nil
}

// ReExtract runs the full pipeline again on a reviewed (or under-review)
// protocol, producing a new batch that supersedes the current one. Matching
// criteria inherit their review decisions.
func (s *ProtocolService) ReExtract(ctx context.Context, id, actor string) error {
	if actor == "" {
		actor = "api"
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	p, err := tx.Protocol.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrProtocolNotFound
		}
		return fmt.Errorf("failed to load protocol: %w", err)
	}
	switch p.Status {
	case protocol.StatusPendingReview, protocol.StatusComplete:
	case protocol.StatusExtracting, protocol.StatusGrounding, protocol.StatusUploaded:
		return ErrRetryConflict
	default:
		return ErrInvalidStatus
	}

	if _, err := outbox.Enqueue(ctx, tx, models.EventProtocolReExtract, models.ProtocolEventPayload{
		ProtocolID: id,
		Title:      p.Title,
	}); err != nil {
		return err
	}

	if err := recordAudit(ctx, tx, actor, AuditProtocolRetried, "protocol", id,
		map[string]interface{}{"status": string(p.Status)},
		map[string]interface{}{"re_extract": true},
	); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit re-extraction: %w", err)
	}
	s.notifier.Wakeup(ctx, id)
	return nil
}

// Archive moves a protocol to archived. Archival is idempotent and terminal;
// checkpoint cleanup happens via the PROTOCOL_ARCHIVED outbox event.
func (s *ProtocolService) Archive(ctx context.Context, id, actor string) (*ent.Protocol, error) {
	if actor == "" {
		actor = "api"
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	p, err := tx.Protocol.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrProtocolNotFound
		}
		return nil, fmt.Errorf("failed to load protocol: %w", err)
	}
	if p.Status == protocol.StatusArchived {
		return p, nil
	}

	updated, err := tx.Protocol.UpdateOneID(id).
		SetStatus(protocol.StatusArchived).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to archive protocol: %w", err)
	}

	if _, err := outbox.Enqueue(ctx, tx, models.EventProtocolArchived, models.ProtocolEventPayload{
		ProtocolID: id,
	}); err != nil {
		return nil, err
	}

	if err := recordAudit(ctx, tx, actor, AuditProtocolArchived, "protocol", id,
		map[string]interface{}{"status": string(p.Status)},
		map[string]interface{}{"status": string(protocol.StatusArchived)},
	); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit archival: %w", err)
	}
	s.notifier.Wakeup(ctx, id)
	return updated, nil
}

// Get returns one protocol. Dead-lettered protocols past the retention window
// are archived on read, so observers never see an expired dead letter.
func (s *ProtocolService) Get(ctx context.Context, id string) (*ent.Protocol, error) {
	p, err := s.client.Protocol.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrProtocolNotFound
		}
		return nil, fmt.Errorf("failed to load protocol: %w", err)
	}

	archived, err := s.ArchiveIfExpired(ctx, p)
	if err != nil {
		// Lazy archival is opportunistic; the read still succeeds.
		s.logger.Warn("Lazy archival failed",
			slog.String("protocol_id", id),
			slog.String("error", err.Error()))
		return p, nil
	}
	if archived != nil {
		return archived, nil
	}
	return p, nil
}

// ArchiveIfExpired archives a dead-lettered protocol whose retention window
// has elapsed. It returns the updated row, or nil when the protocol is not
// due (or another writer got there first). The retention sweep uses the same
// path as lazy reads.
func (s *ProtocolService) ArchiveIfExpired(ctx context.Context, p *ent.Protocol) (*ent.Protocol, error) {
	if p.Status != protocol.StatusDeadLetter || s.retention == nil || s.retention.DeadLetterArchiveAfter <= 0 {
		return nil, nil
	}
	cutoff := time.Now().Add(-s.retention.DeadLetterArchiveAfter)
	if p.UpdatedAt.After(cutoff) {
		return nil, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	n, err := tx.Protocol.Update().
		Where(
			protocol.ID(p.ID),
			protocol.StatusEQ(protocol.StatusDeadLetter),
			protocol.UpdatedAtLTE(cutoff),
		).
		SetStatus(protocol.StatusArchived).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to archive expired protocol: %w", err)
	}
	if n == 0 {
		return nil, nil
	}

	if _, err := outbox.Enqueue(ctx, tx, models.EventProtocolArchived, models.ProtocolEventPayload{
		ProtocolID: p.ID,
	}); err != nil {
		return nil, err
	}

	if err := recordAudit(ctx, tx, "retention", AuditProtocolArchived, "protocol", p.ID,
		map[string]interface{}{"status": string(protocol.StatusDeadLetter)},
		map[string]interface{}{"status": string(protocol.StatusArchived), "expired": true},
	); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expired archival: %w", err)
	}
	s.notifier.Wakeup(ctx, p.ID)

	s.logger.Info("Dead-lettered protocol archived after retention window",
		slog.String("protocol_id", p.ID))
	return s.client.Protocol.Get(ctx, p.ID)
}

// ListFilter narrows and pages a protocol listing.
type ListFilter struct {
	// Status restricts the listing to one status. Without it, every status
	// except archived is returned.
	Status *protocol.Status
	Limit  int
	Offset int
}

// List returns protocols newest first. Archived protocols appear only when
// filtered for explicitly.
func (s *ProtocolService) List(ctx context.Context, filter ListFilter) ([]*ent.Protocol, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	q := s.client.Protocol.Query()
	if filter.Status != nil {
		q = q.Where(protocol.StatusEQ(*filter.Status))
	} else {
		q = q.Where(protocol.StatusNEQ(protocol.StatusArchived))
	}

	protocols, err := q.
		Order(ent.Desc(protocol.FieldCreatedAt)).
		Limit(limit).
		Offset(filter.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list protocols: %w", err)
	}
	return protocols, nil
}

// DownloadURL returns a short-lived signed URL for the protocol's document.
func (s *ProtocolService) DownloadURL(ctx context.Context, id string) (string, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	url, err := s.store.SignedURL(ctx, p.FilePointer, 15*time.Minute)
	if err != nil {
		return "", fmt.Errorf("failed to sign document URL: %w", err)
	}
	return url, nil
}
