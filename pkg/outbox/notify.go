package outbox

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
)

// Listener holds a dedicated connection in LISTEN mode and forwards wakeups
// to the processor. It reconnects with a flat delay on any connection error;
// the processor's polling covers the gaps.
type Listener struct {
	dsn    string
	logger *slog.Logger
}

// NewListener creates a wakeup listener against the given DSN.
func NewListener(dsn string, logger *slog.Logger) *Listener {
	return &Listener{dsn: dsn, logger: logger}
}

// Run listens until ctx is canceled, signaling wake on every notification.
// The wake channel should be buffered with capacity 1; signals are collapsed.
func (l *Listener) Run(ctx context.Context, wake chan<- struct{}) {
	for {
		if err := l.listen(ctx, wake); err != nil {
			if ctx.Err() != nil {
				return
			}
			if l.logger != nil {
				l.logger.Warn("Outbox listener disconnected, reconnecting",
					slog.String("error", err.Error()))
			}
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
}

func (l *Listener) listen(ctx context.Context, wake chan<- struct{}) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close(context.Background()) }()

	if _, err := conn.Exec(ctx, "LISTEN "+WakeupChannel); err != nil {
		return err
	}

	for {
		if _, err := conn.WaitForNotification(ctx); err != nil {
			return err
		}
		select {
		case wake <- struct{}{}:
		default:
			// A wakeup is already pending.
		}
	}
}
