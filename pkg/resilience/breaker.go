// Package resilience provides circuit breakers and retry helpers shared by
// every outbound dependency: the LLM, terminology services, and object
// storage. Each dependency gets its own named breaker so one failing service
// never blocks calls to the others.
package resilience

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// ErrBreakerOpen is returned when a call is rejected because the named
// breaker is open. Callers treat it as retryable-later, never as a
// data error.
var ErrBreakerOpen = errors.New("circuit breaker open")

// StateChangeListener is notified on every breaker state transition.
// Listeners must not block; panics are swallowed so a bad listener cannot
// take the caller down.
type StateChangeListener interface {
	OnStateChange(name string, from, to gobreaker.State)
}

// BreakerConfig controls breaker trip behavior.
type BreakerConfig struct {
	// FailMax is the consecutive-failure count that opens the breaker.
	FailMax uint32
	// ResetTimeout is how long the breaker stays open before allowing a
	// half-open probe.
	ResetTimeout time.Duration
}

// Registry hands out one circuit breaker per dependency name, creating
// breakers lazily with a shared configuration.
type Registry struct {
	cfg       BreakerConfig
	logger    *slog.Logger
	mu        sync.Mutex
	breakers  map[string]*gobreaker.CircuitBreaker
	listeners []StateChangeListener
}

// NewRegistry creates a breaker registry with the given trip settings.
func NewRegistry(cfg BreakerConfig, logger *slog.Logger) *Registry {
	if cfg.FailMax == 0 {
		cfg.FailMax = 3
	}
	if cfg.ResetTimeout == 0 {
		cfg.ResetTimeout = 60 * time.Second
	}
	return &Registry{
		cfg:      cfg,
		logger:   logger,
		breakers: make(map[string]*gobreaker.CircuitBreaker),
	}
}

// AddListener registers a state-change listener. Must be called before the
// first Execute for deterministic delivery.
func (r *Registry) AddListener(l StateChangeListener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, l)
}

// Breaker returns the breaker for the given dependency name, creating it on
// first use.
func (r *Registry) Breaker(name string) *gobreaker.CircuitBreaker {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cb, ok := r.breakers[name]; ok {
		return cb
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: name,
		// A single probe in half-open; success closes, failure re-opens.
		MaxRequests: 1,
		Timeout:     r.cfg.ResetTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= r.cfg.FailMax
		},
		OnStateChange: r.notify,
	})
	r.breakers[name] = cb
	return cb
}

// Execute runs fn through the named breaker. An open breaker is surfaced as
// ErrBreakerOpen.
func (r *Registry) Execute(name string, fn func() (interface{}, error)) (interface{}, error) {
	result, err := r.Breaker(name).Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, ErrBreakerOpen
	}
	return result, err
}

// State returns the current state of the named breaker. Breakers that were
// never used report closed.
func (r *Registry) State(name string) gobreaker.State {
	r.mu.Lock()
	cb, ok := r.breakers[name]
	r.mu.Unlock()
	if !ok {
		return gobreaker.StateClosed
	}
	return cb.State()
}

// OpenBreakers returns the names of all breakers currently open. The
// breakers are queried outside r.mu: State() can fire a state transition,
// and notify takes r.mu.
func (r *Registry) OpenBreakers() []string {
	r.mu.Lock()
	snapshot := make(map[string]*gobreaker.CircuitBreaker, len(r.breakers))
	for name, cb := range r.breakers {
		snapshot[name] = cb
	}
	r.mu.Unlock()

	var open []string
	for name, cb := range snapshot {
		if cb.State() == gobreaker.StateOpen {
			open = append(open, name)
		}
	}
	return open
}

func (r *Registry) notify(name string, from, to gobreaker.State) {
	if r.logger != nil {
		r.logger.Warn("Circuit breaker state change",
			slog.String("breaker", name),
			slog.String("from", from.String()),
			slog.String("to", to.String()))
	}

	r.mu.Lock()
	listeners := make([]StateChangeListener, len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	for _, l := range listeners {
		func() {
			defer func() { _ = recover() }()
			l.OnStateChange(name, from, to)
		}()
	}
}
