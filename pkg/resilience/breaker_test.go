package resilience

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func failing() (interface{}, error) { return nil, errBoom }

func TestRegistry_OpensAfterConsecutiveFailures(t *testing.T) {
	r := NewRegistry(BreakerConfig{FailMax: 3, ResetTimeout: time.Minute}, nil)

	for i := 0; i < 2; i++ {
		_, err := r.Execute("gemini", failing)
		require.ErrorIs(t, err, errBoom)
		assert.Equal(t, gobreaker.StateClosed, r.State("gemini"))
	}

	_, err := r.Execute("gemini", failing)
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, gobreaker.StateOpen, r.State("gemini"))

	// Open breaker rejects without invoking the function.
	called := false
	_, err = r.Execute("gemini", func() (interface{}, error) {
		called = true
		return nil, nil
	})
	assert.ErrorIs(t, err, ErrBreakerOpen)
	assert.False(t, called)
}

func TestRegistry_SuccessResetsFailureStreak(t *testing.T) {
	r := NewRegistry(BreakerConfig{FailMax: 3, ResetTimeout: time.Minute}, nil)

	_, _ = r.Execute("umls", failing)
	_, _ = r.Execute("umls", failing)
	_, err := r.Execute("umls", func() (interface{}, error) { return "ok", nil })
	require.NoError(t, err)

	// Two more failures must not trip: the streak restarted.
	_, _ = r.Execute("umls", failing)
	_, _ = r.Execute("umls", failing)
	assert.Equal(t, gobreaker.StateClosed, r.State("umls"))
}

func TestRegistry_HalfOpenProbeClosesOnSuccess(t *testing.T) {
	r := NewRegistry(BreakerConfig{FailMax: 1, ResetTimeout: 20 * time.Millisecond}, nil)

	_, _ = r.Execute("gcs", failing)
	require.Equal(t, gobreaker.StateOpen, r.State("gcs"))

	time.Sleep(30 * time.Millisecond)

	_, err := r.Execute("gcs", func() (interface{}, error) { return nil, nil })
	require.NoError(t, err)
	assert.Equal(t, gobreaker.StateClosed, r.State("gcs"))
}

func TestRegistry_BreakersAreIndependent(t *testing.T) {
	r := NewRegistry(BreakerConfig{FailMax: 1, ResetTimeout: time.Minute}, nil)

	_, _ = r.Execute("rxnorm", failing)
	require.Equal(t, gobreaker.StateOpen, r.State("rxnorm"))

	_, err := r.Execute("loinc", func() (interface{}, error) { return nil, nil })
	assert.NoError(t, err)
	assert.Equal(t, []string{"rxnorm"}, r.OpenBreakers())
}

func TestRegistry_OpenBreakersDuringResetTransition(t *testing.T) {
	r := NewRegistry(BreakerConfig{FailMax: 1, ResetTimeout: 10 * time.Millisecond}, nil)
	r.AddListener(&recordingListener{})

	_, _ = r.Execute("gemini", failing)
	require.Equal(t, []string{"gemini"}, r.OpenBreakers())

	time.Sleep(20 * time.Millisecond)

	// The query itself fires the open to half-open transition, which
	// notifies listeners; the notify path takes the registry lock.
	done := make(chan []string, 1)
	go func() { done <- r.OpenBreakers() }()
	select {
	case open := <-done:
		assert.Empty(t, open)
	case <-time.After(time.Second):
		t.Fatal("OpenBreakers did not return")
	}
}

type recordingListener struct {
	mu          sync.Mutex
	transitions []string
}

func (l *recordingListener) OnStateChange(name string, from, to gobreaker.State) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.transitions = append(l.transitions, name+":"+from.String()+"->"+to.String())
}

type panickyListener struct{}

func (panickyListener) OnStateChange(string, gobreaker.State, gobreaker.State) {
	panic("listener bug")
}

func TestRegistry_ListenerPanicDoesNotPropagate(t *testing.T) {
	r := NewRegistry(BreakerConfig{FailMax: 1, ResetTimeout: time.Minute}, nil)
	rec := &recordingListener{}
	r.AddListener(panickyListener{})
	r.AddListener(rec)

	require.NotPanics(t, func() {
		_, _ = r.Execute("gemini", failing)
	})

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, []string{"gemini:closed->open"}, rec.transitions)
}
