// Package circuit provides a minimal circuit breaker for outbound
// dependencies. The breaker only tracks state; callers decide what the
// fallback path is.
package circuit

import "sync"

// State is the breaker position.
type State string

const (
	StateClosed State = "closed"
	StateOpen   State = "open"
)

// StateChange reports a transition caused by a recorded outcome. At most one
// field is set.
type StateChange struct {
	Opened bool
	Closed bool
}

// Breaker counts consecutive failures and successes. It opens after
// failureThreshold consecutive failures and closes again after
// successThreshold consecutive successes.
type Breaker struct {
	name             string
	failureThreshold int
	successThreshold int

	mu        sync.Mutex
	state     State
	failures  int
	successes int
}

// Option configures a Breaker.
type Option func(*Breaker)

// WithFailureThreshold sets how many consecutive failures open the circuit.
func WithFailureThreshold(n int) Option {
	return func(b *Breaker) {
		if n > 0 {
			b.failureThreshold = n
		}
	}
}

// WithSuccessThreshold sets how many consecutive successes close the circuit.
func WithSuccessThreshold(n int) Option {
	return func(b *Breaker) {
		if n > 0 {
			b.successThreshold = n
		}
	}
}

// New creates a closed breaker.
func New(name string, opts ...Option) *Breaker {
	b := &Breaker{
		name:             name,
		failureThreshold: 5,
		successThreshold: 1,
		state:            StateClosed,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the breaker's name.
func (b *Breaker) Name() string { return b.name }

// State returns the current position.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// IsOpen reports whether callers should take the fallback path.
func (b *Breaker) IsOpen() bool {
	return b.State() == StateOpen
}

// RecordFailure records one failed call. It returns whether the caller
// should use the fallback, and any state transition this outcome caused.
func (b *Breaker) RecordFailure() (useFallback bool, change StateChange) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.successes = 0
	if b.state == StateOpen {
		return true, StateChange{}
	}

	b.failures++
	if b.failures >= b.failureThreshold {
		b.state = StateOpen
		b.failures = 0
		return true, StateChange{Opened: true}
	}
	return false, StateChange{}
}

// RecordSuccess records one successful call. It returns whether the caller
// should use (or resume using) the primary path, and any state transition.
func (b *Breaker) RecordSuccess() (usePrimary bool, change StateChange) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures = 0
	if b.state == StateClosed {
		return true, StateChange{}
	}

	b.successes++
	if b.successes >= b.successThreshold {
		b.state = StateClosed
		b.successes = 0
		return true, StateChange{Closed: true}
	}
	return false, StateChange{}
}

// Reset forces the breaker closed and clears all counters.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = StateClosed
	b.failures = 0
	b.successes = 0
}
