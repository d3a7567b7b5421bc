package verify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"provenia/internal/transfer/models"
	id "provenia/pkg/domain"
	dErrors "provenia/pkg/domain-errors"
	"provenia/pkg/platform/circuit"
)

// VerificationError reports which verification method failed. The pipeline
// treats all requested methods as mandatory, so the first failure aborts the
// transfer before any settlement side effect.
type VerificationError struct {
	Method models.VerificationMethod
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("verification failed for method %s", e.Method)
}

// MethodChecker runs one identity-verification method against a party.
// A false result with a nil error is a clean failure of the method itself;
// a non-nil error means the method could not be evaluated at all.
type MethodChecker interface {
	Check(ctx context.Context, method models.VerificationMethod, party id.PartyID) (bool, error)
}

// CheckerFunc adapts a function to the MethodChecker interface.
type CheckerFunc func(ctx context.Context, method models.VerificationMethod, party id.PartyID) (bool, error)

func (f CheckerFunc) Check(ctx context.Context, method models.VerificationMethod, party id.PartyID) (bool, error) {
	return f(ctx, method, party)
}

// StaticChecker approves every method. It stands in for real OTP, biometric,
// or notarization integrations in dev runs; production wiring swaps in a
// checker per method.
func StaticChecker() MethodChecker {
	return CheckerFunc(func(context.Context, models.VerificationMethod, id.PartyID) (bool, error) {
		return true, nil
	})
}

// BreakerChecker wraps a MethodChecker with a circuit breaker. While the
// circuit is open, checks fail fast with CodeUnavailable instead of calling
// the underlying provider; after the cooldown one call at a time is let
// through to probe for recovery.
type BreakerChecker struct {
	inner    MethodChecker
	breaker  *circuit.Breaker
	cooldown time.Duration
	clock    func() time.Time

	mu       sync.Mutex
	openedAt time.Time
}

func NewBreakerChecker(inner MethodChecker, breaker *circuit.Breaker, cooldown time.Duration) *BreakerChecker {
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}
	return &BreakerChecker{inner: inner, breaker: breaker, cooldown: cooldown, clock: time.Now}
}

func (c *BreakerChecker) Check(ctx context.Context, method models.VerificationMethod, party id.PartyID) (bool, error) {
	if c.breaker.IsOpen() && !c.probeDue() {
		return false, dErrors.Newf(dErrors.CodeUnavailable, "verification provider %s circuit open", c.breaker.Name())
	}

	ok, err := c.inner.Check(ctx, method, party)
	if err != nil {
		if useFallback, _ := c.breaker.RecordFailure(); useFallback {
			c.markOpened()
		}
		return false, err
	}
	// A clean method failure is a verdict, not a provider outage.
	c.breaker.RecordSuccess()
	return ok, nil
}

func (c *BreakerChecker) probeDue() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.clock().Sub(c.openedAt) < c.cooldown {
		return false
	}
	// Claim the probe slot so concurrent callers keep failing fast.
	c.openedAt = c.clock()
	return true
}

func (c *BreakerChecker) markOpened() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.openedAt = c.clock()
}

// SecurityVerifier runs requested verification methods with AND semantics.
type SecurityVerifier struct {
	checker MethodChecker
}

func NewSecurityVerifier(checker MethodChecker) *SecurityVerifier {
	return &SecurityVerifier{checker: checker}
}

// VerifyAll runs every method in order and returns a VerificationError naming
// the first method that fails.
func (v *SecurityVerifier) VerifyAll(ctx context.Context, party id.PartyID, methods []models.VerificationMethod) error {
	for _, method := range methods {
		ok, err := v.checker.Check(ctx, method, party)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeUnavailable, fmt.Sprintf("verification method %s unavailable", method))
		}
		if !ok {
			return &VerificationError{Method: method}
		}
	}
	return nil
}
