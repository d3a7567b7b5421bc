// Package compliance evaluates transfers against legal/regulatory regimes.
// Regimes are independent of one another and advisory at check time: the
// engine records failures, it never aborts the pipeline. Enforcement is the
// business of next-step guidance and downstream consumers.
package compliance

import (
	"context"
	"time"

	"provenia/internal/transfer/models"
	id "provenia/pkg/domain"
)

// Rule evaluates one regime for one request. Implementations must be pure
// with respect to the request; evidence strings name what was consulted.
type Rule func(ctx context.Context, req *models.TransferRequest, actor id.PartyID) models.ComplianceCheck

// Engine runs regime rules. Unknown regimes come back pending rather than
// failing, so a new regime can be requested before its rule ships.
type Engine struct {
	rules map[models.ComplianceRegime]Rule
	clock func() time.Time
}

// Option configures the Engine.
type Option func(*Engine)

// WithRule registers or replaces the rule for a regime.
func WithRule(regime models.ComplianceRegime, rule Rule) Option {
	return func(e *Engine) { e.rules[regime] = rule }
}

// WithClock sets the clock function for testability.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// NewEngine constructs an engine with the default rule set.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{rules: defaultRules(), clock: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Check evaluates a single regime.
func (e *Engine) Check(ctx context.Context, regime models.ComplianceRegime, req *models.TransferRequest, actor id.PartyID) models.ComplianceCheck {
	rule, ok := e.rules[regime]
	if !ok {
		return models.ComplianceCheck{
			Regime:    regime,
			Status:    models.CompliancePending,
			Details:   "no rule registered for regime; manual review required",
			CheckedAt: e.clock().UTC(),
		}
	}
	check := rule(ctx, req, actor)
	check.Regime = regime
	if check.CheckedAt.IsZero() {
		check.CheckedAt = e.clock().UTC()
	}
	return check
}

// CheckAll evaluates every requested regime in request order. The returned
// slice always has exactly one entry per requested regime.
func (e *Engine) CheckAll(ctx context.Context, req *models.TransferRequest, actor id.PartyID) []models.ComplianceCheck {
	checks := make([]models.ComplianceCheck, 0, len(req.Compliance))
	for _, regime := range req.Compliance {
		checks = append(checks, e.Check(ctx, regime, req, actor))
	}
	return checks
}
