package service

import (
	"provenia/internal/transfer/models"
)

// highRiskCategories add a flat penalty: transfers arising from death,
// divorce, or state action attract disputes and fraud at a much higher rate
// than voluntary commerce.
var highRiskCategories = map[models.Category]bool{
	models.CategoryInheritance:       true,
	models.CategoryDivorceSettlement: true,
	models.CategoryLegalSeizure:      true,
}

// DefaultLevelPenalties is the security-level risk table. It is fully
// enumerated on purpose: the upstream scoring rules only ever defined
// penalties for the first five tiers, and whether government/military were
// meant to score zero or were simply never specified is unresolved. Keeping
// every tier present (with explicit zeros) makes the gap visible and lets
// deployments override it without code changes.
var DefaultLevelPenalties = map[models.SecurityLevel]int{
	models.SecurityBasic:      20,
	models.SecurityStandard:   15,
	models.SecurityEnhanced:   10,
	models.SecurityPremium:    5,
	models.SecurityEnterprise: 0,
	models.SecurityGovernment: 0,
	models.SecurityMilitary:   0,
}

// riskAmountThreshold is the declared-amount value above which a transfer
// picks up the high-value penalty. Unit-agnostic: compared against the raw
// amount in the request's own currency.
const riskAmountThreshold = 10_000

const (
	categoryPenalty  = 30
	highValuePenalty = 20
)

// RiskScorer computes a deterministic 0-100 risk score from transfer
// attributes. Pure: same request, same score.
type RiskScorer struct {
	levelPenalties map[models.SecurityLevel]int
}

// NewRiskScorer builds a scorer with the given security-level table; nil
// selects DefaultLevelPenalties.
func NewRiskScorer(levelPenalties map[models.SecurityLevel]int) *RiskScorer {
	if levelPenalties == nil {
		levelPenalties = DefaultLevelPenalties
	}
	return &RiskScorer{levelPenalties: levelPenalties}
}

// Score computes the risk score for a request, clamped to [0, 100].
func (s *RiskScorer) Score(req *models.TransferRequest) int {
	score := 0
	if highRiskCategories[req.Category] {
		score += categoryPenalty
	}
	score += s.levelPenalties[req.SecurityLevel]
	if req.Amount != nil && *req.Amount > riskAmountThreshold {
		score += highValuePenalty
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
