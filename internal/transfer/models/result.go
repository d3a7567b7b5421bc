package models

import (
	"time"

	"provenia/internal/ledger"
	id "provenia/pkg/domain"
	"provenia/pkg/platform/audit"
)

// ComplianceStatus is the outcome of evaluating one regime.
type ComplianceStatus string

const (
	CompliancePassed  ComplianceStatus = "passed"
	ComplianceFailed  ComplianceStatus = "failed"
	CompliancePending ComplianceStatus = "pending"
	ComplianceExempt  ComplianceStatus = "exempt"
)

// ComplianceCheck is the recorded outcome of one regime evaluation.
// Failures are surfaced in the result and next-step guidance, never thrown.
type ComplianceCheck struct {
	Regime    ComplianceRegime `json:"regime"`
	Status    ComplianceStatus `json:"status"`
	Details   string           `json:"details,omitempty"`
	Evidence  []string         `json:"evidence,omitempty"`
	CheckedAt time.Time        `json:"checked_at"`
}

// Certificate is a signed proof-of-transfer document. Token carries the
// signed JWT; SettlementHash dereferences the certificate to its settlement
// proof on the ledger.
type Certificate struct {
	ID             string          `json:"id"`
	Type           CertificateType `json:"type"`
	TransferID     id.TransferID   `json:"transfer_id"`
	AssetID        id.AssetID      `json:"asset_id"`
	SettlementHash string          `json:"settlement_hash"`
	Token          string          `json:"token"`
	IssuedAt       time.Time       `json:"issued_at"`
	ExpiresAt      time.Time       `json:"expires_at"`
}

// EscrowStatus tracks the lifecycle of an escrow hold.
type EscrowStatus string

const (
	EscrowHeld     EscrowStatus = "held"
	EscrowReleased EscrowStatus = "released"
	EscrowRefunded EscrowStatus = "refunded"
	EscrowDisputed EscrowStatus = "disputed"
)

// EscrowDetails describes a conditional hold of funds pending release.
type EscrowDetails struct {
	ID                string        `json:"id"`
	TransferID        id.TransferID `json:"transfer_id"`
	Amount            int64         `json:"amount"`
	Currency          string        `json:"currency"`
	BuyerParty        id.PartyID    `json:"buyer_party"`
	SellerParty       id.PartyID    `json:"seller_party"`
	ReleaseConditions []string      `json:"release_conditions"`
	Status            EscrowStatus  `json:"status"`
	ExpiresAt         time.Time     `json:"expires_at"`
}

// InsurancePolicy describes coverage tied to the transferred asset.
type InsurancePolicy struct {
	ID             string        `json:"id"`
	TransferID     id.TransferID `json:"transfer_id"`
	AssetID        id.AssetID    `json:"asset_id"`
	CoverageAmount int64         `json:"coverage_amount"`
	Currency       string        `json:"currency"`
	Premium        int64         `json:"premium"`
	StartsAt       time.Time     `json:"starts_at"`
	ExpiresAt      time.Time     `json:"expires_at"`
}

// LegalDocument is one piece of jurisdiction-aware paperwork generated for a
// transfer. Content templating is out of scope; Reference points at the
// rendered artifact.
type LegalDocument struct {
	ID           string        `json:"id"`
	TransferID   id.TransferID `json:"transfer_id"`
	Kind         string        `json:"kind"`
	Jurisdiction string        `json:"jurisdiction"`
	Reference    string        `json:"reference"`
	GeneratedAt  time.Time     `json:"generated_at"`
}

// NotificationOutcome records one delivery attempt. Channel failures are
// non-fatal and always recorded, never dropped.
type NotificationOutcome struct {
	Channel     NotificationChannel `json:"channel"`
	Delivered   bool                `json:"delivered"`
	Detail      string              `json:"detail,omitempty"`
	AttemptedAt time.Time           `json:"attempted_at"`
}

// TransferResult is the aggregate output of one transfer execution. Callers
// receive either this or a single typed error naming the first fatal stage.
type TransferResult struct {
	Success    bool          `json:"success"`
	TransferID id.TransferID `json:"transfer_id"`
	RiskScore  int           `json:"risk_score"`

	Settlement   *ledger.SettlementRecord `json:"settlement,omitempty"`
	Certificates []Certificate            `json:"certificates"`

	Notifications    []NotificationOutcome `json:"notifications"`
	ComplianceChecks []ComplianceCheck     `json:"compliance_checks"`

	Escrow         *EscrowDetails   `json:"escrow,omitempty"`
	Insurance      *InsurancePolicy `json:"insurance,omitempty"`
	LegalDocuments []LegalDocument  `json:"legal_documents,omitempty"`

	AuditTrail []audit.Event `json:"audit_trail"`

	// Warnings records non-fatal post-settlement failures (escrow,
	// insurance, paperwork) that degraded the result to partial success.
	Warnings []string `json:"warnings,omitempty"`

	NextSteps           []string  `json:"next_steps"`
	EstimatedCompletion time.Time `json:"estimated_completion"`
}
