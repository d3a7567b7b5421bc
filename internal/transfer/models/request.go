package models

import (
	id "provenia/pkg/domain"
	dErrors "provenia/pkg/domain-errors"
)

// Metadata carries the descriptive block attached to a transfer request.
// It is informational except where category precondition rules consult it
// (e.g. inheritance requires notarization or supporting documents).
type Metadata struct {
	Condition           string   `json:"condition,omitempty"`
	Location            string   `json:"location,omitempty"`
	Reason              string   `json:"reason,omitempty"`
	Witnesses           []string `json:"witnesses,omitempty"`
	Documents           []string `json:"documents,omitempty"`
	Notarized           bool     `json:"notarized"`
	TaxImplications     string   `json:"tax_implications,omitempty"`
	CustomsImplications string   `json:"customs_implications,omitempty"`
	WarrantyCarryOver   bool     `json:"warranty_carry_over"`
	InsuranceCarryOver  bool     `json:"insurance_carry_over"`
	LicenseCarryOver    bool     `json:"license_carry_over"`
	DataHandlingPolicy  string   `json:"data_handling_policy,omitempty"`
	Jurisdiction        string   `json:"jurisdiction,omitempty"`
}

// TransferRequest is the single structured input to the transfer engine.
// Immutable once submitted; the orchestrator never writes to it.
type TransferRequest struct {
	AssetID   id.AssetID `json:"asset_id"`
	FromParty id.PartyID `json:"from_party"`
	ToParty   id.PartyID `json:"to_party"`

	Category    Category `json:"category"`
	Amount      *int64   `json:"amount,omitempty"` // minor units, same currency as Currency
	Currency    string   `json:"currency,omitempty"`
	Description string   `json:"description,omitempty"`
	Metadata    Metadata `json:"metadata"`

	SecurityLevel        SecurityLevel         `json:"security_level"`
	VerificationMethods  []VerificationMethod  `json:"verification_methods"`
	CertificateTypes     []CertificateType     `json:"certificate_types"`
	NotificationChannels []NotificationChannel `json:"notification_channels"`
	Network              Network               `json:"network"`
	EscrowEnabled        bool                  `json:"escrow_enabled"`
	InsuranceEnabled     bool                  `json:"insurance_enabled"`
	Compliance           []ComplianceRegime    `json:"compliance"`
}

// Validate enforces the structural invariants of a request. Category and
// security-level preconditions are checked separately by the orchestrator's
// pluggable rules.
func (r *TransferRequest) Validate() error {
	if r.AssetID == "" {
		return dErrors.New(dErrors.CodeValidation, "asset id is required")
	}
	if r.FromParty.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "initiating party is required")
	}
	if r.ToParty.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "receiving party is required")
	}
	if !r.Category.Valid() {
		return dErrors.Newf(dErrors.CodeValidation, "unknown transfer category %q", r.Category)
	}
	if !r.SecurityLevel.Valid() {
		return dErrors.Newf(dErrors.CodeValidation, "unknown security level %q", r.SecurityLevel)
	}
	if len(r.VerificationMethods) == 0 {
		return dErrors.New(dErrors.CodeValidation, "at least one verification method is required")
	}
	if r.Amount != nil && *r.Amount < 0 {
		return dErrors.New(dErrors.CodeValidation, "amount must not be negative")
	}
	if r.Amount != nil && r.Currency == "" {
		return dErrors.New(dErrors.CodeValidation, "currency is required when amount is set")
	}
	if r.Network == "" {
		return dErrors.New(dErrors.CodeValidation, "target ledger network is required")
	}
	return nil
}
