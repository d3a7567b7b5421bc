package audit

import (
	"time"

	id "provenia/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose.
// This enables different retention policies, storage backends, and routing.
type EventCategory string

const (
	// CategoryCompliance covers events with legal/regulatory significance.
	// These require tamper-proof storage and long retention (e.g., 7 years).
	// Examples: transfer outcomes, settlement records, compliance decisions.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers events relevant to security monitoring and forensics.
	// Examples: verification failures, ownership mismatches.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers events useful for debugging and operational visibility.
	// These can be sampled or aggregated with shorter retention.
	// Examples: certificate issuance, notification dispatch.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from the transfer pipeline to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category   EventCategory
	Timestamp  time.Time
	TransferID id.TransferID
	AssetID    id.AssetID
	// ActorID tracks who initiated the action. Always explicit; there is no
	// ambient current-user lookup anywhere in the engine.
	ActorID id.PartyID
	Action  string
	Details string
	// RiskScore carries the computed risk at emission time. Failed transfers
	// are recorded with the score overridden to 100.
	RiskScore int
	// RequestID is the correlation ID from HTTP request context.
	RequestID string
}

type AuditEvent string

const (
	// Lifecycle events
	EventTransferInitiated AuditEvent = "transfer_initiated"
	EventTransferSucceeded AuditEvent = "transfer_succeeded"
	EventTransferFailed    AuditEvent = "transfer_failed"

	// Stage events
	EventOwnershipVerified    AuditEvent = "ownership_verified"
	EventRecipientValidated   AuditEvent = "recipient_validated"
	EventComplianceChecked    AuditEvent = "compliance_checked"
	EventVerificationPassed   AuditEvent = "verification_passed"
	EventVerificationFailed   AuditEvent = "verification_failed"
	EventSettlementRecorded   AuditEvent = "settlement_recorded"
	EventCertificateIssued    AuditEvent = "certificate_issued"
	EventEscrowProvisioned    AuditEvent = "escrow_provisioned"
	EventInsuranceProvisioned AuditEvent = "insurance_provisioned"
	EventDocumentsGenerated   AuditEvent = "documents_generated"
	EventNotificationSent     AuditEvent = "notification_sent"
	EventNotificationFailed   AuditEvent = "notification_failed"
)

// eventCategories maps each audit event to its category.
// Compliance: legal/regulatory significance, long retention required.
// Security: security monitoring, SIEM integration, alerting.
// Operations: debugging, operational visibility, can be sampled.
var eventCategories = map[AuditEvent]EventCategory{
	// Compliance events - the legally significant trail of a transfer
	EventTransferInitiated:  CategoryCompliance,
	EventTransferSucceeded:  CategoryCompliance,
	EventTransferFailed:     CategoryCompliance,
	EventSettlementRecorded: CategoryCompliance,
	EventComplianceChecked:  CategoryCompliance,

	// Security events - feed into SIEM and alerting
	EventVerificationFailed: CategorySecurity,
	EventVerificationPassed: CategorySecurity,

	// Operations events - routine activity, can be sampled
	EventOwnershipVerified:    CategoryOperations,
	EventRecipientValidated:   CategoryOperations,
	EventCertificateIssued:    CategoryOperations,
	EventEscrowProvisioned:    CategoryOperations,
	EventInsuranceProvisioned: CategoryOperations,
	EventDocumentsGenerated:   CategoryOperations,
	EventNotificationSent:     CategoryOperations,
	EventNotificationFailed:   CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}
