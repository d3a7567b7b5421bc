package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	id "provenia/pkg/domain"
	dErrors "provenia/pkg/domain-errors"
	"provenia/pkg/platform/audit"
	"provenia/pkg/requestcontext"

	"provenia/internal/ledger"
	"provenia/internal/notification"
	"provenia/internal/transfer/metrics"
	"provenia/internal/transfer/models"
	"provenia/internal/verify"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// OwnershipChecker confirms the initiating party currently holds the asset.
type OwnershipChecker interface {
	VerifyOwnership(ctx context.Context, assetID id.AssetID, claimant id.PartyID) error
}

// RecipientChecker confirms the receiving party exists and may receive.
type RecipientChecker interface {
	ValidateRecipient(ctx context.Context, from, to id.PartyID) error
}

// SecurityChecker runs the requested verification methods. All must pass.
type SecurityChecker interface {
	VerifyAll(ctx context.Context, party id.PartyID, methods []models.VerificationMethod) error
}

// ComplianceChecker evaluates every requested regime. Advisory: outcomes are
// recorded, never fatal.
type ComplianceChecker interface {
	CheckAll(ctx context.Context, req *models.TransferRequest, actor id.PartyID) []models.ComplianceCheck
}

// Settler records the ownership change on the ledger. The point of no return.
type Settler interface {
	Settle(ctx context.Context, transferID id.TransferID, assetID id.AssetID, from, to id.PartyID, network string) (*ledger.SettlementRecord, error)
}

// CertificateIssuer mints signed certificates referencing a settlement.
type CertificateIssuer interface {
	Issue(transferID id.TransferID, assetID id.AssetID, certType models.CertificateType, settlement *ledger.SettlementRecord) (models.Certificate, error)
}

// EscrowProvisioner opens a conditional hold for transfers that request one.
type EscrowProvisioner interface {
	Provision(transferID id.TransferID, req *models.TransferRequest) (*models.EscrowDetails, error)
}

// InsuranceProvisioner binds coverage for transfers that request it.
type InsuranceProvisioner interface {
	Provision(transferID id.TransferID, req *models.TransferRequest) (*models.InsurancePolicy, error)
}

// DocumentGenerator produces the jurisdiction-aware paperwork for a transfer.
type DocumentGenerator interface {
	Generate(transferID id.TransferID, req *models.TransferRequest) ([]models.LegalDocument, error)
}

// Notifier fans a message out over the requested channels, recording every
// outcome.
type Notifier interface {
	Dispatch(ctx context.Context, channels []models.NotificationChannel, msg notification.Message) []models.NotificationOutcome
}

// AuditPublisher records pipeline events and replays a transfer's trail.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
	List(ctx context.Context, transferID id.TransferID) ([]audit.Event, error)
}

// Dependencies collects the collaborators every transfer execution needs.
// All fields are required.
type Dependencies struct {
	Ownership    OwnershipChecker
	Recipient    RecipientChecker
	Security     SecurityChecker
	Compliance   ComplianceChecker
	Settler      Settler
	Certificates CertificateIssuer
	Escrow       EscrowProvisioner
	Insurance    InsuranceProvisioner
	Documents    DocumentGenerator
	Notifier     Notifier
	Audit        AuditPublisher
}

func (d Dependencies) validate() error {
	missing := map[string]bool{
		"ownership":    d.Ownership == nil,
		"recipient":    d.Recipient == nil,
		"security":     d.Security == nil,
		"compliance":   d.Compliance == nil,
		"settler":      d.Settler == nil,
		"certificates": d.Certificates == nil,
		"escrow":       d.Escrow == nil,
		"insurance":    d.Insurance == nil,
		"documents":    d.Documents == nil,
		"notifier":     d.Notifier == nil,
		"audit":        d.Audit == nil,
	}
	for name, absent := range missing {
		if absent {
			return fmt.Errorf("transfer service: %s dependency is required", name)
		}
	}
	return nil
}

// Service orchestrates the transfer pipeline. It owns stage ordering and the
// fatal/non-fatal boundary; all domain work lives in the collaborators.
type Service struct {
	deps    Dependencies
	scorer  *RiskScorer
	rules   []PreconditionRule
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	clock   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithRiskScorer replaces the default risk scorer.
func WithRiskScorer(scorer *RiskScorer) Option {
	return func(s *Service) {
		if scorer != nil {
			s.scorer = scorer
		}
	}
}

// WithPreconditionRules replaces the default precondition rule set.
func WithPreconditionRules(rules []PreconditionRule) Option {
	return func(s *Service) {
		s.rules = rules
	}
}

// WithClock sets the clock function for testability.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewService constructs the orchestrator. All dependencies are required.
func NewService(deps Dependencies, opts ...Option) (*Service, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	s := &Service{
		deps:   deps,
		scorer: NewRiskScorer(nil),
		rules:  DefaultPreconditionRules(),
		logger: slog.Default(),
		tracer: otel.Tracer("provenia/transfer"),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Execute runs the full transfer pipeline for one request. On any failure
// before settlement the transfer aborts with a typed error and nothing is
// recorded on the ledger. After settlement only a certificate failure is
// fatal; escrow, insurance, and paperwork failures degrade the result to
// partial success with warnings, and notification failures are recorded per
// channel.
func (s *Service) Execute(ctx context.Context, actor id.PartyID, req *models.TransferRequest) (*models.TransferResult, error) {
	start := s.clock()
	if s.metrics != nil {
		defer s.metrics.ObserveExecute(start)
	}

	ctx, span := s.tracer.Start(ctx, "transfer.execute", trace.WithAttributes(
		attribute.String("transfer.category", string(req.Category)),
		attribute.String("transfer.security_level", string(req.SecurityLevel)),
		attribute.String("transfer.asset_id", string(req.AssetID)),
	))
	defer span.End()

	// Stages 1-2: mint the transfer ID, score the request, and open the
	// audit trail. Every later failure leaves a trail entry keyed by this ID.
	transferID := id.NewTransferID(s.clock())
	riskScore := s.scorer.Score(req)
	if s.metrics != nil {
		s.metrics.ObserveRiskScore(riskScore)
	}
	span.SetAttributes(
		attribute.String("transfer.id", string(transferID)),
		attribute.Int("transfer.risk_score", riskScore),
	)
	logger := s.logger.With(
		slog.String("transfer_id", string(transferID)),
		slog.String("asset_id", string(req.AssetID)),
		slog.String("category", string(req.Category)),
	)
	logger.InfoContext(ctx, "transfer initiated", slog.Int("risk_score", riskScore))

	s.record(ctx, transferID, req, actor, riskScore, audit.EventTransferInitiated,
		fmt.Sprintf("category=%s security_level=%s", req.Category, req.SecurityLevel))

	// Stage 3: structural validation and category/level preconditions.
	if err := req.Validate(); err != nil {
		return nil, s.fail(ctx, span, transferID, req, actor, "validation", err)
	}
	for _, rule := range s.rules {
		if err := rule(req); err != nil {
			return nil, s.fail(ctx, span, transferID, req, actor, "precondition", err)
		}
	}

	// Stage 4: the initiating party must currently hold the asset.
	if err := s.deps.Ownership.VerifyOwnership(ctx, req.AssetID, req.FromParty); err != nil {
		return nil, s.fail(ctx, span, transferID, req, actor, "ownership", err)
	}
	s.record(ctx, transferID, req, actor, riskScore, audit.EventOwnershipVerified, "")

	// Stage 5: the receiving party must exist, be active, and differ from
	// the sender.
	if err := s.deps.Recipient.ValidateRecipient(ctx, req.FromParty, req.ToParty); err != nil {
		return nil, s.fail(ctx, span, transferID, req, actor, "recipient", err)
	}
	s.record(ctx, transferID, req, actor, riskScore, audit.EventRecipientValidated, "")

	// Stage 6: compliance is advisory. Every requested regime is evaluated
	// and recorded; failures surface in the result and next steps.
	checks := s.deps.Compliance.CheckAll(ctx, req, actor)
	s.record(ctx, transferID, req, actor, riskScore, audit.EventComplianceChecked, complianceSummary(checks))

	// Stage 7: all requested verification methods must pass.
	if err := s.deps.Security.VerifyAll(ctx, req.FromParty, req.VerificationMethods); err != nil {
		var verr *verify.VerificationError
		if errors.As(err, &verr) {
			s.record(ctx, transferID, req, actor, riskScore, audit.EventVerificationFailed,
				fmt.Sprintf("method=%s", verr.Method))
		}
		return nil, s.fail(ctx, span, transferID, req, actor, "verification", err)
	}
	s.record(ctx, transferID, req, actor, riskScore, audit.EventVerificationPassed,
		fmt.Sprintf("methods=%d", len(req.VerificationMethods)))

	// Stage 8: settlement. Past this point the ownership change is on the
	// ledger and the failure model switches to partial success.
	settlement, err := s.deps.Settler.Settle(ctx, transferID, req.AssetID, req.FromParty, req.ToParty, string(req.Network))
	if err != nil {
		return nil, s.fail(ctx, span, transferID, req, actor, "settlement", err)
	}
	s.record(ctx, transferID, req, actor, riskScore, audit.EventSettlementRecorded,
		fmt.Sprintf("hash=%s block=%d", settlement.Hash, settlement.Block))
	logger.InfoContext(ctx, "settlement recorded",
		slog.String("settlement_hash", settlement.Hash),
		slog.Uint64("block", settlement.Block))

	result := &models.TransferResult{
		Success:             true,
		TransferID:          transferID,
		RiskScore:           riskScore,
		Settlement:          settlement,
		ComplianceChecks:    checks,
		NextSteps:           NextSteps(req, checks),
		EstimatedCompletion: EstimateCompletion(s.clock().UTC(), req.Category),
	}

	// Stage 9: certificates, one per requested type. A request that names
	// none gets none. An issuance failure stays fatal even though the ledger
	// has already moved: a certified transfer missing its certificates is an
	// inconsistency we refuse to return.
	certTypes := req.CertificateTypes
	certificates := make([]models.Certificate, len(certTypes))
	var g errgroup.Group
	for i, certType := range certTypes {
		g.Go(func() error {
			cert, err := s.deps.Certificates.Issue(transferID, req.AssetID, certType, settlement)
			if err != nil {
				return fmt.Errorf("issue %s certificate: %w", certType, err)
			}
			certificates[i] = cert
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, s.fail(ctx, span, transferID, req, actor, "certificates",
			dErrors.Wrap(err, dErrors.CodeInternal, "certificate issuance failed after settlement"))
	}
	result.Certificates = certificates
	s.record(ctx, transferID, req, actor, riskScore, audit.EventCertificateIssued,
		fmt.Sprintf("count=%d", len(certificates)))

	// Stages 10-12: optional provisions. Failures downgrade to partial
	// success; the settled transfer stands.
	if req.EscrowEnabled {
		escrow, err := s.deps.Escrow.Provision(transferID, req)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("escrow provisioning failed: %v", err))
			logger.WarnContext(ctx, "escrow provisioning failed", slog.Any("error", err))
		} else {
			result.Escrow = escrow
			s.record(ctx, transferID, req, actor, riskScore, audit.EventEscrowProvisioned,
				fmt.Sprintf("escrow_id=%s", escrow.ID))
		}
	}
	if req.InsuranceEnabled {
		policy, err := s.deps.Insurance.Provision(transferID, req)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("insurance provisioning failed: %v", err))
			logger.WarnContext(ctx, "insurance provisioning failed", slog.Any("error", err))
		} else {
			result.Insurance = policy
			s.record(ctx, transferID, req, actor, riskScore, audit.EventInsuranceProvisioned,
				fmt.Sprintf("policy_id=%s", policy.ID))
		}
	}
	docs, err := s.deps.Documents.Generate(transferID, req)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("legal document generation failed: %v", err))
		logger.WarnContext(ctx, "legal document generation failed", slog.Any("error", err))
	} else {
		result.LegalDocuments = docs
		s.record(ctx, transferID, req, actor, riskScore, audit.EventDocumentsGenerated,
			fmt.Sprintf("count=%d", len(docs)))
	}

	// Stage 13: notifications. Per-channel outcomes, never fatal.
	if len(req.NotificationChannels) > 0 {
		msg := notification.Message{
			TransferID: transferID,
			AssetID:    req.AssetID,
			FromParty:  req.FromParty,
			ToParty:    req.ToParty,
			Category:   req.Category,
			Summary:    fmt.Sprintf("ownership of %s transferred", req.AssetID),
		}
		result.Notifications = s.deps.Notifier.Dispatch(ctx, req.NotificationChannels, msg)
		for _, outcome := range result.Notifications {
			event := audit.EventNotificationSent
			if !outcome.Delivered {
				event = audit.EventNotificationFailed
			}
			s.record(ctx, transferID, req, actor, riskScore, event,
				fmt.Sprintf("channel=%s", outcome.Channel))
		}
	}

	// Stage 14: close out the trail and return.
	s.record(ctx, transferID, req, actor, riskScore, audit.EventTransferSucceeded, "")
	if trail, err := s.deps.Audit.List(ctx, transferID); err == nil {
		result.AuditTrail = trail
	} else {
		logger.WarnContext(ctx, "audit trail replay failed", slog.Any("error", err))
	}
	if s.metrics != nil {
		s.metrics.IncrementExecuted(string(req.Category))
	}
	logger.InfoContext(ctx, "transfer executed",
		slog.Bool("success", result.Success),
		slog.Int("certificates", len(result.Certificates)),
		slog.Int("warnings", len(result.Warnings)))
	return result, nil
}

// record emits one audit event. Emission failures are logged and swallowed;
// the publisher itself is fail-closed against its store, so a lost event here
// means the store is down and the surrounding stage will surface that.
func (s *Service) record(ctx context.Context, transferID id.TransferID, req *models.TransferRequest, actor id.PartyID, riskScore int, action audit.AuditEvent, details string) {
	event := audit.Event{
		TransferID: transferID,
		AssetID:    req.AssetID,
		ActorID:    actor,
		Action:     string(action),
		Details:    details,
		RiskScore:  riskScore,
		RequestID:  requestcontext.RequestID(ctx),
	}
	if err := s.deps.Audit.Emit(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "audit emit failed",
			slog.String("action", string(action)),
			slog.Any("error", err))
	}
}

// fail records the terminal failure event and returns the stage error. Failed
// transfers are audited with the risk score pinned to 100.
func (s *Service) fail(ctx context.Context, span trace.Span, transferID id.TransferID, req *models.TransferRequest, actor id.PartyID, stage string, err error) error {
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, stage)
	if s.metrics != nil {
		s.metrics.IncrementFailed(stage)
	}
	s.record(ctx, transferID, req, actor, 100, audit.EventTransferFailed,
		fmt.Sprintf("stage=%s reason=%v", stage, err))
	s.logger.WarnContext(ctx, "transfer failed",
		slog.String("transfer_id", string(transferID)),
		slog.String("stage", stage),
		slog.Any("error", err))
	return err
}

func complianceSummary(checks []models.ComplianceCheck) string {
	parts := make([]string, 0, len(checks))
	for _, check := range checks {
		parts = append(parts, fmt.Sprintf("%s=%s", check.Regime, check.Status))
	}
	return strings.Join(parts, " ")
}
