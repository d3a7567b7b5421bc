package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"provenia/internal/ledger"
	"provenia/internal/notification"
	"provenia/internal/transfer/models"
	"provenia/internal/transfer/service/mocks"
	"provenia/internal/verify"
	id "provenia/pkg/domain"
	dErrors "provenia/pkg/domain-errors"
	"provenia/pkg/platform/audit"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// stubs controls which pipeline stage fails. Stages after the first failing
// one get no expectations, so an unexpected call fails the test and proves
// the pipeline stopped.
type stubs struct {
	ownershipErr error
	recipientErr error
	securityErr  error
	settleErr    error
	certErr      error
	escrowErr    error
	insuranceErr error
	docsErr      error
	checks       []models.ComplianceCheck
	undelivered  map[models.NotificationChannel]string
}

type capture struct {
	events      []audit.Event
	settleCalls int
}

func (c *capture) actions() []string {
	actions := make([]string, 0, len(c.events))
	for _, e := range c.events {
		actions = append(actions, e.Action)
	}
	return actions
}

func (c *capture) find(action audit.AuditEvent) (audit.Event, bool) {
	for _, e := range c.events {
		if e.Action == string(action) {
			return e, true
		}
	}
	return audit.Event{}, false
}

func arrange(t *testing.T, st stubs) (*Service, *capture) {
	t.Helper()
	ctrl := gomock.NewController(t)
	cap := &capture{}

	ownership := mocks.NewMockOwnershipChecker(ctrl)
	recipient := mocks.NewMockRecipientChecker(ctrl)
	security := mocks.NewMockSecurityChecker(ctrl)
	compliance := mocks.NewMockComplianceChecker(ctrl)
	settler := mocks.NewMockSettler(ctrl)
	certificates := mocks.NewMockCertificateIssuer(ctrl)
	escrow := mocks.NewMockEscrowProvisioner(ctrl)
	insurance := mocks.NewMockInsuranceProvisioner(ctrl)
	documents := mocks.NewMockDocumentGenerator(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	auditor := mocks.NewMockAuditPublisher(ctrl)

	auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e audit.Event) error {
			cap.events = append(cap.events, e)
			return nil
		}).AnyTimes()
	auditor.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, id.TransferID) ([]audit.Event, error) {
			return append([]audit.Event(nil), cap.events...), nil
		}).AnyTimes()

	svc, err := NewService(Dependencies{
		Ownership:    ownership,
		Recipient:    recipient,
		Security:     security,
		Compliance:   compliance,
		Settler:      settler,
		Certificates: certificates,
		Escrow:       escrow,
		Insurance:    insurance,
		Documents:    documents,
		Notifier:     notifier,
		Audit:        auditor,
	}, WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)

	// Expectations follow pipeline order and stop at the first stubbed
	// failure.
	ownership.EXPECT().VerifyOwnership(gomock.Any(), gomock.Any(), gomock.Any()).Return(st.ownershipErr).AnyTimes()
	if st.ownershipErr != nil {
		return svc, cap
	}
	recipient.EXPECT().ValidateRecipient(gomock.Any(), gomock.Any(), gomock.Any()).Return(st.recipientErr).AnyTimes()
	if st.recipientErr != nil {
		return svc, cap
	}
	compliance.EXPECT().CheckAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, *models.TransferRequest, id.PartyID) []models.ComplianceCheck {
			if st.checks != nil {
				return st.checks
			}
			return []models.ComplianceCheck{{Regime: models.RegimeAML, Status: models.CompliancePassed, CheckedAt: testNow}}
		}).AnyTimes()
	security.EXPECT().VerifyAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(st.securityErr).AnyTimes()
	if st.securityErr != nil {
		return svc, cap
	}
	settler.EXPECT().Settle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ id.TransferID, assetID id.AssetID, from, to id.PartyID, network string) (*ledger.SettlementRecord, error) {
			if st.settleErr != nil {
				return nil, st.settleErr
			}
			cap.settleCalls++
			return &ledger.SettlementRecord{
				Hash:          "a1b2c3d4e5f6",
				AssetID:       assetID,
				From:          from,
				To:            to,
				Network:       network,
				Block:         42,
				Timestamp:     testNow,
				Confirmations: 12,
				Status:        ledger.StatusConfirmed,
			}, nil
		}).AnyTimes()
	if st.settleErr != nil {
		return svc, cap
	}
	certificates.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(transferID id.TransferID, assetID id.AssetID, certType models.CertificateType, settlement *ledger.SettlementRecord) (models.Certificate, error) {
			if st.certErr != nil {
				return models.Certificate{}, st.certErr
			}
			return models.Certificate{
				ID:             "CERT-" + string(certType),
				Type:           certType,
				TransferID:     transferID,
				AssetID:        assetID,
				SettlementHash: settlement.Hash,
				Token:          "signed-token",
				IssuedAt:       testNow,
			}, nil
		}).AnyTimes()
	if st.certErr != nil {
		return svc, cap
	}
	escrow.EXPECT().Provision(gomock.Any(), gomock.Any()).DoAndReturn(
		func(transferID id.TransferID, req *models.TransferRequest) (*models.EscrowDetails, error) {
			if st.escrowErr != nil {
				return nil, st.escrowErr
			}
			return &models.EscrowDetails{ID: "ESC-1", TransferID: transferID, Status: models.EscrowHeld}, nil
		}).AnyTimes()
	insurance.EXPECT().Provision(gomock.Any(), gomock.Any()).DoAndReturn(
		func(transferID id.TransferID, req *models.TransferRequest) (*models.InsurancePolicy, error) {
			if st.insuranceErr != nil {
				return nil, st.insuranceErr
			}
			return &models.InsurancePolicy{ID: "POL-1", TransferID: transferID}, nil
		}).AnyTimes()
	documents.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(transferID id.TransferID, req *models.TransferRequest) ([]models.LegalDocument, error) {
			if st.docsErr != nil {
				return nil, st.docsErr
			}
			return []models.LegalDocument{{ID: "DOC-1", TransferID: transferID, Kind: "bill_of_sale"}}, nil
		}).AnyTimes()
	notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, channels []models.NotificationChannel, _ notification.Message) []models.NotificationOutcome {
			outcomes := make([]models.NotificationOutcome, len(channels))
			for i, ch := range channels {
				detail, failed := st.undelivered[ch]
				outcomes[i] = models.NotificationOutcome{Channel: ch, Delivered: !failed, Detail: detail, AttemptedAt: testNow}
			}
			return outcomes
		}).AnyTimes()
	return svc, cap
}

func amount(v int64) *int64 { return &v }

func saleRequest() *models.TransferRequest {
	return &models.TransferRequest{
		AssetID:              id.AssetID("asset-watch-001"),
		FromParty:            id.PartyID(uuid.New()),
		ToParty:              id.PartyID(uuid.New()),
		Category:             models.CategorySale,
		Amount:               amount(15_000),
		Currency:             "USD",
		SecurityLevel:        models.SecurityStandard,
		VerificationMethods:  []models.VerificationMethod{models.MethodEmailOTP},
		NotificationChannels: []models.NotificationChannel{models.ChannelEmail},
		Network:              models.NetworkMainnet,
		CertificateTypes:     []models.CertificateType{models.CertOwnership, models.CertTransfer},
		EscrowEnabled:        true,
		InsuranceEnabled:     true,
		Compliance:           []models.ComplianceRegime{models.RegimeAML},
	}
}

func TestExecuteSettlesAndReturnsFullResult(t *testing.T) {
	svc, cap := arrange(t, stubs{})
	req := saleRequest()

	result, err := svc.Execute(context.Background(), req.FromParty, req)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Success)
	assert.NotEmpty(t, result.TransferID)
	assert.Equal(t, 35, result.RiskScore, "standard level (15) plus high value (20)")

	require.NotNil(t, result.Settlement)
	assert.Equal(t, "a1b2c3d4e5f6", result.Settlement.Hash)
	assert.Equal(t, ledger.StatusConfirmed, result.Settlement.Status)

	require.Len(t, result.Certificates, 2, "one certificate per requested type")
	for _, cert := range result.Certificates {
		assert.Equal(t, result.Settlement.Hash, cert.SettlementHash)
	}

	require.NotNil(t, result.Escrow)
	require.NotNil(t, result.Insurance)
	require.Len(t, result.LegalDocuments, 1)

	require.Len(t, result.Notifications, 1)
	assert.True(t, result.Notifications[0].Delivered)

	assert.Equal(t, testNow.Add(2*time.Hour), result.EstimatedCompletion)
	assert.Empty(t, result.Warnings)

	actions := cap.actions()
	require.NotEmpty(t, actions)
	assert.Equal(t, string(audit.EventTransferInitiated), actions[0])
	assert.Equal(t, string(audit.EventTransferSucceeded), actions[len(actions)-1])
	assert.Equal(t, cap.actions(), func() []string {
		out := make([]string, 0, len(result.AuditTrail))
		for _, e := range result.AuditTrail {
			out = append(out, e.Action)
		}
		return out
	}(), "result trail mirrors the emitted events")
}

func TestExecuteRequestedCertificateTypes(t *testing.T) {
	svc, _ := arrange(t, stubs{})
	req := saleRequest()
	req.CertificateTypes = []models.CertificateType{models.CertOwnership, models.CertAuthenticity, models.CertWarranty}

	result, err := svc.Execute(context.Background(), req.FromParty, req)
	require.NoError(t, err)

	require.Len(t, result.Certificates, 3, "one certificate per requested type")
	got := map[models.CertificateType]bool{}
	for _, cert := range result.Certificates {
		got[cert.Type] = true
	}
	assert.True(t, got[models.CertOwnership])
	assert.True(t, got[models.CertAuthenticity])
	assert.True(t, got[models.CertWarranty])
}

func TestExecuteNoCertificateTypesRequested(t *testing.T) {
	svc, _ := arrange(t, stubs{})
	req := saleRequest()
	req.CertificateTypes = nil

	result, err := svc.Execute(context.Background(), req.FromParty, req)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Empty(t, result.Certificates, "a request that names no certificate types gets none")
}

func TestExecuteInheritanceGuidance(t *testing.T) {
	svc, _ := arrange(t, stubs{})
	req := saleRequest()
	req.Category = models.CategoryInheritance
	req.SecurityLevel = models.SecurityBasic
	req.Amount = nil
	req.Currency = ""
	req.EscrowEnabled = false
	req.InsuranceEnabled = false
	req.Metadata.Notarized = true

	result, err := svc.Execute(context.Background(), req.FromParty, req)
	require.NoError(t, err)

	assert.Nil(t, result.Escrow, "escrow was not requested")
	assert.Nil(t, result.Insurance, "insurance was not requested")
	assert.Equal(t, 50, result.RiskScore, "high-risk category (30) plus basic level (20)")
	assert.Equal(t, testNow.Add(168*time.Hour), result.EstimatedCompletion, "probate timeline")
	assert.Contains(t, result.NextSteps, "submit probate court documentation")
	assert.Contains(t, result.NextSteps, "provide death certificate")
	assert.Contains(t, result.NextSteps, "pay applicable fees and taxes")
}

func TestExecuteComplianceFailureIsAdvisory(t *testing.T) {
	svc, _ := arrange(t, stubs{
		checks: []models.ComplianceCheck{
			{Regime: models.RegimeSanctions, Status: models.ComplianceFailed, Details: "counterparty flagged"},
		},
	})
	req := saleRequest()

	result, err := svc.Execute(context.Background(), req.FromParty, req)
	require.NoError(t, err, "compliance outcomes never abort a transfer")

	assert.True(t, result.Success)
	require.NotEmpty(t, result.NextSteps)
	assert.Equal(t, "address compliance issues before proceeding", result.NextSteps[0])
	require.Len(t, result.ComplianceChecks, 1)
	assert.Equal(t, models.ComplianceFailed, result.ComplianceChecks[0].Status)
}

func TestExecuteVerificationFailureAborts(t *testing.T) {
	svc, cap := arrange(t, stubs{
		securityErr: &verify.VerificationError{Method: models.MethodEmailOTP},
	})
	req := saleRequest()

	result, err := svc.Execute(context.Background(), req.FromParty, req)
	require.Error(t, err)
	assert.Nil(t, result)

	var verr *verify.VerificationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, models.MethodEmailOTP, verr.Method)

	assert.Zero(t, cap.settleCalls, "nothing reaches the ledger after a failed verification")

	failed, ok := cap.find(audit.EventTransferFailed)
	require.True(t, ok)
	assert.Equal(t, 100, failed.RiskScore, "failed transfers are audited at maximum risk")
	assert.Contains(t, failed.Details, "stage=verification")

	methodEvent, ok := cap.find(audit.EventVerificationFailed)
	require.True(t, ok)
	assert.Contains(t, methodEvent.Details, "method=email_otp")
}

func TestExecuteOwnershipFailureAborts(t *testing.T) {
	svc, cap := arrange(t, stubs{
		ownershipErr: dErrors.New(dErrors.CodeForbidden, "initiating party does not hold the asset"),
	})
	req := saleRequest()

	result, err := svc.Execute(context.Background(), req.FromParty, req)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))
	assert.Zero(t, cap.settleCalls)
}

func TestExecuteSettlementFailureAborts(t *testing.T) {
	svc, cap := arrange(t, stubs{
		settleErr: dErrors.New(dErrors.CodeConflict, "initiator no longer holds the asset"),
	})
	req := saleRequest()

	result, err := svc.Execute(context.Background(), req.FromParty, req)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))

	failed, ok := cap.find(audit.EventTransferFailed)
	require.True(t, ok)
	assert.Contains(t, failed.Details, "stage=settlement")
}

func TestExecuteCertificateFailureIsFatal(t *testing.T) {
	svc, cap := arrange(t, stubs{
		certErr: errors.New("signing key unavailable"),
	})
	req := saleRequest()

	result, err := svc.Execute(context.Background(), req.FromParty, req)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	assert.Equal(t, 1, cap.settleCalls, "certificate failure happens after settlement")

	failed, ok := cap.find(audit.EventTransferFailed)
	require.True(t, ok)
	assert.Contains(t, failed.Details, "stage=certificates")
}

func TestExecutePostSettlementDegradesToPartialSuccess(t *testing.T) {
	svc, _ := arrange(t, stubs{
		escrowErr:    errors.New("escrow provider timeout"),
		insuranceErr: errors.New("underwriter rejected"),
		docsErr:      errors.New("template missing"),
	})
	req := saleRequest()

	result, err := svc.Execute(context.Background(), req.FromParty, req)
	require.NoError(t, err, "post-settlement provisioning failures never abort")
	require.NotNil(t, result)

	assert.True(t, result.Success, "the settled transfer is still a success")
	assert.Len(t, result.Warnings, 3)
	assert.NotNil(t, result.Settlement, "the settled transfer stands")
	assert.Len(t, result.Certificates, 2)
	assert.Nil(t, result.Escrow)
	assert.Nil(t, result.Insurance)
	assert.Empty(t, result.LegalDocuments)
}

func TestExecuteRecordsUndeliveredNotifications(t *testing.T) {
	svc, cap := arrange(t, stubs{
		undelivered: map[models.NotificationChannel]string{models.ChannelSMS: "gateway rejected"},
	})
	req := saleRequest()
	req.NotificationChannels = []models.NotificationChannel{models.ChannelEmail, models.ChannelSMS}

	result, err := svc.Execute(context.Background(), req.FromParty, req)
	require.NoError(t, err)

	require.Len(t, result.Notifications, 2)
	assert.True(t, result.Notifications[0].Delivered)
	assert.False(t, result.Notifications[1].Delivered)
	assert.Equal(t, "gateway rejected", result.Notifications[1].Detail)
	assert.True(t, result.Success, "notification failures never degrade the result")

	_, ok := cap.find(audit.EventNotificationFailed)
	assert.True(t, ok)
}

func TestExecuteRejectsInvalidRequests(t *testing.T) {
	tests := []struct {
		name   string
		stage  string
		mutate func(*models.TransferRequest)
	}{
		{"missing asset", "validation", func(r *models.TransferRequest) { r.AssetID = "" }},
		{"unknown category", "validation", func(r *models.TransferRequest) { r.Category = "barter" }},
		{"no verification methods", "validation", func(r *models.TransferRequest) { r.VerificationMethods = nil }},
		{"negative amount", "validation", func(r *models.TransferRequest) { r.Amount = amount(-1) }},
		{"missing network", "validation", func(r *models.TransferRequest) { r.Network = "" }},
		{"inheritance without evidence", "precondition", func(r *models.TransferRequest) {
			r.Category = models.CategoryInheritance
		}},
		{"premium with single method", "precondition", func(r *models.TransferRequest) {
			r.SecurityLevel = models.SecurityPremium
		}},
		{"military without hardware key", "precondition", func(r *models.TransferRequest) {
			r.SecurityLevel = models.SecurityMilitary
			r.VerificationMethods = []models.VerificationMethod{models.MethodBiometric, models.MethodInPerson}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, cap := arrange(t, stubs{ownershipErr: errors.New("unreachable")})
			req := saleRequest()
			tt.mutate(req)

			result, err := svc.Execute(context.Background(), req.FromParty, req)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

			require.NotEmpty(t, cap.events, "even a rejected request opens the trail")
			assert.Equal(t, string(audit.EventTransferInitiated), cap.events[0].Action)
			failed, ok := cap.find(audit.EventTransferFailed)
			require.True(t, ok)
			assert.Equal(t, 100, failed.RiskScore)
			assert.Contains(t, failed.Details, "stage="+tt.stage)
		})
	}
}
