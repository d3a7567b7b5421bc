package test

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"provenia/internal/artifacts"
	"provenia/internal/compliance"
	"provenia/internal/ledger"
	"provenia/internal/notification"
	"provenia/internal/registry"
	registryhandler "provenia/internal/registry/handler"
	transferhandler "provenia/internal/transfer/handler"
	"provenia/internal/transfer/models"
	"provenia/internal/transfer/service"
	"provenia/internal/verify"
	"provenia/pkg/platform/audit/publisher"
	auditmemory "provenia/pkg/platform/audit/store/memory"
	"provenia/pkg/testutil"
)

// newEngineRouter assembles the full engine on in-memory backends, the same
// wiring cmd/server uses minus postgres, redis, and kafka.
func newEngineRouter(t *testing.T) http.Handler {
	t.Helper()
	log := testutil.DiscardLogger()

	auditLog := publisher.NewPublisher(auditmemory.NewInMemoryStore(), publisher.WithLogger(log))
	t.Cleanup(func() { _ = auditLog.Close() })

	settlement, err := ledger.NewService(ledger.NewInMemoryStore(), ledger.WithLogger(log))
	require.NoError(t, err)

	partyStore := registry.NewInMemoryStore()

	issuer, err := artifacts.NewCertificateIssuer([]byte("flow-test-key"))
	require.NoError(t, err)

	engine, err := service.NewService(service.Dependencies{
		Ownership:    verify.NewOwnershipVerifier(settlement),
		Recipient:    verify.NewRecipientValidator(partyStore),
		Security:     verify.NewSecurityVerifier(verify.StaticChecker()),
		Compliance:   compliance.NewEngine(),
		Settler:      settlement,
		Certificates: issuer,
		Escrow:       artifacts.NewEscrowService(),
		Insurance:    artifacts.NewInsuranceService(),
		Documents:    artifacts.NewLegalDocumentGenerator(),
		Notifier:     notification.NewDispatcher(notification.NewLogSender(log)),
		Audit:        auditLog,
	}, service.WithLogger(log))
	require.NoError(t, err)

	router := chi.NewRouter()
	transferhandler.New(engine, auditLog, settlement, log).Register(router)
	registryhandler.New(partyStore, log).Register(router)
	return router
}

func TestTransferFlow(t *testing.T) {
	router := newEngineRouter(t)

	createParty := func(t *testing.T, name, email string) registry.Party {
		t.Helper()
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/parties",
			map[string]string{"name": name, "email": email}))
		require.Equal(t, http.StatusCreated, rr.Code)
		return *testutil.UnmarshalResponse[registry.Party](t, rr)
	}

	testutil.Given(t, "two registered parties holding one registered device", func(t *testing.T) {
		seller := createParty(t, "Ada Lovelace", "ada@example.com")
		buyer := createParty(t, "Grace Hopper", "grace@example.com")

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/assets",
			map[string]string{
				"asset_id": "laptop-7741",
				"owner_id": seller.ID.String(),
				"network":  "mainnet",
			}))
		require.Equal(t, http.StatusCreated, rr.Code)

		testutil.When(t, "the holder sells the device to the other party", func(t *testing.T) {
			amount := int64(1_200_00)
			rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/transfers",
				models.TransferRequest{
					AssetID:              "laptop-7741",
					FromParty:            seller.ID,
					ToParty:              buyer.ID,
					Category:             models.CategorySale,
					Amount:               &amount,
					Currency:             "USD",
					SecurityLevel:        models.SecurityStandard,
					VerificationMethods:  []models.VerificationMethod{models.MethodEmailOTP},
					CertificateTypes:     []models.CertificateType{models.CertOwnership},
					NotificationChannels: []models.NotificationChannel{models.ChannelEmail},
					Network:              models.NetworkMainnet,
					Compliance:           []models.ComplianceRegime{models.RegimeKYC},
				}))

			testutil.Then(t, "the transfer settles with a certificate and audit trail", func(t *testing.T) {
				require.Equal(t, http.StatusOK, rr.Code)
				result := testutil.UnmarshalResponse[models.TransferResult](t, rr)

				assert.True(t, result.Success)
				require.NotNil(t, result.Settlement)
				assert.NotEmpty(t, result.Settlement.Hash)
				require.Len(t, result.Certificates, 1)
				assert.NotEmpty(t, result.AuditTrail)

				trail := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet,
					"/v1/transfers/"+result.TransferID.String()+"/audit", nil))
				assert.Equal(t, http.StatusOK, trail.Code)
			})

			testutil.Then(t, "the device history shows the new holder", func(t *testing.T) {
				rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet,
					"/v1/assets/laptop-7741/history", nil))
				require.Equal(t, http.StatusOK, rr.Code)

				payload := testutil.UnmarshalResponse[struct {
					History []ledger.OwnershipRecord `json:"history"`
				}](t, rr)
				require.Len(t, payload.History, 2)
				assert.Equal(t, buyer.ID, payload.History[1].To)
			})

			testutil.Then(t, "the new holder can transfer the device onward", func(t *testing.T) {
				replay := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/transfers",
					models.TransferRequest{
						AssetID:             "laptop-7741",
						FromParty:           buyer.ID,
						ToParty:             seller.ID,
						Category:            models.CategoryGift,
						SecurityLevel:       models.SecurityBasic,
						VerificationMethods: []models.VerificationMethod{models.MethodEmailOTP},
						Network:             models.NetworkMainnet,
					}))
				require.Equal(t, http.StatusOK, replay.Code)
			})
		})
	})

	testutil.Given(t, "an unregistered device", func(t *testing.T) {
		testutil.When(t, "someone tries to transfer it", func(t *testing.T) {
			ghost := createParty(t, "Nobody Real", "nobody@example.com")
			other := createParty(t, "Someone Else", "else@example.com")

			rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/transfers",
				models.TransferRequest{
					AssetID:             "ghost-device",
					FromParty:           ghost.ID,
					ToParty:             other.ID,
					Category:            models.CategoryGift,
					SecurityLevel:       models.SecurityBasic,
					VerificationMethods: []models.VerificationMethod{models.MethodEmailOTP},
					Network:             models.NetworkMainnet,
				}))

			testutil.Then(t, "the engine rejects it as not found", func(t *testing.T) {
				testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
			})
		})
	})
}

func TestTransferFlowTiming(t *testing.T) {
	router := newEngineRouter(t)
	start := time.Now().UTC()

	seller := testutil.UnmarshalResponse[registry.Party](t, testutil.DoRequest(router,
		testutil.NewJSONRequest(t, http.MethodPost, "/v1/parties",
			map[string]string{"name": "Seller", "email": "seller@example.com"})))
	buyer := testutil.UnmarshalResponse[registry.Party](t, testutil.DoRequest(router,
		testutil.NewJSONRequest(t, http.MethodPost, "/v1/parties",
			map[string]string{"name": "Buyer", "email": "buyer@example.com"})))

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/assets",
		map[string]string{"asset_id": "tablet-2", "owner_id": seller.ID.String(), "network": "testnet"}))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/transfers",
		models.TransferRequest{
			AssetID:             "tablet-2",
			FromParty:           seller.ID,
			ToParty:             buyer.ID,
			Category:            models.CategorySale,
			SecurityLevel:       models.SecurityBasic,
			VerificationMethods: []models.VerificationMethod{models.MethodEmailOTP},
			Network:             models.NetworkTestnet,
		}))
	require.Equal(t, http.StatusOK, rr.Code)
	result := testutil.UnmarshalResponse[models.TransferResult](t, rr)

	// Sale ETA is anchored at execution time.
	assert.WithinDuration(t, start.Add(2*time.Hour), result.EstimatedCompletion, time.Minute)
	assert.NotEmpty(t, result.NextSteps)
}
