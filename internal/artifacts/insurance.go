package artifacts

import (
	"time"

	"github.com/google/uuid"

	"provenia/internal/transfer/models"
	id "provenia/pkg/domain"
)

// insuranceProfiles keys coverage and duration off the transfer category.
// Coverage is a multiple of the declared amount in basis points (10000 =
// 100%); premium is charged in basis points of coverage.
type insuranceProfile struct {
	CoverageBps int64
	PremiumBps  int64
	Duration    time.Duration
}

var insuranceProfiles = map[models.Category]insuranceProfile{
	models.CategorySale:             {CoverageBps: 10_000, PremiumBps: 150, Duration: 365 * 24 * time.Hour},
	models.CategoryAuction:          {CoverageBps: 10_000, PremiumBps: 200, Duration: 365 * 24 * time.Hour},
	models.CategoryInheritance:      {CoverageBps: 12_000, PremiumBps: 100, Duration: 2 * 365 * 24 * time.Hour},
	models.CategoryBusinessTransfer: {CoverageBps: 11_000, PremiumBps: 120, Duration: 2 * 365 * 24 * time.Hour},
	models.CategoryLeaseTransfer:    {CoverageBps: 8_000, PremiumBps: 180, Duration: 180 * 24 * time.Hour},
	models.CategoryLoan:             {CoverageBps: 8_000, PremiumBps: 180, Duration: 90 * 24 * time.Hour},
}

var defaultInsuranceProfile = insuranceProfile{
	CoverageBps: 10_000,
	PremiumBps:  150,
	Duration:    365 * 24 * time.Hour,
}

// Assets transferred without a declared amount are covered at a flat value.
const flatCoverage = 500_00

// InsuranceService issues coverage policies tied to the transferred asset.
type InsuranceService struct {
	clock func() time.Time
}

// NewInsuranceService constructs the service.
func NewInsuranceService(opts ...InsuranceOption) *InsuranceService {
	s := &InsuranceService{clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InsuranceOption configures an InsuranceService.
type InsuranceOption func(*InsuranceService)

// WithInsuranceClock sets the clock function for testability.
func WithInsuranceClock(clock func() time.Time) InsuranceOption {
	return func(s *InsuranceService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// Provision issues a policy with category-derived coverage and duration.
func (s *InsuranceService) Provision(transferID id.TransferID, req *models.TransferRequest) (*models.InsurancePolicy, error) {
	profile, ok := insuranceProfiles[req.Category]
	if !ok {
		profile = defaultInsuranceProfile
	}

	base := int64(flatCoverage)
	currency := req.Currency
	if req.Amount != nil && *req.Amount > 0 {
		base = *req.Amount
	}
	if currency == "" {
		currency = "USD"
	}

	coverage := base * profile.CoverageBps / 10_000
	premium := coverage * profile.PremiumBps / 10_000
	now := s.clock().UTC()

	return &models.InsurancePolicy{
		ID:             "POL-" + uuid.New().String(),
		TransferID:     transferID,
		AssetID:        req.AssetID,
		CoverageAmount: coverage,
		Currency:       currency,
		Premium:        premium,
		StartsAt:       now,
		ExpiresAt:      now.Add(profile.Duration),
	}, nil
}
