package artifacts

import (
	"time"

	"github.com/google/uuid"

	"provenia/internal/transfer/models"
	id "provenia/pkg/domain"
)

// escrowProfiles keys release conditions and hold duration off the transfer
// category. Sale-like categories carry buyer/seller obligations; gratuitous
// categories only need an acknowledgement.
type escrowProfile struct {
	Conditions []string
	Hold       time.Duration
}

var escrowProfiles = map[models.Category]escrowProfile{
	models.CategorySale: {
		Conditions: []string{"buyer_confirms_receipt", "seller_hands_over_credentials", "inspection_period_elapsed"},
		Hold:       30 * 24 * time.Hour,
	},
	models.CategoryAuction: {
		Conditions: []string{"buyer_confirms_receipt", "auction_house_releases_lot"},
		Hold:       14 * 24 * time.Hour,
	},
	models.CategoryTrade: {
		Conditions: []string{"both_assets_delivered", "both_parties_confirm"},
		Hold:       14 * 24 * time.Hour,
	},
	models.CategoryBusinessTransfer: {
		Conditions: []string{"board_approval_filed", "registration_updated", "buyer_confirms_receipt"},
		Hold:       60 * 24 * time.Hour,
	},
	models.CategoryGift: {
		Conditions: []string{"recipient_acknowledges_gift"},
		Hold:       7 * 24 * time.Hour,
	},
	models.CategoryDonation: {
		Conditions: []string{"recipient_acknowledges_donation"},
		Hold:       7 * 24 * time.Hour,
	},
}

var defaultEscrowProfile = escrowProfile{
	Conditions: []string{"both_parties_confirm"},
	Hold:       30 * 24 * time.Hour,
}

// EscrowService provisions conditional holds of funds for transfers that
// request one.
type EscrowService struct {
	clock func() time.Time
}

// NewEscrowService constructs the service.
func NewEscrowService(opts ...EscrowOption) *EscrowService {
	s := &EscrowService{clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EscrowOption configures an EscrowService.
type EscrowOption func(*EscrowService)

// WithEscrowClock sets the clock function for testability.
func WithEscrowClock(clock func() time.Time) EscrowOption {
	return func(s *EscrowService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// Provision opens an escrow hold with category-derived release conditions
// and time limit. The recipient takes the buyer role, the initiator the
// seller role.
func (s *EscrowService) Provision(transferID id.TransferID, req *models.TransferRequest) (*models.EscrowDetails, error) {
	profile, ok := escrowProfiles[req.Category]
	if !ok {
		profile = defaultEscrowProfile
	}

	var amount int64
	if req.Amount != nil {
		amount = *req.Amount
	}

	return &models.EscrowDetails{
		ID:                "ESC-" + uuid.New().String(),
		TransferID:        transferID,
		Amount:            amount,
		Currency:          req.Currency,
		BuyerParty:        req.ToParty,
		SellerParty:       req.FromParty,
		ReleaseConditions: profile.Conditions,
		Status:            models.EscrowHeld,
		ExpiresAt:         s.clock().UTC().Add(profile.Hold),
	}, nil
}
