package artifacts

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"provenia/internal/transfer/models"
	id "provenia/pkg/domain"
	"provenia/pkg/platform/strings"
)

// categoryDocuments maps transfer categories to the paperwork they require.
// Categories absent from the map may still yield metadata-driven documents
// (customs declarations, data-erasure addenda) or none at all.
var categoryDocuments = map[models.Category][]string{
	models.CategorySale:              {"bill_of_sale"},
	models.CategoryAuction:           {"bill_of_sale", "auction_record"},
	models.CategoryTrade:             {"exchange_agreement"},
	models.CategoryExchange:          {"exchange_agreement"},
	models.CategoryGift:              {"deed_of_gift"},
	models.CategoryDonation:          {"deed_of_gift"},
	models.CategoryCharityDonation:   {"deed_of_gift", "charity_receipt"},
	models.CategoryInheritance:       {"probate_summary", "estate_affidavit"},
	models.CategoryEstateSale:        {"estate_affidavit", "bill_of_sale"},
	models.CategoryDivorceSettlement: {"settlement_decree_extract"},
	models.CategoryLegalSeizure:      {"seizure_order_extract"},
	models.CategoryCourtOrder:        {"court_order_extract"},
	models.CategoryBusinessTransfer:  {"asset_assignment_agreement", "board_resolution_extract"},
	models.CategoryMergerAcquisition: {"asset_assignment_agreement"},
	models.CategoryBankruptcy:        {"liquidation_schedule_extract"},
	models.CategoryRepossession:      {"repossession_notice"},
	models.CategoryLeaseTransfer:     {"lease_assignment"},
	models.CategoryInsuranceClaim:    {"claim_settlement_record"},
}

// LegalDocumentGenerator produces jurisdiction-aware legal paperwork for a
// transfer. Document content templating lives with the downstream document
// service; this generator decides what must exist and registers references.
type LegalDocumentGenerator struct {
	clock func() time.Time
}

// NewLegalDocumentGenerator constructs the generator.
func NewLegalDocumentGenerator(opts ...LegalOption) *LegalDocumentGenerator {
	g := &LegalDocumentGenerator{clock: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// LegalOption configures a LegalDocumentGenerator.
type LegalOption func(*LegalDocumentGenerator)

// WithLegalClock sets the clock function for testability.
func WithLegalClock(clock func() time.Time) LegalOption {
	return func(g *LegalDocumentGenerator) {
		if clock != nil {
			g.clock = clock
		}
	}
}

// Generate returns the document set applicable to the transfer. May be
// empty: a plain loan return with no customs or data implications needs no
// paperwork.
func (g *LegalDocumentGenerator) Generate(transferID id.TransferID, req *models.TransferRequest) ([]models.LegalDocument, error) {
	jurisdiction := req.Metadata.Jurisdiction
	if jurisdiction == "" {
		jurisdiction = "default"
	}
	now := g.clock().UTC()

	kinds := append([]string{}, categoryDocuments[req.Category]...)
	if req.Metadata.CustomsImplications != "" {
		kinds = append(kinds, "customs_declaration")
	}
	if req.Metadata.DataHandlingPolicy != "" {
		kinds = append(kinds, "data_handling_addendum")
	}
	if req.Metadata.Notarized {
		kinds = append(kinds, "notarization_record")
	}
	kinds = strings.DedupeAndTrim(kinds)

	docs := make([]models.LegalDocument, 0, len(kinds))
	for _, kind := range kinds {
		docID := "DOC-" + uuid.New().String()
		docs = append(docs, models.LegalDocument{
			ID:           docID,
			TransferID:   transferID,
			Kind:         kind,
			Jurisdiction: jurisdiction,
			Reference:    fmt.Sprintf("documents/%s/%s", transferID, docID),
			GeneratedAt:  now,
		})
	}
	return docs, nil
}
