package models

// Category names the legal/commercial nature of a transfer. The engine keys
// risk weighting, escrow conditions, insurance coverage, legal paperwork,
// next-step guidance, and completion estimates off this value.
type Category string

const (
	CategorySale                Category = "sale"
	CategoryGift                Category = "gift"
	CategoryDonation            Category = "donation"
	CategoryTrade               Category = "trade"
	CategoryExchange            Category = "exchange"
	CategoryInheritance         Category = "inheritance"
	CategoryDivorceSettlement   Category = "divorce_settlement"
	CategoryBusinessTransfer    Category = "business_transfer"
	CategoryLegalSeizure        Category = "legal_seizure"
	CategoryCustomsConfiscation Category = "customs_confiscation"
	CategoryCourtOrder          Category = "court_order"
	CategoryBankruptcy          Category = "bankruptcy_liquidation"
	CategoryMergerAcquisition   Category = "merger_acquisition"
	CategoryLeaseTransfer       Category = "lease_transfer"
	CategoryLoan                Category = "loan"
	CategoryLoanReturn          Category = "loan_return"
	CategoryAuction             Category = "auction"
	CategoryInsuranceClaim      Category = "insurance_claim"
	CategoryWarrantyReplacement Category = "warranty_replacement"
	CategoryRepairReturn        Category = "repair_return"
	CategoryTheftRecovery       Category = "theft_recovery"
	CategoryRepossession        Category = "repossession"
	CategoryRequisition         Category = "government_requisition"
	CategoryEstateSale          Category = "estate_sale"
	CategoryCharityDonation     Category = "charity_donation"
	CategoryEmployeeAssignment  Category = "employee_assignment"
	CategoryConsignment         Category = "consignment"
	CategorySponsorship         Category = "sponsorship"
	CategoryPrizeAward          Category = "prize_award"
	CategorySettlement          Category = "settlement"
)

// Categories lists every supported transfer category.
var Categories = []Category{
	CategorySale, CategoryGift, CategoryDonation, CategoryTrade,
	CategoryExchange, CategoryInheritance, CategoryDivorceSettlement,
	CategoryBusinessTransfer, CategoryLegalSeizure, CategoryCustomsConfiscation,
	CategoryCourtOrder, CategoryBankruptcy, CategoryMergerAcquisition,
	CategoryLeaseTransfer, CategoryLoan, CategoryLoanReturn, CategoryAuction,
	CategoryInsuranceClaim, CategoryWarrantyReplacement, CategoryRepairReturn,
	CategoryTheftRecovery, CategoryRepossession, CategoryRequisition,
	CategoryEstateSale, CategoryCharityDonation, CategoryEmployeeAssignment,
	CategoryConsignment, CategorySponsorship, CategoryPrizeAward,
	CategorySettlement,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// SecurityLevel is the 7-tier ordinal protection level requested for a
// transfer. Higher tiers demand more verification up front.
type SecurityLevel string

const (
	SecurityBasic      SecurityLevel = "basic"
	SecurityStandard   SecurityLevel = "standard"
	SecurityEnhanced   SecurityLevel = "enhanced"
	SecurityPremium    SecurityLevel = "premium"
	SecurityEnterprise SecurityLevel = "enterprise"
	SecurityGovernment SecurityLevel = "government"
	SecurityMilitary   SecurityLevel = "military"
)

var securityRanks = map[SecurityLevel]int{
	SecurityBasic:      0,
	SecurityStandard:   1,
	SecurityEnhanced:   2,
	SecurityPremium:    3,
	SecurityEnterprise: 4,
	SecurityGovernment: 5,
	SecurityMilitary:   6,
}

// Rank returns the ordinal position of the level, -1 for unknown levels.
func (l SecurityLevel) Rank() int {
	if r, ok := securityRanks[l]; ok {
		return r
	}
	return -1
}

// Valid reports whether l is a known security level.
func (l SecurityLevel) Valid() bool { return l.Rank() >= 0 }

// AtLeast reports whether l is at or above the given level.
func (l SecurityLevel) AtLeast(min SecurityLevel) bool {
	return l.Rank() >= min.Rank() && l.Rank() >= 0
}

// VerificationMethod names an identity-verification mechanism run against
// the initiating party. All requested methods must pass (AND semantics).
type VerificationMethod string

const (
	MethodEmailOTP      VerificationMethod = "email_otp"
	MethodSMSOTP        VerificationMethod = "sms_otp"
	MethodBiometric     VerificationMethod = "biometric"
	MethodHardwareKey   VerificationMethod = "hardware_key"
	MethodVideoCall     VerificationMethod = "video_call"
	MethodNotarization  VerificationMethod = "notarization"
	MethodInPerson      VerificationMethod = "in_person"
	MethodDocumentCheck VerificationMethod = "document_check"
)

// CertificateType names a proof-of-transfer document kind.
type CertificateType string

const (
	CertOwnership    CertificateType = "ownership"
	CertTransfer     CertificateType = "transfer"
	CertAuthenticity CertificateType = "authenticity"
	CertWarranty     CertificateType = "warranty"
	CertCompliance   CertificateType = "compliance"
	CertInsurance    CertificateType = "insurance"
)

// NotificationChannel names a delivery channel for transfer confirmations.
type NotificationChannel string

const (
	ChannelEmail   NotificationChannel = "email"
	ChannelSMS     NotificationChannel = "sms"
	ChannelPush    NotificationChannel = "push"
	ChannelInApp   NotificationChannel = "in_app"
	ChannelWebhook NotificationChannel = "webhook"
)

// ComplianceRegime names a legal/regulatory framework a transfer may need to
// satisfy. Regimes are evaluated independently; there is no ordering
// dependency between them.
type ComplianceRegime string

const (
	RegimeGDPR               ComplianceRegime = "gdpr"
	RegimeCCPA               ComplianceRegime = "ccpa"
	RegimeAML                ComplianceRegime = "aml"
	RegimeKYC                ComplianceRegime = "kyc"
	RegimeSanctions          ComplianceRegime = "sanctions"
	RegimeExportControl      ComplianceRegime = "export_control"
	RegimeTaxReporting       ComplianceRegime = "tax_reporting"
	RegimeConsumerProtection ComplianceRegime = "consumer_protection"
)

// Network names the target ledger network for settlement.
type Network string

const (
	NetworkMainnet    Network = "mainnet"
	NetworkTestnet    Network = "testnet"
	NetworkPrivate    Network = "private"
	NetworkConsortium Network = "consortium"
)

// Valid reports whether n names a known network.
func (n Network) Valid() bool {
	switch n {
	case NetworkMainnet, NetworkTestnet, NetworkPrivate, NetworkConsortium:
		return true
	}
	return false
}
