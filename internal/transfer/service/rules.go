package service

import (
	"fmt"

	dErrors "provenia/pkg/domain-errors"

	"provenia/internal/transfer/models"
)

// PreconditionRule inspects a request before any side effects run. A non-nil
// error aborts the transfer during validation.
type PreconditionRule func(req *models.TransferRequest) error

// DefaultPreconditionRules enforces the category and security-level
// requirements that must hold before a transfer may enter the pipeline.
func DefaultPreconditionRules() []PreconditionRule {
	return []PreconditionRule{
		requireLegalEvidence,
		requireLayeredVerification,
		requireHardwareKey,
	}
}

// requireLegalEvidence demands documentary backing for categories that
// originate in a legal process rather than a voluntary agreement.
func requireLegalEvidence(req *models.TransferRequest) error {
	switch req.Category {
	case models.CategoryInheritance, models.CategoryDivorceSettlement, models.CategoryLegalSeizure:
		if !req.Metadata.Notarized && len(req.Metadata.Documents) == 0 {
			return dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("%s transfers require notarization or supporting documents", req.Category))
		}
	}
	return nil
}

// requireLayeredVerification: premium tiers and above must verify the
// recipient through at least two independent methods.
func requireLayeredVerification(req *models.TransferRequest) error {
	if req.SecurityLevel.AtLeast(models.SecurityPremium) && len(req.VerificationMethods) < 2 {
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("%s security level requires at least two verification methods", req.SecurityLevel))
	}
	return nil
}

// requireHardwareKey: military-grade transfers must include a hardware key
// among the verification methods.
func requireHardwareKey(req *models.TransferRequest) error {
	if req.SecurityLevel != models.SecurityMilitary {
		return nil
	}
	for _, m := range req.VerificationMethods {
		if m == models.MethodHardwareKey {
			return nil
		}
	}
	return dErrors.New(dErrors.CodeValidation, "military security level requires hardware key verification")
}
