package service

import (
	"time"

	"provenia/internal/transfer/models"
	"provenia/pkg/platform/strings"
)

// categoryETAHours estimates time-to-completion per transfer category.
// Probate dominates the table: inheritance waits on court timelines measured
// in weeks, not hours.
var categoryETAHours = map[models.Category]int{
	models.CategorySale:                2,
	models.CategoryGift:                1,
	models.CategoryDonation:            1,
	models.CategoryInheritance:         168,
	models.CategoryDivorceSettlement:   72,
	models.CategoryBusinessTransfer:    24,
	models.CategoryLegalSeizure:        48,
	models.CategoryCustomsConfiscation: 24,
}

const defaultETAHours = 4

// EstimateCompletion returns the projected completion time for a category,
// anchored at now.
func EstimateCompletion(now time.Time, category models.Category) time.Time {
	hours, ok := categoryETAHours[category]
	if !ok {
		hours = defaultETAHours
	}
	return now.Add(time.Duration(hours) * time.Hour)
}

var categoryNextSteps = map[models.Category][]string{
	models.CategoryInheritance: {
		"submit probate court documentation",
		"provide death certificate",
	},
	models.CategoryDivorceSettlement: {
		"submit court settlement decree",
		"obtain court approval of the asset division",
	},
	models.CategoryBusinessTransfer: {
		"update the business asset registration",
		"provide corporate authorization resolution",
	},
}

var generalNextSteps = []string{
	"complete recipient verification",
	"sign digital transfer agreement",
	"pay applicable fees and taxes",
}

// NextSteps assembles the guided checklist returned with every successful
// transfer. Compliance remediation leads when any check failed, followed by
// category-specific obligations and the general closing steps.
func NextSteps(req *models.TransferRequest, checks []models.ComplianceCheck) []string {
	var steps []string
	for _, check := range checks {
		if check.Status == models.ComplianceFailed {
			steps = append(steps, "address compliance issues before proceeding")
			break
		}
	}
	steps = append(steps, categoryNextSteps[req.Category]...)
	steps = append(steps, generalNextSteps...)
	return strings.DedupeAndTrim(steps)
}
