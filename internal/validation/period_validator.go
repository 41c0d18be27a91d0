package validation

import (
	"workhours/internal/domain"
)

// MaxPeriodSpan bounds a recompute range, in months.
const MaxPeriodSpan = 120

// PeriodValidator provides validation for reporting periods
type PeriodValidator struct {
	validator *Validator
}

// NewPeriodValidator creates a new period validator
func NewPeriodValidator() *PeriodValidator {
	return &PeriodValidator{validator: NewValidator()}
}

// ValidatePeriod validates a single period key
func (pv *PeriodValidator) ValidatePeriod(p domain.PeriodKey) error {
	validationError := NewValidationError()
	if !pv.validator.IsValidMonth(p.Month) {
		validationError.AddInvalidRangeError("month", p.Month, "must be between 0 and 11")
	}
	if !pv.validator.IsReasonableYear(p.Year) {
		validationError.AddInvalidValueError("year", p.Year, "must be within reasonable date range")
	}
	return validationError.Err()
}

// ValidatePeriodRange validates an inclusive from..to chain of periods
func (pv *PeriodValidator) ValidatePeriodRange(from, to domain.PeriodKey) error {
	validationError := NewValidationError()
	validationError.Merge(pv.ValidatePeriod(from))
	validationError.Merge(pv.ValidatePeriod(to))
	if validationError.HasErrors() {
		return validationError
	}

	if to.Before(from) {
		validationError.AddInvalidRangeError("period_range", from.ISO()+".."+to.ISO(), "end period must not precede start period")
		return validationError
	}

	span := (to.Year-from.Year)*12 + to.Month - from.Month + 1
	if span > MaxPeriodSpan {
		validationError.AddInvalidRangeError("period_range", span, "spans too many months")
	}
	return validationError.Err()
}
