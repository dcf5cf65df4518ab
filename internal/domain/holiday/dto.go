package holiday

import (
	"github.com/shopspring/decimal"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Name       string          `json:"name"`
	Type       string          `json:"type"` // "Regular" or "Special"
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'Regular' or 'Special'"})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if r.Multiplier.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "multiplier", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	Multiplier decimal.Decimal `json:"multiplier"`
}
