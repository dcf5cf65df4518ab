package deduction

import (
	"github.com/shopspring/decimal"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/validator"
)

type CreateCashAdvanceRequest struct {
	EmployeeID   string          `json:"employee_id"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Installments *int            `json:"installments,omitempty"`
	Reason       string          `json:"reason,omitempty"`
}

func (r *CreateCashAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if r.Installments != nil && *r.Installments < 0 {
		errs = append(errs, validator.ValidationError{Field: "installments", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateShortRequest struct {
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason,omitempty"`
}

func (r *CreateShortRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateLoanRequest struct {
	EmployeeID       string          `json:"employee_id"`
	Date             string          `json:"date"`
	Amount           decimal.Decimal `json:"amount"`
	NumberOfPayments int             `json:"number_of_payments"`
}

func (r *CreateLoanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if r.NumberOfPayments < 1 {
		errs = append(errs, validator.ValidationError{Field: "number_of_payments", Message: "must be at least 1"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CashAdvanceResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	Date             string          `json:"date"`
	Amount           decimal.Decimal `json:"amount"`
	RemainingUnpaid  decimal.Decimal `json:"remaining_unpaid"`
	Installments     int             `json:"installments"`
	AmountPerPayment decimal.Decimal `json:"amount_per_payment"`
	Status           string          `json:"status"`
	Reason           string          `json:"reason,omitempty"`
}

type ShortResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	Date            string          `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	RemainingUnpaid decimal.Decimal `json:"remaining_unpaid"`
	Status          string          `json:"status"`
	Reason          string          `json:"reason,omitempty"`
}

type LoanResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	Date              string          `json:"date"`
	Amount            decimal.Decimal `json:"amount"`
	AmountPerPayment  decimal.Decimal `json:"amount_per_payment"`
	RemainingBalance  decimal.Decimal `json:"remaining_balance"`
	RemainingPayments int             `json:"remaining_payments"`
	Status            string          `json:"status"`
}
