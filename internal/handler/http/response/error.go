package response

import (
	"errors"
	"net/http"

	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/attendance"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/compensation"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/deduction"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/employee"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/holiday"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/payroll"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/schedule"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrEmploymentTypeNotFound):
		NotFound(w, "Employment type not found")
	case errors.Is(err, schedule.ErrEmploymentTypeExists):
		Conflict(w, "Employment type already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidClockTime):
		BadRequest(w, "Invalid clock time", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrInvalidRange):
		BadRequest(w, "Invalid holiday date range", nil)

	// Compensation domain errors
	case errors.Is(err, compensation.ErrCompensationNotFound):
		NotFound(w, "Compensation record not found")
	case errors.Is(err, compensation.ErrNotManualOverride):
		Conflict(w, "Record is not in manual override mode")

	// Deduction domain errors
	case errors.Is(err, deduction.ErrInstrumentNotFound):
		NotFound(w, "Deduction record not found")
	case errors.Is(err, deduction.ErrLoanDeductionNotFound):
		NotFound(w, "Loan deduction record not found")
	case errors.Is(err, deduction.ErrNegativeBalance):
		BadRequest(w, "Balance cannot go negative", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSummaryNotFound):
		NotFound(w, "Payroll summary not found")
	case errors.Is(err, payroll.ErrSummaryAlreadyExists):
		Conflict(w, "Payroll already generated for this period")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
