package payroll

import "errors"

var (
	ErrSummaryNotFound      = errors.New("payroll summary not found")
	ErrSummaryAlreadyExists = errors.New("payroll summary already exists for this period")
	ErrInvalidPeriod        = errors.New("invalid payroll period")
)
