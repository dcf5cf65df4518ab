package deduction

import "errors"

var (
	ErrInstrumentNotFound    = errors.New("deduction instrument not found")
	ErrNegativeBalance       = errors.New("instrument balance cannot go negative")
	ErrLoanDeductionNotFound = errors.New("loan deduction record not found")
)
