package compensation

import "errors"

var (
	ErrCompensationNotFound = errors.New("compensation record not found")
	ErrNotManualOverride    = errors.New("compensation record is not in manual override mode")
)
