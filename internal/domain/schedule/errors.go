package schedule

import "errors"

var (
	ErrEmploymentTypeNotFound = errors.New("employment type not found")
	ErrEmploymentTypeExists   = errors.New("employment type name already exists")
)
