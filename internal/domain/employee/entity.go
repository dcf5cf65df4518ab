package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID             string
	Name           string
	Position       *string
	EmploymentType string
	DailyRate      decimal.Decimal
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
