package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents the funds allocated to a department for one fiscal year.
//
// Invariants maintained by the service and store layers:
//   - RemainingAmount = TotalAmount - SpentAmount at all times;
//   - SpentAmount never drops below zero;
//   - one budget per (department, fiscal year) pair.
type Budget struct {
	ID uuid.UUID `json:"id"`

	DepartmentID uuid.UUID `json:"department_id"`

	// FiscalYear identifies the budget period, e.g. "2025-2026".
	FiscalYear string `json:"fiscal_year"`

	TotalAmount     decimal.Decimal `json:"total_amount"`
	SpentAmount     decimal.Decimal `json:"spent_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`

	Description string `json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Utilization returns the spent fraction of the budget in [0, 1].
// A zero-total budget reports zero utilization.
func (b Budget) Utilization() decimal.Decimal {
	if b.TotalAmount.IsZero() {
		return decimal.Zero
	}
	return b.SpentAmount.Div(b.TotalAmount)
}

// TableName returns the name of the database table
// associated with the Budget model.
func (b Budget) TableName() string {
	return "budgets"
}
