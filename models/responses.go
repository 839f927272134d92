package models

import "github.com/shopspring/decimal"

// PageParams carries the limit/offset pair parsed from list query strings.
type PageParams struct {
	Limit  int
	Offset int
}

// Paginated is the envelope returned by every list endpoint.
type Paginated[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// BudgetVsActualRow is one department line of the budget-vs-actual report.
type BudgetVsActualRow struct {
	DepartmentID    string          `json:"department_id"`
	DepartmentName  string          `json:"department_name"`
	FiscalYear      string          `json:"fiscal_year"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	SpentAmount     decimal.Decimal `json:"spent_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	UtilizationPct  decimal.Decimal `json:"utilization_pct"`
}

// DepartmentSpendingRow aggregates posted spending per department.
type DepartmentSpendingRow struct {
	DepartmentID     string          `json:"department_id"`
	DepartmentName   string          `json:"department_name"`
	SpentAmount      decimal.Decimal `json:"spent_amount"`
	TransactionCount int64           `json:"transaction_count"`
}

// MonthlySpendingRow is one month of the spending trend report.
type MonthlySpendingRow struct {
	Month       string          `json:"month"` // "2026-03"
	SpentAmount decimal.Decimal `json:"spent_amount"`
}

// TransactionTypeTotalsRow aggregates amounts per transaction type.
type TransactionTypeTotalsRow struct {
	Type        TransactionType `json:"transaction_type"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Count       int64           `json:"count"`
}
