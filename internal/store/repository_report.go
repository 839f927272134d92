package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/unifin/finapi/internal/config"
	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/models"
)

// reportRepository is the SQL-backed implementation of [ReportRepository].
// Aggregations run in the database; only the utilization percentage is
// derived afterwards, with decimal arithmetic.
type reportRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReportRepository constructs a [ReportRepository] backed by the
// provided database connection and logger.
func NewReportRepository(db *DB, logger *logger.Logger) ReportRepository {
	logger.Debug().Msg("creating report repository")
	return &reportRepository{
		db:     db,
		logger: logger,
	}
}

const budgetVsActual = `SELECT d.id, d.name, b.fiscal_year, b.total_amount, b.spent_amount, b.remaining_amount
    FROM budgets b
    JOIN departments d ON d.id = b.department_id
    WHERE b.fiscal_year = $1
    ORDER BY d.name;`

// BudgetVsActual reports allocation against spending per department for one
// fiscal year.
func (r *reportRepository) BudgetVsActual(ctx context.Context, fiscalYear string) ([]models.BudgetVsActualRow, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, budgetVsActual, fiscalYear)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.BudgetVsActual").Msg("error querying budget vs actual")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var report []models.BudgetVsActualRow
	for rows.Next() {
		var row models.BudgetVsActualRow
		err := rows.Scan(&row.DepartmentID, &row.DepartmentName, &row.FiscalYear,
			&row.TotalAmount, &row.SpentAmount, &row.RemainingAmount)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if row.TotalAmount.IsPositive() {
			row.UtilizationPct = row.SpentAmount.
				Div(row.TotalAmount).
				Mul(decimal.NewFromInt(100)).
				Round(2)
		}
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return report, nil
}

const departmentSpending = `SELECT d.id, d.name,
        COALESCE(SUM(CASE WHEN t.transaction_type IN ('expense', 'transfer_out') THEN t.amount ELSE -t.amount END), 0),
        COUNT(t.id)
    FROM departments d
    JOIN budgets b ON b.department_id = d.id
    LEFT JOIN transactions t ON t.budget_id = b.id
    WHERE b.fiscal_year = $1
    GROUP BY d.id, d.name
    ORDER BY d.name;`

// DepartmentSpending aggregates net posted spending and transaction counts
// per department for one fiscal year.
func (r *reportRepository) DepartmentSpending(ctx context.Context, fiscalYear string) ([]models.DepartmentSpendingRow, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, departmentSpending, fiscalYear)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.DepartmentSpending").Msg("error querying department spending")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var report []models.DepartmentSpendingRow
	for rows.Next() {
		var row models.DepartmentSpendingRow
		err := rows.Scan(&row.DepartmentID, &row.DepartmentName, &row.SpentAmount, &row.TransactionCount)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return report, nil
}

// monthExpr renders the transaction month as "YYYY-MM" in the dialect of
// the configured driver.
func (r *reportRepository) monthExpr() string {
	if r.db.Driver() == config.DriverSQLite {
		return `strftime('%Y-%m', transaction_date)`
	}
	return `to_char(transaction_date, 'YYYY-MM')`
}

// MonthlySpendingTrend reports net posted spending per calendar month over
// the most recent months with activity, oldest first.
func (r *reportRepository) MonthlySpendingTrend(ctx context.Context, months int) ([]models.MonthlySpendingRow, error) {
	log := logger.FromContext(ctx)

	month := r.monthExpr()
	query := fmt.Sprintf(`SELECT month, spent FROM (
        SELECT %s AS month,
            COALESCE(SUM(CASE WHEN transaction_type IN ('expense', 'transfer_out') THEN amount ELSE -amount END), 0) AS spent
        FROM transactions
        GROUP BY %s
        ORDER BY month DESC
        LIMIT $1
    ) recent
    ORDER BY month;`, month, month)

	rows, err := r.db.QueryContext(ctx, query, months)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.MonthlySpendingTrend").Msg("error querying monthly spending trend")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var report []models.MonthlySpendingRow
	for rows.Next() {
		var row models.MonthlySpendingRow
		if err := rows.Scan(&row.Month, &row.SpentAmount); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return report, nil
}

const transactionTypeTotals = `SELECT transaction_type, COALESCE(SUM(amount), 0), COUNT(*)
    FROM transactions
    GROUP BY transaction_type
    ORDER BY transaction_type;`

// TransactionTypeTotals aggregates amount sums and counts per transaction
// type across all budgets.
func (r *reportRepository) TransactionTypeTotals(ctx context.Context) ([]models.TransactionTypeTotalsRow, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, transactionTypeTotals)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.TransactionTypeTotals").Msg("error querying transaction type totals")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var report []models.TransactionTypeTotalsRow
	for rows.Next() {
		var row models.TransactionTypeTotalsRow
		if err := rows.Scan(&row.Type, &row.TotalAmount, &row.Count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return report, nil
}
