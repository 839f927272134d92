package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/store"
	"github.com/unifin/finapi/models"
)

// exportPageSize is the page size used when draining rows for CSV exports.
const exportPageSize = 1000

// reportService is the concrete implementation of ReportService.
type reportService struct {
	reportRepository      store.ReportRepository
	transactionRepository store.TransactionRepository
	logger                *logger.Logger
}

// NewReportService constructs a ReportService wired to the given
// repositories.
func NewReportService(reportRepository store.ReportRepository, transactionRepository store.TransactionRepository, logger *logger.Logger) ReportService {
	return &reportService{
		reportRepository:      reportRepository,
		transactionRepository: transactionRepository,
		logger:                logger,
	}
}

// BudgetVsActual reports allocation against spending per department for one
// fiscal year.
func (s *reportService) BudgetVsActual(ctx context.Context, fiscalYear string) ([]models.BudgetVsActualRow, error) {
	report, err := s.reportRepository.BudgetVsActual(ctx, fiscalYear)
	if err != nil {
		return nil, fmt.Errorf("budget vs actual report ended with error: %w", err)
	}
	return report, nil
}

// DepartmentSpending aggregates net posted spending per department for one
// fiscal year.
func (s *reportService) DepartmentSpending(ctx context.Context, fiscalYear string) ([]models.DepartmentSpendingRow, error) {
	report, err := s.reportRepository.DepartmentSpending(ctx, fiscalYear)
	if err != nil {
		return nil, fmt.Errorf("department spending report ended with error: %w", err)
	}
	return report, nil
}

// MonthlySpendingTrend reports net posted spending per calendar month over
// the most recent months with activity.
func (s *reportService) MonthlySpendingTrend(ctx context.Context, months int) ([]models.MonthlySpendingRow, error) {
	if months <= 0 {
		months = 12
	}
	report, err := s.reportRepository.MonthlySpendingTrend(ctx, months)
	if err != nil {
		return nil, fmt.Errorf("monthly spending trend report ended with error: %w", err)
	}
	return report, nil
}

// TransactionTypeTotals aggregates amount sums and counts per transaction
// type.
func (s *reportService) TransactionTypeTotals(ctx context.Context) ([]models.TransactionTypeTotalsRow, error) {
	report, err := s.reportRepository.TransactionTypeTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("transaction type totals report ended with error: %w", err)
	}
	return report, nil
}

// TransactionsCSV renders every transaction matching the filter as a CSV
// document, draining the repository page by page.
func (s *reportService) TransactionsCSV(ctx context.Context, filter models.TransactionFilter) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "budget_id", "transaction_type", "amount", "description",
		"reference_number", "transaction_date", "created_at"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}

	page := models.PageParams{Limit: exportPageSize}
	for {
		transactions, _, err := s.transactionRepository.ListTransactions(ctx, filter, page)
		if err != nil {
			return nil, fmt.Errorf("transaction export ended with error: %w", err)
		}

		for _, txn := range transactions {
			record := []string{
				txn.ID.String(),
				txn.BudgetID.String(),
				string(txn.Type),
				txn.Amount.String(),
				txn.Description,
				txn.ReferenceNumber,
				txn.TransactionDate.Format(time.RFC3339),
				txn.CreatedAt.Format(time.RFC3339),
			}
			if err := w.Write(record); err != nil {
				return nil, fmt.Errorf("writing CSV record: %w", err)
			}
		}

		if len(transactions) < exportPageSize {
			break
		}
		page.Offset += exportPageSize
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// BudgetsCSV renders the budget-vs-actual report for one fiscal year as a
// CSV document.
func (s *reportService) BudgetsCSV(ctx context.Context, fiscalYear string) ([]byte, error) {
	report, err := s.reportRepository.BudgetVsActual(ctx, fiscalYear)
	if err != nil {
		return nil, fmt.Errorf("budget export ended with error: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"department_id", "department_name", "fiscal_year", "total_amount",
		"spent_amount", "remaining_amount", "utilization_pct"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}

	for _, row := range report {
		record := []string{
			row.DepartmentID,
			row.DepartmentName,
			row.FiscalYear,
			row.TotalAmount.String(),
			row.SpentAmount.String(),
			row.RemainingAmount.String(),
			row.UtilizationPct.String(),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("writing CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV: %w", err)
	}

	return buf.Bytes(), nil
}
