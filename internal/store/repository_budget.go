package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/models"
)

// budgetRepository is the SQL-backed implementation of [BudgetRepository].
type budgetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBudgetRepository constructs a [BudgetRepository] backed by the provided
// database connection and logger.
func NewBudgetRepository(db *DB, logger *logger.Logger) BudgetRepository {
	logger.Debug().Msg("creating budget repository")
	return &budgetRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBudget persists a new budget and returns the stored row.
// The (department, fiscal year) unique constraint maps to
// [ErrBudgetAlreadyExists]; a missing department maps to
// [ErrDepartmentNotFound].
func (r *budgetRepository) CreateBudget(ctx context.Context, budget models.Budget) (models.Budget, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createBudget,
		budget.ID, budget.DepartmentID, budget.FiscalYear, budget.TotalAmount,
		budget.SpentAmount, budget.RemainingAmount, budget.Description,
		budget.CreatedAt, budget.UpdatedAt)

	saved, err := scanBudget(row)
	if err != nil {
		log.Err(err).Str("func", "*budgetRepository.CreateBudget").Msg("error saving budget")
		switch {
		case isUniqueViolation(err):
			return models.Budget{}, ErrBudgetAlreadyExists
		case isForeignKeyViolation(err):
			return models.Budget{}, ErrDepartmentNotFound
		default:
			return models.Budget{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// GetBudgetByID retrieves a budget by its identifier.
// Returns [ErrBudgetNotFound] when no row matches.
func (r *budgetRepository) GetBudgetByID(ctx context.Context, id uuid.UUID) (models.Budget, error) {
	budget, err := scanBudget(r.db.QueryRowContext(ctx, getBudgetByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Budget{}, ErrBudgetNotFound
		}
		return models.Budget{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return budget, nil
}

// GetBudgetByDepartmentAndFiscalYear retrieves the single budget a
// department holds for the given fiscal year.
// Returns [ErrBudgetNotFound] when no row matches.
func (r *budgetRepository) GetBudgetByDepartmentAndFiscalYear(ctx context.Context, departmentID uuid.UUID, fiscalYear string) (models.Budget, error) {
	budget, err := scanBudget(r.db.QueryRowContext(ctx, getBudgetByDeptAndYear, departmentID, fiscalYear))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Budget{}, ErrBudgetNotFound
		}
		return models.Budget{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return budget, nil
}

// ListBudgets returns one page of budgets ordered by fiscal year (newest
// first), optionally narrowed to a department, plus the matching total.
func (r *budgetRepository) ListBudgets(ctx context.Context, departmentID uuid.NullUUID, page models.PageParams) ([]models.Budget, int64, error) {
	log := logger.FromContext(ctx)

	listQuery := builder.
		Select("id", "department_id", "fiscal_year", "total_amount", "spent_amount", "remaining_amount", "description", "created_at", "updated_at").
		From("budgets").
		OrderBy("fiscal_year DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset))
	countQuery := builder.Select("COUNT(*)").From("budgets")

	if departmentID.Valid {
		listQuery = listQuery.Where("department_id = ?", departmentID.UUID)
		countQuery = countQuery.Where("department_id = ?", departmentID.UUID)
	}

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*budgetRepository.ListBudgets").Msg("error counting budgets")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	listSQL, listArgs, err := listQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*budgetRepository.ListBudgets").Msg("error listing budgets")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	budgets := make([]models.Budget, 0, page.Limit)
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		budgets = append(budgets, budget)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return budgets, total, nil
}

// UpdateBudget rewrites total amount, recomputed remaining amount and
// description, returning the stored row.
func (r *budgetRepository) UpdateBudget(ctx context.Context, budget models.Budget) (models.Budget, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateBudget,
		budget.ID, budget.TotalAmount, budget.RemainingAmount, budget.Description, time.Now().UTC())

	saved, err := scanBudget(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Budget{}, ErrBudgetNotFound
		}
		log.Err(err).Str("func", "*budgetRepository.UpdateBudget").Msg("error updating budget")
		return models.Budget{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// DeleteBudget removes a budget.
// Returns [ErrReferencedRows] while transactions still reference it and
// [ErrBudgetNotFound] when no row was deleted.
func (r *budgetRepository) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	var transactions int64
	if err := r.db.QueryRowContext(ctx, countBudgetTransactions, id).Scan(&transactions); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if transactions > 0 {
		return ErrReferencedRows
	}

	res, err := r.db.ExecContext(ctx, deleteBudget, id)
	if err != nil {
		log.Err(err).Str("func", "*budgetRepository.DeleteBudget").Msg("error deleting budget")
		if isForeignKeyViolation(err) {
			return ErrReferencedRows
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrBudgetNotFound
	}

	return nil
}

// applySpentDeltaTx adjusts the budget's spent amount by delta inside an
// open database transaction. A zero-row update means the guard rejected a
// spending delta larger than the remaining balance.
func applySpentDeltaTx(ctx context.Context, tx *sql.Tx, budgetID uuid.UUID, delta decimal.Decimal) error {
	res, err := tx.ExecContext(ctx, applySpentDelta, budgetID, delta, time.Now().UTC())
	if err != nil {
		if isCheckViolation(err) {
			return ErrInsufficientFunds
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrInsufficientFunds
	}

	return nil
}

func scanBudget(row rowScanner) (models.Budget, error) {
	var budget models.Budget
	var description sql.NullString

	err := row.Scan(&budget.ID, &budget.DepartmentID, &budget.FiscalYear,
		&budget.TotalAmount, &budget.SpentAmount, &budget.RemainingAmount,
		&description, &budget.CreatedAt, &budget.UpdatedAt)
	if err != nil {
		return models.Budget{}, err
	}

	budget.Description = description.String
	return budget, nil
}
