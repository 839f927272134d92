package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/models"
)

// transactionRepository is the SQL-backed implementation of
// [TransactionRepository]. Mutations run together with the owning budget's
// spent-amount adjustment inside a single database transaction, so a
// rejected cascade (e.g. insufficient funds) leaves no orphan rows.
type transactionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTransactionRepository constructs a [TransactionRepository] backed by
// the provided database connection and logger.
func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTransactionWithCascade inserts the transaction row and applies its
// spent delta to the owning budget atomically.
//
// Error handling:
//   - missing budget (FK violation) → [ErrBudgetNotFound];
//   - guard rejected a spending delta → [ErrInsufficientFunds];
//   - anything else → wrapped DB error.
func (r *transactionRepository) CreateTransactionWithCascade(ctx context.Context, txn models.Transaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	var saved models.Transaction
	err := r.db.WithinTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, createTransaction,
			txn.ID, txn.BudgetID, txn.Type, txn.Amount, txn.Description,
			txn.ReferenceNumber, txn.TransactionDate, txn.CreatedAt, txn.UpdatedAt)

		var err error
		if saved, err = scanTransaction(row); err != nil {
			if isForeignKeyViolation(err) {
				return ErrBudgetNotFound
			}
			return fmt.Errorf("unexpected DB error: %w", err)
		}

		return applySpentDeltaTx(ctx, tx, txn.BudgetID, txn.SpentDelta())
	})
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.CreateTransactionWithCascade").Msg("error saving transaction")
		return models.Transaction{}, err
	}

	return saved, nil
}

// GetTransactionByID retrieves a transaction by its identifier.
// Returns [ErrTransactionNotFound] when no row matches.
func (r *transactionRepository) GetTransactionByID(ctx context.Context, id uuid.UUID) (models.Transaction, error) {
	txn, err := scanTransaction(r.db.QueryRowContext(ctx, getTransactionByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Transaction{}, ErrTransactionNotFound
		}
		return models.Transaction{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return txn, nil
}

// GetTransactionByReferenceNumber retrieves a transaction by its external
// document reference. Returns [ErrTransactionNotFound] when no row matches.
func (r *transactionRepository) GetTransactionByReferenceNumber(ctx context.Context, referenceNumber string) (models.Transaction, error) {
	txn, err := scanTransaction(r.db.QueryRowContext(ctx, getTransactionByReference, referenceNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Transaction{}, ErrTransactionNotFound
		}
		return models.Transaction{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return txn, nil
}

// ListTransactions returns one page of transactions (newest first) matching
// the filter, plus the matching total. Filters compose dynamically: budget,
// owning department, type, and transaction date range.
func (r *transactionRepository) ListTransactions(ctx context.Context, filter models.TransactionFilter, page models.PageParams) ([]models.Transaction, int64, error) {
	log := logger.FromContext(ctx)

	listQuery := builder.
		Select("t.id", "t.budget_id", "t.transaction_type", "t.amount", "t.description",
			"t.reference_number", "t.transaction_date", "t.created_at", "t.updated_at").
		From("transactions t").
		OrderBy("t.transaction_date DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset))
	countQuery := builder.Select("COUNT(*)").From("transactions t")

	applyFilter := func(q squirrel.SelectBuilder) squirrel.SelectBuilder {
		if filter.BudgetID.Valid {
			q = q.Where("t.budget_id = ?", filter.BudgetID.UUID)
		}
		if filter.DepartmentID.Valid {
			q = q.Where("t.budget_id IN (SELECT id FROM budgets WHERE department_id = ?)", filter.DepartmentID.UUID)
		}
		if filter.Type != "" {
			q = q.Where("t.transaction_type = ?", filter.Type)
		}
		if !filter.From.IsZero() {
			q = q.Where("t.transaction_date >= ?", filter.From)
		}
		if !filter.To.IsZero() {
			q = q.Where("t.transaction_date <= ?", filter.To)
		}
		return q
	}

	listQuery = applyFilter(listQuery)
	countQuery = applyFilter(countQuery)

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*transactionRepository.ListTransactions").Msg("error counting transactions")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	listSQL, listArgs, err := listQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.ListTransactions").Msg("error listing transactions")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0, page.Limit)
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return transactions, total, nil
}

// UpdateTransactionWithCascade rewrites the mutable fields of the
// transaction and applies spentDelta (the signed difference produced by the
// amount change) to the owning budget, atomically.
func (r *transactionRepository) UpdateTransactionWithCascade(ctx context.Context, txn models.Transaction, spentDelta decimal.Decimal) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	var saved models.Transaction
	err := r.db.WithinTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, updateTransaction,
			txn.ID, txn.Amount, txn.Description, txn.ReferenceNumber,
			txn.TransactionDate, time.Now().UTC())

		var err error
		if saved, err = scanTransaction(row); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrTransactionNotFound
			}
			return fmt.Errorf("unexpected DB error: %w", err)
		}

		if spentDelta.IsZero() {
			return nil
		}
		return applySpentDeltaTx(ctx, tx, txn.BudgetID, spentDelta)
	})
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.UpdateTransactionWithCascade").Msg("error updating transaction")
		return models.Transaction{}, err
	}

	return saved, nil
}

// DeleteTransactionWithCascade removes the transaction row and reverses its
// effect on the owning budget, atomically.
func (r *transactionRepository) DeleteTransactionWithCascade(ctx context.Context, txn models.Transaction) error {
	log := logger.FromContext(ctx)

	err := r.db.WithinTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, deleteTransaction, txn.ID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if affected == 0 {
			return ErrTransactionNotFound
		}

		// Deleting an expense frees funds; deleting a refund re-spends them.
		return applySpentDeltaTx(ctx, tx, txn.BudgetID, txn.SpentDelta().Neg())
	})
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.DeleteTransactionWithCascade").Msg("error deleting transaction")
		return err
	}

	return nil
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var txn models.Transaction
	var reference sql.NullString

	err := row.Scan(&txn.ID, &txn.BudgetID, &txn.Type, &txn.Amount,
		&txn.Description, &reference, &txn.TransactionDate,
		&txn.CreatedAt, &txn.UpdatedAt)
	if err != nil {
		return models.Transaction{}, err
	}

	txn.ReferenceNumber = reference.String
	return txn, nil
}
