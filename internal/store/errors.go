package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when registering a user whose
	// username or email is already taken.
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrDepartmentAlreadyExists is returned when a department with the same
	// name or code already exists.
	ErrDepartmentAlreadyExists = errors.New("department name or code already exists")

	// ErrDepartmentNotFound is returned when a department lookup matches no
	// rows.
	ErrDepartmentNotFound = errors.New("department was not found")

	// ErrBudgetAlreadyExists is returned when a department already has a
	// budget for the requested fiscal year.
	ErrBudgetAlreadyExists = errors.New("budget already exists for department and fiscal year")

	// ErrBudgetNotFound is returned when a budget lookup matches no rows.
	ErrBudgetNotFound = errors.New("budget was not found")

	// ErrTransactionNotFound is returned when a transaction lookup matches
	// no rows.
	ErrTransactionNotFound = errors.New("transaction was not found")

	// ErrAuditLogNotFound is returned when an audit log lookup matches no
	// rows.
	ErrAuditLogNotFound = errors.New("audit log was not found")

	// ErrInsufficientFunds is returned when a spending delta would push a
	// budget's remaining amount below zero.
	ErrInsufficientFunds = errors.New("insufficient funds in budget")

	// ErrReferencedRows is returned when a delete is blocked by dependent
	// rows (e.g. a department that still has budgets).
	ErrReferencedRows = errors.New("resource is referenced by other records")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
