package store

import "github.com/Masterminds/squirrel"

// builder is the squirrel statement builder shared by the filtered list
// queries. Dollar placeholders bind positionally on both supported drivers.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const (
	createUser = `INSERT INTO users (id, username, email, hashed_password, full_name, role, department_id, is_active, last_login, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    RETURNING id, username, email, hashed_password, full_name, role, department_id, is_active, last_login, created_at, updated_at;`

	getUserByID = `SELECT id, username, email, hashed_password, full_name, role, department_id, is_active, last_login, created_at, updated_at
    FROM users
    WHERE id = $1;`

	getUserByUsername = `SELECT id, username, email, hashed_password, full_name, role, department_id, is_active, last_login, created_at, updated_at
    FROM users
    WHERE username = $1;`

	listUsers = `SELECT id, username, email, hashed_password, full_name, role, department_id, is_active, last_login, created_at, updated_at
    FROM users
    ORDER BY username
    LIMIT $1 OFFSET $2;`

	countUsers = `SELECT COUNT(*) FROM users;`

	updateUser = `UPDATE users
    SET email = $2, full_name = $3, role = $4, department_id = $5, is_active = $6, hashed_password = $7, updated_at = $8
    WHERE id = $1
    RETURNING id, username, email, hashed_password, full_name, role, department_id, is_active, last_login, created_at, updated_at;`

	updateUserLastLogin = `UPDATE users SET last_login = $2 WHERE id = $1;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	createDepartment = `INSERT INTO departments (id, name, code, description, head_user_id, is_active, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id, name, code, description, head_user_id, is_active, created_at, updated_at;`

	getDepartmentByID = `SELECT id, name, code, description, head_user_id, is_active, created_at, updated_at
    FROM departments
    WHERE id = $1;`

	getDepartmentByCode = `SELECT id, name, code, description, head_user_id, is_active, created_at, updated_at
    FROM departments
    WHERE code = $1;`

	updateDepartment = `UPDATE departments
    SET name = $2, code = $3, description = $4, head_user_id = $5, is_active = $6, updated_at = $7
    WHERE id = $1
    RETURNING id, name, code, description, head_user_id, is_active, created_at, updated_at;`

	deleteDepartment = `DELETE FROM departments WHERE id = $1;`

	countDepartmentBudgets = `SELECT COUNT(*) FROM budgets WHERE department_id = $1;`

	createBudget = `INSERT INTO budgets (id, department_id, fiscal_year, total_amount, spent_amount, remaining_amount, description, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING id, department_id, fiscal_year, total_amount, spent_amount, remaining_amount, description, created_at, updated_at;`

	getBudgetByID = `SELECT id, department_id, fiscal_year, total_amount, spent_amount, remaining_amount, description, created_at, updated_at
    FROM budgets
    WHERE id = $1;`

	getBudgetByDeptAndYear = `SELECT id, department_id, fiscal_year, total_amount, spent_amount, remaining_amount, description, created_at, updated_at
    FROM budgets
    WHERE department_id = $1 AND fiscal_year = $2;`

	updateBudget = `UPDATE budgets
    SET total_amount = $2, remaining_amount = $3, description = $4, updated_at = $5
    WHERE id = $1
    RETURNING id, department_id, fiscal_year, total_amount, spent_amount, remaining_amount, description, created_at, updated_at;`

	deleteBudget = `DELETE FROM budgets WHERE id = $1;`

	countBudgetTransactions = `SELECT COUNT(*) FROM transactions WHERE budget_id = $1;`

	// applySpentDelta adjusts a budget's spent amount by a signed delta,
	// clamping spent at zero and keeping remaining = total - spent. The
	// WHERE guard fails the update (zero rows) when a positive delta
	// exceeds the remaining balance.
	applySpentDelta = `UPDATE budgets
    SET spent_amount = CASE WHEN spent_amount + $2 < 0 THEN 0 ELSE spent_amount + $2 END,
        remaining_amount = total_amount - (CASE WHEN spent_amount + $2 < 0 THEN 0 ELSE spent_amount + $2 END),
        updated_at = $3
    WHERE id = $1 AND ($2 <= 0 OR remaining_amount >= $2);`

	createTransaction = `INSERT INTO transactions (id, budget_id, transaction_type, amount, description, reference_number, transaction_date, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING id, budget_id, transaction_type, amount, description, reference_number, transaction_date, created_at, updated_at;`

	getTransactionByID = `SELECT id, budget_id, transaction_type, amount, description, reference_number, transaction_date, created_at, updated_at
    FROM transactions
    WHERE id = $1;`

	getTransactionByReference = `SELECT id, budget_id, transaction_type, amount, description, reference_number, transaction_date, created_at, updated_at
    FROM transactions
    WHERE reference_number = $1;`

	updateTransaction = `UPDATE transactions
    SET amount = $2, description = $3, reference_number = $4, transaction_date = $5, updated_at = $6
    WHERE id = $1
    RETURNING id, budget_id, transaction_type, amount, description, reference_number, transaction_date, created_at, updated_at;`

	deleteTransaction = `DELETE FROM transactions WHERE id = $1;`

	insertAuditLog = `INSERT INTO audit_logs (id, user_id, action, resource_type, resource_id, details, ip_address, user_agent, ts)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

	getAuditLogByID = `SELECT id, user_id, action, resource_type, resource_id, details, ip_address, user_agent, ts
    FROM audit_logs
    WHERE id = $1;`

	deleteAuditLog = `DELETE FROM audit_logs WHERE id = $1;`

	distinctAuditActions = `SELECT DISTINCT action FROM audit_logs ORDER BY action;`

	distinctAuditResourceTypes = `SELECT DISTINCT resource_type FROM audit_logs ORDER BY resource_type;`

	countAuditLogs = `SELECT COUNT(*) FROM audit_logs;`

	auditCountsByAction = `SELECT action, COUNT(*) FROM audit_logs GROUP BY action;`

	auditCountsByResource = `SELECT resource_type, COUNT(*) FROM audit_logs GROUP BY resource_type;`
)
