package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/models"
)

// departmentRepository is the SQL-backed implementation of
// [DepartmentRepository].
type departmentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDepartmentRepository constructs a [DepartmentRepository] backed by the
// provided database connection and logger.
func NewDepartmentRepository(db *DB, logger *logger.Logger) DepartmentRepository {
	logger.Debug().Msg("creating department repository")
	return &departmentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDepartment persists a new department and returns the stored row.
// A unique violation on name or code maps to [ErrDepartmentAlreadyExists].
func (r *departmentRepository) CreateDepartment(ctx context.Context, department models.Department) (models.Department, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDepartment,
		department.ID, department.Name, department.Code, department.Description,
		department.HeadUserID, department.IsActive, department.CreatedAt, department.UpdatedAt)

	saved, err := scanDepartment(row)
	if err != nil {
		log.Err(err).Str("func", "*departmentRepository.CreateDepartment").Msg("error saving department")
		if isUniqueViolation(err) {
			return models.Department{}, ErrDepartmentAlreadyExists
		}
		return models.Department{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// GetDepartmentByID retrieves a department by its identifier.
// Returns [ErrDepartmentNotFound] when no row matches.
func (r *departmentRepository) GetDepartmentByID(ctx context.Context, id uuid.UUID) (models.Department, error) {
	department, err := scanDepartment(r.db.QueryRowContext(ctx, getDepartmentByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Department{}, ErrDepartmentNotFound
		}
		return models.Department{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return department, nil
}

// GetDepartmentByCode retrieves a department by its unique code.
// Returns [ErrDepartmentNotFound] when no row matches.
func (r *departmentRepository) GetDepartmentByCode(ctx context.Context, code string) (models.Department, error) {
	department, err := scanDepartment(r.db.QueryRowContext(ctx, getDepartmentByCode, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Department{}, ErrDepartmentNotFound
		}
		return models.Department{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return department, nil
}

// ListDepartments returns one page of departments ordered by name, plus the
// matching total. When activeOnly is set, inactive departments are skipped.
func (r *departmentRepository) ListDepartments(ctx context.Context, activeOnly bool, page models.PageParams) ([]models.Department, int64, error) {
	log := logger.FromContext(ctx)

	listQuery := builder.
		Select("id", "name", "code", "description", "head_user_id", "is_active", "created_at", "updated_at").
		From("departments").
		OrderBy("name").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset))
	countQuery := builder.Select("COUNT(*)").From("departments")

	if activeOnly {
		listQuery = listQuery.Where("is_active = TRUE")
		countQuery = countQuery.Where("is_active = TRUE")
	}

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*departmentRepository.ListDepartments").Msg("error counting departments")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	listSQL, listArgs, err := listQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*departmentRepository.ListDepartments").Msg("error listing departments")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	departments := make([]models.Department, 0, page.Limit)
	for rows.Next() {
		department, err := scanDepartment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		departments = append(departments, department)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return departments, total, nil
}

// UpdateDepartment rewrites the mutable fields of a department and returns
// the stored row.
func (r *departmentRepository) UpdateDepartment(ctx context.Context, department models.Department) (models.Department, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateDepartment,
		department.ID, department.Name, department.Code, department.Description,
		department.HeadUserID, department.IsActive, time.Now().UTC())

	saved, err := scanDepartment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Department{}, ErrDepartmentNotFound
		}
		log.Err(err).Str("func", "*departmentRepository.UpdateDepartment").Msg("error updating department")
		if isUniqueViolation(err) {
			return models.Department{}, ErrDepartmentAlreadyExists
		}
		return models.Department{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// DeleteDepartment removes a department.
// Returns [ErrReferencedRows] when budgets still reference it and
// [ErrDepartmentNotFound] when no row was deleted.
func (r *departmentRepository) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	var budgets int64
	if err := r.db.QueryRowContext(ctx, countDepartmentBudgets, id).Scan(&budgets); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if budgets > 0 {
		return ErrReferencedRows
	}

	res, err := r.db.ExecContext(ctx, deleteDepartment, id)
	if err != nil {
		log.Err(err).Str("func", "*departmentRepository.DeleteDepartment").Msg("error deleting department")
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
		return ErrDepartmentNotFound
	}

	return nil
}

func scanDepartment(row rowScanner) (models.Department, error) {
	var department models.Department
	var description sql.NullString

	err := row.Scan(&department.ID, &department.Name, &department.Code, &description,
		&department.HeadUserID, &department.IsActive, &department.CreatedAt, &department.UpdatedAt)
	if err != nil {
		return models.Department{}, err
	}

	department.Description = description.String
	return department, nil
}
