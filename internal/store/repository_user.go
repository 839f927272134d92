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

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] as stored.
//
// Error handling:
//   - unique violation on username or email → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.ID, user.Username, user.Email, user.HashedPassword, user.FullName,
		user.Role, user.DepartmentID, user.IsActive, user.LastLogin,
		user.CreatedAt, user.UpdatedAt)

	saved, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error saving user")
		if isUniqueViolation(err) {
			return models.User{}, ErrUserAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// GetUserByID retrieves a user record by its identifier.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, getUserByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// GetUserByUsername retrieves a user record by its unique username.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, getUserByUsername, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetUserByUsername").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// ListUsers returns one page of users ordered by username, along with the
// total user count.
func (r *userRepository) ListUsers(ctx context.Context, page models.PageParams) ([]models.User, int64, error) {
	log := logger.FromContext(ctx)

	var total int64
	if err := r.db.QueryRowContext(ctx, countUsers).Scan(&total); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error counting users")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listUsers, page.Limit, page.Offset)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, page.Limit)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return users, total, nil
}

// UpdateUser rewrites the mutable fields of a user record and returns the
// stored row. Returns [ErrUserNotFound] when the user does not exist and
// [ErrUserAlreadyExists] when the new email collides with another account.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateUser,
		user.ID, user.Email, user.FullName, user.Role, user.DepartmentID,
		user.IsActive, user.HashedPassword, time.Now().UTC())

	saved, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")
		if isUniqueViolation(err) {
			return models.User{}, ErrUserAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// UpdateLastLogin stamps the user's last successful authentication time.
func (r *userRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, updateUserLastLogin, id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// DeleteUser removes a user record.
// Returns [ErrUserNotFound] when no row was deleted.
func (r *userRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteUser, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var lastLogin sql.NullTime

	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.HashedPassword,
		&user.FullName, &user.Role, &user.DepartmentID, &user.IsActive,
		&lastLogin, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return models.User{}, err
	}

	if lastLogin.Valid {
		t := lastLogin.Time
		user.LastLogin = &t
	}

	return user, nil
}
