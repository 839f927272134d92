package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/store"
	"github.com/unifin/finapi/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	auditService   AuditService
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, auditService AuditService, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		auditService:   auditService,
		logger:         logger,
	}
}

// GetUser retrieves one user account.
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("finding user ended with error: %w", err)
	}
	return user, nil
}

// ListUsers returns one page of user accounts.
func (s *userService) ListUsers(ctx context.Context, page models.PageParams) (models.Paginated[models.User], error) {
	users, total, err := s.userRepository.ListUsers(ctx, page)
	if err != nil {
		return models.Paginated[models.User]{}, fmt.Errorf("listing users ended with error: %w", err)
	}

	return models.Paginated[models.User]{
		Items:  users,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

// UpdateUser applies the non-nil fields of req to the stored account.
// The changed fields are recorded in the audit trail.
func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, req models.UserUpdateRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := req.Validate(); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("finding user ended with error: %w", err)
	}

	changes := map[string]any{}
	if req.Email != nil && *req.Email != user.Email {
		changes["email"] = *req.Email
		user.Email = *req.Email
	}
	if req.FullName != nil && *req.FullName != user.FullName {
		changes["full_name"] = *req.FullName
		user.FullName = *req.FullName
	}
	if req.Role != nil && *req.Role != user.Role {
		changes["role"] = string(*req.Role)
		user.Role = *req.Role
	}
	if req.DepartmentID != nil {
		changes["department_id"] = req.DepartmentID.UUID.String()
		user.DepartmentID = *req.DepartmentID
	}
	if req.IsActive != nil && *req.IsActive != user.IsActive {
		changes["is_active"] = *req.IsActive
		user.IsActive = *req.IsActive
	}

	updated, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("user_id", id.String()).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	if len(changes) > 0 {
		s.auditService.Record(ctx, models.AuditActionUpdate, models.AuditResourceUser, id.String(), changes)
	}

	return updated, nil
}

// DeleteUser removes a user account.
func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		log.Err(err).Str("user_id", id.String()).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	s.auditService.Record(ctx, models.AuditActionDelete, models.AuditResourceUser, id.String(), nil)
	return nil
}
