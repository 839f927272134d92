package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/store"
	"github.com/unifin/finapi/models"
)

// departmentService is the concrete implementation of DepartmentService.
type departmentService struct {
	departmentRepository store.DepartmentRepository
	auditService         AuditService
	logger               *logger.Logger
}

// NewDepartmentService constructs a DepartmentService wired to the given
// DepartmentRepository.
func NewDepartmentService(departmentRepository store.DepartmentRepository, auditService AuditService, logger *logger.Logger) DepartmentService {
	return &departmentService{
		departmentRepository: departmentRepository,
		auditService:         auditService,
		logger:               logger,
	}
}

// CreateDepartment registers a new organizational unit.
// Returns [store.ErrDepartmentAlreadyExists] when the name or code is taken.
func (s *departmentService) CreateDepartment(ctx context.Context, req models.DepartmentCreateRequest) (models.Department, error) {
	log := logger.FromContext(ctx)

	if err := req.Validate(); err != nil {
		return models.Department{}, err
	}

	now := time.Now().UTC()
	department := models.Department{
		ID:          uuid.New(),
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		HeadUserID:  req.HeadUserID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.departmentRepository.CreateDepartment(ctx, department)
	if err != nil {
		log.Err(err).Str("code", req.Code).Msg("department creation ended with error")
		return models.Department{}, fmt.Errorf("department creation ended with error: %w", err)
	}

	s.auditService.Record(ctx, models.AuditActionCreate, models.AuditResourceDepartment, created.ID.String(),
		map[string]any{"name": created.Name, "code": created.Code})

	return created, nil
}

// GetDepartment retrieves one department.
func (s *departmentService) GetDepartment(ctx context.Context, id uuid.UUID) (models.Department, error) {
	department, err := s.departmentRepository.GetDepartmentByID(ctx, id)
	if err != nil {
		return models.Department{}, fmt.Errorf("finding department ended with error: %w", err)
	}
	return department, nil
}

// ListDepartments returns one page of departments, optionally restricted to
// active ones.
func (s *departmentService) ListDepartments(ctx context.Context, activeOnly bool, page models.PageParams) (models.Paginated[models.Department], error) {
	departments, total, err := s.departmentRepository.ListDepartments(ctx, activeOnly, page)
	if err != nil {
		return models.Paginated[models.Department]{}, fmt.Errorf("listing departments ended with error: %w", err)
	}

	return models.Paginated[models.Department]{
		Items:  departments,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

// UpdateDepartment applies the non-nil fields of req to the stored
// department.
func (s *departmentService) UpdateDepartment(ctx context.Context, id uuid.UUID, req models.DepartmentUpdateRequest) (models.Department, error) {
	log := logger.FromContext(ctx)

	if err := req.Validate(); err != nil {
		return models.Department{}, err
	}

	department, err := s.departmentRepository.GetDepartmentByID(ctx, id)
	if err != nil {
		return models.Department{}, fmt.Errorf("finding department ended with error: %w", err)
	}

	changes := map[string]any{}
	if req.Name != nil && *req.Name != department.Name {
		changes["name"] = *req.Name
		department.Name = *req.Name
	}
	if req.Code != nil && *req.Code != department.Code {
		changes["code"] = *req.Code
		department.Code = *req.Code
	}
	if req.Description != nil {
		department.Description = *req.Description
	}
	if req.HeadUserID != nil {
		changes["head_user_id"] = req.HeadUserID.UUID.String()
		department.HeadUserID = *req.HeadUserID
	}
	if req.IsActive != nil && *req.IsActive != department.IsActive {
		changes["is_active"] = *req.IsActive
		department.IsActive = *req.IsActive
	}

	updated, err := s.departmentRepository.UpdateDepartment(ctx, department)
	if err != nil {
		log.Err(err).Str("department_id", id.String()).Msg("department update ended with error")
		return models.Department{}, fmt.Errorf("department update ended with error: %w", err)
	}

	if len(changes) > 0 {
		s.auditService.Record(ctx, models.AuditActionUpdate, models.AuditResourceDepartment, id.String(), changes)
	}

	return updated, nil
}

// DeleteDepartment removes a department.
// Returns [store.ErrReferencedRows] when budgets still reference it.
func (s *departmentService) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := s.departmentRepository.DeleteDepartment(ctx, id); err != nil {
		log.Err(err).Str("department_id", id.String()).Msg("department deletion ended with error")
		return fmt.Errorf("department deletion ended with error: %w", err)
	}

	s.auditService.Record(ctx, models.AuditActionDelete, models.AuditResourceDepartment, id.String(), nil)
	return nil
}
