package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/store"
	"github.com/unifin/finapi/internal/utils"
	"github.com/unifin/finapi/models"
)

// auditService is the concrete implementation of AuditService.
type auditService struct {
	auditRepository store.AuditRepository
	logger          *logger.Logger
}

// NewAuditService constructs an AuditService wired to the given
// AuditRepository.
func NewAuditService(auditRepository store.AuditRepository, logger *logger.Logger) AuditService {
	return &auditService{
		auditRepository: auditRepository,
		logger:          logger,
	}
}

// Record writes one audit entry, attributing it to the actor and client
// stored in the request context. Best-effort: a failed write is logged and
// swallowed so the audited operation still succeeds.
func (s *auditService) Record(ctx context.Context, action, resourceType, resourceID string, details map[string]any) {
	log := logger.FromContext(ctx)

	entry := models.AuditLog{
		ID:           uuid.New(),
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Details:      details,
		Timestamp:    time.Now().UTC(),
	}
	if meta, ok := utils.GetAuditMetaFromContext(ctx); ok {
		entry.UserID = meta.UserID
		entry.IPAddress = meta.IPAddress
		entry.UserAgent = meta.UserAgent
	}

	if _, err := s.auditRepository.InsertAuditLog(ctx, entry); err != nil {
		log.Err(err).Str("action", action).Str("resource_type", resourceType).Msg("error recording audit entry")
	}
}

// GetAuditLog retrieves one audit entry.
func (s *auditService) GetAuditLog(ctx context.Context, id uuid.UUID) (models.AuditLog, error) {
	entry, err := s.auditRepository.GetAuditLogByID(ctx, id)
	if err != nil {
		return models.AuditLog{}, fmt.Errorf("finding audit log ended with error: %w", err)
	}
	return entry, nil
}

// ListAuditLogs returns one page of audit entries matching the filter.
func (s *auditService) ListAuditLogs(ctx context.Context, filter models.AuditFilter, page models.PageParams) (models.Paginated[models.AuditLog], error) {
	entries, total, err := s.auditRepository.ListAuditLogs(ctx, filter, page)
	if err != nil {
		return models.Paginated[models.AuditLog]{}, fmt.Errorf("listing audit logs ended with error: %w", err)
	}

	return models.Paginated[models.AuditLog]{
		Items:  entries,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

// DeleteAuditLog removes one audit entry.
func (s *auditService) DeleteAuditLog(ctx context.Context, id uuid.UUID) error {
	if err := s.auditRepository.DeleteAuditLog(ctx, id); err != nil {
		return fmt.Errorf("audit log deletion ended with error: %w", err)
	}
	return nil
}

// Actions returns every distinct action recorded so far.
func (s *auditService) Actions(ctx context.Context) ([]string, error) {
	actions, err := s.auditRepository.DistinctActions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing audit actions ended with error: %w", err)
	}
	return actions, nil
}

// ResourceTypes returns every distinct resource type recorded so far.
func (s *auditService) ResourceTypes(ctx context.Context) ([]string, error) {
	resourceTypes, err := s.auditRepository.DistinctResourceTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing audit resource types ended with error: %w", err)
	}
	return resourceTypes, nil
}

// Stats summarizes audit activity by action and resource type.
func (s *auditService) Stats(ctx context.Context) (models.AuditStats, error) {
	stats, err := s.auditRepository.AuditStats(ctx)
	if err != nil {
		return models.AuditStats{}, fmt.Errorf("collecting audit stats ended with error: %w", err)
	}
	return stats, nil
}
