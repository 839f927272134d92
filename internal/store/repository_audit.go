package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/models"
)

// auditRepository is the SQL-backed implementation of [AuditRepository].
// The details payload is stored as a JSON document in a TEXT column, which
// keeps the schema identical across the postgres and sqlite drivers.
type auditRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuditRepository constructs an [AuditRepository] backed by the provided
// database connection and logger.
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("creating audit repository")
	return &auditRepository{
		db:     db,
		logger: logger,
	}
}

// InsertAuditLog persists one audit entry.
func (r *auditRepository) InsertAuditLog(ctx context.Context, entry models.AuditLog) (models.AuditLog, error) {
	log := logger.FromContext(ctx)

	details, err := marshalAuditDetails(entry.Details)
	if err != nil {
		return models.AuditLog{}, err
	}

	_, err = r.db.ExecContext(ctx, insertAuditLog,
		entry.ID, entry.UserID, entry.Action, entry.ResourceType, entry.ResourceID,
		details, entry.IPAddress, entry.UserAgent, entry.Timestamp)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.InsertAuditLog").Msg("error saving audit log")
		return models.AuditLog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

// GetAuditLogByID retrieves one audit entry.
// Returns [ErrAuditLogNotFound] when no row matches.
func (r *auditRepository) GetAuditLogByID(ctx context.Context, id uuid.UUID) (models.AuditLog, error) {
	entry, err := scanAuditLog(r.db.QueryRowContext(ctx, getAuditLogByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AuditLog{}, ErrAuditLogNotFound
		}
		return models.AuditLog{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return entry, nil
}

// ListAuditLogs returns one page of audit entries (newest first) matching
// the filter, plus the matching total.
func (r *auditRepository) ListAuditLogs(ctx context.Context, filter models.AuditFilter, page models.PageParams) ([]models.AuditLog, int64, error) {
	log := logger.FromContext(ctx)

	listQuery := builder.
		Select("id", "user_id", "action", "resource_type", "resource_id",
			"details", "ip_address", "user_agent", "ts").
		From("audit_logs").
		OrderBy("ts DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset))
	countQuery := builder.Select("COUNT(*)").From("audit_logs")

	applyFilter := func(q squirrel.SelectBuilder) squirrel.SelectBuilder {
		if filter.UserID.Valid {
			q = q.Where("user_id = ?", filter.UserID.UUID)
		}
		if filter.Action != "" {
			q = q.Where("action = ?", filter.Action)
		}
		if filter.ResourceType != "" {
			q = q.Where("resource_type = ?", filter.ResourceType)
		}
		if !filter.From.IsZero() {
			q = q.Where("ts >= ?", filter.From)
		}
		if !filter.To.IsZero() {
			q = q.Where("ts <= ?", filter.To)
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
		log.Err(err).Str("func", "*auditRepository.ListAuditLogs").Msg("error counting audit logs")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	listSQL, listArgs, err := listQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.ListAuditLogs").Msg("error listing audit logs")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.AuditLog, 0, page.Limit)
	for rows.Next() {
		entry, err := scanAuditLog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entries, total, nil
}

// DeleteAuditLog removes one audit entry.
// Returns [ErrAuditLogNotFound] when no row matches.
func (r *auditRepository) DeleteAuditLog(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteAuditLog, id)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.DeleteAuditLog").Msg("error deleting audit log")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAuditLogNotFound
	}

	return nil
}

// DistinctActions returns every action value present in the audit log.
func (r *auditRepository) DistinctActions(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, distinctAuditActions)
}

// DistinctResourceTypes returns every resource type present in the audit log.
func (r *auditRepository) DistinctResourceTypes(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, distinctAuditResourceTypes)
}

func (r *auditRepository) distinctColumn(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return values, nil
}

// AuditStats aggregates totals per action and per resource type.
func (r *auditRepository) AuditStats(ctx context.Context) (models.AuditStats, error) {
	log := logger.FromContext(ctx)

	stats := models.AuditStats{
		ByAction:   make(map[string]int64),
		ByResource: make(map[string]int64),
	}

	if err := r.db.QueryRowContext(ctx, countAuditLogs).Scan(&stats.Total); err != nil {
		log.Err(err).Str("func", "*auditRepository.AuditStats").Msg("error counting audit logs")
		return models.AuditStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := r.groupedCounts(ctx, auditCountsByAction, stats.ByAction); err != nil {
		log.Err(err).Str("func", "*auditRepository.AuditStats").Msg("error grouping by action")
		return models.AuditStats{}, err
	}
	if err := r.groupedCounts(ctx, auditCountsByResource, stats.ByResource); err != nil {
		log.Err(err).Str("func", "*auditRepository.AuditStats").Msg("error grouping by resource type")
		return models.AuditStats{}, err
	}

	return stats, nil
}

func (r *auditRepository) groupedCounts(ctx context.Context, query string, dst map[string]int64) error {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		dst[key] = count
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func marshalAuditDetails(details map[string]any) (sql.NullString, error) {
	if len(details) == 0 {
		return sql.NullString{}, nil
	}

	raw, err := json.Marshal(details)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("marshalling audit details: %w", err)
	}
	return sql.NullString{String: string(raw), Valid: true}, nil
}

func scanAuditLog(row rowScanner) (models.AuditLog, error) {
	var entry models.AuditLog
	var resourceID, details, ip, agent sql.NullString

	err := row.Scan(&entry.ID, &entry.UserID, &entry.Action, &entry.ResourceType,
		&resourceID, &details, &ip, &agent, &entry.Timestamp)
	if err != nil {
		return models.AuditLog{}, err
	}

	entry.ResourceID = resourceID.String
	entry.IPAddress = ip.String
	entry.UserAgent = agent.String

	if details.Valid {
		if err := json.Unmarshal([]byte(details.String), &entry.Details); err != nil {
			return models.AuditLog{}, fmt.Errorf("unmarshalling audit details: %w", err)
		}
	}

	return entry, nil
}
