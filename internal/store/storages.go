package store

import (
	"context"

	"github.com/unifin/finapi/internal/config"
	"github.com/unifin/finapi/internal/logger"
)

// Storages bundles every repository behind a single dependency for the
// service layer.
type Storages struct {
	UserRepository        UserRepository
	DepartmentRepository  DepartmentRepository
	BudgetRepository      BudgetRepository
	TransactionRepository TransactionRepository
	AuditRepository       AuditRepository
	ReportRepository      ReportRepository

	db *DB
}

// NewStorages connects to the configured database, applies pending
// migrations, and wires every repository.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		DepartmentRepository:  NewDepartmentRepository(db, log),
		BudgetRepository:      NewBudgetRepository(db, log),
		TransactionRepository: NewTransactionRepository(db, log),
		AuditRepository:       NewAuditRepository(db, log),
		ReportRepository:      NewReportRepository(db, log),
		db:                    db,
	}, nil
}

// Ping verifies database connectivity for the health endpoint.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the underlying database handle.
func (s *Storages) Close() error {
	return s.db.Close()
}
