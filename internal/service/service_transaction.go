package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/store"
	"github.com/unifin/finapi/models"
)

// transactionService is the concrete implementation of TransactionService.
// Every mutation goes through the store's cascade methods, so the owning
// budget's spent and remaining amounts never drift from the posted
// transactions.
type transactionService struct {
	transactionRepository store.TransactionRepository
	budgetRepository      store.BudgetRepository
	auditService          AuditService
	notifier              Notifier
	logger                *logger.Logger
}

// NewTransactionService constructs a TransactionService wired to the given
// repositories, audit trail and utilization notifier.
func NewTransactionService(transactionRepository store.TransactionRepository, budgetRepository store.BudgetRepository,
	auditService AuditService, notifier Notifier, logger *logger.Logger) TransactionService {
	return &transactionService{
		transactionRepository: transactionRepository,
		budgetRepository:      budgetRepository,
		auditService:          auditService,
		notifier:              notifier,
		logger:                logger,
	}
}

// CreateTransaction posts a transaction against a budget.
//
// Expenses and outgoing transfers add to the budget's spent amount and are
// rejected with [store.ErrInsufficientFunds] when they exceed the remaining
// balance. Refunds and incoming transfers release spent funds, clamping
// spent at zero. The transaction date defaults to the posting time.
func (s *transactionService) CreateTransaction(ctx context.Context, req models.TransactionCreateRequest) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	if err := req.Validate(); err != nil {
		return models.Transaction{}, err
	}

	now := time.Now().UTC()
	transactionDate := now
	if req.TransactionDate != nil {
		transactionDate = req.TransactionDate.UTC()
	}

	txn := models.Transaction{
		ID:              uuid.New(),
		BudgetID:        req.BudgetID,
		Type:            req.Type,
		Amount:          req.Amount,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		TransactionDate: transactionDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.transactionRepository.CreateTransactionWithCascade(ctx, txn)
	if err != nil {
		if !errors.Is(err, store.ErrInsufficientFunds) && !errors.Is(err, store.ErrBudgetNotFound) {
			log.Err(err).Str("budget_id", req.BudgetID.String()).Msg("transaction posting ended with error")
		}
		return models.Transaction{}, fmt.Errorf("transaction posting ended with error: %w", err)
	}

	s.auditService.Record(ctx, models.AuditActionCreate, models.AuditResourceTransaction, created.ID.String(),
		map[string]any{"transaction_type": string(created.Type), "amount": created.Amount.String()})

	s.notifyIfThresholdCrossed(ctx, created.BudgetID)

	return created, nil
}

// GetTransaction retrieves one transaction.
func (s *transactionService) GetTransaction(ctx context.Context, id uuid.UUID) (models.Transaction, error) {
	txn, err := s.transactionRepository.GetTransactionByID(ctx, id)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("finding transaction ended with error: %w", err)
	}
	return txn, nil
}

// ListTransactions returns one page of transactions matching the filter.
func (s *transactionService) ListTransactions(ctx context.Context, filter models.TransactionFilter, page models.PageParams) (models.Paginated[models.Transaction], error) {
	transactions, total, err := s.transactionRepository.ListTransactions(ctx, filter, page)
	if err != nil {
		return models.Paginated[models.Transaction]{}, fmt.Errorf("listing transactions ended with error: %w", err)
	}

	return models.Paginated[models.Transaction]{
		Items:  transactions,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

// UpdateTransaction applies the non-nil fields of req to a posted
// transaction. The transaction type is immutable; an amount change moves
// the budget's spent amount by the signed difference, subject to the same
// remaining-balance guard as posting.
func (s *transactionService) UpdateTransaction(ctx context.Context, id uuid.UUID, req models.TransactionUpdateRequest) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	if err := req.Validate(); err != nil {
		return models.Transaction{}, err
	}

	txn, err := s.transactionRepository.GetTransactionByID(ctx, id)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("finding transaction ended with error: %w", err)
	}

	previousDelta := txn.SpentDelta()
	changes := map[string]any{}
	if req.Amount != nil && !req.Amount.Equal(txn.Amount) {
		changes["amount"] = req.Amount.String()
		txn.Amount = *req.Amount
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.ReferenceNumber != nil {
		txn.ReferenceNumber = *req.ReferenceNumber
	}
	if req.TransactionDate != nil {
		txn.TransactionDate = req.TransactionDate.UTC()
	}

	spentDelta := txn.SpentDelta().Sub(previousDelta)
	updated, err := s.transactionRepository.UpdateTransactionWithCascade(ctx, txn, spentDelta)
	if err != nil {
		if !errors.Is(err, store.ErrInsufficientFunds) {
			log.Err(err).Str("transaction_id", id.String()).Msg("transaction update ended with error")
		}
		return models.Transaction{}, fmt.Errorf("transaction update ended with error: %w", err)
	}

	if len(changes) > 0 {
		s.auditService.Record(ctx, models.AuditActionUpdate, models.AuditResourceTransaction, id.String(), changes)
	}

	s.notifyIfThresholdCrossed(ctx, updated.BudgetID)

	return updated, nil
}

// DeleteTransaction removes a posted transaction and reverses its effect on
// the owning budget.
func (s *transactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	txn, err := s.transactionRepository.GetTransactionByID(ctx, id)
	if err != nil {
		return fmt.Errorf("finding transaction ended with error: %w", err)
	}

	if err := s.transactionRepository.DeleteTransactionWithCascade(ctx, txn); err != nil {
		log.Err(err).Str("transaction_id", id.String()).Msg("transaction deletion ended with error")
		return fmt.Errorf("transaction deletion ended with error: %w", err)
	}

	s.auditService.Record(ctx, models.AuditActionDelete, models.AuditResourceTransaction, id.String(),
		map[string]any{"transaction_type": string(txn.Type), "amount": txn.Amount.String()})

	return nil
}

// notifyIfThresholdCrossed re-reads the budget after a cascade and hands it
// to the notifier. Failures only cost the alert, never the operation.
func (s *transactionService) notifyIfThresholdCrossed(ctx context.Context, budgetID uuid.UUID) {
	if s.notifier == nil {
		return
	}

	budget, err := s.budgetRepository.GetBudgetByID(ctx, budgetID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("budget_id", budgetID.String()).Msg("error reading budget for utilization alert")
		return
	}

	s.notifier.BudgetThresholdCrossed(ctx, budget)
}
