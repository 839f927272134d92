package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies how a transaction affects its budget.
type TransactionType string

const (
	// TransactionExpense is a regular spend against the budget.
	TransactionExpense TransactionType = "expense"
	// TransactionRefund returns previously spent funds to the budget.
	TransactionRefund TransactionType = "refund"
	// TransactionTransferIn moves funds into the budget from another one.
	TransactionTransferIn TransactionType = "transfer_in"
	// TransactionTransferOut moves funds out of the budget to another one.
	TransactionTransferOut TransactionType = "transfer_out"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionExpense, TransactionRefund, TransactionTransferIn, TransactionTransferOut:
		return true
	}
	return false
}

// Spends reports whether the type consumes budget funds and therefore
// requires sufficient remaining balance when posted.
func (t TransactionType) Spends() bool {
	return t == TransactionExpense || t == TransactionTransferOut
}

// Transaction records an actual movement of budgeted funds.
type Transaction struct {
	ID uuid.UUID `json:"id"`

	BudgetID uuid.UUID `json:"budget_id"`

	Type TransactionType `json:"transaction_type"`

	// Amount is always positive; the direction of the budget adjustment is
	// derived from Type (see SpentDelta).
	Amount decimal.Decimal `json:"amount"`

	Description string `json:"description"`

	// ReferenceNumber is an optional external document reference
	// (invoice or order number).
	ReferenceNumber string `json:"reference_number,omitempty"`

	TransactionDate time.Time `json:"transaction_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SpentDelta returns the signed change this transaction applies to its
// budget's spent amount: positive for expense/transfer_out, negative for
// refund/transfer_in.
func (t Transaction) SpentDelta() decimal.Decimal {
	if t.Type.Spends() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// TableName returns the name of the database table
// associated with the Transaction model.
func (t Transaction) TableName() string {
	return "transactions"
}
