package models

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrValidation is the sentinel wrapped by every request validation failure.
// Handlers match it with errors.Is to map the failure to HTTP 400.
var ErrValidation = errors.New("validation failed")

// fiscalYearRe matches budget periods of the form "2025-2026".
var fiscalYearRe = regexp.MustCompile(`^\d{4}-\d{4}$`)

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username     string        `json:"username"`
	Email        string        `json:"email"`
	Password     string        `json:"password"`
	FullName     string        `json:"full_name"`
	DepartmentID uuid.NullUUID `json:"department_id"`
}

// Validate checks the registration payload. Password strength rules follow
// the account policy: minimum length plus at least one digit, one upper, one
// lower and one special character.
func (r RegisterRequest) Validate(minPasswordLength int) error {
	if r.Username == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if r.FullName == "" {
		return fmt.Errorf("%w: full name is required", ErrValidation)
	}
	if err := CheckPasswordStrength(r.Password, minPasswordLength); err != nil {
		return err
	}
	return nil
}

// CheckPasswordStrength enforces the account password policy.
func CheckPasswordStrength(password string, minLength int) error {
	if len(password) < minLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minLength)
	}
	var hasDigit, hasUpper, hasLower, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsDigit(c):
			hasDigit = true
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsPunct(c) || unicode.IsSymbol(c):
			hasSpecial = true
		}
	}
	if !hasDigit || !hasUpper || !hasLower || !hasSpecial {
		return fmt.Errorf("%w: password needs a digit, an upper and lower case letter and a special character", ErrValidation)
	}
	return nil
}

// LoginRequest is the body of POST /api/auth/token.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Username == "" || r.Password == "" {
		return fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	return nil
}

// RefreshRequest is the body of POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RefreshRequest) Validate() error {
	if r.RefreshToken == "" {
		return fmt.Errorf("%w: refresh_token is required", ErrValidation)
	}
	return nil
}

// ChangePasswordRequest is the body of POST /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r ChangePasswordRequest) Validate(minPasswordLength int) error {
	if r.CurrentPassword == "" {
		return fmt.Errorf("%w: current password is required", ErrValidation)
	}
	return CheckPasswordStrength(r.NewPassword, minPasswordLength)
}

// UserUpdateRequest is the body of PUT /api/users/{id}. Nil fields are
// left unchanged.
type UserUpdateRequest struct {
	Email        *string        `json:"email,omitempty"`
	FullName     *string        `json:"full_name,omitempty"`
	Role         *Role          `json:"role,omitempty"`
	DepartmentID *uuid.NullUUID `json:"department_id,omitempty"`
	IsActive     *bool          `json:"is_active,omitempty"`
}

func (r UserUpdateRequest) Validate() error {
	if r.Email != nil {
		if _, err := mail.ParseAddress(*r.Email); err != nil {
			return fmt.Errorf("%w: invalid email address", ErrValidation)
		}
	}
	if r.Role != nil && !r.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, *r.Role)
	}
	if r.FullName != nil && *r.FullName == "" {
		return fmt.Errorf("%w: full name cannot be empty", ErrValidation)
	}
	return nil
}

// DepartmentCreateRequest is the body of POST /api/departments.
type DepartmentCreateRequest struct {
	Name        string        `json:"name"`
	Code        string        `json:"code"`
	Description string        `json:"description"`
	HeadUserID  uuid.NullUUID `json:"head_user_id"`
}

func (r DepartmentCreateRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: department name is required", ErrValidation)
	}
	if r.Code == "" {
		return fmt.Errorf("%w: department code is required", ErrValidation)
	}
	if len(r.Name) > 100 || len(r.Code) > 20 {
		return fmt.Errorf("%w: department name or code is too long", ErrValidation)
	}
	return nil
}

// DepartmentUpdateRequest is the body of PUT /api/departments/{id}.
type DepartmentUpdateRequest struct {
	Name        *string        `json:"name,omitempty"`
	Code        *string        `json:"code,omitempty"`
	Description *string        `json:"description,omitempty"`
	HeadUserID  *uuid.NullUUID `json:"head_user_id,omitempty"`
	IsActive    *bool          `json:"is_active,omitempty"`
}

func (r DepartmentUpdateRequest) Validate() error {
	if r.Name != nil && (*r.Name == "" || len(*r.Name) > 100) {
		return fmt.Errorf("%w: invalid department name", ErrValidation)
	}
	if r.Code != nil && (*r.Code == "" || len(*r.Code) > 20) {
		return fmt.Errorf("%w: invalid department code", ErrValidation)
	}
	return nil
}

// BudgetCreateRequest is the body of POST /api/budgets.
type BudgetCreateRequest struct {
	DepartmentID uuid.UUID       `json:"department_id"`
	FiscalYear   string          `json:"fiscal_year"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Description  string          `json:"description"`
}

func (r BudgetCreateRequest) Validate() error {
	if r.DepartmentID == uuid.Nil {
		return fmt.Errorf("%w: department_id is required", ErrValidation)
	}
	if !fiscalYearRe.MatchString(r.FiscalYear) {
		return fmt.Errorf("%w: fiscal_year must look like 2025-2026", ErrValidation)
	}
	if r.TotalAmount.IsNegative() || r.TotalAmount.IsZero() {
		return fmt.Errorf("%w: total_amount must be positive", ErrValidation)
	}
	return nil
}

// BudgetUpdateRequest is the body of PUT /api/budgets/{id}.
// Department and fiscal year are fixed once a budget exists.
type BudgetUpdateRequest struct {
	TotalAmount *decimal.Decimal `json:"total_amount,omitempty"`
	Description *string          `json:"description,omitempty"`
}

func (r BudgetUpdateRequest) Validate() error {
	if r.TotalAmount != nil && !r.TotalAmount.IsPositive() {
		return fmt.Errorf("%w: total_amount must be positive", ErrValidation)
	}
	return nil
}

// TransactionCreateRequest is the body of POST /api/transactions.
type TransactionCreateRequest struct {
	BudgetID        uuid.UUID       `json:"budget_id"`
	Type            TransactionType `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	ReferenceNumber string          `json:"reference_number"`
	TransactionDate *time.Time      `json:"transaction_date,omitempty"`
}

func (r TransactionCreateRequest) Validate() error {
	if r.BudgetID == uuid.Nil {
		return fmt.Errorf("%w: budget_id is required", ErrValidation)
	}
	if !r.Type.Valid() {
		return fmt.Errorf("%w: unknown transaction type %q", ErrValidation, r.Type)
	}
	if !r.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if r.Description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	return nil
}

// TransactionUpdateRequest is the body of PUT /api/transactions/{id}.
// The transaction type is immutable; changing direction is expressed by
// deleting and re-posting.
type TransactionUpdateRequest struct {
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Description     *string          `json:"description,omitempty"`
	ReferenceNumber *string          `json:"reference_number,omitempty"`
	TransactionDate *time.Time       `json:"transaction_date,omitempty"`
}

func (r TransactionUpdateRequest) Validate() error {
	if r.Amount != nil && !r.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if r.Description != nil && *r.Description == "" {
		return fmt.Errorf("%w: description cannot be empty", ErrValidation)
	}
	return nil
}

// TransactionFilter narrows transaction listings. Zero-valued fields are
// ignored.
type TransactionFilter struct {
	BudgetID     uuid.NullUUID
	DepartmentID uuid.NullUUID
	Type         TransactionType
	From         time.Time
	To           time.Time
}
