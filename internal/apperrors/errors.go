package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that a concurrent writer won a race for the same row or sequence value.
var ErrConflict = errors.New("concurrent modification conflict")

// ErrUnbalanced indicates that journal debits and credits differ beyond the tolerance.
var ErrUnbalanced = errors.New("journal entry is not balanced")

// ErrUnauthorized indicates invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// UnbalancedError carries both totals of a rejected journal entry.
type UnbalancedError struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// NewUnbalancedError builds an UnbalancedError for the given totals.
func NewUnbalancedError(debit, credit decimal.Decimal) *UnbalancedError {
	return &UnbalancedError{Debit: debit, Credit: credit}
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("%s: debits sum is %s and credits sum is %s", ErrUnbalanced.Error(), e.Debit.String(), e.Credit.String())
}

// Is lets errors.Is(err, ErrUnbalanced) match.
func (e *UnbalancedError) Is(target error) bool {
	return target == ErrUnbalanced
}
