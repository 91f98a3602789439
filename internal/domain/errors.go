package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrValidation  = errors.New("validation failed")
	ErrConsistency = errors.New("consistency violation")
	ErrNotFound    = errors.New("not found")
)

// ValidationError rejects input before anything is mutated.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

type ConsistencyError struct {
	Record string
	Reason string
}

func NewConsistencyError(record, reason string) *ConsistencyError {
	return &ConsistencyError{Record: record, Reason: reason}
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Record, e.Reason)
}

func (e *ConsistencyError) Unwrap() error { return ErrConsistency }

// OverpaymentError reports a payment larger than the debt it settles.
type OverpaymentError struct {
	Record      string
	Payment     decimal.Decimal
	Outstanding decimal.Decimal
}

func (e *OverpaymentError) Excess() decimal.Decimal {
	return e.Payment.Sub(e.Outstanding)
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("%s: overpayment of Rs. %s (payment Rs. %s, outstanding Rs. %s)",
		e.Record, e.Excess().StringFixed(2), e.Payment.StringFixed(2), e.Outstanding.StringFixed(2))
}

func (e *OverpaymentError) Unwrap() error { return ErrConsistency }

type NotFoundError struct {
	Entity string
	ID     any
}

func NewNotFoundError(entity string, id any) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
