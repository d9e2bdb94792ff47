package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Concrete error values returned by the constructors below
// unwrap to exactly one of these, so callers classify failures with errors.Is.
var (
	ErrValueIsRequired      = errors.New("value is required")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrObjectNotFound       = errors.New("object not found")
	ErrValidationFailed     = errors.New("validation failed")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrOfferingNotPublished = errors.New("offering is not published")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrNotAssigned          = errors.New("order is not assigned to actor")
	ErrAlreadyCancelled     = errors.New("order is already cancelled")
	ErrTokenExhausted       = errors.New("token generation attempts exhausted")
	ErrConflict             = errors.New("uniqueness conflict")
)

// sanitize flattens multi-line input so error messages stay single-line.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error { return ErrValueIsRequired }

// ValueIsInvalidError indicates that a value does not satisfy its constraints.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error { return ErrValueIsInvalid }

// ObjectNotFoundError indicates that a referenced object (zone, offering,
// order, courier) does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error { return ErrObjectNotFound }

// ValidationFailedError indicates a malformed request: an empty cart,
// a non-positive quantity, or a quantity over the per-line cap.
type ValidationFailedError struct {
	ParamName string
	Cause     error
}

func NewValidationFailedError(paramName string) *ValidationFailedError {
	return &ValidationFailedError{ParamName: paramName}
}

func NewValidationFailedErrorWithCause(paramName string, cause error) *ValidationFailedError {
	return &ValidationFailedError{ParamName: paramName, Cause: cause}
}

func (e *ValidationFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValidationFailed, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, sanitize(e.ParamName))
}

func (e *ValidationFailedError) Unwrap() error { return ErrValidationFailed }

// InsufficientStockError indicates that a requested quantity exceeds an
// offering's available quantity.
type InsufficientStockError struct {
	OfferingID string
	Requested  int
	Available  int
}

func NewInsufficientStockError(offeringID string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{OfferingID: offeringID, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: offering %s, requested %d, available %d",
		ErrInsufficientStock, e.OfferingID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// OfferingNotPublishedError indicates an attempt to order an offering that
// is not published.
type OfferingNotPublishedError struct {
	OfferingID string
}

func NewOfferingNotPublishedError(offeringID string) *OfferingNotPublishedError {
	return &OfferingNotPublishedError{OfferingID: offeringID}
}

func (e *OfferingNotPublishedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrOfferingNotPublished, e.OfferingID)
}

func (e *OfferingNotPublishedError) Unwrap() error { return ErrOfferingNotPublished }

// InvalidTransitionError indicates an order status change that is not legal
// for the actor and source status involved.
type InvalidTransitionError struct {
	OrderID string
	From    string
	To      string
}

func NewInvalidTransitionError(orderID, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{OrderID: orderID, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: order %s, %s -> %s", ErrInvalidTransition, e.OrderID, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// NotAssignedError indicates that the acting user does not own the order
// they are trying to act on.
type NotAssignedError struct {
	OrderID string
	ActorID string
}

func NewNotAssignedError(orderID, actorID string) *NotAssignedError {
	return &NotAssignedError{OrderID: orderID, ActorID: actorID}
}

func (e *NotAssignedError) Error() string {
	return fmt.Sprintf("%s: order %s, actor %s", ErrNotAssigned, e.OrderID, e.ActorID)
}

func (e *NotAssignedError) Unwrap() error { return ErrNotAssigned }

// AlreadyCancelledError indicates a cancellation attempt on an order that
// was already cancelled.
type AlreadyCancelledError struct {
	OrderID string
}

func NewAlreadyCancelledError(orderID string) *AlreadyCancelledError {
	return &AlreadyCancelledError{OrderID: orderID}
}

func (e *AlreadyCancelledError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAlreadyCancelled, e.OrderID)
}

func (e *AlreadyCancelledError) Unwrap() error { return ErrAlreadyCancelled }

// TokenExhaustedError indicates that the bounded retry loop of the token
// generator failed to find a free token.
type TokenExhaustedError struct {
	Attempts int
}

func NewTokenExhaustedError(attempts int) *TokenExhaustedError {
	return &TokenExhaustedError{Attempts: attempts}
}

func (e *TokenExhaustedError) Error() string {
	return fmt.Sprintf("%s: after %d attempts", ErrTokenExhausted, e.Attempts)
}

func (e *TokenExhaustedError) Unwrap() error { return ErrTokenExhausted }

// ConflictError indicates a uniqueness violation surfaced from storage,
// typically the order token's unique index.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrConflict, sanitize(e.ParamName), e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, e.ID)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }
