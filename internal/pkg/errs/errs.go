package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is. Every typed error
// in this package unwraps to exactly one of these, which is what the HTTP
// adapter keys its status-code mapping on.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrObjectNotFound    = errors.New("object not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrUnauthorized      = errors.New("unauthorized")
)

// sanitize flattens multi-line values so error messages stay single-line
// in logs and responses.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for the missing parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for the missing parameter
// with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError reports a malformed or otherwise unacceptable value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for the invalid parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for the invalid parameter
// with an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError reports that an entity lookup matched nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for the entity identified by id.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an error for the entity identified
// by id with an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidTransitionError reports a forbidden order state change:
// either a status move outside the state machine or a lifecycle operation
// applied to an order of the wrong type or status.
type InvalidTransitionError struct {
	Operation string
	From      string
	To        string
	Cause     error
}

// NewInvalidTransitionError creates an error for the forbidden move from one
// state to another within the named operation.
func NewInvalidTransitionError(operation, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Operation: operation, From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an error for the forbidden move
// with an underlying cause.
func NewInvalidTransitionErrorWithCause(operation, from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Operation: operation, From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("%s: %s: from %s", ErrInvalidTransition, sanitize(e.Operation), sanitize(e.From))
	if e.To != "" {
		msg = fmt.Sprintf("%s: %s: %s -> %s", ErrInvalidTransition,
			sanitize(e.Operation), sanitize(e.From), sanitize(e.To))
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause))
	}
	return msg
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// UnauthenticatedError reports a request with no usable staff identity:
// there is no actor, so no role check ever ran.
type UnauthenticatedError struct {
	Reason string
}

// NewUnauthenticatedError creates an error for the missing or malformed
// identity described by reason.
func NewUnauthenticatedError(reason string) *UnauthenticatedError {
	return &UnauthenticatedError{Reason: reason}
}

func (e *UnauthenticatedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnauthenticated, sanitize(e.Reason))
}

func (e *UnauthenticatedError) Unwrap() error {
	return ErrUnauthenticated
}

// UnauthorizedError reports an authenticated actor whose role does not
// permit the attempted operation.
type UnauthorizedError struct {
	Operation string
	Role      string
}

// NewUnauthorizedError creates an error for the operation the actor's role
// does not permit.
func NewUnauthorizedError(operation, role string) *UnauthorizedError {
	return &UnauthorizedError{Operation: operation, Role: role}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: role %s cannot perform %s", ErrUnauthorized, sanitize(e.Role), sanitize(e.Operation))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}
