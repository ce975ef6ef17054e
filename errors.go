package moniker

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrIllegalArgument indicates a caller supplied an invalid index, delimiter,
	// or improperly masked input. No state was touched.
	ErrIllegalArgument = errors.New("illegal argument")

	// ErrMethodFailed indicates a postcondition did not hold after an accepted
	// operation. The receiver is left as it was before the call.
	ErrMethodFailed = errors.New("method failed")

	// ErrInvalidState indicates a name no longer satisfies its invariants.
	ErrInvalidState = errors.New("invalid state")

	// ErrServiceFailure indicates a multi-step operation failed. The triggering
	// error, if any, is available through errors.Is/As or ServiceError.Trigger.
	ErrServiceFailure = errors.New("service failure")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrMissingHasher indicates a required hasher was not registered.
	ErrMissingHasher = errors.New("missing hasher")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// ContractError represents a violated precondition, postcondition, or invariant.
// Err is one of ErrIllegalArgument, ErrMethodFailed or ErrInvalidState.
type ContractError struct {
	Err       error  // Underlying sentinel error
	Operation string // Operation that was guarded (insert, remove, ...)
	Condition string // Human-readable description of the violated condition
}

func (e *ContractError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("%s: %s: %s", e.Operation, e.Err.Error(), e.Condition)
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Condition)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// ServiceError reports the failure of an operation together with the error
// that triggered it. Callers can tell "this operation failed" (ErrServiceFailure)
// from "why it failed" (the trigger) without losing either.
type ServiceError struct {
	Operation string // Operation that failed
	Message   string // Description of the failure
	Cause     error  // Triggering error, may be nil
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

func (e *ServiceError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrServiceFailure, e.Cause}
	}
	return []error{ErrServiceFailure}
}

// HasTrigger reports whether the failure carries a triggering error.
func (e *ServiceError) HasTrigger() bool {
	return e.Cause != nil
}

// Trigger returns the triggering error, or nil.
func (e *ServiceError) Trigger() error {
	return e.Cause
}

// ConfigError represents a binder configuration error.
// It wraps a sentinel error with additional context about the field and value.
type ConfigError struct {
	Err   error  // Underlying sentinel error (ErrInvalidTag, ErrMissingHasher)
	Field string // Field name that triggered the error
	Value string // Tag value or algorithm that was invalid/missing
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Value, e.Field)
	}
	if e.Value != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Value)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec or record validation
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// NewServiceError creates a ServiceError with an optional trigger.
func NewServiceError(operation, message string, trigger error) error {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Cause:     trigger,
	}
}

// NewInvalidState creates a ContractError for a broken invariant. It is
// exported for collaborators that guard their own invariants with the same
// error kinds.
func NewInvalidState(operation, condition string) error {
	return newContractError(ErrInvalidState, operation, condition)
}

// NewIllegalArgument creates a ContractError for a failed precondition.
func NewIllegalArgument(operation, condition string) error {
	return newContractError(ErrIllegalArgument, operation, condition)
}

// newContractError creates a ContractError for a contract violation.
func newContractError(sentinel error, operation, condition string) error {
	return &ContractError{
		Err:       sentinel,
		Operation: operation,
		Condition: condition,
	}
}

// newConfigError creates a ConfigError for binder configuration failures.
func newConfigError(sentinel error, value, field string) error {
	return &ConfigError{
		Err:   sentinel,
		Value: value,
		Field: field,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
