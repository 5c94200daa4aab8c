package errs

import "fmt"

// PreconditionFailedError is returned when a state transition is attempted from
// the wrong status or by the wrong party. Guard names the rule that rejected it.
type PreconditionFailedError struct {
	Guard string
	Cause error
}

func NewPreconditionFailedError(guard string) *PreconditionFailedError {
	return &PreconditionFailedError{Guard: guard}
}

func NewPreconditionFailedErrorWithCause(guard string, cause error) *PreconditionFailedError {
	return &PreconditionFailedError{Guard: guard, Cause: cause}
}

func (e *PreconditionFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrPreconditionFailed, e.Guard, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPreconditionFailed, e.Guard)
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// ConcurrentModificationError reports a conditional write that lost a race:
// the stored version no longer matches the one the caller read.
type ConcurrentModificationError struct {
	ParamName string
	ID        any
	Version   int
}

func NewConcurrentModificationError(paramName string, id any, version int) *ConcurrentModificationError {
	return &ConcurrentModificationError{ParamName: paramName, ID: id, Version: version}
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s: %s %s changed since version %d", ErrConcurrentModification, e.ParamName, e.ID, e.Version)
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}

// StoreUnavailableError wraps transport level failures of the backing store.
// errors.Is matches both ErrStoreUnavailable and the underlying cause.
type StoreUnavailableError struct {
	Operation string
	Cause     error
}

func NewStoreUnavailableError(operation string, cause error) *StoreUnavailableError {
	return &StoreUnavailableError{Operation: operation, Cause: cause}
}

func (e *StoreUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrStoreUnavailable, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStoreUnavailable, e.Operation)
}

func (e *StoreUnavailableError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrStoreUnavailable}
	}
	return []error{ErrStoreUnavailable, e.Cause}
}
