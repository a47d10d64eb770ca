package domain

import "errors"

// Domain errors represent business-level errors that can occur in the system.
// Adapters classify engine failures into these; use cases branch on them with errors.Is.
var (
	// Lookup errors. Use cases treat these as outcomes, never as failures.
	ErrNetworkNotFound   = errors.New("network not found")
	ErrContainerNotFound = errors.New("container not found")
	ErrForeignResource   = errors.New("resource is not managed by gefyra")

	// Engine errors. Unavailable is a transport failure; a request the
	// engine answered with an error is ErrEngineRequest.
	ErrEngineUnavailable = errors.New("container engine unavailable")
	ErrEngineRequest     = errors.New("container engine rejected request")

	// Network errors
	ErrNetworkCreateConflict = errors.New("network create conflict")
	ErrAllocation            = errors.New("subnet allocation failed")
	ErrRemoval               = errors.New("network removal failed")

	// Container errors
	ErrKill = errors.New("container kill failed")

	// Config errors
	ErrInvalidConfig = errors.New("invalid configuration")
)

// IsRetryable reports whether the caller may retry the failed operation.
// Allocation failures point at an incompatible engine and are not retryable.
func IsRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrAllocation):
		return false
	case errors.Is(err, ErrNetworkCreateConflict),
		errors.Is(err, ErrEngineUnavailable),
		errors.Is(err, ErrRemoval),
		errors.Is(err, ErrKill):
		return true
	default:
		return false
	}
}
