package domain

import (
	"errors"
	"fmt"
)

// EnsureResult is returned by the network resolver.
type EnsureResult struct {
	Network *Network
	Created bool
	// Foreign is set when an existing network with the requested name
	// does not carry the ownership label. It is informational only.
	Foreign bool
}

// RequireManaged returns ErrForeignResource when the resolved network is not
// owned by gefyra. Callers that must not run against foreign networks use it.
func (r *EnsureResult) RequireManaged() error {
	if r == nil || !r.Foreign {
		return nil
	}
	name := ""
	if r.Network != nil {
		name = r.Network.Name
	}
	return fmt.Errorf("network %s: %w", name, ErrForeignResource)
}

// TeardownOutcome is the result kind of a network teardown.
type TeardownOutcome int

const (
	TeardownRemoved TeardownOutcome = iota
	TeardownSkippedForeign
	TeardownNotFound
	TeardownFailed
)

// String returns the outcome name.
func (o TeardownOutcome) String() string {
	switch o {
	case TeardownRemoved:
		return "removed"
	case TeardownSkippedForeign:
		return "skipped-foreign"
	case TeardownNotFound:
		return "not-found"
	case TeardownFailed:
		return "failed"
	default:
		return fmt.Sprintf("TeardownOutcome(%d)", int(o))
	}
}

// TeardownResult carries the outcome of a teardown and, for TeardownFailed, the reason.
type TeardownResult struct {
	Outcome   TeardownOutcome
	Network   string
	NetworkID string // empty when the network was never found
	Err       error
}

// KillFailure records a container that could not be killed.
type KillFailure struct {
	ContainerID string
	Err         error
}

// KillReport summarizes a bulk kill of managed containers on a network.
type KillReport struct {
	Network  string
	Killed   []string
	Skipped  []string // foreign containers left untouched
	Failures []KillFailure
}

// Count returns the number of containers killed.
func (r KillReport) Count() int {
	return len(r.Killed)
}

// Err joins the per-container failures, or returns nil when there were none.
func (r KillReport) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		errs = append(errs, fmt.Errorf("container %s: %w", shortID(f.ContainerID), f.Err))
	}
	return errors.Join(errs...)
}

// ShutdownReport is the result of container cleanup followed by network teardown.
type ShutdownReport struct {
	Kill     KillReport
	Teardown TeardownResult
}

// Err returns the combined error of both phases.
func (r ShutdownReport) Err() error {
	return errors.Join(r.Kill.Err(), r.Teardown.Err)
}
