// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (CLI)
// and the business logic (use cases).
package in

import (
	"context"

	"github.com/gefyra/gefyra/internal/domain"
)

// NetworkService defines the contract for managing the shared gefyra network.
// Expected "not found" and "foreign" conditions are outcomes, never errors.
type NetworkService interface {
	// EnsureNetwork returns the named network, creating it with an engine-chosen
	// subnet and the ownership label when it does not exist.
	EnsureNetwork(ctx context.Context, name string) (*domain.EnsureResult, error)

	// TeardownNetwork removes the named network if, and only if, it is managed.
	TeardownNetwork(ctx context.Context, name string) domain.TeardownResult

	// KillManagedContainers force-kills the managed containers attached to the network.
	KillManagedContainers(ctx context.Context, name string) (domain.KillReport, error)

	// Shutdown kills managed containers on the network, then tears it down.
	Shutdown(ctx context.Context, name string) (domain.ShutdownReport, error)

	// Status reports whether the network exists and whether it is managed.
	Status(ctx context.Context, name string) (*domain.NetworkStatus, error)
}
