// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (Docker, telemetry).
package out

import (
	"context"

	"github.com/gefyra/gefyra/internal/domain"
)

// NetworkEngine defines the contract for the container engine's network and
// container registries. Implementations translate engine "not found" responses
// into ok=false and classify every other failure into a domain error.
type NetworkEngine interface {
	// Network registry
	LookupNetwork(ctx context.Context, name string) (*domain.Network, bool, error)
	CreateNetwork(ctx context.Context, spec domain.NetworkSpec) (*domain.Network, error)
	RemoveNetwork(ctx context.Context, id string) error

	// Container registry
	LookupContainer(ctx context.Context, id string) (*domain.Container, bool, error)
	KillContainer(ctx context.Context, id string) error

	// Runtime information
	Ping(ctx context.Context) error
}
