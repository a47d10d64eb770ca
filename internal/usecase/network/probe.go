package network

import (
	"context"
	"fmt"

	"github.com/bnema/zerowrap"

	"github.com/gefyra/gefyra/internal/boundaries/out"
	"github.com/gefyra/gefyra/internal/domain"
)

// SubnetAllocator picks a subnet for a network that does not exist yet.
type SubnetAllocator interface {
	AllocateSubnet(ctx context.Context, name, driver string) (string, error)
}

// ProbeAllocator reuses the engine's own IPAM by creating a throwaway network
// under the target name, reading back the subnet it was given and removing it.
//
// Between the probe removal and the creation of the real network another
// process may claim the same subnet or name. That window is accepted; the
// resulting create failure surfaces as ErrNetworkCreateConflict for the caller
// to retry.
type ProbeAllocator struct {
	engine out.NetworkEngine
}

// NewProbeAllocator creates a probe-network allocator backed by engine.
func NewProbeAllocator(engine out.NetworkEngine) *ProbeAllocator {
	return &ProbeAllocator{engine: engine}
}

// AllocateSubnet returns the subnet the engine assigns to a fresh network named name.
func (a *ProbeAllocator) AllocateSubnet(ctx context.Context, name, driver string) (string, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldComponent: "probe_allocator",
		"network":               name,
		"driver":                driver,
	})
	log := zerowrap.FromCtx(ctx)

	probe, err := a.engine.CreateNetwork(ctx, domain.NetworkSpec{Name: name, Driver: driver})
	if err != nil {
		return "", log.WrapErr(err, "failed to create probe network")
	}

	// The probe goes away before its response is validated so a malformed
	// answer does not leave the name taken.
	if err := a.engine.RemoveNetwork(ctx, probe.ID); err != nil {
		log.Warn().Err(err).
			Str(zerowrap.FieldEntityID, probe.ID).
			Msg("probe network left behind; it is unlabelled and will be reported as foreign until removed")
		return "", log.WrapErr(fmt.Errorf("probe network %s: %w", probe.ID, err), "failed to remove probe network")
	}

	if err := domain.ValidateSubnet(probe.Subnet); err != nil {
		return "", log.WrapErr(err, "probe network has no usable subnet")
	}

	log.Debug().Str("subnet", probe.Subnet).Msg("subnet discovered via probe network")
	return probe.Subnet, nil
}
