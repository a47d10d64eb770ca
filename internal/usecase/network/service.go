// Package network implements the lifecycle of the shared gefyra network:
// get-or-create with engine-chosen subnets, ownership-gated teardown and
// cleanup of managed containers still attached to the network.
package network

import (
	"context"
	"fmt"

	"github.com/bnema/zerowrap"

	"github.com/gefyra/gefyra/internal/boundaries/in"
	"github.com/gefyra/gefyra/internal/boundaries/out"
	"github.com/gefyra/gefyra/internal/domain"
)

var _ in.NetworkService = (*Service)(nil)

// Config holds configuration needed by the network service.
type Config struct {
	NetworkName string // used when an operation is called with an empty name
	Driver      string
	Ownership   domain.Ownership
	Labels      map[string]string // extra labels for created networks; the ownership pair always wins
}

// Validate fills in defaults and rejects unusable values.
func (c *Config) Validate() error {
	if c.Driver == "" {
		c.Driver = domain.DefaultDriver
	}
	if c.Ownership.Key == "" {
		c.Ownership = domain.DefaultOwnership()
	}
	if c.Ownership.Value != domain.ManagedValue {
		return fmt.Errorf("%w: ownership value must be %q", domain.ErrInvalidConfig, domain.ManagedValue)
	}
	return nil
}

// Option configures a Service.
type Option func(*Service)

// WithSubnetAllocator replaces the default probe-network allocator.
func WithSubnetAllocator(a SubnetAllocator) Option {
	return func(s *Service) {
		s.allocator = a
	}
}

// Service implements the NetworkService interface.
// It holds no mutable state: every call re-queries the engine.
type Service struct {
	engine    out.NetworkEngine
	telemetry out.NetworkTelemetry
	allocator SubnetAllocator
	config    Config
}

// NewService creates a new network service.
func NewService(engine out.NetworkEngine, telemetry out.NetworkTelemetry, config Config, opts ...Option) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if telemetry == nil {
		telemetry = noopTelemetry{}
	}

	s := &Service{
		engine:    engine,
		telemetry: telemetry,
		allocator: NewProbeAllocator(engine),
		config:    config,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// EnsureNetwork returns the named network, creating it when it does not exist.
// An existing network is returned as-is even when it is foreign; Foreign is set
// on the result so the caller can decide whether to proceed against it.
func (s *Service) EnsureNetwork(ctx context.Context, name string) (*domain.EnsureResult, error) {
	name = s.resolveName(name)
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "EnsureNetwork",
		"network":             name,
	})
	log := zerowrap.FromCtx(ctx)

	ctx, end := s.telemetry.Start(ctx, "ensure", name)

	existing, found, err := s.engine.LookupNetwork(ctx, name)
	if err != nil {
		end("failed", err)
		return nil, log.WrapErr(err, "failed to look up network")
	}

	if found {
		foreign := !s.config.Ownership.IsManaged(existing.Labels)
		if foreign {
			log.Info().
				Str(zerowrap.FieldEntityID, existing.ShortID()).
				Msg("network already exists but is not managed by gefyra")
			end("foreign", nil)
		} else {
			log.Info().Str(zerowrap.FieldEntityID, existing.ShortID()).Msg("network already exists")
			end("existing", nil)
		}
		return &domain.EnsureResult{Network: existing, Foreign: foreign}, nil
	}

	allocCtx, endAlloc := s.telemetry.Start(ctx, "allocate", name)
	subnet, err := s.allocator.AllocateSubnet(allocCtx, name, s.config.Driver)
	if err != nil {
		endAlloc("failed", err)
		end("failed", err)
		return nil, log.WrapErr(err, "failed to allocate subnet")
	}
	endAlloc("allocated", nil)

	created, err := s.engine.CreateNetwork(ctx, domain.NetworkSpec{
		Name:   name,
		Driver: s.config.Driver,
		Subnet: subnet,
		Labels: s.config.Ownership.Apply(s.config.Labels),
	})
	if err != nil {
		end("failed", err)
		return nil, log.WrapErr(err, "failed to create network")
	}

	log.Info().
		Str(zerowrap.FieldEntityID, created.ShortID()).
		Str("subnet", created.Subnet).
		Msg("created network")
	end("created", nil)

	return &domain.EnsureResult{Network: created, Created: true}, nil
}

// Status reports whether the network exists and whether gefyra owns it.
func (s *Service) Status(ctx context.Context, name string) (*domain.NetworkStatus, error) {
	name = s.resolveName(name)
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "Status",
		"network":             name,
	})
	log := zerowrap.FromCtx(ctx)

	net, found, err := s.engine.LookupNetwork(ctx, name)
	if err != nil {
		return nil, log.WrapErr(err, "failed to look up network")
	}

	status := &domain.NetworkStatus{Name: name, Exists: found}
	if found {
		status.Network = net
		status.Managed = s.config.Ownership.IsManaged(net.Labels)
	}
	return status, nil
}

func (s *Service) resolveName(name string) string {
	if name == "" {
		return s.config.NetworkName
	}
	return name
}

type noopTelemetry struct{}

func (noopTelemetry) Start(ctx context.Context, _, _ string) (context.Context, out.EndFunc) {
	return ctx, func(string, error) {}
}

func (noopTelemetry) RecordKills(context.Context, string, int, int, int) {}
