// Package docker implements the network engine adapter using the Docker API.
package docker

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/zerowrap"
	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"

	"github.com/gefyra/gefyra/internal/boundaries/out"
	"github.com/gefyra/gefyra/internal/domain"
)

// KillSignal is sent to managed containers that are still attached at teardown.
const KillSignal = "SIGKILL"

var _ out.NetworkEngine = (*Engine)(nil)

// Engine implements the NetworkEngine interface using Docker API.
type Engine struct {
	client *client.Client
}

// NewEngine creates a Docker engine adapter. The client is configured from the
// environment (DOCKER_HOST, DOCKER_CERT_PATH, ...); a non-empty host overrides
// DOCKER_HOST.
func NewEngine(host string) (*Engine, error) {
	opts := []client.Opt{client.FromEnv, client.WithAPIVersionNegotiation()}
	if host != "" {
		opts = append(opts, client.WithHost(host))
	}

	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return &Engine{
		client: cli,
	}, nil
}

// NewEngineWithClient creates a Docker engine adapter with a custom client (for testing).
func NewEngineWithClient(cli *client.Client) *Engine {
	return &Engine{
		client: cli,
	}
}

// Close releases the underlying client's transport.
func (e *Engine) Close() error {
	return e.client.Close()
}

// LookupNetwork inspects a network by name. A missing network is reported as ok=false.
func (e *Engine) LookupNetwork(ctx context.Context, name string) (*domain.Network, bool, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "LookupNetwork",
		"network":             name,
	})
	log := zerowrap.FromCtx(ctx)

	resp, err := e.client.NetworkInspect(ctx, name, network.InspectOptions{})
	if err != nil {
		if cerrdefs.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, log.WrapErr(classify(err, domain.ErrEngineRequest), "failed to inspect network")
	}

	// Docker resolves names by prefix and ID as well; only an exact name counts.
	if resp.Name != name && resp.ID != name {
		log.Debug().Str("matched", resp.Name).Msg("inspect matched a different network")
		return nil, false, nil
	}

	return toNetwork(resp), true, nil
}

// CreateNetwork creates a network and returns it as the engine reports it,
// including the subnet picked by the engine when none was requested.
func (e *Engine) CreateNetwork(ctx context.Context, spec domain.NetworkSpec) (*domain.Network, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "CreateNetwork",
		"network":             spec.Name,
	})
	log := zerowrap.FromCtx(ctx)

	driver := spec.Driver
	if driver == "" {
		driver = domain.DefaultDriver
	}

	createOptions := network.CreateOptions{
		Driver: driver,
		Labels: spec.Labels,
	}
	if spec.Subnet != "" {
		createOptions.IPAM = &network.IPAM{
			Driver: "default",
			Config: []network.IPAMConfig{{Subnet: spec.Subnet}},
		}
	}

	created, err := e.client.NetworkCreate(ctx, spec.Name, createOptions)
	if err != nil {
		if isCreateConflict(err) {
			return nil, log.WrapErr(fmt.Errorf("%w: %w", domain.ErrNetworkCreateConflict, err), "failed to create network")
		}
		return nil, log.WrapErr(classify(err, domain.ErrEngineRequest), "failed to create network")
	}
	if created.Warning != "" {
		log.Warn().Str("warning", created.Warning).Msg("engine reported a warning while creating network")
	}

	resp, err := e.client.NetworkInspect(ctx, created.ID, network.InspectOptions{})
	if err != nil {
		// Without a descriptor the caller cannot clean up, so the network
		// must not outlive this call.
		if rmErr := e.client.NetworkRemove(context.WithoutCancel(ctx), created.ID); rmErr != nil && !cerrdefs.IsNotFound(rmErr) {
			log.Warn().Err(rmErr).Str(zerowrap.FieldEntityID, created.ID).Msg("failed to remove network after inspect failure, remove it manually")
		}
		return nil, log.WrapErr(classify(err, domain.ErrEngineRequest), "failed to inspect created network")
	}

	log.Debug().Str(zerowrap.FieldEntityID, created.ID).Str("driver", driver).Msg("network created")
	return toNetwork(resp), nil
}

// RemoveNetwork removes a network by ID.
func (e *Engine) RemoveNetwork(ctx context.Context, id string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "docker",
		zerowrap.FieldAction:   "RemoveNetwork",
		zerowrap.FieldEntityID: id,
	})
	log := zerowrap.FromCtx(ctx)

	if err := e.client.NetworkRemove(ctx, id); err != nil {
		if cerrdefs.IsNotFound(err) {
			return fmt.Errorf("%w: %w", domain.ErrNetworkNotFound, err)
		}
		return log.WrapErr(classify(err, domain.ErrRemoval), "failed to remove network")
	}

	log.Debug().Msg("network removed")
	return nil
}

// LookupContainer inspects a container by ID. A missing container is reported as ok=false.
func (e *Engine) LookupContainer(ctx context.Context, id string) (*domain.Container, bool, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "docker",
		zerowrap.FieldAction:   "LookupContainer",
		zerowrap.FieldEntityID: id,
	})
	log := zerowrap.FromCtx(ctx)

	resp, err := e.client.ContainerInspect(ctx, id)
	if err != nil {
		if cerrdefs.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, log.WrapErr(classify(err, domain.ErrEngineRequest), "failed to inspect container")
	}

	ctr := &domain.Container{
		ID:   resp.ID,
		Name: strings.TrimPrefix(resp.Name, "/"),
	}
	if resp.Config != nil {
		ctr.Labels = resp.Config.Labels
	}
	return ctr, true, nil
}

// KillContainer sends SIGKILL to a container. A container that no longer
// exists or has already stopped reports ErrContainerNotFound. A conflict on a
// container that is still up (restarting, paused) is a kill failure.
func (e *Engine) KillContainer(ctx context.Context, id string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "docker",
		zerowrap.FieldAction:   "KillContainer",
		zerowrap.FieldEntityID: id,
	})
	log := zerowrap.FromCtx(ctx)

	if err := e.client.ContainerKill(ctx, id, KillSignal); err != nil {
		if cerrdefs.IsNotFound(err) || (cerrdefs.IsConflict(err) && e.stopped(ctx, id)) {
			return fmt.Errorf("%w: %w", domain.ErrContainerNotFound, err)
		}
		return log.WrapErr(classify(err, domain.ErrKill), "failed to kill container")
	}

	log.Debug().Msg("container killed")
	return nil
}

// Ping checks if Docker is responsive.
func (e *Engine) Ping(ctx context.Context) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "Ping",
	})
	log := zerowrap.FromCtx(ctx)

	if _, err := e.client.Ping(ctx); err != nil {
		return log.WrapErr(fmt.Errorf("%w: %w", domain.ErrEngineUnavailable, err), "Docker ping failed")
	}
	return nil
}

// stopped re-inspects a container after a kill conflict. Only a container that
// is gone or neither running nor restarting counts as stopped.
func (e *Engine) stopped(ctx context.Context, id string) bool {
	resp, err := e.client.ContainerInspect(ctx, id)
	if err != nil {
		return cerrdefs.IsNotFound(err)
	}
	if resp.ContainerJSONBase == nil || resp.State == nil {
		return false
	}
	return !resp.State.Running && !resp.State.Restarting
}

// isCreateConflict reports a create failure another creator may have caused:
// a taken name or an address pool overlap. Other 403s, such as predefined
// names like "host", are permanent.
func isCreateConflict(err error) bool {
	if cerrdefs.IsConflict(err) {
		return true
	}
	return cerrdefs.IsPermissionDenied(err) && strings.Contains(strings.ToLower(err.Error()), "overlap")
}

// classify maps a Docker client error onto a domain sentinel. Transport
// failures become ErrEngineUnavailable; anything the daemon answered is tagged
// with kind.
func classify(err error, kind error) error {
	if client.IsErrConnectionFailed(err) || cerrdefs.IsUnavailable(err) {
		return fmt.Errorf("%w: %w", domain.ErrEngineUnavailable, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}

func toNetwork(resp network.Inspect) *domain.Network {
	n := &domain.Network{
		ID:     resp.ID,
		Name:   resp.Name,
		Driver: resp.Driver,
		Labels: resp.Labels,
	}
	if len(resp.IPAM.Config) > 0 {
		n.Subnet = resp.IPAM.Config[0].Subnet
		n.Gateway = resp.IPAM.Config[0].Gateway
	}

	n.Containers = make([]string, 0, len(resp.Containers))
	for id := range resp.Containers {
		n.Containers = append(n.Containers, id)
	}
	sort.Strings(n.Containers)
	return n
}
