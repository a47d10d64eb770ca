package testutils

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/gefyra/gefyra/internal/domain"
)

// FakeEngine is an in-memory container engine implementing out.NetworkEngine.
// It allocates non-overlapping /16 subnets, rejects duplicate network names
// and refuses to remove networks that still have running containers attached.
type FakeEngine struct {
	mu sync.Mutex

	networks   map[string]*domain.Network // by ID
	containers map[string]*fakeContainer  // by ID
	seq        int
	subnetSeq  int

	// Failure injection
	Unavailable bool
	KillErrors  map[string]error
	RemoveErr   error

	// Call records
	Created []domain.NetworkSpec
	Removed []string
	Killed  []string
}

type fakeContainer struct {
	domain.Container
	running bool
}

// NewFakeEngine creates an empty engine.
func NewFakeEngine() *FakeEngine {
	return &FakeEngine{
		networks:   make(map[string]*domain.Network),
		containers: make(map[string]*fakeContainer),
		KillErrors: make(map[string]error),
		subnetSeq:  18,
	}
}

// AddNetwork seeds a network as if created by someone else.
func (e *FakeEngine) AddNetwork(name string, labels map[string]string) *domain.Network {
	e.mu.Lock()
	defer e.mu.Unlock()
	return copyNetwork(e.addNetworkLocked(name, domain.DefaultDriver, "", labels))
}

// AddContainer seeds a running container attached to the network with the given name.
func (e *FakeEngine) AddContainer(id, networkName string, labels map[string]string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.containers[id] = &fakeContainer{
		Container: domain.Container{ID: id, Name: "ctr-" + id, Labels: copyLabels(labels)},
		running:   true,
	}
	if n := e.byNameLocked(networkName); n != nil {
		n.Containers = append(n.Containers, id)
	}
}

// NetworkCount returns the number of networks currently registered.
func (e *FakeEngine) NetworkCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.networks)
}

// Running reports whether the container is still running.
func (e *FakeEngine) Running(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	c, ok := e.containers[id]
	return ok && c.running
}

// LookupNetwork implements out.NetworkEngine.
func (e *FakeEngine) LookupNetwork(_ context.Context, name string) (*domain.Network, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.Unavailable {
		return nil, false, domain.ErrEngineUnavailable
	}
	n := e.byNameLocked(name)
	if n == nil {
		return nil, false, nil
	}
	return copyNetwork(n), true, nil
}

// CreateNetwork implements out.NetworkEngine.
func (e *FakeEngine) CreateNetwork(_ context.Context, spec domain.NetworkSpec) (*domain.Network, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.Unavailable {
		return nil, domain.ErrEngineUnavailable
	}
	if e.byNameLocked(spec.Name) != nil {
		return nil, fmt.Errorf("%w: network with name %s already exists", domain.ErrNetworkCreateConflict, spec.Name)
	}

	e.Created = append(e.Created, spec)
	return copyNetwork(e.addNetworkLocked(spec.Name, spec.Driver, spec.Subnet, spec.Labels)), nil
}

// RemoveNetwork implements out.NetworkEngine.
func (e *FakeEngine) RemoveNetwork(_ context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.Unavailable {
		return domain.ErrEngineUnavailable
	}
	if e.RemoveErr != nil {
		return e.RemoveErr
	}
	n, ok := e.networks[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrNetworkNotFound, id)
	}
	for _, cid := range n.Containers {
		if c, ok := e.containers[cid]; ok && c.running {
			return fmt.Errorf("%w: network %s has active endpoints", domain.ErrRemoval, n.Name)
		}
	}

	delete(e.networks, id)
	e.Removed = append(e.Removed, id)
	return nil
}

// LookupContainer implements out.NetworkEngine.
func (e *FakeEngine) LookupContainer(_ context.Context, id string) (*domain.Container, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.Unavailable {
		return nil, false, domain.ErrEngineUnavailable
	}
	c, ok := e.containers[id]
	if !ok {
		return nil, false, nil
	}
	ctr := c.Container
	ctr.Labels = copyLabels(c.Labels)
	return &ctr, true, nil
}

// KillContainer implements out.NetworkEngine.
func (e *FakeEngine) KillContainer(_ context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.Unavailable {
		return domain.ErrEngineUnavailable
	}
	if err := e.KillErrors[id]; err != nil {
		return err
	}
	c, ok := e.containers[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrContainerNotFound, id)
	}

	c.running = false
	e.Killed = append(e.Killed, id)
	return nil
}

// Ping implements out.NetworkEngine.
func (e *FakeEngine) Ping(context.Context) error {
	if e.Unavailable {
		return domain.ErrEngineUnavailable
	}
	return nil
}

// KilledSorted returns the killed container IDs in sorted order.
func (e *FakeEngine) KilledSorted() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := append([]string(nil), e.Killed...)
	sort.Strings(out)
	return out
}

func (e *FakeEngine) addNetworkLocked(name, driver, subnet string, labels map[string]string) *domain.Network {
	e.seq++
	if subnet == "" {
		subnet = fmt.Sprintf("172.%d.0.0/16", e.subnetSeq)
		e.subnetSeq++
	}
	n := &domain.Network{
		ID:     fmt.Sprintf("%064x", e.seq),
		Name:   name,
		Driver: driver,
		Subnet: subnet,
		Labels: copyLabels(labels),
	}
	e.networks[n.ID] = n
	return n
}

func (e *FakeEngine) byNameLocked(name string) *domain.Network {
	for _, n := range e.networks {
		if n.Name == name {
			return n
		}
	}
	return nil
}

func copyNetwork(n *domain.Network) *domain.Network {
	c := *n
	c.Labels = copyLabels(n.Labels)
	c.Containers = append([]string(nil), n.Containers...)
	return &c
}

func copyLabels(labels map[string]string) map[string]string {
	if labels == nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(labels))
	for k, v := range labels {
		out[k] = v
	}
	return out
}
