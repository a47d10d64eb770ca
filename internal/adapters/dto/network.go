package dto

import "github.com/gefyra/gefyra/internal/domain"

// Network represents a network in CLI output.
type Network struct {
	ID         string            `json:"id" yaml:"id"`
	Name       string            `json:"name" yaml:"name"`
	Driver     string            `json:"driver" yaml:"driver"`
	Subnet     string            `json:"subnet,omitempty" yaml:"subnet,omitempty"`
	Gateway    string            `json:"gateway,omitempty" yaml:"gateway,omitempty"`
	Containers []string          `json:"containers" yaml:"containers"`
	Labels     map[string]string `json:"labels" yaml:"labels"`
}

// NetworkStatus is the output of `gefyra network status`.
type NetworkStatus struct {
	Name    string   `json:"name" yaml:"name"`
	Exists  bool     `json:"exists" yaml:"exists"`
	Managed bool     `json:"managed" yaml:"managed"`
	Network *Network `json:"network,omitempty" yaml:"network,omitempty"`
}

// EnsureResponse is the output of `gefyra network up`.
type EnsureResponse struct {
	Network Network `json:"network" yaml:"network"`
	Created bool    `json:"created" yaml:"created"`
	Foreign bool    `json:"foreign" yaml:"foreign"`
}

// TeardownResponse is the output of `gefyra network remove`.
type TeardownResponse struct {
	Outcome   string `json:"outcome" yaml:"outcome"`
	Network   string `json:"network" yaml:"network"`
	NetworkID string `json:"network_id,omitempty" yaml:"network_id,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// KillFailure describes a container that could not be killed.
type KillFailure struct {
	ContainerID string `json:"container_id" yaml:"container_id"`
	Error       string `json:"error" yaml:"error"`
}

// KillResponse is the output of `gefyra network kill`.
type KillResponse struct {
	Network  string        `json:"network" yaml:"network"`
	Killed   []string      `json:"killed" yaml:"killed"`
	Skipped  []string      `json:"skipped" yaml:"skipped"`
	Failures []KillFailure `json:"failures" yaml:"failures"`
}

// ShutdownResponse is the output of `gefyra network down`.
type ShutdownResponse struct {
	Kill     KillResponse     `json:"kill" yaml:"kill"`
	Teardown TeardownResponse `json:"teardown" yaml:"teardown"`
}

// NetworkFromDomain converts a domain network.
func NetworkFromDomain(n *domain.Network) Network {
	if n == nil {
		return Network{}
	}
	containers := n.Containers
	if containers == nil {
		containers = []string{}
	}
	labels := n.Labels
	if labels == nil {
		labels = map[string]string{}
	}
	return Network{
		ID:         n.ID,
		Name:       n.Name,
		Driver:     n.Driver,
		Subnet:     n.Subnet,
		Gateway:    n.Gateway,
		Containers: containers,
		Labels:     labels,
	}
}

// NetworkStatusFromDomain converts a domain status.
func NetworkStatusFromDomain(s *domain.NetworkStatus) NetworkStatus {
	out := NetworkStatus{Name: s.Name, Exists: s.Exists, Managed: s.Managed}
	if s.Network != nil {
		n := NetworkFromDomain(s.Network)
		out.Network = &n
	}
	return out
}

// EnsureFromDomain converts a domain ensure result.
func EnsureFromDomain(r *domain.EnsureResult) EnsureResponse {
	return EnsureResponse{
		Network: NetworkFromDomain(r.Network),
		Created: r.Created,
		Foreign: r.Foreign,
	}
}

// TeardownFromDomain converts a domain teardown result.
func TeardownFromDomain(r domain.TeardownResult) TeardownResponse {
	out := TeardownResponse{Outcome: r.Outcome.String(), Network: r.Network, NetworkID: r.NetworkID}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return out
}

// KillFromDomain converts a domain kill report.
func KillFromDomain(r domain.KillReport) KillResponse {
	out := KillResponse{
		Network:  r.Network,
		Killed:   append([]string{}, r.Killed...),
		Skipped:  append([]string{}, r.Skipped...),
		Failures: make([]KillFailure, 0, len(r.Failures)),
	}
	for _, f := range r.Failures {
		out.Failures = append(out.Failures, KillFailure{ContainerID: f.ContainerID, Error: f.Err.Error()})
	}
	return out
}

// ShutdownFromDomain converts a domain shutdown report.
func ShutdownFromDomain(r domain.ShutdownReport) ShutdownResponse {
	return ShutdownResponse{
		Kill:     KillFromDomain(r.Kill),
		Teardown: TeardownFromDomain(r.Teardown),
	}
}
