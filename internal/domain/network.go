package domain

// DefaultDriver is the network driver used for every network the core creates.
const DefaultDriver = "bridge"

// Network is a transient view of an engine network, fetched per call.
// Names are chosen by humans and not guaranteed unique; IDs are.
type Network struct {
	ID         string
	Name       string
	Driver     string
	Subnet     string
	Gateway    string
	Labels     map[string]string
	Containers []string // IDs from the network's own attachment record
}

// ShortID returns the first 12 characters of the network ID.
func (n *Network) ShortID() string {
	return shortID(n.ID)
}

// NetworkSpec describes a network to create.
// An empty Subnet lets the engine pick one.
type NetworkSpec struct {
	Name   string
	Driver string
	Subnet string
	Labels map[string]string
}

// NetworkStatus is the read-only state of the managed network concept.
type NetworkStatus struct {
	Name    string
	Exists  bool
	Managed bool
	Network *Network
}
