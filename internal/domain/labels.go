package domain

// Label keys used by gefyra for network and container metadata.
const (
	LabelManaged = "gefyra.managed"

	// ManagedValue is the only value of LabelManaged that marks a resource as ours.
	ManagedValue = "true"
)

// Ownership is the label pair stamped on every resource the core creates
// and checked before every destructive action.
type Ownership struct {
	Key   string
	Value string
}

// DefaultOwnership returns the gefyra.managed=true ownership label.
func DefaultOwnership() Ownership {
	return Ownership{Key: LabelManaged, Value: ManagedValue}
}

// NewOwnership returns an ownership label with a custom key.
// The value is always the fixed sentinel.
func NewOwnership(key string) Ownership {
	if key == "" {
		return DefaultOwnership()
	}
	return Ownership{Key: key, Value: ManagedValue}
}

// IsManaged reports whether labels carry the ownership key with the exact sentinel value.
// Missing labels, a missing key or any other value mean foreign.
func (o Ownership) IsManaged(labels map[string]string) bool {
	v, ok := labels[o.Key]
	return ok && v == o.Value
}

// Labels returns a fresh label set containing only the ownership pair.
func (o Ownership) Labels() map[string]string {
	return map[string]string{o.Key: o.Value}
}

// Apply returns a copy of labels with the ownership pair merged in.
func (o Ownership) Apply(labels map[string]string) map[string]string {
	out := make(map[string]string, len(labels)+1)
	for k, v := range labels {
		out[k] = v
	}
	out[o.Key] = o.Value
	return out
}
