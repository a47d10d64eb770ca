// Package domain contains pure business types without external dependencies.
// These types are used throughout the application and have no tags or framework dependencies.
package domain

// Container is the view of an engine container needed for ownership checks.
type Container struct {
	ID     string
	Name   string
	Labels map[string]string
}

// ShortID returns the first 12 characters of the container ID.
func (c *Container) ShortID() string {
	return shortID(c.ID)
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
