package domain

import (
	"fmt"
	"net/netip"
)

// ValidateSubnet checks that cidr is a non-empty, well-formed CIDR block.
func ValidateSubnet(cidr string) error {
	if cidr == "" {
		return fmt.Errorf("%w: engine returned no subnet", ErrAllocation)
	}
	if _, err := netip.ParsePrefix(cidr); err != nil {
		return fmt.Errorf("%w: invalid subnet %q: %v", ErrAllocation, cidr, err)
	}
	return nil
}
