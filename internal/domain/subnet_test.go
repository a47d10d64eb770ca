package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gefyra/gefyra/internal/domain"
)

func TestValidateSubnet(t *testing.T) {
	valid := []string{"172.18.0.0/16", "192.168.240.0/20", "10.0.0.0/8", "fd00:dead:beef::/48"}
	for _, cidr := range valid {
		assert.NoError(t, domain.ValidateSubnet(cidr), cidr)
	}

	invalid := []string{"", "172.18.0.0", "not-a-cidr", "172.18.0.0/33", "300.1.1.0/24"}
	for _, cidr := range invalid {
		err := domain.ValidateSubnet(cidr)
		assert.ErrorIs(t, err, domain.ErrAllocation, cidr)
	}
}
