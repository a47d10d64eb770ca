package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gefyra/gefyra/internal/domain"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"conflict", domain.ErrNetworkCreateConflict, true},
		{"wrapped conflict", fmt.Errorf("create gefyra: %w", domain.ErrNetworkCreateConflict), true},
		{"unavailable", domain.ErrEngineUnavailable, true},
		{"removal", domain.ErrRemoval, true},
		{"kill", domain.ErrKill, true},
		{"allocation", domain.ErrAllocation, false},
		{"engine request", domain.ErrEngineRequest, false},
		{"engine request from lookup", fmt.Errorf("inspect gefyra: %w", domain.ErrEngineRequest), false},
		{"allocation wrapping unavailable", fmt.Errorf("%w: %w", domain.ErrAllocation, domain.ErrEngineUnavailable), false},
		{"unknown", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsRetryable(tt.err))
		})
	}
}
