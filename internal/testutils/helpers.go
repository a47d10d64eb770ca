package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// TestContext creates a test context with timeout and a quiet logger attached.
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return zerowrap.WithCtx(ctx, zerowrap.New(zerowrap.Config{Level: "warn"}))
}

// CreateTempConfig creates an in-memory filesystem holding path with content.
func CreateTempConfig(t *testing.T, path, content string) afero.Fs {
	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, path, []byte(content), 0644)
	require.NoError(t, err)
	return fs
}
