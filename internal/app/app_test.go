package app

import (
	"context"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gefyra/gefyra/internal/domain"
	"github.com/gefyra/gefyra/internal/testutils"
)

func newTestApp(t *testing.T, engine *testutils.FakeEngine) *App {
	t.Helper()
	fs := testutils.CreateTempConfig(t, "/etc/gefyra/gefyra.yml", "logging:\n  level: warn\n")

	a, err := New(context.Background(), Options{
		ConfigPath: "/etc/gefyra/gefyra.yml",
		Version:    "test",
		Fs:         fs,
		Engine:     engine,
	})
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func TestNew_WiresNetworkService(t *testing.T) {
	engine := testutils.NewFakeEngine()
	a := newTestApp(t, engine)
	ctx := a.Context(context.Background())

	_, err := uuid.Parse(a.RunID)
	require.NoError(t, err)

	result, err := a.Service.EnsureNetwork(ctx, "")
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, "gefyra", result.Network.Name)
	assert.Equal(t, "true", result.Network.Labels[domain.LabelManaged])

	teardown := a.Service.TeardownNetwork(ctx, "")
	assert.Equal(t, domain.TeardownRemoved, teardown.Outcome)
	assert.Equal(t, 0, engine.NetworkCount())
}

func TestNew_ConfigErrorIsReturned(t *testing.T) {
	_, err := New(context.Background(), Options{
		ConfigPath: "/missing/gefyra.yml",
		Fs:         afero.NewMemMapFs(),
		Engine:     testutils.NewFakeEngine(),
	})
	assert.Error(t, err)
}

func TestApp_Context_CarriesLogger(t *testing.T) {
	a := newTestApp(t, testutils.NewFakeEngine())

	ctx := a.Context(context.Background())

	assert.NotNil(t, zerowrap.FromCtx(ctx))
}

func TestApp_CheckEngine(t *testing.T) {
	engine := testutils.NewFakeEngine()
	a := newTestApp(t, engine)

	require.NoError(t, a.CheckEngine(context.Background()))

	engine.Unavailable = true
	err := a.CheckEngine(context.Background())
	assert.ErrorIs(t, err, domain.ErrEngineUnavailable)
}

func TestApp_CloseIsIdempotent(t *testing.T) {
	a := newTestApp(t, testutils.NewFakeEngine())

	a.Close()
	a.Close()
}
