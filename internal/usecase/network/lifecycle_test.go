package network_test

import (
	"context"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gefyra/gefyra/internal/boundaries/out"
	"github.com/gefyra/gefyra/internal/domain"
	"github.com/gefyra/gefyra/internal/testutils"
	"github.com/gefyra/gefyra/internal/usecase/network"
)

func newService(t *testing.T, engine *testutils.FakeEngine) *network.Service {
	t.Helper()
	svc, err := network.NewService(engine, nil, network.Config{NetworkName: "gefyra"})
	require.NoError(t, err)
	return svc
}

func managed() map[string]string {
	return domain.DefaultOwnership().Labels()
}

func TestLifecycle_EnsureIsIdempotent(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	svc := newService(t, engine)

	first, err := svc.EnsureNetwork(ctx, "gefyra")
	require.NoError(t, err)
	second, err := svc.EnsureNetwork(ctx, "gefyra")
	require.NoError(t, err)

	assert.True(t, first.Created)
	assert.False(t, second.Created)
	assert.Equal(t, first.Network.ID, second.Network.ID)
	assert.Equal(t, 1, engine.NetworkCount())
}

func TestLifecycle_CreatedNetworkCarriesProbedSubnetAndLabel(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	svc := newService(t, engine)

	result, err := svc.EnsureNetwork(ctx, "gefyra")
	require.NoError(t, err)

	prefix, err := netip.ParsePrefix(result.Network.Subnet)
	require.NoError(t, err)
	assert.True(t, prefix.IsValid())

	// probe + real network
	require.Len(t, engine.Created, 2)
	assert.Empty(t, engine.Created[0].Subnet)
	assert.Empty(t, engine.Created[0].Labels)
	assert.Equal(t, result.Network.Subnet, engine.Created[1].Subnet)
	assert.Equal(t, "true", engine.Created[1].Labels[domain.LabelManaged])
	assert.Len(t, engine.Removed, 1)

	status, err := svc.Status(ctx, "gefyra")
	require.NoError(t, err)
	assert.True(t, status.Exists)
	assert.True(t, status.Managed)
}

func TestLifecycle_ForeignNetworkIsNeverRemoved(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	foreign := engine.AddNetwork("gefyra", map[string]string{"team": "infra"})
	svc := newService(t, engine)

	ensured, err := svc.EnsureNetwork(ctx, "gefyra")
	require.NoError(t, err)
	assert.True(t, ensured.Foreign)
	assert.Equal(t, foreign.ID, ensured.Network.ID)

	result := svc.TeardownNetwork(ctx, "gefyra")
	assert.Equal(t, domain.TeardownSkippedForeign, result.Outcome)
	assert.Equal(t, 1, engine.NetworkCount())
	assert.Empty(t, engine.Removed)
}

func TestLifecycle_KillThenTeardown(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	svc := newService(t, engine)

	_, err := svc.EnsureNetwork(ctx, "gefyra")
	require.NoError(t, err)
	engine.AddContainer("cargo", "gefyra", managed())
	engine.AddContainer("bridge", "gefyra", managed())
	engine.AddContainer("db", "gefyra", map[string]string{"app": "postgres"})

	// the foreign container still holds an endpoint
	blocked := svc.TeardownNetwork(ctx, "gefyra")
	assert.Equal(t, domain.TeardownFailed, blocked.Outcome)
	assert.ErrorIs(t, blocked.Err, domain.ErrRemoval)

	report, err := svc.KillManagedContainers(ctx, "gefyra")
	require.NoError(t, err)
	assert.Equal(t, 2, report.Count())
	assert.Equal(t, []string{"bridge", "cargo"}, engine.KilledSorted())
	assert.Equal(t, []string{"db"}, report.Skipped)
	assert.True(t, engine.Running("db"))
	assert.False(t, engine.Running("cargo"))
}

func TestLifecycle_ShutdownRemovesManagedNetwork(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	svc := newService(t, engine)

	_, err := svc.EnsureNetwork(ctx, "gefyra")
	require.NoError(t, err)
	engine.AddContainer("cargo", "gefyra", managed())
	engine.AddContainer("bridge", "gefyra", managed())

	report, err := svc.Shutdown(ctx, "gefyra")
	require.NoError(t, err)
	assert.Equal(t, 2, report.Kill.Count())
	assert.Equal(t, domain.TeardownRemoved, report.Teardown.Outcome)
	assert.NoError(t, report.Err())
	assert.Equal(t, 0, engine.NetworkCount())
}

func TestLifecycle_NotFoundIsNotAnError(t *testing.T) {
	ctx := testutils.TestContext(t)
	svc := newService(t, testutils.NewFakeEngine())

	result := svc.TeardownNetwork(ctx, "nonexistent")
	assert.Equal(t, domain.TeardownNotFound, result.Outcome)
	assert.NoError(t, result.Err)

	report, err := svc.KillManagedContainers(ctx, "nonexistent")
	require.NoError(t, err)
	assert.Equal(t, 0, report.Count())

	status, err := svc.Status(ctx, "nonexistent")
	require.NoError(t, err)
	assert.False(t, status.Exists)
}

func TestLifecycle_PartialKillFailureIsIsolated(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	svc := newService(t, engine)

	_, err := svc.EnsureNetwork(ctx, "gefyra")
	require.NoError(t, err)
	for _, id := range []string{"a", "b", "c"} {
		engine.AddContainer(id, "gefyra", managed())
	}
	engine.KillErrors["b"] = domain.ErrKill

	report, err := svc.KillManagedContainers(ctx, "gefyra")
	require.NoError(t, err)
	assert.Equal(t, 2, report.Count())
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "b", report.Failures[0].ContainerID)
	assert.ErrorIs(t, report.Err(), domain.ErrKill)
	assert.True(t, engine.Running("b"))

	// b still holds an endpoint, so shutdown reports the teardown failure
	shutdown, err := svc.Shutdown(ctx, "gefyra")
	require.NoError(t, err)
	assert.Equal(t, domain.TeardownFailed, shutdown.Teardown.Outcome)
	assert.Error(t, shutdown.Err())
}

func TestLifecycle_EngineUnavailable(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	engine.Unavailable = true
	svc := newService(t, engine)

	_, err := svc.EnsureNetwork(ctx, "gefyra")
	assert.ErrorIs(t, err, domain.ErrEngineUnavailable)
	assert.True(t, domain.IsRetryable(err))

	result := svc.TeardownNetwork(ctx, "gefyra")
	assert.Equal(t, domain.TeardownFailed, result.Outcome)
}

type recordedOp struct {
	operation string
	outcome   string
}

type recordingTelemetry struct {
	ops    []recordedOp
	killed int
}

func (r *recordingTelemetry) Start(ctx context.Context, operation, _ string) (context.Context, out.EndFunc) {
	return ctx, func(outcome string, _ error) {
		r.ops = append(r.ops, recordedOp{operation: operation, outcome: outcome})
	}
}

func (r *recordingTelemetry) RecordKills(_ context.Context, _ string, killed, _, _ int) {
	r.killed += killed
}

func TestLifecycle_TelemetryRecordsOutcomes(t *testing.T) {
	ctx := testutils.TestContext(t)
	engine := testutils.NewFakeEngine()
	rec := &recordingTelemetry{}
	svc, err := network.NewService(engine, rec, network.Config{NetworkName: "gefyra"})
	require.NoError(t, err)

	_, err = svc.EnsureNetwork(ctx, "gefyra")
	require.NoError(t, err)
	engine.AddContainer("c1", "gefyra", managed())
	report, err := svc.Shutdown(ctx, "gefyra")
	require.NoError(t, err)
	require.NoError(t, report.Err())

	assert.Equal(t, []recordedOp{
		{"allocate", "allocated"},
		{"ensure", "created"},
		{"kill", "done"},
		{"teardown", "removed"},
	}, rec.ops)
	assert.Equal(t, 1, rec.killed)
}
