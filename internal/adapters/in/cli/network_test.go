package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gefyra/gefyra/internal/adapters/dto"
	"github.com/gefyra/gefyra/internal/boundaries/in"
	"github.com/gefyra/gefyra/internal/domain"
)

type fakeNetworkService struct {
	ensureResp   *domain.EnsureResult
	ensureErr    error
	teardownResp domain.TeardownResult
	killResp     domain.KillReport
	killErr      error
	shutdownResp domain.ShutdownReport
	shutdownErr  error
	statusResp   *domain.NetworkStatus
	statusErr    error

	lastName string
	calls    []string
}

var _ in.NetworkService = (*fakeNetworkService)(nil)

func (f *fakeNetworkService) EnsureNetwork(_ context.Context, name string) (*domain.EnsureResult, error) {
	f.calls = append(f.calls, "ensure")
	f.lastName = name
	return f.ensureResp, f.ensureErr
}

func (f *fakeNetworkService) TeardownNetwork(_ context.Context, name string) domain.TeardownResult {
	f.calls = append(f.calls, "teardown")
	f.lastName = name
	return f.teardownResp
}

func (f *fakeNetworkService) KillManagedContainers(_ context.Context, name string) (domain.KillReport, error) {
	f.calls = append(f.calls, "kill")
	f.lastName = name
	return f.killResp, f.killErr
}

func (f *fakeNetworkService) Shutdown(_ context.Context, name string) (domain.ShutdownReport, error) {
	f.calls = append(f.calls, "shutdown")
	f.lastName = name
	return f.shutdownResp, f.shutdownErr
}

func (f *fakeNetworkService) Status(_ context.Context, name string) (*domain.NetworkStatus, error) {
	f.calls = append(f.calls, "status")
	f.lastName = name
	return f.statusResp, f.statusErr
}

func gefyraNetwork() *domain.Network {
	return &domain.Network{
		ID:         "3f2a9c1b7d4e5f60718293a4b5c6d7e8",
		Name:       "gefyra",
		Driver:     "bridge",
		Subnet:     "172.24.0.0/16",
		Labels:     map[string]string{domain.LabelManaged: "true"},
		Containers: []string{"aaaa0000000000001111"},
	}
}

func textOpts() networkOptions {
	return networkOptions{Output: outputText}
}

func TestRunNetworkUp_Created(t *testing.T) {
	svc := &fakeNetworkService{ensureResp: &domain.EnsureResult{Network: gefyraNetwork(), Created: true}}

	var out bytes.Buffer
	err := runNetworkUp(context.Background(), svc, networkOptions{Name: "gefyra", Output: outputText}, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Created network gefyra (3f2a9c1b7d4e)")
	assert.Contains(t, text, "172.24.0.0/16")
	assert.Contains(t, text, "aaaa00000000")
	assert.Equal(t, "gefyra", svc.lastName)
}

func TestRunNetworkUp_Foreign(t *testing.T) {
	net := gefyraNetwork()
	net.Labels = nil
	svc := &fakeNetworkService{ensureResp: &domain.EnsureResult{Network: net, Foreign: true}}

	var out bytes.Buffer
	require.NoError(t, runNetworkUp(context.Background(), svc, textOpts(), &out))

	assert.Contains(t, out.String(), "is not managed by gefyra")
}

func TestRunNetworkUp_RequireManaged(t *testing.T) {
	net := gefyraNetwork()
	net.Labels = nil
	svc := &fakeNetworkService{ensureResp: &domain.EnsureResult{Network: net, Foreign: true}}

	var out bytes.Buffer
	err := runNetworkUp(context.Background(), svc, networkOptions{Output: outputText, RequireManaged: true}, &out)

	assert.ErrorIs(t, err, domain.ErrForeignResource)
	assert.Contains(t, out.String(), "is not managed by gefyra")

	managedSvc := &fakeNetworkService{ensureResp: &domain.EnsureResult{Network: gefyraNetwork()}}
	assert.NoError(t, runNetworkUp(context.Background(), managedSvc, networkOptions{Output: outputJSON, RequireManaged: true}, &bytes.Buffer{}))
}

func TestRunNetworkUp_JSON(t *testing.T) {
	svc := &fakeNetworkService{ensureResp: &domain.EnsureResult{Network: gefyraNetwork(), Created: true}}

	var out bytes.Buffer
	require.NoError(t, runNetworkUp(context.Background(), svc, networkOptions{Output: outputJSON}, &out))

	var resp dto.EnsureResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.True(t, resp.Created)
	assert.Equal(t, "172.24.0.0/16", resp.Network.Subnet)
}

func TestRunNetworkUp_Error(t *testing.T) {
	svc := &fakeNetworkService{ensureErr: domain.ErrEngineUnavailable}

	var out bytes.Buffer
	err := runNetworkUp(context.Background(), svc, textOpts(), &out)

	assert.ErrorIs(t, err, domain.ErrEngineUnavailable)
	assert.Empty(t, out.String())
}

func TestRunNetworkRemove_Outcomes(t *testing.T) {
	tests := []struct {
		name     string
		result   domain.TeardownResult
		wantText string
		wantErr  error
	}{
		{
			name:     "removed",
			result:   domain.TeardownResult{Outcome: domain.TeardownRemoved, Network: "gefyra", NetworkID: "net1"},
			wantText: "Removed network gefyra",
		},
		{
			name:     "foreign",
			result:   domain.TeardownResult{Outcome: domain.TeardownSkippedForeign, Network: "gefyra", NetworkID: "net1"},
			wantText: "not managed by gefyra, left in place",
		},
		{
			name:     "not found",
			result:   domain.TeardownResult{Outcome: domain.TeardownNotFound, Network: "gefyra"},
			wantText: "Network gefyra does not exist",
		},
		{
			name:     "failed",
			result:   domain.TeardownResult{Outcome: domain.TeardownFailed, Network: "gefyra", Err: domain.ErrRemoval},
			wantText: "Failed to remove network gefyra",
			wantErr:  domain.ErrRemoval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeNetworkService{teardownResp: tt.result}

			var out bytes.Buffer
			err := runNetworkRemove(context.Background(), svc, textOpts(), &out)

			assert.Contains(t, out.String(), tt.wantText)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRunNetworkKill_PartialFailure(t *testing.T) {
	svc := &fakeNetworkService{killResp: domain.KillReport{
		Network:  "gefyra",
		Killed:   []string{"aaaa00000000000000000001"},
		Skipped:  []string{"bbbb00000000000000000002"},
		Failures: []domain.KillFailure{{ContainerID: "cccc00000000000000000003", Err: domain.ErrKill}},
	}}

	var out bytes.Buffer
	err := runNetworkKill(context.Background(), svc, textOpts(), &out)

	assert.ErrorIs(t, err, domain.ErrKill)
	text := out.String()
	assert.Contains(t, text, "CONTAINER")
	assert.Contains(t, text, "aaaa00000000")
	assert.Contains(t, text, "not managed by gefyra")
	assert.Contains(t, text, "Killed 1, skipped 1, failed 1")
}

func TestRunNetworkKill_Empty(t *testing.T) {
	svc := &fakeNetworkService{killResp: domain.KillReport{Network: "gefyra"}}

	var out bytes.Buffer
	require.NoError(t, runNetworkKill(context.Background(), svc, textOpts(), &out))

	assert.Contains(t, out.String(), "No containers attached to the network")
}

func TestRunNetworkDown_YAML(t *testing.T) {
	svc := &fakeNetworkService{shutdownResp: domain.ShutdownReport{
		Kill:     domain.KillReport{Network: "gefyra", Killed: []string{"c1", "c2"}},
		Teardown: domain.TeardownResult{Outcome: domain.TeardownRemoved, Network: "gefyra", NetworkID: "net1"},
	}}

	var out bytes.Buffer
	require.NoError(t, runNetworkDown(context.Background(), svc, networkOptions{Output: outputYAML}, &out))

	var resp dto.ShutdownResponse
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, []string{"c1", "c2"}, resp.Kill.Killed)
	assert.Equal(t, "removed", resp.Teardown.Outcome)
}

func TestRunNetworkDown_LookupError(t *testing.T) {
	svc := &fakeNetworkService{shutdownErr: domain.ErrEngineUnavailable}

	var out bytes.Buffer
	err := runNetworkDown(context.Background(), svc, textOpts(), &out)

	assert.ErrorIs(t, err, domain.ErrEngineUnavailable)
}

func TestRunNetworkStatus(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		svc := &fakeNetworkService{statusResp: &domain.NetworkStatus{Name: "gefyra"}}

		var out bytes.Buffer
		require.NoError(t, runNetworkStatus(context.Background(), svc, textOpts(), &out))

		assert.Contains(t, out.String(), "Network does not exist")
	})

	t.Run("managed", func(t *testing.T) {
		svc := &fakeNetworkService{statusResp: &domain.NetworkStatus{
			Name: "gefyra", Exists: true, Managed: true, Network: gefyraNetwork(),
		}}

		var out bytes.Buffer
		require.NoError(t, runNetworkStatus(context.Background(), svc, textOpts(), &out))

		text := out.String()
		assert.Contains(t, text, "managed")
		assert.Contains(t, text, "3f2a9c1b7d4e")
		assert.Contains(t, text, "1 container(s)")
	})

	t.Run("json", func(t *testing.T) {
		svc := &fakeNetworkService{statusResp: &domain.NetworkStatus{Name: "gefyra", Exists: true, Network: gefyraNetwork()}}

		var out bytes.Buffer
		require.NoError(t, runNetworkStatus(context.Background(), svc, networkOptions{Output: outputJSON}, &out))

		var resp dto.NetworkStatus
		require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
		assert.True(t, resp.Exists)
		assert.False(t, resp.Managed)
	})
}

func TestValidateOutput(t *testing.T) {
	assert.NoError(t, validateOutput("text"))
	assert.NoError(t, validateOutput("json"))
	assert.NoError(t, validateOutput("yaml"))
	assert.Error(t, validateOutput("xml"))
}

func fakeFactory(svc in.NetworkService, released *bool) serviceFactory {
	return func(ctx context.Context) (context.Context, in.NetworkService, func(), error) {
		return ctx, svc, func() { *released = true }, nil
	}
}

func TestRootCmd_NetworkStatus(t *testing.T) {
	svc := &fakeNetworkService{statusResp: &domain.NetworkStatus{Name: "dev-net"}}
	released := false

	cmd := newRootCmd(fakeFactory(svc, &released))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"network", "status", "--name", "dev-net", "-o", "json"})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, "dev-net", svc.lastName)
	assert.True(t, released)
	assert.Contains(t, out.String(), `"name": "dev-net"`)
}

func TestRootCmd_RejectsOutputBeforeBuildingService(t *testing.T) {
	factoryCalled := false
	factory := func(ctx context.Context) (context.Context, in.NetworkService, func(), error) {
		factoryCalled = true
		return ctx, nil, func() {}, nil
	}

	cmd := newRootCmd(factory)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"network", "up", "-o", "xml"})

	assert.Error(t, cmd.Execute())
	assert.False(t, factoryCalled)
}

func TestRootCmd_FactoryError(t *testing.T) {
	factory := func(ctx context.Context) (context.Context, in.NetworkService, func(), error) {
		return ctx, nil, nil, errors.Join(domain.ErrEngineUnavailable, errors.New("dial unix /var/run/docker.sock"))
	}

	cmd := newRootCmd(factory)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"network", "down"})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrEngineUnavailable)
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd(fakeFactory(&fakeNetworkService{}, new(bool)))

	network, _, err := cmd.Find([]string{"network"})
	require.NoError(t, err)

	var names []string
	for _, sub := range network.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"up", "down", "remove", "kill", "status"}, names)

	flag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "c", flag.Shorthand)
}

func TestVersionCmd(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersionInfo("dev", "unknown", "unknown") })

	cmd := newRootCmd(fakeFactory(&fakeNetworkService{}, new(bool)))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "gefyra 1.2.3")
	assert.Contains(t, out.String(), "Commit: abc123")
}
