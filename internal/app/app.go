package app

import (
	"context"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/gefyra/gefyra/internal/adapters/out/docker"
	"github.com/gefyra/gefyra/internal/adapters/out/telemetry"
	"github.com/gefyra/gefyra/internal/boundaries/in"
	"github.com/gefyra/gefyra/internal/boundaries/out"
	"github.com/gefyra/gefyra/internal/usecase/network"
)

// ServiceName identifies gefyra in telemetry resources.
const ServiceName = "gefyra"

const (
	engineCheckTimeout = 5 * time.Second
	shutdownTimeout    = 5 * time.Second
)

// Options configures New.
type Options struct {
	ConfigPath string
	Version    string

	// Fs is the filesystem config files are read from; nil means the OS.
	Fs afero.Fs
	// Engine replaces the Docker adapter when set.
	Engine out.NetworkEngine
}

// App is a fully wired gefyra invocation.
type App struct {
	Config  Config
	Log     zerowrap.Logger
	RunID   string
	Engine  out.NetworkEngine
	Service in.NetworkService

	cleanups []func(context.Context)
}

// New loads configuration, builds the logger, the Docker engine adapter,
// telemetry and the network service.
func New(ctx context.Context, opts Options) (*App, error) {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	cfg, err := initConfig(fs, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	log, logCleanup, err := initLogger(cfg)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config: cfg,
		Log:    log,
		RunID:  uuid.NewString(),
	}
	if logCleanup != nil {
		a.cleanups = append(a.cleanups, func(context.Context) { logCleanup() })
	}

	ctx = a.Context(ctx)
	log = zerowrap.FromCtx(ctx)

	engine := opts.Engine
	if engine == nil {
		dockerEngine, err := docker.NewEngine(cfg.Docker.Host)
		if err != nil {
			a.Close()
			return nil, log.WrapErr(err, "failed to create Docker engine")
		}
		a.cleanups = append(a.cleanups, func(context.Context) { _ = dockerEngine.Close() })
		engine = dockerEngine
	}
	a.Engine = engine

	provider, shutdownTelemetry, err := telemetry.NewProvider(ctx, cfg.Telemetry, ServiceName, opts.Version)
	if err != nil {
		a.Close()
		return nil, log.WrapErr(err, "failed to initialize telemetry")
	}
	a.cleanups = append(a.cleanups, shutdownTelemetry)

	recorder, err := telemetry.NewRecorder(provider)
	if err != nil {
		a.Close()
		return nil, log.WrapErr(err, "failed to create telemetry recorder")
	}

	netCfg, err := cfg.NetworkConfig()
	if err != nil {
		a.Close()
		return nil, log.WrapErr(err, "invalid network configuration")
	}

	svc, err := network.NewService(engine, recorder, netCfg)
	if err != nil {
		a.Close()
		return nil, log.WrapErr(err, "failed to create network service")
	}
	a.Service = svc

	log.Debug().
		Str(zerowrap.FieldLayer, "app").
		Str("network", cfg.Network.Name).
		Str("ownership_key", cfg.Ownership.Key).
		Bool("telemetry", cfg.Telemetry.Enabled).
		Msg("gefyra initialized")

	return a, nil
}

// Context returns ctx carrying the app logger tagged with this run's ID.
func (a *App) Context(ctx context.Context) context.Context {
	ctx = zerowrap.WithCtx(ctx, a.Log)
	return zerowrap.CtxWithField(ctx, "run_id", a.RunID)
}

// CheckEngine fails fast when the container engine cannot be reached.
func (a *App) CheckEngine(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(a.Context(ctx), engineCheckTimeout)
	defer cancel()

	if err := a.Engine.Ping(ctx); err != nil {
		return zerowrap.FromCtx(ctx).WrapErr(err, "container engine is not reachable")
	}
	return nil
}

// Close flushes telemetry and releases the engine client and log file.
// Cleanups run in reverse order of registration.
func (a *App) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for i := len(a.cleanups) - 1; i >= 0; i-- {
		a.cleanups[i](ctx)
	}
	a.cleanups = nil
}
