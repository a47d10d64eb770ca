// Package cli implements the CLI adapter for gefyra.
// This package provides Cobra commands that delegate to the network service.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/gefyra/gefyra/internal/app"
	"github.com/gefyra/gefyra/internal/boundaries/in"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// configPath is set by the persistent --config flag. If empty, gefyra.{yml,toml}
// is looked up in the user config dir and the current directory.
var configPath string

// serviceFactory builds the network service for one command invocation.
// The returned context carries the configured logger; release must be called
// when the command is done.
type serviceFactory func(ctx context.Context) (context.Context, in.NetworkService, func(), error)

func newAppServiceFactory() serviceFactory {
	return func(ctx context.Context) (context.Context, in.NetworkService, func(), error) {
		a, err := app.New(ctx, app.Options{ConfigPath: configPath, Version: Version})
		if err != nil {
			return ctx, nil, nil, err
		}
		if err := a.CheckEngine(ctx); err != nil {
			a.Close()
			return ctx, nil, nil, err
		}
		return a.Context(ctx), a.Service, a.Close, nil
	}
}

// NewRootCmd creates the root command for gefyra CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newAppServiceFactory())
}

func newRootCmd(factory serviceFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gefyra",
		Short: "gefyra - manage the shared local development network",
		Long: `gefyra manages the Docker network that connects local development
containers to workloads mirrored from a remote cluster.

The network is created on demand with an address range picked by Docker and
is labelled so that gefyra only ever removes what it created itself.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(newNetworkCmd(factory))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("gefyra %s\n", Version)
			cmd.Printf("Commit: %s\n", Commit)
			cmd.Printf("Build Date: %s\n", BuildDate)
		},
	}
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(version, commit, date string) {
	Version = version
	Commit = commit
	BuildDate = date
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
