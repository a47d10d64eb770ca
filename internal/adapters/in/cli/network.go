package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gefyra/gefyra/internal/adapters/dto"
	"github.com/gefyra/gefyra/internal/adapters/in/cli/ui/components"
	"github.com/gefyra/gefyra/internal/boundaries/in"
	"github.com/gefyra/gefyra/internal/domain"
)

type networkOptions struct {
	Name           string
	Output         string
	RequireManaged bool
}

var killTableColumns = []components.TableColumn{
	{Title: "CONTAINER", Width: 14},
	{Title: "RESULT", Width: 9},
	{Title: "DETAIL", Width: 60},
}

// newNetworkCmd creates the network command group.
func newNetworkCmd(factory serviceFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Manage the gefyra network",
		Long: `Create, inspect and tear down the Docker network shared by gefyra's
containers. Networks not labelled as managed by gefyra are never modified.`,
	}

	cmd.AddCommand(newNetworkUpCmd(factory))
	cmd.AddCommand(newNetworkDownCmd(factory))
	cmd.AddCommand(newNetworkRemoveCmd(factory))
	cmd.AddCommand(newNetworkKillCmd(factory))
	cmd.AddCommand(newNetworkStatusCmd(factory))

	return cmd
}

func addNetworkFlags(cmd *cobra.Command, opts *networkOptions) {
	cmd.Flags().StringVar(&opts.Name, "name", "", "Network name (defaults to network.name from config)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", outputText, "Output format: text, json or yaml")
}

// withService validates flags, builds the service and runs fn with it.
func withService(cmd *cobra.Command, factory serviceFactory, opts *networkOptions, fn func(context.Context, in.NetworkService, io.Writer) error) error {
	if err := validateOutput(opts.Output); err != nil {
		return err
	}

	ctx, svc, release, err := factory(cmd.Context())
	if err != nil {
		return err
	}
	defer release()

	return fn(ctx, svc, cmd.OutOrStdout())
}

func newNetworkUpCmd(factory serviceFactory) *cobra.Command {
	var opts networkOptions
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Create the network if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, factory, &opts, func(ctx context.Context, svc in.NetworkService, out io.Writer) error {
				return runNetworkUp(ctx, svc, opts, out)
			})
		},
	}
	addNetworkFlags(cmd, &opts)
	cmd.Flags().BoolVar(&opts.RequireManaged, "require-managed", false, "Fail when an existing network with this name is not managed by gefyra")
	return cmd
}

func newNetworkDownCmd(factory serviceFactory) *cobra.Command {
	var opts networkOptions
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Kill managed containers on the network, then remove it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, factory, &opts, func(ctx context.Context, svc in.NetworkService, out io.Writer) error {
				return runNetworkDown(ctx, svc, opts, out)
			})
		},
	}
	addNetworkFlags(cmd, &opts)
	return cmd
}

func newNetworkRemoveCmd(factory serviceFactory) *cobra.Command {
	var opts networkOptions
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove the network if gefyra manages it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, factory, &opts, func(ctx context.Context, svc in.NetworkService, out io.Writer) error {
				return runNetworkRemove(ctx, svc, opts, out)
			})
		},
	}
	addNetworkFlags(cmd, &opts)
	return cmd
}

func newNetworkKillCmd(factory serviceFactory) *cobra.Command {
	var opts networkOptions
	cmd := &cobra.Command{
		Use:   "kill",
		Short: "Kill managed containers attached to the network",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, factory, &opts, func(ctx context.Context, svc in.NetworkService, out io.Writer) error {
				return runNetworkKill(ctx, svc, opts, out)
			})
		},
	}
	addNetworkFlags(cmd, &opts)
	return cmd
}

func newNetworkStatusCmd(factory serviceFactory) *cobra.Command {
	var opts networkOptions
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether the network exists and who owns it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, factory, &opts, func(ctx context.Context, svc in.NetworkService, out io.Writer) error {
				return runNetworkStatus(ctx, svc, opts, out)
			})
		},
	}
	addNetworkFlags(cmd, &opts)
	return cmd
}

func runNetworkUp(ctx context.Context, svc in.NetworkService, opts networkOptions, out io.Writer) error {
	result, err := svc.EnsureNetwork(ctx, opts.Name)
	if err != nil {
		return fmt.Errorf("failed to ensure network: %w", err)
	}

	if ok, err := writeStructured(out, opts.Output, dto.EnsureFromDomain(result)); ok {
		if err != nil {
			return err
		}
		return ensureOwnership(result, opts)
	}

	n := result.Network
	switch {
	case result.Created:
		if err := cliWriteLine(out, cliRenderSuccess(fmt.Sprintf("Created network %s (%s)", n.Name, n.ShortID()))); err != nil {
			return err
		}
	case result.Foreign:
		if err := cliWriteLine(out, cliRenderWarning(fmt.Sprintf("Network %s (%s) exists but is not managed by gefyra", n.Name, n.ShortID()))); err != nil {
			return err
		}
	default:
		if err := cliWriteLine(out, cliRenderInfo(fmt.Sprintf("Network %s (%s) already exists", n.Name, n.ShortID()))); err != nil {
			return err
		}
	}
	if err := writeNetworkDetails(out, n); err != nil {
		return err
	}
	return ensureOwnership(result, opts)
}

func ensureOwnership(result *domain.EnsureResult, opts networkOptions) error {
	if !opts.RequireManaged {
		return nil
	}
	return result.RequireManaged()
}

func runNetworkRemove(ctx context.Context, svc in.NetworkService, opts networkOptions, out io.Writer) error {
	result := svc.TeardownNetwork(ctx, opts.Name)

	if ok, err := writeStructured(out, opts.Output, dto.TeardownFromDomain(result)); ok {
		if err != nil {
			return err
		}
		return result.Err
	}

	if err := writeTeardown(out, result); err != nil {
		return err
	}
	return result.Err
}

func runNetworkKill(ctx context.Context, svc in.NetworkService, opts networkOptions, out io.Writer) error {
	report, err := svc.KillManagedContainers(ctx, opts.Name)
	if err != nil {
		return fmt.Errorf("failed to kill containers: %w", err)
	}

	if ok, err := writeStructured(out, opts.Output, dto.KillFromDomain(report)); ok {
		if err != nil {
			return err
		}
		return report.Err()
	}

	if err := writeKillReport(out, report); err != nil {
		return err
	}
	return report.Err()
}

func runNetworkDown(ctx context.Context, svc in.NetworkService, opts networkOptions, out io.Writer) error {
	report, err := svc.Shutdown(ctx, opts.Name)
	if err != nil {
		return fmt.Errorf("failed to shut down network: %w", err)
	}

	if ok, err := writeStructured(out, opts.Output, dto.ShutdownFromDomain(report)); ok {
		if err != nil {
			return err
		}
		return report.Err()
	}

	if err := writeKillReport(out, report.Kill); err != nil {
		return err
	}
	if err := writeTeardown(out, report.Teardown); err != nil {
		return err
	}
	return report.Err()
}

func runNetworkStatus(ctx context.Context, svc in.NetworkService, opts networkOptions, out io.Writer) error {
	status, err := svc.Status(ctx, opts.Name)
	if err != nil {
		return fmt.Errorf("failed to get network status: %w", err)
	}

	if ok, err := writeStructured(out, opts.Output, dto.NetworkStatusFromDomain(status)); ok {
		return err
	}

	if err := cliWriteLine(out, cliRenderTitle("Network "+status.Name)); err != nil {
		return err
	}
	if !status.Exists {
		return cliWriteLine(out, cliRenderMuted("Network does not exist"))
	}

	owner := cliRenderBadge("managed")
	if !status.Managed {
		owner = cliRenderBadge("foreign")
	}
	if err := cliWriteLine(out, cliRenderMeta("Owner", owner)); err != nil {
		return err
	}
	return writeNetworkDetails(out, status.Network)
}

func writeNetworkDetails(out io.Writer, n *domain.Network) error {
	if n == nil {
		return nil
	}
	subnet := n.Subnet
	if subnet == "" {
		subnet = "-"
	}
	lines := []string{
		cliRenderMeta("ID", n.ShortID()),
		cliRenderMeta("Driver", n.Driver),
		cliRenderMeta("Subnet", subnet),
		cliRenderMeta("Attached", fmt.Sprintf("%d container(s)", len(n.Containers))),
	}
	for _, id := range n.Containers {
		lines = append(lines, "  "+cliRenderListItem(shortContainerID(id)))
	}
	for _, line := range lines {
		if err := cliWriteLine(out, line); err != nil {
			return err
		}
	}
	return nil
}

func writeTeardown(out io.Writer, result domain.TeardownResult) error {
	name := result.Network
	switch result.Outcome {
	case domain.TeardownRemoved:
		return cliWriteLine(out, cliRenderSuccess(fmt.Sprintf("Removed network %s", name)))
	case domain.TeardownSkippedForeign:
		return cliWriteLine(out, cliRenderWarning(fmt.Sprintf("Network %s is not managed by gefyra, left in place", name)))
	case domain.TeardownNotFound:
		return cliWriteLine(out, cliRenderMuted(fmt.Sprintf("Network %s does not exist", name)))
	default:
		return cliWriteLine(out, cliRenderError(fmt.Sprintf("Failed to remove network %s: %v", name, result.Err)))
	}
}

func writeKillReport(out io.Writer, report domain.KillReport) error {
	total := len(report.Killed) + len(report.Skipped) + len(report.Failures)
	if total == 0 {
		return cliWriteLine(out, cliRenderMuted("No containers attached to the network"))
	}

	rows := make([][]string, 0, total)
	for _, id := range report.Killed {
		rows = append(rows, []string{shortContainerID(id), cliRenderBadge("killed"), ""})
	}
	for _, id := range report.Skipped {
		rows = append(rows, []string{shortContainerID(id), cliRenderBadge("skipped"), "not managed by gefyra"})
	}
	for _, f := range report.Failures {
		rows = append(rows, []string{shortContainerID(f.ContainerID), cliRenderBadge("failed"), f.Err.Error()})
	}

	table := components.NewTable(
		components.WithColumns(killTableColumns),
		components.WithRows(rows),
	)
	if err := cliWriteLine(out, table.Render()); err != nil {
		return err
	}

	return cliWritef(out, "Killed %d, skipped %d, failed %d\n", len(report.Killed), len(report.Skipped), len(report.Failures))
}

func shortContainerID(id string) string {
	return (&domain.Container{ID: id}).ShortID()
}
