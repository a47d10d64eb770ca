package network

import (
	"context"
	"errors"

	"github.com/bnema/zerowrap"

	"github.com/gefyra/gefyra/internal/domain"
)

// TeardownNetwork removes the named network when gefyra owns it.
// Ownership is checked against the labels the engine reports right now.
func (s *Service) TeardownNetwork(ctx context.Context, name string) domain.TeardownResult {
	name = s.resolveName(name)
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "TeardownNetwork",
		"network":             name,
	})
	log := zerowrap.FromCtx(ctx)

	ctx, end := s.telemetry.Start(ctx, "teardown", name)
	result := s.teardown(ctx, name, log)
	result.Network = name
	end(result.Outcome.String(), result.Err)
	return result
}

func (s *Service) teardown(ctx context.Context, name string, log zerowrap.Logger) domain.TeardownResult {
	net, found, err := s.engine.LookupNetwork(ctx, name)
	if err != nil {
		return domain.TeardownResult{
			Outcome: domain.TeardownFailed,
			Err:     log.WrapErr(err, "failed to look up network"),
		}
	}
	if !found {
		log.Debug().Msg("network not found, nothing to remove")
		return domain.TeardownResult{Outcome: domain.TeardownNotFound}
	}

	if !s.config.Ownership.IsManaged(net.Labels) {
		log.Info().Str(zerowrap.FieldEntityID, net.ShortID()).Msg("network is not managed by gefyra, leaving it in place")
		return domain.TeardownResult{Outcome: domain.TeardownSkippedForeign, NetworkID: net.ID}
	}

	if err := s.engine.RemoveNetwork(ctx, net.ID); err != nil {
		if errors.Is(err, domain.ErrNetworkNotFound) {
			log.Debug().Msg("network disappeared before removal")
			return domain.TeardownResult{Outcome: domain.TeardownNotFound, NetworkID: net.ID}
		}
		return domain.TeardownResult{
			Outcome:   domain.TeardownFailed,
			NetworkID: net.ID,
			Err:       log.WrapErr(err, "failed to remove network"),
		}
	}

	log.Info().Str(zerowrap.FieldEntityID, net.ShortID()).Msg("removed network")
	return domain.TeardownResult{Outcome: domain.TeardownRemoved, NetworkID: net.ID}
}

// KillManagedContainers force-kills every managed container attached to the
// named network, as listed by the network's own attachment record.
// Per-container failures are collected in the report and do not stop the loop;
// the returned error is reserved for failing to read the network itself.
func (s *Service) KillManagedContainers(ctx context.Context, name string) (domain.KillReport, error) {
	name = s.resolveName(name)
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "KillManagedContainers",
		"network":             name,
	})
	log := zerowrap.FromCtx(ctx)

	ctx, end := s.telemetry.Start(ctx, "kill", name)
	report := domain.KillReport{Network: name}

	net, found, err := s.engine.LookupNetwork(ctx, name)
	if err != nil {
		end("failed", err)
		return report, log.WrapErr(err, "failed to look up network")
	}
	if !found {
		log.Debug().Msg("network not found, no containers to kill")
		end("not-found", nil)
		return report, nil
	}

	for _, id := range net.Containers {
		s.killIfManaged(ctx, id, &report)
	}

	s.telemetry.RecordKills(ctx, name, len(report.Killed), len(report.Skipped), len(report.Failures))

	event := log.Info()
	if len(report.Failures) > 0 {
		event = log.Warn()
	}
	event.
		Int("killed", len(report.Killed)).
		Int("skipped", len(report.Skipped)).
		Int("failed", len(report.Failures)).
		Msg("processed containers attached to network")

	outcome := "done"
	if len(report.Failures) > 0 {
		outcome = "partial"
	}
	end(outcome, report.Err())

	return report, nil
}

func (s *Service) killIfManaged(ctx context.Context, id string, report *domain.KillReport) {
	ctx = zerowrap.CtxWithField(ctx, zerowrap.FieldEntityID, id)
	log := zerowrap.FromCtx(ctx)

	ctr, found, err := s.engine.LookupContainer(ctx, id)
	if err != nil {
		report.Failures = append(report.Failures, domain.KillFailure{
			ContainerID: id,
			Err:         log.WrapErr(err, "failed to inspect attached container"),
		})
		return
	}
	if !found {
		log.Debug().Msg("attached container no longer exists")
		return
	}

	if !s.config.Ownership.IsManaged(ctr.Labels) {
		log.Debug().Str("container", ctr.Name).Msg("container is not managed by gefyra, leaving it running")
		report.Skipped = append(report.Skipped, ctr.ID)
		return
	}

	if err := s.engine.KillContainer(ctx, ctr.ID); err != nil {
		if errors.Is(err, domain.ErrContainerNotFound) {
			log.Debug().Msg("container exited before kill")
			return
		}
		report.Failures = append(report.Failures, domain.KillFailure{
			ContainerID: ctr.ID,
			Err:         log.WrapErr(err, "failed to kill container"),
		})
		return
	}

	log.Info().Str("container", ctr.Name).Msg("killed container")
	report.Killed = append(report.Killed, ctr.ID)
}

// Shutdown kills the managed containers on the network and then tears the
// network down. Engines refuse to delete networks with active endpoints, so
// the kill phase always runs first; teardown is attempted even when some
// kills failed.
func (s *Service) Shutdown(ctx context.Context, name string) (domain.ShutdownReport, error) {
	name = s.resolveName(name)

	kill, err := s.KillManagedContainers(ctx, name)
	if err != nil {
		return domain.ShutdownReport{Kill: kill}, err
	}

	return domain.ShutdownReport{
		Kill:     kill,
		Teardown: s.TeardownNetwork(ctx, name),
	}, nil
}
