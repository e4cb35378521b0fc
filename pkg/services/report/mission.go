package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/chapman178/om-Aviary/pkg/export/markdown"
	"github.com/chapman178/om-Aviary/pkg/models/domain"
	"github.com/chapman178/om-Aviary/pkg/services/problem"
)

const (
	// DefaultTrajectory is the conventional name of the single trajectory
	// variable paths are resolved under.
	DefaultTrajectory = "traj"

	missionSummaryFile = "mission_summary.md"

	varMass     = "mass"
	varTime     = "t"
	varDistance = "distance"
)

type MissionSettings struct {
	Trajectory string
}

// endpoint holds one phase boundary's values, read directly from the first
// or last phase of the trajectory.
type endpoint struct {
	phase    string
	mass     *float64
	time     *float64
	distance *float64
}

// MissionReport writes mission_summary.md into the problem's reports folder:
// whole-mission totals followed by one table per phase with fuel burn,
// elapsed time and ground distance.
func MissionReport(ctx context.Context, p problem.Problem, settings MissionSettings) error {
	logger := zerolog.Ctx(ctx)

	traj := settings.Trajectory
	if traj == "" {
		traj = p.Trajectory()
	}
	if traj == "" {
		traj = DefaultTrajectory
	}

	phases := p.Phases()
	if len(phases) == 0 {
		return fmt.Errorf("trajectory %q has no phases", traj)
	}

	segments := make([]domain.PhaseSummary, 0, len(phases))
	for _, phase := range phases {
		summary, err := phaseSummary(ctx, p, traj, phase)
		if err != nil {
			return fmt.Errorf("summarize phase %q: %w", phase, err)
		}
		segments = append(segments, summary)
	}

	initial, err := readEndpoint(ctx, p, traj, phases[0], 0)
	if err != nil {
		return err
	}
	final, err := readEndpoint(ctx, p, traj, phases[len(phases)-1], -1)
	if err != nil {
		return err
	}

	totals, err := missionTotals(initial, final)
	if err != nil {
		return err
	}

	path := filepath.Join(p.ReportsDir(), missionSummaryFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create mission summary: %w", err)
	}
	defer f.Close()

	if err := writeMissionSummary(f, totals, segments); err != nil {
		return fmt.Errorf("write mission summary: %w", err)
	}

	logger.Info().Str("path", path).Int("phases", len(segments)).Msg("mission summary written")
	return nil
}

func phaseSummary(ctx context.Context, p problem.Problem, traj, phase string) (domain.PhaseSummary, error) {
	// Mass endpoints are requested in reverse so the burn comes out positive
	// for a mass-losing phase.
	fuelBurn, err := PhaseDelta(ctx, p, traj, phase, varMass, domain.UnitMass, []int{-1, 0})
	if err != nil {
		return domain.PhaseSummary{}, err
	}
	elapsed, err := PhaseDelta(ctx, p, traj, phase, varTime, domain.UnitTime, nil)
	if err != nil {
		return domain.PhaseSummary{}, err
	}
	distance, err := PhaseDelta(ctx, p, traj, phase, varDistance, domain.UnitDistance, nil)
	if err != nil {
		return domain.PhaseSummary{}, err
	}

	var values domain.NamedValues
	values.Set("Fuel Burn", fuelBurn, domain.UnitMass)
	values.Set("Elapsed Time", elapsed, domain.UnitTime)
	values.Set("Ground Distance", distance, domain.UnitDistance)

	return domain.PhaseSummary{Phase: phase, Values: values}, nil
}

// readEndpoint reads mass, time and distance for one phase at a single
// boundary index (0 for the mission start, -1 for the mission end).
func readEndpoint(ctx context.Context, p problem.Problem, traj, phase string, index int) (endpoint, error) {
	ep := endpoint{phase: phase}
	indices := []int{index}

	for _, read := range []struct {
		variable string
		units    string
		dest     **float64
	}{
		{varMass, domain.UnitMass, &ep.mass},
		{varTime, domain.UnitTime, &ep.time},
		{varDistance, domain.UnitDistance, &ep.distance},
	} {
		vals, err := PhaseValue(ctx, p, traj, phase, read.variable, read.units, indices)
		if err != nil {
			return endpoint{}, fmt.Errorf("read %s at phase %q boundary: %w", read.variable, phase, err)
		}
		if vals != nil {
			v := vals[0]
			*read.dest = &v
		}
	}
	return ep, nil
}

// missionTotals folds the two endpoints into the totals table. An undefined
// endpoint value fails loudly, naming the variable and phase, instead of
// emitting a broken total.
func missionTotals(initial, final endpoint) (*domain.NamedValues, error) {
	diff := func(label string, from, to *float64, fromPhase, toPhase string) (float64, error) {
		if from == nil {
			return 0, fmt.Errorf("mission totals: %s undefined in phase %q", label, fromPhase)
		}
		if to == nil {
			return 0, fmt.Errorf("mission totals: %s undefined in phase %q", label, toPhase)
		}
		return *to - *from, nil
	}

	// Burn is initial minus final, positive when the mission loses mass.
	fuelBurn, err := diff("mass", final.mass, initial.mass, final.phase, initial.phase)
	if err != nil {
		return nil, err
	}
	totalTime, err := diff("time", initial.time, final.time, initial.phase, final.phase)
	if err != nil {
		return nil, err
	}
	totalDistance, err := diff("distance", initial.distance, final.distance, initial.phase, final.phase)
	if err != nil {
		return nil, err
	}

	var totals domain.NamedValues
	totals.Set("Total Fuel Burn", &fuelBurn, domain.UnitMass)
	totals.Set("Total Time", &totalTime, domain.UnitTime)
	totals.Set("Total Ground Distance", &totalDistance, domain.UnitDistance)
	return &totals, nil
}

func writeMissionSummary(f *os.File, totals *domain.NamedValues, segments []domain.PhaseSummary) error {
	doc, err := markdown.NewWriter(f)
	if err != nil {
		return err
	}

	if err := doc.Section("MISSION SUMMARY"); err != nil {
		return err
	}
	if err := doc.Table(totals); err != nil {
		return err
	}

	if err := doc.Section("MISSION SEGMENTS"); err != nil {
		return err
	}
	for _, segment := range segments {
		if err := doc.Subsection(segment.Phase); err != nil {
			return err
		}
		if err := doc.Table(&segment.Values); err != nil {
			return err
		}
	}
	return nil
}
