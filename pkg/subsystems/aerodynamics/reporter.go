// Package aerodynamics reports per-phase ground performance for the solved
// trajectory.
package aerodynamics

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chapman178/om-Aviary/pkg/export/markdown"
	"github.com/chapman178/om-Aviary/pkg/models/domain"
	"github.com/chapman178/om-Aviary/pkg/services/problem"
	"github.com/chapman178/om-Aviary/pkg/services/report"
)

type Reporter struct{}

func (Reporter) Name() string { return "aerodynamics" }

// Report writes aerodynamics.md with each phase's ground distance and
// average ground speed.
func (r Reporter) Report(ctx context.Context, p problem.Problem, dir string) error {
	traj := p.Trajectory()
	if traj == "" {
		traj = report.DefaultTrajectory
	}

	f, err := os.Create(filepath.Join(dir, "aerodynamics.md"))
	if err != nil {
		return fmt.Errorf("create aerodynamics report: %w", err)
	}
	defer f.Close()

	doc, err := markdown.NewWriter(f)
	if err != nil {
		return err
	}
	if err := doc.Section("AERODYNAMICS"); err != nil {
		return err
	}

	for _, phase := range p.Phases() {
		distance, err := report.PhaseDelta(ctx, p, traj, phase, "distance", domain.UnitDistance, nil)
		if err != nil {
			return err
		}
		elapsed, err := report.PhaseDelta(ctx, p, traj, phase, "t", domain.UnitTime, nil)
		if err != nil {
			return err
		}

		var speed *float64
		if distance != nil && elapsed != nil && *elapsed != 0 {
			speed = domain.Float64(*distance / *elapsed * 60)
		}

		var values domain.NamedValues
		values.Set("Ground Distance", distance, domain.UnitDistance)
		values.Set("Avg Ground Speed", speed, "kn")

		if err := doc.Subsection(phase); err != nil {
			return err
		}
		if err := doc.Table(&values); err != nil {
			return err
		}
	}
	return nil
}
