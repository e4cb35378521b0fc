// Package propulsion reports per-phase fuel consumption for the solved
// trajectory.
package propulsion

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

func (Reporter) Name() string { return "propulsion" }

// Report writes propulsion.md with each phase's fuel burn and average fuel
// flow. Phases whose mass or time cannot be resolved get n/a rows.
func (r Reporter) Report(ctx context.Context, p problem.Problem, dir string) error {
	traj := p.Trajectory()
	if traj == "" {
		traj = report.DefaultTrajectory
	}

	f, err := os.Create(filepath.Join(dir, "propulsion.md"))
	if err != nil {
		return fmt.Errorf("create propulsion report: %w", err)
	}
	defer f.Close()

	doc, err := markdown.NewWriter(f)
	if err != nil {
		return err
	}
	if err := doc.Section("PROPULSION"); err != nil {
		return err
	}

	for _, phase := range p.Phases() {
		burn, err := report.PhaseDelta(ctx, p, traj, phase, "mass", domain.UnitMass, []int{-1, 0})
		if err != nil {
			return err
		}
		elapsed, err := report.PhaseDelta(ctx, p, traj, phase, "t", domain.UnitTime, nil)
		if err != nil {
			return err
		}

		var flow *float64
		if burn != nil && elapsed != nil && *elapsed != 0 {
			flow = domain.Float64(*burn / *elapsed)
		}

		var values domain.NamedValues
		values.Set("Fuel Burn", burn, domain.UnitMass)
		values.Set("Avg Fuel Flow", flow, "lbm/min")

		if err := doc.Subsection(phase); err != nil {
			return err
		}
		if err := doc.Table(&values); err != nil {
			return err
		}
	}
	return nil
}
