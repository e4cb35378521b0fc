package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/chapman178/om-Aviary/pkg/services/problem"
)

// timeVariable is the stand-in series for phases that track mass through
// time integration and expose no directly readable mass value.
const timeVariable = "time"

// outcome is what a fallback step does with a resolution failure.
type outcome int

const (
	tryNext outcome = iota
	undefined
	fail
)

// fallbackStep is one attempt in the ordered value-resolution chain.
type fallbackStep struct {
	path       string
	onMissing  outcome
	onMismatch outcome
}

func seriesPath(traj, phase, variable string) string {
	return fmt.Sprintf("%s.%s.timeseries.%s", traj, phase, variable)
}

func scalarPath(traj, phase, variable string) string {
	return fmt.Sprintf("%s.%s.%s", traj, phase, variable)
}

// PhaseValue resolves one phase variable through the fallback chain:
// timeseries path, then the scalar path, then the timeseries time variable
// as a defined substitution for integrated values. A (nil, nil) return means
// the value is undefined for this phase and downstream deltas are null.
func PhaseValue(ctx context.Context, p problem.Problem, traj, phase, variable, units string, indices []int) ([]float64, error) {
	chain := []fallbackStep{
		{path: seriesPath(traj, phase, variable), onMissing: tryNext, onMismatch: fail},
		{path: scalarPath(traj, phase, variable), onMissing: undefined, onMismatch: tryNext},
		{path: seriesPath(traj, phase, timeVariable), onMissing: undefined, onMismatch: fail},
	}

	for _, step := range chain {
		vals, err := p.GetVal(ctx, step.path, units, indices)
		if err == nil {
			return vals, nil
		}

		var next outcome
		switch {
		case errors.Is(err, problem.ErrPathMissing):
			next = step.onMissing
		case errors.Is(err, problem.ErrTypeMismatch):
			next = step.onMismatch
		default:
			return nil, err
		}

		switch next {
		case tryNext:
			continue
		case undefined:
			return nil, nil
		default:
			return nil, err
		}
	}
	return nil, nil
}

// PhaseDelta reads a variable at two endpoint indices and returns the later
// retrieved element minus the earlier one. Mass is requested with reversed
// indices [-1, 0] so a mass-losing phase reports a positive burn; the
// default order [0, -1] applies otherwise. A nil delta means the value was
// undefined through the whole fallback chain.
func PhaseDelta(ctx context.Context, p problem.Problem, traj, phase, variable, units string, indices []int) (*float64, error) {
	if indices == nil {
		indices = []int{0, -1}
	}

	vals, err := PhaseValue(ctx, p, traj, phase, variable, units, indices)
	if err != nil {
		return nil, err
	}
	if vals == nil {
		return nil, nil
	}

	diff := vals[len(vals)-1] - vals[0]
	return &diff, nil
}
