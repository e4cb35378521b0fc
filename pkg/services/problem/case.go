package problem

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chapman178/om-Aviary/pkg/models/domain"
	"github.com/chapman178/om-Aviary/pkg/store/duckdb/record"
)

// CaseProblem exposes a solved case recorded in the case store through the
// Problem interface.
type CaseProblem struct {
	store      record.Store
	reportsDir string
	trajectory string
	phases     []string
	subsystems []Subsystem
}

type CaseOptions struct {
	ReportsDir string
	// Trajectory is the conventional single trajectory name paths are
	// resolved under. Defaults to "traj".
	Trajectory string
	Subsystems []Subsystem
}

// NewCaseProblem loads the phase sequence from the store and returns a
// Problem over it. The case must contain at least one phase.
func NewCaseProblem(ctx context.Context, s record.Store, opts CaseOptions) (*CaseProblem, error) {
	if s == nil {
		return nil, fmt.Errorf("case store is nil")
	}
	phases, err := s.Phases(ctx)
	if err != nil {
		return nil, fmt.Errorf("load phases: %w", err)
	}
	if len(phases) == 0 {
		return nil, fmt.Errorf("case has no phases")
	}

	trajectory := opts.Trajectory
	if trajectory == "" {
		trajectory = "traj"
	}

	return &CaseProblem{
		store:      s,
		reportsDir: opts.ReportsDir,
		trajectory: trajectory,
		phases:     phases,
		subsystems: opts.Subsystems,
	}, nil
}

func (p *CaseProblem) ReportsDir() string { return p.reportsDir }

func (p *CaseProblem) Trajectory() string { return p.trajectory }

func (p *CaseProblem) Phases() []string {
	out := make([]string, len(p.phases))
	copy(out, p.phases)
	return out
}

func (p *CaseProblem) Subsystems() []Subsystem {
	out := make([]Subsystem, len(p.subsystems))
	copy(out, p.subsystems)
	return out
}

func (p *CaseProblem) GetVal(ctx context.Context, path, units string, indices []int) ([]float64, error) {
	phase, variable, series, err := p.splitPath(path)
	if err != nil {
		return nil, err
	}

	var (
		vals []float64
		unit string
	)
	if series {
		vals, unit, err = p.store.GetSeries(ctx, phase, variable)
	} else {
		var v float64
		v, unit, err = p.store.GetValue(ctx, phase, variable)
		vals = []float64{v}
	}
	switch {
	case errors.Is(err, record.ErrNotFound):
		return nil, fmt.Errorf("%w: %s", ErrPathMissing, path)
	case errors.Is(err, record.ErrWrongKind):
		return nil, fmt.Errorf("%w: %s", ErrTypeMismatch, path)
	case err != nil:
		return nil, err
	}

	vals, err = domain.ConvertSlice(vals, unit, units)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", path, err)
	}

	return selectIndices(vals, indices)
}

// splitPath validates a variable path against the problem's trajectory and
// returns the phase, the variable and whether the timeseries table is meant.
func (p *CaseProblem) splitPath(path string) (phase, variable string, series bool, err error) {
	parts := strings.Split(path, ".")
	switch {
	case len(parts) == 4 && parts[2] == "timeseries":
		series = true
	case len(parts) == 3:
	default:
		return "", "", false, fmt.Errorf("malformed variable path %q", path)
	}
	if parts[0] != p.trajectory {
		return "", "", false, fmt.Errorf("%w: %s", ErrPathMissing, path)
	}
	return parts[1], parts[len(parts)-1], series, nil
}

func selectIndices(vals []float64, indices []int) ([]float64, error) {
	if indices == nil {
		return vals, nil
	}
	out := make([]float64, len(indices))
	for i, idx := range indices {
		if idx < 0 {
			idx += len(vals)
		}
		if idx < 0 || idx >= len(vals) {
			return nil, fmt.Errorf("index %d out of range for series of length %d", indices[i], len(vals))
		}
		out[i] = vals[idx]
	}
	return out, nil
}
