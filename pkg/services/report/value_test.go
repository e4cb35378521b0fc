package report

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chapman178/om-Aviary/pkg/services/problem"
)

// fakeProblem resolves variable paths from in-memory tables. Values are
// stored in the units the reports request, so unit handling stays out of
// these tests.
type fakeProblem struct {
	reportsDir string
	trajectory string
	phases     []string
	subsystems []problem.Subsystem
	series     map[string][]float64
	scalars    map[string]float64
	integrated map[string]bool
}

func newFakeProblem(reportsDir string, phases ...string) *fakeProblem {
	return &fakeProblem{
		reportsDir: reportsDir,
		trajectory: "traj",
		phases:     phases,
		series:     make(map[string][]float64),
		scalars:    make(map[string]float64),
		integrated: make(map[string]bool),
	}
}

func (f *fakeProblem) setSeries(phase, variable string, vals ...float64) {
	f.series[fmt.Sprintf("traj.%s.timeseries.%s", phase, variable)] = vals
}

func (f *fakeProblem) setScalar(phase, variable string, val float64) {
	f.scalars[fmt.Sprintf("traj.%s.%s", phase, variable)] = val
}

func (f *fakeProblem) setIntegrated(phase, variable string) {
	f.integrated[fmt.Sprintf("traj.%s.%s", phase, variable)] = true
}

func (f *fakeProblem) GetVal(_ context.Context, path, _ string, indices []int) ([]float64, error) {
	if vals, ok := f.series[path]; ok {
		return selectFake(vals, indices)
	}
	if f.integrated[path] {
		return nil, fmt.Errorf("%w: %s", problem.ErrTypeMismatch, path)
	}
	if v, ok := f.scalars[path]; ok {
		return selectFake([]float64{v}, indices)
	}
	return nil, fmt.Errorf("%w: %s", problem.ErrPathMissing, path)
}

func (f *fakeProblem) ReportsDir() string              { return f.reportsDir }
func (f *fakeProblem) Trajectory() string              { return f.trajectory }
func (f *fakeProblem) Phases() []string                { return f.phases }
func (f *fakeProblem) Subsystems() []problem.Subsystem { return f.subsystems }

func selectFake(vals []float64, indices []int) ([]float64, error) {
	if indices == nil {
		return vals, nil
	}
	out := make([]float64, len(indices))
	for i, idx := range indices {
		if idx < 0 {
			idx += len(vals)
		}
		if idx < 0 || idx >= len(vals) {
			return nil, fmt.Errorf("index %d out of range", indices[i])
		}
		out[i] = vals[idx]
	}
	return out, nil
}

func TestPhaseValue_FallbackChain(t *testing.T) {
	ctx := context.Background()

	t.Run("timeseries path wins", func(t *testing.T) {
		p := newFakeProblem(t.TempDir(), "climb")
		p.setSeries("climb", "mass", 1000, 950, 900)
		p.setScalar("climb", "mass", 1)

		vals, err := PhaseValue(ctx, p, "traj", "climb", "mass", "lbm", nil)
		require.NoError(t, err)
		assert.Equal(t, []float64{1000, 950, 900}, vals)
	})

	t.Run("scalar fallback when timeseries missing", func(t *testing.T) {
		p := newFakeProblem(t.TempDir(), "climb")
		p.setScalar("climb", "mass", 950)

		vals, err := PhaseValue(ctx, p, "traj", "climb", "mass", "lbm", []int{0, -1})
		require.NoError(t, err)
		assert.Equal(t, []float64{950, 950}, vals)
	})

	t.Run("time proxy on integrated mass", func(t *testing.T) {
		p := newFakeProblem(t.TempDir(), "cruise")
		p.setIntegrated("cruise", "mass")
		p.setSeries("cruise", "time", 0, 30, 60)

		vals, err := PhaseValue(ctx, p, "traj", "cruise", "mass", "lbm", []int{-1, 0})
		require.NoError(t, err)
		assert.Equal(t, []float64{60, 0}, vals)
	})

	t.Run("undefined when scalar missing too", func(t *testing.T) {
		p := newFakeProblem(t.TempDir(), "climb")

		vals, err := PhaseValue(ctx, p, "traj", "climb", "mass", "lbm", nil)
		require.NoError(t, err)
		assert.Nil(t, vals)
	})

	t.Run("undefined when time proxy missing", func(t *testing.T) {
		p := newFakeProblem(t.TempDir(), "cruise")
		p.setIntegrated("cruise", "mass")

		vals, err := PhaseValue(ctx, p, "traj", "cruise", "mass", "lbm", nil)
		require.NoError(t, err)
		assert.Nil(t, vals)
	})

	t.Run("unexpected errors propagate", func(t *testing.T) {
		p := newFakeProblem(t.TempDir(), "climb")
		p.setSeries("climb", "mass", 1000)

		_, err := PhaseValue(ctx, p, "traj", "climb", "mass", "lbm", []int{5})
		assert.Error(t, err)
	})
}

func TestPhaseDelta(t *testing.T) {
	ctx := context.Background()

	t.Run("default indices give later minus earlier", func(t *testing.T) {
		p := newFakeProblem(t.TempDir(), "climb")
		p.setSeries("climb", "t", 0, 5, 10)

		delta, err := PhaseDelta(ctx, p, "traj", "climb", "t", "min", nil)
		require.NoError(t, err)
		require.NotNil(t, delta)
		assert.Equal(t, 10.0, *delta)
	})

	t.Run("reversed mass indices give positive burn", func(t *testing.T) {
		p := newFakeProblem(t.TempDir(), "climb")
		p.setSeries("climb", "mass", 1000, 950, 900)

		delta, err := PhaseDelta(ctx, p, "traj", "climb", "mass", "lbm", []int{-1, 0})
		require.NoError(t, err)
		require.NotNil(t, delta)
		assert.Equal(t, 100.0, *delta)
	})

	t.Run("undefined value gives nil delta", func(t *testing.T) {
		p := newFakeProblem(t.TempDir(), "climb")

		delta, err := PhaseDelta(ctx, p, "traj", "climb", "mass", "lbm", []int{-1, 0})
		require.NoError(t, err)
		assert.Nil(t, delta)
	})
}
