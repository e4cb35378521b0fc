package problem

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chapman178/om-Aviary/pkg/models/store"
	"github.com/chapman178/om-Aviary/pkg/store/duckdb/record"
)

type seriesEntry struct {
	vals []float64
	unit string
}

type valueEntry struct {
	val  float64
	unit string
	kind store.ValueKind
}

type fakeStore struct {
	phases []string
	series map[string]seriesEntry
	values map[string]valueEntry
}

func newFakeStore(phases ...string) *fakeStore {
	return &fakeStore{
		phases: phases,
		series: make(map[string]seriesEntry),
		values: make(map[string]valueEntry),
	}
}

func key(phase, variable string) string { return phase + "/" + variable }

func (f *fakeStore) AddPhases(context.Context, []string) error            { return nil }
func (f *fakeStore) AddSeries(context.Context, []store.SeriesPoint) error { return nil }
func (f *fakeStore) AddValues(context.Context, []store.PhaseValue) error  { return nil }

func (f *fakeStore) Phases(context.Context) ([]string, error) { return f.phases, nil }

func (f *fakeStore) GetSeries(_ context.Context, phase, variable string) ([]float64, string, error) {
	e, ok := f.series[key(phase, variable)]
	if !ok {
		return nil, "", fmt.Errorf("timeseries %s.%s: %w", phase, variable, record.ErrNotFound)
	}
	return e.vals, e.unit, nil
}

func (f *fakeStore) GetValue(_ context.Context, phase, variable string) (float64, string, error) {
	e, ok := f.values[key(phase, variable)]
	if !ok {
		return 0, "", fmt.Errorf("phase value %s.%s: %w", phase, variable, record.ErrNotFound)
	}
	if e.kind == store.KindIntegrated {
		return 0, "", fmt.Errorf("phase value %s.%s: %w", phase, variable, record.ErrWrongKind)
	}
	return e.val, e.unit, nil
}

func setupProblem(t *testing.T, s record.Store) *CaseProblem {
	p, err := NewCaseProblem(context.Background(), s, CaseOptions{ReportsDir: t.TempDir()})
	require.NoError(t, err)
	return p
}

func TestNewCaseProblem(t *testing.T) {
	t.Run("loads phase sequence", func(t *testing.T) {
		p := setupProblem(t, newFakeStore("climb", "cruise", "descent"))
		assert.Equal(t, []string{"climb", "cruise", "descent"}, p.Phases())
		assert.Equal(t, "traj", p.Trajectory())
	})

	t.Run("error - no phases", func(t *testing.T) {
		_, err := NewCaseProblem(context.Background(), newFakeStore(), CaseOptions{})
		assert.Error(t, err)
	})

	t.Run("error - nil store", func(t *testing.T) {
		_, err := NewCaseProblem(context.Background(), nil, CaseOptions{})
		assert.Error(t, err)
	})
}

func TestCaseProblem_GetVal(t *testing.T) {
	ctx := context.Background()

	t.Run("timeseries path with unit conversion", func(t *testing.T) {
		s := newFakeStore("climb")
		s.series[key("climb", "mass")] = seriesEntry{vals: []float64{453.59237, 226.796185}, unit: "kg"}
		p := setupProblem(t, s)

		vals, err := p.GetVal(ctx, "traj.climb.timeseries.mass", "lbm", nil)
		require.NoError(t, err)
		require.Len(t, vals, 2)
		assert.InDelta(t, 1000, vals[0], 1e-9)
		assert.InDelta(t, 500, vals[1], 1e-9)
	})

	t.Run("index selection with negative indices", func(t *testing.T) {
		s := newFakeStore("climb")
		s.series[key("climb", "t")] = seriesEntry{vals: []float64{0, 5, 10}, unit: "min"}
		p := setupProblem(t, s)

		vals, err := p.GetVal(ctx, "traj.climb.timeseries.t", "min", []int{-1, 0})
		require.NoError(t, err)
		assert.Equal(t, []float64{10, 0}, vals)
	})

	t.Run("scalar path", func(t *testing.T) {
		s := newFakeStore("climb")
		s.values[key("climb", "mass")] = valueEntry{val: 900, unit: "lbm", kind: store.KindScalar}
		p := setupProblem(t, s)

		vals, err := p.GetVal(ctx, "traj.climb.mass", "lbm", nil)
		require.NoError(t, err)
		assert.Equal(t, []float64{900}, vals)
	})

	t.Run("missing series maps to ErrPathMissing", func(t *testing.T) {
		p := setupProblem(t, newFakeStore("climb"))

		_, err := p.GetVal(ctx, "traj.climb.timeseries.mass", "lbm", nil)
		assert.ErrorIs(t, err, ErrPathMissing)
	})

	t.Run("integrated value maps to ErrTypeMismatch", func(t *testing.T) {
		s := newFakeStore("cruise")
		s.values[key("cruise", "mass")] = valueEntry{val: 0, unit: "lbm", kind: store.KindIntegrated}
		p := setupProblem(t, s)

		_, err := p.GetVal(ctx, "traj.cruise.mass", "lbm", nil)
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("unknown trajectory maps to ErrPathMissing", func(t *testing.T) {
		p := setupProblem(t, newFakeStore("climb"))

		_, err := p.GetVal(ctx, "other.climb.timeseries.mass", "lbm", nil)
		assert.ErrorIs(t, err, ErrPathMissing)
	})

	t.Run("malformed path", func(t *testing.T) {
		p := setupProblem(t, newFakeStore("climb"))

		_, err := p.GetVal(ctx, "traj.climb", "lbm", nil)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrPathMissing)
	})

	t.Run("index out of range", func(t *testing.T) {
		s := newFakeStore("climb")
		s.series[key("climb", "t")] = seriesEntry{vals: []float64{0, 5}, unit: "min"}
		p := setupProblem(t, s)

		_, err := p.GetVal(ctx, "traj.climb.timeseries.t", "min", []int{3})
		assert.Error(t, err)
	})

	t.Run("unit conversion failure", func(t *testing.T) {
		s := newFakeStore("climb")
		s.series[key("climb", "mass")] = seriesEntry{vals: []float64{1}, unit: "kg"}
		p := setupProblem(t, s)

		_, err := p.GetVal(ctx, "traj.climb.timeseries.mass", "min", nil)
		assert.Error(t, err)
	})
}
