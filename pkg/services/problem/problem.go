package problem

import (
	"context"
	"errors"
)

var (
	// ErrPathMissing is returned when a variable path does not resolve to
	// any recorded value.
	ErrPathMissing = errors.New("variable path missing")
	// ErrTypeMismatch is returned when a scalar read hits a value that was
	// tracked through time integration instead of a direct state.
	ErrTypeMismatch = errors.New("variable is not a scalar")
)

// Subsystem writes its own report for a solved problem into a target folder.
type Subsystem interface {
	Name() string
	Report(ctx context.Context, p Problem, dir string) error
}

// Problem is the capability surface the report generators consume from a
// solved optimization run.
type Problem interface {
	// GetVal resolves a variable path of the form
	// "{traj}.{phase}.timeseries.{var}" or "{traj}.{phase}.{var}", converts
	// the recorded values to the requested units and applies the index
	// selection. Negative indices count from the end of the series; a nil
	// selection returns the whole series.
	GetVal(ctx context.Context, path, units string, indices []int) ([]float64, error)

	// ReportsDir is the root folder report files are written under.
	ReportsDir() string

	// Trajectory is the conventional trajectory name variable paths are
	// resolved under.
	Trajectory() string

	// Phases returns the trajectory's phase names in order.
	Phases() []string

	// Subsystems returns the registered subsystem reporters in order.
	Subsystems() []Subsystem
}
