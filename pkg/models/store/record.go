package store

// ValueKind distinguishes how a phase-level value was recorded.
type ValueKind string

const (
	// KindScalar values were recorded directly as a phase output.
	KindScalar ValueKind = "scalar"
	// KindIntegrated values were tracked through time integration and have
	// no directly readable scalar form.
	KindIntegrated ValueKind = "integrated"
)

// SeriesPoint is one recorded sample of a phase time-series variable.
type SeriesPoint struct {
	Phase    string
	Variable string
	Index    int
	Value    float64
	Unit     string
}

// PhaseValue is a phase-level (non-time-series) recorded value.
type PhaseValue struct {
	Phase    string
	Variable string
	Value    float64
	Unit     string
	Kind     ValueKind
}
