package domain

// PhaseSummary holds the per-phase report table for one mission segment.
// Phases carry no identity beyond their name and their position in the
// trajectory's ordered sequence.
type PhaseSummary struct {
	Phase  string
	Values NamedValues
}
