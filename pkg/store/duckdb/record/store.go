package record

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chapman178/om-Aviary/pkg/models/store"
	"github.com/chapman178/om-Aviary/pkg/store/duckdb"
)

var (
	// ErrNotFound is returned when a phase/variable pair was never recorded.
	ErrNotFound = errors.New("record not found")
	// ErrWrongKind is returned when a phase value exists but was recorded
	// through time integration and cannot be read as a scalar.
	ErrWrongKind = errors.New("value is not a scalar")
)

// Store reads and writes the solved-case recorder tables. A store is bound
// to a single case; reads never cross cases.
type Store interface {
	AddPhases(ctx context.Context, phases []string) error
	AddSeries(ctx context.Context, points []store.SeriesPoint) error
	AddValues(ctx context.Context, values []store.PhaseValue) error

	Phases(ctx context.Context) ([]string, error)
	// GetSeries returns the recorded samples of one phase time-series
	// variable in index order, along with the recorded unit.
	GetSeries(ctx context.Context, phase, variable string) ([]float64, string, error)
	// GetValue returns a phase-level scalar value and its unit.
	GetValue(ctx context.Context, phase, variable string) (float64, string, error)
}

type caseStore struct {
	db       *sql.DB
	caseName string
}

func NewStore(db *sql.DB, caseName string) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if caseName == "" {
		return nil, fmt.Errorf("case name is required")
	}
	return &caseStore{db: db, caseName: caseName}, nil
}

func (s *caseStore) AddPhases(ctx context.Context, phases []string) error {
	if len(phases) == 0 {
		return nil
	}

	stmt, err := s.prepare(ctx, `INSERT INTO phases (case_name, seq, name) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for seq, name := range phases {
		if _, err := stmt.ExecContext(ctx, s.caseName, seq, name); err != nil {
			return fmt.Errorf("insert phase %q: %w", name, err)
		}
	}
	return nil
}

func (s *caseStore) AddSeries(ctx context.Context, points []store.SeriesPoint) error {
	if len(points) == 0 {
		return nil
	}

	stmt, err := s.prepare(ctx, `
		INSERT INTO timeseries (case_name, phase, variable, idx, value, unit)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, p := range points {
		if _, err := stmt.ExecContext(ctx, s.caseName, p.Phase, p.Variable, p.Index, p.Value, p.Unit); err != nil {
			return fmt.Errorf("insert series point %s.%s[%d]: %w", p.Phase, p.Variable, p.Index, err)
		}
	}
	return nil
}

func (s *caseStore) AddValues(ctx context.Context, values []store.PhaseValue) error {
	if len(values) == 0 {
		return nil
	}

	stmt, err := s.prepare(ctx, `
		INSERT INTO phase_values (case_name, phase, variable, value, unit, kind)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, v := range values {
		kind := v.Kind
		if kind == "" {
			kind = store.KindScalar
		}
		if _, err := stmt.ExecContext(ctx, s.caseName, v.Phase, v.Variable, v.Value, v.Unit, string(kind)); err != nil {
			return fmt.Errorf("insert phase value %s.%s: %w", v.Phase, v.Variable, err)
		}
	}
	return nil
}

func (s *caseStore) Phases(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM phases WHERE case_name = ? ORDER BY seq`, s.caseName)
	if err != nil {
		return nil, fmt.Errorf("query phases: %w", err)
	}
	defer rows.Close()

	var phases []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		phases = append(phases, name)
	}
	return phases, rows.Err()
}

func (s *caseStore) GetSeries(ctx context.Context, phase, variable string) ([]float64, string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT value, unit FROM timeseries
		WHERE case_name = ? AND phase = ? AND variable = ?
		ORDER BY idx`, s.caseName, phase, variable)
	if err != nil {
		return nil, "", fmt.Errorf("query timeseries %s.%s: %w", phase, variable, err)
	}
	defer rows.Close()

	var (
		vals []float64
		unit string
	)
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v, &unit); err != nil {
			return nil, "", err
		}
		vals = append(vals, v)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}
	if len(vals) == 0 {
		return nil, "", fmt.Errorf("timeseries %s.%s: %w", phase, variable, ErrNotFound)
	}
	return vals, unit, nil
}

func (s *caseStore) GetValue(ctx context.Context, phase, variable string) (float64, string, error) {
	var (
		value float64
		unit  string
		kind  string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT value, unit, kind FROM phase_values
		WHERE case_name = ? AND phase = ? AND variable = ?`,
		s.caseName, phase, variable).Scan(&value, &unit, &kind)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, "", fmt.Errorf("phase value %s.%s: %w", phase, variable, ErrNotFound)
	}
	if err != nil {
		return 0, "", fmt.Errorf("query phase value %s.%s: %w", phase, variable, err)
	}
	if store.ValueKind(kind) == store.KindIntegrated {
		return 0, "", fmt.Errorf("phase value %s.%s: %w", phase, variable, ErrWrongKind)
	}
	return value, unit, nil
}

func (s *caseStore) prepare(ctx context.Context, query string) (*sql.Stmt, error) {
	if tx := duckdb.GetTransaction(ctx); tx != nil {
		return tx.PrepareContext(ctx, query)
	}
	return s.db.PrepareContext(ctx, query)
}
