package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const PhasesSchema = `
	CREATE TABLE IF NOT EXISTS phases (
		case_name VARCHAR NOT NULL,
		seq INTEGER NOT NULL,
		name VARCHAR NOT NULL,
		PRIMARY KEY (case_name, seq)
	);
`

const TimeseriesSchema = `
	CREATE TABLE IF NOT EXISTS timeseries (
		case_name VARCHAR NOT NULL,
		phase VARCHAR NOT NULL,
		variable VARCHAR NOT NULL,
		idx INTEGER NOT NULL,
		value DOUBLE NOT NULL,
		unit VARCHAR NOT NULL,
		PRIMARY KEY (case_name, phase, variable, idx)
	);
`

const PhaseValuesSchema = `
	CREATE TABLE IF NOT EXISTS phase_values (
		case_name VARCHAR NOT NULL,
		phase VARCHAR NOT NULL,
		variable VARCHAR NOT NULL,
		value DOUBLE NOT NULL,
		unit VARCHAR NOT NULL,
		kind VARCHAR NOT NULL DEFAULT 'scalar',
		PRIMARY KEY (case_name, phase, variable)
	);
`

var bootQueries = []string{
	PhasesSchema,
	TimeseriesSchema,
	PhaseValuesSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens (creating if needed) a solved-case database and installs the
// recorder schema.
func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
