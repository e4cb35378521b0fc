package record

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sqlmock covers the failure paths an in-memory database cannot produce.

func TestCaseStore_QueryFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("phases query error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		s, err := NewStore(db, "test-case")
		require.NoError(t, err)

		mock.ExpectQuery("SELECT name FROM phases").WillReturnError(fmt.Errorf("disk I/O error"))

		_, err = s.Phases(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk I/O error")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("series query error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		s, err := NewStore(db, "test-case")
		require.NoError(t, err)

		mock.ExpectQuery("SELECT value, unit FROM timeseries").WillReturnError(fmt.Errorf("disk I/O error"))

		_, _, err = s.GetSeries(ctx, "climb", "mass")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty series result is ErrNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		s, err := NewStore(db, "test-case")
		require.NoError(t, err)

		mock.ExpectQuery("SELECT value, unit FROM timeseries").
			WillReturnRows(sqlmock.NewRows([]string{"value", "unit"}))

		_, _, err = s.GetSeries(ctx, "climb", "mass")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("prepare error on insert", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		s, err := NewStore(db, "test-case")
		require.NoError(t, err)

		mock.ExpectPrepare("INSERT INTO phases").WillReturnError(fmt.Errorf("table is locked"))

		err = s.AddPhases(ctx, []string{"climb"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "table is locked")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
