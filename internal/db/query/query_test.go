package query_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/FuturFusion/security-manager/internal/db/query"
	"github.com/FuturFusion/security-manager/internal/testing/boom"
)

func newDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	_, err = db.Exec(`
CREATE TABLE droit (dro_code TEXT PRIMARY KEY, tdr_code TEXT NOT NULL);
INSERT INTO droit VALUES ('CREATE', 'WRITE'), ('READ', 'READ'), ('UPDATE', 'WRITE');
`)
	require.NoError(t, err)

	return db
}

func TestCount(t *testing.T) {
	tests := []struct {
		name  string
		table string
		where string
		args  []any

		assertErr require.ErrorAssertionFunc
		want      int
	}{
		{
			name:  "success - all rows",
			table: "droit",

			assertErr: require.NoError,
			want:      3,
		},
		{
			name:  "success - with where clause",
			table: "droit",
			where: "tdr_code = ?",
			args:  []any{"WRITE"},

			assertErr: require.NoError,
			want:      2,
		},
		{
			name:  "error - unknown table",
			table: "unknown",

			assertErr: require.Error,
			want:      -1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db := newDB(t)

			var count int
			err := query.Transaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
				var err error
				count, err = query.Count(ctx, tx, tc.table, tc.where, tc.args...)
				return err
			})

			tc.assertErr(t, err)
			require.Equal(t, tc.want, count)
		})
	}
}

func TestSelect(t *testing.T) {
	db := newDB(t)

	err := query.Transaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		codes, err := query.SelectStrings(ctx, tx, "SELECT dro_code FROM droit WHERE tdr_code = ? ORDER BY dro_code", "WRITE")
		require.NoError(t, err)
		require.Equal(t, []string{"CREATE", "UPDATE"}, codes)

		lengths, err := query.SelectIntegers(ctx, tx, "SELECT length(dro_code) FROM droit ORDER BY dro_code")
		require.NoError(t, err)
		require.Equal(t, []int{6, 4, 6}, lengths)

		return nil
	})
	require.NoError(t, err)
}

func TestTransaction_rollback(t *testing.T) {
	db := newDB(t)

	err := query.Transaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "DELETE FROM droit")
		require.NoError(t, err)

		return boom.Error
	})
	boom.ErrorIs(t, err)

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM droit").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 3, count)
}
