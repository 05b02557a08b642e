//go:build linux && cgo

package db

import (
	"context"
	"database/sql"
	"log/slog"
	"path/filepath"

	"github.com/FuturFusion/security-manager/internal/db/sqlite"
	"github.com/FuturFusion/security-manager/internal/util"
)

// Node represents access to the local database.
type Node struct {
	DB  *sql.DB // Handle to the local SQLite database file.
	dir string  // Reference to the directory where the database file lives.
}

// OpenDatabase creates a new DB object.
//
// Return the newly created DB object.
func OpenDatabase(dir string) (*Node, error) {
	db, err := sqlite.Open(dir)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	_, err = EnsureSchema(db, dir)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	node := &Node{
		DB:  db,
		dir: dir,
	}

	return node, nil
}

// Dir returns the directory the database file lives in.
func (n *Node) Dir() string {
	return n.dir
}

// Close the database facade.
func (n *Node) Close() error {
	return n.DB.Close()
}

// EnsureSchema applies all relevant schema updates to the local database.
//
// Return the initial schema version found before starting the update, along
// with any error occurred.
func EnsureSchema(db *sql.DB, dir string) (int, error) {
	backupDone := false

	schema := Schema()
	schema.File(filepath.Join(dir, "patch.local.sql")) // Optional custom queries
	schema.Hook(func(ctx context.Context, version int, tx *sql.Tx) error {
		if !backupDone {
			path := filepath.Join(dir, "local.db")
			slog.Info("Updating the database schema", slog.String("backup", path+".bak"))
			err := util.FileCopy(path, path+".bak")
			if err != nil {
				return err
			}

			backupDone = true
		}

		if version == -1 {
			slog.Debug("Running pre-update queries from file for local DB schema")
		} else {
			slog.Debug("Updating DB schema", slog.Int("from", version), slog.Int("to", version+1))
		}

		return nil
	})

	return schema.Ensure(db)
}
