package db

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	"github.com/japaniel/abfrag/pkg/apperr"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

const driverName = "sqlite3"

// EnsureReady opens the database at path, creating the parent directory and
// an empty database file on first run, and applies pending migrations.
func EnsureReady(ctx context.Context, path string) (*Store, error) {
	conn, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, conn.DB); err != nil {
		conn.Close()
		return nil, err
	}
	return NewStore(conn), nil
}

// Open connects to an existing database file. If the file is missing it is
// created empty and the connection retried once; every other failure is
// returned as is.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, apperr.E(apperr.KindIO, "create state directory", err)
	}

	conn, err := connect(ctx, path)
	if err != nil && isMissingFile(err, path) {
		slog.Info("database file not found, creating", "path", path)
		f, cerr := os.Create(path)
		if cerr != nil {
			return nil, apperr.E(apperr.KindIO, "create database file", cerr)
		}
		if cerr := f.Close(); cerr != nil {
			return nil, apperr.E(apperr.KindIO, "create database file", cerr)
		}
		conn, err = connect(ctx, path)
	}
	if err != nil {
		return nil, &StorageError{Op: "open " + path, Err: err}
	}
	slog.Debug("database opened", "path", path)
	return conn, nil
}

func connect(ctx context.Context, path string) (*sqlx.DB, error) {
	// mode=rw stops sqlite from creating the file itself.
	conn, err := sqlx.Open(driverName, dsn(path))
	if err != nil {
		return nil, err
	}
	// One connection: the tool is single-user and sequential.
	conn.SetMaxOpenConns(1)
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// dsn builds the sqlite URI for path. '?', '#' and '%' in the path are
// escaped so the URI parser sees the whole path.
func dsn(path string) string {
	return "file:" + (&url.URL{Path: path}).EscapedPath() + "?mode=rw&_busy_timeout=5000"
}

func isMissingFile(err error, path string) bool {
	var se sqlite3.Error
	if !errors.As(err, &se) || se.Code != sqlite3.ErrCantOpen {
		return false
	}
	_, statErr := os.Stat(path)
	return errors.Is(statErr, os.ErrNotExist)
}
