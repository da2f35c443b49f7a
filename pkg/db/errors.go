package db

import "github.com/japaniel/abfrag/pkg/apperr"

// StorageError is returned by every storage operation.
type StorageError struct {
	Op        string
	Migration bool
	Err       error
}

func (e *StorageError) Error() string { return "storage: " + e.Op + ": " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Kind() apperr.Kind {
	if e.Migration {
		return apperr.KindMigration
	}
	return apperr.KindDatabase
}
