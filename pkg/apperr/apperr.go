package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure at the process boundary.
type Kind int

const (
	KindCommand Kind = iota
	KindIO
	KindEnv
	KindSerialization
	KindPrompt
	KindNumericParse
	KindDatabase
	KindMigration
	KindDelimited
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindEnv:
		return "env"
	case KindSerialization:
		return "serialization"
	case KindPrompt:
		return "prompt"
	case KindNumericParse:
		return "numeric-parse"
	case KindDatabase:
		return "database"
	case KindMigration:
		return "migration"
	case KindDelimited:
		return "delimited-text"
	default:
		return "command"
	}
}

// Kinded is implemented by errors that know their own Kind.
type Kinded interface {
	Kind() Kind
}

// Error wraps a cause with a Kind and the operation that failed.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// E builds an *Error. A nil cause yields nil.
func E(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf builds an *Error from a formatted message.
func Errorf(kind Kind, op, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of the outermost classified error in the chain.
// Unclassified errors are command errors.
func KindOf(err error) Kind {
	for e := err; e != nil; e = errors.Unwrap(e) {
		switch v := e.(type) {
		case *Error:
			return v.Kind
		case Kinded:
			return v.Kind()
		}
	}
	return KindCommand
}
