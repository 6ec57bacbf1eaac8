package files

import (
	"context"
	"io/fs"

	"github.com/pkg/errors"
)

// ErrorKind classifies adapter failures. The navigator never sees it, it is
// only used for logging at the adapter boundary.
type ErrorKind int

const (
	Unknown ErrorKind = iota
	NotFound
	PermissionDenied
	AlreadyExists
	InvalidInput
	Unavailable
)

var kindNames = map[ErrorKind]string{
	Unknown:          "unknown",
	NotFound:         "not_found",
	PermissionDenied: "permission_denied",
	AlreadyExists:    "already_exists",
	InvalidInput:     "invalid_input",
	Unavailable:      "unavailable",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[Unknown]
}

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnavailable  = errors.New("unavailable")
	ErrNotDirectory = errors.New("not a directory")
	ErrAtRoot       = errors.New("already at filesystem root")
)

// Classify maps err onto the adapter error taxonomy.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return Unknown
	case errors.Is(err, ErrInvalidInput):
		return InvalidInput
	case errors.Is(err, ErrNotDirectory), errors.Is(err, ErrAtRoot), errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	case errors.Is(err, fs.ErrExist):
		return AlreadyExists
	case errors.Is(err, ErrUnavailable),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return Unavailable
	default:
		return Unknown
	}
}
