package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy. Every failure in the core wraps exactly one of these
// sentinels so callers (and the HTTP layer) can classify without string
// matching.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrBusinessRule = errors.New("business rule violation")
)

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, prepend(ErrNotFound, args)...)
}

func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, prepend(ErrConflict, args)...)
}

func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, prepend(ErrInvalidInput, args)...)
}

func BusinessRulef(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, prepend(ErrBusinessRule, args)...)
}

func prepend(err error, args []any) []any {
	return append([]any{err}, args...)
}
