package services

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalid      = errors.New("invalid")
	ErrUnauthorized = errors.New("unauthorized")
	ErrPersistence  = errors.New("persistence failure")
)

// Error is a business error naming the offending entity and key.
type Error struct {
	Kind   error
	Entity string
	Key    string
	Err    error
	msg    string
}

func (e *Error) Error() string {
	if e.msg != "" {
		return e.msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Entity, e.Key, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Entity, e.Key, e.Kind)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func notFound(entity, key string) *Error {
	return &Error{Kind: ErrNotFound, Entity: entity, Key: key, msg: fmt.Sprintf("%s %s not exist", entity, key)}
}

func conflict(entity, key string) *Error {
	return &Error{Kind: ErrConflict, Entity: entity, Key: key, msg: fmt.Sprintf("%s %s already exist", entity, key)}
}

func conflictf(entity, key, format string, args ...any) *Error {
	return &Error{Kind: ErrConflict, Entity: entity, Key: key, msg: fmt.Sprintf(format, args...)}
}

func invalidf(entity, key, format string, args ...any) *Error {
	return &Error{Kind: ErrInvalid, Entity: entity, Key: key, msg: fmt.Sprintf(format, args...)}
}

func persistence(entity, key string, err error) *Error {
	return &Error{Kind: ErrPersistence, Entity: entity, Key: key, Err: err}
}
