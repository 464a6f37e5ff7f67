package domain

import (
	"errors"
	"fmt"
)

// Line level validation failures. Messages are user facing and end up verbatim in parse results.
var (
	ErrInvalidDateFormat   = errors.New("Invalid date format")
	ErrUnknownEventType    = errors.New("Unknown event type")
	ErrMatchNotStarted     = errors.New("Match not started")
	ErrMatchAlreadyStarted = fmt.Errorf("Match already started before processing event '%s'", KindMatchStart)
	ErrMatchAlreadyEnded   = errors.New("Match has already ended")
	ErrMatchIDMismatch     = errors.New("Match ID mismatch")
)

var (
	ErrEntityNotFound      = errors.New("entity not found")
	ErrEntityAlreadyExists = errors.New("entity already exists")
)

type MatchNotStartedError struct {
	Kind EventKind
}

func (e *MatchNotStartedError) Error() string {
	return fmt.Sprintf("Match not started before processing event '%s'", e.Kind)
}

func (e *MatchNotStartedError) Is(target error) bool {
	return target == ErrMatchNotStarted
}

type MatchIDMismatchError struct {
	Expected string
	Actual   string
}

func (e *MatchIDMismatchError) Error() string {
	return fmt.Sprintf("Match ID mismatch: %s !== %s", e.Expected, e.Actual)
}

func (e *MatchIDMismatchError) Is(target error) bool {
	return target == ErrMatchIDMismatch
}

type EntityNotFoundError struct {
	Entity string
	ID     string
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}

func (e *EntityNotFoundError) Is(target error) bool {
	return target == ErrEntityNotFound
}

type EntityAlreadyExistsError struct {
	Entity string
	ID     string
}

func (e *EntityAlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with id %s already exists", e.Entity, e.ID)
}

func (e *EntityAlreadyExistsError) Is(target error) bool {
	return target == ErrEntityAlreadyExists
}
