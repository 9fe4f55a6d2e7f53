package importer

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyRoomLabel   = errors.New("room label is empty")
	ErrInvalidFloor     = errors.New("floor designator is not a digit")
	ErrInvalidBatchSize = errors.New("batch size must be positive")
)

// RoomLabelError reports a room label that cannot be split into floor and number.
type RoomLabelError struct {
	Label string
	Err   error
}

func (e *RoomLabelError) Error() string {
	return fmt.Sprintf("invalid room label %q: %v", e.Label, e.Err)
}

func (e *RoomLabelError) Unwrap() error {
	return e.Err
}

// MissingColumnError reports a row without a value for a required column.
type MissingColumnError struct {
	Line   int
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("line %d: missing column %q", e.Line, e.Column)
}

// FieldError reports a required numeric field that failed to convert.
type FieldError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("line %d: invalid %s value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
