package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownActivity indicates a package code outside SWM, RUN and WLK.
	ErrUnknownActivity = errors.New("unknown activity code")

	// ErrArityMismatch indicates a package with the wrong number of values.
	ErrArityMismatch = errors.New("arity mismatch")

	// ErrUnimplemented indicates a calculation the variant does not provide.
	ErrUnimplemented = errors.New("unimplemented operation")

	// ErrInvalidDuration indicates a duration that is not strictly positive.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInvalidValue indicates a package value that cannot be used as given.
	ErrInvalidValue = errors.New("invalid value")
)

type UnknownActivityError struct {
	Code string
}

func (e *UnknownActivityError) Error() string {
	return fmt.Sprintf("%s %q (expected one of SWM, RUN, WLK)", ErrUnknownActivity, e.Code)
}

func (e *UnknownActivityError) Unwrap() error { return ErrUnknownActivity }

type ArityMismatchError struct {
	Code ActivityCode
	Want int
	Got  int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%s: %s expects %d values, got %d", ErrArityMismatch, e.Code, e.Want, e.Got)
}

func (e *ArityMismatchError) Unwrap() error { return ErrArityMismatch }

type UnimplementedOperationError struct {
	Op string
}

func (e *UnimplementedOperationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnimplemented, e.Op)
}

func (e *UnimplementedOperationError) Unwrap() error { return ErrUnimplemented }

type InvalidDurationError struct {
	Hours float64
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("%s: %v h (must be > 0)", ErrInvalidDuration, e.Hours)
}

func (e *InvalidDurationError) Unwrap() error { return ErrInvalidDuration }

type InvalidValueError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: %s=%v %s", ErrInvalidValue, e.Field, e.Value, e.Reason)
}

func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }
