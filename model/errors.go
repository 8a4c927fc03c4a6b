package model

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration indicates infeasible generation or load parameters
	ErrConfiguration = errors.New("invalid configuration")

	// ErrConstraintViolation indicates a row that breaks a schema or dataset invariant
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrEmptyPool indicates a sampling step without eligible candidates
	ErrEmptyPool = errors.New("empty sampling pool")

	// ErrIO indicates a file or database I/O failure
	ErrIO = errors.New("i/o failure")
)

// ConfigurationError names the offending configuration field
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Field, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// ConstraintViolationError identifies the table and row that broke a rule
type ConstraintViolationError struct {
	Entity  string
	ID      int
	Rule    string
	Message string
	Err     error
}

func (e *ConstraintViolationError) Error() string {
	msg := fmt.Sprintf("constraint violation in %s row %d", e.Entity, e.ID)
	if e.Rule != "" {
		msg += " (" + e.Rule + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConstraintViolationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrConstraintViolation, e.Err}
	}
	return []error{ErrConstraintViolation}
}

// EmptyPoolError names the stage that had nothing to sample from
type EmptyPoolError struct {
	Stage string
	Pool  string
}

func (e *EmptyPoolError) Error() string {
	return fmt.Sprintf("empty pool during %s: %s", e.Stage, e.Pool)
}

func (e *EmptyPoolError) Unwrap() error {
	return ErrEmptyPool
}

// IOError wraps file and database failures
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("i/o error during %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("i/o error during %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrIO, e.Err}
	}
	return []error{ErrIO}
}
