// Package errors provides error handling for declgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details that survive wrapping
//
// Generation failures fall into four categories, each with a sentinel:
//
//	ErrLookup              a locator matched zero or several records
//	ErrInvariantViolation  a correction precondition does not hold
//	ErrSchemaViolation     a type string cannot be resolved, or the feed is malformed
//	ErrUnresolvedHeuristic numeric refinement could not classify a member
//
// Wrap the sentinels to add context while keeping errors.Is working:
//
//	return errors.Wrapf(errors.ErrLookup, "property %s.%s", typeName, name)
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Join         = crdb.Join
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// AssertionFailedf reports a programming error inside the generator itself.
var AssertionFailedf = crdb.AssertionFailedf

// Sentinel errors. Every fatal generation failure wraps exactly one of these.
var (
	// ErrLookup indicates a type, member or parameter locator resolved to
	// zero or more than one record.
	ErrLookup = New("lookup failed")

	// ErrInvariantViolation indicates a correction pass found the graph in a
	// state it does not expect (a flag already set, a member already present).
	ErrInvariantViolation = New("invariant violation")

	// ErrSchemaViolation indicates the feed or a declared type string does
	// not conform to the expected schema.
	ErrSchemaViolation = New("schema violation")

	// ErrUnresolvedHeuristic indicates the numeric refinement heuristic could
	// not classify a member and no override exists.
	ErrUnresolvedHeuristic = New("unresolved heuristic")
)

const tableHint = "the correction tables have drifted from the metadata feed; update the entry named above"

// IsLookupError checks if an error is or wraps ErrLookup
func IsLookupError(err error) bool {
	return err != nil && Is(err, ErrLookup)
}

// IsInvariantViolation checks if an error is or wraps ErrInvariantViolation
func IsInvariantViolation(err error) bool {
	return err != nil && Is(err, ErrInvariantViolation)
}

// IsSchemaViolation checks if an error is or wraps ErrSchemaViolation
func IsSchemaViolation(err error) bool {
	return err != nil && Is(err, ErrSchemaViolation)
}

// IsUnresolvedHeuristic checks if an error is or wraps ErrUnresolvedHeuristic
func IsUnresolvedHeuristic(err error) bool {
	return err != nil && Is(err, ErrUnresolvedHeuristic)
}

// NewLookupError creates a lookup error for the given locator.
func NewLookupError(locator string, format string, args ...interface{}) error {
	err := Wrapf(ErrLookup, format, args...)
	err = WithDetailf(err, "locator: %s", locator)
	return WithHint(err, tableHint)
}

// NewInvariantViolation creates an invariant violation for the given locator.
func NewInvariantViolation(locator string, format string, args ...interface{}) error {
	err := Wrapf(ErrInvariantViolation, format, args...)
	err = WithDetailf(err, "locator: %s", locator)
	return WithHint(err, tableHint)
}

// NewSchemaViolation creates a schema violation for the given locator.
func NewSchemaViolation(locator string, format string, args ...interface{}) error {
	err := Wrapf(ErrSchemaViolation, format, args...)
	return WithDetailf(err, "locator: %s", locator)
}

// NewUnresolvedHeuristic creates an unresolved-heuristic error for the given locator.
func NewUnresolvedHeuristic(locator string, format string, args ...interface{}) error {
	err := Wrapf(ErrUnresolvedHeuristic, format, args...)
	err = WithDetailf(err, "locator: %s", locator)
	return WithHint(err, "add the member to the integer or double override table")
}

// Locator returns the locator detail attached to err, or "" when none is present.
func Locator(err error) string {
	const prefix = "locator: "
	for _, d := range GetAllDetails(err) {
		if len(d) > len(prefix) && d[:len(prefix)] == prefix {
			return d[len(prefix):]
		}
	}
	return ""
}
