// Package errors provides error handling for the dataset builder.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrMissingInput) {
//	    // abort the run
//	}
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
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// GetStack is an alias for GetReportableStackTrace for convenience.
var GetStack = crdb.GetReportableStackTrace

// Sentinel errors for the build pipeline's failure taxonomy.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrDocumentParse indicates a single corpus document failed to parse.
	// Recovered locally: the document is excluded and the batch continues.
	ErrDocumentParse = New("document parse error")

	// ErrSchemaConversion indicates a normalized batch does not fit its
	// declared columnar schema. Recovered per (category, format) by falling
	// back to a best-effort write, with a warning.
	ErrSchemaConversion = New("schema conversion error")

	// ErrMissingInput indicates a required input directory or auxiliary
	// file is absent. Fatal: aborts the run before any output is written.
	ErrMissingInput = New("missing input")

	// ErrUsage indicates an invalid command invocation, such as an unknown
	// format token. Fatal, detected before touching the filesystem.
	ErrUsage = New("usage error")
)

// IsMissingInput checks if an error is or wraps ErrMissingInput
func IsMissingInput(err error) bool {
	return err != nil && Is(err, ErrMissingInput)
}

// IsUsage checks if an error is or wraps ErrUsage
func IsUsage(err error) bool {
	return err != nil && Is(err, ErrUsage)
}

// IsSchemaConversion checks if an error is or wraps ErrSchemaConversion
func IsSchemaConversion(err error) bool {
	return err != nil && Is(err, ErrSchemaConversion)
}

// NewUsageError creates a usage error with a formatted message
func NewUsageError(format string, args ...interface{}) error {
	return Wrap(ErrUsage, Newf(format, args...).Error())
}

// NewMissingInputError creates a missing-input error with a formatted message
func NewMissingInputError(format string, args ...interface{}) error {
	return Wrap(ErrMissingInput, Newf(format, args...).Error())
}
