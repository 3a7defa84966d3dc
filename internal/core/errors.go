package core

// errors.go defines the single error taxonomy the engine reports through.
//
// Every rejection surfaces as one *ValidationError carrying a Kind, a
// human-readable message, and whatever diagnostic context applies:
//
//   - KindConfig:    unknown partner, unknown file key, unusable contract
//   - KindFormat:    file extension does not match the contract
//   - KindStructure: empty file, or header differs from the contract
//   - KindRowType:   a sampled data row violates a column's type rule
//
// The engine is fail-fast: the first violation aborts the call and no
// further rows are scanned. I/O failures (open, read) are not part of the
// taxonomy and propagate as plain wrapped errors.

import (
	"fmt"
	"strings"
)

// Kind classifies a validation failure.
type Kind int

const (
	KindConfig Kind = iota
	KindFormat
	KindStructure
	KindRowType
)

// String returns a short machine-friendly name for the kind.
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindFormat:
		return "format"
	case KindStructure:
		return "structure"
	case KindRowType:
		return "row_type"
	default:
		return "unknown"
	}
}

// ValidationError is the single error type for every contract violation.
type ValidationError struct {
	Kind    Kind
	Message string

	// Row is the 1-based data-row index for KindRowType failures, 0 otherwise.
	Row int
	// Column is the offending column for KindRowType failures.
	Column string

	// Expected and Actual carry both header sequences for mismatch diagnostics.
	Expected []string
	Actual   []string

	cause error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.Row > 0 {
		fmt.Fprintf(&b, "row %d", e.Row)
		if e.Column != "" {
			fmt.Fprintf(&b, ", column %q", e.Column)
		}
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if len(e.Expected) > 0 || len(e.Actual) > 0 {
		fmt.Fprintf(&b, "\nexpected: %v\nreceived: %v", e.Expected, e.Actual)
	}
	return b.String()
}

// Unwrap exposes the underlying cause, if any, for errors.Is / errors.As.
func (e *ValidationError) Unwrap() error {
	return e.cause
}

func configErr(cause error) *ValidationError {
	return &ValidationError{Kind: KindConfig, Message: cause.Error(), cause: cause}
}

func formatErr(format string, args ...any) *ValidationError {
	return &ValidationError{Kind: KindFormat, Message: fmt.Sprintf(format, args...)}
}

func structureErr(format string, args ...any) *ValidationError {
	return &ValidationError{Kind: KindStructure, Message: fmt.Sprintf(format, args...)}
}

func rowTypeErr(row int, column string, cause error) *ValidationError {
	return &ValidationError{
		Kind:    KindRowType,
		Message: cause.Error(),
		Row:     row,
		Column:  column,
		cause:   cause,
	}
}
