// Package errors provides coded errors whose user-facing text comes from the
// message catalog.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Invocation errors
	CodeInvalidArguments Code = "INVALID_ARGUMENTS"

	// Source errors
	CodeDirectoryNotFound Code = "DIRECTORY_NOT_FOUND"
	CodeNoMatchingFiles   Code = "NO_MATCHING_FILES"
	CodeIconParseFailure  Code = "ICON_PARSE_FAILURE"

	// Output errors
	CodeNoIconsConverted  Code = "NO_ICONS_CONVERTED"
	CodeOutputWriteFailed Code = "OUTPUT_WRITE_FAILED"
)

// Codes lists every code that needs a user-facing message.
var Codes = []Code{
	CodeInvalidArguments,
	CodeDirectoryNotFound,
	CodeNoMatchingFiles,
	CodeIconParseFailure,
	CodeNoIconsConverted,
	CodeOutputWriteFailed,
}

// Fatal reports whether an error with this code ends the run. Icon parse
// failures only skip the offending file.
func (c Code) Fatal() bool {
	return c != CodeIconParseFailure
}
