package errors

import stderrors "errors"

// Error is a coded failure. Message and Cause describe it for developers;
// Code and Metadata select and fill the localized user message.
type Error struct {
	Code     Code
	Message  string
	Metadata map[string]string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Code == t.Code
}

// WithMetadata returns an error whose user message is filled from metadata.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return WrapWithMetadata(code, message, metadata, nil)
}

// WrapWithMetadata returns an error with both metadata and a cause.
func WrapWithMetadata(code Code, message string, metadata map[string]string, cause error) *Error {
	return &Error{Code: code, Message: message, Metadata: metadata, Cause: cause}
}

// GetCode returns the code of the first *Error in err's chain, or
// CodeUnknown.
func GetCode(err error) Code {
	var domainErr *Error
	if !stderrors.As(err, &domainErr) {
		return CodeUnknown
	}
	return domainErr.Code
}

// IsCode reports whether err carries code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}

// IsFatal reports whether err should end a run. Uncoded errors are fatal.
func IsFatal(err error) bool {
	return err != nil && GetCode(err).Fatal()
}
