package persona

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINVALID    = "invalid"     // validation failed
	EINTERNAL   = "internal"    // internal error
	ENOTFOUND   = "not_found"   // persona or resource does not exist
	ESEARCH     = "search"      // web search unavailable
	ENOCONTENT  = "no_content"  // search produced no usable candidates
	EALLFAILED  = "all_failed"  // every scrape attempt failed
	ESTORAGE    = "storage"     // knowledge base write failed
	ENOPERSONA  = "no_persona"  // no active persona in the session
	EGENERATION = "generation"  // language model call failed
	EBLOCKED    = "blocked"     // page refused automated access
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the application error code constants.
	Code string

	// Message is a human-readable description safe to show to users.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("persona error: code=%s message=%s", e.Code, e.Message)
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of an error.
// Returns the empty string for nil errors and EINTERNAL for errors that are
// not application errors.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the human-readable message of an error.
// Returns the empty string for nil errors. Non-application errors return
// their own Error() string so infrastructure failures stay readable.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
