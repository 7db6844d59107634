// Package errors defines clemen's coded errors.
//
// Every failure a caller can act on carries a [Code]. Codes fall into a
// few classes that the CLI maps to exit statuses and the preview server
// maps to HTTP statuses:
//
//	invalid      INVALID_INPUT, INVALID_FORMAT, INVALID_SCENE,
//	             INVALID_OPERATION, OUT_OF_RANGE
//	not found    NOT_FOUND, FILE_NOT_FOUND, SCENE_NOT_FOUND
//	unsupported  UNSUPPORTED
//	internal     INTERNAL_ERROR and uncoded errors
//
// Create errors with [New] or [Wrap] and test them with [Is]:
//
//	err := errors.New(errors.ErrCodeInvalidOperation, "cannot resize a %s layout", variant)
//	if errors.Is(err, errors.ErrCodeInvalidOperation) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidScene     Code = "INVALID_SCENE"
	ErrCodeInvalidOperation Code = "INVALID_OPERATION"
	ErrCodeOutOfRange       Code = "OUT_OF_RANGE"

	ErrCodeNotFound      Code = "NOT_FOUND"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"
	ErrCodeSceneNotFound Code = "SCENE_NOT_FOUND"

	ErrCodeUnsupported Code = "UNSUPPORTED"
	ErrCodeInternal    Code = "INTERNAL_ERROR"
)

// Class groups codes by who has to act on them.
type Class int

const (
	ClassInternal Class = iota
	ClassInvalid
	ClassNotFound
	ClassUnsupported
)

var classes = map[Code]Class{
	ErrCodeInvalidInput:     ClassInvalid,
	ErrCodeInvalidFormat:    ClassInvalid,
	ErrCodeInvalidScene:     ClassInvalid,
	ErrCodeInvalidOperation: ClassInvalid,
	ErrCodeOutOfRange:       ClassInvalid,
	ErrCodeNotFound:         ClassNotFound,
	ErrCodeFileNotFound:     ClassNotFound,
	ErrCodeSceneNotFound:    ClassNotFound,
	ErrCodeUnsupported:      ClassUnsupported,
}

// Class returns the class of c. Unknown codes are internal.
func (c Code) Class() Class { return classes[c] }

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an error with code and a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// if there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether the outermost code in err's chain is code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// ClassOf returns the class of err's outermost code.
func ClassOf(err error) Class { return GetCode(err).Class() }

// IsNotFound reports whether err names something that does not exist.
func IsNotFound(err error) bool { return ClassOf(err) == ClassNotFound }

// IsInvalid reports whether err is a caller mistake: bad input or a
// precondition violation such as resizing a block layout.
func IsInvalid(err error) bool { return ClassOf(err) == ClassInvalid }

// UserMessage returns err's message without the code prefix.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ExitStatus maps err to a process exit status: 0 for nil, 2 for invalid
// input, 3 for something missing, 4 for an unsupported request and 1
// otherwise.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	switch ClassOf(err) {
	case ClassInvalid:
		return 2
	case ClassNotFound:
		return 3
	case ClassUnsupported:
		return 4
	default:
		return 1
	}
}
