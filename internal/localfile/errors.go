package localfile

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks configuration that can never produce a valid
	// DataLocation. Construction errors wrap it.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIllegalState marks a listing that found the filesystem no longer
	// matches what was validated at construction time.
	ErrIllegalState = errors.New("illegal state")
)

// ErrorType classifies who is responsible for an error.
type ErrorType string

const (
	ErrorTypeUser     ErrorType = "USER_ERROR"
	ErrorTypeInternal ErrorType = "INTERNAL_ERROR"
	ErrorTypeExternal ErrorType = "EXTERNAL"
)

// ErrorCode identifies a connector-level error kind.
type ErrorCode struct {
	Name string
	Code int
	Type ErrorType
}

func (c ErrorCode) String() string {
	return fmt.Sprintf("%s(%d)", c.Name, c.Code)
}

// LocalFileErrorCode tags failures reading local files and directories.
var LocalFileErrorCode = ErrorCode{Name: "LOCAL_FILE_ERROR", Code: 0x0500_0000, Type: ErrorTypeExternal}

// Error is a connector-tagged error. Callers classify it with errors.As.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func newError(code ErrorCode, err error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code.Name, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code.Name, e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func illegalState(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalState, fmt.Sprintf(format, args...))
}
