package checkarg

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Code classifies the outcome of a parse.
type Code int

const (
	Ok Code = iota
	Err
	InvalidOption
	InvalidValue
	MissingValue
	CallbackFailed
)

// String returns the human readable description of the code.
func (c Code) String() string {
	switch c {
	case Ok:
		return "Everything is fine"
	case Err:
		return "An error occurred"
	case InvalidOption:
		return "Unknown command line option"
	case InvalidValue:
		return "Value given to non-value option"
	case MissingValue:
		return "Missing value of option"
	case CallbackFailed:
		return "Callback returned with error code"
	default:
		return fmt.Sprintf("unknown code %d", int(c))
	}
}

// ExitCode returns the process exit status for the code.
func (c Code) ExitCode() int {
	return int(c)
}

// Error is returned by Parse. Arg names the offending token, option or
// short option rune.
type Error struct {
	Code Code
	Arg  string
	Err  error
}

var (
	ErrInvalidOption  = &Error{Code: InvalidOption}
	ErrInvalidValue   = &Error{Code: InvalidValue}
	ErrMissingValue   = &Error{Code: MissingValue}
	ErrCallbackFailed = &Error{Code: CallbackFailed}
)

func (e *Error) Error() string {
	msg := e.Code.String()
	if e.Arg != "" {
		msg += ": " + e.Arg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code, so the
// package sentinels can be used with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// ExitCode implements the exit coder convention used by command runners.
func (e *Error) ExitCode() int {
	return e.Code.ExitCode()
}

// CodeOf returns the Code carried by err. A nil error is Ok, errors that
// did not come from Parse are Err.
func CodeOf(err error) Code {
	if err == nil {
		return Ok
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Err
}

var errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()

// report writes a diagnostic for code to w and returns the matching error.
func report(w io.Writer, code Code, arg string) *Error {
	if w != nil {
		fmt.Fprintf(w, "%s %s: %s\n", errorLabel("Error:"), code, arg)
	}
	return &Error{Code: code, Arg: arg}
}
