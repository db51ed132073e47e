package cnp

import (
	"errors"
	"fmt"
)

var (
	ErrLibraryNotFound     = errors.New("CANape API not found, add the CANape API location to PATH")
	ErrUnsupportedPlatform = errors.New("the CANape API is only available on windows")
	ErrClosed              = errors.New("CANape API library is closed")
)

func (e ErrorCode) Error() string {
	return e.String()
}

func (e ErrorCode) String() string {
	if s, ok := errorCodeNames[e]; ok {
		return s
	}
	return fmt.Sprintf("ErrorCode(%d)", uint16(e))
}

// Text is the description of the code from the API header.
func (e ErrorCode) Text() string {
	return errorCodeTexts[e]
}

// Error is returned when a native function reports failure.
type Error struct {
	Code ErrorCode
	Func string
	Text string // as returned by Asap3ErrorText, may be empty
}

func (e *Error) Error() string {
	text := e.Text
	if text == "" {
		text = e.Code.Text()
	}
	return fmt.Sprintf("%s failed (%s: %s)", e.Func, e.Code, text)
}

func (e *Error) Unwrap() error {
	return e.Code
}

// NewError builds an *Error from a code, filling Text from the header
// description.
func NewError(fn string, code ErrorCode) *Error {
	return &Error{Code: code, Func: fn, Text: code.Text()}
}

// Code extracts the ErrorCode carried by err, if any.
func Code(err error) (ErrorCode, bool) {
	var code ErrorCode
	if errors.As(err, &code) {
		return code, true
	}
	return 0, false
}

// NotImplementedError is returned when the loaded DLL does not export a
// function.
type NotImplementedError struct {
	Func    string
	Version Version
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("the function %q was not found in CANape DLL version %s", e.Func, e.Version)
}
