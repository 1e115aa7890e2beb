package notify

import (
	"fmt"
	"sort"
	"strings"
)

// Code classifies an error record.
type Code int

const (
	// CodeError is the generic category for failures with no better fit.
	CodeError Code = iota
	// CodeIOError covers failures of file system and device operations.
	CodeIOError
)

func (c Code) String() string {
	switch c {
	case CodeIOError:
		return "io error"
	default:
		return "error"
	}
}

// Error is a structured error record.
//
// SystemCode carries the raw OS error number when the failure originated in
// a system call, and zero otherwise. Infos carries contextual metadata;
// file operations always set "Path".
type Error struct {
	Code       Code
	SystemCode int
	Message    string
	Infos      map[string]string

	cause error
}

// NewError creates a record with no associated OS error code.
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewSystemError creates a record from a failed system call. The message is
// derived from err, and err remains reachable through Unwrap.
func NewSystemError(code Code, sysCode int, err error) *Error {
	return &Error{
		Code:       code,
		SystemCode: sysCode,
		Message:    err.Error(),
		cause:      err,
	}
}

// WithInfo attaches a metadata key/value pair and returns the record.
func (e *Error) WithInfo(key, value string) *Error {
	if e.Infos == nil {
		e.Infos = make(map[string]string, 1)
	}
	e.Infos[key] = value
	return e
}

// Path returns the "Path" metadata value, if any.
func (e *Error) Path() string {
	return e.Infos["Path"]
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Code.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.SystemCode != 0 {
		fmt.Fprintf(&b, " (os code %d)", e.SystemCode)
	}
	if len(e.Infos) > 0 {
		keys := make([]string, 0, len(e.Infos))
		for k := range e.Infos {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" [")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%s", k, e.Infos[k])
		}
		b.WriteString("]")
	}
	return b.String()
}

// Unwrap exposes the originating error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}
