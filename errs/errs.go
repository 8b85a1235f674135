// Package errs classifies failures at component boundaries. The CRM
// client and the spreadsheet codec convert every underlying failure into
// one of these kinds; raw low-level errors never reach callers.
package errs

import (
	"errors"
	"fmt"
)

type Kind string

const (
	Transport  Kind = "transport"  // connection failure, timeout, IO
	Protocol   Kind = "protocol"   // non-2xx HTTP status
	Decode     Kind = "decode"     // malformed response body or workbook
	Data       Kind = "data"       // expected payload or field absent
	Validation Kind = "validation" // required input field missing
)

type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func E(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func Errorf(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": " + string(e.Kind)
	}
	return e.Op + ": " + string(e.Kind) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns err's kind, or "" when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }
