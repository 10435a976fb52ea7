// Package errors defines a BrewinError type that carries one of the three
// error kinds the interpreter can surface to its host (spec §7; the kinds
// themselves are host.ErrorKind values).
package errors

import (
	"fmt"

	"github.com/anushkanayak15/brewin-go/internal/host"
)

// BrewinError is a fatal interpreter error tagged with the host-reported
// kind it maps to. It is returned (not panicked) by every interpreter
// operation that can fail for a reason other than a raised user exception.
type BrewinError struct {
	Kind    host.ErrorKind
	Message string
}

func (e *BrewinError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newf(kind host.ErrorKind, format string, args ...any) *BrewinError {
	return &BrewinError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Name builds a NAME_ERROR.
func Name(format string, args ...any) *BrewinError { return newf(host.NameError, format, args...) }

// Type builds a TYPE_ERROR.
func Type(format string, args ...any) *BrewinError { return newf(host.TypeError, format, args...) }

// Fault builds a FAULT_ERROR.
func Fault(format string, args ...any) *BrewinError { return newf(host.FaultError, format, args...) }

// As reports whether err is a *BrewinError and returns it.
func As(err error) (*BrewinError, bool) {
	be, ok := err.(*BrewinError)
	return be, ok
}
