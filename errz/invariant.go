// Package errz defines the error raised when a syntax tree breaks a
// structural invariant the traversal depends on.
package errz

import (
	"errors"
	"fmt"

	"github.com/risor-io/fastpath/token"
)

// ErrorKind represents the category of an invariant failure.
type ErrorKind int

const (
	// ErrEdge indicates a parent does not hold the child recorded under a slot.
	ErrEdge ErrorKind = iota
	// ErrStack indicates the path stack has an impossible shape.
	ErrStack
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrEdge:
		return "edge mismatch"
	case ErrStack:
		return "malformed stack"
	default:
		return "invariant"
	}
}

// InvariantError reports a malformed or inconsistent tree. It is raised with
// panic because continuing would silently produce wrong output.
type InvariantError struct {
	Kind     ErrorKind
	Message  string
	NodeType string
	Slot     any
	Location token.Position
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.NodeType != "" {
		msg += fmt.Sprintf(" (%s", e.NodeType)
		if e.Slot != nil {
			msg += fmt.Sprintf(".%v", e.Slot)
		}
		msg += ")"
	}
	if e.Location.IsValid() {
		msg += fmt.Sprintf(" at %s", e.Location)
	}
	return msg
}

// NewInvariantError creates an InvariantError with a formatted message.
func NewInvariantError(kind ErrorKind, format string, args ...any) *InvariantError {
	return &InvariantError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// At attaches the node type, slot and position the failure was detected at.
func (e *InvariantError) At(nodeType string, slot any, pos token.Position) *InvariantError {
	e.NodeType = nodeType
	e.Slot = slot
	e.Location = pos
	return e
}

// IsInvariant reports whether err is or wraps an InvariantError.
func IsInvariant(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}
