package detkit

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned when a handle is used after Destroy.
	ErrClosed = errors.New("handle is destroyed")

	// ErrUnknownHandle is returned when a handle was never issued by the
	// table it is passed to.
	ErrUnknownHandle = errors.New("unknown handle")

	// ErrKindMismatch is returned when a combinator receives handles of
	// different representation kinds. Dispatch selects exactly one code
	// path per call; forms never mix inside a single operation.
	ErrKindMismatch = errors.New("representation kinds do not match")
)

// ErrInvalidKind indicates a representation kind outside the closed tag
// space {KindBits, KindList, KindBitmap}.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidKind struct {
	Kind  Kind
	cause error
}

func (e *ErrInvalidKind) Error() string {
	return fmt.Sprintf("invalid representation kind: %d", e.Kind)
}

func (e *ErrInvalidKind) Unwrap() error { return e.cause }
