package variant

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrTypeMismatch is matched by every error returned when the requested
	// alternative is not the live one.
	ErrTypeMismatch = errors.New("variant: type mismatch")
	// ErrNotAlternative is returned by type-directed access for a type that
	// is not in the alternative list.
	ErrNotAlternative = errors.New("variant: type is not an alternative")
	// ErrAmbiguousAlternative is returned by type-directed access for a type
	// that occurs more than once in the list; use index access instead.
	ErrAmbiguousAlternative = errors.New("variant: type occurs more than once")
	// ErrNotCopyable is returned by Copy when some alternative is move-only.
	ErrNotCopyable = errors.New("variant: alternative list is not copyable")
	ErrUnusedPosition = errors.New("variant: unused position")
	ErrNilHandler     = errors.New("variant: nil handler")
)

// MismatchError reports an access to an alternative that is not live.
type MismatchError struct {
	Requested     Index
	Active        Index
	RequestedType reflect.Type
	ActiveType    reflect.Type
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("variant: type mismatch: requested alternative %d (%v), live alternative is %d (%v)",
		e.Requested, e.RequestedType, e.Active, e.ActiveType)
}

func (e *MismatchError) Unwrap() error {
	return ErrTypeMismatch
}

func (v *Variant[A, B, C, D, E]) mismatch(requested Index) error {
	l := layoutOf[A, B, C, D, E]()
	return &MismatchError{
		Requested:     requested,
		Active:        v.tag,
		RequestedType: l.types[requested],
		ActiveType:    l.types[v.tag],
	}
}
