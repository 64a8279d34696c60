package variant

import (
	"fmt"
	"reflect"
)

// IndexOf returns the position of T in v's alternative list.
func IndexOf[T, A, B, C, D, E any](v Variant[A, B, C, D, E]) (Index, error) {
	return indexOf[T, A, B, C, D, E]()
}

func indexOf[T, A, B, C, D, E any]() (Index, error) {
	l := layoutOf[A, B, C, D, E]()
	matches := [MaxAlternatives]bool{same[T, A](), same[T, B](), same[T, C](), same[T, D](), same[T, E]()}

	found := -1
	for i := range l.arity {
		if !matches[i] || l.unused[i] {
			continue
		}
		if found >= 0 {
			return 0, fmt.Errorf("%w: %v at %d and %d", ErrAmbiguousAlternative, l.types[i], found, i)
		}
		found = i
	}
	if found < 0 {
		return 0, fmt.Errorf("%w: %v", ErrNotAlternative, reflect.TypeFor[T]())
	}
	return Index(found), nil
}

func same[T, U any]() bool {
	_, ok := any((*U)(nil)).(*T)
	return ok
}

// Is reports whether the live alternative has type T. It never fails; for a
// type listed more than once it is true when any of its positions is live.
func Is[T, A, B, C, D, E any](v Variant[A, B, C, D, E]) bool {
	if layoutOf[A, B, C, D, E]().unused[v.tag] {
		return false
	}
	_, ok := v.slot(v.tag).(*T)
	return ok
}

// Get returns a copy of the payload when T is the live alternative.
func Get[T, A, B, C, D, E any](v Variant[A, B, C, D, E]) (T, error) {
	p, err := Ptr[T](&v)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Ptr returns a pointer to the payload when T is the live alternative. The
// pointer is valid until v is next reassigned.
func Ptr[T, A, B, C, D, E any](v *Variant[A, B, C, D, E]) (*T, error) {
	i, err := indexOf[T, A, B, C, D, E]()
	if err != nil {
		return nil, err
	}
	if i != v.tag {
		return nil, v.mismatch(i)
	}
	return v.slot(i).(*T), nil
}

// Take moves the payload out of v when T is the live alternative, leaving v
// in T's moved-from state.
func Take[T, A, B, C, D, E any](v *Variant[A, B, C, D, E]) (T, error) {
	p, err := Ptr[T](v)
	if err != nil {
		var zero T
		return zero, err
	}
	return moveSlot(p), nil
}

// Get0 returns a copy of alternative 0.
func (v Variant[A, B, C, D, E]) Get0() (A, error) {
	if v.tag != 0 {
		var zero A
		return zero, v.mismatch(0)
	}
	return v.a, nil
}

// Ptr0 returns a pointer to alternative 0.
func (v *Variant[A, B, C, D, E]) Ptr0() (*A, error) {
	if v.tag != 0 {
		return nil, v.mismatch(0)
	}
	return &v.a, nil
}

// Get1 returns a copy of alternative 1.
func (v Variant[A, B, C, D, E]) Get1() (B, error) {
	if v.tag != 1 {
		var zero B
		return zero, v.mismatch(1)
	}
	return v.b, nil
}

// Ptr1 returns a pointer to alternative 1.
func (v *Variant[A, B, C, D, E]) Ptr1() (*B, error) {
	if v.tag != 1 {
		return nil, v.mismatch(1)
	}
	return &v.b, nil
}

// Get2 returns a copy of alternative 2.
func (v Variant[A, B, C, D, E]) Get2() (C, error) {
	if v.tag != 2 {
		var zero C
		return zero, v.mismatch(2)
	}
	return v.c, nil
}

// Ptr2 returns a pointer to alternative 2.
func (v *Variant[A, B, C, D, E]) Ptr2() (*C, error) {
	if v.tag != 2 {
		return nil, v.mismatch(2)
	}
	return &v.c, nil
}

// Get3 returns a copy of alternative 3.
func (v Variant[A, B, C, D, E]) Get3() (D, error) {
	if v.tag != 3 {
		var zero D
		return zero, v.mismatch(3)
	}
	return v.d, nil
}

// Ptr3 returns a pointer to alternative 3.
func (v *Variant[A, B, C, D, E]) Ptr3() (*D, error) {
	if v.tag != 3 {
		return nil, v.mismatch(3)
	}
	return &v.d, nil
}

// Get4 returns a copy of alternative 4.
func (v Variant[A, B, C, D, E]) Get4() (E, error) {
	if v.tag != 4 {
		var zero E
		return zero, v.mismatch(4)
	}
	return v.e, nil
}

// Ptr4 returns a pointer to alternative 4.
func (v *Variant[A, B, C, D, E]) Ptr4() (*E, error) {
	if v.tag != 4 {
		return nil, v.mismatch(4)
	}
	return &v.e, nil
}
