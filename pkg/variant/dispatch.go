package variant

import (
	"fmt"
	"reflect"
)

// Clone returns a deep copy of v. It is only available when every alternative
// implements Cloner; for other lists use Copy.
func Clone[A Cloner[A], B Cloner[B], C Cloner[C], D Cloner[D], E Cloner[E]](v Variant[A, B, C, D, E]) Variant[A, B, C, D, E] {
	out := Variant[A, B, C, D, E]{tag: v.tag}
	switch v.tag {
	case 0:
		out.a = v.a.Clone()
	case 1:
		out.b = v.b.Clone()
	case 2:
		out.c = v.c.Clone()
	case 3:
		out.d = v.d.Clone()
	case 4:
		out.e = v.e.Clone()
	default:
		panic(corrupt(v.tag))
	}
	return out
}

// Copy returns a deep copy of v. It fails with ErrNotCopyable when any
// alternative of the list, live or not, is not copyable, and with the
// alternative's own error when a FallibleCloner fails.
func (v Variant[A, B, C, D, E]) Copy() (Variant[A, B, C, D, E], error) {
	l := layoutOf[A, B, C, D, E]()
	if !l.caps.Copyable {
		return Variant[A, B, C, D, E]{}, fmt.Errorf("%w: %s", ErrNotCopyable, reflect.TypeOf(v))
	}

	out := Variant[A, B, C, D, E]{tag: v.tag}
	var err error
	kind := l.copies[v.tag]
	switch v.tag {
	case 0:
		out.a, err = copySlot(&v.a, kind)
	case 1:
		out.b, err = copySlot(&v.b, kind)
	case 2:
		out.c, err = copySlot(&v.c, kind)
	case 3:
		out.d, err = copySlot(&v.d, kind)
	case 4:
		out.e, err = copySlot(&v.e, kind)
	default:
		panic(corrupt(v.tag))
	}
	if err != nil {
		return Variant[A, B, C, D, E]{}, err
	}
	return out, nil
}

// TryClone is Copy under the FallibleCloner name, so unions nest as
// alternatives of other unions.
func (v Variant[A, B, C, D, E]) TryClone() (Variant[A, B, C, D, E], error) {
	return v.Copy()
}

func (*Variant[A, B, C, D, E]) copyKind() copyKind {
	if !layoutOf[A, B, C, D, E]().caps.Copyable {
		return copyNone
	}
	return copyFallible
}

// CopyFrom replaces the payload of v with a deep copy of src. The copy is
// staged before the old payload is destroyed: on error v is left unchanged.
func (v *Variant[A, B, C, D, E]) CopyFrom(src Variant[A, B, C, D, E]) error {
	staged, err := src.Copy()
	if err != nil {
		return err
	}
	v.Destroy()
	*v = staged
	return nil
}

// Move transfers the live payload into a new union with the same
// discriminant. Alternatives implementing Mover leave v in their moved-from
// state; others are copied by assignment. The discriminant of v is kept.
func (v *Variant[A, B, C, D, E]) Move() Variant[A, B, C, D, E] {
	out := Variant[A, B, C, D, E]{tag: v.tag}
	switch v.tag {
	case 0:
		out.a = moveSlot(&v.a)
	case 1:
		out.b = moveSlot(&v.b)
	case 2:
		out.c = moveSlot(&v.c)
	case 3:
		out.d = moveSlot(&v.d)
	case 4:
		out.e = moveSlot(&v.e)
	default:
		panic(corrupt(v.tag))
	}
	return out
}

// MoveFrom destroys the payload of v and moves the payload of src into it.
func (v *Variant[A, B, C, D, E]) MoveFrom(src *Variant[A, B, C, D, E]) {
	if v == src {
		return
	}
	moved := src.Move()
	v.Destroy()
	*v = moved
}

// Destroy releases the live payload through its Destroyer, if any, and
// resets it to its zero value. The discriminant is kept.
func (v *Variant[A, B, C, D, E]) Destroy() {
	switch v.tag {
	case 0:
		destroySlot(&v.a)
	case 1:
		destroySlot(&v.b)
	case 2:
		destroySlot(&v.c)
	case 3:
		destroySlot(&v.d)
	case 4:
		destroySlot(&v.e)
	default:
		panic(corrupt(v.tag))
	}
}

func copySlot[T any](src *T, kind copyKind) (T, error) {
	switch kind {
	case copyClone:
		return any(src).(Cloner[T]).Clone(), nil
	case copyFallible:
		return any(src).(FallibleCloner[T]).TryClone()
	case copyPlain:
		return *src, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %s", ErrNotCopyable, reflect.TypeFor[T]())
}

func moveSlot[T any](p *T) T {
	if m, ok := any(p).(Mover[T]); ok {
		return m.Move()
	}
	return *p
}

func destroySlot[T any](p *T) {
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
	} else if d, ok := any(*p).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	*p = zero
}

// dispatch invokes the handler matching the live alternative.
func dispatch[A, B, C, D, E, R any](v *Variant[A, B, C, D, E],
	f0 func(*A) R, f1 func(*B) R, f2 func(*C) R, f3 func(*D) R, f4 func(*E) R) R {

	switch v.tag {
	case 0:
		return f0(&v.a)
	case 1:
		return f1(&v.b)
	case 2:
		return f2(&v.c)
	case 3:
		return f3(&v.d)
	case 4:
		return f4(&v.e)
	}
	panic(corrupt(v.tag))
}

func byValue[T, R any](f func(T) R) func(*T) R {
	return func(p *T) R { return f(*p) }
}

func byMove[T, R any](f func(T) R) func(*T) R {
	return func(p *T) R { return f(moveSlot(p)) }
}

func never[R any](*Unused) R {
	panic(ErrUnusedPosition)
}

func requireHandlers(missing ...bool) {
	for i, m := range missing {
		if m {
			panic(fmt.Errorf("%w: alternative %d", ErrNilHandler, i))
		}
	}
}

func corrupt(i Index) error {
	return fmt.Errorf("variant: discriminant %d out of range", i)
}
