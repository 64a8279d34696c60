package variant

// Box is a single-owner heap indirection. It lets an alternative refer back
// to the union it is part of (a list of values inside a value, say) without
// making the union infinitely large.
//
// Clone and TryClone deep-copy through the pointer, Move transfers it and
// empties the source, Destroy releases the boxed value. A Box copies exactly
// when its T does. An empty Box reads as the zero T.
type Box[T any] struct {
	p *T
}

func NewBox[T any](v T) Box[T] {
	return Box[T]{p: &v}
}

// Get returns the boxed pointer, nil for an empty Box.
func (b Box[T]) Get() *T {
	return b.p
}

// Value returns a shallow copy of the boxed value.
func (b Box[T]) Value() T {
	if b.p == nil {
		var zero T
		return zero
	}
	return *b.p
}

func (b Box[T]) IsEmpty() bool {
	return b.p == nil
}

// Clone deep-copies the boxed value the way a union alternative of type T
// is copied. It panics when T is not copyable or its TryClone fails; use
// TryClone for such T.
func (b Box[T]) Clone() Box[T] {
	out, err := b.TryClone()
	if err != nil {
		panic(err)
	}
	return out
}

// TryClone deep-copies the boxed value. It fails with ErrNotCopyable when T
// is neither a Cloner, a FallibleCloner nor plain data.
func (b Box[T]) TryClone() (Box[T], error) {
	if b.p == nil {
		return b, nil
	}
	v, err := copySlot(b.p, copyKindOf[T]())
	if err != nil {
		return Box[T]{}, err
	}
	return NewBox(v), nil
}

// copyKind makes a Box exactly as copyable as its T.
func (*Box[T]) copyKind() copyKind {
	switch k := copyKindOf[T](); k {
	case copyNone, copyFallible:
		return k
	}
	return copyClone
}

func (b *Box[T]) Move() Box[T] {
	out := *b
	b.p = nil
	return out
}

func (b *Box[T]) Destroy() {
	if b.p == nil {
		return
	}
	destroySlot(b.p)
	b.p = nil
}
