package variant

import (
	"reflect"

	"github.com/puzpuzpuz/xsync/v3"
)

// Cloner is implemented by alternatives that know how to deep-copy
// themselves. Clone must not fail.
type Cloner[T any] interface {
	Clone() T
}

// FallibleCloner is implemented by alternatives whose copy may fail.
type FallibleCloner[T any] interface {
	TryClone() (T, error)
}

// Mover is implemented (usually on *T) by alternatives that transfer
// ownership on move and leave the source in a moved-from state.
type Mover[T any] interface {
	Move() T
}

// Destroyer is implemented by alternatives that own resources. Destroy must
// not panic.
type Destroyer interface {
	Destroy()
}

// Capabilities describes what a union over a given alternative list supports.
type Capabilities struct {
	// Copyable is true when every alternative is a Cloner, a FallibleCloner
	// or plain data.
	Copyable bool
	// NothrowCopy is true when Copyable holds and no alternative copies
	// through a FallibleCloner.
	NothrowCopy bool
	// NothrowMove is always true: moves are assignments.
	NothrowMove bool
	// MoveAware is true when some alternative implements Mover.
	MoveAware bool
	// OwnsResources is true when some alternative implements Destroyer.
	OwnsResources bool
}

// CapabilitiesOf returns the capabilities of the union over A..E.
func CapabilitiesOf[A, B, C, D, E any]() Capabilities {
	return layoutOf[A, B, C, D, E]().caps
}

// Capabilities returns the capabilities of v's alternative list.
func (v Variant[A, B, C, D, E]) Capabilities() Capabilities {
	return layoutOf[A, B, C, D, E]().caps
}

// CanCopy reports whether a single type is copyable in the sense of
// Capabilities.Copyable.
func CanCopy[T any]() bool {
	return describe[T]().copy != copyNone
}

type copyKind uint8

const (
	copyNone copyKind = iota
	copyPlain
	copyClone
	copyFallible
)

type alternative struct {
	typ       reflect.Type
	unused    bool
	copy      copyKind
	mover     bool
	destroyer bool
}

type layout struct {
	arity  int
	types  [MaxAlternatives]reflect.Type
	unused [MaxAlternatives]bool
	copies [MaxAlternatives]copyKind
	caps   Capabilities
}

var (
	layouts       = xsync.NewMapOf[reflect.Type, *layout]()
	destroyerType = reflect.TypeFor[Destroyer]()
)

func layoutOf[A, B, C, D, E any]() *layout {
	key := reflect.TypeFor[Variant[A, B, C, D, E]]()
	if l, ok := layouts.Load(key); ok {
		return l
	}
	// computed outside the map: describing a Box or a nested union looks up
	// further layouts
	l := newLayout(describe[A](), describe[B](), describe[C](), describe[D](), describe[E]())
	actual, _ := layouts.LoadOrStore(key, l)
	return actual
}

// copyKindOf returns how a single T is copied.
func copyKindOf[T any]() copyKind {
	return layoutOf[T, Unused, Unused, Unused, Unused]().copies[0]
}

// copyKinder is implemented by wrappers whose copy depends on what they hold.
type copyKinder interface {
	copyKind() copyKind
}

func newLayout(alts ...alternative) *layout {
	l := &layout{}
	for i, alt := range alts {
		l.types[i] = alt.typ
		l.unused[i] = alt.unused
		l.copies[i] = alt.copy
		if !alt.unused {
			l.arity = i + 1
		}
	}

	l.caps = Capabilities{Copyable: true, NothrowCopy: true, NothrowMove: true}
	for _, alt := range alts[:l.arity] {
		if alt.unused {
			continue
		}
		switch alt.copy {
		case copyNone:
			l.caps.Copyable = false
			l.caps.NothrowCopy = false
		case copyFallible:
			l.caps.NothrowCopy = false
		}
		l.caps.MoveAware = l.caps.MoveAware || alt.mover
		l.caps.OwnsResources = l.caps.OwnsResources || alt.destroyer
	}
	return l
}

func describe[T any]() alternative {
	p := any((*T)(nil))
	alt := alternative{typ: reflect.TypeFor[T]()}

	_, alt.unused = p.(*Unused)
	_, alt.mover = p.(Mover[T])
	_, alt.destroyer = p.(Destroyer)
	alt.destroyer = alt.destroyer || alt.typ.Implements(destroyerType)

	switch c := p.(type) {
	case copyKinder:
		alt.copy = c.copyKind()
	case Cloner[T]:
		alt.copy = copyClone
	case FallibleCloner[T]:
		alt.copy = copyFallible
	default:
		if plain(alt.typ) {
			alt.copy = copyPlain
		}
	}
	return alt
}

// plain reports whether assignment of a t yields an independent copy:
// no pointers, slices, maps, channels, funcs or interfaces are reachable.
// Strings are immutable and count as plain.
func plain(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	case reflect.Array:
		return plain(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !plain(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return false
}
