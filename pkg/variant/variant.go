package variant

import (
	"fmt"
	"reflect"
)

// Index is the discriminant of a union: the zero-based position of the live
// alternative.
type Index uint8

// MaxAlternatives is the largest arity a Variant supports.
const MaxAlternatives = 5

// Unused fills the positions of a Variant beyond its arity. It is never live.
type Unused struct{}

func (Unused) Clone() Unused { return Unused{} }

func (Unused) String() string { return "unused" }

// Variant holds exactly one value of one of the alternatives A, B, C, D, E.
// Every slot other than the live one holds its zero value.
type Variant[A, B, C, D, E any] struct {
	a   A
	b   B
	c   C
	d   D
	e   E
	tag Index
}

type (
	Of2[A, B any]          = Variant[A, B, Unused, Unused, Unused]
	Of3[A, B, C any]       = Variant[A, B, C, Unused, Unused]
	Of4[A, B, C, D any]    = Variant[A, B, C, D, Unused]
	Of5[A, B, C, D, E any] = Variant[A, B, C, D, E]
)

// Index returns the position of the live alternative.
func (v Variant[A, B, C, D, E]) Index() Index {
	return v.tag
}

// Holds reports whether alternative i is live.
func (v Variant[A, B, C, D, E]) Holds(i Index) bool {
	return v.tag == i
}

// Arity returns the number of alternatives, that is the position of the last
// non-Unused type parameter plus one.
func (v Variant[A, B, C, D, E]) Arity() int {
	return layoutOf[A, B, C, D, E]().arity
}

// Alternative returns the type of alternative i, or nil when i is out of range.
func (v Variant[A, B, C, D, E]) Alternative(i Index) reflect.Type {
	l := layoutOf[A, B, C, D, E]()
	if int(i) >= l.arity {
		return nil
	}
	return l.types[i]
}

// String formats the live payload with fmt.
func (v Variant[A, B, C, D, E]) String() string {
	return fmt.Sprint(v.live())
}

func (v *Variant[A, B, C, D, E]) live() any {
	switch v.tag {
	case 0:
		return v.a
	case 1:
		return v.b
	case 2:
		return v.c
	case 3:
		return v.d
	case 4:
		return v.e
	}
	panic(corrupt(v.tag))
}

func (v *Variant[A, B, C, D, E]) slot(i Index) any {
	switch i {
	case 0:
		return &v.a
	case 1:
		return &v.b
	case 2:
		return &v.c
	case 3:
		return &v.d
	case 4:
		return &v.e
	}
	panic(corrupt(i))
}

// Set0 destroys the live payload and makes a the live alternative.
func (v *Variant[A, B, C, D, E]) Set0(a A) {
	v.mustUse(0)
	v.Destroy()
	v.a, v.tag = a, 0
}

// Set1 destroys the live payload and makes b the live alternative.
func (v *Variant[A, B, C, D, E]) Set1(b B) {
	v.mustUse(1)
	v.Destroy()
	v.b, v.tag = b, 1
}

// Set2 destroys the live payload and makes c the live alternative.
func (v *Variant[A, B, C, D, E]) Set2(c C) {
	v.mustUse(2)
	v.Destroy()
	v.c, v.tag = c, 2
}

// Set3 destroys the live payload and makes d the live alternative.
func (v *Variant[A, B, C, D, E]) Set3(d D) {
	v.mustUse(3)
	v.Destroy()
	v.d, v.tag = d, 3
}

// Set4 destroys the live payload and makes e the live alternative.
func (v *Variant[A, B, C, D, E]) Set4(e E) {
	v.mustUse(4)
	v.Destroy()
	v.e, v.tag = e, 4
}

// mustUse panics when position i holds Unused. Unused positions have no
// values of their own, so reaching one is a programming error.
func (v *Variant[A, B, C, D, E]) mustUse(i Index) {
	if layoutOf[A, B, C, D, E]().unused[i] {
		panic(fmt.Errorf("%w: position %d", ErrUnusedPosition, i))
	}
}

// Equal reports whether x and y hold the same alternative with equal payloads.
func Equal[A, B, C, D, E comparable](x, y Variant[A, B, C, D, E]) bool {
	// non-live slots are always zero, so plain struct equality is exact
	return x == y
}

func New2At0[A, B any](a A) Of2[A, B] {
	return Of2[A, B]{a: a}
}

func New2At1[A, B any](b B) Of2[A, B] {
	return Of2[A, B]{b: b, tag: 1}
}

func New3At0[A, B, C any](a A) Of3[A, B, C] {
	return Of3[A, B, C]{a: a}
}

func New3At1[A, B, C any](b B) Of3[A, B, C] {
	return Of3[A, B, C]{b: b, tag: 1}
}

func New3At2[A, B, C any](c C) Of3[A, B, C] {
	return Of3[A, B, C]{c: c, tag: 2}
}

func New4At0[A, B, C, D any](a A) Of4[A, B, C, D] {
	return Of4[A, B, C, D]{a: a}
}

func New4At1[A, B, C, D any](b B) Of4[A, B, C, D] {
	return Of4[A, B, C, D]{b: b, tag: 1}
}

func New4At2[A, B, C, D any](c C) Of4[A, B, C, D] {
	return Of4[A, B, C, D]{c: c, tag: 2}
}

func New4At3[A, B, C, D any](d D) Of4[A, B, C, D] {
	return Of4[A, B, C, D]{d: d, tag: 3}
}

func New5At0[A, B, C, D, E any](a A) Of5[A, B, C, D, E] {
	return Of5[A, B, C, D, E]{a: a}
}

func New5At1[A, B, C, D, E any](b B) Of5[A, B, C, D, E] {
	return Of5[A, B, C, D, E]{b: b, tag: 1}
}

func New5At2[A, B, C, D, E any](c C) Of5[A, B, C, D, E] {
	return Of5[A, B, C, D, E]{c: c, tag: 2}
}

func New5At3[A, B, C, D, E any](d D) Of5[A, B, C, D, E] {
	return Of5[A, B, C, D, E]{d: d, tag: 3}
}

func New5At4[A, B, C, D, E any](e E) Of5[A, B, C, D, E] {
	return Of5[A, B, C, D, E]{e: e, tag: 4}
}
