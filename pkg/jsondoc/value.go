package jsondoc

import (
	"errors"
	"fmt"

	"github.com/ib-77/variant/pkg/variant"
)

// ErrUnsupported is returned for input that has no alternative in the model,
// such as booleans or non-finite numbers in JSON.
var ErrUnsupported = errors.New("jsondoc: unsupported value")

type String struct {
	Value string
}

func (s String) Clone() String { return s }

type Number struct {
	Value float64
}

func (n Number) Clone() Number { return n }

type Null struct{}

func (Null) Clone() Null { return Null{} }

type Array struct {
	Values []Value
}

func (a Array) Clone() Array {
	if a.Values == nil {
		return Array{}
	}
	out := Array{Values: make([]Value, len(a.Values))}
	for i, v := range a.Values {
		out.Values[i] = v.Clone()
	}
	return out
}

type (
	ArrayRef  = variant.Box[Array]
	ObjectRef = variant.Box[Object]

	union = variant.Of5[String, Number, ArrayRef, ObjectRef, Null]
)

// Kind names the live alternative of a Value; it equals its union index.
type Kind uint8

const (
	KindString Kind = iota
	KindNumber
	KindArray
	KindObject
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindNull:
		return "null"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is a document node. The zero Value is the empty string.
type Value struct {
	u union
}

// Member is a named object entry, used by Obj.
type Member struct {
	Name  string
	Value Value
}

func M(name string, v Value) Member {
	return Member{Name: name, Value: v}
}

func Str(s string) Value {
	return Value{u: variant.New5At0[String, Number, ArrayRef, ObjectRef, Null](String{Value: s})}
}

func Num(n float64) Value {
	return Value{u: variant.New5At1[String, Number, ArrayRef, ObjectRef, Null](Number{Value: n})}
}

func NullValue() Value {
	return Value{u: variant.New5At4[String, Number, ArrayRef, ObjectRef, Null](Null{})}
}

func Arr(values ...Value) Value {
	return FromArray(Array{Values: values})
}

func FromArray(a Array) Value {
	return Value{u: variant.New5At2[String, Number, ArrayRef, ObjectRef, Null](variant.NewBox(a))}
}

// Obj builds an object from members in order. A repeated name keeps its first
// position and takes the last value.
func Obj(members ...Member) Value {
	return ownObject(NewObject(members...))
}

// FromObject wraps a deep copy of o, so later changes to o are not seen by
// the returned Value.
func FromObject(o Object) Value {
	return ownObject(o.Clone())
}

func ownObject(o Object) Value {
	return Value{u: variant.New5At3[String, Number, ArrayRef, ObjectRef, Null](variant.NewBox(o))}
}

func (v Value) Kind() Kind {
	return Kind(v.u.Index())
}

func (v Value) IsNull() bool {
	return variant.Is[Null](v.u)
}

// AsString returns the text of a string value. Accessors on the wrong kind
// fail with an error matching variant.ErrTypeMismatch.
func (v Value) AsString() (string, error) {
	s, err := v.u.Get0()
	if err != nil {
		return "", fmt.Errorf("jsondoc: %s is not a string: %w", v.Kind(), err)
	}
	return s.Value, nil
}

func (v Value) AsNumber() (float64, error) {
	n, err := v.u.Get1()
	if err != nil {
		return 0, fmt.Errorf("jsondoc: %s is not a number: %w", v.Kind(), err)
	}
	return n.Value, nil
}

// AsArray returns the boxed array; changes through it are visible in v.
func (v Value) AsArray() (*Array, error) {
	ref, err := v.u.Get2()
	if err != nil {
		return nil, fmt.Errorf("jsondoc: %s is not an array: %w", v.Kind(), err)
	}
	if ref.IsEmpty() {
		return &Array{}, nil
	}
	return ref.Get(), nil
}

// AsObject returns the boxed object; changes through it are visible in v.
func (v Value) AsObject() (*Object, error) {
	ref, err := v.u.Get3()
	if err != nil {
		return nil, fmt.Errorf("jsondoc: %s is not an object: %w", v.Kind(), err)
	}
	if ref.IsEmpty() {
		return &Object{}, nil
	}
	return ref.Get(), nil
}

// Clone returns a deep copy of v: arrays and objects are copied through
// their boxes.
func (v Value) Clone() Value {
	return Value{u: variant.Clone(v.u)}
}

// Equal reports whether a and b are the same document. Object members are
// compared in order.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	return variant.Match5(a.u,
		func(s String) bool {
			other, _ := b.AsString()
			return s.Value == other
		},
		func(n Number) bool {
			other, _ := b.AsNumber()
			return n.Value == other
		},
		func(ref ArrayRef) bool {
			other, _ := b.AsArray()
			return equalArrays(ref.Value(), *other)
		},
		func(ref ObjectRef) bool {
			other, _ := b.AsObject()
			return equalObjects(ref.Value(), *other)
		},
		func(Null) bool { return true },
	)
}

func equalArrays(a, b Array) bool {
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if !Equal(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return true
}

func equalObjects(a, b Object) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Len() == 0 {
		return true
	}
	for i, name := range a.m.names {
		if b.m.names[i] != name || !Equal(a.m.values[i], b.m.values[i]) {
			return false
		}
	}
	return true
}
