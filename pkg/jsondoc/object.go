package jsondoc

import "iter"

// Object is a mapping from names to values that remembers insertion order.
//
// Like a map, an Object is a reference: copies share their members, and a Set
// or Delete through one copy is seen by all of them. Use Clone for an
// independent Object. The zero Object is empty and ready to use; it starts
// sharing once its first member is set.
type Object struct {
	m *members
}

type members struct {
	names  []string
	values []Value
	index  map[string]int
}

func NewObject(members ...Member) Object {
	var o Object
	for _, m := range members {
		o.Set(m.Name, m.Value)
	}
	return o
}

// Set adds name at the end, or replaces its value in place when present.
func (o *Object) Set(name string, v Value) {
	if o.m == nil {
		o.m = &members{index: make(map[string]int)}
	}
	if i, ok := o.m.index[name]; ok {
		o.m.values[i] = v
		return
	}
	o.m.index[name] = len(o.m.names)
	o.m.names = append(o.m.names, name)
	o.m.values = append(o.m.values, v)
}

func (o Object) Get(name string) (Value, bool) {
	if o.m == nil {
		return Value{}, false
	}
	i, ok := o.m.index[name]
	if !ok {
		return Value{}, false
	}
	return o.m.values[i], true
}

// Delete removes name, keeping the order of the remaining members.
func (o Object) Delete(name string) bool {
	if o.m == nil {
		return false
	}
	i, ok := o.m.index[name]
	if !ok {
		return false
	}
	delete(o.m.index, name)
	o.m.names = append(o.m.names[:i], o.m.names[i+1:]...)
	o.m.values = append(o.m.values[:i], o.m.values[i+1:]...)
	for j := i; j < len(o.m.names); j++ {
		o.m.index[o.m.names[j]] = j
	}
	return true
}

func (o Object) Len() int {
	if o.m == nil {
		return 0
	}
	return len(o.m.names)
}

// Names returns the member names in insertion order.
func (o Object) Names() []string {
	if o.m == nil {
		return nil
	}
	return append([]string(nil), o.m.names...)
}

// All iterates members in insertion order.
func (o Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o.m == nil {
			return
		}
		for i := 0; i < len(o.m.names); i++ {
			if !yield(o.m.names[i], o.m.values[i]) {
				return
			}
		}
	}
}

// Clone returns an independent deep copy of o.
func (o Object) Clone() Object {
	var out Object
	for name, v := range o.All() {
		out.Set(name, v.Clone())
	}
	return out
}
