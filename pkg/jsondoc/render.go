package jsondoc

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ib-77/variant/pkg/variant"
)

type renderer struct {
	w      io.Writer
	err    error
	indent string
	depth  int
}

type Option func(*renderer)

// WithIndent renders one member or element per line, nested by indent.
func WithIndent(indent string) Option {
	return func(r *renderer) {
		r.indent = indent
	}
}

// Render writes v to w. Without options it uses the compact form
//
//	{ "Foo": 42, "Bar": [1, "x", null]}
//
// in which object members appear in insertion order.
func Render(w io.Writer, v Value, opts ...Option) error {
	r := &renderer{w: w}
	for _, opt := range opts {
		opt(r)
	}
	r.value(v)
	return r.err
}

func (v Value) String() string {
	var b strings.Builder
	_ = Render(&b, v)
	return b.String()
}

func (r *renderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}

func (r *renderer) newline() {
	r.write("\n")
	r.write(strings.Repeat(r.indent, r.depth))
}

func (r *renderer) value(v Value) {
	variant.Match5(v.u,
		func(s String) struct{} {
			r.write(quote(s.Value))
			return struct{}{}
		},
		func(n Number) struct{} {
			r.write(formatNumber(n.Value))
			return struct{}{}
		},
		func(ref ArrayRef) struct{} {
			r.array(ref.Value())
			return struct{}{}
		},
		func(ref ObjectRef) struct{} {
			r.object(ref.Value())
			return struct{}{}
		},
		func(Null) struct{} {
			r.write("null")
			return struct{}{}
		},
	)
}

func (r *renderer) array(a Array) {
	if r.indent == "" {
		r.write("[")
		for i, v := range a.Values {
			if i > 0 {
				r.write(", ")
			}
			r.value(v)
		}
		r.write("]")
		return
	}

	if len(a.Values) == 0 {
		r.write("[]")
		return
	}
	r.write("[")
	r.depth++
	for i, v := range a.Values {
		if i > 0 {
			r.write(",")
		}
		r.newline()
		r.value(v)
	}
	r.depth--
	r.newline()
	r.write("]")
}

func (r *renderer) object(o Object) {
	if r.indent == "" {
		r.write("{ ")
		first := true
		for name, v := range o.All() {
			if !first {
				r.write(", ")
			}
			first = false
			r.write(quote(name))
			r.write(": ")
			r.value(v)
		}
		r.write("}")
		return
	}

	if o.Len() == 0 {
		r.write("{}")
		return
	}
	r.write("{")
	r.depth++
	first := true
	for name, v := range o.All() {
		if !first {
			r.write(",")
		}
		first = false
		r.newline()
		r.write(quote(name))
		r.write(": ")
		r.value(v)
	}
	r.depth--
	r.newline()
	r.write("}")
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// quote returns s as a JSON string literal. Only the quote, the backslash
// and control characters are escaped.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				b.WriteString("\ufffd")
			} else {
				b.WriteString(s[i : i+size])
			}
			i += size
			continue
		}
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hex[c>>4])
				b.WriteByte(hex[c&0xf])
			} else {
				b.WriteByte(c)
			}
		}
		i++
	}
	b.WriteByte('"')
	return b.String()
}

const hex = "0123456789abcdef"
