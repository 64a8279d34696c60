package jsondoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ib-77/variant/pkg/variant"
)

// MarshalJSON encodes v as compact standard JSON, object members in
// insertion order. Non-finite numbers fail with ErrUnsupported.
func (v Value) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	if err := encodeJSON(&b, v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// UnmarshalJSON decodes a single JSON value, keeping object member order.
// Booleans are not part of the model and fail with ErrUnsupported.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Parse reads exactly one JSON value from r.
func Parse(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			return Value{}, errors.New("jsondoc: trailing data after value")
		}
		return Value{}, fmt.Errorf("jsondoc: %w", err)
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, fmt.Errorf("jsondoc: %w", err)
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		}
		return Value{}, fmt.Errorf("jsondoc: unexpected %q", t)
	case string:
		return Str(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("jsondoc: number %s: %w", t, err)
		}
		return Num(f), nil
	case nil:
		return NullValue(), nil
	case bool:
		return Value{}, fmt.Errorf("%w: boolean %t", ErrUnsupported, t)
	}
	return Value{}, fmt.Errorf("%w: token %v", ErrUnsupported, tok)
}

func decodeArray(dec *json.Decoder) (Value, error) {
	var values []Value
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		values = append(values, v)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, fmt.Errorf("jsondoc: %w", err)
	}
	return Arr(values...), nil
}

func decodeObject(dec *json.Decoder) (Value, error) {
	var o Object
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, fmt.Errorf("jsondoc: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("jsondoc: object key %v is not a string", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		o.Set(name, v)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, fmt.Errorf("jsondoc: %w", err)
	}
	return ownObject(o), nil
}

func encodeJSON(b *bytes.Buffer, v Value) error {
	return variant.Match5(v.u,
		func(s String) error {
			b.WriteString(quote(s.Value))
			return nil
		},
		func(n Number) error {
			if math.IsNaN(n.Value) || math.IsInf(n.Value, 0) {
				return fmt.Errorf("%w: number %v", ErrUnsupported, n.Value)
			}
			b.WriteString(formatNumber(n.Value))
			return nil
		},
		func(ref ArrayRef) error {
			b.WriteByte('[')
			for i, item := range ref.Value().Values {
				if i > 0 {
					b.WriteByte(',')
				}
				if err := encodeJSON(b, item); err != nil {
					return err
				}
			}
			b.WriteByte(']')
			return nil
		},
		func(ref ObjectRef) error {
			b.WriteByte('{')
			first := true
			for name, item := range ref.Value().All() {
				if !first {
					b.WriteByte(',')
				}
				first = false
				b.WriteString(quote(name))
				b.WriteByte(':')
				if err := encodeJSON(b, item); err != nil {
					return err
				}
			}
			b.WriteByte('}')
			return nil
		},
		func(Null) error {
			b.WriteString("null")
			return nil
		},
	)
}
