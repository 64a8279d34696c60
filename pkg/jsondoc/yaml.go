package jsondoc

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/variant/pkg/variant"
)

// MarshalYAML returns v as a yaml.Node tree, mappings in insertion order.
func (v Value) MarshalYAML() (interface{}, error) {
	return toNode(v), nil
}

// UnmarshalYAML accepts strings, numbers, nulls, sequences and mappings with
// scalar keys. Booleans and other tags fail with ErrUnsupported.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := fromNode(node, nil)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseYAML reads the first YAML document from r.
func ParseYAML(r io.Reader) (Value, error) {
	var v Value
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return NullValue(), nil
		}
		return Value{}, err
	}
	return v, nil
}

// EncodeYAML writes v to w as a YAML document indented by two spaces.
func EncodeYAML(w io.Writer, v Value) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func toNode(v Value) *yaml.Node {
	return variant.Match5(v.u,
		func(s String) *yaml.Node {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.Value}
		},
		func(n Number) *yaml.Node {
			return numberNode(n.Value)
		},
		func(ref ArrayRef) *yaml.Node {
			node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for _, item := range ref.Value().Values {
				node.Content = append(node.Content, toNode(item))
			}
			return node
		},
		func(ref ObjectRef) *yaml.Node {
			node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			for name, item := range ref.Value().All() {
				key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
				node.Content = append(node.Content, key, toNode(item))
			}
			return node
		},
		func(Null) *yaml.Node {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		},
	)
}

func numberNode(f float64) *yaml.Node {
	switch {
	case math.IsNaN(f):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".nan"}
	case math.IsInf(f, 1):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".inf"}
	case math.IsInf(f, -1):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: "-.inf"}
	case f == math.Trunc(f) && math.Abs(f) < 1e15:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(int64(f), 10)}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatNumber(f)}
}

// fromNode converts node. expanding holds the anchors whose aliases are
// being followed, so an anchor that contains an alias to itself is reported
// instead of expanded forever.
func fromNode(node *yaml.Node, expanding map[*yaml.Node]bool) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return NullValue(), nil
		}
		return fromNode(node.Content[0], expanding)
	case yaml.AliasNode:
		if node.Alias == nil {
			return Value{}, fmt.Errorf("%w: unknown alias %q at line %d", ErrUnsupported, node.Value, node.Line)
		}
		if expanding[node.Alias] {
			return Value{}, fmt.Errorf("%w: recursive alias %q at line %d", ErrUnsupported, node.Value, node.Line)
		}
		if expanding == nil {
			expanding = make(map[*yaml.Node]bool)
		}
		expanding[node.Alias] = true
		defer delete(expanding, node.Alias)
		return fromNode(node.Alias, expanding)
	case yaml.SequenceNode:
		values := make([]Value, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := fromNode(item, expanding)
			if err != nil {
				return Value{}, err
			}
			values = append(values, v)
		}
		return Arr(values...), nil
	case yaml.MappingNode:
		var o Object
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("%w: non-scalar key at line %d", ErrUnsupported, key.Line)
			}
			v, err := fromNode(node.Content[i+1], expanding)
			if err != nil {
				return Value{}, err
			}
			o.Set(key.Value, v)
		}
		return ownObject(o), nil
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!str":
			return Str(node.Value), nil
		case "!!int", "!!float":
			var f float64
			if err := node.Decode(&f); err != nil {
				return Value{}, fmt.Errorf("jsondoc: number at line %d: %w", node.Line, err)
			}
			return Num(f), nil
		case "!!null":
			return NullValue(), nil
		}
		return Value{}, fmt.Errorf("%w: %s %q at line %d", ErrUnsupported, node.ShortTag(), node.Value, node.Line)
	}
	return Value{}, fmt.Errorf("%w: yaml node kind %d", ErrUnsupported, node.Kind)
}
