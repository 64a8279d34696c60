// Package jsondoc is a JSON-like document model built on variant. A Value is
// one of five alternatives: String, Number, Array, Object or Null. Arrays and
// objects contain Values themselves, so they are held through variant.Box.
//
// Object members keep insertion order. Rendering and encoding walk them in
// that order, so output is reproducible.
//
// Common usage:
// - Str/Num/NullValue/Arr/Obj/M: build values
// - Kind, AsString, AsNumber, AsArray, AsObject: inspect values
// - Render/String: the compact text form, or an indented one via WithIndent
// - MarshalJSON/UnmarshalJSON/Parse: order-preserving JSON codec
// - MarshalYAML/UnmarshalYAML/ParseYAML/EncodeYAML: YAML codec
package jsondoc
