// Package variant provides closed tagged unions: a Variant holds exactly one
// value out of a fixed, ordered list of alternative types, together with a
// discriminant recording which alternative is live.
//
// The alternative list is given by the type parameters. Of2..Of5 fix the arity;
// positions past it are filled with Unused and are never live:
//
//	v := variant.New3At0[int, float64, string](42)
//	variant.Is[int](v)          // true
//	n, _ := variant.Get[int](v) // 42
//	_, err := variant.Get[string](v)
//	errors.Is(err, variant.ErrTypeMismatch) // true
//
// Highlights:
// - NewNAtK / SetK: construct or reassign with a compile-time fixed alternative
// - Is, Get, Ptr, Take: type-directed access (value, pointer, move)
// - GetK, PtrK: index-directed access, for lists with duplicate types
// - MatchN, MatchPtrN, MatchMoveN: exhaustive visitation, one handler per alternative
// - Clone: deep copy, only compiles when every alternative implements Cloner
// - Copy, CopyFrom: deep copy gated at run time by Capabilities
// - Move, MoveFrom, Destroy: ownership transfer and release of the live payload
// - Box: single-owner heap indirection for recursive alternatives
//
// A union is a plain value: it owns its payload, never allocates for itself
// and is never empty. The zero value holds the zero value of the first
// alternative. Instances are not safe for concurrent mutation.
package variant
