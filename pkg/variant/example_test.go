package variant_test

import (
	"errors"
	"fmt"

	"github.com/ib-77/variant/pkg/variant"
)

func Example() {
	v := variant.New2At0[int, string](42)
	fmt.Println(v.Index(), variant.Is[int](v), v)

	_, err := variant.Get[string](v)
	fmt.Println(errors.Is(err, variant.ErrTypeMismatch))

	v.Set1("hello")
	s, _ := v.Get1()
	fmt.Println(v.Index(), s)
	// Output:
	// 0 true 42
	// true
	// 1 hello
}

func ExampleMatch3() {
	describe := func(v variant.Of3[int, float64, string]) string {
		return variant.Match3(v,
			func(i int) string { return fmt.Sprintf("int %d", i) },
			func(f float64) string { return fmt.Sprintf("float %g", f) },
			func(s string) string { return fmt.Sprintf("string %q", s) },
		)
	}

	fmt.Println(describe(variant.New3At0[int, float64, string](7)))
	fmt.Println(describe(variant.New3At1[int, float64, string](2.5)))
	fmt.Println(describe(variant.New3At2[int, float64, string]("x")))
	// Output:
	// int 7
	// float 2.5
	// string "x"
}

func ExampleVariant_Copy() {
	copyable := variant.New2At1[int, string]("payload")
	cp, err := copyable.Copy()
	fmt.Println(cp, err)

	// a slice shares its backing array and has no Clone method
	shared := variant.New2At0[int, []int](1)
	_, err = shared.Copy()
	fmt.Println(errors.Is(err, variant.ErrNotCopyable))
	// Output:
	// payload <nil>
	// true
}

func ExampleIndexOf() {
	var v variant.Of3[int, error, error]

	_, err := variant.IndexOf[error](v)
	fmt.Println(errors.Is(err, variant.ErrAmbiguousAlternative))

	i, _ := variant.IndexOf[int](v)
	fmt.Println(i)
	// Output:
	// true
	// 0
}
