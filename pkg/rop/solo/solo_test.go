package solo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/variant/pkg/rop"
)

// helper validators for int values that ignore prior result and validate captured value
func validateNonNegative(v int) func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
	return func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		if v < 0 {
			return rop.Fail[int](errors.New("negative"))
		}
		return rop.Success(v)
	}
}

func validateEven(v int) func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
	return func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		if v%2 != 0 {
			return rop.Fail[int](errors.New("odd"))
		}
		return rop.Success(v)
	}
}

func positive(_ context.Context, in int) (bool, string) {
	return in > 0, "not positive"
}

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Validate(ctx, 5, positive)
	require.True(t, ok.IsSuccess())
	assert.Equal(t, 5, ok.Result())

	bad := Validate(ctx, -5, positive)
	require.True(t, bad.IsFailure())
	assert.EqualError(t, bad.Err(), "not positive")

	called := false
	cancelled := AndValidate(ctx, Cancel[int](context.Canceled), func(context.Context, int) (bool, string) {
		called = true
		return true, ""
	})
	assert.True(t, cancelled.IsCancel())
	assert.False(t, called)
}

func TestValidateAll_BreakOnFirst(t *testing.T) {
	t.Parallel()

	executed := 0
	count := func(f func(context.Context, rop.Result[int]) rop.Result[int]) func(context.Context, rop.Result[int]) rop.Result[int] {
		return func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
			executed++
			return f(ctx, in)
		}
	}

	res := ValidateAll(context.Background(), rop.Success(-1), true,
		count(validateNonNegative(-1)), count(validateEven(-1)))

	require.True(t, res.IsFailure())
	assert.Equal(t, 1, executed)
	assert.EqualError(t, res.Err(), "negative")
}

func TestValidateAll_AccumulateErrors(t *testing.T) {
	t.Parallel()

	v := -3
	res := ValidateAll(context.Background(), rop.Success(v), false,
		validateNonNegative(v), validateNonNegative(v), validateEven(v))

	require.True(t, res.IsFailure())
	errs := rop.GetErrors(res.Err())
	require.Len(t, errs, 3)
	assert.EqualError(t, errs[0], "negative")
	assert.EqualError(t, errs[1], "negative")
	assert.EqualError(t, errs[2], "odd")
}

func TestValidateAll_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := ValidateAll(ctx, rop.Success(42), false, validateNonNegative(-1))
	require.True(t, res.IsSuccess())
	assert.Equal(t, 42, res.Result())
}

func TestSwitchAndMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	toText := func(_ context.Context, v int) string { return strconv.Itoa(v) }

	assert.Equal(t, "12", Map(ctx, rop.Success(12), toText).Result())

	failed := Map(ctx, rop.Fail[int](errors.New("boom")), toText)
	assert.True(t, failed.IsFailure())
	assert.EqualError(t, failed.Err(), "boom")

	cancelled := Switch(ctx, rop.Cancel[int](context.Canceled),
		func(context.Context, int) rop.Result[string] {
			t.Fatal("success handler called on a cancelled input")
			return rop.Success("")
		})
	assert.True(t, cancelled.IsCancel())
	assert.ErrorIs(t, cancelled.Err(), context.Canceled)
}

func TestTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	parsed := Try(ctx, rop.Success("17"), func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	require.True(t, parsed.IsSuccess())
	assert.Equal(t, 17, parsed.Result())

	bad := Try(ctx, rop.Success("x"), func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	assert.True(t, bad.IsFailure())
	assert.ErrorIs(t, bad.Err(), strconv.ErrSyntax)
}

func TestTeeHelpers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen []string
	Tee(ctx, rop.Success(1), func(context.Context, rop.Result[int]) { seen = append(seen, "tee") })
	Tee(ctx, rop.Fail[int](errors.New("x")), func(context.Context, rop.Result[int]) { seen = append(seen, "skipped") })
	TeeIf(ctx, rop.Success(2),
		func(_ context.Context, r rop.Result[int]) bool { return r.Result() > 5 },
		func(context.Context, rop.Result[int]) { seen = append(seen, "skipped") })

	record := func(kind string) func(context.Context, error) {
		return func(context.Context, error) { seen = append(seen, kind) }
	}
	onValue := func(context.Context, int) { seen = append(seen, "value") }
	DoubleTee(ctx, rop.Success(3), onValue, record("error"), record("cancel"))
	DoubleTee(ctx, rop.Fail[int](errors.New("x")), onValue, record("error"), record("cancel"))
	DoubleTee(ctx, rop.Cancel[int](errors.New("y")), onValue, record("error"), record("cancel"))

	assert.Equal(t, []string{"tee", "value", "error", "cancel"}, seen)
}

func TestDoubleMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var mapped []error
	onErr := func(_ context.Context, err error) string { mapped = append(mapped, err); return "" }

	out := DoubleMap(ctx, rop.Cancel[int](context.Canceled),
		func(context.Context, int) string { return "ok" }, onErr, onErr)

	assert.True(t, out.IsCancel())
	assert.Equal(t, []error{context.Canceled}, mapped)
}

func TestFailOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	failing := func(context.Context, int) error { return errors.New("rejected") }

	out := FailOnError(ctx, rop.Success(1), failing)
	assert.True(t, out.IsFailure())
	assert.EqualError(t, out.Err(), "rejected")

	in := rop.Success(2)
	assert.Equal(t, in, FailOnError(ctx, in, func(context.Context, int) error { return nil }))
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	describe := func(r rop.Result[int]) string {
		return Finally(ctx, r,
			func(context.Context, int) string { return "ok" },
			func(context.Context, error) string { return "fail" },
			func(context.Context, error) string { return "cancel" },
		)
	}

	assert.Equal(t, "ok", describe(Succeed(2)))
	assert.Equal(t, "fail", describe(Fail[int](errors.New("e"))))
	assert.Equal(t, "cancel", describe(Cancel[int](errors.New("c"))))
}
