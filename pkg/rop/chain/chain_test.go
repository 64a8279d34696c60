package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/variant/pkg/rop"
)

func TestStart_Result(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := rop.Success(10)
	out := Start(ctx, base).Result()
	require.True(t, out.IsSuccess())
	assert.Equal(t, 10, out.Result())
	assert.Equal(t, base.Id(), out.Id())

	assert.Equal(t, 7, FromValue(ctx, 7).Result().Result())
}

func TestThen_ShortCircuit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name  string
		input rop.Result[int]
	}{
		{"failure", rop.Fail[int](errors.New("boom"))},
		{"cancel", rop.Cancel[int](errors.New("cancel"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			out := Then(Start(ctx, tt.input), func(context.Context, int) rop.Result[string] {
				called = true
				return rop.Success("ok")
			}).Result()

			assert.False(t, called)
			assert.Equal(t, tt.input.IsCancel(), out.IsCancel())
			assert.Equal(t, tt.input.IsFailure(), out.IsFailure())
			assert.Equal(t, tt.input.Err(), out.Err())
		})
	}
}

func TestThenTry_MapAndValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Map(
		ThenTry(FromValue(ctx, "21"), func(_ context.Context, s string) (int, error) {
			return strconv.Atoi(s)
		}).Validate(func(_ context.Context, n int) (bool, string) {
			return n < 100, "too large"
		}),
		func(_ context.Context, n int) int { return n * 2 },
	).Result()
	require.True(t, out.IsSuccess())
	assert.Equal(t, 42, out.Result())

	rejected := FromValue(ctx, 500).Validate(func(_ context.Context, n int) (bool, string) {
		return n < 100, "too large"
	}).Result()
	assert.True(t, rejected.IsFailure())
	assert.EqualError(t, rejected.Err(), "too large")

	failed := ThenTry(FromValue(ctx, "x"), func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	}).Result()
	assert.ErrorIs(t, failed.Err(), strconv.ErrSyntax)
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	FromValue(ctx, 11).Ensure(func(context.Context, int) { calls++ })
	Start(ctx, rop.Fail[int](errors.New("x"))).Ensure(func(context.Context, int) { calls++ })
	assert.Equal(t, 1, calls)
}

func TestGuard(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	live := FromValue(ctx, 1)
	assert.True(t, live.Guard().Result().IsSuccess())

	cancel()
	out := live.Guard().Result()
	assert.True(t, out.IsCancel())
	assert.ErrorIs(t, out.Err(), context.Canceled)

	failed := Start(ctx, rop.Fail[int](errors.New("first"))).Guard().Result()
	assert.True(t, failed.IsFailure())
	assert.EqualError(t, failed.Err(), "first")
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	finish := func(c *Chain[int]) string {
		return Finally(c,
			func(context.Context, int) string { return "ok" },
			func(context.Context, error) string { return "fail" },
			func(context.Context, error) string { return "cancel" },
		)
	}

	assert.Equal(t, "ok", finish(FromValue(ctx, 2)))
	assert.Equal(t, "fail", finish(Start(ctx, rop.Fail[int](errors.New("e")))))
	assert.Equal(t, "cancel", finish(Start(ctx, rop.Cancel[int](errors.New("c")))))
}
