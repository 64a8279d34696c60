package rop

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_States(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	stop := errors.New("stop")

	tests := []struct {
		name      string
		r         Result[int]
		success   bool
		failure   bool
		cancelled bool
		value     int
		err       error
	}{
		{"success", Success(42), true, false, false, 42, nil},
		{"failure", Fail[int](boom), false, true, false, 0, boom},
		{"cancel", Cancel[int](stop), false, false, true, 0, stop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.success, tt.r.IsSuccess())
			assert.Equal(t, tt.success, tt.r.HasResult())
			assert.Equal(t, tt.failure, tt.r.IsFailure())
			assert.Equal(t, tt.cancelled, tt.r.IsCancel())
			assert.Equal(t, tt.value, tt.r.Result())
			assert.Equal(t, tt.err, tt.r.Err())
			assert.False(t, tt.r.IsEmpty())
			assert.NotEqual(t, uuid.Nil, tt.r.Id())
			assert.False(t, tt.r.CreatedAt().IsZero())
		})
	}
}

func TestResult_FailureAndCancelShareErrorType(t *testing.T) {
	t.Parallel()

	// both alternatives are error; only the position tells them apart
	err := errors.New("same")
	f := Fail[string](err)
	c := Cancel[string](err)

	assert.Equal(t, f.Err(), c.Err())
	assert.True(t, f.IsFailure())
	assert.False(t, f.IsCancel())
	assert.True(t, c.IsCancel())
	assert.False(t, c.IsFailure())
}

func TestResult_Empty(t *testing.T) {
	t.Parallel()

	var r Result[string]
	assert.True(t, r.IsEmpty())
	assert.True(t, r.IsSuccess())
	assert.Equal(t, "", r.Result())
	assert.NoError(t, r.Err())
	assert.Equal(t, "empty", r.String())
}

func TestMatch_CallsOneHandler(t *testing.T) {
	t.Parallel()

	calls := map[string]int{}
	handle := func(r Result[int]) string {
		return Match(r,
			func(v int) string { calls["success"]++; return fmt.Sprint(v) },
			func(err error) string { calls["failure"]++; return err.Error() },
			func(err error) string { calls["cancel"]++; return err.Error() },
		)
	}

	assert.Equal(t, "7", handle(Success(7)))
	assert.Equal(t, "bad", handle(Fail[int](errors.New("bad"))))
	assert.Equal(t, "late", handle(Cancel[int](errors.New("late"))))
	assert.Equal(t, map[string]int{"success": 1, "failure": 1, "cancel": 1}, calls)
}

func TestCancelFrom(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := Fail[int](boom)
	out := CancelFrom[int, string](src)

	assert.True(t, out.IsCancel())
	assert.ErrorIs(t, out.Err(), boom)
	assert.Equal(t, src.Id(), out.Id())
	assert.Equal(t, src.CreatedAt(), out.CreatedAt())

	ok := Success(1)
	fromOk := CancelFrom[int, int](ok)
	require.True(t, fromOk.IsCancel())
	assert.ErrorIs(t, fromOk.Err(), ErrCancelled)
	assert.True(t, IsCancellationError(fromOk.Err()))
}

func TestResult_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "success(3)", Success(3).String())
	assert.Equal(t, "failure(x)", Fail[int](errors.New("x")).String())
	assert.Equal(t, "cancelled(context canceled)", Cancel[int](context.Canceled).String())
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	a, b := errors.New("a"), errors.New("b")

	assert.Empty(t, GetErrors(nil))
	assert.Equal(t, []error{a}, GetErrors(a))
	assert.Equal(t, []error{a, b}, GetErrors(errors.Join(a, b)))
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCancellationError(context.Canceled))
	assert.True(t, IsCancellationError(fmt.Errorf("wrapped: %w", context.DeadlineExceeded)))
	assert.True(t, IsCancellationError(ErrCancelled))
	assert.False(t, IsCancellationError(errors.New("other")))
	assert.False(t, IsCancellationError(nil))
}
