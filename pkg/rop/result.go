package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/variant/pkg/variant"
)

const (
	success variant.Index = iota
	failure
	cancelled
)

// Result holds exactly one of a success value, a failure error or a
// cancellation error. Failure and cancellation share the error type and are
// told apart by position.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	u         variant.Of3[T, error, error]
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		u:         variant.New3At0[T, error, error](r),
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		u:         variant.New3At1[T, error, error](err),
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		u:         variant.New3At2[T, error, error](err),
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// CancelFrom carries the identity of from into a cancelled Result[Out].
// A failed or cancelled input keeps its error; a successful one is cancelled
// with ErrCancelled.
func CancelFrom[In, Out any](from Result[In]) Result[Out] {
	err := from.Err()
	if err == nil {
		err = ErrCancelled
	}
	return Result[Out]{
		u:         variant.New3At2[Out, error, error](err),
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Match calls exactly one handler, chosen by the state of r.
func Match[T, R any](r Result[T],
	onSuccess func(T) R,
	onError func(error) R,
	onCancel func(error) R) R {
	return variant.Match3(r.u, onSuccess, onError, onCancel)
}

// Result returns the successful value, or the zero T.
func (r Result[T]) Result() T {
	v, _ := r.u.Get0()
	return v
}

func (r Result[T]) Err() error {
	switch r.u.Index() {
	case failure:
		err, _ := r.u.Get1()
		return err
	case cancelled:
		err, _ := r.u.Get2()
		return err
	}
	return nil
}

func (r Result[T]) IsSuccess() bool {
	return r.u.Holds(success)
}

func (r Result[T]) IsFailure() bool {
	return r.u.Holds(failure)
}

func (r Result[T]) IsCancel() bool {
	return r.u.Holds(cancelled)
}

func (r Result[T]) HasResult() bool {
	return r.IsSuccess()
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// IsEmpty reports a zero Result that no constructor produced. Such a result
// still holds the success alternative with the zero T.
func (r Result[T]) IsEmpty() bool {
	return r.id == uuid.Nil
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) String() string {
	if r.IsEmpty() {
		return "empty"
	}
	return Match(r,
		func(v T) string { return fmt.Sprintf("success(%v)", v) },
		func(err error) string { return fmt.Sprintf("failure(%v)", err) },
		func(err error) string { return fmt.Sprintf("cancelled(%v)", err) },
	)
}
