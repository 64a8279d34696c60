package variant

// Match2 invokes the handler of the live alternative with a copy of the
// payload; Match3..Match5 do the same for longer lists.
//
// Every handler must be non-nil and all of them return the same R; exactly one
// runs, exactly once.
func Match2[A, B, R any](v Of2[A, B], f0 func(A) R, f1 func(B) R) R {
	requireHandlers(f0 == nil, f1 == nil)
	return dispatch(&v, byValue(f0), byValue(f1), never[R], never[R], never[R])
}

// MatchPtr2 passes a pointer to the live payload, so handlers may mutate it.
func MatchPtr2[A, B, R any](v *Of2[A, B], f0 func(*A) R, f1 func(*B) R) R {
	requireHandlers(f0 == nil, f1 == nil)
	return dispatch(v, f0, f1, never[R], never[R], never[R])
}

// MatchMove2 moves the live payload out of v, leaving its moved-from state.
func MatchMove2[A, B, R any](v *Of2[A, B], f0 func(A) R, f1 func(B) R) R {
	requireHandlers(f0 == nil, f1 == nil)
	return dispatch(v, byMove(f0), byMove(f1), never[R], never[R], never[R])
}

// Match3 passes a copy of the live payload to its handler.
func Match3[A, B, C, R any](v Of3[A, B, C], f0 func(A) R, f1 func(B) R, f2 func(C) R) R {
	requireHandlers(f0 == nil, f1 == nil, f2 == nil)
	return dispatch(&v, byValue(f0), byValue(f1), byValue(f2), never[R], never[R])
}

// MatchPtr3 passes a pointer to the live payload, so handlers may mutate it.
func MatchPtr3[A, B, C, R any](v *Of3[A, B, C], f0 func(*A) R, f1 func(*B) R, f2 func(*C) R) R {
	requireHandlers(f0 == nil, f1 == nil, f2 == nil)
	return dispatch(v, f0, f1, f2, never[R], never[R])
}

// MatchMove3 moves the live payload out of v, leaving its moved-from state.
func MatchMove3[A, B, C, R any](v *Of3[A, B, C], f0 func(A) R, f1 func(B) R, f2 func(C) R) R {
	requireHandlers(f0 == nil, f1 == nil, f2 == nil)
	return dispatch(v, byMove(f0), byMove(f1), byMove(f2), never[R], never[R])
}

// Match4 passes a copy of the live payload to its handler.
func Match4[A, B, C, D, R any](v Of4[A, B, C, D], f0 func(A) R, f1 func(B) R, f2 func(C) R, f3 func(D) R) R {
	requireHandlers(f0 == nil, f1 == nil, f2 == nil, f3 == nil)
	return dispatch(&v, byValue(f0), byValue(f1), byValue(f2), byValue(f3), never[R])
}

// MatchPtr4 passes a pointer to the live payload, so handlers may mutate it.
func MatchPtr4[A, B, C, D, R any](v *Of4[A, B, C, D], f0 func(*A) R, f1 func(*B) R, f2 func(*C) R, f3 func(*D) R) R {
	requireHandlers(f0 == nil, f1 == nil, f2 == nil, f3 == nil)
	return dispatch(v, f0, f1, f2, f3, never[R])
}

// MatchMove4 moves the live payload out of v, leaving its moved-from state.
func MatchMove4[A, B, C, D, R any](v *Of4[A, B, C, D], f0 func(A) R, f1 func(B) R, f2 func(C) R, f3 func(D) R) R {
	requireHandlers(f0 == nil, f1 == nil, f2 == nil, f3 == nil)
	return dispatch(v, byMove(f0), byMove(f1), byMove(f2), byMove(f3), never[R])
}

// Match5 passes a copy of the live payload to its handler.
func Match5[A, B, C, D, E, R any](v Of5[A, B, C, D, E], f0 func(A) R, f1 func(B) R, f2 func(C) R, f3 func(D) R, f4 func(E) R) R {
	requireHandlers(f0 == nil, f1 == nil, f2 == nil, f3 == nil, f4 == nil)
	return dispatch(&v, byValue(f0), byValue(f1), byValue(f2), byValue(f3), byValue(f4))
}

// MatchPtr5 passes a pointer to the live payload, so handlers may mutate it.
func MatchPtr5[A, B, C, D, E, R any](v *Of5[A, B, C, D, E], f0 func(*A) R, f1 func(*B) R, f2 func(*C) R, f3 func(*D) R, f4 func(*E) R) R {
	requireHandlers(f0 == nil, f1 == nil, f2 == nil, f3 == nil, f4 == nil)
	return dispatch(v, f0, f1, f2, f3, f4)
}

// MatchMove5 moves the live payload out of v, leaving its moved-from state.
func MatchMove5[A, B, C, D, E, R any](v *Of5[A, B, C, D, E], f0 func(A) R, f1 func(B) R, f2 func(C) R, f3 func(D) R, f4 func(E) R) R {
	requireHandlers(f0 == nil, f1 == nil, f2 == nil, f3 == nil, f4 == nil)
	return dispatch(v, byMove(f0), byMove(f1), byMove(f2), byMove(f3), byMove(f4))
}
