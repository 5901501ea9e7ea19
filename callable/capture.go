package callable

// Bound is a value-capturing functor: Bind copies a into the struct, and
// Invoke always sees that frozen copy. Writes to the source variable after
// Bind never reach a Bound — the same isolation you get from a closure
// that captures a loop-local copy.
type Bound[A, B, R any] struct {
	a A
	f func(A, B) R
}

// Bind freezes a copy of a as the first argument of f and returns the
// resulting one-argument functor.
func Bind[A, B, R any](a A, f func(A, B) R) Bound[A, B, R] {
	return Bound[A, B, R]{a: a, f: f}
}

// Invoke calls f with the frozen copy and b.
func (c Bound[A, B, R]) Invoke(b B) R { return c.f(c.a, b) }

// Ref is the reference-capturing counterpart of Bound: instead of copying
// the variable it aliases it through a pointer. Invoke observes every write
// made to the cell after BindRef, and f may write back through the pointer.
//
// The pointer is non-owning: the cell must outlive the Ref. A Ref kept
// around after its cell's scope ends pins the cell on the heap — harmless
// in Go, but worth knowing when translating this pattern to languages
// where the alias would dangle.
type Ref[A, B, R any] struct {
	cell *A
	f    func(*A, B) R
}

// BindRef aliases the variable at cell as the first argument of f and
// returns the resulting one-argument functor.
func BindRef[A, B, R any](cell *A, f func(*A, B) R) Ref[A, B, R] {
	return Ref[A, B, R]{cell: cell, f: f}
}

// Invoke calls f with the aliased cell and b.
func (r Ref[A, B, R]) Invoke(b B) R { return r.f(r.cell, b) }
