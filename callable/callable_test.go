package callable_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/lambdas/callable"
)

func add(a, b int) int { return a + b }

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ── Generic invoker ──────────────────────────────────────────────────────────

// TestApplyReturnsAndPrints verifies the invoker's full contract: it returns
// the callable's result and writes that result, newline-terminated, to w.
func TestApplyReturnsAndPrints(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	got := callable.Apply[int, int, int](&buf, 2, 3, callable.Func[int, int, int](add))

	require.Equal(t, 5, got)
	require.Equal(t, "5\n", buf.String())
}

// TestApplyWithStructFunctor routes a struct functor through the invoker.
// PairPrinter prints its inputs and returns 0, so the transcript is the
// functor's own line followed by the invoker's print of the result.
func TestApplyWithStructFunctor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := callable.PairPrinter{Out: &buf}
	got := callable.Apply[int, int, int](&buf, 2, 3, p)

	require.Equal(t, 0, got)
	require.Equal(t, "2 3\n0\n", buf.String())
}

// ── Struct functors ──────────────────────────────────────────────────────────

func TestPairPrinterIgnoresInputsForResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := callable.PairPrinter{Out: &buf}

	require.Equal(t, 0, p.Invoke(17, -6))
	require.Equal(t, "17 -6\n", buf.String())
}

// TestBindFreezesValue pins the value-capture isolation law: the copy is
// taken at Bind time, so later writes to the source variable are invisible
// to the functor.
func TestBindFreezesValue(t *testing.T) {
	t.Parallel()

	two := 2
	lessThan2 := callable.Bind(two, min)

	require.Equal(t, 2, lessThan2.Invoke(3))

	two = 99 // must not leak into the functor
	require.Equal(t, 2, lessThan2.Invoke(3))
	require.Equal(t, 1, lessThan2.Invoke(1))
}

// TestBindRefAliasesCell pins the reference-capture mutation law: the
// functor writes through the pointer, and the write is visible on the
// original variable immediately after Invoke.
func TestBindRefAliasesCell(t *testing.T) {
	t.Parallel()

	var thing int
	setThing := callable.BindRef(&thing, func(a *int, b int) int {
		*a = b
		return *a
	})

	require.Equal(t, 0, thing)
	setThing.Invoke(2)
	require.Equal(t, 2, thing)
}

// TestBindRefObservesExternalWrites covers the other direction of aliasing:
// writes made to the cell between invocations are seen by the functor.
func TestBindRefObservesExternalWrites(t *testing.T) {
	t.Parallel()

	cell := 1
	double := callable.BindRef(&cell, func(a *int, factor int) int {
		return *a * factor
	})

	require.Equal(t, 2, double.Invoke(2))

	cell = 10
	require.Equal(t, 20, double.Invoke(2))
}

// ── Type erasure ─────────────────────────────────────────────────────────────

// TestFuncErasure stores a closure behind the Invocable interface and calls
// it through the uniform contract only.
func TestFuncErasure(t *testing.T) {
	t.Parallel()

	var multiply callable.Invocable[int, int, int] = callable.Func[int, int, int](func(a, b int) int {
		return a * b
	})

	require.Equal(t, 6, multiply.Invoke(2, 3))
}

// TestUnaryErasure does the same for one-argument callables: a closure, a
// Bound, and a Ref are interchangeable behind Unary.
func TestUnaryErasure(t *testing.T) {
	t.Parallel()

	cell := 5
	unaries := []callable.Unary[int, int]{
		callable.Func1[int, int](func(b int) int { return b + 1 }),
		callable.Bind(1, add),
		callable.BindRef(&cell, func(a *int, b int) int { return *a - b + 2 }),
	}

	for _, u := range unaries {
		require.Equal(t, 4, u.Invoke(3))
	}
}
