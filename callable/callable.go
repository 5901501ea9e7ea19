// Package callable models functors — values that can be invoked like
// functions — as an explicit capability instead of leaning on Go's
// anonymous function types. It provides:
//
//   - Invocable / Unary, the capability interfaces
//   - Func / Func1, adapters that store any closure of matching signature
//   - Bound and Ref, struct functors that capture state by copy or by alias
//   - Apply, a generic higher-order invoker
//
// The point is pedagogical: every closure the Go compiler synthesizes for
// you can be written out by hand as a struct with an Invoke method, and
// seeing both forms side by side makes capture semantics explicit.
package callable

import (
	"fmt"
	"io"
	"os"
)

// Invocable is the capability shared by every two-argument callable in this
// module: structs with an Invoke method and adapted closures alike.
type Invocable[A, B, R any] interface {
	Invoke(a A, b B) R
}

// Unary is the one-argument counterpart of Invocable. Capture variants
// (Bound, Ref) satisfy it: binding consumes one argument slot, leaving one.
type Unary[A, R any] interface {
	Invoke(a A) R
}

// Func adapts an ordinary function or closure to Invocable. Assigning a
// closure to a Func erases its synthesized type behind a fixed signature;
// storing the Func in an Invocable interface variable erases even that,
// leaving only the uniform call contract.
type Func[A, B, R any] func(A, B) R

// Invoke calls the wrapped function.
func (f Func[A, B, R]) Invoke(a A, b B) R { return f(a, b) }

// Func1 adapts a one-argument function to Unary.
type Func1[A, R any] func(A) R

// Invoke calls the wrapped function.
func (f Func1[A, R]) Invoke(a A) R { return f(a) }

// Apply invokes op with a and b, writes the result followed by a newline to
// w, and returns the result. It is generic over the callable's type: any
// Invocable with a matching signature works, and a mismatched one is
// rejected at compile time rather than at run time.
func Apply[A, B, R any](w io.Writer, a A, b B, op Invocable[A, B, R]) R {
	result := op.Invoke(a, b)
	fmt.Fprintln(w, result)
	return result
}

// PairPrinter is a stateless callable object: Invoke prints its two inputs
// separated by a space and always returns 0, ignoring the inputs for the
// return value. It is the hand-written struct equivalent of a closure that
// captures nothing.
type PairPrinter struct {
	// Out is where Invoke writes. If nil, os.Stdout is used.
	Out io.Writer
}

// Invoke prints "a b" to the configured writer and returns 0.
func (p PairPrinter) Invoke(a, b int) int {
	fmt.Fprintf(p.out(), "%d %d\n", a, b)
	return 0
}

func (p PairPrinter) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

// Compile-time interface coverage for the variants defined in this package.
var (
	_ Invocable[int, int, int] = Func[int, int, int](nil)
	_ Invocable[int, int, int] = PairPrinter{}
	_ Unary[int, int]          = Func1[int, int](nil)
	_ Unary[int, int]          = Bound[int, int, int]{}
	_ Unary[int, int]          = Ref[int, int, int]{}
)
