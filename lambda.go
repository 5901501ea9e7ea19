package main

import (
	"fmt"
	"io"

	"github.com/marcodamonte/lambdas/callable"
)

// demoLambda does exactly what demoFunctor does, but with an anonymous
// closure instead of a named struct. The function literal and the struct
// functor are interchangeable at the call site: wrapping the literal in
// callable.Func gives it the same Invocable capability.
func demoLambda(w io.Writer) {
	addition := func(a, b int) int {
		return a + b
	}

	// Called directly, like any function value. The result is discarded;
	// nothing is printed by the call itself.
	fmt.Fprintln(w, "calling lambda defined function:")
	_ = addition(2, 3)

	// Routed through the generic invoker, which prints the result: 5.
	fmt.Fprintln(w, "passing lambda defined function into template function to be called:")
	callable.Apply[int, int, int](w, 2, 3, callable.Func[int, int, int](addition))
}
