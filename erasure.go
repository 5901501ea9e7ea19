package main

import (
	"fmt"
	"io"

	"github.com/marcodamonte/lambdas/callable"
	"github.com/marcodamonte/lambdas/seqs"
)

// demoErasure shows two standard uses of closures as values: storing one
// behind a uniform call contract, and handing one to a library helper as
// a predicate.
func demoErasure(w io.Writer) {
	// The interface variable erases the concrete type entirely: any
	// Invocable with this signature could sit behind multiply.
	var multiply callable.Invocable[int, int, int] = callable.Func[int, int, int](func(a, b int) int {
		return a * b
	})
	fmt.Fprintf(w, "multiply(2, 3): %d\n", multiply.Invoke(2, 3))

	// CountIf walks the slice once and applies the predicate to each
	// element; 17, 99 and 33 pass, so the count is 3. The label and count
	// are printed with no separating space.
	numbers := []int{2, 5, 17, 99, 33, -6}
	greaterThan10 := func(other int) bool {
		return other > 10
	}
	total := seqs.CountIf(numbers, greaterThan10)
	fmt.Fprintf(w, "numbers in array greater than 10%d\n", total)
}
