package main

import (
	"fmt"
	"io"

	"github.com/marcodamonte/lambdas/callable"
)

// demoCaptures walks through the three capture flavors:
//
//  1. no capture — an immediately-invoked function literal
//  2. capture by value — callable.Bind copies the variable at bind time
//  3. capture by reference — callable.BindRef aliases the variable, so
//     the functor can mutate it from the outside
func demoCaptures(w io.Writer) {
	// A function literal can be invoked on the spot; only its result is kept.
	larger := func(a, b int) int {
		if a > b {
			return a
		}
		return b
	}(2, 3)
	fmt.Fprintln(w, "larger of 2 and 3:", larger)

	// Bind freezes a copy of two. Reassigning two after this line would
	// not change what lessThan2 returns.
	two := 2
	lessThan2 := callable.Bind(two, func(a, b int) int {
		if a < b {
			return a
		}
		return b
	})
	smaller := lessThan2.Invoke(3)
	fmt.Fprintln(w, "smaller of 2 and 3:", smaller)

	// BindRef aliases thing instead of copying it: the functor writes
	// through the pointer and the change is visible out here. thing starts
	// at Go's zero value — there are no uninitialized locals.
	var thing int
	fmt.Fprintln(w, "thing:", thing)
	setThing := callable.BindRef(&thing, func(a *int, b int) int {
		*a = b
		return *a
	})
	setThing.Invoke(2)
	fmt.Fprintln(w, "thing:", thing)
}
