package main

import (
	"fmt"
	"io"

	"github.com/marcodamonte/lambdas/callable"
)

// demoFunctor passes a hand-written struct functor through the generic
// invoker. callable.PairPrinter is what the compiler builds for you every
// time you write a closure: a struct with an Invoke method. Here the
// struct is spelled out, so there is nothing hidden — no captured state,
// just a type that satisfies callable.Invocable.
func demoFunctor(w io.Writer) {
	fmt.Fprintln(w, "calling functor with template function:")

	// Invoke prints "2 3"; Apply then prints the returned 0.
	p := callable.PairPrinter{Out: w}
	callable.Apply[int, int, int](w, 2, 3, p)
}
