package main

import (
	"io"
	"os"
)

// Each demo covers one aspect of closures and functor-style callables:
// a struct functor through a generic invoker, an anonymous closure through
// the same invoker, capture by value vs capture by reference, and a
// type-erased callable plus a closure-driven counting helper.
//
// Run:
//
//	go run .
//
// Press Enter after each block to continue. Piped input (including none at
// all) runs straight through.
func main() {
	run(os.Stdin, os.Stdout)
}

// run executes the four demo blocks in order, pausing after each one.
// Input and output are injected so tests can drive a full run and inspect
// the exact transcript.
func run(in io.Reader, w io.Writer) {
	p := newPacer(in)

	demoFunctor(w)
	p.wait()

	demoLambda(w)
	p.wait()

	demoCaptures(w)
	p.wait()

	demoErasure(w)
	p.wait()
}
