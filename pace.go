package main

import (
	"bufio"
	"io"
)

// pacer blocks between demo blocks until the user presses Enter, so each
// block can be read before the next one scrolls in. The line's content is
// discarded. Once the input hits EOF (piped input, tests), every further
// wait is a no-op.
type pacer struct {
	in   *bufio.Reader
	done bool
}

func newPacer(in io.Reader) *pacer {
	return &pacer{in: bufio.NewReader(in)}
}

// wait consumes one line of input. Read errors are not reported; they just
// disable pacing for the rest of the run.
func (p *pacer) wait() {
	if p.done {
		return
	}
	if _, err := p.in.ReadString('\n'); err != nil {
		p.done = true
	}
}
