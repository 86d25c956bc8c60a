package runtime

import "context"

// command is one script submission traveling from a caller to the worker.
// The context rides along for trace propagation only; execution never
// observes cancellation through it.
type command struct {
	id     string
	script string
	ctx    context.Context
	reply  chan response
}

// response is the single message a command's reply channel ever carries.
// The channel has capacity 1 so the worker's send succeeds even when the
// caller has abandoned its wait.
type response struct {
	result *Result
	err    error
}

// queue is an unbounded multi-producer single-consumer FIFO. Producers send
// on in and never block beyond a handoff to the pump; the worker receives
// from out in submission order. Closing in flushes everything buffered to
// out, then closes out.
type queue struct {
	in  chan command
	out chan command
}

func newQueue() *queue {
	q := &queue{
		in:  make(chan command),
		out: make(chan command),
	}
	go q.pump()
	return q
}

// pump shuttles commands from in to out through an elastic buffer, so a
// slow consumer never backs up producers.
func (q *queue) pump() {
	var buf []command

	in := q.in
	for in != nil || len(buf) > 0 {
		var (
			out  chan command
			next command
		)
		if len(buf) > 0 {
			out = q.out
			next = buf[0]
		}

		select {
		case cmd, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			buf = append(buf, cmd)
		case out <- next:
			buf = buf[1:]
		}
	}

	close(q.out)
}
