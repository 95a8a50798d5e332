package service

import (
	"context"
	"errors"
)

// ErrStopped is returned by Do once the dispatcher has stopped running
var ErrStopped = errors.New("dispatcher stopped")

type request struct {
	fn   func(BoardService)
	done chan struct{}
}

// Dispatcher serialises access to a BoardService from many goroutines.
// A single goroutine (Run) executes one request at a time, so every request sees the
// board between operations, never during one.
type Dispatcher struct {
	svc      BoardService
	requests chan request
	stopped  chan struct{}
}

func NewDispatcher(svc BoardService) *Dispatcher {
	return &Dispatcher{
		svc:      svc,
		requests: make(chan request),
		stopped:  make(chan struct{}),
	}
}

// Run serves requests until ctx is cancelled
func (d *Dispatcher) Run(ctx context.Context) error {
	defer close(d.stopped)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req := <-d.requests:
			req.fn(d.svc)
			close(req.done)
		}
	}
}

// Do runs fn on the dispatcher goroutine and waits for it to finish
func (d *Dispatcher) Do(ctx context.Context, fn func(BoardService)) error {
	req := request{fn: fn, done: make(chan struct{})}

	select {
	case d.requests <- req:
	case <-d.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	// Once accepted the request always completes
	<-req.done
	return nil
}
