package workflow

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrEmptyInput marks a submission that was ignored because its text was blank.
	ErrEmptyInput = errors.New("empty input")
	// ErrViewClosed is returned by submissions on an unmounted view.
	ErrViewClosed = errors.New("view closed")
)

// task is one in-flight provider call owned by a view.
type task struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func newTask(parent context.Context) (*task, context.Context) {
	ctx, cancel := context.WithCancel(parent)
	return &task{cancel: cancel, done: make(chan struct{})}, ctx
}

// pending tracks the single in-flight task of a view. All methods must be
// called with the owning view's mutex held.
type pending struct {
	current *task
	closed  bool
}

// start cancels whatever is in flight and registers a new task.
func (p *pending) start(parent context.Context) (*task, context.Context) {
	p.abort()
	t, ctx := newTask(parent)
	p.current = t
	return t, ctx
}

// finish reports whether t is still the task allowed to write view state,
// clearing it if so.
func (p *pending) finish(t *task) bool {
	if p.current != t {
		return false
	}
	p.current = nil
	t.cancel()
	return true
}

func (p *pending) abort() {
	if p.current != nil {
		p.current.cancel()
		p.current = nil
	}
}

func (p *pending) doneChan() <-chan struct{} {
	if p.current == nil {
		return nil
	}
	return p.current.done
}

// waitIdle blocks until p has no task in flight or ctx ends. It re-checks after
// every completed task because a newer submission may have superseded it.
func waitIdle(ctx context.Context, mu *sync.Mutex, p *pending) error {
	for {
		mu.Lock()
		done := p.doneChan()
		mu.Unlock()

		if done == nil {
			return nil
		}
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
