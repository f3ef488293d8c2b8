// Package task runs backend requests in the background and delivers their
// results one at a time.
//
// Requests run concurrently, each on its own goroutine. Their success and
// failure callbacks never overlap: a callback holds the loop lock until it
// returns, and code outside callbacks that touches the same state uses Do.
// A callback may start new requests with Go, but must not call Do.
package task

import (
	"context"
	"sync"
)

type Loop struct {
	ctx context.Context
	mu  sync.Mutex
	wg  sync.WaitGroup
}

// NewLoop returns a loop whose requests run under ctx. Cancelling ctx does
// not stop the loop; requests observe the cancellation and report failure
// through their callbacks.
func NewLoop(ctx context.Context) *Loop {
	return &Loop{ctx: ctx}
}

// Do runs fn holding the loop lock.
func (l *Loop) Do(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn()
}

// Wait blocks until every request started with Go, including requests
// started from callbacks, has delivered its result.
func (l *Loop) Wait() {
	l.wg.Wait()
}

// Go starts call in the background. When it returns, onSuccess or onError
// runs under the loop lock. Either handler may be nil.
func Go[T any](l *Loop, call func(ctx context.Context) (T, error), onSuccess func(T), onError func(error)) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		v, err := call(l.ctx)

		l.mu.Lock()
		defer l.mu.Unlock()

		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		if onSuccess != nil {
			onSuccess(v)
		}
	}()
}
