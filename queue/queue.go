// Copyright (c) 2026 blairtcg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package queue provides a generic bounded blocking FIFO used to hand work
// from many producer goroutines to one or more consumers.
package queue

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	// ErrClosed is returned by Push after Close, and by Pop once a closed
	// queue has been drained.
	ErrClosed = errors.New("queue: closed")
	// ErrFull is returned by TryPush when a bounded queue has no free slot.
	ErrFull = errors.New("queue: full")
	// ErrEmpty is returned by TryPop when no item is pending.
	ErrEmpty = errors.New("queue: empty")
	// ErrTimeout is returned by PopTimeout when no item arrived in time.
	ErrTimeout = errors.New("queue: timed out")
)

// Queue is a thread safe FIFO with blocking Push and Pop.
//
// A Queue with a positive capacity never holds more than that many items;
// Push blocks while it is full instead of dropping. A capacity of zero or less
// makes the queue unbounded, so Push never blocks. All methods are safe for
// concurrent use.
type Queue[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond

	items    []T
	capacity int
	closed   bool
}

// New creates a Queue holding at most capacity items. A capacity of zero or
// less means unbounded.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	q := &Queue[T]{capacity: capacity}
	if capacity > 0 {
		q.items = make([]T, 0, capacity)
	}
	q.notEmpty = sync.NewCond(&q.mu)
	q.notFull = sync.NewCond(&q.mu)
	return q
}

func (q *Queue[T]) full() bool {
	return q.capacity > 0 && len(q.items) >= q.capacity
}

// Push appends item to the tail of the queue.
//
// If the queue is full, Push blocks until a consumer frees a slot or the queue
// is closed. It returns ErrClosed if the item was not accepted.
func (q *Queue[T]) Push(item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.full() && !q.closed {
		q.notFull.Wait()
	}
	if q.closed {
		return ErrClosed
	}

	q.items = append(q.items, item)
	q.notEmpty.Signal()
	return nil
}

// TryPush appends item without blocking. It returns ErrFull if the queue has
// no free slot and ErrClosed if the queue is closed.
func (q *Queue[T]) TryPush(item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}
	if q.full() {
		return ErrFull
	}

	q.items = append(q.items, item)
	q.notEmpty.Signal()
	return nil
}

// Pop removes and returns the oldest item, blocking until one is available.
//
// After Close, Pop keeps returning the remaining items and then ErrClosed.
func (q *Queue[T]) Pop() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && !q.closed {
		q.notEmpty.Wait()
	}
	return q.take()
}

// TryPop removes and returns the oldest item without blocking. It returns
// ErrEmpty when nothing is pending, or ErrClosed when the queue is closed and
// drained.
func (q *Queue[T]) TryPop() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 && !q.closed {
		var zero T
		return zero, ErrEmpty
	}
	return q.take()
}

// PopTimeout is like Pop but gives up after d and returns ErrTimeout.
// A non-positive d behaves like TryPop.
func (q *Queue[T]) PopTimeout(d time.Duration) (T, error) {
	if d <= 0 {
		return q.TryPop()
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	// expired is only touched with q.mu held.
	expired := false
	var timer *time.Timer

	for len(q.items) == 0 && !q.closed {
		if expired {
			var zero T
			return zero, ErrTimeout
		}
		if timer == nil {
			timer = time.AfterFunc(d, func() {
				q.mu.Lock()
				expired = true
				q.notEmpty.Broadcast()
				q.mu.Unlock()
			})
			defer timer.Stop()
		}
		q.notEmpty.Wait()
	}
	return q.take()
}

// PopContext is like Pop but returns ctx.Err() once the context is done.
func (q *Queue[T]) PopContext(ctx context.Context) (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var stop func() bool
	for len(q.items) == 0 && !q.closed {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		if stop == nil {
			stop = context.AfterFunc(ctx, func() {
				q.mu.Lock()
				q.notEmpty.Broadcast()
				q.mu.Unlock()
			})
			defer stop()
		}
		q.notEmpty.Wait()
	}
	return q.take()
}

// take pops the head. q.mu must be held.
func (q *Queue[T]) take() (T, error) {
	var zero T
	if len(q.items) == 0 {
		return zero, ErrClosed
	}

	item := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]

	if q.capacity > 0 {
		q.notFull.Signal()
	}
	return item, nil
}

// Close marks the queue closed and wakes every blocked producer and consumer.
// Pending items stay available to Pop. Calling Close more than once is a no-op.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.notEmpty.Broadcast()
	q.notFull.Broadcast()
}

// Len returns the number of pending items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Cap returns the capacity the queue was created with; zero means unbounded.
func (q *Queue[T]) Cap() int {
	return q.capacity
}

// Closed reports whether Close has been called.
func (q *Queue[T]) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}
