package queue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestQueueFIFO(t *testing.T) {
	t.Parallel()

	q := New[int](0)
	for i := range 5 {
		require.NoError(t, q.Push(i))
	}
	assert.Equal(t, 5, q.Len())

	for i := range 5 {
		got, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
	assert.Equal(t, 0, q.Len())
}

func TestQueueTryOperations(t *testing.T) {
	t.Parallel()

	q := New[string](2)
	assert.Equal(t, 2, q.Cap())

	_, err := q.TryPop()
	assert.ErrorIs(t, err, ErrEmpty)

	require.NoError(t, q.TryPush("a"))
	require.NoError(t, q.TryPush("b"))
	assert.ErrorIs(t, q.TryPush("c"), ErrFull)

	got, err := q.TryPop()
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	q.Close()
	assert.ErrorIs(t, q.TryPush("d"), ErrClosed)

	got, err = q.TryPop()
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	_, err = q.TryPop()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestQueuePushBlocksWhileFull(t *testing.T) {
	t.Parallel()

	q := New[int](1)
	require.NoError(t, q.Push(1))

	var pushed atomic.Bool
	done := make(chan error, 1)
	go func() {
		err := q.Push(2)
		pushed.Store(true)
		done <- err
	}()

	// The second push must not complete while the only slot is taken.
	time.Sleep(50 * time.Millisecond)
	assert.False(t, pushed.Load(), "push returned before an item was popped")
	assert.Equal(t, 1, q.Len())

	got, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("push did not resume after pop")
	}

	got, err = q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestQueueNeverExceedsCapacity(t *testing.T) {
	t.Parallel()

	const (
		capacity  = 4
		producers = 8
		perWorker = 200
	)
	q := New[int](capacity)

	var maxSeen atomic.Int64
	stop := make(chan struct{})
	var watcher sync.WaitGroup
	watcher.Add(1)
	go func() {
		defer watcher.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			if n := int64(q.Len()); n > maxSeen.Load() {
				maxSeen.Store(n)
			}
		}
	}()

	var g errgroup.Group
	for p := range producers {
		g.Go(func() error {
			for i := range perWorker {
				if err := q.Push(p*perWorker + i); err != nil {
					return err
				}
			}
			return nil
		})
	}

	consumed := 0
	for consumed < producers*perWorker {
		_, err := q.Pop()
		require.NoError(t, err)
		consumed++
	}
	require.NoError(t, g.Wait())
	close(stop)
	watcher.Wait()

	assert.LessOrEqual(t, maxSeen.Load(), int64(capacity))
}

type item struct {
	producer int
	seq      int
}

func TestQueueManyProducersOneConsumer(t *testing.T) {
	t.Parallel()

	const (
		producers = 10
		perWorker = 500
	)
	q := New[item](16)

	var g errgroup.Group
	for p := range producers {
		g.Go(func() error {
			for i := range perWorker {
				if err := q.Push(item{producer: p, seq: i}); err != nil {
					return err
				}
			}
			return nil
		})
	}

	var consumed []item
	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		for {
			it, err := q.Pop()
			if errors.Is(err, ErrClosed) {
				return
			}
			consumed = append(consumed, it)
		}
	}()

	require.NoError(t, g.Wait())
	q.Close()
	<-consumerDone

	require.Len(t, consumed, producers*perWorker)

	next := make([]int, producers)
	for _, it := range consumed {
		require.Equal(t, next[it.producer], it.seq, "producer %d out of order", it.producer)
		next[it.producer]++
	}
	for p, n := range next {
		assert.Equal(t, perWorker, n, "producer %d", p)
	}
}

func TestQueueCloseDrainsThenReportsClosed(t *testing.T) {
	t.Parallel()

	q := New[int](0)
	require.NoError(t, q.Push(1))
	require.NoError(t, q.Push(2))
	q.Close()
	q.Close()

	assert.True(t, q.Closed())
	assert.ErrorIs(t, q.Push(3), ErrClosed)

	for _, want := range []int{1, 2} {
		got, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := q.Pop()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestQueueCloseWakesBlockedCallers(t *testing.T) {
	t.Parallel()

	full := New[int](1)
	require.NoError(t, full.Push(0))
	empty := New[int](1)

	var g errgroup.Group
	var pushErr, popErr error
	g.Go(func() error {
		pushErr = full.Push(1)
		return nil
	})
	g.Go(func() error {
		_, popErr = empty.Pop()
		return nil
	})

	time.Sleep(20 * time.Millisecond)
	full.Close()
	empty.Close()
	require.NoError(t, g.Wait())

	assert.ErrorIs(t, pushErr, ErrClosed)
	assert.ErrorIs(t, popErr, ErrClosed)
}

func TestQueuePopTimeout(t *testing.T) {
	t.Parallel()

	q := New[int](0)

	start := time.Now()
	_, err := q.PopTimeout(30 * time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)

	_, err = q.PopTimeout(0)
	assert.ErrorIs(t, err, ErrEmpty)

	go func() {
		time.Sleep(10 * time.Millisecond)
		_ = q.Push(7)
	}()
	got, err := q.PopTimeout(2 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	q.Close()
	_, err = q.PopTimeout(time.Second)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestQueuePopContext(t *testing.T) {
	t.Parallel()

	q := New[int](0)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err := q.PopContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	require.NoError(t, q.Push(3))
	got, err := q.PopContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}
