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

package splitlog

import (
	"errors"

	"github.com/blairtcg/splitlog/queue"
)

// writePath is the write mode of a Logger. It is chosen once in New and
// never changes.
type writePath interface {
	// submit hands a formatted line to the file.
	submit(line string)
	// stop returns once every submitted line has reached the file buffer.
	stop()
	// depth reports the pending entries and the queue capacity.
	depth() (pending, capacity int)
}

// discardPath backs a Logger built with CloseLog.
type discardPath struct{}

func (discardPath) submit(string) {}

func (discardPath) stop() {}

func (discardPath) depth() (int, int) { return 0, 0 }

// syncPath appends on the caller's goroutine under the file lock.
type syncPath struct {
	l *Logger
}

func (p syncPath) submit(line string) { p.l.append(line) }

func (syncPath) stop() {}

func (syncPath) depth() (int, int) { return 0, 0 }

// worker owns the queue and the single background goroutine that drains it
// into the file.
type worker struct {
	l     *Logger
	queue *queue.Queue[string]
	done  chan struct{}
}

func newWorker(l *Logger, capacity int) *worker {
	w := &worker{
		l:     l,
		queue: queue.New[string](capacity),
		done:  make(chan struct{}),
	}
	go w.run()
	return w
}

// submit blocks while the queue is full.
func (w *worker) submit(line string) {
	if err := w.queue.Push(line); err != nil {
		// Close raced with this write and the queue refused it. Close waits
		// for in-flight Log calls before releasing the file, so append it
		// directly.
		w.l.append(line)
	}
}

func (w *worker) stop() {
	w.queue.Close()
	<-w.done
}

func (w *worker) depth() (int, int) {
	return w.queue.Len(), w.queue.Cap()
}

func (w *worker) run() {
	defer close(w.done)

	for {
		line, err := w.queue.Pop()
		if err != nil {
			// Closed and drained.
			return
		}
		w.l.append(line)

		// Flush once the burst is drained rather than after every line.
		if w.queue.Len() == 0 {
			if err := w.l.Flush(); err != nil && !errors.Is(err, ErrClosed) {
				w.l.report(err)
			}
		}
	}
}
