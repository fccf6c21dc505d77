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

// Package splitlog is a process-local file logger with synchronous and
// queue-buffered asynchronous write modes and rotation by calendar day and
// line count.
package splitlog

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// Logger writes leveled lines to a local file that rotates by calendar day
// and by line count.
//
// In sync mode (Config.MaxQueueSize == 0) Log formats the line, takes the
// file lock, runs the RotationPolicy and appends before returning. In async
// mode Log pushes the formatted line onto a bounded queue and a single
// background goroutine appends it; a full queue blocks the caller instead of
// dropping the entry. All methods are safe for concurrent use.
//
// You must call Close before the process exits in async mode, or entries still
// in the queue are lost.
type Logger struct {
	policy   RotationPolicy
	layout   string
	timeFunc TimeFunction
	bufSize  int
	bufs     *bufferPool
	fallback io.Writer
	styles   *Styles
	disabled bool

	// mu is the file lock. It guards file, state and lastErr, and is held
	// only for a rotation check plus one append.
	mu      sync.Mutex
	file    *logFile
	state   RotationState
	lastErr string

	path   writePath
	closed atomic.Bool

	// inflight is read-held by every Log call from its closed check until its
	// line is submitted. Close takes it exclusively before releasing the file.
	inflight  sync.RWMutex
	closeOnce sync.Once
	closeErr  error

	stats stats
}

// New builds an independent Logger and opens its first file.
//
// It creates missing parent directories and continues today's file if one
// already exists. If the file cannot be opened New returns an *InitError.
// A positive Config.MaxQueueSize starts the background writer.
func New(cfg Config) (*Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	policy, err := NewRotationPolicy(cfg.FilePath, cfg.SplitLines)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		policy:   policy,
		layout:   cfg.TimeFormat,
		timeFunc: cfg.TimeFunction,
		bufSize:  cfg.LogBufSize,
		bufs:     newBufferPool(cfg.LogBufSize),
		fallback: cfg.Fallback,
		styles:   StylesFor(cfg.Fallback),
	}

	if cfg.CloseLog {
		l.disabled = true
		l.path = discardPath{}
		return l, nil
	}

	l.state = policy.Initial(l.now())
	f, err := openLogFile(l.state.Path, l.bufSize)
	if err != nil {
		return nil, &InitError{Path: l.state.Path, Err: err}
	}
	l.file = f

	if cfg.MaxQueueSize > 0 {
		l.path = newWorker(l, cfg.MaxQueueSize)
	} else {
		l.path = syncPath{l: l}
	}
	return l, nil
}

func (l *Logger) now() time.Time {
	t := time.Now()
	if l.timeFunc != nil {
		t = l.timeFunc(t)
	}
	return t
}

// Log writes msg at level.
//
// It is a no-op when the Logger was built with CloseLog or has been closed.
// The line is formatted on the calling goroutine. In async mode the call
// blocks while the queue is full.
func (l *Logger) Log(level Level, msg string) {
	if l == nil || l.disabled {
		return
	}

	l.inflight.RLock()
	defer l.inflight.RUnlock()
	if l.closed.Load() {
		return
	}

	b := l.bufs.get()
	formatLine(b, l.now(), l.layout, level, msg)
	line := string(b.B)
	l.bufs.put(b)

	l.stats.writes.add(1)
	l.path.submit(line)
}

// Logf formats a message with fmt.Sprintf and writes it at level.
func (l *Logger) Logf(level Level, format string, args ...any) {
	if l == nil || l.disabled || l.closed.Load() {
		return
	}
	l.Log(level, fmt.Sprintf(format, args...))
}

// append runs the rotation check and appends one line under the file lock.
func (l *Logger) append(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return
	}

	l.rotateLocked(l.now())

	if err := l.file.writeString(line); err != nil {
		l.stats.writeErrors.add(1)
		l.reportLocked(err)
		return
	}
	l.state.Lines++
	l.stats.lines.add(1)
}

// rotateLocked swaps the active file if the policy asks for it. On failure
// the state is left alone, so the next append retries. l.mu must be held.
func (l *Logger) rotateLocked(now time.Time) {
	d := l.policy.Decide(l.state, now)
	if d.Action == Keep {
		return
	}

	next, err := openLogFile(d.Next.Path, l.bufSize)
	if err != nil {
		l.stats.rotationErrors.add(1)
		l.reportLocked(&RotationError{Path: d.Next.Path, Reason: d.Action, Err: err})
		return
	}

	if err := l.file.close(); err != nil {
		l.reportLocked(err)
	}
	l.file = next
	l.state = d.Next
	l.stats.rotated(d.Action)
}

// report writes err to the fallback stream.
func (l *Logger) report(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reportLocked(err)
}

// reportLocked writes err to the fallback stream unless it repeats the
// previous diagnostic. l.mu must be held.
func (l *Logger) reportLocked(err error) {
	msg := err.Error()
	if msg == l.lastErr {
		return
	}
	l.lastErr = msg
	fmt.Fprintln(l.fallback, l.styles.Diagnostic(err))
}

// Flush writes buffered bytes to the operating system. It does not fsync.
// Calling it again with no writes in between has no effect.
func (l *Logger) Flush() error {
	if l == nil || l.disabled {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return ErrClosed
	}
	return l.file.flush()
}

// Sync flushes buffered bytes and commits the active file to stable storage.
func (l *Logger) Sync() error {
	if l == nil || l.disabled {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return ErrClosed
	}
	return l.file.sync()
}

// Close stops the Logger and releases the active file.
//
// In async mode it closes the queue and waits for the writer to drain every
// queued entry before the file is flushed and closed. Subsequent Log calls are
// dropped. Calling Close more than once returns the first result.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		l.path.stop()
		// Wait out Log calls that passed the closed check, including pushes
		// the closed queue refused, so their lines reach the file.
		l.inflight.Lock()
		defer l.inflight.Unlock()

		l.mu.Lock()
		defer l.mu.Unlock()
		if l.file != nil {
			l.closeErr = l.file.close()
			l.file = nil
		}
	})
	return l.closeErr
}

// Path returns the file currently appended to. It is empty for a Logger built
// with CloseLog.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Path
}

// Stats returns a snapshot of the Logger's counters.
func (l *Logger) Stats() Stats {
	if l == nil {
		return Stats{}
	}
	pending, capacity := l.path.depth()
	return Stats{
		Writes:         l.stats.writes.load(),
		Lines:          l.stats.lines.load(),
		DayRotations:   l.stats.dayRotations.load(),
		SplitRotations: l.stats.splitRotations.load(),
		RotationErrors: l.stats.rotationErrors.load(),
		WriteErrors:    l.stats.writeErrors.load(),
		QueueDepth:     pending,
		QueueCapacity:  capacity,
	}
}

// Async reports whether entries go through the background writer.
func (l *Logger) Async() bool {
	if l == nil {
		return false
	}
	_, ok := l.path.(*worker)
	return ok
}

// Debug writes msg at DebugLevel and flushes.
func (l *Logger) Debug(msg string) { l.logFlush(DebugLevel, msg) }

// Info writes msg at InfoLevel and flushes.
func (l *Logger) Info(msg string) { l.logFlush(InfoLevel, msg) }

// Warn writes msg at WarnLevel and flushes.
func (l *Logger) Warn(msg string) { l.logFlush(WarnLevel, msg) }

// Error writes msg at ErrorLevel and flushes.
func (l *Logger) Error(msg string) { l.logFlush(ErrorLevel, msg) }

// Debugf formats and writes a message at DebugLevel and flushes.
func (l *Logger) Debugf(format string, args ...any) {
	l.logfFlush(DebugLevel, format, args...)
}

// Infof formats and writes a message at InfoLevel and flushes.
func (l *Logger) Infof(format string, args ...any) {
	l.logfFlush(InfoLevel, format, args...)
}

// Warnf formats and writes a message at WarnLevel and flushes.
func (l *Logger) Warnf(format string, args ...any) {
	l.logfFlush(WarnLevel, format, args...)
}

// Errorf formats and writes a message at ErrorLevel and flushes.
func (l *Logger) Errorf(format string, args ...any) {
	l.logfFlush(ErrorLevel, format, args...)
}

func (l *Logger) logFlush(level Level, msg string) {
	if l == nil || l.disabled || l.closed.Load() {
		return
	}
	l.Log(level, msg)
	if err := l.Flush(); err != nil && !errors.Is(err, ErrClosed) {
		l.report(err)
	}
}

func (l *Logger) logfFlush(level Level, format string, args ...any) {
	if l == nil || l.disabled || l.closed.Load() {
		return
	}
	l.logFlush(level, fmt.Sprintf(format, args...))
}
