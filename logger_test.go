package splitlog

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

var testDay = time.Date(2026, time.October, 14, 10, 30, 0, 0, time.Local)

func newTestLogger(t *testing.T, cfg Config) (*Logger, *fakeClock) {
	t.Helper()
	clock := newFakeClock(testDay)
	if cfg.FilePath == "" {
		cfg.FilePath = filepath.Join(t.TempDir(), "app")
	}
	if cfg.TimeFunction == nil {
		cfg.TimeFunction = clock.now
	}
	if cfg.Fallback == nil {
		cfg.Fallback = &bytes.Buffer{}
	}
	l, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l, clock
}

func TestLoggerSyncSplitsByLineCount(t *testing.T) {
	dir := t.TempDir()
	l, _ := newTestLogger(t, Config{FilePath: filepath.Join(dir, "app"), SplitLines: 3})
	require.False(t, l.Async())

	for range 3 {
		l.Info("x")
	}
	first := filepath.Join(dir, "app_2026_10_14.log")
	assert.Equal(t, first, l.Path())
	assert.Len(t, readLines(t, first), 3)
	assert.Equal(t, []string{first}, logFiles(t, dir))

	l.Info("x")
	second := filepath.Join(dir, "app_2026_10_14_1.log")
	assert.Equal(t, second, l.Path())
	assert.Len(t, readLines(t, first), 3)
	assert.Len(t, readLines(t, second), 1)
	assert.Equal(t, []string{first, second}, logFiles(t, dir))

	s := l.Stats()
	assert.Equal(t, int64(4), s.Writes)
	assert.Equal(t, int64(4), s.Lines)
	assert.Equal(t, int64(1), s.SplitRotations)
	assert.Equal(t, int64(0), s.DayRotations)
}

func TestLoggerLineFormat(t *testing.T) {
	l, _ := newTestLogger(t, Config{})

	l.Debug("one")
	l.Infof("two %d", 2)
	l.Warn("three")
	l.Errorf("four %s", "!")

	assert.Equal(t, []string{
		"2026-10-14 10:30:00.000000 [debug]: one",
		"2026-10-14 10:30:00.000000 [info]: two 2",
		"2026-10-14 10:30:00.000000 [warn]: three",
		"2026-10-14 10:30:00.000000 [erro]: four !",
	}, readLines(t, l.Path()))
}

func TestLoggerDayChangeStartsFreshFile(t *testing.T) {
	dir := t.TempDir()
	l, clock := newTestLogger(t, Config{FilePath: filepath.Join(dir, "app"), SplitLines: 2})

	l.Info("a")
	l.Info("b")
	l.Info("c") // splits into _1
	require.Equal(t, filepath.Join(dir, "app_2026_10_14_1.log"), l.Path())

	clock.set(testDay.AddDate(0, 0, 1))
	l.Info("d")
	next := filepath.Join(dir, "app_2026_10_15.log")
	assert.Equal(t, next, l.Path())
	assert.Len(t, readLines(t, next), 1)

	l.Info("e")
	l.Info("f") // cap reached again on the new day, sequence restarts at 1
	assert.Equal(t, filepath.Join(dir, "app_2026_10_15_1.log"), l.Path())

	s := l.Stats()
	assert.Equal(t, int64(1), s.DayRotations)
	assert.Equal(t, int64(2), s.SplitRotations)
}

func TestLoggerFlushIsIdempotent(t *testing.T) {
	l, _ := newTestLogger(t, Config{})

	l.Log(InfoLevel, "buffered")
	require.NoError(t, l.Flush())

	info, err := os.Stat(l.Path())
	require.NoError(t, err)
	size := info.Size()
	assert.Positive(t, size)

	for range 3 {
		require.NoError(t, l.Flush())
		info, err = os.Stat(l.Path())
		require.NoError(t, err)
		assert.Equal(t, size, info.Size())
	}
	require.NoError(t, l.Sync())
}

func TestLoggerAsyncConcurrentWriters(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	clock := newFakeClock(testDay)
	l, err := New(Config{
		FilePath:     filepath.Join(dir, "app"),
		MaxQueueSize: 10,
		TimeFunction: clock.now,
		Fallback:     &bytes.Buffer{},
	})
	require.NoError(t, err)
	require.True(t, l.Async())
	assert.Equal(t, 10, l.Stats().QueueCapacity)

	const (
		producers = 10
		perWorker = 10
	)
	var g errgroup.Group
	for p := range producers {
		g.Go(func() error {
			for i := range perWorker {
				l.Infof("producer=%d seq=%d", p, i)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.NoError(t, l.Close())

	lines := readLines(t, filepath.Join(dir, "app_2026_10_14.log"))
	require.Len(t, lines, producers*perWorker)

	seen := make(map[string]bool, len(lines))
	next := make([]int, producers)
	for _, line := range lines {
		require.False(t, seen[line], "duplicate line %q", line)
		seen[line] = true

		var p, i int
		idx := strings.Index(line, "producer=")
		require.NotEqual(t, -1, idx, line)
		_, err := fmt.Sscanf(line[idx:], "producer=%d seq=%d", &p, &i)
		require.NoError(t, err)
		assert.Equal(t, next[p], i, "producer %d written out of order", p)
		next[p]++
	}
	assert.Equal(t, int64(producers*perWorker), l.Stats().Lines)
}

func TestLoggerAsyncBackpressure(t *testing.T) {
	l, _ := newTestLogger(t, Config{MaxQueueSize: 1})

	// Hold the file lock so the writer cannot drain the queue.
	l.mu.Lock()
	var wg sync.WaitGroup
	wg.Add(1)
	returned := make(chan struct{})
	go func() {
		defer wg.Done()
		for i := range 3 {
			l.Logf(InfoLevel, "line %d", i)
		}
		close(returned)
	}()

	select {
	case <-returned:
		t.Fatal("writes returned while the queue was full")
	case <-time.After(50 * time.Millisecond):
	}
	assert.LessOrEqual(t, l.Stats().QueueDepth, 1)
	l.mu.Unlock()

	wg.Wait()
	require.NoError(t, l.Close())
	assert.Equal(t, int64(3), l.Stats().Lines)
}

func TestLoggerCloseKeepsBlockedWrites(t *testing.T) {
	dir := t.TempDir()
	l, _ := newTestLogger(t, Config{FilePath: filepath.Join(dir, "app"), MaxQueueSize: 1})

	// With the file lock held the writer stalls on n=0, n=1 fills the queue
	// and n=2 blocks in Push.
	l.mu.Lock()
	returned := make(chan struct{})
	go func() {
		defer close(returned)
		for i := range 3 {
			l.Logf(InfoLevel, "n=%d", i)
		}
	}()
	require.Eventually(t, func() bool { return l.Stats().Writes == 3 }, time.Second, time.Millisecond)

	closed := make(chan error, 1)
	go func() { closed <- l.Close() }()
	require.Eventually(t, l.closed.Load, time.Second, time.Millisecond)
	l.mu.Unlock()

	require.NoError(t, <-closed)
	<-returned

	lines := readLines(t, filepath.Join(dir, "app_2026_10_14.log"))
	msgs := make([]string, 0, len(lines))
	for _, line := range lines {
		_, msg, ok := strings.Cut(line, "[info]: ")
		require.True(t, ok, line)
		msgs = append(msgs, msg)
	}
	// The refused push is appended directly, so it may land before the
	// writer's drained entries.
	assert.ElementsMatch(t, []string{"n=0", "n=1", "n=2"}, msgs)
	s := l.Stats()
	assert.Equal(t, s.Writes, s.Lines)
}

func TestLoggerAsyncSplits(t *testing.T) {
	dir := t.TempDir()
	l, _ := newTestLogger(t, Config{FilePath: filepath.Join(dir, "app"), MaxQueueSize: 4, SplitLines: 10})

	for i := range 25 {
		l.Logf(WarnLevel, "n=%d", i)
	}
	require.NoError(t, l.Close())

	files := logFiles(t, dir)
	require.Equal(t, []string{
		filepath.Join(dir, "app_2026_10_14.log"),
		filepath.Join(dir, "app_2026_10_14_1.log"),
		filepath.Join(dir, "app_2026_10_14_2.log"),
	}, files)
	assert.Len(t, readLines(t, files[0]), 10)
	assert.Len(t, readLines(t, files[1]), 10)
	assert.Len(t, readLines(t, files[2]), 5)
}

func TestLoggerCloseLogWritesNothing(t *testing.T) {
	dir := t.TempDir()
	l, _ := newTestLogger(t, Config{FilePath: filepath.Join(dir, "app"), CloseLog: true, MaxQueueSize: 8})

	for i := range 50 {
		l.Infof("ignored %d", i)
		l.Log(ErrorLevel, "ignored")
	}
	require.NoError(t, l.Flush())
	require.NoError(t, l.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Empty(t, l.Path())
	assert.Equal(t, int64(0), l.Stats().Writes)
}

type countingStringer struct {
	calls *atomic.Int32
}

func (c countingStringer) String() string {
	c.calls.Add(1)
	return "formatted"
}

func TestLoggerSkipsFormattingWhenOff(t *testing.T) {
	var calls atomic.Int32
	arg := countingStringer{calls: &calls}

	off, _ := newTestLogger(t, Config{CloseLog: true})
	off.Infof("%v", arg)
	off.Errorf("%v", arg)
	off.Logf(WarnLevel, "%v", arg)

	closed, _ := newTestLogger(t, Config{})
	require.NoError(t, closed.Close())
	closed.Debugf("%v", arg)
	closed.Warnf("%v", arg)
	closed.Logf(InfoLevel, "%v", arg)

	assert.Equal(t, int32(0), calls.Load())
}

func TestLoggerReportsFlushErrors(t *testing.T) {
	fallback := &bytes.Buffer{}
	l, _ := newTestLogger(t, Config{Fallback: fallback})

	// Closing the descriptor underneath the buffer makes the next flush fail.
	l.mu.Lock()
	require.NoError(t, l.file.f.Close())
	l.mu.Unlock()

	l.Info("lost")
	assert.Contains(t, fallback.String(), "file already closed")
}

func TestLoggerCloseIsIdempotent(t *testing.T) {
	l, _ := newTestLogger(t, Config{MaxQueueSize: 2})
	path := l.Path()

	l.Info("before")
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	l.Info("after")
	assert.ErrorIs(t, l.Flush(), ErrClosed)
	assert.ErrorIs(t, l.Sync(), ErrClosed)
	assert.Equal(t, []string{"2026-10-14 10:30:00.000000 [info]: before"}, readLines(t, path))
}

func TestLoggerAppendsToExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app_2026_10_14.log")
	require.NoError(t, os.WriteFile(path, []byte("earlier run\n"), 0o644))

	l, _ := newTestLogger(t, Config{FilePath: filepath.Join(dir, "app")})
	l.Info("later run")

	lines := readLines(t, path)
	require.Len(t, lines, 2)
	assert.Equal(t, "earlier run", lines[0])
}

func TestLoggerCreatesParentDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deeper")
	l, _ := newTestLogger(t, Config{FilePath: filepath.Join(dir, "svc.log")})

	l.Info("hello")
	assert.Equal(t, filepath.Join(dir, "svc_2026_10_14.log"), l.Path())
	assert.FileExists(t, l.Path())
}

func TestLoggerInitError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := New(Config{FilePath: filepath.Join(blocker, "app"), Fallback: &bytes.Buffer{}})
	require.Error(t, err)

	var initErr *InitError
	require.ErrorAs(t, err, &initErr)
	assert.Contains(t, initErr.Path, "blocker")
	assert.NotNil(t, initErr.Unwrap())

	_, err = New(Config{LogBufSize: -1})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoggerRotationFailureKeepsWriting(t *testing.T) {
	dir := t.TempDir()
	// A directory where the successor file should go makes the open fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "app_2026_10_14_1.log"), 0o755))

	fallback := &bytes.Buffer{}
	l, _ := newTestLogger(t, Config{FilePath: filepath.Join(dir, "app"), SplitLines: 2, Fallback: fallback})

	for i := range 5 {
		l.Infof("n=%d", i)
	}

	first := filepath.Join(dir, "app_2026_10_14.log")
	assert.Equal(t, first, l.Path())
	assert.Len(t, readLines(t, first), 5)

	s := l.Stats()
	assert.Equal(t, int64(3), s.RotationErrors)
	assert.Equal(t, int64(0), s.SplitRotations)

	// Repeated failures are reported once.
	assert.Equal(t, 1, strings.Count(fallback.String(), "split rotation"))
	assert.Contains(t, fallback.String(), "app_2026_10_14_1.log")
}

func TestLoggerNilIsSafe(t *testing.T) {
	var l *Logger
	l.Info("nothing")
	l.Logf(ErrorLevel, "nothing %d", 1)
	assert.NoError(t, l.Flush())
	assert.NoError(t, l.Sync())
	assert.NoError(t, l.Close())
	assert.Empty(t, l.Path())
	assert.Equal(t, Stats{}, l.Stats())
	assert.False(t, l.Async())

	resetInstance(t)
	assert.NotPanics(t, func() {
		fl := FromContext(context.Background())
		_ = fl.Stats()
		_ = fl.Path()
		fl.Infof("nothing %d", 2)
	})
}

func TestInitAndInstance(t *testing.T) {
	resetInstance(t)
	t.Cleanup(func() { resetInstance(t) })

	assert.False(t, Initialized())
	assert.Panics(t, func() { Instance() })
	// Package helpers are no-ops before Init.
	Info("dropped")
	assert.NoError(t, Flush())
	assert.NoError(t, Shutdown())

	dir := t.TempDir()
	clock := newFakeClock(testDay)
	cfg := Config{FilePath: filepath.Join(dir, "app"), TimeFunction: clock.now, Fallback: &bytes.Buffer{}}
	require.NoError(t, Init(cfg))
	assert.True(t, Initialized())
	assert.ErrorIs(t, Init(cfg), ErrAlreadyInitialized)

	l := Instance()
	Debug("d")
	Infof("i=%d", 1)
	Warn("w")
	Errorf("e=%s", "x")
	Log(InfoLevel, "raw")
	Logf(InfoLevel, "raw %d", 2)
	require.NoError(t, Flush())

	lines := readLines(t, l.Path())
	require.Len(t, lines, 6)
	assert.True(t, strings.HasSuffix(lines[0], "[debug]: d"))
	assert.True(t, strings.HasSuffix(lines[3], "[erro]: e=x"))

	ctx := WithContext(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))
	assert.Same(t, l, FromContext(context.Background()))

	require.NoError(t, Shutdown())
}

func TestInitFailureCanRetry(t *testing.T) {
	resetInstance(t)
	t.Cleanup(func() { resetInstance(t) })

	assert.ErrorIs(t, Init(Config{SplitLines: -1}), ErrInvalidConfig)
	assert.False(t, Initialized())

	require.NoError(t, Init(Config{
		FilePath: filepath.Join(t.TempDir(), "app"),
		Fallback: &bytes.Buffer{},
	}))
	assert.True(t, Initialized())
}
