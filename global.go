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
	"sync"
	"sync/atomic"
)

var (
	_instance   atomic.Pointer[Logger]
	_instanceMu sync.Mutex
)

// Init builds the process-wide Logger from cfg.
//
// It must be called once, before any goroutine uses Instance or the package
// level helpers. A second call returns ErrAlreadyInitialized and leaves the
// existing Logger untouched. On failure nothing is installed and Init may be
// retried.
func Init(cfg Config) error {
	_instanceMu.Lock()
	defer _instanceMu.Unlock()

	if _instance.Load() != nil {
		return ErrAlreadyInitialized
	}
	l, err := New(cfg)
	if err != nil {
		return err
	}
	_instance.Store(l)
	return nil
}

// Instance returns the process-wide Logger. It panics if Init has not
// succeeded.
func Instance() *Logger {
	l := _instance.Load()
	if l == nil {
		panic("splitlog: Instance called before Init")
	}
	return l
}

// Initialized reports whether Init has succeeded.
func Initialized() bool {
	return _instance.Load() != nil
}

// Shutdown closes the process-wide Logger, draining its queue in async mode.
// It is a no-op before Init. The host process calls it before exiting.
func Shutdown() error {
	return _instance.Load().Close()
}

// Log writes msg at level on the process-wide Logger. Like every package level
// helper it does nothing before Init.
func Log(level Level, msg string) { _instance.Load().Log(level, msg) }

// Logf formats and writes a message at level on the process-wide Logger.
func Logf(level Level, format string, args ...any) { _instance.Load().Logf(level, format, args...) }

// Flush flushes the process-wide Logger.
func Flush() error { return _instance.Load().Flush() }

// Debug writes msg at DebugLevel on the process-wide Logger and flushes.
func Debug(msg string) { _instance.Load().Debug(msg) }

// Info writes msg at InfoLevel on the process-wide Logger and flushes.
func Info(msg string) { _instance.Load().Info(msg) }

// Warn writes msg at WarnLevel on the process-wide Logger and flushes.
func Warn(msg string) { _instance.Load().Warn(msg) }

// Error writes msg at ErrorLevel on the process-wide Logger and flushes.
func Error(msg string) { _instance.Load().Error(msg) }

// Debugf formats a DebugLevel message on the process-wide Logger and flushes.
func Debugf(format string, args ...any) { _instance.Load().Debugf(format, args...) }

// Infof formats an InfoLevel message on the process-wide Logger and flushes.
func Infof(format string, args ...any) { _instance.Load().Infof(format, args...) }

// Warnf formats a WarnLevel message on the process-wide Logger and flushes.
func Warnf(format string, args ...any) { _instance.Load().Warnf(format, args...) }

// Errorf formats an ErrorLevel message on the process-wide Logger and flushes.
func Errorf(format string, args ...any) { _instance.Load().Errorf(format, args...) }
