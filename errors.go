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
	"fmt"
)

var (
	// ErrAlreadyInitialized is returned by Init when the process-wide Logger
	// already exists.
	ErrAlreadyInitialized = errors.New("splitlog: already initialized")
	// ErrClosed is returned by Flush and Sync after Close.
	ErrClosed = errors.New("splitlog: logger closed")
)

// InitError reports that the first log file could not be created.
// Without that file the Logger cannot work at all.
type InitError struct {
	Path string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("splitlog: cannot open log file %s: %v", e.Path, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// RotationError reports that a successor file could not be opened. The Logger
// keeps appending to the previous file and retries on the next write.
type RotationError struct {
	Path   string
	Reason RotationAction
	Err    error
}

func (e *RotationError) Error() string {
	return fmt.Sprintf("splitlog: %s rotation to %s failed: %v", e.Reason, e.Path, e.Err)
}

func (e *RotationError) Unwrap() error { return e.Err }
