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
	"bufio"
	"os"
	"path/filepath"
)

// logFile is one open, buffered, append-only log file.
type logFile struct {
	path string
	f    *os.File
	bw   *bufio.Writer
}

// openLogFile creates the parent directory if needed and opens path for
// appending. An existing file is continued, not truncated.
func openLogFile(path string, bufSize int) (*logFile, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &logFile{path: path, f: f, bw: bufio.NewWriterSize(f, bufSize)}, nil
}

func (lf *logFile) writeString(s string) error {
	_, err := lf.bw.WriteString(s)
	return err
}

func (lf *logFile) flush() error {
	return lf.bw.Flush()
}

func (lf *logFile) sync() error {
	if err := lf.bw.Flush(); err != nil {
		return err
	}
	return lf.f.Sync()
}

// close flushes buffered bytes and closes the descriptor. The descriptor is
// closed even if the flush fails.
func (lf *logFile) close() error {
	err := lf.bw.Flush()
	if cerr := lf.f.Close(); err == nil {
		err = cerr
	}
	return err
}
