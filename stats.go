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
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// counter is an atomic counter padded onto its own cache line. Producers on
// different cores bump writes concurrently.
type counter struct {
	_   cpu.CacheLinePad
	val atomic.Int64
	_   cpu.CacheLinePad
}

func (c *counter) add(n int64) { c.val.Add(n) }

func (c *counter) load() int64 { return c.val.Load() }

type stats struct {
	writes         counter
	lines          counter
	dayRotations   counter
	splitRotations counter
	rotationErrors counter
	writeErrors    counter
}

func (s *stats) rotated(a RotationAction) {
	switch a {
	case NewDay:
		s.dayRotations.add(1)
	case Split:
		s.splitRotations.add(1)
	}
}

// Stats is a point in time snapshot of a Logger's counters.
type Stats struct {
	Writes         int64 // entries accepted by Log
	Lines          int64 // entries appended to a file
	DayRotations   int64 // files opened because the calendar day changed
	SplitRotations int64 // files opened because the line cap was reached
	RotationErrors int64 // successor files that could not be opened
	WriteErrors    int64 // appends that failed at the file buffer
	QueueDepth     int   // entries waiting for the writer, async mode only
	QueueCapacity  int   // zero in sync mode
}
