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
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar day in the clock's location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String returns d as YYYY_MM_DD, the form used in file names.
func (d Date) String() string {
	var buf [16]byte
	return string(appendDate(buf[:0], time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC), '_'))
}

// RotationAction says what must happen before the next append.
type RotationAction int

const (
	// Keep appends to the active file.
	Keep RotationAction = iota
	// NewDay opens the first file of a new calendar day.
	NewDay
	// Split opens the next sequence file of the same day because the active
	// one reached the line cap.
	Split
)

// String returns the lowercase name of the action.
func (a RotationAction) String() string {
	switch a {
	case Keep:
		return "keep"
	case NewDay:
		return "day"
	case Split:
		return "split"
	default:
		return fmt.Sprintf("RotationAction(%d)", a)
	}
}

// RotationState describes the active file.
type RotationState struct {
	Path  string // file currently appended to
	Day   Date   // calendar day the file was opened for
	Lines int64  // lines appended to Path so far
	Seq   int    // in-day sequence, 0 for the first file of the day
}

// Decision is the outcome of RotationPolicy.Decide.
type Decision struct {
	Action RotationAction
	// Next is the state to adopt once the successor file is open. It equals the
	// input state when Action is Keep.
	Next RotationState
}

// RotationPolicy decides when the active file must be swapped.
//
// The policy is pure: it never touches the file system. The Logger evaluates
// it under the same lock as the append it gates.
type RotationPolicy struct {
	Dir      string
	Base     string
	MaxLines int64 // zero or less disables splitting by line count
}

// NewRotationPolicy builds a policy from a configured file path.
func NewRotationPolicy(filePath string, maxLines int64) (RotationPolicy, error) {
	dir, base, err := SplitPath(filePath)
	if err != nil {
		return RotationPolicy{}, err
	}
	return RotationPolicy{Dir: dir, Base: base, MaxLines: maxLines}, nil
}

// SplitPath splits a configured file path into its directory and base name.
// A trailing ".log" is dropped from the base since the policy adds its own.
func SplitPath(filePath string) (dir, base string, err error) {
	if filePath == "" || strings.HasSuffix(filePath, "/") || strings.HasSuffix(filePath, string(filepath.Separator)) {
		return "", "", fmt.Errorf("%w: file_path %q has no base name", ErrInvalidConfig, filePath)
	}
	dir = filepath.Dir(filePath)
	base = strings.TrimSuffix(filepath.Base(filePath), ".log")
	if base == "" || base == "." {
		return "", "", fmt.Errorf("%w: file_path %q has no base name", ErrInvalidConfig, filePath)
	}
	return dir, base, nil
}

// FileName returns the path of the seq-th file for day.
func (p RotationPolicy) FileName(day Date, seq int) string {
	name := p.Base + "_" + day.String()
	if seq > 0 {
		name += "_" + strconv.Itoa(seq)
	}
	return filepath.Join(p.Dir, name+".log")
}

// Initial returns the state for the first file opened at now.
func (p RotationPolicy) Initial(now time.Time) RotationState {
	day := DateOf(now)
	return RotationState{Path: p.FileName(day, 0), Day: day}
}

// Decide reports whether state must be rotated before a write at now.
//
// A new calendar day always wins over the line cap and restarts the sequence.
// Otherwise a file holding MaxLines or more lines is split into the next
// sequence number of the same day.
func (p RotationPolicy) Decide(state RotationState, now time.Time) Decision {
	today := DateOf(now)
	if state.Day != today {
		return Decision{Action: NewDay, Next: p.Initial(now)}
	}
	if p.MaxLines > 0 && state.Lines >= p.MaxLines {
		seq := state.Seq + 1
		return Decision{
			Action: Split,
			Next:   RotationState{Path: p.FileName(today, seq), Day: today, Seq: seq},
		}
	}
	return Decision{Action: Keep, Next: state}
}
