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
	"bytes"
	"errors"
	"fmt"
)

// Level represents a logging priority.
//
// The numeric values are part of the on-disk contract: 0 is debug and 3 is
// error. Every level is written; there is no minimum-level filter.
type Level int8

const (
	// DebugLevel designates fine grained events useful while debugging.
	DebugLevel Level = iota
	// InfoLevel designates normal progress messages.
	InfoLevel
	// WarnLevel designates potentially harmful situations.
	WarnLevel
	// ErrorLevel designates errors the process can still recover from.
	ErrorLevel
)

// Tag returns the bracketed marker written between the timestamp and the
// message. Unknown levels are tagged as info.
func (l Level) Tag() string {
	switch l {
	case DebugLevel:
		return "[debug]:"
	case WarnLevel:
		return "[warn]:"
	case ErrorLevel:
		return "[erro]:"
	default:
		return "[info]:"
	}
}

// String returns the lowercase ASCII representation of the level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return fmt.Sprintf("Level(%d)", l)
	}
}

// MarshalText serializes the Level to its lowercase name.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText deserializes text into a Level.
//
// It accepts lowercase or uppercase names, which lets levels come from YAML
// files, flags, or the environment.
func (l *Level) UnmarshalText(text []byte) error {
	if l == nil {
		return errors.New("can't unmarshal a nil *Level")
	}
	if !l.unmarshalText(text) && !l.unmarshalText(bytes.ToLower(text)) {
		return fmt.Errorf("unrecognized level: %q", text)
	}
	return nil
}

func (l *Level) unmarshalText(text []byte) bool {
	switch string(text) {
	case "debug", "DEBUG":
		*l = DebugLevel
	case "info", "INFO", "": // make the zero value useful
		*l = InfoLevel
	case "warn", "WARN", "warning":
		*l = WarnLevel
	case "error", "ERROR", "erro":
		*l = ErrorLevel
	default:
		return false
	}
	return true
}

// ParseLevel converts a string into a Level.
func ParseLevel(text string) (Level, error) {
	var l Level
	err := l.UnmarshalText([]byte(text))
	return l, err
}
