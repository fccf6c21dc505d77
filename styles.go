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
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles defines how the logger renders its own diagnostics on the fallback
// stream, and how the splitlog command prints summaries.
//
// Log files are always plain text; styles never reach them.
type Styles struct {
	Prefix lipgloss.Style
	Error  lipgloss.Style
	Path   lipgloss.Style
	Key    lipgloss.Style
	Value  lipgloss.Style
}

// NewStyles builds the default styles for the given renderer. The renderer
// decides the color profile, so output to a file or buffer stays unstyled.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Prefix: r.NewStyle().Bold(true).Foreground(lipgloss.Color("204")),
		Error:  r.NewStyle().Foreground(lipgloss.Color("204")),
		Path:   r.NewStyle().Underline(true),
		Key:    r.NewStyle().Faint(true),
		Value:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
	}
}

// StylesFor returns styles whose color profile matches w.
func StylesFor(w io.Writer) *Styles {
	return NewStyles(lipgloss.NewRenderer(w))
}

// Diagnostic renders a single diagnostic line for err.
func (s *Styles) Diagnostic(err error) string {
	return s.Prefix.Render("splitlog:") + " " + s.Error.Render(err.Error())
}

// Pair renders "key: value" using the Key and Value styles.
func (s *Styles) Pair(key string, value any) string {
	return s.Key.Render(key+":") + " " + s.Value.Render(fmt.Sprint(value))
}
