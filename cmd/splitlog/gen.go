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

package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blairtcg/splitlog"
)

func newGenCommand(s *settings) *cobra.Command {
	var (
		lines     int
		producers int
		levelName string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write generated entries from concurrent producers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if lines < 0 || producers < 1 {
				return fmt.Errorf("lines must be >= 0 and producers >= 1")
			}
			level, err := splitlog.ParseLevel(levelName)
			if err != nil {
				return err
			}
			cfg, err := s.config()
			if err != nil {
				return err
			}
			if err := splitlog.Init(cfg); err != nil {
				return err
			}

			runID := uuid.New()
			start := time.Now()

			var g errgroup.Group
			for p := range producers {
				g.Go(func() error {
					for i := p; i < lines; i += producers {
						splitlog.Logf(level, "run=%s producer=%d seq=%d", runID, p, i)
					}
					return splitlog.Flush()
				})
			}
			genErr := g.Wait()

			l := splitlog.Instance()
			if err := splitlog.Shutdown(); err != nil {
				return fmt.Errorf("error closing logger: %w", err)
			}
			if genErr != nil {
				return genErr
			}

			st := l.Stats()
			styles := splitlog.StylesFor(cmd.OutOrStdout())
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styles.Pair("run", runID))
			fmt.Fprintln(out, styles.Pair("mode", modeName(l)))
			fmt.Fprintln(out, styles.Pair("lines", st.Lines))
			fmt.Fprintln(out, styles.Pair("day rotations", st.DayRotations))
			fmt.Fprintln(out, styles.Pair("split rotations", st.SplitRotations))
			fmt.Fprintln(out, styles.Pair("rotation errors", st.RotationErrors))
			fmt.Fprintln(out, styles.Pair("last file", styles.Path.Render(l.Path())))
			fmt.Fprintln(out, styles.Pair("elapsed", time.Since(start).Round(time.Millisecond)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 1000, "Number of entries to write")
	cmd.Flags().IntVarP(&producers, "producers", "p", 4, "Number of concurrent producers")
	cmd.Flags().StringVar(&levelName, "level", "info", "Level of the generated entries")
	return cmd
}

func modeName(l *splitlog.Logger) string {
	if l.Async() {
		return "async"
	}
	return "sync"
}
