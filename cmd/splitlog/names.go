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

	"github.com/spf13/cobra"

	"github.com/blairtcg/splitlog"
)

func newNamesCommand(s *settings) *cobra.Command {
	var (
		date  string
		count int
	)

	cmd := &cobra.Command{
		Use:   "names",
		Short: "Print the file names rotation would use for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.config()
			if err != nil {
				return err
			}
			policy, err := splitlog.NewRotationPolicy(cfg.FilePath, cfg.SplitLines)
			if err != nil {
				return err
			}

			day := time.Now()
			if date != "" {
				if day, err = time.ParseInLocation(time.DateOnly, date, time.Local); err != nil {
					return fmt.Errorf("invalid --date %q: %w", date, err)
				}
			}

			for seq := range count {
				fmt.Fprintln(cmd.OutOrStdout(), policy.FileName(splitlog.DateOf(day), seq))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to name files for, as YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&count, "count", 3, "How many sequence files to list")
	return cmd
}
