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
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blairtcg/splitlog"
)

// settings holds the viper instance shared by every subcommand.
type settings struct {
	v *viper.Viper
}

func newRootCommand() *cobra.Command {
	s := &settings{v: newViper()}

	var configFile string
	rootCmd := &cobra.Command{
		Use:           "splitlog",
		Short:         "Exercise the splitlog file logger",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile == "" {
				return nil
			}
			s.v.SetConfigFile(configFile)
			if err := s.v.ReadInConfig(); err != nil {
				return fmt.Errorf("error reading config file: %w", err)
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "YAML config file")
	flags.String("file-path", splitlog.DefaultFilePath, "Base directory and file name of the log")
	flags.Int64("split-lines", splitlog.DefaultSplitLines, "Lines per file before a split")
	flags.Int("max-queue-size", 0, "Queue capacity; 0 writes synchronously")
	flags.Int("log-buf-size", splitlog.DefaultLogBufSize, "Line and file buffer size in bytes")
	flags.Bool("close-log", false, "Disable all log output")

	for key, flag := range map[string]string{
		"file_path":      "file-path",
		"split_lines":    "split-lines",
		"max_queue_size": "max-queue-size",
		"log_buf_size":   "log-buf-size",
		"close_log":      "close-log",
	} {
		if err := s.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("error binding flag %s: %v", flag, err))
		}
	}

	rootCmd.AddCommand(newGenCommand(s), newNamesCommand(s))
	return rootCmd
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("SPLITLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// config resolves flags, environment and config file into a splitlog.Config.
func (s *settings) config() (splitlog.Config, error) {
	var cfg splitlog.Config
	if err := s.v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error decoding settings: %w", err)
	}
	return cfg, cfg.Validate()
}
