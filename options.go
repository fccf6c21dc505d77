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
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTimeFormat is the timestamp layout written at the start of every line.
const DefaultTimeFormat = "2006-01-02 15:04:05.000000"

const (
	// DefaultFilePath is used when Config.FilePath is empty.
	DefaultFilePath = "./logs/server"
	// DefaultLogBufSize is the default line buffer and file buffer size in bytes.
	DefaultLogBufSize = 8192
	// DefaultSplitLines is the default number of lines per file before a split.
	DefaultSplitLines int64 = 5_000_000
)

// TimeFunction is a hook applied to time.Now for every entry and rotation
// check. Tests use it to pin the clock.
type TimeFunction func(time.Time) time.Time

// Config configures a Logger.
//
// The serializable fields map one to one onto the keys read from YAML files,
// flags and the environment. Zero values take the documented defaults.
type Config struct {
	// FilePath is the base directory plus base file name, e.g. "/var/log/app".
	// Files are created as <dir>/<base>_<YYYY_MM_DD>[_<seq>].log.
	FilePath string `yaml:"file_path" mapstructure:"file_path"`

	// CloseLog turns every Log call into a no-op. No file is created.
	CloseLog bool `yaml:"close_log" mapstructure:"close_log"`

	// LogBufSize sizes the per-line formatting buffer and the file write buffer.
	// It defaults to 8192.
	LogBufSize int `yaml:"log_buf_size" mapstructure:"log_buf_size"`

	// SplitLines is the number of lines written to one file before the next
	// write opens a new one. It defaults to 5,000,000.
	SplitLines int64 `yaml:"split_lines" mapstructure:"split_lines"`

	// MaxQueueSize selects the write mode. Zero writes synchronously on the
	// caller's goroutine; a positive value routes entries through a queue of
	// that capacity drained by one background writer.
	MaxQueueSize int `yaml:"max_queue_size" mapstructure:"max_queue_size"`

	// TimeFormat is the timestamp layout. It defaults to DefaultTimeFormat.
	TimeFormat string `yaml:"time_format" mapstructure:"time_format"`

	// TimeFunction adjusts the current time. It defaults to the identity.
	TimeFunction TimeFunction `yaml:"-" mapstructure:"-"`

	// Fallback receives the logger's own diagnostics, such as rotation
	// failures. It defaults to os.Stderr.
	Fallback io.Writer `yaml:"-" mapstructure:"-"`
}

// DefaultConfig returns a Config with every default filled in.
func DefaultConfig() Config {
	return Config{
		FilePath:   DefaultFilePath,
		LogBufSize: DefaultLogBufSize,
		SplitLines: DefaultSplitLines,
		TimeFormat: DefaultTimeFormat,
		Fallback:   os.Stderr,
	}
}

// withDefaults returns cfg with zero fields replaced by their defaults.
func (cfg Config) withDefaults() Config {
	d := DefaultConfig()
	return Config{
		FilePath:     configValue(d.FilePath, cfg.FilePath),
		CloseLog:     cfg.CloseLog,
		LogBufSize:   configValue(d.LogBufSize, cfg.LogBufSize),
		SplitLines:   configValue(d.SplitLines, cfg.SplitLines),
		MaxQueueSize: cfg.MaxQueueSize,
		TimeFormat:   configValue(d.TimeFormat, cfg.TimeFormat),
		TimeFunction: cfg.TimeFunction,
		Fallback:     configValue(d.Fallback, cfg.Fallback),
	}
}

// configValue returns defaultVal if cfgVal is the zero value for T.
func configValue[T comparable](defaultVal, cfgVal T) T {
	var zero T
	if cfgVal == zero {
		return defaultVal
	}
	return cfgVal
}

// ErrInvalidConfig reports a Config that cannot be used.
var ErrInvalidConfig = errors.New("splitlog: invalid config")

// Validate reports whether cfg can be used to build a Logger.
func (cfg Config) Validate() error {
	switch {
	case cfg.LogBufSize < 0:
		return fmt.Errorf("%w: log_buf_size must not be negative, got %d", ErrInvalidConfig, cfg.LogBufSize)
	case cfg.SplitLines < 0:
		return fmt.Errorf("%w: split_lines must not be negative, got %d", ErrInvalidConfig, cfg.SplitLines)
	case cfg.MaxQueueSize < 0:
		return fmt.Errorf("%w: max_queue_size must not be negative, got %d", ErrInvalidConfig, cfg.MaxQueueSize)
	}
	if cfg.FilePath != "" {
		if _, _, err := SplitPath(cfg.FilePath); err != nil {
			return err
		}
	}
	return nil
}

// LoadConfig reads a YAML file into a Config. Missing keys keep their zero
// value and pick up defaults when the Logger is built.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
