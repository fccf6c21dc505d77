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
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports a Logger's Stats as Prometheus metrics.
//
// Values are read from Stats on every scrape, so registering a Collector adds
// no cost to the write path.
type Collector struct {
	logger *Logger

	writes         *prometheus.Desc
	lines          *prometheus.Desc
	rotations      *prometheus.Desc
	rotationErrors *prometheus.Desc
	writeErrors    *prometheus.Desc
	queueDepth     *prometheus.Desc
	queueCapacity  *prometheus.Desc
}

// NewCollector creates a Collector for l. Metric names are prefixed with
// namespace, e.g. "myapp_splitlog_lines_total".
func NewCollector(l *Logger, namespace string) *Collector {
	name := func(n string) string {
		return prometheus.BuildFQName(namespace, "splitlog", n)
	}
	return &Collector{
		logger:         l,
		writes:         prometheus.NewDesc(name("writes_total"), "Entries accepted by the logger.", nil, nil),
		lines:          prometheus.NewDesc(name("lines_total"), "Entries appended to a log file.", nil, nil),
		rotations:      prometheus.NewDesc(name("rotations_total"), "Log files opened by rotation.", []string{"reason"}, nil),
		rotationErrors: prometheus.NewDesc(name("rotation_errors_total"), "Successor log files that could not be opened.", nil, nil),
		writeErrors:    prometheus.NewDesc(name("write_errors_total"), "Appends that failed at the file buffer.", nil, nil),
		queueDepth:     prometheus.NewDesc(name("queue_depth"), "Entries waiting for the background writer.", nil, nil),
		queueCapacity:  prometheus.NewDesc(name("queue_capacity"), "Capacity of the write queue, zero in sync mode.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.writes
	ch <- c.lines
	ch <- c.rotations
	ch <- c.rotationErrors
	ch <- c.writeErrors
	ch <- c.queueDepth
	ch <- c.queueCapacity
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.logger.Stats()
	ch <- prometheus.MustNewConstMetric(c.writes, prometheus.CounterValue, float64(s.Writes))
	ch <- prometheus.MustNewConstMetric(c.lines, prometheus.CounterValue, float64(s.Lines))
	ch <- prometheus.MustNewConstMetric(c.rotations, prometheus.CounterValue, float64(s.DayRotations), NewDay.String())
	ch <- prometheus.MustNewConstMetric(c.rotations, prometheus.CounterValue, float64(s.SplitRotations), Split.String())
	ch <- prometheus.MustNewConstMetric(c.rotationErrors, prometheus.CounterValue, float64(s.RotationErrors))
	ch <- prometheus.MustNewConstMetric(c.writeErrors, prometheus.CounterValue, float64(s.WriteErrors))
	ch <- prometheus.MustNewConstMetric(c.queueDepth, prometheus.GaugeValue, float64(s.QueueDepth))
	ch <- prometheus.MustNewConstMetric(c.queueCapacity, prometheus.GaugeValue, float64(s.QueueCapacity))
}
