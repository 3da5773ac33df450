// Package promexport exposes profiler summary statistics as Prometheus
// metrics. The collector reads a fresh registry snapshot on every scrape,
// so scraped values always reflect the data recorded so far.
package promexport

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/callprof/callprof/pkg/profiler"
)

const namespace = "callprof"

// Collector implements prometheus.Collector over a profiler registry.
type Collector struct {
	registry *profiler.Registry

	calls      *prometheus.Desc
	average    *prometheus.Desc
	longest    *prometheus.Desc
	bottleneck *prometheus.Desc
	total      *prometheus.Desc
}

// NewCollector creates a collector reading from reg. Durations are
// reported in seconds, following Prometheus conventions.
func NewCollector(reg *profiler.Registry) *Collector {
	labels := []string{"callable"}
	return &Collector{
		registry: reg,
		calls: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "calls_total"),
			"Number of recorded invocations of the tracked callable.",
			labels, nil),
		average: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "average_seconds"),
			"Mean invocation duration of the tracked callable.",
			labels, nil),
		longest: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "longest_seconds"),
			"Longest single invocation of the tracked callable.",
			labels, nil),
		bottleneck: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "bottleneck_seconds"),
			"Wall-clock time during which the callable was executing at least once.",
			labels, nil),
		total: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "busy_seconds_total"),
			"Sum of all invocation durations, without overlap correction.",
			labels, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.calls
	ch <- c.average
	ch <- c.longest
	ch <- c.bottleneck
	ch <- c.total
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.registry.Snapshot()
	for _, p := range snap.Profiles {
		row := profiler.Summarize(p)
		name := row.Key.Qualified()

		ch <- prometheus.MustNewConstMetric(c.calls, prometheus.CounterValue,
			float64(row.Calls), name)
		ch <- prometheus.MustNewConstMetric(c.average, prometheus.GaugeValue,
			row.Average.Seconds(), name)
		ch <- prometheus.MustNewConstMetric(c.longest, prometheus.GaugeValue,
			row.Longest.Seconds(), name)
		ch <- prometheus.MustNewConstMetric(c.bottleneck, prometheus.GaugeValue,
			row.Bottleneck.Seconds(), name)
		ch <- prometheus.MustNewConstMetric(c.total, prometheus.CounterValue,
			row.Total.Seconds(), name)
	}
}
