// Package arenaprom exports genarena metrics to Prometheus.
package arenaprom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/genarena"
)

// Source is anything that can report arena metrics, such as
// *genarena.Arena or *genarena.SafeArena. Collect is called from the
// registry's goroutine, so a plain Arena must not be modified concurrently.
type Source interface {
	Metrics() genarena.Metrics
}

// Collector is a prometheus.Collector reading a Source on every scrape.
type Collector struct {
	src Source

	live     *prometheus.Desc
	slots    *prometheus.Desc
	free     *prometheus.Desc
	retired  *prometheus.Desc
	capacity *prometheus.Desc

	inserts *prometheus.Desc
	reuses  *prometheus.Desc
	removes *prometheus.Desc
	growths *prometheus.Desc
}

const subsystem = "arena"

// NewCollector returns a collector for src. Every series carries
// constLabels, which is how several arenas share one registry.
func NewCollector(src Source, namespace string, constLabels prometheus.Labels) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, name),
			help,
			nil, constLabels,
		)
	}

	return &Collector{
		src: src,

		live:     desc("live_values", "The number of values currently stored."),
		slots:    desc("slots", "The number of slots handed out, occupied or not."),
		free:     desc("free_slots", "The number of slots waiting to be reused."),
		retired:  desc("retired_slots", "The number of slots whose generation is exhausted."),
		capacity: desc("capacity_slots", "The number of slots the allocated chunks can hold."),

		inserts: desc("inserts_total", "The total number of inserted values."),
		reuses:  desc("reuses_total", "The total number of inserts that recycled a freed slot."),
		removes: desc("removes_total", "The total number of removed values."),
		growths: desc("chunk_allocations_total", "The total number of allocated chunks."),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.live
	ch <- c.slots
	ch <- c.free
	ch <- c.retired
	ch <- c.capacity
	ch <- c.inserts
	ch <- c.reuses
	ch <- c.removes
	ch <- c.growths
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	m := c.src.Metrics()

	ch <- prometheus.MustNewConstMetric(c.live, prometheus.GaugeValue, float64(m.Live))
	ch <- prometheus.MustNewConstMetric(c.slots, prometheus.GaugeValue, float64(m.Slots))
	ch <- prometheus.MustNewConstMetric(c.free, prometheus.GaugeValue, float64(m.Free))
	ch <- prometheus.MustNewConstMetric(c.retired, prometheus.GaugeValue, float64(m.Retired))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(m.Capacity))
	ch <- prometheus.MustNewConstMetric(c.inserts, prometheus.CounterValue, float64(m.Inserts))
	ch <- prometheus.MustNewConstMetric(c.reuses, prometheus.CounterValue, float64(m.Reuses))
	ch <- prometheus.MustNewConstMetric(c.removes, prometheus.CounterValue, float64(m.Removes))
	ch <- prometheus.MustNewConstMetric(c.growths, prometheus.CounterValue, float64(m.Growths))
}
