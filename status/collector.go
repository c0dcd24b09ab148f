package status

import (
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes a Registry to Prometheus as const metrics
// Every value is a gauge since a restart resets the game counters; bools report 0 or 1
type Collector struct {
	reg       *Registry
	namespace string

	mu    sync.Mutex
	descs map[string]*prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector wraps reg, metric names are prefixed with namespace
func NewCollector(namespace string, reg *Registry) *Collector {
	return &Collector{
		reg:       reg,
		namespace: namespace,
		descs:     make(map[string]*prometheus.Desc),
	}
}

// Describe sends descriptors for the metrics registered so far
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(c, ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.reg.Bools.Range(func(key string, v *atomic.Bool) {
		val := 0.0
		if v.Load() {
			val = 1
		}
		ch <- prometheus.MustNewConstMetric(c.desc(key), prometheus.GaugeValue, val)
	})
	c.reg.Ints.Range(func(key string, v *atomic.Int64) {
		ch <- prometheus.MustNewConstMetric(c.desc(key), prometheus.GaugeValue, float64(v.Load()))
	})
	c.reg.Floats.Range(func(key string, v *AtomicFloat) {
		ch <- prometheus.MustNewConstMetric(c.desc(key), prometheus.GaugeValue, v.Get())
	})
}

func (c *Collector) desc(key string) *prometheus.Desc {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d, ok := c.descs[key]; ok {
		return d
	}
	d := prometheus.NewDesc(
		prometheus.BuildFQName(c.namespace, "", key),
		"Simulation status value "+key,
		nil, nil,
	)
	c.descs[key] = d
	return d
}
