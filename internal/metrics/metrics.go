// Package metrics exposes the balancing work a tree does as Prometheus
// metrics.
package metrics

import (
	"fmt"
	"io"

	"github.com/grafana/go-redblack/internal/tree"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "rbtree"

// Collector counts tree events. It implements tree.Observer.
type Collector struct {
	events *prometheus.CounterVec
	nodes  prometheus.Gauge
	height prometheus.Gauge
}

func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Insert outcomes and fixup steps, by kind.",
		}, []string{"event"}),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "nodes",
			Help:      "Number of values held by the tree.",
		}),
		height: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "height",
			Help:      "Nodes on the longest root-to-leaf path.",
		}),
	}

	for _, e := range tree.Events {
		c.events.WithLabelValues(e.String())
	}

	for _, collector := range []prometheus.Collector{c.events, c.nodes, c.height} {
		if err := reg.Register(collector); err != nil {
			return nil, fmt.Errorf("failed to register tree metrics: %w", err)
		}
	}
	return c, nil
}

func (c *Collector) Observe(e tree.Event) {
	c.events.WithLabelValues(e.String()).Inc()
}

func (c *Collector) SetShape(nodes, height int) {
	c.nodes.Set(float64(nodes))
	c.height.Set(float64(height))
}

// WriteText writes everything g gathers in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
