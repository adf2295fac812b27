package prometheus

import (
	"github.com/aescanero/pricecell/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector implements MetricsCollector using Prometheus
type Collector struct {
	reads        *prometheus.CounterVec
	writes       *prometheus.CounterVec
	pricePresent prometheus.GaugeFunc
	priceValue   prometheus.GaugeFunc
}

// NewCollector creates a new Prometheus metrics collector registered on reg.
// The price gauges are evaluated against store on every scrape.
func NewCollector(reg prometheus.Registerer, store ports.PriceStore) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		reads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricecell_reads_total",
				Help: "Total number of price reads",
			},
			[]string{"result"},
		),
		writes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricecell_writes_total",
				Help: "Total number of price writes",
			},
			[]string{"op"},
		),
		pricePresent: factory.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "pricecell_price_present",
				Help: "1 if a price is currently set, 0 otherwise",
			},
			func() float64 {
				if _, ok := store.Read(); ok {
					return 1
				}
				return 0
			},
		),
		// float64 loses precision above 2^53; good enough for a dashboard
		priceValue: factory.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "pricecell_price",
				Help: "Current price, 0 when absent",
			},
			func() float64 {
				price, _ := store.Read()
				return float64(price)
			},
		),
	}
}

// RecordRead increments the read counter for the given result
func (c *Collector) RecordRead(result ports.ReadResult) {
	c.reads.WithLabelValues(string(result)).Inc()
}

// RecordWrite increments the write counter for the given operation
func (c *Collector) RecordWrite(op ports.WriteOp) {
	c.writes.WithLabelValues(string(op)).Inc()
}
