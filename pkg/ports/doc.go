// Package ports defines the interfaces between the pricing service and its
// adapters.
//
// Adapters:
//   - PriceStore: storage/memory
//   - MetricsCollector: metrics/prometheus
package ports
