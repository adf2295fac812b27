// Package metrics provides MetricsCollector implementations.
//
// Implementations:
//   - prometheus: counters and gauges on a caller-supplied registry
package metrics
