// Package pricing implements the price service behind the HTTP API.
//
// The service owns no state of its own. It drives a PriceStore through the
// Absent/Present transitions and counts each one in the metrics collector.
// Counting and logging run after the store has released its lock, so among
// racing writers the debug log order is completion order, not the order in
// which the lock was taken. The price gauges do not depend on that order:
// they read the store at scrape time.
package pricing
