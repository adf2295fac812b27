package ports

// PriceStore is a concurrently readable, exclusively writable optional price.
//
// Implementations must never expose a partially written value: a reader
// observes either the state before a write or the state after it.
type PriceStore interface {
	// Read returns the current price and whether one is set.
	Read() (uint64, bool)

	// Set replaces the current price.
	Set(price uint64)

	// Clear removes the current price. Clearing an absent price is a no-op.
	Clear()
}

// ReadResult labels the outcome of a price read
type ReadResult string

const (
	ReadResultHit  ReadResult = "hit"
	ReadResultMiss ReadResult = "miss"
)

// WriteOp labels a price mutation
type WriteOp string

const (
	WriteOpSet   WriteOp = "set"
	WriteOpClear WriteOp = "clear"
)

// MetricsCollector records pricing activity.
// The current price is not pushed through it; collectors read it from the
// PriceStore when scraped.
type MetricsCollector interface {
	RecordRead(result ReadResult)
	RecordWrite(op WriteOp)
}
