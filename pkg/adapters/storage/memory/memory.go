package memory

import (
	"sync"
)

// PriceCell implements PriceStore with a single in-memory value.
// Readers share the lock; Set and Clear take it exclusively.
type PriceCell struct {
	mu      sync.RWMutex
	price   uint64
	present bool
}

// NewPriceCell creates an empty price cell
func NewPriceCell() *PriceCell {
	return &PriceCell{}
}

// NewPriceCellWith creates a price cell already holding price
func NewPriceCellWith(price uint64) *PriceCell {
	return &PriceCell{
		price:   price,
		present: true,
	}
}

// Read returns the current price and whether it is set (ports.PriceStore interface)
func (c *PriceCell) Read() (uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.price, c.present
}

// Set replaces the current price (ports.PriceStore interface)
func (c *PriceCell) Set(price uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.price = price
	c.present = true
}

// Clear removes the current price (ports.PriceStore interface)
func (c *PriceCell) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.price = 0
	c.present = false
}
