package pricing

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	metricsprom "github.com/aescanero/pricecell/pkg/adapters/metrics/prometheus"
	"github.com/aescanero/pricecell/pkg/adapters/storage/memory"
	"github.com/aescanero/pricecell/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap/zaptest"
)

type fakeMetrics struct {
	mu     sync.Mutex
	reads  map[ports.ReadResult]int
	writes map[ports.WriteOp]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{
		reads:  make(map[ports.ReadResult]int),
		writes: make(map[ports.WriteOp]int),
	}
}

func (f *fakeMetrics) RecordRead(result ports.ReadResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads[result]++
}

func (f *fakeMetrics) RecordWrite(op ports.WriteOp) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes[op]++
}

func TestServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	m := newFakeMetrics()
	s := NewService(memory.NewPriceCell(), m, zaptest.NewLogger(t))

	if _, ok := s.Current(ctx); ok {
		t.Fatalf("expected absent on fresh service")
	}

	s.Update(ctx, 100)
	if v, ok := s.Current(ctx); !ok || v != 100 {
		t.Fatalf("expected 100, got %d (%v)", v, ok)
	}

	s.Reset(ctx)
	if _, ok := s.Current(ctx); ok {
		t.Fatalf("expected absent after reset")
	}

	if m.reads[ports.ReadResultHit] != 1 || m.reads[ports.ReadResultMiss] != 2 {
		t.Fatalf("unexpected read counts: %v", m.reads)
	}
	if m.writes[ports.WriteOpSet] != 1 || m.writes[ports.WriteOpClear] != 1 {
		t.Fatalf("unexpected write counts: %v", m.writes)
	}
}

func TestServicePresentIsNotCounted(t *testing.T) {
	m := newFakeMetrics()
	s := NewService(memory.NewPriceCellWith(5), m, zaptest.NewLogger(t))

	if !s.Present() {
		t.Fatalf("expected present")
	}
	if len(m.reads) != 0 {
		t.Fatalf("Present must not count as a read: %v", m.reads)
	}
}

// pausingStore holds Set after the value is stored, until release is closed
type pausingStore struct {
	*memory.PriceCell
	stored  chan struct{}
	release chan struct{}
}

func (p *pausingStore) Set(price uint64) {
	p.PriceCell.Set(price)
	close(p.stored)
	<-p.release
}

func TestServiceGaugesMatchStoreAfterRacingWriters(t *testing.T) {
	ctx := context.Background()
	store := &pausingStore{
		PriceCell: memory.NewPriceCell(),
		stored:    make(chan struct{}),
		release:   make(chan struct{}),
	}
	reg := prometheus.NewRegistry()
	s := NewService(store, metricsprom.NewCollector(reg, store), zaptest.NewLogger(t))

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Update(ctx, 5)
	}()

	// Update has written 5 but not returned; Reset takes the lock after it
	<-store.stored
	s.Reset(ctx)
	close(store.release)
	<-done

	if _, ok := store.Read(); ok {
		t.Fatalf("expected the later Reset to win")
	}

	for name, want := range map[string]float64{
		"pricecell_price_present": 0,
		"pricecell_price":         0,
	} {
		expected := fmt.Sprintf("# HELP %s %s\n# TYPE %s gauge\n%s %v\n", name, gaugeHelp[name], name, name, want)
		if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), name); err != nil {
			t.Fatalf("%s disagrees with store: %v", name, err)
		}
	}
}

var gaugeHelp = map[string]string{
	"pricecell_price_present": "1 if a price is currently set, 0 otherwise",
	"pricecell_price":         "Current price, 0 when absent",
}

func TestServiceResetIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewService(memory.NewPriceCell(), newFakeMetrics(), zaptest.NewLogger(t))

	s.Reset(ctx)
	s.Reset(ctx)
	if _, ok := s.Current(ctx); ok {
		t.Fatalf("expected absent")
	}
}

func TestServiceLastWriteWins(t *testing.T) {
	ctx := context.Background()
	s := NewService(memory.NewPriceCell(), newFakeMetrics(), zaptest.NewLogger(t))

	s.Update(ctx, 1)
	s.Update(ctx, 2)
	if v, _ := s.Current(ctx); v != 2 {
		t.Fatalf("expected 2, got %d", v)
	}
}
