package pricing

import (
	"context"

	"github.com/aescanero/pricecell/pkg/ports"
	"go.uber.org/zap"
)

// Service reads and mutates the shared price
type Service struct {
	store   ports.PriceStore
	metrics ports.MetricsCollector
	logger  *zap.Logger
}

// NewService creates a new pricing service
func NewService(store ports.PriceStore, metrics ports.MetricsCollector, logger *zap.Logger) *Service {
	return &Service{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// Current returns the current price and whether one is set
func (s *Service) Current(ctx context.Context) (uint64, bool) {
	price, ok := s.store.Read()

	if ok {
		s.metrics.RecordRead(ports.ReadResultHit)
	} else {
		s.metrics.RecordRead(ports.ReadResultMiss)
	}

	return price, ok
}

// Update sets the price
func (s *Service) Update(ctx context.Context, price uint64) {
	s.store.Set(price)

	s.metrics.RecordWrite(ports.WriteOpSet)

	s.logger.Debug("price updated", zap.Uint64("price", price))
}

// Reset clears the price. Resetting an absent price succeeds.
func (s *Service) Reset(ctx context.Context) {
	s.store.Clear()

	s.metrics.RecordWrite(ports.WriteOpClear)

	s.logger.Debug("price cleared")
}

// Present reports whether a price is set without counting as a read
func (s *Service) Present() bool {
	_, ok := s.store.Read()
	return ok
}
