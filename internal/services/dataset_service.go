package services

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/psgurav-dev/analytics-dashboard/internal/domain/dataset"
)

// DefaultSeed is the fixed generator seed. Every process generates the same
// dataset for a given size, so results are reproducible across restarts.
const DefaultSeed = 12345

// DatasetCache is a single-slot, size-keyed cache for the canonical record
// set. Only the most recently requested size is retained; a different size
// replaces the slot. The backing slice is never mutated after publication,
// so slices handed out before a replacement stay intact.
type DatasetCache struct {
	mu      sync.RWMutex
	size    int
	records []dataset.Record
}

// NewDatasetCache creates an empty cache. Callers own the instance; there is
// no package-level ambient cache, so tests can construct isolated ones.
func NewDatasetCache() *DatasetCache {
	return &DatasetCache{}
}

func (c *DatasetCache) get(size int) ([]dataset.Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.records == nil || c.size != size {
		return nil, false
	}
	return c.records, true
}

func (c *DatasetCache) put(size int, records []dataset.Record) {
	c.mu.Lock()
	c.size = size
	c.records = records
	c.mu.Unlock()
}

// DatasetService generates the canonical synthetic record set and owns its
// cache. Generation is a pure function of (seed, size, clock), so concurrent
// regeneration for the same size is idempotent and safe to race.
type DatasetService struct {
	cache  *DatasetCache
	seed   int64
	window time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// NewDatasetService creates a dataset service. Records carry timestamps
// uniformly distributed over the trailing window relative to generation time.
func NewDatasetService(cache *DatasetCache, seed int64, window time.Duration, logger *zap.Logger) *DatasetService {
	return &DatasetService{
		cache:  cache,
		seed:   seed,
		window: window,
		now:    time.Now,
		logger: logger,
	}
}

// Dataset returns the canonical record set for count rows, generating and
// caching it on first request. A request for a different count regenerates
// and replaces the cached set.
func (s *DatasetService) Dataset(count int) []dataset.Record {
	if records, ok := s.cache.get(count); ok {
		return records
	}
	return s.Refresh(count)
}

// Refresh regenerates the record set unconditionally and replaces the cache
// slot. The scheduler calls this daily so the trailing timestamp window
// tracks wall time on long-lived processes.
func (s *DatasetService) Refresh(count int) []dataset.Record {
	start := time.Now()
	records := s.generate(count)
	s.cache.put(count, records)
	s.logger.Info("generated dataset",
		zap.Int("rows", count),
		zap.Duration("took", time.Since(start)),
	)
	return records
}

// generate builds count records. Draws occur in the fixed order page,
// timestamp, device, status per record; changing the order would change
// every dataset ever generated.
func (s *DatasetService) generate(count int) []dataset.Record {
	rng := NewSeededSequence(s.seed)
	now := s.now()
	windowStart := now.Add(-s.window)
	span := float64(now.Sub(windowStart))

	records := make([]dataset.Record, 0, count)
	for i := 0; i < count; i++ {
		page := dataset.Pages[int(rng.Next()*float64(len(dataset.Pages)))]
		timestamp := windowStart.Add(time.Duration(rng.Next() * span))
		device := dataset.Devices[int(rng.Next()*float64(len(dataset.Devices)))]
		status := dataset.Statuses[int(rng.Next()*float64(len(dataset.Statuses)))]

		records = append(records, dataset.Record{
			UserID:    fmt.Sprintf("user_%06d", i+1000),
			Page:      page,
			Timestamp: timestamp,
			Device:    device,
			Status:    status,
		})
	}
	return records
}
