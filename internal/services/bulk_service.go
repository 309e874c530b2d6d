package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrTransientFailure is returned when an injected failure fires. Callers
// distinguish it from validation errors to decide on retry or rollback of
// their optimistic view.
var ErrTransientFailure = errors.New("transient bulk action failure")

// FailurePolicy makes the simulated latency and partial-failure rate of
// bulk actions explicit and configurable rather than a hidden constant.
// Rate is a probability in [0, 1]; zero disables failure injection.
type FailurePolicy struct {
	Rate    float64
	Latency time.Duration
}

// BulkResult reports a completed bulk action.
type BulkResult struct {
	Updated int
	Message string
}

// BulkActionService models bulk row mutations. The canonical record set is
// never touched; the presentation layer applies the action to its own copy
// once the service reports success.
type BulkActionService struct {
	policy FailurePolicy
	mu     sync.Mutex
	rng    *rand.Rand
	logger *zap.Logger
}

// NewBulkActionService creates a bulk action service. A nil rng gets a
// time-seeded source; tests pass a fixed-seed one for reproducible rolls.
func NewBulkActionService(policy FailurePolicy, rng *rand.Rand, logger *zap.Logger) *BulkActionService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &BulkActionService{policy: policy, rng: rng, logger: logger}
}

// Apply performs the named action on the given user ids, honoring the
// configured latency and failure rate. The latency sleep is cut short when
// ctx is cancelled.
func (s *BulkActionService) Apply(ctx context.Context, userIDs []string, action string) (*BulkResult, error) {
	if s.policy.Latency > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.policy.Latency):
		}
	}

	s.mu.Lock()
	roll := s.rng.Float64()
	s.mu.Unlock()

	if roll < s.policy.Rate {
		s.logger.Warn("bulk action failed",
			zap.String("action", action),
			zap.Int("rows", len(userIDs)),
		)
		return nil, ErrTransientFailure
	}

	return &BulkResult{
		Updated: len(userIDs),
		Message: fmt.Sprintf("Successfully marked %d rows as %s", len(userIDs), action),
	}, nil
}
