package services

// Linear-congruential recurrence constants. The modulus is small on purpose:
// the stream only drives synthetic data generation and must stay bit-stable
// across releases, not pass statistical tests.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// SeededSequence is a deterministic pseudo-random scalar stream. The same
// seed always yields the same infinite sequence; there is no external
// entropy source.
type SeededSequence struct {
	seed int64
}

// NewSeededSequence constructs a sequence starting from seed.
func NewSeededSequence(seed int64) *SeededSequence {
	return &SeededSequence{seed: seed}
}

// Next advances the recurrence and returns a value in [0, 1).
func (s *SeededSequence) Next() float64 {
	s.seed = (s.seed*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(s.seed) / lcgModulus
}
