// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded math/rand source so a whole game (level layout,
// procedural waves) can be replayed from one seed.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создаёт сервис с заданным сидом.
// Нулевой сид заменяется текущим временем.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed возвращает фактический сид.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// IntRange returns a random integer in [lo, lo+spread).
func (s *PRNGService) IntRange(lo, spread int) int {
	if spread <= 0 {
		return lo
	}
	return lo + s.rng.Intn(spread)
}
