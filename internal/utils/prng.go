// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded rand.Rand so the whole session shares one
// reproducible random stream. Seed 0 falls back to the clock.
type PRNGService struct {
	rng *rand.Rand
}

func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Shuffle permutes n elements via the given swap function.
func (s *PRNGService) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// ChooseWeighted picks one id with probability proportional to its
// weight. Returns "" for an empty input; non-positive total weight falls
// back to the first entry.
func (s *PRNGService) ChooseWeighted(ids []string, weights []int) string {
	if len(ids) == 0 {
		return ""
	}

	totalWeight := 0
	for _, w := range weights {
		totalWeight += w
	}
	if totalWeight <= 0 {
		return ids[0]
	}

	r := s.Intn(totalWeight)
	upto := 0
	for i, w := range weights {
		if upto+w > r {
			return ids[i]
		}
		upto += w
	}
	return ids[len(ids)-1]
}
