package obstgarten

import (
	"math/rand"
	"time"
)

// Stats aggregates the outcomes of a batch of simulated games.
type Stats struct {
	Games uint64
	Won   uint64
	Lost  uint64
}

func (s Stats) WinLikelihood() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Games)
}

func (s Stats) LossLikelihood() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Lost) / float64(s.Games)
}

// Simulate plays the game repeatedly and tallies wins and losses. A nil
// rng gets a time-seeded source.
func Simulate(games uint64, fruits, ravens uint32, rng *rand.Rand) Stats {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	stats := Stats{Games: games}
	for i := uint64(0); i < games; i++ {
		if Play(rng, fruits, ravens) == Won {
			stats.Won++
		} else {
			stats.Lost++
		}
	}
	return stats
}
