package obstgarten_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crackerlabs/go-cracker/obstgarten"
)

func TestSimulateTallies(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	stats := obstgarten.Simulate(5000, 4, 5, rng)
	assert.Equal(t, stats.Games, stats.Won+stats.Lost)
	assert.InDelta(t, 1.0, stats.WinLikelihood()+stats.LossLikelihood(), 1e-9)
}

func TestShortRavenTrackLoses(t *testing.T) {
	// 40 fruit against a single raven step: the first raven face ends the
	// game, and one shows up almost surely within that many rolls.
	rng := rand.New(rand.NewSource(2))
	stats := obstgarten.Simulate(2000, 10, 1, rng)
	assert.True(t, stats.WinLikelihood() < 0.05, "got %v", stats.WinLikelihood())
}

func TestLongRavenTrackWins(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	stats := obstgarten.Simulate(2000, 1, 50, rng)
	assert.True(t, stats.WinLikelihood() > 0.95, "got %v", stats.WinLikelihood())
}

func TestSimulateDeterministic(t *testing.T) {
	first := obstgarten.Simulate(1000, 4, 5, rand.New(rand.NewSource(7)))
	second := obstgarten.Simulate(1000, 4, 5, rand.New(rand.NewSource(7)))
	assert.Equal(t, first, second)
}
