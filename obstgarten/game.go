// Package obstgarten simulates the Orchard (Obstgarten) children's board
// game: players remove fruit from four piles by die roll and win when
// every pile is empty before the raven reaches the orchard. The basket
// face always takes from the largest pile, which is the optimal move.
package obstgarten

import "math/rand"

// Die faces.
const (
	Green = iota
	Blue
	Red
	Yellow
	Basket
	Raven

	faces = 6
	piles = 4
)

// Result of a single playthrough.
type Result int

const (
	Won Result = iota
	Lost
)

// Play runs one game with the given pile size and raven track length and
// returns its outcome.
func Play(rng *rand.Rand, fruits, ravens uint32) Result {
	ravenPosition := ravens
	pile := [piles]uint32{fruits, fruits, fruits, fruits}

	for {
		roll := rng.Intn(faces)
		switch roll {
		case Basket:
			// Cannot roll with every pile empty: the previous roll would
			// already have ended the game, so the max pile is nonzero.
			argmax := 0
			for i := 1; i < piles; i++ {
				if pile[i] > pile[argmax] {
					argmax = i
				}
			}
			pile[argmax]--
		case Raven:
			ravenPosition--
		default:
			// Green through Yellow index their own pile; an empty pile
			// wastes the roll.
			if pile[roll] > 0 {
				pile[roll]--
			}
		}

		if pile[0]+pile[1]+pile[2]+pile[3] == 0 {
			return Won
		}
		if ravenPosition == 0 {
			return Lost
		}
	}
}
