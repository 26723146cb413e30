package cracker

import (
	"crypto/sha1"
	"math/big"
	"time"

	"github.com/inconshreveable/log15"
	"go.uber.org/atomic"

	"github.com/crackerlabs/go-cracker/pow"
	"github.com/crackerlabs/go-cracker/suffix"
)

// checkEvery is how many iterations a worker runs between reads of the
// shared cancellation flag. Polling the flag is far more expensive than
// one SHA-1 over a short message, so its cost is amortized across many
// hashes; a worker may therefore run up to checkEvery-1 extra iterations
// after another worker has already succeeded.
const checkEvery = 10000000

var oneBig = big.NewInt(1)

// worker owns one contiguous slice of the candidate space and iterates
// it in ascending order: encode the candidate, hash base plus suffix,
// test the difficulty predicate. The first worker to succeed stores the
// shared isFound flag so the others can stop early.
type worker struct {
	id         uint32
	base       []byte
	difficulty uint32
	maxPadding uint32
	rng        Range
	isFound    *atomic.Bool
	report     ReportFunc
	log        log15.Logger
}

// run returns the found suffix, or ok=false when the range was exhausted
// or another worker won.
func (w *worker) run() (string, bool) {
	if w.rng.Upper.IsUint64() {
		return w.runUint64(w.rng.Lower.Uint64(), w.rng.Upper.Uint64())
	}
	return w.runBig()
}

func (w *worker) runUint64(lower, upper uint64) (string, bool) {
	// One buffer is reused for every candidate: the base bytes stay in
	// place and the suffix digits are appended after them.
	buf := make([]byte, len(w.base), len(w.base)+int(w.maxPadding))
	copy(buf, w.base)
	prefix := len(w.base)

	start := time.Now()
	chunkStart := start
	var i uint64
	for value := lower; value < upper; value++ {
		i++

		cand, ok := suffix.Append(buf[:prefix], value)
		if !ok {
			continue
		}
		digest := sha1.Sum(cand)
		if pow.Qualifies(digest[:], w.difficulty) {
			w.isFound.Store(true)
			w.log.Info("found a qualifying suffix", "value", value)
			return string(cand[prefix:]), true
		}

		if i%checkEvery == 0 {
			if w.observe(&chunkStart, start) {
				return "", false
			}
		}
	}

	w.log.Info("range exhausted without a match")
	return "", false
}

func (w *worker) runBig() (string, bool) {
	buf := make([]byte, len(w.base), len(w.base)+int(w.maxPadding))
	copy(buf, w.base)
	prefix := len(w.base)

	start := time.Now()
	chunkStart := start
	var i uint64
	value := new(big.Int).Set(w.rng.Lower)
	for value.Cmp(w.rng.Upper) < 0 {
		i++

		cand, ok := suffix.AppendBig(buf[:prefix], value)
		if ok {
			digest := sha1.Sum(cand)
			if pow.Qualifies(digest[:], w.difficulty) {
				w.isFound.Store(true)
				w.log.Info("found a qualifying suffix", "value", value)
				return string(cand[prefix:]), true
			}
		}

		if i%checkEvery == 0 {
			if w.observe(&chunkStart, start) {
				return "", false
			}
		}
		value.Add(value, oneBig)
	}

	w.log.Info("range exhausted without a match")
	return "", false
}

// observe fires the diagnostics callback when this worker is the
// designated reporter and polls the cancellation flag. It returns true
// when another worker already succeeded.
func (w *worker) observe(chunkStart *time.Time, start time.Time) bool {
	if w.report != nil {
		now := time.Now()
		w.report(Sample{
			HashesPerSec: checkEvery / now.Sub(*chunkStart).Seconds(),
			Running:      now.Sub(start),
		})
		*chunkStart = now
	}
	if w.isFound.Load() {
		w.log.Debug("stopping, another worker found a suffix")
		return true
	}
	return false
}
