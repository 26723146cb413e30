// Package cracker searches for an ASCII suffix whose concatenation with
// a base string hashes, under SHA-1, to a digest with a requested number
// of leading zero hex digits. The bounded candidate space is partitioned
// evenly across parallel workers; the first success cancels the rest.
package cracker

import (
	"sync"
	"time"

	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

var log = log15.New("module", "cracker")

type outcome struct {
	suffix string
	ok     bool
	err    error
}

// GenerateValidString searches for a suffix such that
// SHA-1(base+suffix) starts with at least difficulty zero hex digits.
//
// found is false when every worker exhausted its range without a match;
// callers must treat that as a valid negative outcome, not a fault. When
// several workers succeed in the same run the suffix of the one owning
// the lowest range is reported.
func GenerateValidString(base string, difficulty, workerCount uint32) (suffix string, found bool, err error) {
	if workerCount == 0 {
		return "", false, errors.New("cracker: worker count must be at least 1")
	}
	if difficulty == 0 {
		// Every digest has at least zero leading zero bits, so the empty
		// suffix already qualifies.
		return "", true, nil
	}

	maxPadding := MaxPadding(difficulty)
	maxValue := MaxValue(difficulty)
	ranges := Partition(maxValue, workerCount)
	isFound := atomic.NewBool(false)

	log.Info("starting search",
		"difficulty", difficulty,
		"workers", workerCount,
		"maxPadding", maxPadding,
		"space", maxValue)

	start := time.Now()
	outcomes := make([]outcome, workerCount)
	var wg sync.WaitGroup
	for i := range ranges {
		w := &worker{
			id:         uint32(i),
			base:       []byte(base),
			difficulty: difficulty,
			maxPadding: maxPadding,
			rng:        ranges[i],
			isFound:    isFound,
			log:        log.New("worker", i),
		}
		if i == len(ranges)-1 {
			// The last worker also owns the remainder of the space and is
			// expected to finish last, so it carries the diagnostics.
			w.report = progressReporter(difficulty, workerCount)
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					outcomes[w.id].err = errors.Errorf("cracker: worker %d panicked: %v", w.id, r)
				}
			}()
			outcomes[w.id].suffix, outcomes[w.id].ok = w.run()
		}()
	}
	wg.Wait()

	// A crashed worker leaves part of the space unsearched, so a negative
	// outcome could not be trusted; fail the whole call.
	for i := range outcomes {
		if outcomes[i].err != nil {
			return "", false, outcomes[i].err
		}
	}
	for i := range outcomes {
		if outcomes[i].ok {
			log.Info("search finished", "winner", i, "elapsed", time.Since(start))
			return outcomes[i].suffix, true, nil
		}
	}

	log.Info("candidate space exhausted", "elapsed", time.Since(start))
	return "", false, nil
}
