package cracker

import (
	"math"
	"time"

	"github.com/rcrowley/go-metrics"
)

// Sample is one throughput observation taken by the designated worker on
// the cancellation-poll cadence. Diagnostics are observational only and
// never influence the search.
type Sample struct {
	HashesPerSec float64
	Running      time.Duration
}

// ReportFunc receives throughput samples from the designated worker.
type ReportFunc func(Sample)

// progressReporter logs the sampled hash rate together with a projected
// search duration of 16^difficulty expected trials spread over all
// workers, and feeds the hash meter.
func progressReporter(difficulty, workerCount uint32) ReportFunc {
	meter := metrics.GetOrRegisterMeter("cracker/hashes", metrics.DefaultRegistry)
	expectedTrials := math.Pow(16, float64(difficulty))
	return func(s Sample) {
		meter.Mark(checkEvery)
		seconds := expectedTrials / (s.HashesPerSec * float64(workerCount))
		eta := time.Duration(seconds * float64(time.Second))
		log.Info("search progress",
			"hashesPerSec", uint64(s.HashesPerSec),
			"running", s.Running,
			"projected", eta)
	}
}
