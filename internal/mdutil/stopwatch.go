package mdutil

import "time"

// Stopwatch times a single operation for --timeit-style diagnostic output.
// Grounded on the started-at/time.Since idiom used for orchestration timing
// elsewhere in this codebase's ancestry, generalized into a reusable type
// rather than a local startTime variable since every CLI subcommand needs
// the same measurement.
type Stopwatch struct {
	start time.Time
}

// NewStopwatch starts timing immediately.
func NewStopwatch() Stopwatch {
	return Stopwatch{start: time.Now()}
}

// Elapsed returns the time since the stopwatch was created.
func (s Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}
