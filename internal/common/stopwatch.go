package common

import (
	"time"
)

// This stopwatch keeps track of time. You can set a timeout for it,
// make it start counting time, and ask it if the timeout has been reached
type Stopwatch struct {
	Timeout   time.Duration
	startTime time.Time
}

func NewStopwatch(timeout time.Duration) Stopwatch {
	return Stopwatch{Timeout: timeout}
}

func (s *Stopwatch) Start() {
	s.startTime = time.Now()
}

// Return true if the timeout has been reached since the last call to Start
func (s *Stopwatch) Elapsed() bool {
	return time.Since(s.startTime) >= s.Timeout
}
