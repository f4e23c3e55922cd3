package game

import "time"

// Stopwatch measures decision time. Timing is advisory: it is read after a
// move has been made and never interrupts one.
type Stopwatch interface {
	Start()
	Stop()
	Reset()
	Elapsed() time.Duration
}

// NewStopwatch returns a Stopwatch backed by the wall clock.
func NewStopwatch() Stopwatch {
	return &wallStopwatch{}
}

type wallStopwatch struct {
	started time.Time
	total   time.Duration
	running bool
}

func (s *wallStopwatch) Start() {
	if s.running {
		return
	}
	s.started = time.Now()
	s.running = true
}

func (s *wallStopwatch) Stop() {
	if !s.running {
		return
	}
	s.total += time.Since(s.started)
	s.running = false
}

func (s *wallStopwatch) Reset() {
	s.total = 0
	s.running = false
}

func (s *wallStopwatch) Elapsed() time.Duration {
	if s.running {
		return s.total + time.Since(s.started)
	}
	return s.total
}
