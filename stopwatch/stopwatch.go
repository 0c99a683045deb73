// SPDX-License-Identifier: MIT

package stopwatch

import (
	"errors"
	"time"
)

// ErrNotStarted is returned by Stop when no Start preceded it.
var ErrNotStarted = errors.New("stopwatch: stop called without start")

// Option configures a Stopwatch.
type Option func(*Stopwatch)

// WithClock replaces time.Now as the time source. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("stopwatch: WithClock: nil clock")
	}

	return func(s *Stopwatch) { s.now = now }
}

// Stopwatch records a reference instant and reports the time elapsed since it.
// It is not safe for concurrent use.
type Stopwatch struct {
	now     func() time.Time
	start   time.Time
	started bool
}

// New returns a stopped Stopwatch.
func New(opts ...Option) *Stopwatch {
	s := &Stopwatch{now: time.Now}
	for _, fn := range opts {
		if fn != nil {
			fn(s)
		}
	}

	return s
}

// Start records the reference instant. Calling Start on a running watch
// restarts it.
func (s *Stopwatch) Start() {
	s.start = s.now()
	s.started = true
}

// Running reports whether Start was called since the last Stop.
func (s *Stopwatch) Running() bool { return s.started }

// Stop returns the milliseconds elapsed since Start and stops the watch.
// Errors: ErrNotStarted.
func (s *Stopwatch) Stop() (float64, error) {
	d, err := s.StopDuration()
	if err != nil {
		return 0, err
	}

	return float64(d) / float64(time.Millisecond), nil
}

// StopDuration is Stop returning a time.Duration.
func (s *Stopwatch) StopDuration() (time.Duration, error) {
	if !s.started {
		return 0, ErrNotStarted
	}
	s.started = false

	return s.now().Sub(s.start), nil
}

// Time runs f between Start and Stop and returns the elapsed milliseconds.
func (s *Stopwatch) Time(f func()) float64 {
	s.Start()
	f()
	ms, _ := s.Stop() // started just above

	return ms
}
