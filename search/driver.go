package search

import (
	"fmt"
	"time"
)

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithMaxTicksPerAdvance caps how many ticks one Advance may fire.
// Backlog beyond the cap is dropped, so a long stall does not replay as a
// burst of expansions. n < 1 is ignored.
func WithMaxTicksPerAdvance(n int) DriverOption {
	return func(d *Driver) {
		if n >= 1 {
			d.maxPerAdvance = n
		}
	}
}

// Driver paces a set of tickers on a fixed interval, independent of how often
// the host loop calls Advance. Paused tickers are skipped by Tick as usual.
type Driver struct {
	interval      time.Duration
	pending       time.Duration
	maxPerAdvance int

	tickers []*Ticker
}

// DefaultMaxTicksPerAdvance bounds catch-up after a stall.
const DefaultMaxTicksPerAdvance = 64

// NewDriver returns a Driver firing one tick per interval.
// Returns ErrBadInterval if interval <= 0.
func NewDriver(interval time.Duration, opts ...DriverOption) (*Driver, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadInterval, interval)
	}
	d := &Driver{interval: interval, maxPerAdvance: DefaultMaxTicksPerAdvance}
	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// Add registers t. Adding the same ticker twice is a no-op.
func (d *Driver) Add(t *Ticker) {
	for _, have := range d.tickers {
		if have == t {
			return
		}
	}
	d.tickers = append(d.tickers, t)
}

// Remove unregisters t and reports whether it was registered.
func (d *Driver) Remove(t *Ticker) bool {
	for i, have := range d.tickers {
		if have == t {
			d.tickers = append(d.tickers[:i], d.tickers[i+1:]...)
			return true
		}
	}

	return false
}

// Interval returns the tick interval.
func (d *Driver) Interval() time.Duration { return d.interval }

// SetInterval changes the tick interval. Accumulated time is kept.
func (d *Driver) SetInterval(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("%w: %v", ErrBadInterval, interval)
	}
	d.interval = interval

	return nil
}

// Advance accounts elapsed time and ticks every registered ticker once per
// whole interval crossed. Returns the number of tick rounds fired.
func (d *Driver) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		d.pending += elapsed
	}
	rounds := int(d.pending / d.interval)
	if rounds > d.maxPerAdvance {
		rounds = d.maxPerAdvance
		d.pending = 0
	} else {
		d.pending -= time.Duration(rounds) * d.interval
	}
	for i := 0; i < rounds; i++ {
		for _, t := range d.tickers {
			t.Tick()
		}
	}

	return rounds
}

// Step forces one expansion on every ticker, ignoring pauses and the clock.
// Returns how many tickers advanced.
func (d *Driver) Step() int {
	n := 0
	for _, t := range d.tickers {
		if t.Step() {
			n++
		}
	}

	return n
}

// Running counts registered tickers whose search has not terminated.
func (d *Driver) Running() int {
	n := 0
	for _, t := range d.tickers {
		if t.State() == Running {
			n++
		}
	}

	return n
}
