// Package analytics derives streaks, success rates, progress series and
// ranks from snapshots of habits and their entries. Nothing here performs
// I/O or mutates its input.
package analytics

import (
	"time"
)

const (
	DateFormat  = "2006-01-02"
	ChartFormat = "Jan 2"

	// DefaultWindow is the number of days in the progress chart and the
	// per-habit recent history.
	DefaultWindow = 30
)

// Engine holds the clock and timezone used to decide what "today" is.
// The zero value is not usable; construct with New.
type Engine struct {
	now func() time.Time
	loc *time.Location
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// New returns an Engine that uses the wall clock in UTC unless overridden.
func New(opts ...Option) *Engine {
	e := &Engine{now: time.Now, loc: time.UTC}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Today is the current calendar day in the engine's location, expressed as
// midnight UTC so day arithmetic never crosses a DST boundary.
func (e *Engine) Today() time.Time {
	y, m, d := e.now().In(e.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
