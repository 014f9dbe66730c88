// Package clock resolves the current logical day in the bot's fixed
// timezone. Every component that needs "today" goes through a Clock so
// the day boundary rolls over in exactly one place.
package clock

import "time"

const dayFormat = "2006-01-02"

// Clock yields the current logical day as a YYYY-MM-DD string.
type Clock interface {
	Today() string
	Now() time.Time
}

// Real reads the wall clock in a fixed location.
type Real struct {
	Loc *time.Location
}

func NewReal(loc *time.Location) Real {
	if loc == nil {
		loc = time.UTC
	}
	return Real{Loc: loc}
}

func (r Real) Now() time.Time { return time.Now().In(r.Loc) }

func (r Real) Today() string { return r.Now().Format(dayFormat) }

// Fixed pins the clock to a single instant, for tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }

func (f Fixed) Today() string { return f.T.Format(dayFormat) }
