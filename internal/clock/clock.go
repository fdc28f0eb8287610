package clock

import "time"

// Clock abstracts the current time so repositories can stamp
// documents deterministically in tests.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock.
type Real struct{}

// Now returns the current time in UTC.
func (Real) Now() time.Time {
	return time.Now().UTC()
}

// Fake is a controllable clock for tests.
type Fake struct {
	now time.Time
}

// NewFake creates a Fake set to the given time.
func NewFake(t time.Time) *Fake {
	return &Fake{now: t}
}

func (f *Fake) Now() time.Time {
	return f.now
}

// Set moves the fake clock to a specific time.
func (f *Fake) Set(t time.Time) {
	f.now = t
}

// Advance moves the fake clock forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}
