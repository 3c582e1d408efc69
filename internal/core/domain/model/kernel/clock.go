package kernel

import "time"

// Clock supplies the current instant to rules that depend on today's date.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	at time.Time
}

func NewFixedClock(at time.Time) FixedClock {
	return FixedClock{at: at}
}

func (c FixedClock) Now() time.Time {
	return c.at
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// Today is the calendar date of c.Now().
func Today(c Clock) Date {
	return DateOf(c.Now())
}
