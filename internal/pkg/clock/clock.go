package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func New() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always returns the same instant. Used in tests.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
