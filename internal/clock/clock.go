package clock

import "time"

// Clock supplies the current time. Recency filters read "now" through it
// so tests can pin it.
type Clock interface {
	Now() time.Time
}

type system struct{}

func (system) Now() time.Time { return time.Now() }

// System returns a Clock backed by the wall clock.
func System() Clock { return system{} }

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }
