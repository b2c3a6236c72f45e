package carousel

import "time"

// Policy decides what a manual step does to autoplay.
type Policy int

const (
	// CancelOnInteract stops autoplay for good once the visitor steps manually.
	CancelOnInteract Policy = iota
	// RestartOnInteract keeps autoplay on and restarts the interval.
	RestartOnInteract
)

// Autoplay is a Cycle that may advance by itself every Interval.
type Autoplay struct {
	Cycle
	Active   bool
	Interval time.Duration
	Policy   Policy
}

func NewAutoplay(index, n int, interval time.Duration, p Policy) Autoplay {
	return Autoplay{Cycle: NewCycle(index, n), Active: n > 1, Interval: interval, Policy: p}
}

// Tick is the timer firing: advance by one if still active.
func (a Autoplay) Tick() Autoplay {
	if !a.Active {
		return a
	}
	a.Cycle = a.Cycle.Next()
	return a
}

// Interact is a manual prev/next.
func (a Autoplay) Interact(delta int) Autoplay {
	a.Cycle = a.Cycle.Step(delta)
	if a.Policy == CancelOnInteract {
		a.Active = false
	}
	return a
}

// Stop cancels the timer without moving.
func (a Autoplay) Stop() Autoplay {
	a.Active = false
	return a
}

// Due reports when the next automatic advance fires, measured from the last
// change. ok is false when nothing is scheduled.
func (a Autoplay) Due() (d time.Duration, ok bool) {
	if !a.Active || a.Len < 2 || a.Interval <= 0 {
		return 0, false
	}
	return a.Interval, true
}
