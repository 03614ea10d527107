package component

import "time"

// Timer counts elapsed time toward Duration. A repeating timer wraps and
// reports Finished on the tick it wraps; a one-shot timer stays finished.
type Timer struct {
	Duration  time.Duration
	Elapsed   time.Duration
	Repeating bool
	finished  bool
}

func NewRepeatingTimer(d time.Duration) Timer {
	return Timer{Duration: d, Repeating: true}
}

// Tick advances the timer and reports whether it fired during this call.
func (t *Timer) Tick(d time.Duration) bool {
	if t.Duration <= 0 {
		t.finished = true
		return true
	}
	if !t.Repeating && t.finished {
		return false
	}
	t.Elapsed += d
	t.finished = t.Elapsed >= t.Duration
	if !t.finished {
		return false
	}
	if t.Repeating {
		t.Elapsed %= t.Duration
	} else {
		t.Elapsed = t.Duration
	}
	return true
}

// Finished reports whether the last Tick fired.
func (t *Timer) Finished() bool {
	return t.finished
}

// Animation gates sprite frame changes on Timer. FrameCount is the number of
// tiles in the sprite sheet.
type Animation struct {
	Timer      Timer
	FrameCount int
}

var AnimationComponent = NewComponent[Animation]()
