package draglist

import "time"

// LongPress recognizes a long-press at a stable location from a raw pointer
// event stream. It fires its callback at most once per press, when the
// pointer has stayed within the slop radius for the configured duration.
//
// Time is polled rather than scheduled: the host calls Tick with the current
// time each frame. A Dragger owns one internally and feeds it only while
// idle; standalone use works the same way.
type LongPress struct {
	duration time.Duration
	slop     float64
	fn       func(x, y float64)

	enabled bool
	pressed bool
	fired   bool
	originX float64
	originY float64
	downAt  time.Time
}

// NewLongPress creates a recognizer firing fn at the press origin. Zero
// duration selects 500ms; zero slop selects 8px.
func NewLongPress(duration time.Duration, slop float64, fn func(x, y float64)) *LongPress {
	if duration == 0 {
		duration = defaultLongPressDuration
	}
	if slop == 0 {
		slop = defaultSlopRadius
	}
	return &LongPress{duration: duration, slop: slop, fn: fn, enabled: true}
}

// SetEnabled turns recognition on or off. Disabling abandons any press in
// progress.
func (l *LongPress) SetEnabled(enabled bool) {
	l.enabled = enabled
	if !enabled {
		l.pressed = false
	}
}

// PointerDown starts tracking a press at (x, y) occurring at time t.
func (l *LongPress) PointerDown(x, y float64, t time.Time) {
	if !l.enabled {
		return
	}
	l.pressed = true
	l.fired = false
	l.originX = x
	l.originY = y
	l.downAt = t
}

// PointerMove updates the tracked press. Movement beyond the slop radius
// abandons recognition for this press.
func (l *LongPress) PointerMove(x, y float64) {
	if !l.pressed {
		return
	}
	dx := x - l.originX
	dy := y - l.originY
	if dx*dx+dy*dy > l.slop*l.slop {
		l.pressed = false
	}
}

// PointerUp ends the press without firing.
func (l *LongPress) PointerUp() {
	l.pressed = false
}

// PointerCancel ends the press without firing.
func (l *LongPress) PointerCancel() {
	l.pressed = false
}

// Tick checks whether the press has lasted long enough as of time t, firing
// the callback if so. Firing ends the press; a new PointerDown is required
// before the recognizer can fire again.
func (l *LongPress) Tick(t time.Time) {
	if !l.enabled || !l.pressed || l.fired {
		return
	}
	if t.Sub(l.downAt) >= l.duration {
		l.fired = true
		l.pressed = false
		l.fn(l.originX, l.originY)
	}
}
