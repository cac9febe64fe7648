package draglist

import "time"

// velocityWindow is how far back movement samples count toward the release
// velocity. Matching pointer-velocity trackers elsewhere, older samples are
// discarded so a pause before release reads as zero velocity.
const velocityWindow = 100 * time.Millisecond

type velocitySample struct {
	t time.Time
	x float64
}

// velocityTracker estimates pointer velocity along one axis from timed
// movement samples. It keeps only the samples inside velocityWindow.
type velocityTracker struct {
	samples []velocitySample
}

func (v *velocityTracker) clear() {
	v.samples = v.samples[:0]
}

// add records a movement sample and evicts samples older than the window.
func (v *velocityTracker) add(t time.Time, x float64) {
	cutoff := t.Add(-velocityWindow)
	keep := 0
	for keep < len(v.samples) && v.samples[keep].t.Before(cutoff) {
		keep++
	}
	if keep > 0 {
		v.samples = append(v.samples[:0], v.samples[keep:]...)
	}
	v.samples = append(v.samples, velocitySample{t: t, x: x})
}

// velocity returns the estimated velocity in pixels per second, or zero when
// fewer than two samples are inside the window.
func (v *velocityTracker) velocity() float64 {
	if len(v.samples) < 2 {
		return 0
	}
	first := v.samples[0]
	last := v.samples[len(v.samples)-1]
	dt := last.t.Sub(first.t).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.x - first.x) / dt
}
