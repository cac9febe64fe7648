package draglist

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// released is implemented by visuals that can report they were freed while
// an animation was still running, so the animator can drop the job instead
// of writing offsets into a dead visual.
type released interface {
	Released() bool
}

// moveJob animates one visual's offset with a gween tween per component.
type moveJob struct {
	target Visual
	tx     *gween.Tween
	ty     *gween.Tween
	done   func()
}

// TweenAnimator is the shipped Animator, driving offset animations with
// gween tweens. There is no global manager; the host pumps Update(dt) once
// per frame. Starting a new Move on a visual replaces any animation already
// running on it, without invoking the replaced animation's completion.
type TweenAnimator struct {
	// Ease is the easing function applied to every animation. Nil selects
	// ease.InOutQuad.
	Ease ease.TweenFunc

	jobs []*moveJob
}

// NewTweenAnimator creates an animator with the default easing.
func NewTweenAnimator() *TweenAnimator {
	return &TweenAnimator{}
}

// Move animates v's offset from its current value to (toX, toY) over d,
// then invokes done (which may be nil). A non-positive duration applies the
// target immediately and completes synchronously.
func (a *TweenAnimator) Move(v Visual, toX, toY float64, d time.Duration, done func()) {
	a.cancel(v)

	secs := float32(d.Seconds())
	if secs <= 0 {
		v.SetOffset(toX, toY)
		if done != nil {
			done()
		}
		return
	}

	fn := a.Ease
	if fn == nil {
		fn = ease.InOutQuad
	}
	ox, oy := v.Offset()
	a.jobs = append(a.jobs, &moveJob{
		target: v,
		tx:     gween.New(float32(ox), float32(toX), secs, fn),
		ty:     gween.New(float32(oy), float32(toY), secs, fn),
		done:   done,
	})
}

// cancel drops any running job for v without completing it.
func (a *TweenAnimator) cancel(v Visual) {
	for i, job := range a.jobs {
		if job.target == v {
			a.jobs = append(a.jobs[:i], a.jobs[i+1:]...)
			return
		}
	}
}

// Active reports the number of animations in flight.
func (a *TweenAnimator) Active() int {
	return len(a.jobs)
}

// Update advances all animations by dt seconds. Finished jobs are removed
// and their completions run after the final offset is applied. Jobs whose
// target reports itself released are dropped without completing.
func (a *TweenAnimator) Update(dt float32) {
	var finished []*moveJob
	keep := a.jobs[:0]
	for _, job := range a.jobs {
		if r, ok := job.target.(released); ok && r.Released() {
			continue
		}
		x, fx := job.tx.Update(dt)
		y, fy := job.ty.Update(dt)
		job.target.SetOffset(float64(x), float64(y))
		if fx && fy {
			finished = append(finished, job)
			continue
		}
		keep = append(keep, job)
	}
	a.jobs = keep

	// Completions run after the slice is consistent again: a completion is
	// allowed to start new animations.
	for _, job := range finished {
		if job.done != nil {
			job.done()
		}
	}
}
