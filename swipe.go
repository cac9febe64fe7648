package draglist

import (
	"math"
	"sort"
	"time"
)

// SwipeConfig carries construction-time parameters for a Swiper. The zero
// value selects the defaults documented on each field.
type SwipeConfig struct {
	// DistanceFraction is the fraction of the row width the pointer must
	// travel for a release to dismiss regardless of velocity. Zero selects
	// one half.
	DistanceFraction float64

	// MinFlingVelocity is the horizontal release velocity, in pixels per
	// second, above which a slower-than-threshold swipe still dismisses.
	// Zero selects 400.
	MinFlingVelocity float64

	// MaxFlingVelocity caps the velocity considered a deliberate fling.
	// Zero selects 8000.
	MaxFlingVelocity float64

	// SlopRadius is the horizontal movement required before a session counts
	// as a swipe rather than a tap. Zero selects 8.
	SlopRadius float64

	// MoveDuration is the duration of the fly-out and snap-back animations.
	// Zero selects 150ms.
	MoveDuration time.Duration

	// Now reports the current time. Nil selects time.Now.
	Now func() time.Time
}

func (c SwipeConfig) withDefaults() SwipeConfig {
	if c.DistanceFraction == 0 {
		c.DistanceFraction = 0.5
	}
	if c.MinFlingVelocity == 0 {
		c.MinFlingVelocity = 400
	}
	if c.MaxFlingVelocity == 0 {
		c.MaxFlingVelocity = 8000
	}
	if c.SlopRadius == 0 {
		c.SlopRadius = defaultSlopRadius
	}
	if c.MoveDuration == 0 {
		c.MoveDuration = defaultMoveDuration
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// Swiper tracks per-row horizontal swipe gestures and resolves each session
// to a Disposition: dismissed left, dismissed right, or not dismissed. A row
// dismisses when its displacement exceeds a width fraction, or when the
// release velocity is a deliberate horizontal fling in the direction of the
// displacement. Vertical-dominant movement cancels the session.
//
// Dismissed rows fly off-screen and are reported in a batch: the dismiss
// callback fires once with every position whose fly-out completed, sorted
// descending so the host can remove them back to front. Independent of the
// drag machinery, and sharing none of its state.
type Swiper struct {
	host     Host
	animator Animator
	dismiss  func(positions []int)
	cfg      SwipeConfig

	enabled bool

	// Gesture session. Valid while tracking.
	tracking bool
	swiping  bool
	position int
	view     RowView
	width    float64
	downX    float64
	downY    float64
	vel      velocityTracker

	// Dismissal batch.
	pending  []int
	inFlight int
}

// NewSwiper creates a swipe-to-dismiss tracker. dismiss receives each batch
// of dismissed positions, sorted descending; the host applies the removals
// in one pass.
func NewSwiper(host Host, animator Animator, dismiss func(positions []int), cfg SwipeConfig) *Swiper {
	return &Swiper{
		host:     host,
		animator: animator,
		dismiss:  dismiss,
		cfg:      cfg.withDefaults(),
		enabled:  true,
	}
}

// Enabled reports whether new swipe sessions may start.
func (s *Swiper) Enabled() bool {
	return s.enabled
}

// SetEnabled turns swipe tracking on or off. Disabling cancels any session
// in progress; fly-outs already in flight complete and report normally.
func (s *Swiper) SetEnabled(enabled bool) {
	s.enabled = enabled
	if !enabled && s.tracking {
		s.snapBack()
	}
}

// PointerDown begins a session over the row under the point, if any. Never
// consumes the event.
func (s *Swiper) PointerDown(x, y float64) bool {
	if !s.enabled || s.tracking {
		return false
	}
	index, ok := s.host.ItemUnder(x, y)
	if !ok {
		return false
	}
	view, ok := s.host.ViewFor(index)
	if !ok {
		return false
	}
	s.tracking = true
	s.swiping = false
	s.position = index
	s.view = view
	s.width = view.Bounds().Width
	s.downX = x
	s.downY = y
	s.vel.clear()
	s.vel.add(s.cfg.Now(), x)
	return false
}

// PointerMove tracks displacement. Once horizontal movement exceeds the slop
// and dominates vertical movement, the session becomes a swipe and the row
// follows the pointer; the event is consumed from then on.
func (s *Swiper) PointerMove(x, y float64) bool {
	if !s.tracking {
		return false
	}
	s.vel.add(s.cfg.Now(), x)
	dx := x - s.downX
	dy := y - s.downY

	if !s.swiping {
		if math.Abs(dy) > s.cfg.SlopRadius && math.Abs(dy) > math.Abs(dx) {
			// Vertical-dominant: hand the gesture back to list scrolling.
			s.reset()
			return false
		}
		if math.Abs(dx) > s.cfg.SlopRadius {
			s.swiping = true
		}
	}
	if !s.swiping {
		return false
	}
	s.view.SetOffset(dx, 0)
	return true
}

// PointerUp resolves the session. The returned Disposition reports the
// outcome for the tracked row.
func (s *Swiper) PointerUp(x, y float64) Disposition {
	if !s.tracking {
		return NotDismissed
	}
	s.vel.add(s.cfg.Now(), x)
	dx := x - s.downX

	disposition := s.resolve(dx)
	if disposition == NotDismissed {
		s.snapBack()
		return NotDismissed
	}

	target := s.width
	if disposition == DismissLeft {
		target = -s.width
	}
	view := s.view
	position := s.position
	s.pending = append(s.pending, position)
	s.inFlight++
	s.animator.Move(view, target, 0, s.cfg.MoveDuration, func() {
		view.SetVisible(false)
		s.inFlight--
		if s.inFlight == 0 {
			s.flush()
		}
	})
	s.reset()
	return disposition
}

// PointerCancel abandons the session, snapping the row back.
func (s *Swiper) PointerCancel() {
	if s.tracking {
		s.snapBack()
	}
}

// resolve decides the disposition for a release with net displacement dx.
func (s *Swiper) resolve(dx float64) Disposition {
	if s.width <= 0 {
		return NotDismissed
	}
	if math.Abs(dx) > s.width*s.cfg.DistanceFraction {
		if dx < 0 {
			return DismissLeft
		}
		return DismissRight
	}
	if !s.swiping {
		return NotDismissed
	}
	v := s.vel.velocity()
	if math.Abs(v) >= s.cfg.MinFlingVelocity && math.Abs(v) <= s.cfg.MaxFlingVelocity &&
		(v < 0) == (dx < 0) {
		if dx < 0 {
			return DismissLeft
		}
		return DismissRight
	}
	return NotDismissed
}

func (s *Swiper) snapBack() {
	if s.swiping {
		s.animator.Move(s.view, 0, 0, s.cfg.MoveDuration, nil)
	}
	s.reset()
}

func (s *Swiper) reset() {
	s.tracking = false
	s.swiping = false
	s.view = nil
}

// flush reports the accumulated batch, sorted descending, and clears it.
func (s *Swiper) flush() {
	if len(s.pending) == 0 {
		return
	}
	batch := make([]int, len(s.pending))
	copy(batch, s.pending)
	s.pending = s.pending[:0]
	sort.Sort(sort.Reverse(sort.IntSlice(batch)))
	if s.dismiss != nil {
		s.dismiss(batch)
	}
}
