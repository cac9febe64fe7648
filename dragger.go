package draglist

import (
	"time"
)

// Dragger converts a stream of raw pointer events into drag-to-reorder
// semantics over a Host: long-press starts a drag, the mobile proxy tracks
// the pointer along the configured axis, crossing a neighbor's leading edge
// swaps positions, nearing a viewport edge auto-scrolls, and release settles
// the proxy into its final slot.
//
// Lifecycle is StateIdle → StateDragging → StateSettling → StateIdle.
// Everything runs on the host's update thread; there is no locking.
type Dragger struct {
	host     Host
	notifier Notifier
	factory  ProxyFactory
	animator Animator

	axis         Axis
	moveDuration time.Duration
	now          func() time.Time

	longPress *LongPress
	scroller  *autoScroller

	enabled bool
	state   DragState

	// Pointer session. Valid while pointerDown.
	pointerDown bool
	downX       float64
	downY       float64

	// Drag session. Valid while state != StateIdle.
	mobile      Proxy
	mobileStart Vec2    // proxy top-left at drag start
	mobileSize  float64 // proxy extent along the axis
	current     int     // current position of the dragged item
	isScrolling bool
	inSwap      bool // suppresses re-entrant swap evaluation from OnSwap
}

// NewDragger creates a drag-to-reorder manager over the given collaborators.
// cfg.Axis must be Horizontal or Vertical; any other value panics.
func NewDragger(host Host, notifier Notifier, factory ProxyFactory, animator Animator, cfg Config) *Dragger {
	if cfg.Axis != Horizontal && cfg.Axis != Vertical {
		panic("draglist: invalid Axis")
	}
	cfg = cfg.withDefaults()
	d := &Dragger{
		host:         host,
		notifier:     notifier,
		factory:      factory,
		animator:     animator,
		axis:         cfg.Axis,
		moveDuration: cfg.MoveDuration,
		now:          cfg.Now,
		enabled:      true,
		current:      -1,
	}
	d.longPress = NewLongPress(cfg.LongPressDuration, cfg.SlopRadius, func(x, y float64) {
		d.StartDrag()
	})
	d.scroller = &autoScroller{host: host, axis: cfg.Axis, amount: cfg.ScrollAmount}
	return d
}

// State reports the current drag lifecycle state.
func (d *Dragger) State() DragState {
	return d.state
}

// Enabled reports whether new drags may start.
func (d *Dragger) Enabled() bool {
	return d.enabled
}

// SetEnabled turns drag starts and long-press recognition on or off. A drag
// already in progress is not interrupted; it resolves through the usual
// pointer up or cancel. Disabling while settling finalizes the settle
// immediately. Re-enabling never resumes an aborted drag.
func (d *Dragger) SetEnabled(enabled bool) {
	d.enabled = enabled
	d.longPress.SetEnabled(enabled)
	if !enabled && d.state == StateSettling {
		d.finishSettle()
	}
}

// Tick advances long-press recognition. Hosts call it once per frame with
// the current time.
func (d *Dragger) Tick(t time.Time) {
	if d.state == StateIdle && d.enabled {
		d.longPress.Tick(t)
	}
}

// PointerDown records the press origin. It never consumes the event, so the
// host's own scrolling and tap behavior is preserved until a drag starts.
func (d *Dragger) PointerDown(x, y float64) bool {
	if !d.enabled {
		return false
	}
	if d.state == StateIdle {
		d.longPress.PointerDown(x, y, d.now())
	}
	d.pointerDown = true
	d.downX = x
	d.downY = y
	return false
}

// PointerMove tracks the pointer. While dragging it repositions the mobile
// proxy, evaluates swaps, and evaluates auto-scroll, and consumes the event.
// While settling it is a no-op.
func (d *Dragger) PointerMove(x, y float64) bool {
	if !d.enabled && d.state == StateIdle {
		return false
	}
	if d.state != StateDragging {
		if d.state == StateIdle {
			d.longPress.PointerMove(x, y)
		}
		return false
	}
	if d.mobile == nil {
		return false
	}

	delta := d.axis.component(x, y) - d.axis.component(d.downX, d.downY)
	d.mobile.SetOffset(d.axis.vector(delta))

	d.evaluateSwaps()
	d.evaluateScroll()
	return true
}

// PointerUp ends the pointer session. A drag in progress emits its drop
// notification and settles.
func (d *Dragger) PointerUp(x, y float64) bool {
	if d.state == StateIdle {
		d.longPress.PointerUp()
	}
	d.pointerDown = false
	if d.state == StateDragging {
		d.endDrag(true)
	}
	return false
}

// PointerCancel aborts the pointer session. A drag in progress settles
// without a drop notification; a settle in progress finalizes immediately.
func (d *Dragger) PointerCancel() bool {
	if d.state == StateIdle {
		d.longPress.PointerCancel()
	}
	d.pointerDown = false
	switch d.state {
	case StateDragging:
		d.endDrag(false)
	case StateSettling:
		d.finishSettle()
	}
	return false
}

// StartDrag begins a drag at the recorded press origin. It requires an idle,
// enabled Dragger with the pointer currently down and a row under the
// origin; otherwise it is a silent no-op. The built-in long-press classifier
// calls it on recognition, and hosts with their own drag handles may call it
// directly.
func (d *Dragger) StartDrag() {
	if !d.enabled || d.state != StateIdle || !d.pointerDown {
		return
	}
	index, ok := d.host.ItemUnder(d.downX, d.downY)
	if !ok {
		return
	}
	view, ok := d.host.ViewFor(index)
	if !ok {
		return
	}

	b := view.Bounds()
	d.current = index
	d.mobile = d.factory.Snapshot(view)
	d.mobileStart = Vec2{X: b.X, Y: b.Y}
	d.mobileSize = d.axis.extent(b)
	view.SetVisible(false)
	d.state = StateDragging
}

// mobileLead returns the mobile proxy's leading edge along the axis.
func (d *Dragger) mobileLead() float64 {
	ox, oy := d.mobile.Offset()
	return d.axis.component(d.mobileStart.X, d.mobileStart.Y) + d.axis.component(ox, oy)
}

// evaluateSwaps checks the immediate neighbor in each direction and performs
// at most one swap per direction. Crossings are never cascaded: a fast move
// spanning two rows still swaps a single step, matching the classic
// list-reorder behavior hosts calibrate row sizes against.
func (d *Dragger) evaluateSwaps() {
	if d.inSwap {
		return
	}
	pos := d.current
	lead := d.mobileLead()

	if prev, ok := d.host.ViewFor(pos - 1); ok && lead < d.axis.lead(prev.Bounds()) {
		d.swapWith(prev, pos, pos-1)
	}
	if next, ok := d.host.ViewFor(pos + 1); ok && lead > d.axis.lead(next.Bounds()) {
		d.swapWith(next, pos, pos+1)
	}
}

// swapWith reorders the dragged item from its current slot into the
// neighbor's slot. The neighbor's content, now at the vacated slot, slides
// into place. A missing view for the vacated slot skips the visuals but
// never the model swap.
func (d *Dragger) swapWith(switchView RowView, from, to int) {
	origView, haveOrig := d.host.ViewFor(from)

	var slide float64
	if haveOrig {
		slide = d.axis.lead(origView.Bounds()) - d.axis.lead(switchView.Bounds())
	}

	d.inSwap = true
	d.notifier.OnSwap(from, to)
	d.inSwap = false

	switchView.SetVisible(false)
	if haveOrig {
		origView.SetVisible(true)
		origView.SetOffset(d.axis.vector(-slide))
		d.animator.Move(origView, 0, 0, d.moveDuration, nil)
	}

	d.current = to
}

// evaluateScroll starts, continues, or stops auto-scrolling based on where
// the mobile proxy's edges sit relative to the viewport. Reaching a boundary
// (inclusive) starts scrolling exactly once; re-entering the safe zone stops
// it exactly once.
func (d *Dragger) evaluateScroll() {
	vw, vh := d.host.ViewportExtent()
	boundary := d.axis.component(vw, vh)
	lead := d.mobileLead()
	trail := lead + d.mobileSize

	switch {
	case lead <= 0 && !d.isScrolling:
		d.isScrolling = true
		d.scroller.start(scrollTowardStart)
	case trail >= boundary && !d.isScrolling:
		d.isScrolling = true
		d.scroller.start(scrollTowardEnd)
	case lead > 0 && trail < boundary && d.isScrolling:
		d.stopScrolling()
	}
}

func (d *Dragger) stopScrolling() {
	if d.isScrolling {
		d.scroller.stop()
		d.isScrolling = false
	}
}

// endDrag leaves StateDragging: the auto-scroller is always torn down, the
// drop notification fires on pointer up only, and the mobile proxy settles
// into the current slot. A missing slot view skips the animation and
// finalizes immediately.
func (d *Dragger) endDrag(drop bool) {
	d.stopScrolling()
	if drop {
		d.notifier.OnDrop(d.current)
	}
	d.state = StateSettling

	view, ok := d.host.ViewFor(d.current)
	if !ok || d.mobile == nil {
		d.finishSettle()
		return
	}
	b := view.Bounds()
	d.animator.Move(d.mobile, b.X-d.mobileStart.X, b.Y-d.mobileStart.Y, d.moveDuration, func() {
		// The settle may already have been finalized by a cancel or a
		// disable racing this completion; the released proxy is the tell.
		if d.mobile == nil {
			return
		}
		d.finishSettle()
	})
}

// finishSettle releases the drag session and returns to StateIdle. Safe to
// call more than once; the second call finds nothing to release.
func (d *Dragger) finishSettle() {
	if view, ok := d.host.ViewFor(d.current); ok {
		view.SetVisible(true)
	}
	if d.mobile != nil {
		d.mobile.Release()
		d.mobile = nil
	}
	d.current = -1
	d.state = StateIdle
}
