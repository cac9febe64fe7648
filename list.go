package draglist

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// ListModel is what a List needs from its data: the reorder contract plus
// row lookup and batch removal. SliceModel[*ebiten.Image] satisfies it.
type ListModel interface {
	Model
	Len() int
	At(index int) *ebiten.Image
	RemoveAll(positions []int)
}

// ListConfig configures a List widget.
type ListConfig struct {
	// X, Y position the viewport on screen.
	X, Y float64

	// Width, Height are the viewport extent.
	Width, Height float64

	// Axis is the direction rows are laid out along.
	Axis Axis

	// RowExtent is the uniform size of each row along the axis.
	RowExtent float64

	// Highlight, when set, is stretched over the drag thumbnail, the
	// customary border asset marking the row in flight.
	Highlight *ebiten.Image

	// Drag tunes the drag gesture. Axis is forced to the list's axis, and a
	// zero ScrollAmount is scaled by the device scale factor.
	Drag Config

	// Swipe tunes the swipe-to-dismiss gesture. Swiping starts disabled;
	// see SetSwipeEnabled.
	Swipe SwipeConfig

	// OnDrop, when set, observes each completed drag with the final
	// position.
	OnDrop func(position int)

	// OnDismiss, when set, observes each dismissal batch (positions sorted
	// descending) after the items have been removed from the model.
	OnDismiss func(positions []int)
}

// List is the Ebitengine host: a scrollable row container implementing every
// collaborator interface the gesture core needs — hit testing and row
// geometry (Host), frame-task scheduling (Post/Remove), and thumbnail
// snapshots (ProxyFactory). Pump it from the game loop:
//
//	func (g *Game) Update() error        { g.list.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.list.Draw(s) }
type List struct {
	model ListModel

	x, y      float64
	w, h      float64
	axis      Axis
	rowExtent float64
	highlight *ebiten.Image
	onDismiss func(positions []int)

	dragger  *Dragger
	swiper   *Swiper
	animator *TweenAnimator

	rows   []*listRow
	scroll float64

	tasks  []Task
	runBuf []Task

	mobile *listProxy

	pointer listPointer
}

// listPointer is the single active pointer the widget tracks: the mouse, or
// the first touch, whichever pressed first.
type listPointer struct {
	down       bool
	usingTouch bool
	touchID    ebiten.TouchID
	lastX      float64
	lastY      float64
	touchBuf   []ebiten.TouchID
}

// NewList creates a list widget over the given model. cfg.Axis must be
// Horizontal or Vertical; any other value panics.
func NewList(model ListModel, cfg ListConfig) *List {
	l := &List{
		model:     model,
		x:         cfg.X,
		y:         cfg.Y,
		w:         cfg.Width,
		h:         cfg.Height,
		axis:      cfg.Axis,
		rowExtent: cfg.RowExtent,
		highlight: cfg.Highlight,
		onDismiss: cfg.OnDismiss,
		animator:  NewTweenAnimator(),
	}

	drag := cfg.Drag
	drag.Axis = cfg.Axis
	if drag.ScrollAmount == 0 {
		drag.ScrollAmount = defaultScrollAmount * ebiten.Monitor().DeviceScaleFactor()
	}
	notifier := ModelNotifier{Model: model, Drop: cfg.OnDrop}
	l.dragger = NewDragger(l, notifier, l, l.animator, drag)

	l.swiper = NewSwiper(l, l.animator, l.applyDismissals, cfg.Swipe)
	l.swiper.SetEnabled(false)

	return l
}

// Dragger exposes the drag manager, e.g. for SetEnabled or StartDrag from a
// custom drag handle.
func (l *List) Dragger() *Dragger {
	return l.dragger
}

// Swiper exposes the swipe tracker.
func (l *List) Swiper() *Swiper {
	return l.swiper
}

// SetSwipeEnabled turns swipe-to-dismiss on or off. Off by default.
func (l *List) SetSwipeEnabled(enabled bool) {
	l.swiper.SetEnabled(enabled)
}

// Scroll reports the current scroll offset along the axis.
func (l *List) Scroll() float64 {
	return l.scroll
}

// --- Host implementation ---

// viewportExtentAlong is the viewport size along the list axis.
func (l *List) viewportExtentAlong() float64 {
	return l.axis.component(l.w, l.h)
}

// contentExtent is the total row span along the axis.
func (l *List) contentExtent() float64 {
	return float64(l.model.Len()) * l.rowExtent
}

// ItemUnder resolves the row slot under a viewport-space point.
func (l *List) ItemUnder(x, y float64) (int, bool) {
	if x < 0 || y < 0 || x > l.w || y > l.h {
		return 0, false
	}
	along := l.axis.component(x, y) + l.scroll
	if along < 0 {
		return 0, false
	}
	index := int(along / l.rowExtent)
	if index >= l.model.Len() {
		return 0, false
	}
	return index, true
}

// ViewFor returns the row visual at index, or false when the row is out of
// range or entirely outside the viewport — the moral equivalent of a
// recycled, off-screen row.
func (l *List) ViewFor(index int) (RowView, bool) {
	if index < 0 || index >= l.model.Len() {
		return nil, false
	}
	lead := float64(index)*l.rowExtent - l.scroll
	if lead+l.rowExtent <= 0 || lead >= l.viewportExtentAlong() {
		return nil, false
	}
	return l.row(index), true
}

// ViewportExtent reports the viewport size.
func (l *List) ViewportExtent() (float64, float64) {
	return l.w, l.h
}

// ScrollBy scrolls the viewport; positive along-axis values scroll toward
// the end of the list. The offset is clamped to the content.
func (l *List) ScrollBy(dx, dy float64) {
	l.scroll += l.axis.component(dx, dy)
	max := l.contentExtent() - l.viewportExtentAlong()
	if max < 0 {
		max = 0
	}
	if l.scroll > max {
		l.scroll = max
	}
	if l.scroll < 0 {
		l.scroll = 0
	}
}

// Post schedules t for the next Update.
func (l *List) Post(t Task) {
	l.tasks = append(l.tasks, t)
}

// Remove cancels every pending occurrence of t.
func (l *List) Remove(t Task) {
	keep := l.tasks[:0]
	for _, pending := range l.tasks {
		if pending != t {
			keep = append(keep, pending)
		}
	}
	l.tasks = keep
}

// --- Rows ---

// listRow is per-slot visual state: translation offset and visibility. Rows
// are keyed by position; the model supplies the content, so a model swap
// rebinds content while offsets and visibility stay with the slot, the same
// way recycled row views behave.
type listRow struct {
	list    *List
	index   int
	offX    float64
	offY    float64
	visible bool
}

func (l *List) row(index int) *listRow {
	for len(l.rows) <= index {
		l.rows = append(l.rows, &listRow{list: l, index: len(l.rows), visible: true})
	}
	return l.rows[index]
}

func (r *listRow) Offset() (float64, float64) {
	return r.offX, r.offY
}

func (r *listRow) SetOffset(x, y float64) {
	r.offX = x
	r.offY = y
}

func (r *listRow) SetVisible(visible bool) {
	r.visible = visible
}

func (r *listRow) Bounds() Rect {
	lead := float64(r.index)*r.list.rowExtent - r.list.scroll
	if r.list.axis == Horizontal {
		return Rect{X: lead + r.offX, Y: r.offY, Width: r.list.rowExtent, Height: r.list.h}
	}
	return Rect{X: r.offX, Y: lead + r.offY, Width: r.list.w, Height: r.list.rowExtent}
}

// resetRows clears per-slot offsets and visibility, used after batch
// removals re-bind every position.
func (l *List) resetRows() {
	for _, r := range l.rows {
		r.offX, r.offY = 0, 0
		r.visible = true
	}
	if n := l.model.Len(); len(l.rows) > n {
		l.rows = l.rows[:n]
	}
}

// applyDismissals is the Swiper's batch callback: remove the items back to
// front, rebind the rows, and notify the host's observer.
func (l *List) applyDismissals(positions []int) {
	l.model.RemoveAll(positions)
	l.resetRows()
	if l.onDismiss != nil {
		l.onDismiss(positions)
	}
}

// --- ProxyFactory implementation ---

// listProxy is the floating drag thumbnail: a snapshot image positioned over
// the grabbed row, moved by offset while the drag runs.
type listProxy struct {
	list     *List
	img      *ebiten.Image
	base     Vec2
	offX     float64
	offY     float64
	released bool
}

func (p *listProxy) Offset() (float64, float64) {
	return p.offX, p.offY
}

func (p *listProxy) SetOffset(x, y float64) {
	p.offX = x
	p.offY = y
}

func (p *listProxy) Released() bool {
	return p.released
}

// Release frees the proxy. Releasing twice is a no-op.
func (p *listProxy) Release() {
	if p.released {
		return
	}
	p.released = true
	if p.list.mobile == p {
		p.list.mobile = nil
	}
	p.img.Deallocate()
}

// Snapshot builds the drag thumbnail for a row: its image, stretched to the
// row bounds, under the optional highlight overlay.
func (l *List) Snapshot(v RowView) Proxy {
	row := v.(*listRow)
	b := row.Bounds()
	w, h := int(b.Width), int(b.Height)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := ebiten.NewImage(w, h)
	if src := l.model.At(row.index); src != nil {
		drawStretched(img, src, float64(w), float64(h))
	}
	if l.highlight != nil {
		drawStretched(img, l.highlight, float64(w), float64(h))
	}
	p := &listProxy{list: l, img: img, base: Vec2{X: b.X, Y: b.Y}}
	l.mobile = p
	return p
}

func drawStretched(dst, src *ebiten.Image, w, h float64) {
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	if sw == 0 || sh == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(sw), h/float64(sh))
	dst.DrawImage(src, op)
}

// --- Frame pump ---

// Update runs pending frame tasks, pumps pointer input into the gestures,
// advances long-press recognition, and steps animations. Call once per
// ebiten Update.
func (l *List) Update() {
	now := time.Now()

	// Drain the task queue first; tasks posted while running (a rescheduled
	// auto-scroll tick) wait for the next frame.
	l.runBuf = append(l.runBuf[:0], l.tasks...)
	l.tasks = l.tasks[:0]
	for _, t := range l.runBuf {
		t.Run()
	}

	l.pumpInput()
	l.dragger.Tick(now)
	l.animator.Update(1.0 / float32(ebiten.TPS()))
}

// pumpInput reads the mouse and the first touch as a single active pointer
// and forwards transitions to the gestures. The drag manager sees every
// event; the swiper only sees events the drag manager did not consume.
func (l *List) pumpInput() {
	p := &l.pointer

	var sx, sy float64
	var pressed bool
	if p.down && p.usingTouch {
		pressed = false
		p.touchBuf = ebiten.AppendTouchIDs(p.touchBuf[:0])
		for _, id := range p.touchBuf {
			if id == p.touchID {
				tx, ty := ebiten.TouchPosition(id)
				sx, sy = float64(tx), float64(ty)
				pressed = true
				break
			}
		}
		if !pressed {
			sx, sy = p.lastX, p.lastY
		}
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		sx, sy = float64(mx), float64(my)
		pressed = true
		p.usingTouch = false
	} else if !p.down {
		p.touchBuf = ebiten.AppendTouchIDs(p.touchBuf[:0])
		if len(p.touchBuf) > 0 {
			p.touchID = p.touchBuf[0]
			tx, ty := ebiten.TouchPosition(p.touchID)
			sx, sy = float64(tx), float64(ty)
			pressed = true
			p.usingTouch = true
		}
	} else {
		mx, my := ebiten.CursorPosition()
		sx, sy = float64(mx), float64(my)
	}

	x, y := sx-l.x, sy-l.y

	switch {
	case pressed && !p.down:
		p.down = true
		l.dragger.PointerDown(x, y)
		l.swiper.PointerDown(x, y)
	case pressed && p.down:
		if sx != p.lastX || sy != p.lastY {
			if l.dragger.PointerMove(x, y) {
				// A live drag owns the pointer; drop any swipe session that
				// started from the same press.
				l.swiper.PointerCancel()
			} else {
				l.swiper.PointerMove(x, y)
			}
		}
	case !pressed && p.down:
		p.down = false
		p.usingTouch = false
		l.dragger.PointerUp(x, y)
		l.swiper.PointerUp(x, y)
	}
	p.lastX = sx
	p.lastY = sy
}

// Draw renders the visible rows clipped to the viewport, then the drag
// thumbnail on top. Call once per ebiten Draw.
func (l *List) Draw(screen *ebiten.Image) {
	clip := screen.SubImage(image.Rect(
		int(l.x), int(l.y), int(l.x+l.w), int(l.y+l.h),
	)).(*ebiten.Image)

	viewport := l.viewportExtentAlong()
	for i := 0; i < l.model.Len(); i++ {
		lead := float64(i)*l.rowExtent - l.scroll
		if lead+l.rowExtent <= 0 || lead >= viewport {
			continue
		}
		row := l.row(i)
		if !row.visible {
			continue
		}
		img := l.model.At(i)
		if img == nil {
			continue
		}
		b := row.Bounds()
		op := &ebiten.DrawImageOptions{}
		sw, sh := img.Bounds().Dx(), img.Bounds().Dy()
		if sw == 0 || sh == 0 {
			continue
		}
		op.GeoM.Scale(b.Width/float64(sw), b.Height/float64(sh))
		op.GeoM.Translate(l.x+b.X, l.y+b.Y)
		clip.DrawImage(img, op)
	}

	if p := l.mobile; p != nil && !p.released {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(l.x+p.base.X+p.offX, l.y+p.base.Y+p.offY)
		clip.DrawImage(p.img, op)
	}
}
