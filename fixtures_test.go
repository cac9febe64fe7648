package draglist

import (
	"time"
)

// Shared test doubles: a geometric host with slot-keyed rows, a manually
// completed animator, a counting proxy factory, and a recording notifier.

// --- Clock ---

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1000, 0)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// --- Host ---

// fakeHost lays count rows of uniform extent along an axis. Rows are
// slot-keyed like a real recycling list: a model swap rebinds content while
// offsets and visibility stay with the slot.
type fakeHost struct {
	axis      Axis
	rowExtent float64
	vw, vh    float64
	count     int
	scroll    float64

	views   map[int]*fakeView
	missing map[int]bool // positions reporting no view

	tasks      []Task
	scrolledBy []float64 // along-axis scroll deltas
}

func newFakeHost(axis Axis, count int, rowExtent, vw, vh float64) *fakeHost {
	return &fakeHost{
		axis:      axis,
		rowExtent: rowExtent,
		vw:        vw,
		vh:        vh,
		count:     count,
		views:     make(map[int]*fakeView),
		missing:   make(map[int]bool),
	}
}

func (h *fakeHost) ItemUnder(x, y float64) (int, bool) {
	if x < 0 || y < 0 || x > h.vw || y > h.vh {
		return 0, false
	}
	along := h.axis.component(x, y) + h.scroll
	if along < 0 {
		return 0, false
	}
	index := int(along / h.rowExtent)
	if index >= h.count {
		return 0, false
	}
	return index, true
}

func (h *fakeHost) ViewFor(index int) (RowView, bool) {
	if index < 0 || index >= h.count || h.missing[index] {
		return nil, false
	}
	v, ok := h.views[index]
	if !ok {
		v = &fakeView{host: h, index: index, visible: true}
		h.views[index] = v
	}
	return v, true
}

func (h *fakeHost) view(index int) *fakeView {
	v, _ := h.ViewFor(index)
	return v.(*fakeView)
}

func (h *fakeHost) ViewportExtent() (float64, float64) {
	return h.vw, h.vh
}

func (h *fakeHost) ScrollBy(dx, dy float64) {
	d := h.axis.component(dx, dy)
	h.scroll += d
	h.scrolledBy = append(h.scrolledBy, d)
}

func (h *fakeHost) Post(t Task) {
	h.tasks = append(h.tasks, t)
}

func (h *fakeHost) Remove(t Task) {
	keep := h.tasks[:0]
	for _, pending := range h.tasks {
		if pending != t {
			keep = append(keep, pending)
		}
	}
	h.tasks = keep
}

// runTasks drains the queue once; tasks re-posted while running wait for the
// next call, like one host frame.
func (h *fakeHost) runTasks() {
	pending := h.tasks
	h.tasks = nil
	for _, t := range pending {
		t.Run()
	}
}

type fakeView struct {
	host       *fakeHost
	index      int
	offX, offY float64
	visible    bool
}

func (v *fakeView) Offset() (float64, float64) { return v.offX, v.offY }

func (v *fakeView) SetOffset(x, y float64) {
	v.offX = x
	v.offY = y
}

func (v *fakeView) SetVisible(visible bool) { v.visible = visible }

func (v *fakeView) Bounds() Rect {
	lead := float64(v.index)*v.host.rowExtent - v.host.scroll
	if v.host.axis == Horizontal {
		return Rect{X: lead + v.offX, Y: v.offY, Width: v.host.rowExtent, Height: v.host.vh}
	}
	return Rect{X: v.offX, Y: lead + v.offY, Width: v.host.vw, Height: v.host.rowExtent}
}

// --- Proxy factory ---

type fakeProxy struct {
	offX, offY float64
	released   bool
	releases   int
}

func (p *fakeProxy) Offset() (float64, float64) { return p.offX, p.offY }

func (p *fakeProxy) SetOffset(x, y float64) {
	p.offX = x
	p.offY = y
}

func (p *fakeProxy) Released() bool { return p.released }

func (p *fakeProxy) Release() {
	p.releases++
	p.released = true
}

type fakeFactory struct {
	proxies []*fakeProxy
}

func (f *fakeFactory) Snapshot(v RowView) Proxy {
	p := &fakeProxy{}
	f.proxies = append(f.proxies, p)
	return p
}

func (f *fakeFactory) last() *fakeProxy {
	if len(f.proxies) == 0 {
		return nil
	}
	return f.proxies[len(f.proxies)-1]
}

// --- Animator ---

type fakeMove struct {
	target   Visual
	toX, toY float64
	duration time.Duration
	done     func()
}

// fakeAnimator records animations and completes them on demand.
type fakeAnimator struct {
	moves []fakeMove
}

func (a *fakeAnimator) Move(v Visual, toX, toY float64, d time.Duration, done func()) {
	a.moves = append(a.moves, fakeMove{target: v, toX: toX, toY: toY, duration: d, done: done})
}

// finishAll applies every pending animation's final offset and runs its
// completion.
func (a *fakeAnimator) finishAll() {
	pending := a.moves
	a.moves = nil
	for _, m := range pending {
		m.target.SetOffset(m.toX, m.toY)
		if m.done != nil {
			m.done()
		}
	}
}

func (a *fakeAnimator) last() *fakeMove {
	if len(a.moves) == 0 {
		return nil
	}
	return &a.moves[len(a.moves)-1]
}

// --- Notifier ---

// recordingNotifier records events and forwards them to an optional inner
// notifier (usually a ModelNotifier applying the swap).
type recordingNotifier struct {
	inner Notifier
	swaps [][2]int
	drops []int
}

func (n *recordingNotifier) OnSwap(from, to int) {
	n.swaps = append(n.swaps, [2]int{from, to})
	if n.inner != nil {
		n.inner.OnSwap(from, to)
	}
}

func (n *recordingNotifier) OnDrop(position int) {
	n.drops = append(n.drops, position)
	if n.inner != nil {
		n.inner.OnDrop(position)
	}
}

// --- Dragger rig ---

// dragRig bundles a vertical 20-row dragger over an int model whose items
// start out equal to their positions.
type dragRig struct {
	host     *fakeHost
	model    *SliceModel[int]
	notifier *recordingNotifier
	factory  *fakeFactory
	animator *fakeAnimator
	clock    *fakeClock
	dragger  *Dragger
}

func newDragRig() *dragRig {
	return newDragRigAxis(Vertical)
}

func newDragRigAxis(axis Axis) *dragRig {
	const (
		count     = 20
		rowExtent = 50.0
	)
	items := make([]int, count)
	for i := range items {
		items[i] = i
	}
	r := &dragRig{
		host:     newFakeHost(axis, count, rowExtent, 400, 400),
		model:    NewSliceModel(items),
		factory:  &fakeFactory{},
		animator: &fakeAnimator{},
		clock:    newFakeClock(),
	}
	r.notifier = &recordingNotifier{inner: ModelNotifier{Model: r.model}}
	r.dragger = NewDragger(r.host, r.notifier, r.factory, r.animator, Config{
		Axis: axis,
		Now:  r.clock.now,
	})
	return r
}

// grab presses on the row at index and starts a drag at its center.
func (r *dragRig) grab(index int) (x, y float64) {
	center := (float64(index)+0.5)*r.host.rowExtent - r.host.scroll
	x, y = r.host.axis.vector(center)
	cross := 10.0
	if r.host.axis == Horizontal {
		y = cross
	} else {
		x = cross
	}
	r.dragger.PointerDown(x, y)
	r.dragger.StartDrag()
	return x, y
}
