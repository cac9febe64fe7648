package draglist

import "time"

// The gesture core does not render, lay out, or animate anything itself. It
// drives the small set of collaborators below, which the host toolkit
// implements. List (list.go) is the Ebitengine implementation of all of them.

// Task is a unit of work the host scheduler can run on a later frame.
// Repeating work (auto-scroll) re-posts itself from Run.
type Task interface {
	Run()
}

// Host is the list container the gestures operate on. All coordinates are in
// viewport space.
type Host interface {
	// ItemUnder resolves the row index under the point, or ok=false when the
	// point is over no row.
	ItemUnder(x, y float64) (index int, ok bool)

	// ViewFor returns the visual for a row position, or ok=false when the
	// row has no visual (out of range, or scrolled out of the viewport).
	ViewFor(index int) (RowView, bool)

	// ViewportExtent reports the visible width and height of the list.
	ViewportExtent() (w, h float64)

	// ScrollBy scrolls the viewport by the given amounts; positive values
	// along the list axis scroll toward the end of the list.
	ScrollBy(dx, dy float64)

	// Post schedules t to run on the next frame. Posting an already-pending
	// task queues it again; repeating tasks rely on one Run per Post.
	Post(t Task)

	// Remove cancels every pending occurrence of t.
	Remove(t Task)
}

// Visual is anything whose screen offset can be read and written. Offsets are
// translations relative to the laid-out position.
type Visual interface {
	Offset() (x, y float64)
	SetOffset(x, y float64)
}

// RowView is a row visual owned by the host.
type RowView interface {
	Visual

	// Bounds reports the current on-screen bounds, offset included.
	Bounds() Rect

	SetVisible(visible bool)
}

// Proxy is the floating snapshot of a row used as the drag thumbnail. It is
// owned exclusively by the Dragger between drag start and settle completion.
// Release frees it; releasing twice is a no-op.
type Proxy interface {
	Visual
	Release()
}

// ProxyFactory builds a Proxy positioned exactly over the given row.
type ProxyFactory interface {
	Snapshot(v RowView) Proxy
}

// Animator animates a visual's offset to a target with a completion callback.
// Implementations run completions on the same thread that pumps events; done
// may be nil. TweenAnimator (tween.go) is the shipped implementation.
type Animator interface {
	Move(v Visual, toX, toY float64, d time.Duration, done func())
}

// Model is the position-indexed item sequence behind the list.
type Model interface {
	// SwapPositions exchanges the items at the two positions. Applied
	// synchronously; callers read updated state immediately after.
	SwapPositions(from, to int)

	// NotifyPositionChanged tells the host a position's visual is stale.
	NotifyPositionChanged(index int)
}

// Notifier receives reorder events from a Dragger.
type Notifier interface {
	// OnSwap is emitted when the mobile proxy crosses a neighbor boundary.
	// The model reorder must be applied before returning: the Dragger reads
	// updated geometry immediately after.
	OnSwap(from, to int)

	// OnDrop is emitted once per drag, on pointer up only, with the final
	// position. No reorder is implied; positions are already consistent.
	OnDrop(position int)
}

// ModelNotifier is the default Notifier: it applies each swap to a Model and
// refreshes both affected positions, and forwards drops to an optional hook.
type ModelNotifier struct {
	Model Model
	Drop  func(position int)
}

func (n ModelNotifier) OnSwap(from, to int) {
	n.Model.SwapPositions(from, to)
	n.Model.NotifyPositionChanged(to)
	n.Model.NotifyPositionChanged(from)
}

func (n ModelNotifier) OnDrop(position int) {
	if n.Drop != nil {
		n.Drop(position)
	}
}
