package draglist

import "time"

// --- Defaults ---

const (
	// defaultMoveDuration is the duration of the slide animation a displaced
	// row performs after a swap, and of the settle animation the mobile proxy
	// performs after release.
	defaultMoveDuration = 150 * time.Millisecond

	// defaultLongPressDuration is how long a pointer must stay down, within
	// the slop radius, before a drag is requested.
	defaultLongPressDuration = 500 * time.Millisecond

	// defaultSlopRadius is the movement tolerance (in pixels) inside which a
	// press still counts as stationary.
	defaultSlopRadius = 8.0

	// defaultScrollAmount is the per-tick auto-scroll distance in pixels.
	// Hosts on high-density displays scale this via Config.ScrollAmount.
	defaultScrollAmount = 50.0
)

// --- Geometry ---

// Vec2 is a 2D vector used for positions, offsets, and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// --- Axis ---

// Axis selects which direction drives swap and scroll logic. Lists are
// reordered along exactly one axis, fixed at construction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// component returns the coordinate along the axis.
func (a Axis) component(x, y float64) float64 {
	if a == Horizontal {
		return x
	}
	return y
}

// vector expands a scalar along the axis into an (x, y) pair with zero
// cross-axis component.
func (a Axis) vector(v float64) (x, y float64) {
	if a == Horizontal {
		return v, 0
	}
	return 0, v
}

// lead returns the leading edge of r along the axis (left or top).
func (a Axis) lead(r Rect) float64 {
	if a == Horizontal {
		return r.X
	}
	return r.Y
}

// extent returns the size of r along the axis.
func (a Axis) extent(r Rect) float64 {
	if a == Horizontal {
		return r.Width
	}
	return r.Height
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("draglist: invalid Axis")
	}
}

// --- Drag state ---

// DragState is the lifecycle state of a Dragger.
type DragState uint8

const (
	// StateIdle means no drag session exists.
	StateIdle DragState = iota
	// StateDragging means the mobile proxy is actively tracking the pointer.
	StateDragging
	// StateSettling means the pointer has been released and the mobile proxy
	// is animating into its final slot. The item order is already final.
	StateSettling
)

func (s DragState) String() string {
	switch s {
	case StateIdle:
		return "StateIdle"
	case StateDragging:
		return "StateDragging"
	case StateSettling:
		return "StateSettling"
	default:
		panic("draglist: invalid DragState")
	}
}

// --- Swipe disposition ---

// Disposition is the outcome of a swipe session for a single row.
type Disposition uint8

const (
	NotDismissed Disposition = iota
	DismissLeft
	DismissRight
)

func (d Disposition) String() string {
	switch d {
	case NotDismissed:
		return "NotDismissed"
	case DismissLeft:
		return "DismissLeft"
	case DismissRight:
		return "DismissRight"
	default:
		panic("draglist: invalid Disposition")
	}
}

// --- Configuration ---

// Config carries construction-time parameters for a Dragger. Zero fields
// other than Axis select the defaults above; see NewDragger.
type Config struct {
	// Axis is the direction the list is ordered along.
	Axis Axis

	// MoveDuration is the duration of swap-slide and settle animations.
	// Zero selects 150ms.
	MoveDuration time.Duration

	// LongPressDuration is how long a stationary press must last before the
	// built-in classifier requests a drag. Zero selects 500ms.
	LongPressDuration time.Duration

	// SlopRadius is the movement tolerance for long-press recognition in
	// pixels. Zero selects 8.
	SlopRadius float64

	// ScrollAmount is the per-tick auto-scroll distance in pixels. Hosts
	// should scale it by the device scale factor. Zero selects 50.
	ScrollAmount float64

	// Now reports the current time. Nil selects time.Now. Tests inject a
	// fake clock here.
	Now func() time.Time
}

func (c Config) withDefaults() Config {
	if c.MoveDuration == 0 {
		c.MoveDuration = defaultMoveDuration
	}
	if c.LongPressDuration == 0 {
		c.LongPressDuration = defaultLongPressDuration
	}
	if c.SlopRadius == 0 {
		c.SlopRadius = defaultSlopRadius
	}
	if c.ScrollAmount == 0 {
		c.ScrollAmount = defaultScrollAmount
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}
