package draglist

// scrollDirection is the sign of an auto-scroll tick along the axis.
type scrollDirection float64

const (
	scrollTowardStart scrollDirection = -1
	scrollTowardEnd   scrollDirection = 1
)

// autoScroller nudges the host by a fixed amount per tick while a drag holds
// the mobile proxy at a viewport edge. It runs on the host's scheduler by
// re-posting itself after each tick — fire, reschedule, repeat — never on a
// thread of its own, so it can never race pointer handling.
//
// The Dragger guards start with its isScrolling flag, making starts
// idempotent, and calls stop whenever the drag leaves StateDragging so no
// orphaned task keeps scrolling an idle list.
type autoScroller struct {
	host      Host
	axis      Axis
	amount    float64
	direction scrollDirection
}

func (s *autoScroller) start(direction scrollDirection) {
	s.direction = direction
	s.host.Post(s)
}

func (s *autoScroller) stop() {
	s.host.Remove(s)
}

// Run performs one scroll tick and reschedules the next.
func (s *autoScroller) Run() {
	s.host.ScrollBy(s.axis.vector(float64(s.direction) * s.amount))
	s.host.Post(s)
}
