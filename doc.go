// Package draglist provides drag-to-reorder and swipe-to-dismiss gestures
// for list widgets, with an [Ebitengine] host included.
//
// The gesture core is pure logic over small collaborator interfaces: a
// long-press classifier ([LongPress]) requests the drag, a state machine
// ([Dragger]) tracks the floating row thumbnail and swaps positions as it
// crosses neighbor boundaries, an auto-scroller nudges the list when the
// thumbnail nears a viewport edge, and a swipe tracker ([Swiper]) resolves
// horizontal swipes into batched dismissals. [SliceModel] is the thin
// adapter the gestures reorder.
//
// # Quick start
//
// [List] wires everything to Ebitengine — row rendering, pointer input,
// frame scheduling, and [gween]-driven animations. Pump it from the game
// loop:
//
//	rows := draglist.NewSliceModel(images)
//	list := draglist.NewList(rows, draglist.ListConfig{
//		Width: 320, Height: 480,
//		Axis: draglist.Vertical, RowExtent: 48,
//	})
//
//	type Game struct{ list *draglist.List }
//
//	func (g *Game) Update() error         { g.list.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)  { g.list.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// Long-press a row to grab it, drag along the axis to reorder, hold it at a
// viewport edge to scroll. Swipe-to-dismiss starts disabled; enable it with
// [List.SetSwipeEnabled].
//
// # Custom hosts
//
// Any container can drive the core by implementing [Host], [RowView],
// [ProxyFactory], and [Animator] and feeding pointer events to a [Dragger]
// or [Swiper]. Everything is single-threaded and pumped: call
// [Dragger.Tick] and [TweenAnimator.Update] once per frame from the same
// loop that delivers the events.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package draglist
