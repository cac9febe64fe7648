package draglist

import "sort"

// SliceModel is a slice-backed Model: the thin adapter base the gestures
// reorder. It owns the item order; hosts read rows through Len and At and
// learn about stale visuals through OnChanged.
type SliceModel[T any] struct {
	items []T

	// OnChanged, when set, is invoked by NotifyPositionChanged and by every
	// structural edit with each affected position.
	OnChanged func(index int)
}

// NewSliceModel creates a model owning the given items. The slice is used
// directly, not copied.
func NewSliceModel[T any](items []T) *SliceModel[T] {
	return &SliceModel[T]{items: items}
}

// Len reports the number of items.
func (m *SliceModel[T]) Len() int {
	return len(m.items)
}

// At returns the item at position index.
func (m *SliceModel[T]) At(index int) T {
	return m.items[index]
}

// Items returns the backing slice in its current order.
func (m *SliceModel[T]) Items() []T {
	return m.items
}

// SwapPositions exchanges the items at from and to. Out-of-range positions
// are ignored: gesture tolerance, not an error.
func (m *SliceModel[T]) SwapPositions(from, to int) {
	if from < 0 || from >= len(m.items) || to < 0 || to >= len(m.items) {
		return
	}
	m.items[from], m.items[to] = m.items[to], m.items[from]
}

// NotifyPositionChanged reports a stale visual at index to OnChanged.
func (m *SliceModel[T]) NotifyPositionChanged(index int) {
	if m.OnChanged != nil {
		m.OnChanged(index)
	}
}

// Insert places item at position index, shifting later items down.
func (m *SliceModel[T]) Insert(index int, item T) {
	if index < 0 {
		index = 0
	}
	if index > len(m.items) {
		index = len(m.items)
	}
	var zero T
	m.items = append(m.items, zero)
	copy(m.items[index+1:], m.items[index:])
	m.items[index] = item
	m.NotifyPositionChanged(index)
}

// RemoveAt deletes the item at position index, shifting later items up.
func (m *SliceModel[T]) RemoveAt(index int) {
	if index < 0 || index >= len(m.items) {
		return
	}
	copy(m.items[index:], m.items[index+1:])
	var zero T
	m.items[len(m.items)-1] = zero
	m.items = m.items[:len(m.items)-1]
	m.NotifyPositionChanged(index)
}

// RemoveAll deletes every listed position in one batch. Positions may come
// in any order and may contain duplicates; removal happens back to front so
// earlier removals never shift later ones. This is the removal path for
// swipe-to-dismiss batches.
func (m *SliceModel[T]) RemoveAll(positions []int) {
	if len(positions) == 0 {
		return
	}
	sorted := make([]int, len(positions))
	copy(sorted, positions)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	prev := -1
	for _, p := range sorted {
		if p == prev {
			continue
		}
		prev = p
		m.RemoveAt(p)
	}
}
