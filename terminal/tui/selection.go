package tui

// Selectable is an entry focus can move across
type Selectable interface {
	SelectionState() State
	SetSelectionState(State)
	// CanSelect reports whether the entry supports selection and is not disabled
	CanSelect() bool
}

// SelectedIndex returns the index of the first Selected or Active entry, -1 when none
func SelectedIndex[T Selectable](items []T) int {
	for i, it := range items {
		if s := it.SelectionState(); s == StateSelected || s == StateActive {
			return i
		}
	}
	return -1
}

// SelectNext moves focus to the nearest eligible entry after the current one, wrapping
// Returns false when nothing is selected or no other entry is eligible
func SelectNext[T Selectable](items []T) bool {
	return cycle(items, 1)
}

// SelectPrevious moves focus to the nearest eligible entry before the current one, wrapping
func SelectPrevious[T Selectable](items []T) bool {
	return cycle(items, -1)
}

// cycle walks step at a time from the current entry, signed modulo len(items)
func cycle[T Selectable](items []T, step int) bool {
	n := len(items)
	cur := SelectedIndex(items)
	if cur < 0 {
		return false
	}

	for k := 1; k < n; k++ {
		i := ((cur+step*k)%n + n) % n
		if !items[i].CanSelect() {
			continue
		}
		items[cur].SetSelectionState(StateNormal)
		items[i].SetSelectionState(StateSelected)
		return true
	}
	return false
}
