package model

// DragModel tracks an in-progress pointer drag over the viewport.
// The zero value is idle and usable. Updates occur on the UI thread only.
type DragModel struct {
	active       bool
	anchorX      int
	anchorY      int
	anchorOffset int
}

// Press starts a drag at (x, y) and remembers the crop offset at that moment.
func (m *DragModel) Press(x, y, offset int) {
	if m == nil {
		return
	}
	m.active = true
	m.anchorX, m.anchorY = x, y
	m.anchorOffset = offset
}

// Release ends the drag. Safe to call when no drag is active.
func (m *DragModel) Release() {
	if m == nil {
		return
	}
	m.active = false
}

// Active reports whether a drag is in progress.
func (m *DragModel) Active() bool {
	return m != nil && m.active
}

// Anchor returns the press position and the offset captured at press time.
func (m *DragModel) Anchor() (x, y, offset int) {
	if m == nil {
		return 0, 0, 0
	}
	return m.anchorX, m.anchorY, m.anchorOffset
}
