package editor

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopRow is the 1-based buffer row rendered at viewport screen row 0.
	TopRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// LeftCellOffset is the horizontal scroll in cells.
	LeftCellOffset int
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	return ViewportState{
		TopRow:         maxInt(m.viewport.YOffset, 0) + 1,
		VisibleRows:    m.visibleRowCount(),
		LeftCellOffset: maxInt(m.xOffset, 0),
	}
}

func (m Model) visibleRowCount() int {
	return maxInt(m.viewport.Height-m.viewport.Style.GetVerticalFrameSize(), 0)
}
