package editor

// ScrollPolicy decides whether the viewport may move without the cursor.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll freely.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly ignores the wheel; only cursor movement and
	// find navigation scroll.
	ScrollFollowCursorOnly
)
