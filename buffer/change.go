package buffer

// ChangeSource identifies what produced a change.
type ChangeSource uint8

const (
	ChangeSourceEdit ChangeSource = iota
	ChangeSourceUndo
	ChangeSourceRedo
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceEdit:
		return "edit"
	case ChangeSourceUndo:
		return "undo"
	case ChangeSourceRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// SelectionState captures normalized selection state at a point in time.
type SelectionState struct {
	Active bool
	Range  Range
}

// AppliedEdit describes one effective edit in a change transaction.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change is a normalized, versioned mutation payload.
type Change struct {
	Source            ChangeSource
	VersionBefore     uint64
	VersionAfter      uint64
	TextVersionBefore uint64
	TextVersionAfter  uint64
	CursorBefore      Pos
	CursorAfter       Pos
	SelectionBefore   SelectionState
	SelectionAfter    SelectionState
	AppliedEdits      []AppliedEdit
}

// FirstAffected returns the earliest document position touched by the
// change. Text before it is identical before and after the change.
func (c Change) FirstAffected() (Pos, bool) {
	if len(c.AppliedEdits) == 0 {
		return Pos{}, false
	}
	first := c.AppliedEdits[0].RangeBefore.Start
	for _, e := range c.AppliedEdits[1:] {
		if e.RangeBefore.Start.Before(first) {
			first = e.RangeBefore.Start
		}
	}
	return first, true
}

type changeBuilder struct {
	source            ChangeSource
	versionBefore     uint64
	textVersionBefore uint64
	cursorBefore      Pos
	selectionBefore   SelectionState
	appliedEdits      []AppliedEdit
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return cloneChange(b.lastChange), true
}

func cloneChange(in Change) Change {
	out := in
	out.AppliedEdits = append([]AppliedEdit(nil), in.AppliedEdits...)
	return out
}

func selectionStateFromInternal(sel selectionState) SelectionState {
	if !sel.active {
		return SelectionState{}
	}
	r := NormalizeRange(Range{Start: sel.anchor, End: sel.end})
	if r.IsEmpty() {
		return SelectionState{}
	}
	return SelectionState{
		Active: true,
		Range:  r,
	}
}

func (b *Buffer) beginChange() changeBuilder {
	return b.beginChangeFrom(ChangeSourceEdit)
}

func (b *Buffer) beginChangeFrom(source ChangeSource) changeBuilder {
	return changeBuilder{
		source:            source,
		versionBefore:     b.version,
		textVersionBefore: b.textVersion,
		cursorBefore:      b.cursor,
		selectionBefore:   selectionStateFromInternal(b.sel),
	}
}

func (cb *changeBuilder) addAppliedEdit(edit AppliedEdit) {
	edit.RangeBefore = NormalizeRange(edit.RangeBefore)
	edit.RangeAfter = NormalizeRange(edit.RangeAfter)
	cb.appliedEdits = append(cb.appliedEdits, edit)
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.textVersion == cb.textVersionBefore {
		return
	}
	b.lastChange = Change{
		Source:            cb.source,
		VersionBefore:     cb.versionBefore,
		VersionAfter:      b.version,
		TextVersionBefore: cb.textVersionBefore,
		TextVersionAfter:  b.textVersion,
		CursorBefore:      cb.cursorBefore,
		CursorAfter:       b.cursor,
		SelectionBefore:   cb.selectionBefore,
		SelectionAfter:    selectionStateFromInternal(b.sel),
		AppliedEdits:      append([]AppliedEdit(nil), cb.appliedEdits...),
	}
	b.hasLastChange = true
}

func replacementAppliedEdit(beforeText, afterText string) (AppliedEdit, bool) {
	if beforeText == afterText {
		return AppliedEdit{}, false
	}
	return AppliedEdit{
		RangeBefore: fullDocumentRange(beforeText),
		RangeAfter:  fullDocumentRange(afterText),
		InsertText:  afterText,
		DeletedText: beforeText,
	}, true
}

func fullDocumentRange(text string) Range {
	lines := splitLines(text)
	lastRow := len(lines)
	return Range{
		Start: Start,
		End:   Pos{Row: lastRow, Col: len(lines[lastRow-1])},
	}
}
