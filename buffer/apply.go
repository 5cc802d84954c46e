package buffer

// Apply applies a sequence of text edits in order as one undo step. Each
// edit's range is interpreted against the buffer state at the time that edit
// is applied.
//
// Semantics:
// - Edit ranges are clamped into current document bounds.
// - Empty range + non-empty text inserts.
// - Cursor moves to the end of the last applied (effective) edit.
// - Selection is cleared if any edit applies.
func (b *Buffer) Apply(edits ...TextEdit) {
	if len(edits) == 0 {
		return
	}

	b.Group(func() {
		for _, e := range edits {
			b.Replace(e.Range, e.Text)
		}
	})
}
