package editor

import "github.com/iw2rmb/spanfind/buffer"

type ChangeEvent struct {
	Version     uint64
	TextVersion uint64
	Cursor      buffer.Pos
	Selection   struct {
		Range  buffer.Range
		Active bool
	}

	// Change is the buffer's most recent text change, if any. Cursor-only
	// updates leave it pointing at an older change.
	Change    buffer.Change
	HasChange bool

	Text string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version:     b.Version(),
		TextVersion: b.TextVersion(),
		Cursor:      b.Cursor(),
		Text:        b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	ev.Change, ev.HasChange = b.LastChange()
	return ev
}
