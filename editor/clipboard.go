package editor

// Clipboard backs copy, cut and paste. A nil Clipboard disables them, and
// errors are dropped so a missing system clipboard never breaks editing.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
