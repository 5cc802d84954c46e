// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// Besides editing and rendering, the model hosts a find/replace bar. Opening
// the bar starts a search.Session over the buffer; closing it ends the
// session and clears its highlights.
package editor
