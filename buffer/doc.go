// Package buffer is the editable document the search engine works on: a
// list of rune lines addressed by 1-based rows and 0-based rune columns,
// with cursor, selection, grouped undo history and change records.
//
// Ranges are half-open: [Start, End).
package buffer
