// Package surface defines the contract the editor engine requires from a
// text-editing widget, plus an in-memory implementation for tests and
// headless use. The engine never assumes anything about the widget beyond
// this interface.
package surface

// Surface is the narrow view of a text-input widget: value access,
// selection and cursor primitives, and a scrollable extent.
type Surface interface {
	// Value returns the full current text.
	Value() string

	// SetValue replaces the full text. Implementations clamp the selection
	// to the new length.
	SetValue(s string)

	// Selection returns the current selection offsets, start <= end.
	Selection() (start, end int)

	// SetSelection sets the selection. Offsets are clamped to the text and
	// swapped if reversed.
	SetSelection(start, end int)

	// ReplaceRange substitutes text[start:end] with s and collapses the
	// selection to a cursor at the end of the inserted text.
	ReplaceRange(start, end int, s string)

	// CursorPosition returns the selection head as a line/column point.
	CursorPosition() Position

	// SetCursorPosition collapses the selection to a cursor at p.
	SetCursorPosition(p Position)

	// ScrollTop returns the current vertical scroll offset.
	ScrollTop() int

	// SetScrollTop sets the vertical scroll offset.
	SetScrollTop(top int)

	// ScrollHeight returns the total scrollable content height.
	ScrollHeight() int
}
