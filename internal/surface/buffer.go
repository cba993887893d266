package surface

import "sync"

// Buffer is an in-memory Surface. It backs the demo's edit pane and the
// engine's tests. All methods are safe for concurrent use.
type Buffer struct {
	mu        sync.RWMutex
	text      string
	selStart  int
	selEnd    int
	scrollTop int

	// lineHeight converts line count to scroll height, letting scroll-sync
	// tests model panes of different density.
	lineHeight int
}

// NewBuffer creates a buffer with the given initial text.
func NewBuffer(text string) *Buffer {
	return &Buffer{text: text, lineHeight: 1}
}

// SetLineHeight sets the per-line height used by ScrollHeight.
func (b *Buffer) SetLineHeight(h int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if h > 0 {
		b.lineHeight = h
	}
}

// Value returns the full text.
func (b *Buffer) Value() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// SetValue replaces the text and clamps the selection.
func (b *Buffer) SetValue(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = s
	b.selStart, b.selEnd = clampRange(b.selStart, b.selEnd, len(s))
}

// Selection returns the selection offsets.
func (b *Buffer) Selection() (int, int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.selStart, b.selEnd
}

// SetSelection sets the selection, clamping and normalizing order.
func (b *Buffer) SetSelection(start, end int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if start > end {
		start, end = end, start
	}
	b.selStart, b.selEnd = clampRange(start, end, len(b.text))
}

// SelectedText returns the text covered by the selection.
func (b *Buffer) SelectedText() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text[b.selStart:b.selEnd]
}

// ReplaceRange substitutes text[start:end] with s and parks the cursor at
// the end of the insertion.
func (b *Buffer) ReplaceRange(start, end int, s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	start, end = clampRange(start, end, len(b.text))
	b.text = b.text[:start] + s + b.text[end:]
	b.selStart = start + len(s)
	b.selEnd = b.selStart
}

// CursorPosition returns the selection head as a position.
func (b *Buffer) CursorPosition() Position {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return OffsetToPosition(b.text, b.selEnd)
}

// SetCursorPosition collapses the selection to a cursor at p.
func (b *Buffer) SetCursorPosition(p Position) {
	b.mu.Lock()
	defer b.mu.Unlock()
	off := PositionToOffset(b.text, p)
	b.selStart, b.selEnd = off, off
}

// ScrollTop returns the vertical scroll offset.
func (b *Buffer) ScrollTop() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.scrollTop
}

// SetScrollTop sets the vertical scroll offset.
func (b *Buffer) SetScrollTop(top int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if top < 0 {
		top = 0
	}
	b.scrollTop = top
}

// ScrollHeight returns line count times line height.
func (b *Buffer) ScrollHeight() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return LineCount(b.text) * b.lineHeight
}

func clampRange(start, end, max int) (int, int) {
	if start < 0 {
		start = 0
	}
	if start > max {
		start = max
	}
	if end < start {
		end = start
	}
	if end > max {
		end = max
	}
	return start, end
}
