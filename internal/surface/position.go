package surface

import (
	"fmt"
	"strings"
)

// Position is a line and column point in a text. Both are 0-indexed;
// Ch is a byte offset within the line.
type Position struct {
	Line int
	Ch   int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Ch)
}

// OffsetToPosition converts a byte offset into a line/column position.
// Offsets outside the text are clamped.
func OffsetToPosition(text string, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	line := strings.Count(text[:offset], "\n")
	lineStart := strings.LastIndexByte(text[:offset], '\n') + 1
	return Position{Line: line, Ch: offset - lineStart}
}

// PositionToOffset converts a line/column position into a byte offset.
// Positions past the end of a line clamp to that line's end; lines past the
// end of the text clamp to the text length.
func PositionToOffset(text string, p Position) int {
	if p.Line < 0 {
		return 0
	}

	offset := 0
	for line := 0; line < p.Line; line++ {
		next := strings.IndexByte(text[offset:], '\n')
		if next < 0 {
			return len(text)
		}
		offset += next + 1
	}

	lineLen := strings.IndexByte(text[offset:], '\n')
	if lineLen < 0 {
		lineLen = len(text) - offset
	}

	ch := p.Ch
	if ch < 0 {
		ch = 0
	}
	if ch > lineLen {
		ch = lineLen
	}
	return offset + ch
}

// LineCount returns the number of lines in text. An empty text has one line.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}
