// Package decorate computes markdown text decorations. Given the selected
// text and a command kind it produces the replacement text plus relative
// cursor offsets, without touching editor state.
package decorate

import (
	"fmt"
	"strings"
)

// Kind names a decoration command. Kinds are plain strings so toolbar
// plugins can dispatch their own without a central enum change.
type Kind string

// Built-in decoration kinds.
const (
	KindBold          Kind = "bold"
	KindItalic        Kind = "italic"
	KindUnderline     Kind = "underline"
	KindStrikethrough Kind = "strikethrough"
	KindInlineCode    Kind = "inline-code"
	KindH1            Kind = "h1"
	KindH2            Kind = "h2"
	KindH3            Kind = "h3"
	KindH4            Kind = "h4"
	KindH5            Kind = "h5"
	KindH6            Kind = "h6"
	KindListUnordered Kind = "list-unordered"
	KindListOrdered   Kind = "list-ordered"
	KindQuote         Kind = "quote"
	KindHR            Kind = "hr"
	KindTable         Kind = "table"
	KindCodeBlock     Kind = "code-block"
	KindImage         Kind = "image"
	KindLink          Kind = "link"
	KindTab           Kind = "tab"
)

// Span is a pair of offsets relative to the start of the decorated text.
type Span struct {
	Start int
	End   int
}

// Options carries per-command parameters.
type Options struct {
	// LinkURL is the target for KindLink.
	LinkURL string

	// ImageURL is the target for KindImage. Empty means the caller's
	// configured placeholder (the engine inserts it verbatim).
	ImageURL string

	// ImageTarget overrides the alt text for KindImage when the selection
	// is empty.
	ImageTarget string

	// TableRows and TableCols size the KindTable skeleton. Values below 1
	// are treated as 1 (plus the mandatory header row).
	TableRows int
	TableCols int

	// TabMapValue is the number of spaces a KindTab indent inserts.
	// Zero or negative inserts a literal tab character.
	TabMapValue int
}

// CursorHint tells the caller how to place the cursor after insertion when
// the relative Selection span alone cannot express it.
type CursorHint int

const (
	// CursorDefault applies Result.Selection, or leaves the cursor at the
	// end of the inserted text when Selection is nil.
	CursorDefault CursorHint = iota

	// CursorNextLine moves the cursor to the start of the line following
	// the inserted text. Used by heading commands.
	CursorNextLine

	// CursorKeep leaves the caller's prior cursor untouched. Used by the
	// multi-line templates (lists, quote, rule, table).
	CursorKeep
)

// Result is the outcome of a decoration.
type Result struct {
	// Text replaces the selected text.
	Text string

	// Selection, when non-nil, is the new selection relative to the start
	// of Text.
	Selection *Span

	// Cursor hints at placement when Selection is nil.
	Cursor CursorHint
}

// wrapMarkers maps the symmetric wrapping kinds to their marker.
var wrapMarkers = map[Kind]string{
	KindBold:          "**",
	KindItalic:        "*",
	KindUnderline:     "++",
	KindStrikethrough: "~~",
	KindInlineCode:    "`",
}

// headingLevels maps heading kinds to their depth.
var headingLevels = map[Kind]int{
	KindH1: 1, KindH2: 2, KindH3: 3, KindH4: 4, KindH5: 5, KindH6: 6,
}

// Decorate applies kind to selected and returns the replacement. Unknown
// kinds return the input unchanged with no selection; decoration is invoked
// straight from toolbar dispatch and must never fail.
func Decorate(selected string, kind Kind, opts Options) Result {
	if marker, ok := wrapMarkers[kind]; ok {
		return wrap(selected, marker)
	}
	if level, ok := headingLevels[kind]; ok {
		return heading(selected, level)
	}

	switch kind {
	case KindListUnordered:
		return prefixLines(selected, func(int) string { return "- " })
	case KindListOrdered:
		return prefixLines(selected, func(i int) string { return fmt.Sprintf("%d. ", i+1) })
	case KindQuote:
		return prefixLines(selected, func(int) string { return "> " })
	case KindHR:
		return Result{Text: "---\n", Cursor: CursorKeep}
	case KindTable:
		return table(opts.TableRows, opts.TableCols)
	case KindCodeBlock:
		return codeBlock(selected)
	case KindImage:
		return image(selected, opts)
	case KindLink:
		return link(selected, opts.LinkURL)
	case KindTab:
		return indent(selected, opts.TabMapValue)
	}

	return Result{Text: selected}
}

// wrap surrounds the selection with a symmetric marker. An empty selection
// gets a cursor parked between the markers.
func wrap(selected, marker string) Result {
	n := len(marker)
	return Result{
		Text:      marker + selected + marker,
		Selection: &Span{Start: n, End: n + len(selected)},
	}
}

func heading(selected string, level int) Result {
	return Result{
		Text:   strings.Repeat("#", level) + " " + selected,
		Cursor: CursorNextLine,
	}
}

// prefixLines applies a per-line prefix to every line of the selection.
func prefixLines(selected string, prefix func(i int) string) Result {
	lines := strings.Split(selected, "\n")
	for i, line := range lines {
		lines[i] = prefix(i) + line
	}
	return Result{Text: strings.Join(lines, "\n"), Cursor: CursorKeep}
}

// table builds a header row, separator row, and rows x cols body skeleton.
func table(rows, cols int) Result {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}

	var b strings.Builder
	writeRow := func(cell string) {
		for i := 0; i < cols; i++ {
			b.WriteString("| ")
			b.WriteString(cell)
			b.WriteString(" ")
		}
		b.WriteString("|\n")
	}

	writeRow("Head")
	writeRow("---")
	for r := 0; r < rows; r++ {
		writeRow("Data")
	}

	return Result{Text: b.String(), Cursor: CursorKeep}
}

// codeBlock wraps the selection in a fence. The cursor lands at the first
// content line, just past the opening fence.
func codeBlock(selected string) Result {
	text := "```\n" + selected + "\n```"
	return Result{
		Text:      text,
		Selection: &Span{Start: 4, End: 4 + len(selected)},
	}
}

// image emits ![alt](url) with the cursor inside the parentheses.
func image(selected string, opts Options) Result {
	target := selected
	if target == "" {
		target = opts.ImageTarget
	}
	text := "![" + target + "](" + opts.ImageURL + ")"
	at := len("![") + len(target) + len("](")
	return Result{
		Text:      text,
		Selection: &Span{Start: at, End: at + len(opts.ImageURL)},
	}
}

// link emits [text](url) with the cursor inside the parentheses.
func link(selected, url string) Result {
	text := "[" + selected + "](" + url + ")"
	at := len("[") + len(selected) + len("](")
	return Result{
		Text:      text,
		Selection: &Span{Start: at, End: at + len(url)},
	}
}

// indent prefixes every line of the selection with the tab string. The
// caller is expected to rewind the selection to a line boundary first (see
// RewindToLineStart) so the indent covers whole lines.
func indent(selected string, tabMapValue int) Result {
	tab := "\t"
	if tabMapValue > 0 {
		tab = strings.Repeat(" ", tabMapValue)
	}

	lines := strings.Split(selected, "\n")
	for i, line := range lines {
		lines[i] = tab + line
	}
	text := strings.Join(lines, "\n")
	return Result{Text: text, Selection: &Span{Start: 0, End: len(text)}}
}

// RewindToLineStart returns the offset of the most recent line start at or
// before start. Used to widen a multi-line tab selection to whole lines.
func RewindToLineStart(text string, start int) int {
	if start > len(text) {
		start = len(text)
	}
	if start < 0 {
		return 0
	}
	idx := strings.LastIndexByte(text[:start], '\n')
	return idx + 1
}
