package decorate

import (
	"strings"
	"testing"
)

func TestWrapBold(t *testing.T) {
	r := Decorate("hi", KindBold, Options{})
	if r.Text != "**hi**" {
		t.Errorf("expected **hi**, got %q", r.Text)
	}
	if r.Selection == nil || r.Selection.Start != 2 || r.Selection.End != 4 {
		t.Errorf("expected selection {2 4}, got %+v", r.Selection)
	}
}

func TestWrapBoldEmptySelection(t *testing.T) {
	r := Decorate("", KindBold, Options{})
	if r.Text != "****" {
		t.Errorf("expected ****, got %q", r.Text)
	}
	if r.Selection == nil || r.Selection.Start != 2 || r.Selection.End != 2 {
		t.Errorf("cursor should land between markers, got %+v", r.Selection)
	}
}

func TestWrapMarkers(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindItalic, "*x*"},
		{KindUnderline, "++x++"},
		{KindStrikethrough, "~~x~~"},
		{KindInlineCode, "`x`"},
	}
	for _, tc := range cases {
		r := Decorate("x", tc.kind, Options{})
		if r.Text != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.kind, tc.want, r.Text)
		}
	}
}

func TestHeadings(t *testing.T) {
	r := Decorate("x", KindH2, Options{})
	if r.Text != "## x" {
		t.Errorf("expected %q, got %q", "## x", r.Text)
	}
	if r.Cursor != CursorNextLine {
		t.Errorf("heading should hint next-line cursor, got %v", r.Cursor)
	}

	r = Decorate("title", KindH6, Options{})
	if r.Text != "###### title" {
		t.Errorf("expected %q, got %q", "###### title", r.Text)
	}
}

func TestListUnordered(t *testing.T) {
	r := Decorate("a\nb", KindListUnordered, Options{})
	if r.Text != "- a\n- b" {
		t.Errorf("expected %q, got %q", "- a\n- b", r.Text)
	}
	if r.Cursor != CursorKeep {
		t.Errorf("list should keep cursor, got %v", r.Cursor)
	}
}

func TestListOrdered(t *testing.T) {
	r := Decorate("a\nb\nc", KindListOrdered, Options{})
	if r.Text != "1. a\n2. b\n3. c" {
		t.Errorf("expected numbered lines, got %q", r.Text)
	}
}

func TestQuote(t *testing.T) {
	r := Decorate("a\nb", KindQuote, Options{})
	if r.Text != "> a\n> b" {
		t.Errorf("expected %q, got %q", "> a\n> b", r.Text)
	}
}

func TestHR(t *testing.T) {
	r := Decorate("ignored", KindHR, Options{})
	if r.Text != "---\n" {
		t.Errorf("expected rule, got %q", r.Text)
	}
}

func TestTable(t *testing.T) {
	r := Decorate("", KindTable, Options{TableRows: 2, TableCols: 2})
	lines := strings.Split(strings.TrimSuffix(r.Text, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header+separator+2 rows, got %d lines: %q", len(lines), r.Text)
	}
	if lines[0] != "| Head | Head |" {
		t.Errorf("bad header row %q", lines[0])
	}
	if lines[1] != "| --- | --- |" {
		t.Errorf("bad separator row %q", lines[1])
	}
	if lines[2] != "| Data | Data |" {
		t.Errorf("bad body row %q", lines[2])
	}
}

func TestTableDefaults(t *testing.T) {
	r := Decorate("", KindTable, Options{})
	if !strings.HasPrefix(r.Text, "| Head |\n| --- |\n| Data |") {
		t.Errorf("default 1x1 table malformed: %q", r.Text)
	}
}

func TestCodeBlock(t *testing.T) {
	r := Decorate("x := 1", KindCodeBlock, Options{})
	if r.Text != "```\nx := 1\n```" {
		t.Errorf("expected fenced block, got %q", r.Text)
	}
	if r.Selection == nil || r.Selection.Start != 4 {
		t.Errorf("cursor should land on first content line, got %+v", r.Selection)
	}
}

func TestImage(t *testing.T) {
	r := Decorate("", KindImage, Options{})
	if r.Text != "![]()" {
		t.Errorf("expected ![](), got %q", r.Text)
	}
	if r.Selection == nil || r.Selection.Start != 4 || r.Selection.End != 4 {
		t.Errorf("cursor should land inside parens at 4, got %+v", r.Selection)
	}

	r = Decorate("pic", KindImage, Options{ImageURL: "http://x/y.png"})
	if r.Text != "![pic](http://x/y.png)" {
		t.Errorf("got %q", r.Text)
	}
	if r.Selection.Start != 7 || r.Selection.End != 7+len("http://x/y.png") {
		t.Errorf("selection should cover the URL, got %+v", r.Selection)
	}
}

func TestImageTargetFallback(t *testing.T) {
	r := Decorate("", KindImage, Options{ImageTarget: "alt"})
	if r.Text != "![alt]()" {
		t.Errorf("got %q", r.Text)
	}
}

func TestLink(t *testing.T) {
	r := Decorate("", KindLink, Options{})
	if r.Text != "[]()" {
		t.Errorf("expected [](), got %q", r.Text)
	}
	if r.Selection == nil || r.Selection.Start != 3 || r.Selection.End != 3 {
		t.Errorf("cursor should land inside parens at 3, got %+v", r.Selection)
	}

	r = Decorate("here", KindLink, Options{LinkURL: "http://a"})
	if r.Text != "[here](http://a)" {
		t.Errorf("got %q", r.Text)
	}
}

func TestTabIndent(t *testing.T) {
	r := Decorate("a\nb", KindTab, Options{TabMapValue: 2})
	if r.Text != "  a\n  b" {
		t.Errorf("expected two-space indent per line, got %q", r.Text)
	}
	if r.Selection == nil || r.Selection.Start != 0 || r.Selection.End != len(r.Text) {
		t.Errorf("selection should span the indented lines, got %+v", r.Selection)
	}

	r = Decorate("a", KindTab, Options{})
	if r.Text != "\ta" {
		t.Errorf("expected literal tab, got %q", r.Text)
	}
}

func TestUnknownKindIsNoop(t *testing.T) {
	r := Decorate("unchanged", Kind("nope"), Options{})
	if r.Text != "unchanged" {
		t.Errorf("unknown kind must return input, got %q", r.Text)
	}
	if r.Selection != nil {
		t.Errorf("unknown kind must not set a selection, got %+v", r.Selection)
	}
}

func TestRewindToLineStart(t *testing.T) {
	text := "one\ntwo\nthree"
	cases := []struct {
		start, want int
	}{
		{0, 0},
		{2, 0},
		{4, 4},
		{6, 4},
		{8, 8},
		{13, 8},
		{99, 8}, // clamped to text length
	}
	for _, tc := range cases {
		if got := RewindToLineStart(text, tc.start); got != tc.want {
			t.Errorf("RewindToLineStart(%d) = %d, want %d", tc.start, got, tc.want)
		}
	}
}
