package surface

import "testing"

func TestBufferReplaceRange(t *testing.T) {
	b := NewBuffer("hello world")
	b.ReplaceRange(6, 11, "there")
	if got := b.Value(); got != "hello there" {
		t.Errorf("expected %q, got %q", "hello there", got)
	}
	start, end := b.Selection()
	if start != 11 || end != 11 {
		t.Errorf("cursor should sit after insertion, got (%d,%d)", start, end)
	}
}

func TestBufferSelectionClamp(t *testing.T) {
	b := NewBuffer("abc")
	b.SetSelection(10, 20)
	start, end := b.Selection()
	if start != 3 || end != 3 {
		t.Errorf("selection should clamp to length, got (%d,%d)", start, end)
	}

	b.SetSelection(2, 1)
	start, end = b.Selection()
	if start != 1 || end != 2 {
		t.Errorf("reversed selection should normalize, got (%d,%d)", start, end)
	}
}

func TestBufferSetValueClampsSelection(t *testing.T) {
	b := NewBuffer("abcdef")
	b.SetSelection(2, 6)
	b.SetValue("ab")
	start, end := b.Selection()
	if start != 2 || end != 2 {
		t.Errorf("selection should clamp after shrink, got (%d,%d)", start, end)
	}
}

func TestBufferSelectedText(t *testing.T) {
	b := NewBuffer("# Hello")
	b.SetSelection(2, 7)
	if got := b.SelectedText(); got != "Hello" {
		t.Errorf("expected Hello, got %q", got)
	}
}

func TestBufferCursorPosition(t *testing.T) {
	b := NewBuffer("one\ntwo")
	b.SetSelection(5, 5)
	if got := b.CursorPosition(); got != (Position{1, 1}) {
		t.Errorf("expected (1:1), got %v", got)
	}

	b.SetCursorPosition(Position{0, 2})
	start, end := b.Selection()
	if start != 2 || end != 2 {
		t.Errorf("expected cursor at 2, got (%d,%d)", start, end)
	}
}

func TestBufferScroll(t *testing.T) {
	b := NewBuffer("a\nb\nc\nd")
	b.SetLineHeight(10)
	if got := b.ScrollHeight(); got != 40 {
		t.Errorf("expected height 40, got %d", got)
	}
	b.SetScrollTop(-3)
	if got := b.ScrollTop(); got != 0 {
		t.Errorf("scroll top should clamp at 0, got %d", got)
	}
	b.SetScrollTop(25)
	if got := b.ScrollTop(); got != 25 {
		t.Errorf("expected 25, got %d", got)
	}
}
