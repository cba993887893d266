package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/markpane/markpane/internal/key"
	"github.com/markpane/markpane/internal/surface"
)

func TestTranslateKeyRunes(t *testing.T) {
	ev, ok := translateKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	if !ok || ev.Key != key.KeyRune || ev.Rune != 'x' || ev.Mod != key.ModNone {
		t.Errorf("plain rune: got %+v", ev)
	}

	ev, ok = translateKey(tcell.NewEventKey(tcell.KeyCtrlB, 0, tcell.ModCtrl))
	if !ok || ev.Key != key.KeyRune || ev.Rune != 'b' || !ev.Mod.Has(key.ModCtrl) {
		t.Errorf("ctrl chord should fold to rune+ctrl: got %+v", ev)
	}
}

func TestTranslateKeyTabNotCtrlI(t *testing.T) {
	// Tab shares its code with ctrl+i; it must stay a tab.
	ev, ok := translateKey(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	if !ok || ev.Key != key.KeyTab {
		t.Errorf("tab: got %+v", ev)
	}

	ev, ok = translateKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if !ok || ev.Key != key.KeyEnter {
		t.Errorf("enter: got %+v", ev)
	}
	ev, ok = translateKey(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	if !ok || ev.Key != key.KeyBackspace {
		t.Errorf("backspace: got %+v", ev)
	}
}

func TestPreviewPaneScrollClamp(t *testing.T) {
	p := newPreviewPane()
	p.setViewport(3)
	p.render("a\n\nb\n\nc\n\nd", 40)

	h := p.ScrollHeight()
	if h < 3 {
		t.Fatalf("expected rendered lines, got %d", h)
	}

	p.SetScrollTop(1000)
	if got := p.ScrollTop(); got != h-3 {
		t.Errorf("scroll should clamp to content, got %d want %d", got, h-3)
	}
	p.SetScrollTop(-5)
	if got := p.ScrollTop(); got != 0 {
		t.Errorf("scroll should clamp to zero, got %d", got)
	}
}

func TestPreviewPaneVisibleWindow(t *testing.T) {
	p := newPreviewPane()
	p.setViewport(2)
	p.lines = []string{"one", "two", "three", "four"}

	p.SetScrollTop(1)
	got := p.visible()
	if len(got) != 2 || got[0] != "two" || got[1] != "three" {
		t.Errorf("unexpected window %v", got)
	}
}

func TestDisplayColumn(t *testing.T) {
	// Wide runes occupy two display cells.
	text := "日本語 abc"
	col := displayColumn(text, surface.Position{Line: 0, Ch: 9})
	if col != 6 {
		t.Errorf("expected display column 6 after three wide runes, got %d", col)
	}
}

func TestLineLength(t *testing.T) {
	text := "ab\ncdef\n"
	if got := lineLength(text, 1); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
	if got := lineLength(text, 5); got != 0 {
		t.Errorf("out of range line should be 0, got %d", got)
	}
}
