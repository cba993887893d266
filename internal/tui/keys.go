package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/markpane/markpane/internal/editor"
	"github.com/markpane/markpane/internal/key"
	"github.com/markpane/markpane/internal/surface"
	"github.com/markpane/markpane/internal/upload"
)

// handleKey routes one terminal key event: host chords first, then the
// engine's keyboard listeners, then plain editing.
func (a *App) handleKey(ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return ErrQuit
	case tcell.KeyCtrlS:
		a.save()
		return nil
	case tcell.KeyCtrlV:
		a.paste()
		return nil
	case tcell.KeyPgUp:
		a.scrollEdit(-a.paneHeight())
		return nil
	case tcell.KeyPgDn:
		a.scrollEdit(a.paneHeight())
		return nil
	case tcell.KeyCtrlU:
		a.scrollPreview(-a.paneHeight())
		return nil
	case tcell.KeyCtrlD:
		a.scrollPreview(a.paneHeight())
		return nil
	}

	kev, ok := translateKey(ev)
	if !ok {
		return nil
	}
	if a.ed.HandleKey(kev) {
		return nil
	}

	a.edit(kev)
	return nil
}

// translateKey converts a tcell key event into the engine's form. Control
// chords arrive as dedicated tcell keys and are folded back to a rune plus
// the ctrl modifier.
func translateKey(ev *tcell.EventKey) (key.Event, bool) {
	var mod key.Modifier
	if ev.Modifiers()&tcell.ModShift != 0 {
		mod = mod.With(key.ModShift)
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mod = mod.With(key.ModAlt)
	}
	if ev.Modifiers()&tcell.ModMeta != 0 {
		mod = mod.With(key.ModMeta)
	}

	k := ev.Key()
	switch k {
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			mod = mod.With(key.ModCtrl)
		}
		return key.NewRuneEvent(ev.Rune(), mod), true
	case tcell.KeyEscape:
		return key.Event{Key: key.KeyEscape, Mod: mod}, true
	case tcell.KeyEnter:
		return key.Event{Key: key.KeyEnter, Mod: mod}, true
	case tcell.KeyTab:
		return key.Event{Key: key.KeyTab, Mod: mod}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.Event{Key: key.KeyBackspace, Mod: mod}, true
	case tcell.KeyDelete:
		return key.Event{Key: key.KeyDelete, Mod: mod}, true
	case tcell.KeyHome:
		return key.Event{Key: key.KeyHome, Mod: mod}, true
	case tcell.KeyEnd:
		return key.Event{Key: key.KeyEnd, Mod: mod}, true
	case tcell.KeyUp:
		return key.Event{Key: key.KeyUp, Mod: mod}, true
	case tcell.KeyDown:
		return key.Event{Key: key.KeyDown, Mod: mod}, true
	case tcell.KeyLeft:
		return key.Event{Key: key.KeyLeft, Mod: mod}, true
	case tcell.KeyRight:
		return key.Event{Key: key.KeyRight, Mod: mod}, true
	}

	// Tab, enter, and backspace alias control chords in the terminal and
	// were handled above; the remaining chords fold back to rune+ctrl.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + k - tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mod.With(key.ModCtrl)), true
	}

	return key.Event{}, false
}

// edit applies plain editing keys to the document.
func (a *App) edit(ev key.Event) {
	src := editor.FromSource(editor.Source{Name: "keyboard"})

	switch ev.Key {
	case key.KeyRune:
		if ev.Mod&(key.ModCtrl|key.ModMeta) != 0 {
			return
		}
		a.ed.InsertText(string(ev.Rune), true, nil, src)
	case key.KeyEnter:
		a.ed.InsertText("\n", true, nil, src)
	case key.KeyTab:
		a.ed.RunCommand("tab-insert", nil)
	case key.KeyBackspace:
		sel := a.ed.Selection()
		if sel.Start == sel.End {
			if sel.Start == 0 {
				return
			}
			a.ed.SetSelection(sel.Start-1, sel.End)
		}
		a.ed.InsertText("", true, nil, src)
	case key.KeyDelete:
		sel := a.ed.Selection()
		if sel.Start == sel.End {
			if sel.End >= len(a.ed.MdValue()) {
				return
			}
			a.ed.SetSelection(sel.Start, sel.End+1)
		}
		a.ed.InsertText("", true, nil, src)
	case key.KeyLeft:
		a.moveCursor(-1)
	case key.KeyRight:
		a.moveCursor(1)
	case key.KeyUp:
		a.moveCursorLine(-1)
	case key.KeyDown:
		a.moveCursorLine(1)
	case key.KeyHome:
		pos := a.buf.CursorPosition()
		a.buf.SetCursorPosition(surface.Position{Line: pos.Line, Ch: 0})
	case key.KeyEnd:
		text := a.ed.MdValue()
		pos := a.buf.CursorPosition()
		a.buf.SetCursorPosition(surface.Position{Line: pos.Line, Ch: lineLength(text, pos.Line)})
	}
}

// moveCursor shifts the collapsed cursor by delta offsets.
func (a *App) moveCursor(delta int) {
	sel := a.ed.Selection()
	at := sel.End + delta
	if delta < 0 {
		at = sel.Start + delta
	}
	if at < 0 {
		at = 0
	}
	a.ed.SetSelection(at, at)
}

// moveCursorLine shifts the cursor vertically, preserving the column where
// the target line allows.
func (a *App) moveCursorLine(delta int) {
	text := a.ed.MdValue()
	pos := a.buf.CursorPosition()
	line := pos.Line + delta
	if line < 0 {
		line = 0
	}
	if max := surface.LineCount(text) - 1; line > max {
		line = max
	}
	ch := pos.Ch
	if l := lineLength(text, line); ch > l {
		ch = l
	}
	a.buf.SetCursorPosition(surface.Position{Line: line, Ch: ch})
}

// paste reads the system clipboard and hands it to the engine as a drop
// payload, so it flows through the same batch path as a host-driven drop.
func (a *App) paste() {
	text, err := clipboard.ReadAll()
	if err != nil {
		if a.logger != nil {
			a.logger.Warn("clipboard read: %v", err)
		}
		return
	}
	if text == "" {
		return
	}
	a.ed.HandleDrop(context.Background(), []upload.Item{upload.TextItem{Text: text}})
}

// lineLength is the character count of the given line.
func lineLength(text string, line int) int {
	lines := strings.Split(text, "\n")
	if line < 0 || line >= len(lines) {
		return 0
	}
	return len(lines[line])
}
