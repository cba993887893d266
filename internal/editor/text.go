package editor

import (
	"strings"

	"github.com/markpane/markpane/internal/decorate"
	"github.com/markpane/markpane/internal/event"
	"github.com/markpane/markpane/internal/surface"
)

// crlf matches the return sentinels normalized away before every mutation.
var crlf = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// normalize canonicalizes line separators to plain newlines.
func normalize(text string) string {
	return crlf.Replace(text)
}

// SetOption configures a single SetText call.
type SetOption func(*setConfig)

type setConfig struct {
	source    *Source
	selection *Span
}

// FromSource marks the mutation as externally sourced; the change event
// carries it so hosts can tell user edits from programmatic ones.
func FromSource(src Source) SetOption {
	return func(c *setConfig) { c.source = &src }
}

// WithSelection schedules the given selection for next-tick application,
// after the text widget has absorbed the new value.
func WithSelection(sel Span) SetOption {
	return func(c *setConfig) { c.selection = &sel }
}

// SetText replaces the document text. Setting the current text (after
// newline normalization) is a no-op: no state change, no notification, no
// render. Otherwise the surface is updated, change events are emitted per
// the configured notification point, and a render is issued.
func (e *Editor) SetText(text string, opts ...SetOption) {
	var cfg setConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	norm := normalize(text)

	e.mu.Lock()
	if norm == e.text {
		e.mu.Unlock()
		return
	}
	prevHTML := e.pipeline.Output()
	e.text = norm
	e.mu.Unlock()

	e.surf.SetValue(norm)
	if s := e.ScrollSync(); s != nil {
		s.MarkDirty()
	}

	if e.notifyBefore {
		event.Publish(e.bus, ChanChange, ChangeEvent{Text: norm, HTML: prevHTML, Source: cfg.source})
	}

	if cfg.selection != nil {
		sel := *cfg.selection
		e.schedule(func() { e.surf.SetSelection(sel.Start, sel.End) })
	}

	e.notifyRender(e.pipeline.Render(norm), cfg.source)
}

// notifyRender follows a mutation's render to settlement and emits the
// after-render notification with a consistent text/html pair.
func (e *Editor) notifyRender(done <-chan error, src *Source) {
	e.trackRender(done, func() {
		if e.notifyAfter {
			// Text and output are both read at settlement time, so the
			// pair is consistent even if this render's own result was
			// superseded.
			event.Publish(e.bus, ChanChange, ChangeEvent{
				Text:   e.MdValue(),
				HTML:   e.pipeline.Output(),
				Source: src,
			})
		}
	})
}

// trackRender follows one issued render to settlement, recording failures
// and running settled on success.
func (e *Editor) trackRender(done <-chan error, settled func()) {
	e.renderWG.Add(1)
	go func() {
		defer e.renderWG.Done()

		if err := <-done; err != nil {
			e.renderMu.Lock()
			if e.renderErr == nil {
				e.renderErr = err
			}
			e.renderMu.Unlock()
			e.logger.Error("render failed: %v", err)
			return
		}
		if settled != nil {
			settled()
		}
	}()
}

// InsertText splices value into the document around the current selection.
// With replaceSelected the selected range is replaced; otherwise value is
// inserted at the selection start and the selected content is preserved.
// sel, when non-nil, is relative to the start of value and is shifted into
// document offsets; nil leaves a cursor at the end of the insertion.
func (e *Editor) InsertText(value string, replaceSelected bool, sel *Span, opts ...SetOption) {
	start, end := e.surf.Selection()
	text := e.MdValue()
	if start > len(text) {
		start = len(text)
	}
	if end > len(text) {
		end = len(text)
	}
	if !replaceSelected {
		end = start
	}

	before := text[:start]
	after := text[end:]

	newSel := Span{Start: start + len(value), End: start + len(value)}
	if sel != nil {
		newSel = Span{Start: start + sel.Start, End: start + sel.End}
	}

	opts = append(opts, WithSelection(newSel))
	e.SetText(before+value+after, opts...)
}

// InsertMarkdown applies a decoration command to the current selection.
// Unknown kinds fall through as no-ops, matching the decoration engine's
// contract.
func (e *Editor) InsertMarkdown(kind decorate.Kind, dopts decorate.Options) {
	text := e.MdValue()
	start, end := e.surf.Selection()
	if end > len(text) {
		end = len(text)
	}
	if start > end {
		start = end
	}

	// A multi-character tab selection indents whole lines: rewind the
	// selection start to the enclosing line boundary first.
	if kind == decorate.KindTab && end > start {
		start = decorate.RewindToLineStart(text, start)
		e.surf.SetSelection(start, end)
	}

	res := decorate.Decorate(text[start:end], kind, dopts)
	e.applyDecoration(start, res)
}

// RunCommand executes a registered toolbar command by name against the
// current selection. instanceCfg overlays the descriptor's defaults.
// Unknown or display-only commands are no-ops.
func (e *Editor) RunCommand(name string, instanceCfg []byte) {
	d, ok := e.registry.Get(name)
	if !ok || d.Apply == nil {
		return
	}

	text := e.MdValue()
	start, end := e.surf.Selection()
	if end > len(text) {
		end = len(text)
	}
	if start > end {
		start = end
	}

	res := d.Apply(text[start:end], d.Config(instanceCfg))
	e.applyDecoration(start, res)
}

// applyDecoration splices a decoration result in place of the selection
// and positions the cursor per the result's hint.
func (e *Editor) applyDecoration(selStart int, res decorate.Result) {
	src := Source{Name: "toolbar"}

	switch res.Cursor {
	case decorate.CursorNextLine:
		e.InsertText(res.Text, true, nil, FromSource(src))
		// Park the cursor at the start of the line following the insertion.
		insertEnd := selStart + len(res.Text)
		pos := surface.OffsetToPosition(e.MdValue(), insertEnd)
		e.schedule(func() {
			e.surf.SetCursorPosition(surface.Position{Line: pos.Line + 1, Ch: 0})
		})
	case decorate.CursorKeep:
		keep := &Span{Start: 0, End: 0}
		e.InsertText(res.Text, true, keep, FromSource(src))
	default:
		var sel *Span
		if res.Selection != nil {
			sel = &Span{Start: res.Selection.Start, End: res.Selection.End}
		}
		e.InsertText(res.Text, true, sel, FromSource(src))
	}
}

// InsertPlaceholder inserts token in place of the current selection and
// replaces its first occurrence with the value delivered on resolution.
// If the token has been edited out of the text by then, the resolution is
// dropped without error.
func (e *Editor) InsertPlaceholder(token string, resolution <-chan string) {
	e.InsertText(token, true, nil)

	go func() {
		value, ok := <-resolution
		if !ok {
			return
		}
		e.resolvePlaceholder(token, value)
	}()
}

// resolvePlaceholder substitutes the first occurrence of token, if any.
func (e *Editor) resolvePlaceholder(token, value string) {
	text := e.MdValue()
	if !strings.Contains(text, token) {
		return
	}
	e.SetText(strings.Replace(text, token, value, 1))
}
