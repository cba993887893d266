package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// previewPane holds the rendered preview text and its scroll state. It is
// the scrollsync.Pane for the right side of the split.
type previewPane struct {
	mu       sync.Mutex
	lines    []string
	top      int
	viewport int
	width    int
	renderer *glamour.TermRenderer
}

func newPreviewPane() *previewPane {
	return &previewPane{viewport: 1}
}

// render converts markdown to display lines at the given width. Glamour's
// notty style keeps the output free of escape sequences so the cells can
// be drawn directly.
func (p *previewPane) render(markdown string, width int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.renderer == nil || p.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("notty"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			p.lines = []string{err.Error()}
			return
		}
		p.renderer = r
		p.width = width
	}

	out, err := p.renderer.Render(markdown)
	if err != nil {
		p.lines = []string{err.Error()}
		return
	}
	p.lines = strings.Split(strings.TrimRight(out, "\n"), "\n")
	p.clampTop()
}

// visible returns the lines in the current viewport.
func (p *previewPane) visible() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.top >= len(p.lines) {
		return nil
	}
	end := p.top + p.viewport
	if end > len(p.lines) {
		end = len(p.lines)
	}
	return p.lines[p.top:end]
}

func (p *previewPane) setViewport(rows int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if rows > 0 {
		p.viewport = rows
	}
	p.clampTop()
}

// ScrollTop implements scrollsync.Pane.
func (p *previewPane) ScrollTop() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.top
}

// SetScrollTop implements scrollsync.Pane.
func (p *previewPane) SetScrollTop(top int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.top = top
	p.clampTop()
}

// ScrollHeight implements scrollsync.Pane.
func (p *previewPane) ScrollHeight() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.lines)
}

// clampTop keeps the viewport inside the content. Callers hold p.mu.
func (p *previewPane) clampTop() {
	max := len(p.lines) - p.viewport
	if max < 0 {
		max = 0
	}
	if p.top > max {
		p.top = max
	}
	if p.top < 0 {
		p.top = 0
	}
}
