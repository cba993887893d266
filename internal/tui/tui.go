// Package tui is the terminal host for the markpane editor: a split view
// with an editable markdown pane on the left, a rendered preview on the
// right, and a toolbar driven by the plugin registry.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/markpane/markpane/internal/editor"
	"github.com/markpane/markpane/internal/key"
	"github.com/markpane/markpane/internal/render/goldmark"
	"github.com/markpane/markpane/internal/scrollsync"
	"github.com/markpane/markpane/internal/surface"
	"github.com/markpane/markpane/internal/upload"
)

// ErrQuit signals a user-requested exit from the event loop.
var ErrQuit = errors.New("quit")

// Options configures the host.
type Options struct {
	// File is the markdown document to open; empty starts a blank buffer.
	File string

	// UploadsDir, when set, enables paste/drop file uploads: files are
	// copied there and replaced with image links.
	UploadsDir string

	// UnsafeHTML passes raw HTML through the renderer.
	UnsafeHTML bool

	// Logger receives host and engine diagnostics; nil discards them.
	Logger *editor.Logger
}

// App owns the terminal screen and the editor engine.
type App struct {
	screen  tcell.Screen
	ed      *editor.Editor
	buf     *surface.Buffer
	preview *previewPane
	sync    *scrollsync.Synchronizer
	logger  *editor.Logger

	file   string
	width  int
	height int

	// dirty flips on every change event, which can fire off-loop.
	dirty atomic.Bool
}

// New builds the host around a fresh editor. The terminal screen is not
// initialized until Run.
func New(opts Options) (*App, error) {
	text := ""
	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("open %s: %w", opts.File, err)
		}
		text = string(data)
	}

	logger := opts.Logger

	buf := surface.NewBuffer(text)
	edOpts := []editor.Option{
		editor.WithRenderer(goldmarkRenderer(opts.UnsafeHTML)),
		editor.WithView(editor.View{Menu: true, Editor: true, Preview: true}),
	}
	if logger != nil {
		edOpts = append(edOpts, editor.WithLogger(logger))
	}
	if opts.UploadsDir != "" {
		edOpts = append(edOpts, editor.WithUploader(dirUploader(opts.UploadsDir)))
	}
	ed := editor.New(buf, edOpts...)

	a := &App{
		ed:      ed,
		buf:     buf,
		preview: newPreviewPane(),
		logger:  logger,
		file:    opts.File,
	}

	a.sync = ed.AttachPreview(a.preview, scrollsync.Config{
		EditToPreview: true,
		PreviewToEdit: true,
	}, nil)

	a.bindShortcuts()

	// Re-render the preview whenever the document settles.
	editor.On(ed, editor.ChanChange, func(editor.ChangeEvent) {
		a.dirty.Store(true)
		a.renderPreview()
		a.wake()
	})

	return a, nil
}

func goldmarkRenderer(unsafe bool) func(string) (string, error) {
	if unsafe {
		return goldmark.New(goldmark.WithUnsafeHTML())
	}
	return goldmark.New()
}

// dirUploader copies pasted files into dir and links them inline.
func dirUploader(dir string) upload.Func {
	return func(_ context.Context, name string, r io.Reader) (string, error) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
		dst := filepath.Join(dir, filepath.Base(name))
		f, err := os.Create(dst)
		if err != nil {
			return "", err
		}
		defer f.Close()
		if _, err := io.Copy(f, r); err != nil {
			return "", err
		}
		return "![" + filepath.Base(name) + "](" + dst + ")", nil
	}
}

// Run initializes the terminal and drives the event loop until quit.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	a.screen = screen
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)
	screen.EnablePaste()
	a.width, a.height = screen.Size()
	a.preview.setViewport(a.paneHeight())
	a.renderPreview()
	a.ed.HandleFocus()

	for {
		a.draw()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			a.width, a.height = ev.Size()
			a.preview.setViewport(a.paneHeight())
			a.renderPreview()
			screen.Sync()
		case *tcell.EventKey:
			if err := a.handleKey(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					a.ed.HandleBlur()
					return nil
				}
				return err
			}
		case *tcell.EventPaste:
			// Bracketed paste start; content arrives as rune events and is
			// typed through normally.
		case *tcell.EventInterrupt:
			// Redraw wake-up from the change listener.
		case nil:
			return nil
		}
	}
}

// wake posts an interrupt so a redraw happens outside a key event.
func (a *App) wake() {
	if a.screen != nil {
		a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

// save writes the document back to the opened file.
func (a *App) save() {
	if a.file == "" {
		return
	}
	if err := os.WriteFile(a.file, []byte(a.ed.MdValue()), 0o644); err != nil {
		if a.logger != nil {
			a.logger.Error("save %s: %v", a.file, err)
		}
		return
	}
	a.dirty.Store(false)
}

// bindShortcuts registers the default toolbar key bindings on the engine's
// keyboard listener surface.
func (a *App) bindShortcuts() {
	bind := func(combo string, fn func()) {
		c, err := key.ParseCombo(combo)
		if err != nil {
			panic(combo)
		}
		a.ed.OnKeyboard(&editor.KeyListener{
			Combo: c,
			Fn:    func(key.Event) { fn() },
		})
	}

	bind("ctrl+b", func() { a.ed.RunCommand("font-bold", nil) })
	bind("ctrl+i", func() { a.ed.RunCommand("font-italic", nil) })
	bind("ctrl+k", func() { a.ed.RunCommand("link", nil) })
	bind("ctrl+e", func() { a.toggleView(paneEditor) })
	bind("ctrl+r", func() { a.toggleView(panePreview) })
	bind("ctrl+f", func() { a.ed.FullScreen(!a.ed.IsFullScreen()) })
}

type paneID int

const (
	paneEditor paneID = iota
	panePreview
)

func (a *App) toggleView(p paneID) {
	v := a.ed.View()
	switch p {
	case paneEditor:
		v.Editor = !v.Editor
	case panePreview:
		v.Preview = !v.Preview
	}
	a.ed.SetView(v)
}

// paneHeight is the content height shared by both panes: full height minus
// the toolbar row and the status row.
func (a *App) paneHeight() int {
	h := a.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

// scrollEdit moves the edit pane and feeds the synchronizer.
func (a *App) scrollEdit(delta int) {
	a.buf.SetScrollTop(a.buf.ScrollTop() + delta)
	a.sync.SetActive(scrollsync.SourceEdit)
	a.ed.HandleScroll(scrollsync.SourceEdit)
}

// scrollPreview moves the preview pane and feeds the synchronizer.
func (a *App) scrollPreview(delta int) {
	a.preview.SetScrollTop(a.preview.ScrollTop() + delta)
	a.sync.SetActive(scrollsync.SourcePreview)
	a.ed.HandleScroll(scrollsync.SourcePreview)
}

// renderPreview re-renders the preview text at the current pane width.
func (a *App) renderPreview() {
	w := a.previewWidth()
	if w < 1 {
		w = 1
	}
	a.preview.render(a.ed.MdValue(), w)
}

func (a *App) previewWidth() int {
	v := a.ed.View()
	if !v.Editor || a.ed.IsFullScreen() {
		return a.width
	}
	return a.width - a.width/2 - 1
}

// statusLine summarizes the session for the bottom row.
func (a *App) statusLine() string {
	name := a.file
	if name == "" {
		name = "[no file]"
	}
	mark := ""
	if a.dirty.Load() {
		mark = " *"
	}
	pos := a.buf.CursorPosition()
	return fmt.Sprintf(" %s%s  %d:%d  ctrl+q quit  ctrl+s save", name, mark, pos.Line+1, pos.Ch+1)
}

// toolbarLine lays out the registered command names, left and right
// aligned the way the registry partitions them.
func (a *App) toolbarLine() (left, right string) {
	l, r := a.ed.Plugins()
	var lb, rb []string
	for _, d := range l {
		lb = append(lb, d.Name)
	}
	for _, d := range r {
		rb = append(rb, d.Name)
	}
	return " " + strings.Join(lb, " | "), strings.Join(rb, " | ") + " "
}
