// Package editor implements the markdown editor engine: it owns the
// document text and its rendered output, applies selection-aware
// decorations, coordinates uploads and scroll synchronization, and exposes
// a typed event surface to the host.
//
// The engine is head-less. The actual text widget is an injected
// surface.Surface; markdown rendering is an injected render.Func. Both are
// consumed only through their narrow interfaces.
package editor

import (
	"context"
	"sync"

	"github.com/markpane/markpane/internal/event"
	"github.com/markpane/markpane/internal/plugin"
	"github.com/markpane/markpane/internal/render"
	"github.com/markpane/markpane/internal/scrollsync"
	"github.com/markpane/markpane/internal/surface"
	"github.com/markpane/markpane/internal/upload"
)

// Scheduler defers a callback to a later tick. The editor uses it for
// next-tick selection application; the scroll synchronizer reuses it for
// frame coalescing.
type Scheduler func(fn func())

// Span is a pair of absolute offsets into the document text.
type Span struct {
	Start int
	End   int
}

// Selection is the host-visible selection state.
type Selection struct {
	Start int
	End   int
	Text  string
}

// Editor is the top-level state holder and public API.
type Editor struct {
	mu   sync.Mutex
	text string

	surf     surface.Surface
	bus      *event.Bus
	pipeline *render.Pipeline
	tracker  *upload.Tracker
	registry *plugin.Registry
	sync     *scrollsync.Synchronizer
	logger   *Logger
	schedule Scheduler

	uploadFn    upload.Func
	pluginNames []string // nil means the full registry

	view       View
	fullscreen bool
	listeners  []*KeyListener

	notifyBefore bool
	notifyAfter  bool

	renderWG  sync.WaitGroup
	renderMu  sync.Mutex
	renderErr error
}

// Option configures an editor at construction.
type Option func(*Editor)

// WithRenderer sets the markdown render function. Without one, rendering
// is disabled and a diagnostic is logged.
func WithRenderer(fn render.Func) Option {
	return func(e *Editor) { e.pipeline = render.New(fn, nil) }
}

// WithUploader sets the file upload function used by drop/paste handling.
func WithUploader(fn upload.Func) Option {
	return func(e *Editor) { e.uploadFn = fn }
}

// WithRegistry injects a plugin registry, isolating the editor from the
// process-wide default.
func WithRegistry(r *plugin.Registry) Option {
	return func(e *Editor) { e.registry = r }
}

// WithPlugins restricts and orders the instance's toolbar to the named
// commands. Legacy group aliases are expanded; unknown names are skipped.
func WithPlugins(names ...string) Option {
	return func(e *Editor) { e.pluginNames = names }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *Logger) Option {
	return func(e *Editor) { e.logger = l }
}

// WithScheduler sets the deferral primitive. Tests inject a manual one.
func WithScheduler(s Scheduler) Option {
	return func(e *Editor) { e.schedule = s }
}

// WithNotifyBeforeRender emits a change event immediately on mutation,
// pairing the new text with the previous rendered output. Combinable with
// WithNotifyAfterRender to notify at both points.
func WithNotifyBeforeRender() Option {
	return func(e *Editor) { e.notifyBefore = true }
}

// WithNotifyAfterRender emits a change event once rendering settles, so
// the text/html pair is always consistent. This is the default when no
// notification option is given.
func WithNotifyAfterRender() Option {
	return func(e *Editor) { e.notifyAfter = true }
}

// WithView sets the initial pane visibility.
func WithView(v View) Option {
	return func(e *Editor) { e.view = v }
}

// New creates an editor over the given text surface. The surface's current
// value becomes the initial document text and an initial render is issued.
func New(surf surface.Surface, opts ...Option) *Editor {
	e := &Editor{
		surf:     surf,
		bus:      event.NewBus(),
		tracker:  upload.NewTracker(),
		registry: plugin.Default(),
		logger:   nopLogger(),
		view:     View{Menu: true, Editor: true, Preview: true},
	}
	for _, opt := range opts {
		opt(e)
	}
	if !e.notifyBefore && !e.notifyAfter {
		e.notifyAfter = true
	}

	if e.pipeline == nil {
		e.pipeline = render.New(nil, func(msg string) { e.logger.Warn("%s", msg) })
	}
	if e.schedule == nil {
		// The in-process surfaces have no reflow to wait out, so the
		// default scheduler runs deferrals inline. Hosts wrapping widgets
		// that need a real next-tick inject their own.
		e.schedule = func(fn func()) { fn() }
	}

	e.text = normalize(surf.Value())
	if e.text != surf.Value() {
		surf.SetValue(e.text)
	}
	e.trackRender(e.pipeline.Render(e.text), nil)

	return e
}

// MdValue returns the current markdown source.
func (e *Editor) MdValue() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text
}

// HTMLValue returns the most recently settled rendered output. It may lag
// the text while a render is in flight; AwaitRender fences that.
func (e *Editor) HTMLValue() string {
	return e.pipeline.Output()
}

// AwaitRender blocks until all issued renders settle, returning the first
// render error observed since the previous call.
func (e *Editor) AwaitRender(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		e.renderWG.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	e.renderMu.Lock()
	err := e.renderErr
	e.renderErr = nil
	e.renderMu.Unlock()
	return err
}

// Selection returns the current selection with its covered text.
func (e *Editor) Selection() Selection {
	start, end := e.surf.Selection()
	text := e.MdValue()
	if end > len(text) {
		end = len(text)
	}
	if start > end {
		start = end
	}
	return Selection{Start: start, End: end, Text: text[start:end]}
}

// SetSelection sets the selection on the edit surface.
func (e *Editor) SetSelection(start, end int) {
	e.surf.SetSelection(start, end)
}

// ClearSelection collapses the selection to a cursor at its start.
func (e *Editor) ClearSelection() {
	start, _ := e.surf.Selection()
	e.surf.SetSelection(start, start)
}

// View returns the current pane visibility.
func (e *Editor) View() View {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.view
}

// SetView updates pane visibility and notifies the host.
func (e *Editor) SetView(v View) {
	e.mu.Lock()
	changed := e.view != v
	e.view = v
	e.mu.Unlock()

	if changed {
		event.Publish(e.bus, ChanViewChange, v)
	}
}

// IsFullScreen reports the full-screen flag.
func (e *Editor) IsFullScreen() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fullscreen
}

// FullScreen sets the full-screen flag and notifies the host.
func (e *Editor) FullScreen(on bool) {
	e.mu.Lock()
	changed := e.fullscreen != on
	e.fullscreen = on
	e.mu.Unlock()

	if changed {
		event.Publish(e.bus, ChanFullscreen, on)
	}
}

// Plugins resolves the instance's toolbar descriptors and partitions them
// into left- and right-aligned groups. The result is a snapshot; later
// registry mutation does not affect it.
func (e *Editor) Plugins() (left, right []plugin.Descriptor) {
	return plugin.Partition(e.registry.Resolve(e.pluginNames))
}

// HandleFocus reports that the edit surface gained focus.
func (e *Editor) HandleFocus() {
	event.Publish(e.bus, ChanFocus, FocusEvent{Focused: true})
}

// HandleBlur reports that the edit surface lost focus.
func (e *Editor) HandleBlur() {
	event.Publish(e.bus, ChanBlur, FocusEvent{Focused: false})
}
