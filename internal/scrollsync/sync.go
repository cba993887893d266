// Package scrollsync keeps the edit and preview panes' scroll offsets in
// proportion. One pane is the active source (the one the user is actually
// scrolling); its offsets are mapped through a measured height ratio onto
// the other pane, at most one corrective write per scheduled frame.
package scrollsync

import "sync"

// Source identifies which pane a scroll event came from.
type Source int

const (
	// SourceEdit is the markdown editing pane.
	SourceEdit Source = iota

	// SourcePreview is the rendered preview pane.
	SourcePreview
)

// String returns the pane name.
func (s Source) String() string {
	if s == SourcePreview {
		return "preview"
	}
	return "edit"
}

// Pane is the scrollable view the synchronizer reads and writes.
type Pane interface {
	ScrollTop() int
	SetScrollTop(top int)
	ScrollHeight() int
}

// Config enables synchronization per direction.
type Config struct {
	EditToPreview bool
	PreviewToEdit bool
}

// Synchronizer coordinates scroll offsets between two panes.
type Synchronizer struct {
	mu       sync.Mutex
	edit     Pane
	preview  Pane
	schedule Scheduler
	conf     Config

	// onScroll is invoked for every scroll event from the active source,
	// before any sync decision.
	onScroll func(Source)

	scale   float64
	syncing bool
	dirty   bool
	active  Source
}

// New creates a synchronizer over the two panes. The scheduler defers the
// corrective write; passing nil uses the frame-interval default.
func New(edit, preview Pane, conf Config, sched Scheduler) *Synchronizer {
	if sched == nil {
		sched = FrameScheduler()
	}
	return &Synchronizer{
		edit:     edit,
		preview:  preview,
		schedule: sched,
		conf:     conf,
		scale:    1,
		dirty:    true,
	}
}

// OnScroll sets the external scroll notification callback.
func (s *Synchronizer) OnScroll(fn func(Source)) {
	s.mu.Lock()
	s.onScroll = fn
	s.mu.Unlock()
}

// SetActive records which pane the user is interacting with. Scroll events
// from the other pane are treated as echoes of our own corrective writes
// and ignored.
func (s *Synchronizer) SetActive(src Source) {
	s.mu.Lock()
	s.active = src
	s.mu.Unlock()
}

// Active returns the current active source.
func (s *Synchronizer) Active() Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// MarkDirty flags the height ratio for recomputation. Called whenever the
// document content changes, since pane heights shift with content.
func (s *Synchronizer) MarkDirty() {
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()
}

// HandleScroll processes a scroll event originating from src.
func (s *Synchronizer) HandleScroll(src Source) {
	s.mu.Lock()

	if src != s.active {
		s.mu.Unlock()
		return
	}

	notify := s.onScroll
	s.mu.Unlock()
	if notify != nil {
		notify(src)
	}

	s.mu.Lock()

	if src == SourceEdit && !s.conf.EditToPreview {
		s.mu.Unlock()
		return
	}
	if src == SourcePreview && !s.conf.PreviewToEdit {
		s.mu.Unlock()
		return
	}

	if s.dirty {
		s.recomputeScale()
		s.dirty = false
	}

	if s.syncing {
		s.mu.Unlock()
		return
	}
	s.syncing = true
	s.mu.Unlock()

	// The scheduler may run the correction inline (the editor's default
	// does), so it must not be invoked while holding s.mu.
	s.schedule(func() { s.applyCorrection(src) })
}

// recomputeScale measures editHeight / previewHeight. Caller holds the lock.
func (s *Synchronizer) recomputeScale() {
	ph := s.preview.ScrollHeight()
	if ph <= 0 {
		s.scale = 1
		return
	}
	s.scale = float64(s.edit.ScrollHeight()) / float64(ph)
}

// applyCorrection writes the mapped offset to the opposite pane. Runs on
// the scheduler, once per burst of scroll events.
func (s *Synchronizer) applyCorrection(src Source) {
	s.mu.Lock()
	scale := s.scale
	s.syncing = false
	s.mu.Unlock()

	if scale == 0 {
		scale = 1
	}

	if src == SourceEdit {
		s.preview.SetScrollTop(int(float64(s.edit.ScrollTop())/scale + 0.5))
		return
	}
	s.edit.SetScrollTop(int(float64(s.preview.ScrollTop())*scale + 0.5))
}
