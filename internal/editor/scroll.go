package editor

import (
	"github.com/markpane/markpane/internal/event"
	"github.com/markpane/markpane/internal/scrollsync"
)

// AttachPreview wires a preview pane to the editor, creating the scroll
// synchronizer between the edit surface and the preview. conf enables
// synchronization per direction; sched nil reuses the editor's scheduler.
func (e *Editor) AttachPreview(pane scrollsync.Pane, conf scrollsync.Config, sched scrollsync.Scheduler) *scrollsync.Synchronizer {
	if sched == nil {
		sched = scrollsync.Scheduler(e.schedule)
	}

	s := scrollsync.New(e.surf, pane, conf, sched)
	s.OnScroll(func(src scrollsync.Source) {
		top := e.surf.ScrollTop()
		if src == scrollsync.SourcePreview {
			top = pane.ScrollTop()
		}
		event.Publish(e.bus, ChanScroll, ScrollEvent{Pane: src, Top: top})
	})

	e.mu.Lock()
	e.sync = s
	e.mu.Unlock()
	return s
}

// ScrollSync returns the attached synchronizer, or nil before AttachPreview.
func (e *Editor) ScrollSync() *scrollsync.Synchronizer {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sync
}

// HandleScroll forwards a pane scroll event to the synchronizer.
func (e *Editor) HandleScroll(src scrollsync.Source) {
	if s := e.ScrollSync(); s != nil {
		s.HandleScroll(src)
	}
}
