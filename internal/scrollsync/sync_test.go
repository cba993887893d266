package scrollsync

import (
	"sync"
	"testing"
	"time"
)

// fakePane is a minimal scrollable view for tests.
type fakePane struct {
	mu     sync.Mutex
	top    int
	height int
	writes int
}

func (p *fakePane) ScrollTop() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.top
}

func (p *fakePane) SetScrollTop(top int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.top = top
	p.writes++
}

func (p *fakePane) ScrollHeight() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.height
}

func newSync(editH, previewH int) (*Synchronizer, *fakePane, *fakePane, *ManualScheduler) {
	edit := &fakePane{height: editH}
	preview := &fakePane{height: previewH}
	sched := &ManualScheduler{}
	s := New(edit, preview, Config{EditToPreview: true, PreviewToEdit: true}, sched.Schedule)
	return s, edit, preview, sched
}

func TestEditScrollMapsToPreview(t *testing.T) {
	s, edit, preview, sched := newSync(200, 100)

	s.SetActive(SourceEdit)
	edit.top = 50
	s.HandleScroll(SourceEdit)

	if got := sched.Fire(); got != 1 {
		t.Fatalf("expected 1 scheduled correction, got %d", got)
	}
	// scale = 200/100 = 2, preview = 50/2 = 25
	if preview.ScrollTop() != 25 {
		t.Errorf("expected preview offset 25, got %d", preview.ScrollTop())
	}
}

func TestPreviewScrollMapsToEdit(t *testing.T) {
	s, edit, preview, sched := newSync(200, 100)

	s.SetActive(SourcePreview)
	preview.top = 25
	s.HandleScroll(SourcePreview)
	sched.Fire()

	if edit.ScrollTop() != 50 {
		t.Errorf("expected edit offset 50, got %d", edit.ScrollTop())
	}
}

func TestProgrammaticEchoIsIgnored(t *testing.T) {
	s, edit, preview, sched := newSync(200, 100)

	s.SetActive(SourceEdit)
	edit.top = 50
	s.HandleScroll(SourceEdit)
	sched.Fire()

	// The corrective write on the preview pane produces a scroll event
	// from the preview; neither pane may be written again.
	editWrites := edit.writes
	s.HandleScroll(SourcePreview)
	if sched.Pending() != 0 {
		t.Error("echo event must not schedule a correction")
	}
	if edit.writes != editWrites {
		t.Error("echo event must not write the edit pane")
	}
	if preview.writes != 1 {
		t.Errorf("preview should hold the single corrective write, got %d", preview.writes)
	}
}

func TestBurstCoalescesToOneWrite(t *testing.T) {
	s, edit, preview, sched := newSync(100, 100)

	s.SetActive(SourceEdit)
	for i := 1; i <= 20; i++ {
		edit.top = i
		s.HandleScroll(SourceEdit)
	}
	if got := sched.Fire(); got != 1 {
		t.Fatalf("burst should coalesce to 1 callback, got %d", got)
	}
	if preview.writes != 1 {
		t.Errorf("expected exactly 1 corrective write, got %d", preview.writes)
	}
	// The single write lands on the latest offset.
	if preview.ScrollTop() != 20 {
		t.Errorf("expected final offset 20, got %d", preview.ScrollTop())
	}
}

func TestDirtyRecomputesScale(t *testing.T) {
	s, edit, preview, sched := newSync(100, 100)

	s.SetActive(SourceEdit)
	edit.top = 40
	s.HandleScroll(SourceEdit)
	sched.Fire()
	if preview.ScrollTop() != 40 {
		t.Fatalf("1:1 panes should map directly, got %d", preview.ScrollTop())
	}

	// Content change doubles the edit pane height.
	edit.mu.Lock()
	edit.height = 200
	edit.mu.Unlock()
	s.MarkDirty()

	edit.top = 40
	s.HandleScroll(SourceEdit)
	sched.Fire()
	if preview.ScrollTop() != 20 {
		t.Errorf("after MarkDirty the new ratio applies, got %d", preview.ScrollTop())
	}
}

func TestStaleScaleWithoutDirty(t *testing.T) {
	s, edit, preview, sched := newSync(100, 100)

	s.SetActive(SourceEdit)
	edit.top = 10
	s.HandleScroll(SourceEdit)
	sched.Fire()

	// Height changes but no MarkDirty: the old ratio is reused.
	edit.mu.Lock()
	edit.height = 200
	edit.mu.Unlock()

	edit.top = 40
	s.HandleScroll(SourceEdit)
	sched.Fire()
	if preview.ScrollTop() != 40 {
		t.Errorf("without MarkDirty the cached ratio applies, got %d", preview.ScrollTop())
	}
}

func TestDirectionDisabled(t *testing.T) {
	edit := &fakePane{height: 100}
	preview := &fakePane{height: 100}
	sched := &ManualScheduler{}
	s := New(edit, preview, Config{EditToPreview: false, PreviewToEdit: true}, sched.Schedule)

	var emitted []Source
	s.OnScroll(func(src Source) { emitted = append(emitted, src) })

	s.SetActive(SourceEdit)
	edit.top = 10
	s.HandleScroll(SourceEdit)

	if sched.Pending() != 0 {
		t.Error("disabled direction must not schedule a correction")
	}
	// External emit still happens regardless of sync configuration.
	if len(emitted) != 1 || emitted[0] != SourceEdit {
		t.Errorf("scroll event should still be emitted, got %v", emitted)
	}
}

func TestInlineSchedulerDoesNotDeadlock(t *testing.T) {
	edit := &fakePane{height: 200}
	preview := &fakePane{height: 100}
	inline := func(fn func()) { fn() }
	s := New(edit, preview, Config{EditToPreview: true, PreviewToEdit: true}, inline)

	s.SetActive(SourceEdit)
	edit.top = 50

	done := make(chan struct{})
	go func() {
		s.HandleScroll(SourceEdit)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("HandleScroll did not return with an inline scheduler")
	}
	if preview.ScrollTop() != 25 {
		t.Errorf("correction should apply synchronously, got %d", preview.ScrollTop())
	}
}

func TestZeroPreviewHeight(t *testing.T) {
	s, edit, preview, sched := newSync(100, 0)

	s.SetActive(SourceEdit)
	edit.top = 30
	s.HandleScroll(SourceEdit)
	sched.Fire()

	// Degenerate ratio falls back to 1:1 rather than dividing by zero.
	if preview.ScrollTop() != 30 {
		t.Errorf("expected 1:1 fallback, got %d", preview.ScrollTop())
	}
}
