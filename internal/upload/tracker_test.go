package upload

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func echoUpload(_ context.Context, name string, _ io.Reader) (string, error) {
	return "![" + name + "](http://cdn/" + name + ")", nil
}

func TestCreateResolves(t *testing.T) {
	tr := NewTracker()
	p := tr.Create(context.Background(), "cat.png", strings.NewReader("data"), echoUpload, nil)

	if !strings.HasPrefix(p.Token, "![Uploading cat.png ") || !strings.HasSuffix(p.Token, "]()") {
		t.Errorf("token should be pending image syntax, got %q", p.Token)
	}

	select {
	case res := <-p.Resolution():
		if res.Err != nil {
			t.Fatalf("unexpected error: %v", res.Err)
		}
		if res.Text != "![cat.png](http://cdn/cat.png)" {
			t.Errorf("unexpected resolution %q", res.Text)
		}
	case <-time.After(time.Second):
		t.Fatal("upload did not resolve")
	}
}

func TestTokensAreUnique(t *testing.T) {
	tr := NewTracker()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		p := tr.Create(context.Background(), "a.png", nil, echoUpload, nil)
		if seen[p.Token] {
			t.Fatalf("duplicate token %q", p.Token)
		}
		seen[p.Token] = true
	}
}

func TestTokenCollisionRetries(t *testing.T) {
	tr := NewTracker()
	rejected := 0
	taken := func(string) bool {
		rejected++
		return rejected <= 2 // reject the first two candidates
	}
	p := tr.Create(context.Background(), "a.png", nil, echoUpload, taken)
	if p.Token == "" {
		t.Fatal("no token generated")
	}
	if rejected != 3 {
		t.Errorf("expected 3 probes, got %d", rejected)
	}
}

func TestUploadError(t *testing.T) {
	tr := NewTracker()
	wantErr := errors.New("network down")
	p := tr.Create(context.Background(), "a.png", nil,
		func(context.Context, string, io.Reader) (string, error) { return "", wantErr },
		nil)

	res := <-p.Resolution()
	if !errors.Is(res.Err, wantErr) {
		t.Errorf("expected upload error, got %v", res.Err)
	}
}

func TestBatchEmptyItems(t *testing.T) {
	b := NewBatch(context.Background(), NewTracker(), nil, echoUpload, nil)
	if b != nil {
		t.Fatal("empty payload should create no batch")
	}
	// nil batch is inert.
	if got := b.CollectedText(); got != "" {
		t.Errorf("expected empty text, got %q", got)
	}
	if err := b.Await(context.Background(), nil); err != nil {
		t.Errorf("nil batch await should be nil, got %v", err)
	}
}

func TestBatchMixedItems(t *testing.T) {
	tr := NewTracker()
	items := []Item{
		FileItem{Name: "a.png", Reader: strings.NewReader("x")},
		TextItem{Text: "hello "},
		FileItem{Name: "b.png", Reader: strings.NewReader("y")},
		TextItem{Text: "world"},
	}
	b := NewBatch(context.Background(), tr, items, echoUpload, nil)

	if got := len(b.Placeholders()); got != 2 {
		t.Fatalf("expected 2 placeholders, got %d", got)
	}
	if got := b.CollectedText(); got != "hello world" {
		t.Errorf("expected collected text in order, got %q", got)
	}

	var resolved []string
	if err := b.Await(context.Background(), func(token, text string) {
		resolved = append(resolved, text)
	}); err != nil {
		t.Fatalf("await failed: %v", err)
	}
	if len(resolved) != 2 {
		t.Fatalf("expected 2 resolutions, got %d", len(resolved))
	}
	if resolved[0] != "![a.png](http://cdn/a.png)" || resolved[1] != "![b.png](http://cdn/b.png)" {
		t.Errorf("resolutions out of order: %v", resolved)
	}
}

func TestBatchAwaitReportsFirstError(t *testing.T) {
	tr := NewTracker()
	wantErr := errors.New("boom")
	up := func(_ context.Context, name string, _ io.Reader) (string, error) {
		if name == "bad.png" {
			return "", wantErr
		}
		return "ok", nil
	}

	items := []Item{
		FileItem{Name: "bad.png"},
		FileItem{Name: "good.png"},
	}
	b := NewBatch(context.Background(), tr, items, up, nil)

	var resolved []string
	err := b.Await(context.Background(), func(_, text string) {
		resolved = append(resolved, text)
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected first error, got %v", err)
	}
	// The successful upload still resolves.
	if len(resolved) != 1 || resolved[0] != "ok" {
		t.Errorf("successes must still resolve, got %v", resolved)
	}
}

func TestBatchAwaitContextCancel(t *testing.T) {
	tr := NewTracker()
	blocked := make(chan struct{})
	up := func(ctx context.Context, _ string, _ io.Reader) (string, error) {
		<-blocked
		return "", nil
	}
	b := NewBatch(context.Background(), tr, []Item{FileItem{Name: "a"}}, up, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := b.Await(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	close(blocked)
}
