package upload

import (
	"context"
	"io"
	"strings"
)

// Item is one entry of a drop or paste payload: either a file to upload or
// literal text.
type Item interface {
	isItem()
}

// FileItem is a dropped or pasted file.
type FileItem struct {
	Name   string
	Reader io.Reader
}

func (FileItem) isItem() {}

// TextItem is a dropped or pasted text fragment.
type TextItem struct {
	Text string
}

func (TextItem) isItem() {}

// Batch is the in-flight state of a mixed drop/paste payload. File items
// become placeholders, available immediately for inline insertion; text
// items are collected and delivered together by Await.
type Batch struct {
	placeholders []Placeholder
	texts        []string
}

// NewBatch processes items in enumeration order. Files start uploading
// right away through tr; an empty item list yields a nil Batch, which
// callers treat as "nothing to insert".
func NewBatch(ctx context.Context, tr *Tracker, items []Item, up Func, taken func(string) bool) *Batch {
	if len(items) == 0 {
		return nil
	}

	b := &Batch{}
	for _, item := range items {
		switch it := item.(type) {
		case FileItem:
			b.placeholders = append(b.placeholders, tr.Create(ctx, it.Name, it.Reader, up, taken))
		case TextItem:
			b.texts = append(b.texts, it.Text)
		}
	}
	return b
}

// Placeholders returns the file placeholders in enumeration order, for
// immediate inline insertion.
func (b *Batch) Placeholders() []Placeholder {
	if b == nil {
		return nil
	}
	return b.placeholders
}

// CollectedText returns the concatenated text items, inserted as one batch
// once the payload is processed.
func (b *Batch) CollectedText() string {
	if b == nil {
		return ""
	}
	return strings.Join(b.texts, "")
}

// Await blocks until every file upload in the batch settles or ctx is
// cancelled. Each settled placeholder is passed to resolve in enumeration
// order. The first upload error is returned after all settle; resolve is
// still called for the successes.
func (b *Batch) Await(ctx context.Context, resolve func(token, text string)) error {
	if b == nil {
		return nil
	}

	var firstErr error
	for _, p := range b.placeholders {
		select {
		case res := <-p.Resolution():
			if res.Err != nil {
				if firstErr == nil {
					firstErr = res.Err
				}
				continue
			}
			if resolve != nil {
				resolve(p.Token, res.Text)
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return firstErr
}
