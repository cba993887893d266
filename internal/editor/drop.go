package editor

import (
	"context"
	"strings"

	"github.com/markpane/markpane/internal/upload"
)

// HandleDrop processes a drop or paste payload. File items get inline
// placeholders immediately, in enumeration order; text items are collected
// and inserted as one batch replacing the original selection, with the
// cursor at the end of the inserted content (or spanning it when the
// original selection was non-empty). Upload resolutions then replace their
// tokens as they settle; a token the user has edited away resolves to
// nothing. An empty payload is a no-op.
func (e *Editor) HandleDrop(ctx context.Context, items []upload.Item) {
	if e.uploadFn == nil {
		// Without an uploader, file items degrade away; text still lands.
		items = textOnly(items)
	}

	taken := func(token string) bool {
		return strings.Contains(e.MdValue(), token)
	}
	batch := upload.NewBatch(ctx, e.tracker, items, e.uploadFn, taken)
	if batch == nil {
		return
	}

	origStart, origEnd := e.surf.Selection()
	hadSelection := origEnd > origStart

	src := Source{Name: "paste"}
	placeholders := batch.Placeholders()
	text := batch.CollectedText()

	// When the original selection was non-empty, the final selection spans
	// everything inserted here: placeholder tokens and collected text.
	// Negative relative starts rewind past the earlier insertions.
	inserted := 0
	for i, p := range placeholders {
		var sel *Span
		if hadSelection && text == "" && i == len(placeholders)-1 {
			sel = &Span{Start: -inserted, End: len(p.Token)}
		}
		e.InsertText(p.Token, true, sel, FromSource(src))
		inserted += len(p.Token)
	}

	if text != "" {
		sel := &Span{Start: len(text), End: len(text)}
		if hadSelection {
			sel = &Span{Start: -inserted, End: len(text)}
		}
		e.InsertText(text, true, sel, FromSource(src))
	}

	go func() {
		if err := batch.Await(ctx, func(token, text string) {
			e.resolvePlaceholder(token, text)
		}); err != nil {
			e.logger.Error("upload failed: %v", err)
		}
	}()
}

func textOnly(items []upload.Item) []upload.Item {
	out := items[:0:0]
	for _, item := range items {
		if _, ok := item.(upload.TextItem); ok {
			out = append(out, item)
		}
	}
	return out
}
