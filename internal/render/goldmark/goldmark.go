// Package goldmark provides a ready-made HTML render function built on the
// goldmark markdown parser with the GFM extensions (tables, strikethrough,
// task lists, autolinks) the editor's decorations emit.
package goldmark

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/markpane/markpane/internal/render"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	unsafe bool
}

// WithUnsafeHTML passes raw HTML in the source through to the output.
// Off by default.
func WithUnsafeHTML() Option {
	return func(c *config) { c.unsafe = true }
}

// New builds a render.Func. The returned function is safe for concurrent
// use; goldmark markdown objects are stateless after construction.
func New(opts ...Option) render.Func {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var rendererOpts []goldmark.Option
	rendererOpts = append(rendererOpts, goldmark.WithExtensions(extension.GFM))
	if cfg.unsafe {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithUnsafe()))
	}
	md := goldmark.New(rendererOpts...)

	return func(markdown string) (string, error) {
		var buf bytes.Buffer
		if err := md.Convert([]byte(markdown), &buf); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
}
