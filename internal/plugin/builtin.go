package plugin

import (
	"encoding/json"

	"github.com/markpane/markpane/internal/decorate"
)

// builtin ties a command name to its decoration kind and defaults.
type builtin struct {
	name  string
	align Alignment
	kind  decorate.Kind
	cfg   string
}

// builtins is the default toolbar command set, registered in toolbar order.
var builtins = []builtin{
	{name: "header", align: AlignLeft, kind: decorate.KindH1},
	{name: "font-bold", align: AlignLeft, kind: decorate.KindBold},
	{name: "font-italic", align: AlignLeft, kind: decorate.KindItalic},
	{name: "font-underline", align: AlignLeft, kind: decorate.KindUnderline},
	{name: "font-strikethrough", align: AlignLeft, kind: decorate.KindStrikethrough},
	{name: "list-unordered", align: AlignLeft, kind: decorate.KindListUnordered},
	{name: "list-ordered", align: AlignLeft, kind: decorate.KindListOrdered},
	{name: "block-quote", align: AlignLeft, kind: decorate.KindQuote},
	{name: "block-wrap", align: AlignLeft, kind: decorate.KindHR},
	{name: "block-code-inline", align: AlignLeft, kind: decorate.KindInlineCode},
	{name: "block-code-block", align: AlignLeft, kind: decorate.KindCodeBlock},
	{name: "table", align: AlignLeft, kind: decorate.KindTable, cfg: `{"rows":2,"cols":2}`},
	{name: "image", align: AlignLeft, kind: decorate.KindImage, cfg: `{"imageUrl":""}`},
	{name: "link", align: AlignLeft, kind: decorate.KindLink, cfg: `{"linkUrl":""}`},
	{name: "tab-insert", align: AlignRight, kind: decorate.KindTab, cfg: `{"tabMapValue":4}`},
}

// RegisterBuiltins installs the default command set into r. Existing
// descriptors with the same names are replaced.
func RegisterBuiltins(r *Registry) {
	for _, b := range builtins {
		kind := b.kind
		r.Register(Descriptor{
			Name:          b.name,
			Align:         b.align,
			DefaultConfig: json.RawMessage(b.cfg),
			Apply: func(selected string, cfg json.RawMessage) decorate.Result {
				return decorate.Decorate(selected, kind, optionsFromConfig(cfg))
			},
		})
	}
}

// optionsFromConfig extracts decoration options from a merged config doc.
func optionsFromConfig(cfg json.RawMessage) decorate.Options {
	return decorate.Options{
		LinkURL:     ConfigString(cfg, "linkUrl", ""),
		ImageURL:    ConfigString(cfg, "imageUrl", ""),
		ImageTarget: ConfigString(cfg, "imageTarget", ""),
		TableRows:   ConfigInt(cfg, "rows", 0),
		TableCols:   ConfigInt(cfg, "cols", 0),
		TabMapValue: ConfigInt(cfg, "tabMapValue", 0),
	}
}

func init() {
	RegisterBuiltins(defaultRegistry)
}
