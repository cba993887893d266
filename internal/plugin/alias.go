package plugin

// groupAliases maps legacy group names to the concrete commands they expand
// to. The "fonts" alias predates per-command registration and is kept for
// hosts that still configure by group.
var groupAliases = map[string][]string{
	"fonts": {
		"header",
		"font-bold",
		"font-italic",
		"font-underline",
		"font-strikethrough",
		"list-unordered",
		"list-ordered",
		"block-quote",
		"block-code-inline",
		"block-code-block",
	},
}

// ExpandAliases replaces any legacy group alias in names with its concrete
// command names, preserving order. Non-alias names pass through unchanged.
func ExpandAliases(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if expansion, ok := groupAliases[name]; ok {
			out = append(out, expansion...)
			continue
		}
		out = append(out, name)
	}
	return out
}
