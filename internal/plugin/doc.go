// Package plugin manages toolbar command descriptors. A Registry holds an
// ordered set of descriptors keyed by name; editors resolve a per-instance
// list against it (expanding legacy group aliases), then partition the
// result into left- and right-aligned toolbar groups.
//
// A process-wide default registry preserves the ergonomics of global
// registration; editors that need isolation construct their own and pass it
// at creation time.
package plugin
