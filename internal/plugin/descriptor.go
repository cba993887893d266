package plugin

import (
	"encoding/json"

	"github.com/markpane/markpane/internal/decorate"
)

// Alignment places a toolbar command on the left or right group.
type Alignment string

const (
	// AlignLeft places the command in the left toolbar group.
	AlignLeft Alignment = "left"

	// AlignRight places the command in the right toolbar group.
	AlignRight Alignment = "right"
)

// ApplyFunc transforms the current selection into a decoration result.
// cfg is the descriptor's merged configuration (defaults overlaid with the
// instance's overrides).
type ApplyFunc func(selected string, cfg json.RawMessage) decorate.Result

// Descriptor describes a registered toolbar command.
type Descriptor struct {
	// Name uniquely identifies the command within a registry.
	Name string

	// Align selects the toolbar group.
	Align Alignment

	// DefaultConfig is the command's default configuration as raw JSON.
	DefaultConfig json.RawMessage

	// Apply performs the command. Nil for display-only plugins.
	Apply ApplyFunc
}

// Config returns the descriptor's default configuration overlaid with the
// given instance overrides.
func (d Descriptor) Config(instance json.RawMessage) json.RawMessage {
	return MergeConfig(d.DefaultConfig, instance)
}
