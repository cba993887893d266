package plugin

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// MergeConfig overlays instance configuration onto defaults, key by key at
// the top level. Either side may be nil or empty. Invalid JSON on the
// instance side is ignored; invalid defaults yield the instance config.
func MergeConfig(defaults, instance json.RawMessage) json.RawMessage {
	if len(defaults) == 0 || !gjson.ValidBytes(defaults) {
		if gjson.ValidBytes(instance) {
			return instance
		}
		return defaults
	}
	if len(instance) == 0 || !gjson.ValidBytes(instance) {
		return defaults
	}

	merged := defaults
	gjson.ParseBytes(instance).ForEach(func(key, value gjson.Result) bool {
		out, err := sjson.SetRawBytes(merged, key.String(), []byte(value.Raw))
		if err == nil {
			merged = out
		}
		return true
	})
	return merged
}

// ConfigString reads a string field from a config document, falling back to
// def when absent.
func ConfigString(cfg json.RawMessage, path, def string) string {
	v := gjson.GetBytes(cfg, path)
	if !v.Exists() {
		return def
	}
	return v.String()
}

// ConfigInt reads an integer field from a config document, falling back to
// def when absent.
func ConfigInt(cfg json.RawMessage, path string, def int) int {
	v := gjson.GetBytes(cfg, path)
	if !v.Exists() {
		return def
	}
	return int(v.Int())
}
