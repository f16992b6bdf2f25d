package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// The most portable option; use it when snapshot files must be readable by
// tooling outside this module.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
//
// This affects newly-created snapshots only. Existing files record the codec
// name in their header and are opened by selecting the codec by name.
var Default Codec = GoJSON{}
