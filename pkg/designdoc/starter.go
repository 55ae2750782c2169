package designdoc

import (
	_ "embed"
	"encoding/json"
)

// Placeholder marks where migrated legacy content goes in a starter document
const Placeholder = "__PLACEHOLDER__"

//go:embed starter.json
var starterJSON []byte

// StarterTemplate returns the raw starter design used when a core email is
// migrated from its legacy message. The text block content is Placeholder.
func StarterTemplate() json.RawMessage {
	out := make([]byte, len(starterJSON))
	copy(out, starterJSON)
	return out
}
