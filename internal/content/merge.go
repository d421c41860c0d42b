package content

import (
	"bytes"
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// Layer is one overlay in a merge. Later layers win over earlier ones.
type Layer = Content

// Merge reduces layers left to right with a shallow, right-biased overlay: a key present
// in a later layer replaces the earlier value wholesale. Arrays and nested objects are
// never merged element by element. Nil layers are empty overlays. Inputs are not
// mutated and the result shares no nested values with them.
func Merge(layers ...Layer) Content {
	out := Content{}
	for _, layer := range layers {
		for k, v := range layer {
			out[k] = cloneValue(v)
		}
	}
	return out
}

// Resolve merges the three stored layers of a section: default, variant and custom.
func Resolve(defaults, variant, custom Content) Content {
	return Merge(defaults, variant, custom)
}

// MergeRaw decodes stored JSON layers and merges them. A layer that is empty, null or
// malformed contributes nothing; parse failures are logged, never returned.
func MergeRaw(defaults, variant, custom []byte) Content {
	return Merge(
		ParseLayer("default_data", defaults),
		ParseLayer("variant_data", variant),
		ParseLayer("custom_data", custom),
	)
}

// ParseLayer decodes a JSON object. Anything that is not a JSON object yields an empty
// layer.
func ParseLayer(name string, raw []byte) Content {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Content{}
	}
	var decoded map[string]any
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		log.Warn().Err(err).Str("layer", name).Msg("Ignoring malformed content layer")
		return Content{}
	}
	if decoded == nil {
		return Content{}
	}
	return Content(decoded)
}

// Encode serializes c as a JSON object. Map keys come out sorted, so equal content
// always encodes to the same bytes.
func Encode(c Content) ([]byte, error) {
	if c == nil {
		c = Content{}
	}
	return json.Marshal(map[string]any(c))
}

// Decode is the strict counterpart of ParseLayer for content coming from a client.
func Decode(raw []byte) (Content, error) {
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	if decoded == nil {
		decoded = map[string]any{}
	}
	return Content(decoded), nil
}
