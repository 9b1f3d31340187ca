// render/shaper/settings.go
package shaper

import (
	"log"
	"strings"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/harfbuzz"
)

// Capacity of the variation and feature lists. Tokens past the cap are dropped.
const (
	MaxVariations = 16
	MaxFeatures   = 16
)

// ParseVariations parses a comma separated list of font variation settings,
// e.g. "wght=650,slnt=-5". Malformed tokens are logged and skipped.
func ParseVariations(list string) []font.Variation {
	var out []font.Variation
	for _, token := range splitSettings(list) {
		if len(out) >= MaxVariations {
			break
		}
		v, err := harfbuzz.ParseVariation(token)
		if err != nil {
			log.Printf("WARN ParseVariations: Failed to parse font variation %q: %v", token, err)
			continue
		}
		out = append(out, v)
	}
	return out
}

// ParseFeatures parses a comma separated list of OpenType feature settings,
// e.g. "-liga,tnum,ss01=1". Malformed tokens are logged and skipped.
func ParseFeatures(list string) []harfbuzz.Feature {
	var out []harfbuzz.Feature
	for _, token := range splitSettings(list) {
		if len(out) >= MaxFeatures {
			break
		}
		f, err := harfbuzz.ParseFeature(token)
		if err != nil {
			log.Printf("WARN ParseFeatures: Failed to parse font feature %q: %v", token, err)
			continue
		}
		out = append(out, f)
	}
	return out
}

func splitSettings(list string) []string {
	var tokens []string
	for _, tok := range strings.Split(list, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
