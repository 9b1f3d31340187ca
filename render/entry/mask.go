// render/entry/mask.go
package entry

import (
	"strings"
	"unicode/utf8"
)

// MaskInput replaces every rune of input with hidden. An empty hidden string
// hides the input entirely.
func MaskInput(input, hidden string) string {
	return strings.Repeat(hidden, utf8.RuneCountInString(input))
}
