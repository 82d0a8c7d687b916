// Package metrics derives counts for telemetry events. Nothing here retains raw text.
package metrics

import (
	"strings"
	"unicode/utf8"
)

// Features holds size features of a piece of text.
type Features struct {
	Bytes int `json:"bytes"`
	Runes int `json:"runes"`
	Words int `json:"words"`
	Lines int `json:"lines"`
}

// CountFeatures computes byte, rune, word (Unicode whitespace split) and line counts for s.
// Lines is 0 for the empty string, otherwise 1 plus the number of '\n'.
func CountFeatures(s string) Features {
	f := Features{
		Bytes: len(s),
		Runes: utf8.RuneCountInString(s),
		Words: len(strings.Fields(s)),
	}
	if s != "" {
		f.Lines = 1 + strings.Count(s, "\n")
	}
	return f
}

// Fields flattens f into event fields under prefix, e.g. "input_bytes".
func (f Features) Fields(prefix string) map[string]any {
	return map[string]any{
		prefix + "_bytes": f.Bytes,
		prefix + "_runes": f.Runes,
		prefix + "_words": f.Words,
		prefix + "_lines": f.Lines,
	}
}
