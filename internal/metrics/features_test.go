package metrics_test

import (
	"testing"

	"github.com/petasbytes/realtor-agent/internal/metrics"
)

func TestCountFeatures_ListingText(t *testing.T) {
	type exp struct {
		bytes int
		runes int
		words int
		lines int
	}
	cases := []struct {
		name string
		in   string
		exp  exp
	}{
		{
			name: "Empty",
			in:   "",
			exp:  exp{bytes: 0, runes: 0, words: 0, lines: 0},
		},
		{
			name: "Listing_ASCII",
			in:   "3BHK flat in Baner",
			exp:  exp{bytes: 18, runes: 18, words: 4, lines: 1},
		},
		{
			name: "Price_RupeeAndDevanagari",
			in:   "\u20b995 \u0932\u093e\u0916\n3BHK", // "95 lakh" in Devanagari, then a newline
			exp:  exp{bytes: 20, runes: 12, words: 3, lines: 2},
		},
		{
			name: "Locality_Devanagari",
			in:   "\u092a\u0941\u0923\u0947 \u092e\u0947\u0902 3BHK", // "3BHK in Pune"
			exp:  exp{bytes: 27, runes: 13, words: 3, lines: 1},
		},
		{
			name: "Address_TrailingNewline",
			in:   "Hinjewadi, Pune\n1450 sqft\n",
			exp:  exp{bytes: 26, runes: 26, words: 4, lines: 3},
		},
		{
			name: "Form_TabsAndSpaces",
			in:   "  name:\tAsha   budget: 90L  ",
			exp:  exp{bytes: 28, runes: 28, words: 4, lines: 1},
		},
		{
			name: "NBSP_InPrice",
			in:   "Rs\u00a085L",
			exp:  exp{bytes: 7, runes: 6, words: 2, lines: 1},
		},
		{
			name: "OnlyWhitespace",
			in:   " \t\n",
			exp:  exp{bytes: 3, runes: 3, words: 0, lines: 2},
		},
		{
			name: "CRLF_PastedLead",
			in:   "Lead: Asha\r\nPhone: 98xxxx\r\nPune",
			exp:  exp{bytes: 31, runes: 31, words: 5, lines: 3},
		},
		{
			name: "ZeroWidthSpace_NoSplit",
			in:   "Sea\u200bView",
			exp:  exp{bytes: 10, runes: 8, words: 1, lines: 1},
		},
		{
			name: "Emoji_Astral",
			in:   "\U0001F3E0\U0001F511",
			exp:  exp{bytes: 8, runes: 2, words: 1, lines: 1},
		},
		{
			name: "Combining_Marks",
			in:   "Cafe\u0301", // one glyph for the accented e, two runes
			exp:  exp{bytes: 6, runes: 5, words: 1, lines: 1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := metrics.CountFeatures(tc.in)
			if f.Bytes != tc.exp.bytes || f.Runes != tc.exp.runes || f.Words != tc.exp.words || f.Lines != tc.exp.lines {
				t.Fatalf("%s: got %+v, want bytes=%d runes=%d words=%d lines=%d", tc.name, f, tc.exp.bytes, tc.exp.runes, tc.exp.words, tc.exp.lines)
			}
		})
	}
}

func TestFeatures_Fields(t *testing.T) {
	got := metrics.CountFeatures("3BHK in\nBaner").Fields("input")
	want := map[string]any{"input_bytes": 13, "input_runes": 13, "input_words": 3, "input_lines": 2}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("%s: got %v want %v", k, got[k], v)
		}
	}
}
