// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package markup

import "strings"

// smallCapsLetters maps a-z to their Unicode small-capital forms.
// There is no small-capital x in Unicode; the closest glyph is used.
var smallCapsLetters = map[rune]rune{
	'a': 'ᴀ', 'b': 'ʙ', 'c': 'ᴄ', 'd': 'ᴅ', 'e': 'ᴇ', 'f': 'ꜰ',
	'g': 'ɢ', 'h': 'ʜ', 'i': 'ɪ', 'j': 'ᴊ', 'k': 'ᴋ', 'l': 'ʟ',
	'm': 'ᴍ', 'n': 'ɴ', 'o': 'ᴏ', 'p': 'ᴘ', 'q': 'ǫ', 'r': 'ʀ',
	's': 'ꜱ', 't': 'ᴛ', 'u': 'ᴜ', 'v': 'ᴠ', 'w': 'ᴡ', 'x': 'x',
	'y': 'ʏ', 'z': 'ᴢ',
}

// SmallCaps converts the lowercase letters of s to small capitals.
// Uppercase letters, digits, punctuation, and style codes are left
// untouched, so colored small-caps spans render as expected.
func SmallCaps(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		// Skip style code pairs so '&b' does not become '&ʙ'.
		if isStyleMarker(runes[i]) && i+1 < len(runes) &&
			runes[i+1] <= 0x7f && isStyleCode(byte(runes[i+1])) {
			b.WriteRune(runes[i])
			b.WriteRune(runes[i+1])
			i++
			continue
		}
		if sc, ok := smallCapsLetters[runes[i]]; ok {
			b.WriteRune(sc)
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}
