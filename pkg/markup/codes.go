// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package markup

import "strings"

// Style code markers accepted in legacy-encoded text. The ampersand
// form is what config authors type; the section sign is the wire form
// most game hosts use internally. Both are honored everywhere.
const (
	AmpersandMarker = '&'
	SectionMarker   = '§'
)

// colorCodes are the single-character color codes (0-9, a-f).
// formatCodes are the modifier codes (k obfuscated, l bold, m strike,
// n underline, o italic); r resets everything.
const (
	colorCodes  = "0123456789abcdef"
	formatCodes = "klmno"
	resetCode   = 'r'
)

// codeToANSI maps legacy codes to ANSI escape sequences for terminal
// preview output. Modifier codes map to the closest ANSI effect;
// obfuscated (k) has no terminal equivalent and renders as blink.
var codeToANSI = map[byte]string{
	'0': "\x1b[30m", '1': "\x1b[34m", '2': "\x1b[32m", '3': "\x1b[36m",
	'4': "\x1b[31m", '5': "\x1b[35m", '6': "\x1b[33m", '7': "\x1b[37m",
	'8': "\x1b[90m", '9': "\x1b[94m", 'a': "\x1b[92m", 'b': "\x1b[96m",
	'c': "\x1b[91m", 'd': "\x1b[95m", 'e': "\x1b[93m", 'f': "\x1b[97m",
	'k': "\x1b[5m", 'l': "\x1b[1m", 'm': "\x1b[9m", 'n': "\x1b[4m",
	'o': "\x1b[3m", 'r': "\x1b[0m",
}

// isStyleMarker reports whether the rune introduces a style code.
func isStyleMarker(r rune) bool {
	return r == AmpersandMarker || r == SectionMarker
}

// isStyleCode reports whether b is a valid code character after a
// marker. Codes are case-insensitive.
func isStyleCode(b byte) bool {
	c := lowerByte(b)
	return strings.IndexByte(colorCodes, c) >= 0 ||
		strings.IndexByte(formatCodes, c) >= 0 ||
		c == resetCode
}

// isColorCode reports whether b is a color code or the reset code,
// either of which cancels all active modifiers.
func isColorCode(b byte) bool {
	c := lowerByte(b)
	return strings.IndexByte(colorCodes, c) >= 0 || c == resetCode
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// LastStyle returns the trailing active style run of s: the last color
// (or reset) code together with any modifier codes that follow it.
// Returns "" when s carries no style codes. The result is what must be
// prepended to a following segment to continue the visual run.
func LastStyle(s string) string {
	var color string
	var formats []string

	runes := []rune(s)
	for i := len(runes) - 1; i > 0; i-- {
		if !isStyleMarker(runes[i-1]) || runes[i] > 0x7f {
			continue
		}
		code := byte(runes[i])
		if !isStyleCode(code) {
			continue
		}
		pair := string(runes[i-1]) + string(runes[i])
		if isColorCode(code) {
			color = pair
			break
		}
		// Modifier codes stack; collect them until the owning color
		// is found, preserving their original order.
		formats = append([]string{pair}, formats...)
		i-- // skip the marker rune
	}

	return color + strings.Join(formats, "")
}

// HasLeadingStyle reports whether s begins with its own style code,
// in which case no continuity insertion is needed.
func HasLeadingStyle(s string) bool {
	runes := []rune(s)
	return len(runes) >= 2 && isStyleMarker(runes[0]) &&
		runes[1] <= 0x7f && isStyleCode(byte(runes[1]))
}

// StripStyle removes every marker+code pair from s, leaving the
// visible text. Lone markers not followed by a valid code survive.
func StripStyle(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if isStyleMarker(runes[i]) && i+1 < len(runes) &&
			runes[i+1] <= 0x7f && isStyleCode(byte(runes[i+1])) {
			i++
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// RenderANSI converts legacy style codes in s to ANSI escape sequences
// for terminal preview. Unknown codes pass through as literal text.
// Output always ends with a reset when any code was translated.
func RenderANSI(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	translated := false
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if isStyleMarker(runes[i]) && i+1 < len(runes) && runes[i+1] <= 0x7f {
			if seq, ok := codeToANSI[lowerByte(byte(runes[i+1]))]; ok {
				b.WriteString(seq)
				translated = true
				i++
				continue
			}
		}
		b.WriteRune(runes[i])
	}
	if translated {
		b.WriteString("\x1b[0m")
	}
	return b.String()
}

// VisibleLen counts the runes of s that render as glyphs, ignoring
// style codes. Used by line centering.
func VisibleLen(s string) int {
	n := 0
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if isStyleMarker(runes[i]) && i+1 < len(runes) &&
			runes[i+1] <= 0x7f && isStyleCode(byte(runes[i+1])) {
			i++
			continue
		}
		n++
	}
	return n
}
