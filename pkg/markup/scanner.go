// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package markup

import (
	"strconv"
	"strings"
	"unicode"
)

// spanKind tags what the scanner recognized at a position.
type spanKind uint8

const (
	spanDirective spanKind = iota
	spanURL
	spanUnicode
	spanSmallCaps
	spanAddSpace
)

// span is one recognized region of the input. start/end are byte
// offsets into the scanned string; end is exclusive.
type span struct {
	kind  spanKind
	start int
	end   int

	inner string       // directive/small-caps body, or the URL text
	click ClickAction  // directive only
	hover HoverTooltip // directive only
	char  rune         // unicode escape only
	count int          // add_space only
}

const closingTag = "</text>"

// scan walks s from offset from and returns the first recognizable
// span, or ok=false when the remainder is plain text. Precedence at a
// given position: directive, then unicode escape, then small caps,
// then space marker (all introduced by '<'), with bare URLs recognized
// at word boundaries in between. Anything that fails to parse is left
// for the caller as literal text.
func scan(s string, from int) (span, bool) {
	for i := from; i < len(s); i++ {
		switch {
		case s[i] == '<':
			if sp, ok := parseDirective(s, i); ok {
				return sp, true
			}
			if sp, ok := parseUnicodeEscape(s, i); ok {
				return sp, true
			}
			if sp, ok := parseSmallCaps(s, i); ok {
				return sp, true
			}
			if sp, ok := parseAddSpace(s, i); ok {
				return sp, true
			}
		case urlBoundary(s, from, i):
			if sp, ok := parseURL(s, i); ok {
				return sp, true
			}
		}
	}
	return span{}, false
}

// parseDirective recognizes <d1:"a1">text</text> and the two-slot form
// <d1:"a1"|d2:"a2">text</text>. Directive names are case-insensitive.
// Quoted arguments are non-greedy: they stop at the first '"'. The
// span never crosses a </text> boundary. Any structural defect makes
// the whole candidate literal text.
func parseDirective(s string, start int) (span, bool) {
	type slot struct {
		name string
		arg  string
	}
	var slots []slot

	i := start + 1
	for {
		name, next, ok := readDirectiveName(s, i)
		if !ok {
			return span{}, false
		}
		arg, next, ok := readQuotedArg(s, next)
		if !ok {
			return span{}, false
		}
		slots = append(slots, slot{name: name, arg: arg})
		if next < len(s) && s[next] == '|' && len(slots) == 1 {
			i = next + 1
			continue
		}
		if next < len(s) && s[next] == '>' {
			i = next + 1
			break
		}
		return span{}, false
	}

	end := foldIndex(s, i, closingTag)
	if end < 0 {
		return span{}, false
	}

	sp := span{
		kind:  spanDirective,
		start: start,
		end:   end + len(closingTag),
		inner: s[i:end],
	}

	hovers := 0
	for _, sl := range slots {
		if sl.name == hoverDirective {
			hovers++
			if sp.hover.Empty() {
				sp.hover = Tooltip(sl.arg)
			}
			continue
		}
		kind, known := directiveKinds[sl.name]
		if !known {
			return span{}, false
		}
		if sp.click.Empty() {
			sp.click = ClickAction{Kind: kind, Argument: sl.arg}
		}
	}
	// Two hover slots is malformed: at most one of the two slots may
	// carry the hover directive.
	if hovers > 1 {
		return span{}, false
	}
	return sp, true
}

// readDirectiveName reads a lowercase directive name followed by ':'.
func readDirectiveName(s string, i int) (name string, next int, ok bool) {
	j := i
	for j < len(s) && (isAlpha(s[j]) || s[j] == '_') {
		j++
	}
	if j == i || j >= len(s) || s[j] != ':' {
		return "", 0, false
	}
	return strings.ToLower(s[i:j]), j + 1, true
}

// readQuotedArg reads a double-quoted argument, stopping at the first
// closing quote.
func readQuotedArg(s string, i int) (arg string, next int, ok bool) {
	if i >= len(s) || s[i] != '"' {
		return "", 0, false
	}
	end := strings.IndexByte(s[i+1:], '"')
	if end < 0 {
		return "", 0, false
	}
	return s[i+1 : i+1+end], i + 2 + end, true
}

// parseUnicodeEscape recognizes <U:XXXX> / <u:XXXX> with exactly four
// hex digits. A malformed escape is treated as absent.
func parseUnicodeEscape(s string, start int) (span, bool) {
	const escLen = len("<U:XXXX>")
	if start+escLen > len(s) {
		return span{}, false
	}
	if s[start+1] != 'U' && s[start+1] != 'u' {
		return span{}, false
	}
	if s[start+2] != ':' || s[start+7] != '>' {
		return span{}, false
	}
	code, err := strconv.ParseUint(s[start+3:start+7], 16, 32)
	if err != nil {
		return span{}, false
	}
	return span{
		kind:  spanUnicode,
		start: start,
		end:   start + escLen,
		char:  rune(code),
	}, true
}

// smallCapsTags are the accepted open/close pairs, tried longest
// first so <small_caps> is not misread as a failed <sc>.
var smallCapsTags = []struct{ open, close string }{
	{"<small_caps>", "</small_caps>"},
	{"<sc>", "</sc>"},
}

// parseSmallCaps recognizes <sc>text</sc> and its long form.
func parseSmallCaps(s string, start int) (span, bool) {
	for _, tag := range smallCapsTags {
		if !foldPrefix(s[start:], tag.open) {
			continue
		}
		innerStart := start + len(tag.open)
		end := foldIndex(s, innerStart, tag.close)
		if end < 0 {
			return span{}, false
		}
		return span{
			kind:  spanSmallCaps,
			start: start,
			end:   end + len(tag.close),
			inner: s[innerStart:end],
		}, true
	}
	return span{}, false
}

// parseAddSpace recognizes <add_space:N>. A malformed count is treated
// as absent rather than an error.
func parseAddSpace(s string, start int) (span, bool) {
	const open = "<add_space:"
	if !foldPrefix(s[start:], open) {
		return span{}, false
	}
	rest := s[start+len(open):]
	end := strings.IndexByte(rest, '>')
	if end <= 0 {
		return span{}, false
	}
	n, err := strconv.Atoi(rest[:end])
	if err != nil || n < 0 {
		return span{}, false
	}
	return span{
		kind:  spanAddSpace,
		start: start,
		end:   start + len(open) + end + 1,
		count: n,
	}, true
}

// urlPrefixes mark the start of a bare URL.
var urlPrefixes = []string{"https://", "http://", "www."}

// urlBoundary reports whether position i can start a URL: the input
// start, the resume position right after a consumed span, or a
// position right after whitespace.
func urlBoundary(s string, from, i int) bool {
	if i == from {
		return true
	}
	return s[i-1] == ' ' || s[i-1] == '\t' || s[i-1] == '\n'
}

// parseURL recognizes a bare URL token extending to the next
// whitespace. The token must carry content beyond its prefix.
func parseURL(s string, start int) (span, bool) {
	matched := ""
	for _, p := range urlPrefixes {
		if foldPrefix(s[start:], p) {
			matched = p
			break
		}
	}
	if matched == "" {
		return span{}, false
	}
	end := start + len(matched)
	for end < len(s) && !unicode.IsSpace(rune(s[end])) {
		end++
	}
	if end == start+len(matched) {
		return span{}, false
	}
	return span{
		kind:  spanURL,
		start: start,
		end:   end,
		inner: s[start:end],
	}, true
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// foldIndex returns the byte offset in s of the first occurrence of
// tag at or after from, matching ASCII letters case-insensitively, or
// -1. The tags are all ASCII, and folding byte by byte keeps every
// offset valid in s even when the surrounding text holds runes whose
// case forms differ in UTF-8 length.
func foldIndex(s string, from int, tag string) int {
	for i := from; i+len(tag) <= len(s); i++ {
		if foldPrefix(s[i:], tag) {
			return i
		}
	}
	return -1
}

// foldPrefix reports whether s starts with the ASCII tag, folding
// letter case. UTF-8 continuation bytes never fold to ASCII letters,
// so a multibyte rune can never be misread as part of a tag.
func foldPrefix(s, tag string) bool {
	if len(s) < len(tag) {
		return false
	}
	for i := 0; i < len(tag); i++ {
		if lowerASCII(s[i]) != tag[i] {
			return false
		}
	}
	return true
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
