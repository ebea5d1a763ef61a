// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package markup

import "strings"

// DefaultChatWidth is the visible column width used for <center>
// alignment when no width is configured. It matches the default chat
// window of the common game clients this library targets.
const DefaultChatWidth = 53

// Options tunes a compilation pass. The zero value uses defaults.
type Options struct {
	// ChatWidth is the visible column count used by <center> lines.
	ChatWidth int
}

func (o Options) width() int {
	if o.ChatWidth > 0 {
		return o.ChatWidth
	}
	return DefaultChatWidth
}

// Result is the outcome of one compilation pass.
type Result struct {
	// Segments are the ordered output segments. Order always matches
	// the input; segments are never reordered or deduplicated.
	Segments []Segment

	// BlankLines is the accumulated <add_space:N> count. The marker is
	// a no-op text-wise; senders emit this many blank messages when
	// recipients are supplied.
	BlankLines int
}

// Compile splits text into ordered segments with default options.
func Compile(text string) Result {
	return CompileWithOptions(text, Options{})
}

// CompileWithOptions walks text left to right, splitting it at each
// directive span and bare URL. Small-caps spans and unicode escapes
// expand in place; <add_space:N> markers are consumed into the blank
// count. After segmentation, the last active style code of each
// segment is carried into the next segment unless it opens with its
// own code.
func CompileWithOptions(text string, opts Options) Result {
	text = centerLines(text, opts.width())

	var res Result
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			res.Segments = append(res.Segments, Segment{Text: buf.String()})
			buf.Reset()
		}
	}

	pos := 0
	for {
		sp, ok := scan(text, pos)
		if !ok {
			buf.WriteString(text[pos:])
			break
		}
		buf.WriteString(text[pos:sp.start])

		switch sp.kind {
		case spanUnicode:
			buf.WriteRune(sp.char)
		case spanSmallCaps:
			buf.WriteString(SmallCaps(expandInline(sp.inner)))
		case spanAddSpace:
			res.BlankLines += sp.count
		case spanURL:
			flush()
			res.Segments = append(res.Segments, Segment{
				Text:  sp.inner,
				Click: ClickAction{Kind: ClickOpenURL, Argument: sp.inner},
			})
		case spanDirective:
			flush()
			res.Segments = append(res.Segments, Segment{
				Text:  centerLines(expandInline(sp.inner), opts.width()),
				Click: sp.click,
				Hover: sp.hover,
			})
		}
		pos = sp.end
	}
	flush()

	carryStyle(res.Segments)
	return res
}

// carryStyle propagates the last active style code across segment
// boundaries so a colored run split by a directive keeps its color.
// Each insertion feeds the next boundary check, so a single code at
// the start of the message carries through every following segment.
func carryStyle(segs []Segment) {
	for i := 1; i < len(segs); i++ {
		if HasLeadingStyle(segs[i].Text) {
			continue
		}
		if last := LastStyle(segs[i-1].Text); last != "" {
			segs[i].Text = last + segs[i].Text
		}
	}
}

// expandInline resolves unicode escapes and small-caps spans inside
// directive inner text. Directives do not nest, and URLs inside a
// directive body stay literal: the span's own click action governs.
func expandInline(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '<' {
			if sp, ok := parseUnicodeEscape(s, i); ok {
				b.WriteRune(sp.char)
				i = sp.end
				continue
			}
			if sp, ok := parseSmallCaps(s, i); ok {
				b.WriteString(SmallCaps(expandInline(sp.inner)))
				i = sp.end
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

const centerMarker = "<center>"

// centerLines applies <center> alignment line by line: a line opening
// with the marker is padded left so its visible text sits centered in
// the given width. Lines wider than the width are left as-is.
func centerLines(text string, width int) string {
	if !strings.Contains(strings.ToLower(text), centerMarker) {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if len(line) < len(centerMarker) ||
			!strings.EqualFold(line[:len(centerMarker)], centerMarker) {
			continue
		}
		body := line[len(centerMarker):]
		pad := (width - VisibleLen(StripDirectives(body))) / 2
		if pad > 0 {
			body = strings.Repeat(" ", pad) + body
		}
		lines[i] = body
	}
	return strings.Join(lines, "\n")
}

// Flatten removes all wrapper syntax from text, keeping style codes:
// directive and small-caps spans collapse to their (expanded) inner
// text, unicode escapes resolve, URLs stay, space markers vanish.
// This is the plain-text form used by surfaces without click support.
func Flatten(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for {
		sp, ok := scan(text, pos)
		if !ok {
			b.WriteString(text[pos:])
			break
		}
		b.WriteString(text[pos:sp.start])
		switch sp.kind {
		case spanUnicode:
			b.WriteRune(sp.char)
		case spanSmallCaps:
			b.WriteString(SmallCaps(expandInline(sp.inner)))
		case spanURL:
			b.WriteString(sp.inner)
		case spanDirective:
			b.WriteString(expandInline(sp.inner))
		case spanAddSpace:
			// no text
		}
		pos = sp.end
	}
	return b.String()
}

// StripDirectives removes wrapper syntax but keeps style codes and
// does not expand small caps, for width measurement.
func StripDirectives(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for {
		sp, ok := scan(text, pos)
		if !ok {
			b.WriteString(text[pos:])
			break
		}
		b.WriteString(text[pos:sp.start])
		switch sp.kind {
		case spanUnicode:
			b.WriteRune(sp.char)
		case spanAddSpace:
			// no text
		default:
			b.WriteString(sp.inner)
		}
		pos = sp.end
	}
	return b.String()
}

// ExpandUnicode resolves <U:XXXX> escapes in text, leaving everything
// else untouched. The placeholder pipeline runs this as its final
// step; running it again during compilation is a no-op.
func ExpandUnicode(text string) string {
	if !strings.Contains(text, "<") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if text[i] == '<' {
			if sp, ok := parseUnicodeEscape(text, i); ok {
				b.WriteRune(sp.char)
				i = sp.end
				continue
			}
		}
		b.WriteByte(text[i])
		i++
	}
	return b.String()
}

// Strip reduces text to its bare visible form: wrapper syntax and
// style codes both removed. Strip is idempotent, and compiling
// stripped text never reintroduces wrapper syntax.
func Strip(text string) string {
	return StripStyle(Flatten(text))
}
