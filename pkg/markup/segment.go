// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package markup

import "strings"

// ClickKind identifies what a click action does.
type ClickKind uint8

const (
	ClickNone ClickKind = iota
	ClickRunCommand
	ClickOpenURL
	ClickOpenFile
	ClickSuggestCommand
	ClickChangePage
	ClickCopyToClipboard
)

// String returns the wire name of the click kind.
func (k ClickKind) String() string {
	switch k {
	case ClickRunCommand:
		return "run_command"
	case ClickOpenURL:
		return "open_url"
	case ClickOpenFile:
		return "open_file"
	case ClickSuggestCommand:
		return "suggest_command"
	case ClickChangePage:
		return "change_page"
	case ClickCopyToClipboard:
		return "copy_to_clipboard"
	default:
		return "none"
	}
}

// ClickAction is an optional click instruction on a segment. The zero
// value (kind ClickNone) means no action. The argument may still
// contain placeholder keys; senders resolve them per recipient at
// send time.
type ClickAction struct {
	Kind     ClickKind
	Argument string
}

// Empty reports whether the action is absent.
func (c ClickAction) Empty() bool { return c.Kind == ClickNone }

// HoverTooltip is an optional hover instruction on a segment. An empty
// line list means no tooltip.
type HoverTooltip struct {
	Lines []string
}

// Empty reports whether the tooltip is absent.
func (h HoverTooltip) Empty() bool { return len(h.Lines) == 0 }

// Tooltip builds a HoverTooltip from raw argument text, splitting on
// the literal \n escape so config authors can write multi-line tips
// in a single quoted argument.
func Tooltip(arg string) HoverTooltip {
	if arg == "" {
		return HoverTooltip{}
	}
	return HoverTooltip{Lines: strings.Split(arg, "\\n")}
}

// Segment is one unit of compiled output: a run of text plus its
// optional click and hover payloads. Segments are never shared or
// mutated after compilation.
type Segment struct {
	Text  string
	Click ClickAction
	Hover HoverTooltip
}

// directiveKinds maps every accepted directive alias (lowercase) to
// its click kind. The hover directive is handled separately.
var directiveKinds = map[string]ClickKind{
	"execute":           ClickRunCommand,
	"click":             ClickRunCommand,
	"run":               ClickRunCommand,
	"run_command":       ClickRunCommand,
	"suggest":           ClickSuggestCommand,
	"suggest_command":   ClickSuggestCommand,
	"url":               ClickOpenURL,
	"open_url":          ClickOpenURL,
	"file":              ClickOpenFile,
	"open_file":         ClickOpenFile,
	"page":              ClickChangePage,
	"change_page":       ClickChangePage,
	"copy":              ClickCopyToClipboard,
	"copy_to_clipboard": ClickCopyToClipboard,
}

const hoverDirective = "hover"
