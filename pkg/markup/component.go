// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package markup

import (
	"encoding/json"

	"github.com/samber/oops"
)

// Component is one presentation-ready rich-text node: raw text plus
// its optional click and hover payloads. The ordered component list is
// what host recipients receive for chat delivery, and what the raw
// JSON wire format serializes.
type Component struct {
	Text  string
	Click ClickAction
	Hover HoverTooltip
}

// Assemble converts ordered segments into ordered components, one per
// segment. A segment that is itself a bare URL without an explicit
// click action gets an OPEN_URL fallback so URLs are always clickable.
// Concatenating all component texts reproduces the compiled input with
// wrapper syntax stripped and continuity insertions applied.
func Assemble(segs []Segment) []Component {
	comps := make([]Component, 0, len(segs))
	for _, seg := range segs {
		c := Component{Text: seg.Text, Click: seg.Click, Hover: seg.Hover}
		if c.Click.Empty() && looksLikeURL(StripStyle(seg.Text)) {
			c.Click = ClickAction{Kind: ClickOpenURL, Argument: StripStyle(seg.Text)}
		}
		comps = append(comps, c)
	}
	return comps
}

// looksLikeURL reports whether s is exactly one bare URL token.
func looksLikeURL(s string) bool {
	sp, ok := parseURL(s, 0)
	return ok && sp.end == len(s)
}

// wireComponent is the JSON shape of a component on the raw wire.
type wireComponent struct {
	Text       string          `json:"text"`
	ClickEvent *wireClickEvent `json:"clickEvent,omitempty"`
	HoverEvent *wireHoverEvent `json:"hoverEvent,omitempty"`
}

type wireClickEvent struct {
	Action string `json:"action"`
	Value  string `json:"value"`
}

type wireHoverEvent struct {
	Action   string   `json:"action"`
	Contents []string `json:"contents"`
}

// MarshalJSON encodes the component in the structured wire format.
func (c Component) MarshalJSON() ([]byte, error) {
	w := wireComponent{Text: c.Text}
	if !c.Click.Empty() {
		w.ClickEvent = &wireClickEvent{
			Action: c.Click.Kind.String(),
			Value:  c.Click.Argument,
		}
	}
	if !c.Hover.Empty() {
		w.HoverEvent = &wireHoverEvent{
			Action:   "show_text",
			Contents: c.Hover.Lines,
		}
	}
	return json.Marshal(w)
}

// ComponentsJSON serializes an ordered component list to the raw wire
// format: a JSON array of component objects.
func ComponentsJSON(comps []Component) ([]byte, error) {
	data, err := json.Marshal(comps)
	if err != nil {
		return nil, oops.Code("ENCODE_FAILED").Wrapf(err, "encoding components")
	}
	return data, nil
}
