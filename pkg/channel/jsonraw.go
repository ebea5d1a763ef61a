// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package channel

import (
	"context"
	"encoding/json"
	"sync"

	jschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/glyphmc/glyph/pkg/host"
)

// JSONRawName is the raw structured-wire channel name.
const JSONRawName = "json"

// componentSchema validates the structured wire shape: one component
// object or an array of them.
const componentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "oneOf": [
    {"$ref": "#/$defs/component"},
    {"type": "array", "items": {"$ref": "#/$defs/component"}}
  ],
  "$defs": {
    "component": {
      "type": "object",
      "required": ["text"],
      "properties": {
        "text": {"type": "string"},
        "clickEvent": {
          "type": "object",
          "required": ["action", "value"],
          "properties": {
            "action": {"type": "string"},
            "value": {"type": "string"}
          }
        },
        "hoverEvent": {
          "type": "object",
          "required": ["action"],
          "properties": {
            "action": {"type": "string"},
            "contents": {"type": "array", "items": {"type": "string"}}
          }
        }
      }
    }
  }
}`

var (
	wireSchemaOnce sync.Once
	wireSchema     *jschema.Schema
)

// compiledWireSchema compiles the component schema once. A compile
// failure is a programming error in the constant above.
func compiledWireSchema() *jschema.Schema {
	wireSchemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(componentSchema), &doc); err != nil {
			panic("channel: invalid component schema: " + err.Error())
		}
		c := jschema.NewCompiler()
		if err := c.AddResource("component.schema.json", doc); err != nil {
			panic("channel: component schema resource: " + err.Error())
		}
		sch, err := c.Compile("component.schema.json")
		if err != nil {
			panic("channel: component schema compile: " + err.Error())
		}
		wireSchema = sch
	})
	return wireSchema
}

type jsonRawChannel struct{}

// JSONRaw returns the structured-wire channel, selected with [json].
// The tagged text must already be a valid wire payload; the channel
// validates and forwards it verbatim.
func JSONRaw() Channel { return jsonRawChannel{} }

func (jsonRawChannel) Name() string { return JSONRawName }

func (jsonRawChannel) Match(pc *Context, message string) (Match, bool) {
	d := pc.config().Delimiters
	return matchTag(message, d.Start, d.End, JSONRawName)
}

// Format resolves placeholders only; the payload is already shaped.
func (jsonRawChannel) Format(rec host.Recipient, pc *Context, text string) string {
	return pc.replace(rec, text)
}

func (c jsonRawChannel) Send(ctx context.Context, recipients []host.Recipient, pc *Context, message string) bool {
	if len(recipients) == 0 {
		return false
	}
	text := message
	if m, ok := c.Match(pc, message); ok {
		text = m.Rest
	}

	sent := false
	for _, rec := range recipients {
		payload := c.Format(rec, pc, text)
		// An unparseable payload skips this recipient; the loop
		// continues so one bad substitution cannot mute everyone.
		var doc any
		if err := json.Unmarshal([]byte(payload), &doc); err != nil {
			pc.logger().DebugContext(ctx, "json payload rejected",
				"recipient", rec.Name(),
				"error", err,
			)
			continue
		}
		if err := compiledWireSchema().Validate(doc); err != nil {
			pc.logger().DebugContext(ctx, "json payload rejected",
				"recipient", rec.Name(),
				"error", err,
			)
			continue
		}
		if err := rec.SendRaw(json.RawMessage(payload)); err != nil {
			pc.logger().DebugContext(ctx, "json send failed",
				"recipient", rec.Name(),
				"error", err,
			)
			continue
		}
		sent = true
	}
	return sent
}
