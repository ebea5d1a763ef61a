// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

// Package markup compiles annotated message strings into ordered,
// interactive text segments.
//
// The dialect recognizes five span kinds inside an ordinary string:
//
//   - directive spans carrying a click action and/or hover tooltip:
//     <hover:"tip">text</text>, <run:"/cmd">text</text>,
//     <hover:"tip"|run:"/cmd">text</text>
//   - bare URLs, which become clickable on their own
//   - unicode escapes <U:0041> (four hex digits)
//   - small-caps spans <sc>text</sc> / <small_caps>text</small_caps>
//   - blank-line markers <add_space:N>
//
// Legacy &x / §x color and style codes pass through untouched, and the
// compiler carries the last active code across segment boundaries so a
// colored run does not visually reset where a directive splits it.
//
// Malformed markup never fails: an unmatched opening, a bad hex escape,
// or a broken argument degrades to literal text.
package markup
