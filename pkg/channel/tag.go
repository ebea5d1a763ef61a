// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package channel

import "strings"

// matchTag scans message for a bracketed tag whose first colon-part
// equals one of names, using the configured delimiters. Matching is
// uniformly case-insensitive. The first matching tag anywhere in the
// message wins; the returned Rest is the message with that tag cut
// out.
func matchTag(message string, start, end string, names ...string) (Match, bool) {
	if start == "" || end == "" {
		return Match{}, false
	}
	from := 0
	for {
		i := strings.Index(message[from:], start)
		if i < 0 {
			return Match{}, false
		}
		open := from + i
		body := open + len(start)
		j := strings.Index(message[body:], end)
		if j < 0 {
			return Match{}, false
		}
		parts := strings.Split(message[body:body+j], ":")
		for _, name := range names {
			if strings.EqualFold(parts[0], name) {
				return Match{
					Args: parts[1:],
					Rest: message[:open] + message[body+j+len(end):],
				}, true
			}
		}
		from = body + j + len(end)
	}
}
