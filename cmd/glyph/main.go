// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

// Command glyph is the developer tool for the Glyph message library:
// it compiles annotated strings, previews them in a terminal, and
// shows how messages classify across channels.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
