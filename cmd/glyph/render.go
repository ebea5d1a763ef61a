// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/glyphmc/glyph/pkg/markup"
)

// NewRenderCmd creates the render subcommand.
func NewRenderCmd() *cobra.Command {
	var showJSON bool

	cmd := &cobra.Command{
		Use:   "render <text>",
		Short: "Compile an annotated string and print its segments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			res := markup.CompileWithOptions(args[0], markup.Options{
				ChatWidth: cfg.Chat.Width,
			})
			comps := markup.Assemble(res.Segments)

			for i, comp := range comps {
				cmd.Printf("segment %d: %q\n", i, comp.Text)
				if !comp.Click.Empty() {
					cmd.Printf("  click: %s %q\n", comp.Click.Kind, comp.Click.Argument)
				}
				if !comp.Hover.Empty() {
					for _, line := range comp.Hover.Lines {
						cmd.Printf("  hover: %q\n", line)
					}
				}
			}
			if res.BlankLines > 0 {
				cmd.Printf("blank lines: %d\n", res.BlankLines)
			}

			if showJSON {
				data, err := markup.ComponentsJSON(comps)
				if err != nil {
					return err
				}
				cmd.Println(string(data))
			} else {
				cmd.Println(markup.RenderANSI(markup.Flatten(args[0])))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showJSON, "json", false, "print the wire-format JSON instead of an ANSI preview")
	return cmd
}
