// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/glyphmc/glyph/pkg/channel"
)

// NewIdentifyCmd creates the identify subcommand.
func NewIdentifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identify <message>",
		Short: "Show which channel a message routes to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			pc := &channel.Context{Config: cfg}
			reg := channel.NewRegistry()
			ch := reg.Identify(pc, args[0])

			cmd.Printf("channel: %s\n", ch.Name())
			if m, ok := ch.Match(pc, args[0]); ok {
				cmd.Printf("args: %v\n", m.Args)
				cmd.Printf("text: %q\n", m.Rest)
			} else {
				cmd.Printf("text: %q\n", args[0])
			}
			return nil
		},
	}
}

// NewChannelsCmd creates the channels subcommand.
func NewChannelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "channels",
		Short: "List the registered channels in recognition order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}
			for _, ch := range channel.NewRegistry().All() {
				cmd.Println(ch.Name())
			}
			return nil
		},
	}
}
