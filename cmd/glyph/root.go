// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/glyphmc/glyph/internal/config"
	"github.com/glyphmc/glyph/internal/logging"
)

// Version is stamped at build time.
var Version = "dev"

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the glyph CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glyph",
		Short: "Glyph - annotated message compiler and channel inspector",
		Long: `Glyph compiles annotated message strings (hover/click directives,
small caps, unicode escapes, channel tags) into styled interactive
messages. This tool previews compilation and channel routing without
a running game server.`,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewIdentifyCmd())
	cmd.AddCommand(NewChannelsCmd())
	cmd.AddCommand(NewServeCmd())

	return cmd
}

// loadConfig loads the configuration named by the global flag.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile, nil)
	if err != nil {
		return nil, err
	}
	logging.SetDefault("glyph", Version, cfg.Logging.Format)
	return cfg, nil
}
