// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Glyph Contributors

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/glyphmc/glyph/internal/observability"
)

// NewServeCmd creates the serve subcommand. It exposes the dispatch
// metrics and health probes as a standalone scrape target, for hosts
// that embed the library but do not run their own metrics endpoint.
func NewServeCmd() *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve dispatch metrics and health probes over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}

			srv := observability.NewServer(listenAddr, func() bool { return true })
			errCh, err := srv.Start()
			if err != nil {
				return err
			}
			cmd.Printf("serving metrics on %s\n", srv.Addr())

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			select {
			case serveErr := <-errCh:
				return serveErr
			case <-sigCh:
			case <-cmd.Context().Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Stop(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", "127.0.0.1:9090", "metrics listen address")
	return cmd
}
