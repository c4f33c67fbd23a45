// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ed3/internal/handler"
	"github.com/MKhiriev/go-ed3/internal/server"
	"github.com/MKhiriev/go-ed3/internal/workers"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the ed3 HTTP API",
		Long: `Serve exposes build and parse over HTTP:

  GET  /api/version
  POST /api/containers/build
  POST /api/containers/parse

The server stops on SIGINT, SIGTERM or SIGQUIT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApplication(cmd, appOptions{serverLog: true, localCodec: true})
			if err != nil {
				return err
			}
			defer a.Close()

			log := a.logger
			log.Debug().Any("config", a.cfg).Msg("received configs")

			handlers, err := handler.NewHandlers(a.services, a.cfg.Server, log)
			if err != nil {
				log.Err(err).Msg("error creating handlers")
				return fmt.Errorf("error creating handlers: %w", err)
			}

			background := workers.NewWorkers(a.storages.FileStorage, a.cfg.Workers, log)

			srv, err := server.NewServer(handlers, a.cfg.Server, log, background)
			if err != nil {
				log.Err(err).Msg("error creating server")
				return fmt.Errorf("error creating server: %w", err)
			}

			if err = srv.RunServer(cmd.Context()); err != nil {
				log.Err(err).Msg("server stopped with error")
				return err
			}

			return nil
		},
	}
}
