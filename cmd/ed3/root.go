// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ed3/internal/adapter"
	"github.com/MKhiriev/go-ed3/internal/config"
	"github.com/MKhiriev/go-ed3/internal/logger"
	"github.com/MKhiriev/go-ed3/internal/service"
	"github.com/MKhiriev/go-ed3/internal/store"
	"github.com/MKhiriev/go-ed3/models"
)

const (
	roleCLI    = "ed3-cli"
	roleServer = "ed3-server"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ed3",
		Short: "Embed JSON metadata into audio files",
		Long: `ed3 appends UTF-8 metadata to an audio file after the marker
"\n--ED3-JSON-START--\n" and reads it back.

Configuration is read from the environment, the flags below and an optional
JSON file (-c), in that order of priority.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newCreateCommand(),
		newOpenCommand(),
		newInspectCommand(),
		newRecentCommand(),
		newServeCommand(),
		newTUICommand(),
		newVersionCommand(),
	)

	return root
}

// application holds the wired services shared by the subcommands.
type application struct {
	cfg      *config.StructuredConfig
	logger   *logger.Logger
	storages *store.Storages
	services *service.Services
}

type appOptions struct {
	// serverLog logs JSON to stdout instead of the log file.
	serverLog bool
	// localCodec ignores the remote server address.
	localCodec bool
}

func newApplication(cmd *cobra.Command, opts appOptions) (*application, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo().BuildVersion()
	}
	if opts.localCodec {
		cfg.Adapter.HTTPAddress = ""
	}

	var log *logger.Logger
	if opts.serverLog {
		log = logger.NewLogger(roleServer)
	} else {
		log = logger.NewFileLogger(roleCLI, cfg.App.LogFile)
	}
	log.Debug().Str("func", "newApplication").Str("command", cmd.Name()).Msg("starting")

	storages, err := store.NewStorages(cmd.Context(), cfg.Storage, log)
	if err != nil {
		log.Err(err).Str("func", "newApplication").Msg("error creating storages")
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	adapters, err := adapter.NewAdapters(*cfg, log)
	if err != nil {
		_ = storages.Close()
		log.Err(err).Str("func", "newApplication").Msg("error creating adapters")
		return nil, fmt.Errorf("error creating adapters: %w", err)
	}

	services, err := service.NewServices(storages, adapters, *cfg, log)
	if err != nil {
		_ = storages.Close()
		log.Err(err).Str("func", "newApplication").Msg("error creating services")
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	return &application{
		cfg:      cfg,
		logger:   log,
		storages: storages,
		services: services,
	}, nil
}

func (a *application) Close() {
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "application.Close").Msg("error closing storages")
	}
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
