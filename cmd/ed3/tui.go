// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"sync"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ed3/internal/tui"
	"github.com/MKhiriev/go-ed3/internal/workers"
)

func newTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApplication(cmd, appOptions{})
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			var wg sync.WaitGroup
			background := workers.NewWorkers(a.storages.FileStorage, a.cfg.Workers, a.logger)
			wg.Go(func() { background.Run(ctx) })

			err = tui.New(a.services, buildInfo(), a.logger).Run(ctx)

			cancel()
			wg.Wait()

			return err
		},
	}
}
