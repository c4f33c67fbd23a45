// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"
)

const defaultRecentLimit = 20

func newRecentCommand() *cobra.Command {
	var limit uint64

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently created and opened containers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApplication(cmd, appOptions{})
			if err != nil {
				return err
			}
			defer a.Close()

			if err = a.storages.CatalogErr(); err != nil {
				return err
			}

			entries, err := a.services.CatalogService.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			printRecent(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().Uint64VarP(&limit, "limit", "n", defaultRecentLimit, "Number of entries to show")

	return cmd
}
