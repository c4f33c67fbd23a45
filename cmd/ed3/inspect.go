// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <container>...",
		Short: "Summarise one or more .ed3 files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApplication(cmd, appOptions{})
			if err != nil {
				return err
			}
			defer a.Close()

			results, err := a.services.ContainerService.Inspect(cmd.Context(), args...)
			if err != nil {
				return err
			}

			if printInspect(cmd.OutOrStdout(), results) {
				return errInspectFailed
			}
			return nil
		},
	}
}
