// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ed3/internal/app"
	"github.com/MKhiriev/go-ed3/internal/workers"
)

type openOptions struct {
	extract string
	noPlay  bool
	copy    bool
}

func newOpenCommand() *cobra.Command {
	var opts openOptions

	cmd := &cobra.Command{
		Use:   "open <container>",
		Short: "Play a .ed3 file and print its metadata",
		Long: `Open writes the audio to a temp file, starts the media player and prints
the embedded metadata.

Example:
  ed3 open song.mp3.ed3
  ed3 open song.mp3.ed3 --no-play --copy
  ed3 open song.mp3.ed3 --extract song.mp3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApplication(cmd, appOptions{})
			if err != nil {
				return err
			}
			defer a.Close()

			err = runOpen(cmd, a, args[0], opts)

			cleaner := workers.NewWorkers(a.storages.FileStorage, a.cfg.Workers, a.logger)
			if cleanErr := cleaner.RunOnce(cmd.Context()); cleanErr != nil {
				a.logger.Err(cleanErr).Str("func", "open").Msg("temp cleanup failed")
			}

			return err
		},
	}

	cmd.Flags().StringVar(&opts.extract, "extract", "", "Write the audio to this path instead of playing it")
	cmd.Flags().BoolVar(&opts.noPlay, "no-play", false, "Do not start the media player")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the metadata to the clipboard")

	return cmd
}

func runOpen(cmd *cobra.Command, a *application, path string, opts openOptions) error {
	ctx := cmd.Context()
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	containers := a.services.ContainerService

	opened, err := containers.Open(ctx, path)
	if err != nil {
		return err
	}

	switch {
	case opts.extract != "":
		written, err := containers.ExtractPayload(ctx, opened, opts.extract)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Audio written to %s\n", written)
	case !opts.noPlay:
		played, err := containers.Play(ctx, opened)
		if err != nil {
			fmt.Fprintln(errOut, app.Message(err))
			if played != "" {
				fmt.Fprintf(errOut, "Audio extracted to %s\n", played)
			}
		}
	}

	if opts.copy {
		if err := containers.CopyMetadata(ctx, opened); err != nil {
			fmt.Fprintln(errOut, app.Message(err))
		} else {
			fmt.Fprintln(errOut, "Metadata copied to clipboard.")
		}
	}

	if !opened.HasMetadata {
		fmt.Fprintln(out, app.MsgNoEmbeddedJSON)
		return nil
	}
	fmt.Fprintln(out, opened.Metadata)

	return nil
}
