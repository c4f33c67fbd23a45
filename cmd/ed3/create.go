// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ed3/internal/app"
	"github.com/MKhiriev/go-ed3/internal/validators"
	"github.com/MKhiriev/go-ed3/models"
)

type createOptions struct {
	metadataFile string
	out          string
	yes          bool
}

func newCreateCommand() *cobra.Command {
	var opts createOptions

	cmd := &cobra.Command{
		Use:   "create <audio> [metadata]",
		Short: "Embed metadata into an audio file",
		Long: `Create writes <audio>.ed3 with the metadata appended after the marker.

Example:
  ed3 create song.mp3 '{"title": "Song"}'
  ed3 create song.mp3 --metadata-file tags.json --out /tmp/song.ed3`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (opts.metadataFile == "") == (len(args) == 1) {
				return errMetadataArgs
			}

			a, err := newApplication(cmd, appOptions{})
			if err != nil {
				return err
			}
			defer a.Close()

			return runCreate(cmd, a, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.metadataFile, "metadata-file", "", "Read the metadata from a file")
	cmd.Flags().StringVar(&opts.out, "out", "", "Output path (default <audio>.ed3)")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Do not ask before embedding non-JSON text")

	return cmd
}

func runCreate(cmd *cobra.Command, a *application, args []string, opts createOptions) error {
	ctx := cmd.Context()

	req := models.CreateRequest{
		PayloadPath: args[0],
		OutputPath:  opts.out,
		Force:       opts.yes,
	}
	if len(args) == 2 {
		req.Metadata = args[1]
	} else {
		data, err := a.storages.FileStorage.ReadFile(ctx, opts.metadataFile)
		if err != nil {
			return err
		}
		req.Metadata = string(data)
	}

	result, err := a.services.ContainerService.Create(ctx, req)
	if errors.Is(err, validators.ErrNonJSONShape) {
		ok, promptErr := confirm(cmd.InOrStdin(), cmd.OutOrStdout(), app.MsgMetadataNotJSON)
		if promptErr != nil {
			return promptErr
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}

		req.Force = true
		result, err = a.services.ContainerService.Create(ctx, req)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s (%s audio, %d bytes of metadata)\n",
		result.OutputPath, result.PayloadFormat, result.MetadataSize)
	if result.MarkerCollision {
		fmt.Fprintln(cmd.ErrOrStderr(), app.MsgMarkerCollision)
	}

	return nil
}
