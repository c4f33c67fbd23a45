// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-ed3/internal/app"
	"github.com/MKhiriev/go-ed3/models"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// printInspect writes one row per file and reports whether any file failed.
func printInspect(out io.Writer, results []models.InspectResult) bool {
	w := newTable(out)
	defer w.Flush()

	fmt.Fprintln(w, "PATH\tFORMAT\tAUDIO\tMETADATA\tJSON")

	failed := false
	for _, r := range results {
		if r.Err != nil {
			failed = true
			fmt.Fprintf(w, "%s\t-\t-\t-\terror: %s\n", r.Path, app.Detailed(r.Err))
			continue
		}

		metadata := "-"
		if r.HasMetadata {
			metadata = fmt.Sprintf("%d B", r.MetadataSize)
		}
		fmt.Fprintf(w, "%s\t%s\t%d B\t%s\t%s\n",
			r.Path, r.PayloadFormat, r.PayloadSize, metadata, yesNo(r.LooksLikeJSON))
	}

	return failed
}

func printRecent(out io.Writer, entries []models.CatalogEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No containers yet.")
		return
	}

	w := newTable(out)
	defer w.Flush()

	fmt.Fprintln(w, "WHEN\tACTION\tFORMAT\tAUDIO\tMETADATA\tPATH")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d B\t%s\t%s\n",
			e.CreatedAt.Local().Format(time.DateTime),
			e.Action,
			e.PayloadFormat,
			e.PayloadSize,
			yesNo(e.HasMetadata),
			e.Path,
		)
	}
}
