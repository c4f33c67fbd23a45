// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command ed3 creates, opens and serves .ed3 containers: audio files with
// JSON metadata appended after a text marker.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-ed3/internal/app"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, app.Detailed(err))
}
