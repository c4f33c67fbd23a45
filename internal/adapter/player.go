// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/MKhiriev/go-ed3/internal/config"
	"github.com/MKhiriev/go-ed3/internal/logger"
)

// execMediaOpener starts the configured player, or the platform opener when
// none is configured.
type execMediaOpener struct {
	command string
	args    []string
	goos    string

	lookPath func(string) (string, error)
	start    func(*exec.Cmd) error

	logger *logger.Logger
}

// NewMediaOpener constructs a [MediaOpener] from the player settings.
func NewMediaOpener(cfg config.Player, logger *logger.Logger) MediaOpener {
	return &execMediaOpener{
		command:  cfg.Command,
		args:     cfg.Args,
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		start:    startDetached,
		logger:   logger,
	}
}

// Open implements [MediaOpener].
func (o *execMediaOpener) Open(ctx context.Context, path string) error {
	name, args := o.commandLine(path)

	bin, err := o.lookPath(name)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPlayerUnavailable, name, err)
	}

	// the player outlives ctx
	cmd := exec.Command(bin, args...)
	if err = o.start(cmd); err != nil {
		o.logger.Err(err).Str("func", "execMediaOpener.Open").Str("player", bin).Msg("failed to start player")
		return fmt.Errorf("%w: %w", ErrPlayerUnavailable, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "execMediaOpener.Open").
		Str("player", bin).
		Str("path", path).
		Msg("player started")

	return nil
}

func (o *execMediaOpener) commandLine(path string) (string, []string) {
	if o.command != "" {
		args := append(append([]string{}, o.args...), path)
		return o.command, args
	}

	switch o.goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}

	go func() { _ = cmd.Wait() }()
	return nil
}
