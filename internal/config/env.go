// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the environment using the `env` and
// `envPrefix` tags of [StructuredConfig]. A leading "~/" in file paths is
// replaced with the home directory because quoted values reach the process
// unexpanded.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	for _, path := range []*string{
		&cfg.JSONFilePath,
		&cfg.App.LogFile,
		&cfg.Storage.Files.OutputDir,
		&cfg.Storage.Files.TempDir,
	} {
		*path = expandHome(*path)
	}
	if !cfg.Storage.DB.IsPostgres() {
		cfg.Storage.DB.DSN = expandHome(cfg.Storage.DB.DSN)
	}

	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
