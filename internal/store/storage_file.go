// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-ed3/internal/logger"
	"github.com/MKhiriev/go-ed3/internal/utils"
)

// TempPrefix starts the name of every payload extracted for playback.
const TempPrefix = "ed3_temp_"

// fileStorage is the local file-system implementation of [FileStorage].
type fileStorage struct {
	tempDir string
	ids     *utils.UUIDGenerator
	logger  *logger.Logger
}

// NewFileStorage constructs a [FileStorage] that writes temp payloads into
// tempDir. An empty tempDir means os.TempDir().
func NewFileStorage(tempDir string, logger *logger.Logger) FileStorage {
	if tempDir == "" {
		tempDir = os.TempDir()
	}

	return &fileStorage{
		tempDir: tempDir,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

// ReadFile reads the whole file at path.
func (s *fileStorage) ReadFile(ctx context.Context, path string) ([]byte, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	if err != nil {
		log.Err(err).Str("func", "fileStorage.ReadFile").Str("path", path).Msg("failed to stat file")
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrSourceNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Err(err).Str("func", "fileStorage.ReadFile").Str("path", path).Msg("failed to read file")
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	log.Debug().
		Str("func", "fileStorage.ReadFile").
		Str("path", path).
		Int("size", len(data)).
		Msg("file read")

	return data, nil
}

// WriteFileAtomic writes data to a temp file in the destination directory,
// syncs it and renames it over path. Any partial temp file is removed.
func (s *fileStorage) WriteFileAtomic(ctx context.Context, path string, data []byte) (err error) {
	log := logger.FromContext(ctx)

	if err = ctx.Err(); err != nil {
		return err
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), ".ed3-*.tmp")
	if err != nil {
		log.Err(err).Str("func", "fileStorage.WriteFileAtomic").Str("path", path).Msg("failed to create temp file")
		return fmt.Errorf("%w: create temp file: %w", ErrWriteFailed, err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()
			_ = os.Remove(tempPath)
		}
	}()

	if _, err = tempFile.Write(data); err != nil {
		log.Err(err).Str("func", "fileStorage.WriteFileAtomic").Str("path", path).Msg("failed to write temp file")
		return fmt.Errorf("%w: write: %w", ErrWriteFailed, err)
	}

	if err = tempFile.Sync(); err != nil {
		return fmt.Errorf("%w: sync temp file: %w", ErrWriteFailed, err)
	}

	if err = tempFile.Close(); err != nil {
		return fmt.Errorf("%w: close temp file: %w", ErrWriteFailed, err)
	}

	if err = os.Chmod(tempPath, 0o644); err != nil {
		return fmt.Errorf("%w: chmod temp file: %w", ErrWriteFailed, err)
	}

	if err = os.Rename(tempPath, path); err != nil {
		log.Err(err).Str("func", "fileStorage.WriteFileAtomic").Str("path", path).Msg("failed to rename temp file")
		return fmt.Errorf("%w: rename temp to output: %w", ErrWriteFailed, err)
	}
	success = true

	log.Debug().
		Str("func", "fileStorage.WriteFileAtomic").
		Str("path", path).
		Int("size", len(data)).
		Msg("file written")

	return nil
}

// WriteTemp writes data to <tempDir>/ed3_temp_<uuid><ext>.
func (s *fileStorage) WriteTemp(ctx context.Context, ext string, data []byte) (string, error) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	path := filepath.Join(s.tempDir, TempPrefix+s.ids.Generate()+ext)
	if err := s.WriteFileAtomic(ctx, path, data); err != nil {
		return "", err
	}

	return path, nil
}

// CleanupTemp removes ed3 temp files whose modification time is older than
// olderThan. Files that disappear or cannot be removed are skipped.
func (s *fileStorage) CleanupTemp(ctx context.Context, olderThan time.Duration) (int, error) {
	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(s.tempDir)
	if err != nil {
		log.Err(err).Str("func", "fileStorage.CleanupTemp").Str("dir", s.tempDir).Msg("failed to list temp dir")
		return 0, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	cutoff := time.Now().Add(-olderThan)
	removed := 0
	for _, entry := range entries {
		if err = ctx.Err(); err != nil {
			return removed, err
		}

		if entry.IsDir() || !strings.HasPrefix(entry.Name(), TempPrefix) {
			continue
		}

		info, infoErr := entry.Info()
		if infoErr != nil || info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(s.tempDir, entry.Name())
		if rmErr := os.Remove(path); rmErr != nil {
			log.Warn().Err(rmErr).Str("func", "fileStorage.CleanupTemp").Str("path", path).Msg("failed to remove temp file")
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Info().Str("func", "fileStorage.CleanupTemp").Int("removed", removed).Msg("stale temp files removed")
	}

	return removed, nil
}
