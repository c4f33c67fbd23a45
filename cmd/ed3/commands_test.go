// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ed3/internal/app"
	"github.com/MKhiriev/go-ed3/internal/ed3"
	"github.com/MKhiriev/go-ed3/internal/store"
)

var testPayload = []byte{0x49, 0x44, 0x33, 0x01, 0x02}

// workspace is a temp directory with its own catalog, temp dir and log file.
type workspace struct {
	dir string
	dsn string
}

func newWorkspace(t *testing.T) workspace {
	t.Helper()

	for _, key := range []string{"CONFIG", "ADAPTER_ADDRESS", "STORAGE_FILES_OUTPUT_DIR", "STORAGE_DB_DATABASE_URI"} {
		t.Setenv(key, "")
	}

	dir := t.TempDir()
	return workspace{dir: dir, dsn: filepath.Join(dir, "catalog.db")}
}

func (w workspace) path(name string) string {
	return filepath.Join(w.dir, name)
}

func (w workspace) write(t *testing.T, name string, data []byte) string {
	t.Helper()

	p := w.path(name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

// args appends the flags that keep a command inside the workspace.
func (w workspace) args(args ...string) []string {
	return append(args,
		"--dsn", w.dsn,
		"--temp-dir", w.dir,
		"--log-file", w.path("ed3.log"),
	)
}

// ─────────────────────────────────────────────
// create
// ─────────────────────────────────────────────

func TestCreateCommand(t *testing.T) {
	tests := []struct {
		name        string
		metadata    string
		flags       []string
		input       string
		wantWritten bool
		wantPrompt  bool
		wantOut     string
	}{
		{
			name:        "json metadata",
			metadata:    `{"title":"x"}`,
			wantWritten: true,
			wantOut:     "Saved: ",
		},
		{
			name:        "non json confirmed",
			metadata:    "hello",
			input:       "y\n",
			wantWritten: true,
			wantPrompt:  true,
			wantOut:     "Saved: ",
		},
		{
			name:       "non json declined",
			metadata:   "hello",
			input:      "n\n",
			wantPrompt: true,
			wantOut:    "Cancelled.",
		},
		{
			name:       "non json without answer",
			metadata:   "hello",
			wantPrompt: true,
			wantOut:    "Cancelled.",
		},
		{
			name:        "non json with --yes",
			metadata:    "hello",
			flags:       []string{"--yes"},
			wantWritten: true,
			wantOut:     "Saved: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := newWorkspace(t)
			src := ws.write(t, "song.mp3", testPayload)
			artifact := src + ed3.Extension

			args := append([]string{"create", src, tt.metadata}, tt.flags...)
			out, err := executeRootIn(t, tt.input, ws.args(args...)...)

			require.NoError(t, err)
			assert.Contains(t, out, tt.wantOut)
			if tt.wantPrompt {
				assert.Contains(t, out, app.MsgMetadataNotJSON+" [y/N]")
			} else {
				assert.NotContains(t, out, "[y/N]")
			}

			data, statErr := os.ReadFile(artifact)
			if !tt.wantWritten {
				assert.ErrorIs(t, statErr, os.ErrNotExist)
				return
			}
			require.NoError(t, statErr)
			assert.Len(t, data, len(testPayload)+ed3.MarkerLen+len(tt.metadata))
			assert.True(t, bytes.HasPrefix(data, testPayload))
			assert.True(t, bytes.HasSuffix(data, []byte(tt.metadata)))
		})
	}
}

func TestCreateCommand_MetadataFileAndOut(t *testing.T) {
	ws := newWorkspace(t)
	src := ws.write(t, "song.mp3", testPayload)
	meta := ws.write(t, "tags.json", []byte("  {\"title\":\"x\"}\n"))
	out := ws.path("custom.ed3")

	stdout, err := executeRoot(t, ws.args("create", src, "--metadata-file", meta, "--out", out)...)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Saved: "+out)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, `{"title":"x"}`, string(data[len(testPayload)+ed3.MarkerLen:]))
}

func TestCreateCommand_MissingSource(t *testing.T) {
	ws := newWorkspace(t)

	_, err := executeRoot(t, ws.args("create", ws.path("missing.mp3"), "{}")...)

	assert.ErrorIs(t, err, store.ErrSourceNotFound)
}

func TestCreateCommand_UnusableCatalog(t *testing.T) {
	ws := newWorkspace(t)
	src := ws.write(t, "song.mp3", testPayload)
	blocker := ws.write(t, "not-a-dir", []byte("x"))
	ws.dsn = filepath.Join(blocker, "catalog.db")

	out, err := executeRoot(t, ws.args("create", src, `{"title":"x"}`)...)

	require.NoError(t, err)
	assert.Contains(t, out, "Saved: ")
	assert.FileExists(t, src+ed3.Extension)

	_, err = executeRoot(t, ws.args("open", src+ed3.Extension, "--no-play")...)
	assert.NoError(t, err)

	_, err = executeRoot(t, ws.args("recent")...)
	assert.ErrorIs(t, err, store.ErrCatalogUnavailable)
}

// ─────────────────────────────────────────────
// open and recent
// ─────────────────────────────────────────────

func TestOpenCommand(t *testing.T) {
	container := ed3.Build(testPayload, `{"title":"x"}`)

	t.Run("prints metadata", func(t *testing.T) {
		ws := newWorkspace(t)
		path := ws.write(t, "song.mp3.ed3", container)

		out, err := executeRoot(t, ws.args("open", path, "--no-play")...)

		require.NoError(t, err)
		assert.Equal(t, `{"title":"x"}`+"\n", out)
	})

	t.Run("legacy file without marker", func(t *testing.T) {
		ws := newWorkspace(t)
		path := ws.write(t, "legacy.ed3", testPayload)

		out, err := executeRoot(t, ws.args("open", path, "--no-play")...)

		require.NoError(t, err)
		assert.Equal(t, app.MsgNoEmbeddedJSON+"\n", out)
	})

	t.Run("extract", func(t *testing.T) {
		ws := newWorkspace(t)
		path := ws.write(t, "song.mp3.ed3", container)
		dest := ws.path("out.mp3")

		out, err := executeRoot(t, ws.args("open", path, "--extract", dest)...)

		require.NoError(t, err)
		assert.Contains(t, out, "Audio written to "+dest)
		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, testPayload, data)
	})

	t.Run("missing file", func(t *testing.T) {
		ws := newWorkspace(t)

		_, err := executeRoot(t, ws.args("open", ws.path("missing.ed3"), "--no-play")...)

		assert.ErrorIs(t, err, store.ErrSourceNotFound)
	})
}

func TestRecentCommand_ListsCreateAndOpen(t *testing.T) {
	ws := newWorkspace(t)
	src := ws.write(t, "song.mp3", testPayload)

	_, err := executeRoot(t, ws.args("create", src, `{"title":"x"}`)...)
	require.NoError(t, err)
	_, err = executeRoot(t, ws.args("open", src+ed3.Extension, "--no-play")...)
	require.NoError(t, err)

	out, err := executeRoot(t, ws.args("recent")...)

	require.NoError(t, err)
	assert.Contains(t, out, "created")
	assert.Contains(t, out, "opened")
	assert.Contains(t, out, src+ed3.Extension)
}

// ─────────────────────────────────────────────
// error output
// ─────────────────────────────────────────────

func TestPrintError_KeepsCause(t *testing.T) {
	ws := newWorkspace(t)
	missing := ws.path("missing.mp3")

	_, err := executeRoot(t, ws.args("create", missing, "{}")...)
	require.Error(t, err)

	var buf bytes.Buffer
	printError(&buf, err)

	assert.Contains(t, buf.String(), app.MsgSourceNotFound)
	assert.Contains(t, buf.String(), missing)
}
