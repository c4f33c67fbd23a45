// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-ed3/internal/service"
	"github.com/MKhiriev/go-ed3/models"
)

// recentLimit is how many catalog entries the Recent page shows.
const recentLimit = 20

func cmdCreate(ctx context.Context, svc service.ContainerService, req models.CreateRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := svc.Create(ctx, req)
		return createdMsg{result: result, forced: req.Force, err: err}
	}
}

func cmdOpen(ctx context.Context, svc service.ContainerService, path string) tea.Cmd {
	return func() tea.Msg {
		result, err := svc.Open(ctx, path)
		return openedMsg{result: result, err: err}
	}
}

func cmdLoadRecent(ctx context.Context, svc service.CatalogService) tea.Cmd {
	return func() tea.Msg {
		entries, err := svc.Recent(ctx, recentLimit)
		return recentLoadedMsg{entries: entries, err: err}
	}
}

func cmdPlay(ctx context.Context, svc service.ContainerService, opened models.OpenResult) tea.Cmd {
	return func() tea.Msg {
		path, err := svc.Play(ctx, opened)
		return playedMsg{path: path, err: err}
	}
}

func cmdCopy(ctx context.Context, svc service.ContainerService, opened models.OpenResult) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: svc.CopyMetadata(ctx, opened)}
	}
}
