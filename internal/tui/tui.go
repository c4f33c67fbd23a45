// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal UI of `ed3 tui`.
//
// A [RootModel] routes between pages (menu, create, open, recent and the
// container detail view). Pages talk to the services through tea.Cmds and
// report back with messages, so Update never blocks.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-ed3/internal/logger"
	"github.com/MKhiriev/go-ed3/internal/service"
	"github.com/MKhiriev/go-ed3/models"
)

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user exits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)

	if _, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("tui stopped with error")
		return fmt.Errorf("error running tui: %w", err)
	}

	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageMenu:   NewMenuModel(),
		pageCreate: newCreateModel(ctx, t.services.ContainerService),
		pageOpen:   newOpenModel(ctx, t.services.ContainerService),
		pageRecent: newRecentModel(ctx, t.services.CatalogService, t.services.ContainerService),
		pageDetail: newDetailModel(ctx, t.services.ContainerService),
	}

	return NewRootModel(pages, pageMenu, t.buildInfo)
}
