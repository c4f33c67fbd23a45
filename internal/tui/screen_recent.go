// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-ed3/internal/app"
	"github.com/MKhiriev/go-ed3/internal/service"
	"github.com/MKhiriev/go-ed3/models"
)

type recentModel struct {
	ctx        context.Context
	catalog    service.CatalogService
	containers service.ContainerService

	entries []models.CatalogEntry
	idx     int
	loading bool
	errMsg  string
}

func newRecentModel(ctx context.Context, catalog service.CatalogService, containers service.ContainerService) *recentModel {
	return &recentModel{
		ctx:        ctx,
		catalog:    catalog,
		containers: containers,
	}
}

func (m *recentModel) Init() tea.Cmd {
	m.loading = true
	return cmdLoadRecent(m.ctx, m.catalog)
}

func (m *recentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recentLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = app.Message(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.entries = msg.entries
		m.idx = min(m.idx, max(len(m.entries)-1, 0))
		return m, nil
	case openedMsg:
		if msg.err != nil {
			m.errMsg = app.Message(msg.err)
			return m, nil
		}
		return m, navigate(pageDetail, msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageMenu, nil)
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.entries)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.reload):
			return m, m.Init()
		case key.Matches(msg, keys.enter):
			if len(m.entries) == 0 {
				return m, nil
			}
			m.errMsg = ""
			return m, cmdOpen(m.ctx, m.containers, m.entries[m.idx].Path)
		}
	}

	return m, nil
}

func (m *recentModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("loading...")
	case len(m.entries) == 0:
		b.WriteString("No containers yet.")
	default:
		for i, e := range m.entries {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-7s │ %-16s │ %-10s │ %s\n",
				cursor,
				e.Action,
				e.CreatedAt.Local().Format("2006-01-02 15:04"),
				e.PayloadFormat,
				fitText(filepath.Base(e.Path), 40),
			))
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage("RECENT", strings.TrimRight(b.String(), "\n"), "enter: open │ r: reload │ ↑/↓: navigate │ esc: back")
}
