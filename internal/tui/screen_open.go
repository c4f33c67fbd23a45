// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-ed3/internal/app"
	"github.com/MKhiriev/go-ed3/internal/service"
)

type openModel struct {
	ctx        context.Context
	containers service.ContainerService

	path textinput.Model
	busy bool

	showError    bool
	errorOverlay errorOverlayModel
}

func newOpenModel(ctx context.Context, containers service.ContainerService) *openModel {
	path := textinput.New()
	path.Placeholder = "/path/to/song.mp3.ed3"
	path.Width = 60
	path.Focus()

	return &openModel{
		ctx:        ctx,
		containers: containers,
		path:       path,
	}
}

func (m *openModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *openModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openedMsg:
		m.busy = false
		if msg.err != nil {
			m.showError = true
			m.errorOverlay = errorOverlayModel{message: app.Message(msg.err)}
			return m, nil
		}
		m.path.SetValue("")
		return m, navigate(pageDetail, msg)
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
			}
			return m, nil
		}
		if m.busy {
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageMenu, nil)
		case key.Matches(msg, keys.enter):
			path := strings.TrimSpace(m.path.Value())
			if path == "" {
				m.showError = true
				m.errorOverlay = errorOverlayModel{message: "Please enter a .ed3 file path."}
				return m, nil
			}
			m.busy = true
			return m, cmdOpen(m.ctx, m.containers, path)
		}
	}

	var cmd tea.Cmd
	m.path, cmd = m.path.Update(msg)
	return m, cmd
}

func (m *openModel) View() string {
	body := ".ed3 file:\n" + m.path.View()
	if m.busy {
		body += "\n\nopening..."
	}

	page := renderPage("OPEN .ED3", body, "enter: open │ esc: back")
	if m.showError {
		return withOverlay(page, m.errorOverlay.View())
	}
	return page
}
