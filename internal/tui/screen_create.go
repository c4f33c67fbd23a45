// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-ed3/internal/app"
	"github.com/MKhiriev/go-ed3/internal/service"
	"github.com/MKhiriev/go-ed3/internal/validators"
	"github.com/MKhiriev/go-ed3/models"
)

const (
	focusPath = iota
	focusMetadata
)

type createModel struct {
	ctx        context.Context
	containers service.ContainerService

	path     textinput.Model
	metadata textarea.Model
	focus    int
	spinner  spinner.Model
	busy     bool
	status   string

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
}

func newCreateModel(ctx context.Context, containers service.ContainerService) *createModel {
	path := textinput.New()
	path.Placeholder = "/path/to/song.mp3"
	path.Width = 60
	path.Focus()

	metadata := textarea.New()
	metadata.Placeholder = `{"title": "..."}`
	metadata.SetWidth(60)
	metadata.SetHeight(8)

	return &createModel{
		ctx:        ctx,
		containers: containers,
		path:       path,
		metadata:   metadata,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *createModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *createModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case createdMsg:
		return m.handleCreated(msg)
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateFocused(msg)
}

func (m *createModel) handleCreated(msg createdMsg) (tea.Model, tea.Cmd) {
	m.busy = false

	if msg.err != nil {
		if errors.Is(msg.err, validators.ErrNonJSONShape) && !msg.forced {
			m.showConfirm = true
			m.confirm = confirmModel{message: app.MsgMetadataNotJSON}
			return m, nil
		}
		m.showError = true
		m.errorOverlay = errorOverlayModel{message: app.Message(msg.err)}
		return m, nil
	}

	m.status = "Saved: " + msg.result.OutputPath
	if msg.result.MarkerCollision {
		m.status += "\n" + app.MsgMarkerCollision
	}
	m.path.SetValue("")
	m.metadata.SetValue("")
	m.setFocus(focusPath)

	return m, nil
}

func (m *createModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay = errorOverlayModel{}
		}
		return m, nil
	}

	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.showConfirm = false
			return m, m.submit(true)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.showConfirm = false
		}
		return m, nil
	}

	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(pageMenu, nil)
	case key.Matches(msg, keys.submit):
		return m, m.submit(false)
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		m.setFocus(1 - m.focus)
		return m, nil
	case key.Matches(msg, keys.enter) && m.focus == focusPath:
		m.setFocus(focusMetadata)
		return m, nil
	}

	return m, m.updateFocused(msg)
}

func (m *createModel) submit(force bool) tea.Cmd {
	m.busy = true
	m.status = ""

	req := models.CreateRequest{
		PayloadPath: strings.TrimSpace(m.path.Value()),
		Metadata:    m.metadata.Value(),
		Force:       force,
	}

	return tea.Batch(m.spinner.Tick, cmdCreate(m.ctx, m.containers, req))
}

func (m *createModel) setFocus(focus int) {
	m.focus = focus
	if focus == focusPath {
		m.metadata.Blur()
		m.path.Focus()
		return
	}
	m.path.Blur()
	m.metadata.Focus()
}

func (m *createModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.focus == focusPath {
		m.path, cmd = m.path.Update(msg)
	} else {
		m.metadata, cmd = m.metadata.Update(msg)
	}
	return cmd
}

func (m *createModel) View() string {
	var b strings.Builder

	b.WriteString("Audio file:\n")
	b.WriteString(m.path.View())
	b.WriteString("\n\nJSON metadata:\n")
	b.WriteString(m.metadata.View())

	if m.busy {
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" creating...")
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	page := renderPage("CREATE .ED3", b.String(), "tab: switch field │ ctrl+s: save │ esc: back")

	switch {
	case m.showError:
		return withOverlay(page, m.errorOverlay.View())
	case m.showConfirm:
		return withOverlay(page, m.confirm.View())
	}
	return page
}
