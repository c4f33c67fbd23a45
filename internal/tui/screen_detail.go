// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-ed3/internal/app"
	"github.com/MKhiriev/go-ed3/internal/service"
	"github.com/MKhiriev/go-ed3/models"
)

type detailModel struct {
	ctx        context.Context
	containers service.ContainerService

	opened models.OpenResult
	status string
}

func newDetailModel(ctx context.Context, containers service.ContainerService) *detailModel {
	return &detailModel{
		ctx:        ctx,
		containers: containers,
	}
}

func (m *detailModel) Init() tea.Cmd {
	return nil
}

func (m *detailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openedMsg:
		if msg.err == nil {
			m.opened = msg.result
			m.status = ""
		}
	case playedMsg:
		if msg.err != nil {
			m.status = app.Message(msg.err)
			return m, nil
		}
		m.status = "Playing " + msg.path
	case copiedMsg:
		if msg.err != nil {
			m.status = app.Message(msg.err)
			return m, nil
		}
		m.status = "Metadata copied to clipboard."
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc), msg.String() == "q":
			return m, navigate(pageMenu, nil)
		case key.Matches(msg, keys.copy):
			return m, cmdCopy(m.ctx, m.containers, m.opened)
		case key.Matches(msg, keys.play):
			m.status = "Starting player..."
			return m, cmdPlay(m.ctx, m.containers, m.opened)
		}
	}

	return m, nil
}

func (m *detailModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("File:    %s\n", m.opened.Path))
	b.WriteString(fmt.Sprintf("Audio:   %s, %s\n", m.opened.PayloadFormat, formatSize(int64(len(m.opened.Payload)))))
	b.WriteString("\n")

	if m.opened.HasMetadata {
		b.WriteString(m.opened.Metadata)
	} else {
		b.WriteString(app.MsgNoEmbeddedJSON)
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return renderPage("CONTAINER", b.String(), "c: copy metadata │ p: play │ esc: back")
}
