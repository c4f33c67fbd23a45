// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-ed3/models"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page right after its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type createdMsg struct {
	result models.CreateResult
	forced bool
	err    error
}

type openedMsg struct {
	result models.OpenResult
	err    error
}

type recentLoadedMsg struct {
	entries []models.CatalogEntry
	err     error
}

type playedMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	err error
}
