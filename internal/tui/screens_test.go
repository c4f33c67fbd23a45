// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ed3/internal/adapter"
	"github.com/MKhiriev/go-ed3/internal/app"
	"github.com/MKhiriev/go-ed3/internal/mock"
	"github.com/MKhiriev/go-ed3/internal/service"
	"github.com/MKhiriev/go-ed3/internal/store"
	"github.com/MKhiriev/go-ed3/internal/validators"
	"github.com/MKhiriev/go-ed3/models"
)

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestCreateModel_EmptyMetadataShowsError(t *testing.T) {
	containers := mock.NewMockContainerService(gomock.NewController(t))
	containers.EXPECT().Create(gomock.Any(), models.CreateRequest{PayloadPath: "a.mp3"}).
		Return(models.CreateResult{}, validators.ErrEmptyMetadata)

	m := newCreateModel(context.Background(), containers)
	m.path.SetValue("a.mp3")

	_, cmd := m.Update(keyType(tea.KeyCtrlS))
	assert.True(t, m.busy)
	created, ok := findMsg[createdMsg](runCmd(cmd))
	require.True(t, ok)

	m.Update(created)

	assert.False(t, m.busy)
	assert.True(t, m.showError)
	assert.Contains(t, m.View(), app.MsgNoMetadataProvided)

	m.Update(keyType(tea.KeyEnter))
	assert.False(t, m.showError)
}

func TestCreateModel_NonJSONAsksForConfirmation(t *testing.T) {
	containers := mock.NewMockContainerService(gomock.NewController(t))
	gomock.InOrder(
		containers.EXPECT().Create(gomock.Any(), models.CreateRequest{PayloadPath: "a.mp3", Metadata: "hello"}).
			Return(models.CreateResult{}, validators.ErrNonJSONShape),
		containers.EXPECT().Create(gomock.Any(), models.CreateRequest{PayloadPath: "a.mp3", Metadata: "hello", Force: true}).
			Return(models.CreateResult{OutputPath: "a.mp3.ed3"}, nil),
	)

	m := newCreateModel(context.Background(), containers)
	m.path.SetValue("a.mp3")
	m.metadata.SetValue("hello")

	_, cmd := m.Update(keyType(tea.KeyCtrlS))
	created, _ := findMsg[createdMsg](runCmd(cmd))
	m.Update(created)

	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), app.MsgMetadataNotJSON)

	_, cmd = m.Update(keyRunes("y"))
	created, ok := findMsg[createdMsg](runCmd(cmd))
	require.True(t, ok)
	m.Update(created)

	assert.False(t, m.showConfirm)
	assert.Contains(t, m.status, "a.mp3.ed3")
	assert.Empty(t, m.path.Value(), "form is reset after saving")
}

func TestCreateModel_DeclineConfirmation(t *testing.T) {
	m := newCreateModel(context.Background(), mock.NewMockContainerService(gomock.NewController(t)))
	m.Update(createdMsg{err: validators.ErrNonJSONShape})
	require.True(t, m.showConfirm)

	_, cmd := m.Update(keyRunes("n"))

	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
}

func TestCreateModel_MarkerCollisionWarning(t *testing.T) {
	m := newCreateModel(context.Background(), nil)

	m.Update(createdMsg{result: models.CreateResult{OutputPath: "x.ed3", MarkerCollision: true}})

	assert.Contains(t, m.status, app.MsgMarkerCollision)
}

func TestCreateModel_FocusAndBack(t *testing.T) {
	m := newCreateModel(context.Background(), nil)

	m.Update(keyType(tea.KeyTab))
	assert.Equal(t, focusMetadata, m.focus)
	m.Update(keyType(tea.KeyTab))
	assert.Equal(t, focusPath, m.focus)
	m.Update(keyType(tea.KeyEnter))
	assert.Equal(t, focusMetadata, m.focus)

	_, cmd := m.Update(keyType(tea.KeyEsc))
	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageMenu, nav.Page)
}

// ─────────────────────────────────────────────
// Open
// ─────────────────────────────────────────────

func TestOpenModel_SuccessNavigatesToDetail(t *testing.T) {
	containers := mock.NewMockContainerService(gomock.NewController(t))
	containers.EXPECT().Open(gomock.Any(), "a.ed3").Return(models.OpenResult{Path: "a.ed3"}, nil)

	m := newOpenModel(context.Background(), containers)
	m.path.SetValue(" a.ed3 ")

	_, cmd := m.Update(keyType(tea.KeyEnter))
	opened, ok := findMsg[openedMsg](runCmd(cmd))
	require.True(t, ok)

	_, cmd = m.Update(opened)
	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageDetail, nav.Page)
	assert.Equal(t, opened, nav.Payload)
}

func TestOpenModel_Errors(t *testing.T) {
	m := newOpenModel(context.Background(), nil)

	_, cmd := m.Update(keyType(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.True(t, m.showError, "empty path")

	m.Update(keyType(tea.KeyEsc))
	m.Update(openedMsg{err: store.ErrSourceNotFound})
	assert.True(t, m.showError)
	assert.Contains(t, m.View(), app.MsgSourceNotFound)
}

// ─────────────────────────────────────────────
// Detail
// ─────────────────────────────────────────────

func TestDetailModel_ShowsMetadataOrPlaceholder(t *testing.T) {
	m := newDetailModel(context.Background(), nil)

	m.Update(openedMsg{result: models.OpenResult{Path: "a.ed3", Metadata: `{"t":1}`, HasMetadata: true, PayloadFormat: "MP3"}})
	assert.Contains(t, m.View(), `{"t":1}`)

	m.Update(openedMsg{result: models.OpenResult{Path: "b.ed3"}})
	assert.Contains(t, m.View(), app.MsgNoEmbeddedJSON)
}

func TestDetailModel_CopyAndPlay(t *testing.T) {
	containers := mock.NewMockContainerService(gomock.NewController(t))
	opened := models.OpenResult{Path: "a.ed3", Payload: []byte("x"), Metadata: "{}", HasMetadata: true}
	containers.EXPECT().CopyMetadata(gomock.Any(), opened).Return(nil)
	containers.EXPECT().Play(gomock.Any(), opened).Return("", adapter.ErrPlayerUnavailable)

	m := newDetailModel(context.Background(), containers)
	m.Update(openedMsg{result: opened})

	_, cmd := m.Update(keyRunes("c"))
	for _, msg := range runCmd(cmd) {
		m.Update(msg)
	}
	assert.Equal(t, "Metadata copied to clipboard.", m.status)

	_, cmd = m.Update(keyRunes("p"))
	for _, msg := range runCmd(cmd) {
		m.Update(msg)
	}
	assert.Equal(t, app.MsgPlayerUnavailable, m.status)
}

func TestDetailModel_CopyWithoutMetadata(t *testing.T) {
	m := newDetailModel(context.Background(), nil)

	m.Update(copiedMsg{err: service.ErrNoMetadata})

	assert.Equal(t, app.MsgNoEmbeddedJSON, m.status)
}

// ─────────────────────────────────────────────
// Recent
// ─────────────────────────────────────────────

func TestRecentModel_LoadAndOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mock.NewMockCatalogService(ctrl)
	containers := mock.NewMockContainerService(ctrl)

	entries := []models.CatalogEntry{
		{Path: "/music/a.ed3", Action: models.ActionCreated, PayloadFormat: "MP3"},
		{Path: "/music/b.ed3", Action: models.ActionOpened, PayloadFormat: "FLAC"},
	}
	catalog.EXPECT().Recent(gomock.Any(), uint64(recentLimit)).Return(entries, nil)
	containers.EXPECT().Open(gomock.Any(), "/music/b.ed3").Return(models.OpenResult{Path: "/music/b.ed3"}, nil)

	m := newRecentModel(context.Background(), catalog, containers)
	for _, msg := range runCmd(m.Init()) {
		m.Update(msg)
	}
	assert.False(t, m.loading)
	assert.Contains(t, m.View(), "b.ed3")

	m.Update(keyType(tea.KeyDown))
	_, cmd := m.Update(keyType(tea.KeyEnter))
	opened, ok := findMsg[openedMsg](runCmd(cmd))
	require.True(t, ok)

	_, cmd = m.Update(opened)
	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageDetail, nav.Page)
}

func TestRecentModel_EmptyAndError(t *testing.T) {
	m := newRecentModel(context.Background(), nil, nil)

	m.Update(recentLoadedMsg{})
	assert.Contains(t, m.View(), "No containers yet.")

	_, cmd := m.Update(keyType(tea.KeyEnter))
	assert.Nil(t, cmd)

	m.Update(recentLoadedMsg{err: store.ErrExecutingQuery})
	assert.NotEmpty(t, m.errMsg)
}
