// Package tui is the terminal front end of the shelfsync client: a sign-in
// flow followed by a status screen that drives the sync engine.
package tui

import (
	"context"

	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/service"
	"github.com/MKhiriev/shelfsync/internal/store"
	"github.com/MKhiriev/shelfsync/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	state     store.LocalStateStore
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, state store.LocalStateStore, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		state:     state,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// LoginFlow shows the menu, sign-in and registration pages until the user
// signs in. It returns ErrUserQuit when the user leaves instead.
func (t *TUI) LoginFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser || !result.signedIn {
		return ErrUserQuit
	}

	t.logger.Info().Str("login", result.username).Msg("signed in")
	return nil
}

// MainLoop runs the status screen. logout is true when the user asked to
// sign out rather than quit.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := NewStatusModel(ctx, t.services.SyncService, t.state)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(*StatusModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
