package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/service"
	"github.com/MKhiriev/go-leave-tracker/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

// Page names known to [RootModel].
const (
	pageLeaves = "leaves"
	pageSignIn = "signin"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// Run shows the leave page until the user quits. It returns [ErrUserQuit]
// when the program was left with ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.pages(ctx), pageLeaves, t.buildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	return map[string]tea.Model{
		pageLeaves: NewLeavePageModel(ctx, t.services, t.logger),
		pageSignIn: NewSignInModel(ctx, t.services.AuthService),
	}
}
