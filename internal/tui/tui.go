package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/internal/router"
	"github.com/MKhiriev/exo-explorer/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by Run when the user leaves with ctrl+c.
var ErrUserQuit = errors.New("user quit the program")

// TUI is the terminal client: a page per route behind the route guards.
type TUI struct {
	services *service.ClientServices
	opts     Options
	logger   *logger.Logger
}

func New(services *service.ClientServices, opts Options, logger *logger.Logger) *TUI {
	return &TUI{services: services, opts: opts.withDefaults(), logger: logger}
}

// Run starts the program at startPath and blocks until it exits. Commands
// issued by the pages run with ctx.
func (t *TUI) Run(ctx context.Context, startPath string) error {
	if startPath == "" {
		startPath = router.PathHome
	}

	root := t.newRoot(ctx, startPath)
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

func (t *TUI) newRoot(ctx context.Context, startPath string) RootModel {
	e := &env{ctx: ctx, services: t.services, opts: t.opts, logger: t.logger}
	return newRootModel(e, routes(), startPath)
}

func routes() map[router.View]pageFactory {
	return map[router.View]pageFactory{
		router.ViewHome:      newHomeModel,
		router.ViewSearch:    newSearchModel,
		router.ViewExoplanet: newDetailModel,
		router.ViewFavorites: newFavoritesModel,
		router.ViewProfile:   newProfileModel,
		router.ViewAdmin:     newAdminModel,
		router.ViewLogin:     newLoginModel,
		router.ViewSignup:    newSignupModel,
		router.ViewVerifyOtp: newOtpModel,
		router.ViewNotFound:  newNotFoundModel,
	}
}
