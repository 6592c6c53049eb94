package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nutriguide/go-nutri-client/internal/adapter"
	"github.com/nutriguide/go-nutri-client/internal/logger"
	"github.com/nutriguide/go-nutri-client/internal/service"
	"github.com/nutriguide/go-nutri-client/models"
)

// ErrUserQuit reports that the user closed the program from the auth flow.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
	server   adapter.ServerAdapter
	feed     *NotificationFeed
	log      *logger.Logger
}

func New(services *service.ClientServices, server adapter.ServerAdapter, log *logger.Logger) (*TUI, error) {
	if services == nil || server == nil {
		return nil, errors.New("tui: services and server adapter are required")
	}

	return &TUI{
		services: services,
		server:   server,
		feed:     NewNotificationFeed(),
		log:      log,
	}, nil
}

// Feed exposes the notifications holder so the caller can wire it as the
// background poller's sink.
func (t *TUI) Feed() *NotificationFeed {
	return t.feed
}

// AuthFlow runs the menu/login/register pages until a session is established
// or the user quits. notice, when non-empty, is shown on the menu.
func (t *TUI) AuthFlow(ctx context.Context, notice string) (models.Session, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(notice),
		"login":    NewLoginModel(ctx, t.services.SessionService),
		"register": NewRegisterModel(ctx, t.services.SessionService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.authenticated {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the signed-in screen. It returns loggedOut=true when the user
// signed out, and false when they quit the program.
func (t *TUI) MainLoop(ctx context.Context) (loggedOut bool, err error) {
	model := NewMainLoopModel(ctx, t.services.SessionService, t.server, t.feed, t.log)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(*MainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.loggedOut, result.logoutErr
}
