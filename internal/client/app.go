package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/nutriguide/go-nutri-client/internal/adapter"
	"github.com/nutriguide/go-nutri-client/internal/config"
	"github.com/nutriguide/go-nutri-client/internal/logger"
	"github.com/nutriguide/go-nutri-client/internal/service"
	"github.com/nutriguide/go-nutri-client/internal/tui"
	"github.com/nutriguide/go-nutri-client/internal/workers"
)

// App glues the session service, the terminal UI, and the notification
// poller into the client lifecycle: restore, auth flow, main loop, repeat on
// sign-out.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	poller   workers.NotificationPoller
	workers  config.ClientWorkers
	log      *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, server adapter.ServerAdapter, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil || server == nil {
		return nil, errors.New("client: services, ui and server adapter are required")
	}

	poller := workers.NewNotificationPoller(server, ui.Feed().Set, log)

	return &App{
		services: services,
		tui:      ui,
		poller:   poller,
		workers:  workersCfg,
		log:      log,
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()
	defer a.services.SessionService.Dispose()

	if err := a.services.SessionService.Initialize(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	notice := ""
	for {
		if !a.services.SessionService.Session().Authenticated {
			if _, err := a.tui.AuthFlow(ctx, notice); err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return err
			}
		}

		a.poller.Start(ctx, a.workers.PollInterval)
		loggedOut, err := a.tui.MainLoop(ctx)
		a.poller.Stop()

		if err != nil {
			if !loggedOut {
				return err
			}
			// Sign-out succeeded on the state machine; local cleanup
			// failures are worth a warning, not an exit.
			a.log.Warn().Err(err).Str("func", "Run").Msg("local session cleanup failed on sign-out")
		}

		if !loggedOut {
			return nil
		}
		notice = "You have been signed out"
	}
}
