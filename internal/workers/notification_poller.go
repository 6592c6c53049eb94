package workers

import (
	"context"
	"sync"
	"time"

	"github.com/nutriguide/go-nutri-client/internal/logger"
	"github.com/nutriguide/go-nutri-client/models"
)

const pollLimit = 20

type notificationPoller struct {
	source NotificationSource
	sink   func(models.NotificationsResponse)
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewNotificationPoller creates a poller that pushes every successful fetch
// into sink. The poller is idle until Start is called.
func NewNotificationPoller(source NotificationSource, sink func(models.NotificationsResponse), log *logger.Logger) NotificationPoller {
	return &notificationPoller{source: source, sink: sink, logger: log}
}

func (p *notificationPoller) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	p.Stop()

	p.mu.Lock()
	pollCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()

		p.poll(pollCtx)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-pollCtx.Done():
				return
			case <-t.C:
				p.poll(pollCtx)
			}
		}
	}()
}

func (p *notificationPoller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

// poll fetches unread notifications once. Failures are logged and swallowed;
// the next tick retries.
func (p *notificationPoller) poll(ctx context.Context) {
	resp, err := p.source.GetNotifications(ctx, true, pollLimit)
	if err != nil {
		p.logger.Debug().Err(err).Msg("notification poll failed")
		return
	}

	p.sink(resp)
}
