// Package workers provides background jobs run by the client while a user is
// logged in.
package workers

import (
	"context"
	"time"

	"github.com/nutriguide/go-nutri-client/models"
)

// NotificationSource is the slice of the transport layer the poller needs.
type NotificationSource interface {
	GetNotifications(ctx context.Context, unreadOnly bool, limit int) (models.NotificationsResponse, error)
}

// NotificationPoller periodically fetches unread notifications and forwards
// them to a sink (typically the UI event loop).
type NotificationPoller interface {
	// Start launches the polling goroutine. It polls once immediately, then
	// every interval, defaulting to 1 minute if interval is zero or negative.
	// Any previously running poller is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated. Safe to call when the poller is not running.
	Stop()
}
