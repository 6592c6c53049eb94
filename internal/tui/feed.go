package tui

import (
	"sync"

	"github.com/nutriguide/go-nutri-client/models"
)

// NotificationFeed is a thread-safe holder for the latest notifications
// snapshot. The background poller writes into it; the main loop reads it on
// its own schedule, so the two never block each other.
type NotificationFeed struct {
	mu   sync.RWMutex
	resp models.NotificationsResponse
	rev  uint64
}

func NewNotificationFeed() *NotificationFeed {
	return &NotificationFeed{}
}

// Set replaces the held snapshot. Safe to call from any goroutine.
func (f *NotificationFeed) Set(resp models.NotificationsResponse) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resp = resp
	f.rev++
}

// Snapshot returns the held snapshot and its revision. A revision of zero
// means the poller has not delivered anything yet.
func (f *NotificationFeed) Snapshot() (models.NotificationsResponse, uint64) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.resp, f.rev
}
