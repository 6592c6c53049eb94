package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriguide/go-nutri-client/internal/logger"
	"github.com/nutriguide/go-nutri-client/models"
)

// stubSource returns canned responses and records call parameters.
type stubSource struct {
	mu    sync.Mutex
	calls int
	resp  models.NotificationsResponse
	err   error

	unreadOnly bool
	limit      int
}

func (s *stubSource) GetNotifications(_ context.Context, unreadOnly bool, limit int) (models.NotificationsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.unreadOnly = unreadOnly
	s.limit = limit
	return s.resp, s.err
}

func (s *stubSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestNotificationPoller_DeliversToSink(t *testing.T) {
	source := &stubSource{
		resp: models.NotificationsResponse{
			Notifications: []models.Notification{{ID: 1, Title: "Drink water"}},
			UnreadCount:   1,
		},
	}

	delivered := make(chan models.NotificationsResponse, 1)
	poller := NewNotificationPoller(source, func(r models.NotificationsResponse) {
		select {
		case delivered <- r:
		default:
		}
	}, logger.Nop())

	poller.Start(context.Background(), time.Hour)
	defer poller.Stop()

	select {
	case got := <-delivered:
		assert.Equal(t, 1, got.UnreadCount)
		require.Len(t, got.Notifications, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("poller never delivered a response")
	}

	assert.True(t, source.unreadOnly)
	assert.Equal(t, pollLimit, source.limit)
}

func TestNotificationPoller_SwallowsErrors(t *testing.T) {
	source := &stubSource{err: errors.New("connection refused")}

	sinkCalls := 0
	poller := NewNotificationPoller(source, func(models.NotificationsResponse) { sinkCalls++ }, logger.Nop())

	poller.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	poller.Stop()

	assert.GreaterOrEqual(t, source.callCount(), 2, "poller should keep retrying after failures")
	assert.Zero(t, sinkCalls)
}

func TestNotificationPoller_StopTerminates(t *testing.T) {
	source := &stubSource{}
	poller := NewNotificationPoller(source, func(models.NotificationsResponse) {}, logger.Nop())

	poller.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	poller.Stop()

	calls := source.callCount()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, source.callCount(), "no polls after Stop")
}

func TestNotificationPoller_StopWithoutStart(t *testing.T) {
	poller := NewNotificationPoller(&stubSource{}, func(models.NotificationsResponse) {}, logger.Nop())

	// Must not panic or block.
	poller.Stop()
	poller.Stop()
}

func TestNotificationPoller_RestartReplacesPreviousRun(t *testing.T) {
	source := &stubSource{}
	poller := NewNotificationPoller(source, func(models.NotificationsResponse) {}, logger.Nop())

	poller.Start(context.Background(), time.Hour)
	poller.Start(context.Background(), time.Hour)
	poller.Stop()

	// One immediate poll per Start.
	assert.Equal(t, 2, source.callCount())
}
