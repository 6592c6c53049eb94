package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nutriguide/go-nutri-client/models"
)

// NavigateTo switches the router to another page. Payload, when set, is
// redelivered to the target page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult finishes a login or register attempt.
type AuthResult struct {
	Session models.Session
	Err     error
}

// MenuNotice is a one-line status shown on the menu, e.g. after a sign-out.
type MenuNotice struct {
	Text string
}

type loggedOutMsg struct {
	err error
}

type statsLoadedMsg struct {
	resp models.DashboardResponse
	err  error
}

type notificationsLoadedMsg struct {
	resp models.NotificationsResponse
	err  error
}

type actionDoneMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
