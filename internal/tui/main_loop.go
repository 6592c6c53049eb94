package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nutriguide/go-nutri-client/internal/adapter"
	"github.com/nutriguide/go-nutri-client/internal/logger"
	"github.com/nutriguide/go-nutri-client/internal/service"
	"github.com/nutriguide/go-nutri-client/models"
)

const (
	tabDashboard = iota
	tabNotifications
)

// feedCheckEvery is how often the main loop picks up snapshots the background
// poller has left in the feed.
const feedCheckEvery = 10 * time.Second

const statusClearAfter = 3 * time.Second

type feedTickMsg struct{}

// MainLoopModel is the signed-in screen: a dashboard tab with today's totals
// and a notifications tab fed by the background poller.
type MainLoopModel struct {
	ctx     context.Context
	session service.SessionService
	server  adapter.ServerAdapter
	feed    *NotificationFeed
	log     *logger.Logger

	tab           int
	stats         models.DashboardStats
	statsErr      string
	notifications []models.Notification
	unreadCount   int
	notifErr      string
	feedRev       uint64
	selected      int
	status        string

	loggedOut bool
	logoutErr error
}

func NewMainLoopModel(ctx context.Context, session service.SessionService, server adapter.ServerAdapter, feed *NotificationFeed, log *logger.Logger) *MainLoopModel {
	return &MainLoopModel{
		ctx:     ctx,
		session: session,
		server:  server,
		feed:    feed,
		log:     log,
	}
}

func (m *MainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadStats(), m.cmdLoadNotifications(), feedTick())
}

func (m *MainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.err != nil {
			m.statsErr = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.statsErr = ""
		m.stats = msg.resp.Stats
		return m, nil

	case notificationsLoadedMsg:
		if msg.err != nil {
			m.notifErr = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.notifErr = ""
		m.notifications = msg.resp.Notifications
		m.unreadCount = msg.resp.UnreadCount
		m.clampSelection()
		return m, nil

	case feedTickMsg:
		if resp, rev := m.feed.Snapshot(); rev > m.feedRev {
			m.feedRev = rev
			m.notifErr = ""
			m.notifications = resp.Notifications
			m.unreadCount = resp.UnreadCount
			m.clampSelection()
		}
		return m, feedTick()

	case actionDoneMsg:
		if msg.err != nil {
			m.status = humanizeServerUnavailableError(msg.err)
			return m, clearStatusLater()
		}
		return m, m.cmdLoadNotifications()

	case copiedMsg:
		m.status = "Copied to clipboard"
		return m, clearStatusLater()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case loggedOutMsg:
		m.loggedOut = true
		m.logoutErr = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *MainLoopModel) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "tab":
		m.tab = (m.tab + 1) % 2
	case "1":
		m.tab = tabDashboard
	case "2":
		m.tab = tabNotifications
	case "r":
		return m, tea.Batch(m.cmdLoadStats(), m.cmdLoadNotifications())
	case "up", "k":
		if m.tab == tabNotifications && m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.tab == tabNotifications && m.selected < len(m.notifications)-1 {
			m.selected++
		}
	case "m":
		if n, ok := m.selectedNotification(); ok && !n.IsRead {
			return m, m.cmdMarkRead(n.ID)
		}
	case "a":
		if m.tab == tabNotifications && m.unreadCount > 0 {
			return m, m.cmdMarkAllRead()
		}
	case "c":
		if m.tab == tabDashboard && m.statsErr == "" {
			return m, cmdCopy(m.renderDashboard())
		}
		if n, ok := m.selectedNotification(); ok {
			return m, cmdCopy(n.Title + ": " + n.Message)
		}
	case "l":
		return m, m.cmdLogout()
	case "q":
		return m, tea.Quit
	}

	return m, nil
}

func (m *MainLoopModel) View() string {
	header := m.renderTabs()

	var body string
	if m.tab == tabDashboard {
		body = m.renderDashboard()
	} else {
		body = m.renderNotifications()
	}

	content := header + "\n\n" + body
	if m.status != "" {
		content += "\n\n" + m.status
	}

	user := m.session.Session().User
	title := "NUTRI GUIDE"
	if user != nil && user.Username != "" {
		title += " · " + user.Username
	}

	keys := "tab: switch │ r: refresh │ c: copy │ l: sign out │ q: quit"
	if m.tab == tabNotifications {
		keys = "↑/↓: move │ m: mark read │ a: mark all │ " + keys
	}

	return renderPage(title, content, keys)
}

func (m *MainLoopModel) renderTabs() string {
	names := []string{"Dashboard", "Notifications"}
	if m.unreadCount > 0 {
		names[1] = fmt.Sprintf("Notifications (%d)", m.unreadCount)
	}

	parts := make([]string, len(names))
	for i, name := range names {
		if i == m.tab {
			parts[i] = activeTabStyle.Render(name)
		} else {
			parts[i] = helpStyle.Render(name)
		}
	}
	return strings.Join(parts, "  │  ")
}

func (m *MainLoopModel) renderDashboard() string {
	if m.statsErr != "" {
		return errorStyle.Render("Error: " + m.statsErr)
	}

	s := m.stats
	var b strings.Builder
	fmt.Fprintf(&b, "Calories │ %s kcal\n", formatGoal(s.Nutrition.Calories, s.Goals.Calories))
	fmt.Fprintf(&b, "Protein  │ %s g\n", formatGoal(s.Nutrition.Protein, s.Goals.Protein))
	fmt.Fprintf(&b, "Carbs    │ %.0f g\n", s.Nutrition.Carbs)
	fmt.Fprintf(&b, "Fat      │ %.0f g\n", s.Nutrition.Fat)
	fmt.Fprintf(&b, "Water    │ %.0f / %.0f ml\n", s.Water, s.Goals.Water)
	fmt.Fprintf(&b, "Workouts │ %d today, %s burned\n", s.Workouts.Count, formatKcal(s.Workouts.Calories))

	if s.Fasting.Active {
		fmt.Fprintf(&b, "Fasting  │ %.1f h of %d h target", s.Fasting.ElapsedHours, s.Fasting.TargetHours)
	} else {
		b.WriteString("Fasting  │ not active")
	}

	return b.String()
}

func (m *MainLoopModel) renderNotifications() string {
	if m.notifErr != "" {
		return errorStyle.Render("Error: " + m.notifErr)
	}
	if len(m.notifications) == 0 {
		return "No notifications"
	}

	var b strings.Builder
	for i, n := range m.notifications {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}

		mark := "  "
		if !n.IsRead {
			mark = unreadMarkStyle.Render("● ")
		}

		b.WriteString(cursor)
		b.WriteString(mark)
		b.WriteString(fitText(n.Title+": "+n.Message, 60))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m *MainLoopModel) selectedNotification() (models.Notification, bool) {
	if m.tab != tabNotifications || m.selected < 0 || m.selected >= len(m.notifications) {
		return models.Notification{}, false
	}
	return m.notifications[m.selected], true
}

func (m *MainLoopModel) clampSelection() {
	if m.selected >= len(m.notifications) {
		m.selected = len(m.notifications) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *MainLoopModel) cmdLoadStats() tea.Cmd {
	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		resp, err := server.GetDashboardStats(ctx)
		return statsLoadedMsg{resp: resp, err: err}
	}
}

func (m *MainLoopModel) cmdLoadNotifications() tea.Cmd {
	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		resp, err := server.GetNotifications(ctx, false, 20)
		return notificationsLoadedMsg{resp: resp, err: err}
	}
}

func (m *MainLoopModel) cmdMarkRead(id int64) tea.Cmd {
	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		return actionDoneMsg{err: server.MarkNotificationRead(ctx, id)}
	}
}

func (m *MainLoopModel) cmdMarkAllRead() tea.Cmd {
	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		return actionDoneMsg{err: server.MarkAllNotificationsRead(ctx)}
	}
}

func (m *MainLoopModel) cmdLogout() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return loggedOutMsg{err: session.Logout(ctx)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return actionDoneMsg{err: err}
		}
		return copiedMsg{}
	}
}

func feedTick() tea.Cmd {
	return tea.Tick(feedCheckEvery, func(time.Time) tea.Msg { return feedTickMsg{} })
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(statusClearAfter, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
