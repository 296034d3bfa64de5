package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/gurtar/gurtarctl/internal/api"
	"github.com/gurtar/gurtarctl/internal/session"
)

// loginResultMsg reports the outcome of a login attempt.
type loginResultMsg struct {
	user *session.User
	err  error
}

// logoutDoneMsg reports that logout cleanup has completed.
type logoutDoneMsg struct{}

// tableDataMsg carries one loaded page of a resource listing.
type tableDataMsg struct {
	page pageID
	rows []table.Row
	meta api.Meta
	err  error
}

// statsMsg carries the dashboard statistics payload.
type statsMsg struct {
	stats *api.DashboardStats
	err   error
}

// openPageMsg asks the app to switch to a resource page.
type openPageMsg struct {
	page pageID
}
