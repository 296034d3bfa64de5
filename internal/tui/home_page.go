package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gurtar/gurtarctl/internal/api"
	"github.com/gurtar/gurtarctl/internal/session"
)

// HomePageKeyMap holds key bindings for the dashboard landing page
type HomePageKeyMap struct {
	users      key.Binding
	businesses key.Binding
	categories key.Binding
	contacts   key.Binding
	logs       key.Binding
	refresh    key.Binding
	logout     key.Binding
	quit       key.Binding
}

func newHomePageKeyMap() *HomePageKeyMap {
	return &HomePageKeyMap{
		users:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "Users")),
		businesses: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "Businesses")),
		categories: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "Categories")),
		contacts:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "Messages")),
		logs:       key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "Logs")),
		refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Refresh stats")),
		logout:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "Log out")),
		quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("ctrl+c/q", "Quit")),
	}
}

// HomePageModel is the authenticated landing page: a statistics summary
// plus shortcuts into the resource pages.
type HomePageModel struct {
	keys    *HomePageKeyMap
	auth    *api.AuthService
	svc     *api.DashboardService
	user    *session.User
	stats   *api.DashboardStats
	loading bool
	errMsg  string
	width   int
	height  int
}

// NewHomePageModel creates the dashboard landing page.
func NewHomePageModel(auth *api.AuthService, svc *api.DashboardService) HomePageModel {
	return HomePageModel{
		keys:    newHomePageKeyMap(),
		auth:    auth,
		svc:     svc,
		loading: true,
	}
}

// Init triggers the first statistics load
func (m HomePageModel) Init() tea.Cmd {
	return statsCmd(m.svc)
}

func statsCmd(svc *api.DashboardService) tea.Cmd {
	return func() tea.Msg {
		stats, err := svc.Stats(context.Background(), api.StatsFilters{})
		return statsMsg{stats: stats, err: err}
	}
}

// Update handles messages for the home page
func (m HomePageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = userFacing(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.stats = msg.stats
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.users):
			return m, openPage(pageUsers)
		case key.Matches(msg, m.keys.businesses):
			return m, openPage(pageBusinesses)
		case key.Matches(msg, m.keys.categories):
			return m, openPage(pageCategories)
		case key.Matches(msg, m.keys.contacts):
			return m, openPage(pageContacts)
		case key.Matches(msg, m.keys.logs):
			return m, openPage(pageLogs)
		case key.Matches(msg, m.keys.refresh):
			m.loading = true
			return m, statsCmd(m.svc)
		case key.Matches(msg, m.keys.logout):
			return m, logoutCmd(m.auth)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func openPage(id pageID) tea.Cmd {
	return func() tea.Msg { return openPageMsg{page: id} }
}

func logoutCmd(auth *api.AuthService) tea.Cmd {
	return func() tea.Msg {
		auth.Logout(context.Background())
		return logoutDoneMsg{}
	}
}

// View renders the home page
func (m HomePageModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Gurtar Admin Dashboard"))
	if m.user != nil {
		b.WriteString("  ")
		b.WriteString(helpStyle(m.user.Email))
	}
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(statusMessageStyle("Loading statistics..."))
	case m.errMsg != "":
		b.WriteString(errorStyle(m.errMsg))
	case m.stats != nil:
		b.WriteString(m.statsView())
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle("u: users • b: businesses • c: categories • m: messages • l: logs"))
	b.WriteString("\n")
	b.WriteString(helpStyle("r: refresh • x: log out • q: quit"))
	return docStyle.Render(b.String())
}

func (m HomePageModel) statsView() string {
	s := m.stats
	lines := []string{
		headerStyle.Render("Users"),
		fmt.Sprintf("  total %d • active %d • banned %d • growth %.1f%%",
			s.Users.Total, s.Users.Active, s.Users.Banned, s.Users.GrowthRate),
		headerStyle.Render("Businesses"),
		fmt.Sprintf("  total %d • verified %d • active %d • growth %.1f%%",
			s.Businesses.Total, s.Businesses.Verified, s.Businesses.Active, s.Businesses.GrowthRate),
		headerStyle.Render("Orders"),
		fmt.Sprintf("  total %d • avg value %.2f • CO2 saved %.1f kg",
			s.Orders.Total, s.Orders.AvgOrderValue, s.Orders.TotalCO2Saved),
		headerStyle.Render("Contact queue"),
		fmt.Sprintf("  pending %d • resolved %d of %d",
			s.Contact.Pending, s.Contact.Resolved, s.Contact.Total),
	}
	return strings.Join(lines, "\n")
}
