package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel is the dashboard's page switcher. It also acts as the route
// guard: the login page is the only page an anonymous session may see, and
// an authenticated session is never left parked on it.
type AppModel struct {
	svc    Services
	login  LoginPageModel
	home   HomePageModel
	tables map[pageID]TablePageModel
	page   pageID
}

// NewAppModel creates the dashboard. The session must already be
// initialized; the starting page follows its state.
func NewAppModel(svc Services) AppModel {
	tables := map[pageID]TablePageModel{
		pageUsers:      usersPage(svc.Users),
		pageBusinesses: businessesPage(svc.Businesses),
		pageCategories: categoriesPage(svc.Categories),
		pageContacts:   contactsPage(svc.Contacts),
		pageLogs:       logsPage(svc.Logs),
	}

	page := pageLogin
	home := NewHomePageModel(svc.Auth, svc.Dashboard)
	if state := svc.Session.Snapshot(); state.IsAuthenticated {
		page = pageHome
		home.user = state.User
	}

	return AppModel{
		svc:    svc,
		login:  NewLoginPageModel(svc.Auth),
		home:   home,
		tables: tables,
		page:   page,
	}
}

// Init initializes the active page
func (m AppModel) Init() tea.Cmd {
	if m.page == pageHome {
		return m.home.Init()
	}
	return m.login.Init()
}

// Update handles app-level messages and delegates to the active page
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		if msg.err == nil {
			m.home.user = msg.user
			return m.switchTo(pageHome)
		}
		// Fall through to the login page so it can show the error.

	case logoutDoneMsg:
		m.login = NewLoginPageModel(m.svc.Auth)
		return m.switchTo(pageLogin)

	case openPageMsg:
		return m.switchTo(msg.page)

	case tea.WindowSizeMsg:
		var cmds []tea.Cmd
		var tempModel tea.Model
		var cmd tea.Cmd

		tempModel, cmd = m.login.Update(msg)
		m.login = tempModel.(LoginPageModel)
		cmds = append(cmds, cmd)

		tempModel, cmd = m.home.Update(msg)
		m.home = tempModel.(HomePageModel)
		cmds = append(cmds, cmd)

		for id, page := range m.tables {
			tempModel, cmd = page.Update(msg)
			m.tables[id] = tempModel.(TablePageModel)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	var tempModel tea.Model
	switch m.page {
	case pageLogin:
		tempModel, cmd = m.login.Update(msg)
		m.login = tempModel.(LoginPageModel)
	case pageHome:
		tempModel, cmd = m.home.Update(msg)
		m.home = tempModel.(HomePageModel)
	default:
		if page, ok := m.tables[m.page]; ok {
			tempModel, cmd = page.Update(msg)
			m.tables[m.page] = tempModel.(TablePageModel)
		}
	}

	model, guardCmd := m.guard()
	if guardCmd != nil {
		return model, tea.Batch(cmd, guardCmd)
	}
	return model, cmd
}

// guard enforces the session/page invariant after every update. It is
// idempotent: a page is never re-entered when it is already active, so
// redirects cannot loop.
func (m AppModel) guard() (AppModel, tea.Cmd) {
	state := m.svc.Session.Snapshot()
	if !state.IsInitialized {
		return m, nil
	}
	if !state.IsAuthenticated && m.page != pageLogin {
		return m.switchTo(pageLogin)
	}
	if state.IsAuthenticated && m.page == pageLogin && !m.login.pending {
		m.home.user = state.User
		return m.switchTo(pageHome)
	}
	return m, nil
}

func (m AppModel) switchTo(page pageID) (AppModel, tea.Cmd) {
	if m.page == page {
		return m, nil
	}
	m.page = page
	switch page {
	case pageLogin:
		return m, m.login.Init()
	case pageHome:
		m.home.loading = true
		return m, m.home.Init()
	default:
		if table, ok := m.tables[page]; ok {
			table.loading = true
			m.tables[page] = table
			return m, table.Init()
		}
	}
	return m, nil
}

// View renders the active page
func (m AppModel) View() string {
	if !m.svc.Session.Snapshot().IsInitialized {
		return docStyle.Render(statusMessageStyle("Loading..."))
	}
	switch m.page {
	case pageLogin:
		return m.login.View()
	case pageHome:
		return m.home.View()
	default:
		if page, ok := m.tables[m.page]; ok {
			return page.View()
		}
		return m.home.View()
	}
}
