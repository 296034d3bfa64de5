package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gurtar/gurtarctl/internal/api"
	"github.com/gurtar/gurtarctl/internal/httpclient"
	"github.com/gurtar/gurtarctl/internal/messages"
)

// pageID names a dashboard page.
type pageID string

const (
	pageLogin      pageID = "login"
	pageHome       pageID = "home"
	pageUsers      pageID = "users"
	pageBusinesses pageID = "businesses"
	pageCategories pageID = "categories"
	pageContacts   pageID = "contacts"
	pageLogs       pageID = "logs"
)

const defaultPageLimit = 20

// rowLoader fetches one page of a resource listing.
type rowLoader func(ctx context.Context, page, limit int) ([]table.Row, api.Meta, error)

// TablePageKeyMap holds key bindings shared by all resource table pages
type TablePageKeyMap struct {
	refresh  key.Binding
	nextPage key.Binding
	prevPage key.Binding
	back     key.Binding
	quit     key.Binding
}

func newTablePageKeyMap() *TablePageKeyMap {
	return &TablePageKeyMap{
		refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh"),
		),
		nextPage: key.NewBinding(
			key.WithKeys("right", "n"),
			key.WithHelp("→/n", "Next page"),
		),
		prevPage: key.NewBinding(
			key.WithKeys("left", "p"),
			key.WithHelp("←/p", "Previous page"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("ctrl+c/q", "Quit"),
		),
	}
}

// TablePageModel is a paginated resource listing backed by a rowLoader.
// Every admin collection (users, businesses, categories, contacts, logs)
// is an instance of this page with its own columns and loader.
type TablePageModel struct {
	id      pageID
	title   string
	keys    *TablePageKeyMap
	load    rowLoader
	table   table.Model
	meta    api.Meta
	page    int
	loading bool
	errMsg  string
	width   int
	height  int
}

// NewTablePageModel creates a resource table page.
func NewTablePageModel(id pageID, title string, columns []table.Column, load rowLoader) TablePageModel {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderBottom(true)
	t.SetStyles(styles)

	return TablePageModel{
		id:      id,
		title:   title,
		keys:    newTablePageKeyMap(),
		load:    load,
		table:   t,
		page:    1,
		loading: true,
	}
}

// Init triggers the first load
func (m TablePageModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m TablePageModel) loadCmd() tea.Cmd {
	id, load, page := m.id, m.load, m.page
	return func() tea.Msg {
		rows, meta, err := load(context.Background(), page, defaultPageLimit)
		return tableDataMsg{page: id, rows: rows, meta: meta, err: err}
	}
}

// Update handles messages for a table page
func (m TablePageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tableDataMsg:
		if msg.page != m.id {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = userFacing(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.meta = msg.meta
		m.table.SetRows(msg.rows)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.refresh):
			m.loading = true
			return m, m.loadCmd()
		case key.Matches(msg, m.keys.nextPage):
			if m.meta.TotalPages == 0 || m.page < m.meta.TotalPages {
				m.page++
				m.loading = true
				return m, m.loadCmd()
			}
			return m, nil
		case key.Matches(msg, m.keys.prevPage):
			if m.page > 1 {
				m.page--
				m.loading = true
				return m, m.loadCmd()
			}
			return m, nil
		case key.Matches(msg, m.keys.back):
			return m, func() tea.Msg { return openPageMsg{page: pageHome} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := msg.Height - 8
		if h > 3 {
			m.table.SetHeight(h)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders a table page
func (m TablePageModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(statusMessageStyle("Loading..."))
	case m.errMsg != "":
		b.WriteString(errorStyle(m.errMsg))
	default:
		b.WriteString(m.table.View())
		b.WriteString("\n")
		b.WriteString(helpStyle(fmt.Sprintf("page %d/%d • %d total", m.page, max(m.meta.TotalPages, 1), m.meta.Total)))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle("r: refresh • →/n ←/p: pages • esc: back • q: quit"))
	return docStyle.Render(b.String())
}

// userFacing maps a pipeline error onto display copy. Structured API
// messages pass through; raw transport detail does not.
func userFacing(err error) string {
	switch {
	case errors.Is(err, httpclient.ErrSessionExpired):
		return messages.SessionExpired
	case errors.Is(err, httpclient.ErrNetwork):
		return messages.NetworkError
	case errors.Is(err, httpclient.ErrServer):
		return messages.ServerError
	}
	if apiErr, ok := httpclient.AsAPIError(err); ok {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized:
			return messages.Unauthorized
		case http.StatusForbidden:
			return messages.Forbidden
		}
		return apiErr.Error()
	}
	if errors.Is(err, api.ErrValidation) {
		return err.Error()
	}
	return messages.UnknownError
}
