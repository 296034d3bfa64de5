package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gurtar/gurtarctl/internal/api"
	"github.com/gurtar/gurtarctl/internal/messages"
)

const loginFieldCount = 2

// LoginPageModel is the unauthenticated entry point: an email/password form
// submitted against the auth service.
type LoginPageModel struct {
	auth    *api.AuthService
	inputs  []textinput.Model
	focused int
	pending bool
	errMsg  string
	width   int
	height  int
}

// NewLoginPageModel creates the login form.
func NewLoginPageModel(auth *api.AuthService) LoginPageModel {
	email := textinput.New()
	email.Placeholder = "admin@gurtar.com"
	email.Prompt = "Email    > "
	email.Focus()
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "Password > "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.Width = 40

	return LoginPageModel{
		auth:   auth,
		inputs: []textinput.Model{email, password},
	}
}

// Init initializes the login form
func (m LoginPageModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the login page
func (m LoginPageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.pending {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab", "shift+tab", "up", "down":
			if msg.String() == "shift+tab" || msg.String() == "up" {
				m.focused--
			} else {
				m.focused++
			}
			m.focused = (m.focused + loginFieldCount) % loginFieldCount
			var cmds []tea.Cmd
			for i := range m.inputs {
				if i == m.focused {
					cmds = append(cmds, m.inputs[i].Focus())
				} else {
					m.inputs[i].Blur()
				}
			}
			return m, tea.Batch(cmds...)
		case "enter":
			email := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if email == "" || password == "" {
				m.errMsg = messages.ValidationError
				return m, nil
			}
			m.pending = true
			m.errMsg = ""
			return m, loginCmd(m.auth, email, password)
		}

	case loginResultMsg:
		m.pending = false
		if msg.err != nil {
			// The session manager already holds the user-safe message.
			m.errMsg = m.auth.Session().Snapshot().Err
			if m.errMsg == "" {
				m.errMsg = msg.err.Error()
			}
			m.inputs[1].SetValue("")
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// View renders the login form
func (m LoginPageModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Gurtar Admin"))
	b.WriteString("\n\n")
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.pending {
		b.WriteString(statusMessageStyle("Signing in..."))
	} else if m.errMsg != "" {
		b.WriteString(errorStyle(m.errMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle("enter: sign in • tab: next field • ctrl+c: quit"))
	return docStyle.Render(b.String())
}

func loginCmd(auth *api.AuthService, email, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := auth.Login(context.Background(), email, password)
		return loginResultMsg{user: user, err: err}
	}
}
