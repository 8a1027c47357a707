package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/iksnae/cursor-chat-export/internal"
)

type viewState int

const (
	stateList viewState = iota
	stateSession
)

// Model is the bubbletea model for the session browser: a navigable list of
// sessions and a scrollable conversation view.
type Model struct {
	sessions []*internal.Session

	state  viewState
	cursor int

	viewport viewport.Model

	width  int
	height int
	ready  bool
}

// NewModel creates a browser over the given sessions
func NewModel(sessions []*internal.Session) Model {
	return Model{sessions: sessions}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(msg.Width, max(1, msg.Height-4))
		m.ready = true
		if m.state == stateSession {
			m.viewport.SetContent(m.renderSession(m.sessions[m.cursor]))
		}
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateList:
			return m.updateList(msg)
		case stateSession:
			return m.updateSession(msg)
		}
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "up", "k":
		m.cursor--
		if m.cursor < 0 {
			m.cursor = max(0, len(m.sessions)-1)
		}

	case "down", "j":
		m.cursor++
		if m.cursor >= len(m.sessions) {
			m.cursor = 0
		}

	case "home", "g":
		m.cursor = 0

	case "end", "G":
		m.cursor = max(0, len(m.sessions)-1)

	case "enter":
		if len(m.sessions) == 0 {
			return m, nil
		}
		m.state = stateSession
		if m.ready {
			m.viewport.SetContent(m.renderSession(m.sessions[m.cursor]))
			m.viewport.GotoTop()
		}
	}

	return m, nil
}

func (m Model) updateSession(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.state = stateList
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return hintStyle.Render("  Initializing...")
	}

	switch m.state {
	case stateSession:
		return m.sessionView()
	default:
		return m.listView()
	}
}

func (m Model) listView() string {
	header := headerStyle.Render(fmt.Sprintf("Cursor Chats — %d session(s)", len(m.sessions)))

	var items []string
	if len(m.sessions) == 0 {
		items = append(items, hintStyle.Render("  No sessions found"))
	} else {
		visible := max(3, m.height-6)
		offset := 0
		if m.cursor >= visible {
			offset = m.cursor - visible + 1
		}
		end := min(offset+visible, len(m.sessions))

		if offset > 0 {
			items = append(items, hintStyle.Render("  ..."))
		}
		for i := offset; i < end; i++ {
			items = append(items, m.renderItem(i))
		}
		if end < len(m.sessions) {
			items = append(items, hintStyle.Render("  ..."))
		}
	}

	status := m.statusBar([][2]string{
		{"↑/↓", "navigate"},
		{"enter", "open"},
		{"q", "quit"},
	})

	sections := append([]string{header, ""}, items...)
	sections = append(sections, status)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderItem(i int) string {
	session := m.sessions[i]

	cursor := "  "
	style := itemStyle
	if i == m.cursor {
		cursor = cursorStyle.Render("> ")
		style = selectedItemStyle
	}

	title := session.DisplayTitle()
	if len(title) > 50 {
		title = title[:47] + "..."
	}

	meta := metaStyle.Render(fmt.Sprintf(" — %d message(s)%s", len(session.Messages), relativeTime(session.UpdatedAt)))
	return cursor + style.Render(title) + meta
}

func (m Model) sessionView() string {
	session := m.sessions[m.cursor]
	header := headerStyle.Render(session.DisplayTitle())

	status := m.statusBar([][2]string{
		{"↑/↓", "scroll"},
		{"esc", "back"},
		{"ctrl+c", "quit"},
	})

	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), status)
}

func (m Model) statusBar(shortcuts [][2]string) string {
	var parts []string
	for _, s := range shortcuts {
		parts = append(parts, statusKeyStyle.Render(s[0])+metaStyle.Render(" "+s[1]))
	}
	return statusBarStyle.Render(strings.Join(parts, "  |  "))
}

// renderSession renders one conversation as glamour-styled markdown, falling
// back to plain text when the renderer fails.
func (m Model) renderSession(session *internal.Session) string {
	markdown := sessionMarkdown(session)

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}

func sessionMarkdown(session *internal.Session) string {
	var sb strings.Builder
	for _, msg := range session.Messages {
		role := "Assistant"
		if msg.Role == internal.RoleUser {
			role = "User"
		}
		for _, block := range msg.Blocks {
			switch block.Kind {
			case internal.BlockThinking:
				fmt.Fprintf(&sb, "### %s [thinking]\n\n%s\n\n", role, block.Content)
			case internal.BlockCode:
				fmt.Fprintf(&sb, "### %s [chat]\n\n```%s\n%s\n```\n\n", role, block.Language, block.Content)
			default:
				fmt.Fprintf(&sb, "### %s [chat]\n\n%s\n\n", role, block.Content)
			}
		}
	}
	return sb.String()
}

func relativeTime(stamp string) string {
	if stamp == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return ""
	}

	diff := time.Since(t)
	switch {
	case diff < time.Hour:
		return fmt.Sprintf(", %dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf(", %dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf(", %dd ago", int(diff.Hours()/24))
	default:
		return ", " + t.Format("Jan 2 2006")
	}
}

// Run starts the session browser and blocks until the user quits
func Run(sessions []*internal.Session) error {
	p := tea.NewProgram(NewModel(sessions), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
