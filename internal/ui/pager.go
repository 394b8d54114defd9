package ui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	ansiCodes   = regexp.MustCompile(`\x1b\[[0-9;]*m`)
)

// Model pages a rendered report in the terminal.
type Model struct {
	title   string
	content string
	lines   []string
	members []int // line indices of "name:" member headers

	viewport  viewport.Model
	search    textinput.Model
	searching bool
	query     string
	matches   []int
	matchIdx  int

	keys  keyMap
	ready bool
}

// New builds a pager model over the rendered report content.
func New(title, content string) Model {
	content = strings.TrimRight(content, "\n")
	lines := strings.Split(content, "\n")

	var members []int
	for i, line := range lines {
		if strings.HasPrefix(line, "name: ") {
			members = append(members, i)
		}
	}

	search := textinput.New()
	search.Prompt = "/"

	return Model{
		title:   title,
		content: content,
		lines:   lines,
		members: members,
		search:  search,
		keys:    defaultKeyMap(),
	}
}

// Run pages the content and blocks until the user quits.
func Run(title, content string) error {
	program := tea.NewProgram(New(title, content), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - 2 // title and footer rows
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue("")
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.NextMatch):
		m.jumpMatch(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevMatch):
		m.jumpMatch(-1)
		return m, nil

	case key.Matches(msg, m.keys.NextMember):
		m.jumpMember(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevMember):
		m.jumpMember(-1)
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.searching = false
		m.search.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		m.setQuery(m.search.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// setQuery records the search query, collects matching line numbers, and
// jumps to the first match at or below the current position.
func (m *Model) setQuery(query string) {
	m.query = query
	m.matches = m.matches[:0]
	m.matchIdx = -1
	if query == "" {
		return
	}
	lowered := strings.ToLower(query)
	for i, line := range m.lines {
		plain := ansiCodes.ReplaceAllString(line, "")
		if strings.Contains(strings.ToLower(plain), lowered) {
			m.matches = append(m.matches, i)
		}
	}
	for i, line := range m.matches {
		if line >= m.viewport.YOffset {
			m.matchIdx = i
			m.viewport.SetYOffset(line)
			return
		}
	}
	if len(m.matches) > 0 {
		m.matchIdx = 0
		m.viewport.SetYOffset(m.matches[0])
	}
}

func (m *Model) jumpMatch(dir int) {
	if len(m.matches) == 0 {
		return
	}
	m.matchIdx = (m.matchIdx + dir + len(m.matches)) % len(m.matches)
	m.viewport.SetYOffset(m.matches[m.matchIdx])
}

// jumpMember scrolls to the next or previous member header relative to the
// current scroll position.
func (m *Model) jumpMember(dir int) {
	if len(m.members) == 0 {
		return
	}
	offset := m.viewport.YOffset
	if dir > 0 {
		for _, line := range m.members {
			if line > offset {
				m.viewport.SetYOffset(line)
				return
			}
		}
		return
	}
	for i := len(m.members) - 1; i >= 0; i-- {
		if m.members[i] < offset {
			m.viewport.SetYOffset(m.members[i])
			return
		}
	}
	m.viewport.GotoTop()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return titleStyle.Render(m.title) + "\n" + m.viewport.View() + "\n" + m.footer()
}

func (m Model) footer() string {
	if m.searching {
		return footerStyle.Render(m.search.View())
	}
	status := fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100)
	if m.query != "" {
		status += fmt.Sprintf("  /%s (%d matches)", m.query, len(m.matches))
	}
	help := "q quit  / search  n/N match  ]/[ member  g/G top/bottom"
	return footerStyle.Render(status + "  " + help)
}
