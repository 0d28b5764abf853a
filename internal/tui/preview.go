package tui

import (
	"fmt"
	"strings"

	"notifeed/internal/feed"
	"notifeed/internal/markdown"
	"notifeed/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

type previewMode int

const (
	modeList previewMode = iota
	modeSearch
)

const defaultListRows = 10

// PreviewModel browses a generated feed
type PreviewModel struct {
	source        string
	notifications []feed.Notification
	headlines     []string
	languages     []string // in order of first appearance
	langIdx       int      // -1 shows every language
	filtered      []int    // indices into notifications
	selected      int
	offset        int
	mode          previewMode
	textInput     textinput.Model
	searchQuery   string
	showHelp      bool
	width         int
	height        int
}

// NewPreviewModel builds a browser over notifications loaded from source.
func NewPreviewModel(source string, notifications []feed.Notification) PreviewModel {
	ti := textinput.New()
	ti.Placeholder = "Search notifications..."
	ti.CharLimit = 100
	ti.Width = 40

	headlines := make([]string, len(notifications))
	var languages []string
	seen := make(map[string]bool)
	for i, n := range notifications {
		headlines[i] = markdown.Headline(n.Content)
		if !seen[n.Language] {
			seen[n.Language] = true
			languages = append(languages, n.Language)
		}
	}

	m := PreviewModel{
		source:        source,
		notifications: notifications,
		headlines:     headlines,
		languages:     languages,
		langIdx:       -1,
		mode:          modeList,
		textInput:     ti,
	}
	m.applyFilter()
	return m
}

// Selected returns the highlighted notification, if any
func (m PreviewModel) Selected() (feed.Notification, bool) {
	if len(m.filtered) == 0 {
		return feed.Notification{}, false
	}
	return m.notifications[m.filtered[m.selected]], true
}

// Visible returns the notifications that pass the current filters, in display order
func (m PreviewModel) Visible() []feed.Notification {
	visible := make([]feed.Notification, len(m.filtered))
	for i, idx := range m.filtered {
		visible[i] = m.notifications[idx]
	}
	return visible
}

// LanguageFilter returns the active language, or "" when all are shown
func (m PreviewModel) LanguageFilter() string {
	if m.langIdx < 0 || m.langIdx >= len(m.languages) {
		return ""
	}
	return m.languages[m.langIdx]
}

// HintText returns the key hints for the current mode.
func (m PreviewModel) HintText() string {
	if m.mode == modeSearch {
		return "type to filter  enter:confirm  esc:cancel"
	}
	return "j/k:navigate  /:search  tab:language  esc:clear  ?:help  q:quit"
}

func (m *PreviewModel) applyFilter() {
	lang := m.LanguageFilter()

	var candidates []int
	for i, n := range m.notifications {
		if lang == "" || n.Language == lang {
			candidates = append(candidates, i)
		}
	}

	if m.searchQuery == "" {
		m.filtered = candidates
	} else {
		haystack := make([]string, len(candidates))
		for i, idx := range candidates {
			n := m.notifications[idx]
			haystack[i] = n.Date + " " + n.Language + " " + n.Content
		}
		matches := fuzzy.Find(m.searchQuery, haystack)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = candidates[match.Index]
		}
	}

	if m.selected >= len(m.filtered) {
		m.selected = max(0, len(m.filtered)-1)
	}
	m.clampOffset()
}

func (m *PreviewModel) listRows() int {
	if m.height <= 0 {
		return defaultListRows
	}
	return max(3, m.height/3)
}

func (m *PreviewModel) clampOffset() {
	rows := m.listRows()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+rows {
		m.offset = m.selected - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if m.mode == modeSearch {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m PreviewModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc":
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.textInput.SetValue("")
			m.applyFilter()
		}

	case "?":
		m.showHelp = true

	case "/":
		m.mode = modeSearch
		m.textInput.SetValue(m.searchQuery)
		m.textInput.Focus()
		return m, textinput.Blink

	case "tab":
		m.langIdx++
		if m.langIdx >= len(m.languages) {
			m.langIdx = -1
		}
		m.selected = 0
		m.offset = 0
		m.applyFilter()

	case "j", "down":
		if len(m.filtered) > 0 && m.selected < len(m.filtered)-1 {
			m.selected++
			m.clampOffset()
		}

	case "k", "up":
		if m.selected > 0 {
			m.selected--
			m.clampOffset()
		}

	case "g", "home":
		m.selected = 0
		m.clampOffset()

	case "G", "end":
		m.selected = max(0, len(m.filtered)-1)
		m.clampOffset()
	}

	return m, nil
}

func (m PreviewModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.searchQuery = ""
		m.textInput.SetValue("")
		m.textInput.Blur()
		m.applyFilter()
		return m, nil

	case "enter":
		m.mode = modeList
		m.searchQuery = m.textInput.Value()
		m.textInput.Blur()
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.searchQuery = m.textInput.Value()
	m.selected = 0
	m.offset = 0
	m.applyFilter()
	return m, cmd
}

func (m PreviewModel) View() string {
	if m.showHelp {
		return RenderHelpPopup(previewHelp, m.width, m.height)
	}

	var b strings.Builder

	lang := m.LanguageFilter()
	if lang == "" {
		lang = "all"
	}
	header := theme.Title.Render("notifeed") + "  " +
		theme.Muted.Render(fmt.Sprintf("%s  (%d/%d, %s)", m.source, len(m.filtered), len(m.notifications), lang))
	b.WriteString(header + "\n\n")

	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(m.renderDetail())
	b.WriteString("\n")

	if m.mode == modeSearch {
		b.WriteString(theme.StatusBar.Render(m.textInput.View()))
	} else {
		status := m.HintText()
		if m.searchQuery != "" {
			status = fmt.Sprintf("search: %q  %s", m.searchQuery, status)
		}
		b.WriteString(theme.StatusBar.Render(status))
	}

	return b.String()
}

func (m PreviewModel) renderList() string {
	if len(m.filtered) == 0 {
		return theme.Muted.Render("  No notifications match.") + "\n"
	}

	var b strings.Builder
	end := min(len(m.filtered), m.offset+m.listRows())
	for i := m.offset; i < end; i++ {
		idx := m.filtered[i]
		n := m.notifications[idx]

		line := theme.Date.Render(n.Date) + " " +
			theme.Language.Render(fmt.Sprintf("[%s]", n.Language)) + " " +
			m.headlines[idx]

		if i == m.selected {
			b.WriteString(theme.Cursor.Render("> ") + theme.SelectedBg.Render(line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m PreviewModel) renderDetail() string {
	n, ok := m.Selected()
	if !ok {
		return ""
	}

	body := n.Content
	maxLines := m.height - m.listRows() - 8
	if m.height > 0 && maxLines > 0 {
		lines := strings.Split(body, "\n")
		if len(lines) > maxLines {
			body = strings.Join(lines[:maxLines], "\n") + "\n" + theme.Muted.Render("...")
		}
	}

	style := theme.Pane
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		theme.Bold.Render(n.Date+" "+n.Language),
		"",
		body,
	))
}

// Run starts the interactive browser and blocks until it exits.
func Run(source string, notifications []feed.Notification) error {
	p := tea.NewProgram(NewPreviewModel(source, notifications), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
