// # cmd/modgraph/ui.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"modgraph/internal/extract"
)

var (
	titleStyle = lipgloss.NewStyle().
			MarginLeft(2).
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true).
			Render

	docStyle = lipgloss.NewStyle().Margin(1, 2)

	unresolvedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FBBF24")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Italic(true)
)

type item struct {
	title, desc string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title + i.desc }

type model struct {
	list        list.Model
	edges       []extract.Edge
	unresolved  []string
	lastUpdate  time.Time
	moduleCount int
	fileCount   int
}

type updateMsg struct {
	edges       []extract.Edge
	unresolved  []string
	moduleCount int
	fileCount   int
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-4)
	case updateMsg:
		m.edges = msg.edges
		m.unresolved = msg.unresolved
		m.moduleCount = msg.moduleCount
		m.fileCount = msg.fileCount
		m.lastUpdate = time.Now()

		items := []list.Item{}
		for _, name := range m.unresolved {
			items = append(items, item{
				title: "Unresolved Short Name",
				desc:  name,
			})
		}
		for _, e := range m.edges {
			items = append(items, item{
				title: e.Source.String(),
				desc:  fmt.Sprintf("-> %s", e.Target),
			})
		}
		m.list.SetItems(items)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	status := statusStyle.Render(fmt.Sprintf("Last update: %v | %d files | %d modules | %d edges",
		m.lastUpdate.Format("15:04:05"), m.fileCount, m.moduleCount, len(m.edges)))

	var summary string
	if len(m.unresolved) == 0 {
		summary = successStyle.Render("✅ All references resolved")
	} else {
		summary = unresolvedStyle.Render(fmt.Sprintf("⚠️  %d unresolved: %s",
			len(m.unresolved), strings.Join(m.unresolved, ", ")))
	}

	header := fmt.Sprintf("%s\n%s | %s\n", titleStyle("Module Dependency Monitor"), status, summary)
	return docStyle.Render(header + "\n" + m.list.View())
}

func initialModel() model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Dependency Edges"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return model{
		list:       l,
		lastUpdate: time.Now(),
	}
}
