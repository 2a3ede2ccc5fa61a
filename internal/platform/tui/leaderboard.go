package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const recentGamesLimit = 20

// LeaderboardKeyMap defines the key bindings for the leaderboard screen.
type LeaderboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LeaderboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LeaderboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Back, k.Quit},
	}
}

// DefaultLeaderboardKeyMap returns default key bindings.
func DefaultLeaderboardKeyMap() LeaderboardKeyMap {
	return LeaderboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "top/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "l"),
			key.WithHelp("esc/l", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LeaderboardModel shows the top scores and, when the store keeps history,
// the most recent games.
type LeaderboardModel struct {
	entries []snake.Entry
	recent  []storage.GameResult
	history storage.History

	table      table.Model
	help       help.Model
	keys       LeaderboardKeyMap
	showRecent bool
	width      int
	height     int
	closed     bool
	quitting   bool
}

// NewLeaderboardModel creates a leaderboard screen. history may be nil.
func NewLeaderboardModel(history storage.History, width, height int) LeaderboardModel {
	h := help.New()
	h.Width = width
	m := LeaderboardModel{
		history: history,
		help:    h,
		keys:    DefaultLeaderboardKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	return m
}

// Open refreshes the screen with the current top entries.
func (m *LeaderboardModel) Open(ctx context.Context, entries []snake.Entry) {
	m.entries = entries
	m.recent = nil
	m.closed = false
	if m.history != nil {
		// Errors leave the recent list empty; the top scores still show.
		if recent, err := m.history.RecentGames(ctx, recentGamesLimit); err == nil {
			m.recent = recent
		}
	}
	m.table = m.createTable()
	m.updateTableRows()
}

// SetSize adapts the table to a new terminal size.
func (m *LeaderboardModel) SetSize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.table = m.createTable()
	m.updateTableRows()
}

func (m *LeaderboardModel) createTable() table.Model {
	var columns []table.Column
	if m.showRecent {
		columns = []table.Column{
			{Title: "Player", Width: 14},
			{Title: "Score", Width: 7},
			{Title: "Result", Width: 13},
			{Title: "Date", Width: 14},
		}
	} else {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: 16},
			{Title: "Score", Width: 8},
			{Title: "Date", Width: 14},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *LeaderboardModel) updateTableRows() {
	var rows []table.Row
	if m.showRecent {
		for _, g := range m.recent {
			rows = append(rows, table.Row{
				g.Player,
				fmt.Sprintf("%d", g.Score),
				strings.ReplaceAll(g.Reason, "_", " "),
				g.CreatedAt.Local().Format("Jan 02 15:04"),
			})
		}
	} else {
		for i, e := range m.entries {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				e.Name,
				fmt.Sprintf("%d", e.Score),
				time.UnixMilli(e.Timestamp).Local().Format("Jan 02 15:04"),
			})
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Update handles messages for the leaderboard.
func (m LeaderboardModel) Update(msg tea.Msg) (LeaderboardModel, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.closed = true
			return m, nil

		case key.Matches(msg, m.keys.Switch):
			if m.history != nil {
				m.showRecent = !m.showRecent
				m.table = m.createTable()
				m.updateTableRows()
			}
			return m, nil
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the leaderboard.
func (m LeaderboardModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "TOP SCORES"
	if m.showRecent {
		title = "RECENT GAMES"
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, titleStyle.Render(title)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.renderTableContent())))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m LeaderboardModel) renderTableContent() string {
	empty := len(m.entries) == 0
	if m.showRecent {
		empty = len(m.recent) == 0
	}
	if empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// Closed reports whether the player left the leaderboard.
func (m LeaderboardModel) Closed() bool {
	return m.closed
}

// IsQuitting reports whether the player asked to quit entirely.
func (m LeaderboardModel) IsQuitting() bool {
	return m.quitting
}
