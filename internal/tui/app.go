package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/birdboard/internal/leaderboard"
	"github.com/jask/birdboard/internal/screen"
	"github.com/jask/birdboard/internal/service"
)

// App presents a LeaderboardScreen. Selection changes happen in Update; each
// render runs as a command tagged with a sequence number, and only the result
// of the most recent load is shown.
type App struct {
	ctx      context.Context
	screen   *screen.LeaderboardScreen
	keys     keyMap
	board    *screen.RenderedLeaderboard
	loading  bool
	status   string
	prompt   bool
	input    string
	width    int
	quitting bool
	seq      int
}

type renderedMsg struct {
	seq      int
	category leaderboard.Category
	board    screen.RenderedLeaderboard
}

type fetchFailedMsg struct {
	seq      int
	category leaderboard.Category
	err      error
}

func New(ctx context.Context, s *screen.LeaderboardScreen) *App {
	return &App{ctx: ctx, screen: s, keys: defaultKeys()}
}

// ActiveLabel reports the label of the selected tab.
func (a *App) ActiveLabel() string {
	if tab, ok := a.screen.Tabs().Active(); ok {
		return tab.Label
	}
	return ""
}

func (a *App) Init() tea.Cmd {
	return a.load()
}

func (a *App) load() tea.Cmd {
	category := a.screen.ActiveCategory()
	a.seq++
	seq := a.seq
	a.board = nil
	a.loading = true
	return func() tea.Msg {
		board, err := a.screen.RenderFor(a.ctx, category)
		if err != nil {
			return fetchFailedMsg{seq: seq, category: category, err: err}
		}
		return renderedMsg{seq: seq, category: category, board: board}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
	case tea.KeyMsg:
		if a.prompt {
			return a, a.handlePromptKey(m)
		}
		return a, a.handleKey(m)
	case renderedMsg:
		if m.seq != a.seq {
			return a, nil
		}
		board := m.board
		a.board = &board
		a.loading = false
	case fetchFailedMsg:
		if m.seq != a.seq {
			return a, nil
		}
		a.board = nil
		a.loading = false
		a.status = "error: " + m.err.Error()
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	tabs := a.screen.Tabs()
	switch {
	case key.Matches(m, a.keys.Quit):
		a.quitting = true
		return tea.Quit
	case key.Matches(m, a.keys.Next):
		tabs.Next()
	case key.Matches(m, a.keys.Prev):
		tabs.Prev()
	case key.Matches(m, a.keys.Jump):
		before := tabs.ActiveIndex()
		tabs.SetActiveIndex(int(m.String()[0]-'1'))
		if tabs.ActiveIndex() == before {
			return nil
		}
	case key.Matches(m, a.keys.Search):
		a.prompt = true
		a.input = ""
		return nil
	case key.Matches(m, a.keys.Refresh):
	default:
		return nil
	}
	a.status = ""
	return a.load()
}

func (a *App) handlePromptKey(m tea.KeyMsg) tea.Cmd {
	switch m.Type {
	case tea.KeyEsc:
		a.prompt = false
		a.input = ""
		return nil
	case tea.KeyEnter:
		a.prompt = false
		query := strings.TrimSpace(a.input)
		a.input = ""
		tabs := a.screen.Tabs()
		if !tabs.SetActiveLabel(query) {
			a.status = fmt.Sprintf("no tab named %q", query)
			if hint, ok := service.SuggestLabel(tabs.Labels(), query); ok {
				a.status += fmt.Sprintf(" (did you mean %q?)", hint)
			}
			return nil
		}
		a.status = ""
		return a.load()
	case tea.KeyBackspace:
		if r := []rune(a.input); len(r) > 0 {
			a.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		a.input += " "
	case tea.KeyRunes:
		a.input += string(m.Runes)
	case tea.KeyCtrlC:
		a.quitting = true
		return tea.Quit
	}
	return nil
}
