package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/birdboard/internal/leaderboard"
	"github.com/jask/birdboard/internal/screen"
	"github.com/jask/birdboard/internal/theme"
)

func testData() leaderboard.Data {
	return leaderboard.NewData(map[leaderboard.Category][]leaderboard.Entry{
		leaderboard.Global: {
			{Position: 1, PlayerName: "SkyTalons", Score: 1_240_000, Metadata: leaderboard.Metadata{StreakDays: 42, LastPlayed: "2024-05-01 12:00 UTC"}},
			{Position: 2, PlayerName: "PlayerZero", Score: 1_030_500, IsFriend: true, IsSelf: true, Metadata: leaderboard.Metadata{StreakDays: 60, LastPlayed: "2024-05-02 12:00 UTC"}},
		},
		leaderboard.Friends: {
			{Position: 1, PlayerName: "PlayerZero", Score: 1_030_500, IsFriend: true, IsSelf: true, Metadata: leaderboard.Metadata{StreakDays: 60, LastPlayed: "2024-05-02 12:00 UTC"}},
		},
		leaderboard.PersonalBest: {
			{Position: 12, PlayerName: "PlayerZero", Score: 1_030_500, IsFriend: true, IsSelf: true, Metadata: leaderboard.Metadata{StreakDays: 60, LastPlayed: "2024-05-02 12:00 UTC"}},
		},
	})
}

func newTestApp(client leaderboard.Client) *App {
	return New(context.Background(), screen.NewLeaderboardScreen(client, theme.Default()))
}

// run executes cmd and feeds its message back into the app.
func run(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	_, next := a.Update(cmd())
	require.Nil(t, next)
}

func press(a *App, k tea.KeyMsg) tea.Cmd {
	_, cmd := a.Update(k)
	return cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func view(a *App) string { return ansi.Strip(a.View()) }

func TestInitRendersGlobal(t *testing.T) {
	a := newTestApp(leaderboard.NewInMemoryClient(testData()))
	run(t, a, a.Init())

	out := view(a)
	require.Contains(t, out, "Global")
	require.Contains(t, out, "Personal Best")
	require.Contains(t, out, "Last Played")
	require.Contains(t, out, "SkyTalons")
	require.Contains(t, out, "1,240,000")
	require.Contains(t, out, "60 day streak")
	require.Equal(t, "Global", a.ActiveLabel())
}

func TestArrowKeysCycleTabs(t *testing.T) {
	a := newTestApp(leaderboard.NewInMemoryClient(testData()))
	run(t, a, a.Init())

	run(t, a, press(a, tea.KeyMsg{Type: tea.KeyRight}))
	require.Equal(t, "Friends", a.ActiveLabel())
	require.NotContains(t, view(a), "SkyTalons")

	run(t, a, press(a, tea.KeyMsg{Type: tea.KeyLeft}))
	run(t, a, press(a, tea.KeyMsg{Type: tea.KeyLeft}))
	require.Equal(t, "Personal Best", a.ActiveLabel())
	require.Contains(t, view(a), "#12")
}

func TestNumberKeysJump(t *testing.T) {
	a := newTestApp(leaderboard.NewInMemoryClient(testData()))
	run(t, a, press(a, runes("3")))
	require.Equal(t, "Personal Best", a.ActiveLabel())

	require.Nil(t, press(a, runes("9")))
	require.Equal(t, "Personal Best", a.ActiveLabel())
}

func TestPromptSelectsByLabel(t *testing.T) {
	a := newTestApp(leaderboard.NewInMemoryClient(testData()))
	require.Nil(t, press(a, runes("/")))
	press(a, runes("personal"))
	press(a, tea.KeyMsg{Type: tea.KeySpace})
	press(a, runes("bestx"))
	press(a, tea.KeyMsg{Type: tea.KeyBackspace})
	require.Contains(t, view(a), "Go to tab: personal best_")

	run(t, a, press(a, tea.KeyMsg{Type: tea.KeyEnter}))
	require.Equal(t, "Personal Best", a.ActiveLabel())
	require.Contains(t, view(a), "Personal Best")
}

func TestPromptMissKeepsSelectionAndSuggests(t *testing.T) {
	a := newTestApp(leaderboard.NewInMemoryClient(testData()))
	run(t, a, press(a, runes("2")))
	press(a, runes("/"))
	press(a, runes("freinds"))
	require.Nil(t, press(a, tea.KeyMsg{Type: tea.KeyEnter}))

	require.Equal(t, "Friends", a.ActiveLabel())
	require.Contains(t, view(a), `no tab named "freinds" (did you mean "Friends"?)`)
}

func TestStaleRenderIsDropped(t *testing.T) {
	a := newTestApp(leaderboard.NewInMemoryClient(testData()))
	globalCmd := a.Init()
	friendsCmd := press(a, tea.KeyMsg{Type: tea.KeyRight})

	run(t, a, friendsCmd)
	run(t, a, globalCmd)

	require.Equal(t, "Friends", a.ActiveLabel())
	require.NotContains(t, view(a), "SkyTalons")
}

type brokenClient struct{}

func (brokenClient) FetchCategory(context.Context, leaderboard.Category) ([]leaderboard.Entry, error) {
	return nil, leaderboard.NewFetchError("leaderboard offline")
}

func TestFetchErrorShowsStatus(t *testing.T) {
	a := newTestApp(brokenClient{})
	run(t, a, press(a, runes("2")))

	out := view(a)
	require.Contains(t, out, "error: leaderboard offline")
	require.Contains(t, out, "No data")
	require.Equal(t, "Friends", a.ActiveLabel())
}

func TestQuit(t *testing.T) {
	a := newTestApp(leaderboard.NewInMemoryClient(testData()))
	cmd := press(a, runes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
	require.Empty(t, a.View())
}

func TestRenderTableAlignsColumns(t *testing.T) {
	board := screen.RenderedLeaderboard{
		Headers: screen.Headers(),
		Rows: []screen.RenderedRow{
			{Position: 1, PlayerName: "A", Score: 5, Streak: "1 day streak", LastPlayed: "today"},
			{Position: 10, PlayerName: "LongerName", Score: 12345, Streak: "10 day streak", LastPlayed: "yesterday"},
		},
	}
	lines := strings.Split(strings.TrimRight(ansi.Strip(renderTable(board, theme.Default())), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, ansi.StringWidth(lines[0]), ansi.StringWidth(lines[1]))
	require.Equal(t, ansi.StringWidth(lines[1]), ansi.StringWidth(lines[2]))
	require.Contains(t, lines[0], "Last Played")
	require.Contains(t, lines[1], "1 day streak")
	require.Contains(t, lines[2], "12,345")
}

func TestRenderTableWithoutRows(t *testing.T) {
	out := ansi.Strip(renderTable(screen.RenderedLeaderboard{Headers: screen.Headers()}, theme.Default()))
	require.Contains(t, out, "Rank")
	require.Contains(t, out, "No entries yet")
}

func TestFormatScore(t *testing.T) {
	require.Equal(t, "0", formatScore(0))
	require.Equal(t, "999", formatScore(999))
	require.Equal(t, "1,000", formatScore(1000))
	require.Equal(t, "870,500", formatScore(870_500))
	require.Equal(t, "1,240,000", formatScore(1_240_000))
}

// flakyClient fails its first fetch and serves data afterwards.
type flakyClient struct {
	calls int
	data  leaderboard.Data
}

func (c *flakyClient) FetchCategory(_ context.Context, category leaderboard.Category) ([]leaderboard.Entry, error) {
	c.calls++
	if c.calls == 1 {
		return nil, leaderboard.NewFetchError("transient")
	}
	return c.data.EntriesFor(category), nil
}

func TestLateResultForSameTabIsDropped(t *testing.T) {
	a := newTestApp(&flakyClient{data: testData()})
	firstGlobal := a.Init()
	press(a, tea.KeyMsg{Type: tea.KeyRight})
	secondGlobal := press(a, tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, "Global", a.ActiveLabel())

	failed := firstGlobal()
	run(t, a, secondGlobal)
	_, next := a.Update(failed)
	require.Nil(t, next)

	out := view(a)
	require.Contains(t, out, "SkyTalons")
	require.NotContains(t, out, "error: transient")
}

func TestTabSwitchHidesPreviousBoard(t *testing.T) {
	a := newTestApp(leaderboard.NewInMemoryClient(testData()))
	run(t, a, a.Init())
	require.Contains(t, view(a), "SkyTalons")

	cmd := press(a, runes("3"))
	require.NotNil(t, cmd)
	out := view(a)
	require.NotContains(t, out, "SkyTalons")
	require.Contains(t, out, "loading...")

	run(t, a, cmd)
	require.Contains(t, view(a), "#12")
}
