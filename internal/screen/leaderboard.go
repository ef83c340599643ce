// Package screen projects leaderboard entries into display-ready tables.
package screen

import (
	"context"
	"fmt"
	"slices"

	"github.com/jask/birdboard/internal/leaderboard"
	"github.com/jask/birdboard/internal/tabs"
	"github.com/jask/birdboard/internal/theme"
)

var headers = []string{"Rank", "Player", "Score", "Streak", "Last Played"}

// Headers returns the fixed column headers.
func Headers() []string { return slices.Clone(headers) }

// RenderedLeaderboard is a plain value, rebuilt on every render.
type RenderedLeaderboard struct {
	TabLabels []string      `json:"tab_labels"`
	ActiveTab string        `json:"active_tab"`
	Headers   []string      `json:"headers"`
	Rows      []RenderedRow `json:"rows"`
}

type RenderedRow struct {
	Position       uint32 `json:"position"`
	PlayerName     string `json:"player_name"`
	Score          uint64 `json:"score"`
	Streak         string `json:"streak"`
	LastPlayed     string `json:"last_played"`
	HighlightStyle string `json:"highlight_style"`
	MetadataStyle  string `json:"metadata_style"`
}

func rowFromEntry(e leaderboard.Entry, th theme.Theme) RenderedRow {
	highlight := th.TableRow
	switch e.HighlightKind() {
	case leaderboard.HighlightPlayer:
		highlight = th.HighlightSelf
	case leaderboard.HighlightFriend:
		highlight = th.HighlightFriend
	}
	return RenderedRow{
		Position:       e.Position,
		PlayerName:     e.PlayerName,
		Score:          e.Score,
		Streak:         fmt.Sprintf("%d day streak", e.Metadata.StreakDays),
		LastPlayed:     e.Metadata.LastPlayed,
		HighlightStyle: highlight,
		MetadataStyle:  th.SubduedText,
	}
}

// LeaderboardScreen binds the category tabs to a client and a theme. It is
// not safe for concurrent mutation and rendering.
type LeaderboardScreen struct {
	client leaderboard.Client
	tabs   *tabs.Tabs[leaderboard.Category]
	theme  theme.Theme
}

func NewLeaderboardScreen(client leaderboard.Client, th theme.Theme) *LeaderboardScreen {
	list := make([]tabs.Tab[leaderboard.Category], 0, len(leaderboard.Categories()))
	for _, c := range leaderboard.Categories() {
		list = append(list, tabs.New(c.Label(), c))
	}
	return &LeaderboardScreen{client: client, tabs: tabs.NewTabs(list...), theme: th}
}

// Tabs exposes the selection state for mutation.
func (s *LeaderboardScreen) Tabs() *tabs.Tabs[leaderboard.Category] { return s.tabs }

func (s *LeaderboardScreen) Theme() theme.Theme { return s.theme }

// ActiveCategory falls back to Global when no tab is active.
func (s *LeaderboardScreen) ActiveCategory() leaderboard.Category {
	if c, ok := s.tabs.ActiveValue(); ok {
		return c
	}
	return leaderboard.Global
}

func (s *LeaderboardScreen) RenderActive(ctx context.Context) (RenderedLeaderboard, error) {
	return s.RenderFor(ctx, s.ActiveCategory())
}

// RenderFor renders category regardless of the current selection. Client
// errors are returned unchanged.
func (s *LeaderboardScreen) RenderFor(ctx context.Context, category leaderboard.Category) (RenderedLeaderboard, error) {
	entries, err := s.client.FetchCategory(ctx, category)
	if err != nil {
		return RenderedLeaderboard{}, err
	}
	rows := make([]RenderedRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, rowFromEntry(e, s.theme))
	}
	return RenderedLeaderboard{
		TabLabels: s.tabs.Labels(),
		ActiveTab: category.Label(),
		Headers:   Headers(),
		Rows:      rows,
	}, nil
}
