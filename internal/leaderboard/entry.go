package leaderboard

// HighlightKind classifies an entry relative to the viewer.
type HighlightKind int

const (
	HighlightNone HighlightKind = iota
	HighlightPlayer
	HighlightFriend
)

// Metadata holds the secondary per-entry details.
type Metadata struct {
	StreakDays uint32 `json:"streak_days"`
	LastPlayed string `json:"last_played"`
}

// Entry is one player's record within a category.
type Entry struct {
	Position   uint32   `json:"position"`
	PlayerName string   `json:"player_name"`
	Score      uint64   `json:"score"`
	IsFriend   bool     `json:"is_friend"`
	IsSelf     bool     `json:"is_self"`
	Metadata   Metadata `json:"metadata"`
}

// HighlightKind derives the highlight for the entry. Self wins over friend.
func (e Entry) HighlightKind() HighlightKind {
	switch {
	case e.IsSelf:
		return HighlightPlayer
	case e.IsFriend:
		return HighlightFriend
	default:
		return HighlightNone
	}
}
