package repository

// Entry represents a leaderboard_entries row.
type Entry struct {
	ID         string
	Category   string
	Position   int64
	PlayerName string
	Score      int64
	IsFriend   bool
	IsSelf     bool
	StreakDays int64
	LastPlayed string
	SortOrder  int
}
