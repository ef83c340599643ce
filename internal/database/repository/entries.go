package repository

import (
	"context"
	"database/sql"
)

// EntryRepo handles leaderboard entries.
type EntryRepo struct {
	db *sql.DB
}

func NewEntryRepo(db *sql.DB) *EntryRepo { return &EntryRepo{db: db} }

func (r *EntryRepo) Upsert(ctx context.Context, e Entry) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO leaderboard_entries(id, category, position, player_name, score, is_friend, is_self, streak_days, last_played, sort_order)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 category=excluded.category,
	 position=excluded.position,
	 player_name=excluded.player_name,
	 score=excluded.score,
	 is_friend=excluded.is_friend,
	 is_self=excluded.is_self,
	 streak_days=excluded.streak_days,
	 last_played=excluded.last_played,
	 sort_order=excluded.sort_order;
	`, e.ID, e.Category, e.Position, e.PlayerName, e.Score, e.IsFriend, e.IsSelf, e.StreakDays, e.LastPlayed, e.SortOrder)
	return err
}

// ListByCategory returns entries in stored order.
func (r *EntryRepo) ListByCategory(ctx context.Context, category string) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, category, position, player_name, score, is_friend, is_self, streak_days, last_played, sort_order
	FROM leaderboard_entries
	WHERE category = ?
	ORDER BY sort_order, rowid`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Category, &e.Position, &e.PlayerName, &e.Score, &e.IsFriend, &e.IsSelf, &e.StreakDays, &e.LastPlayed, &e.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EntryRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM leaderboard_entries`).Scan(&n)
	return n, err
}
