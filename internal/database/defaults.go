package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/birdboard/internal/database/repository"
	"github.com/jask/birdboard/internal/leaderboard"
)

// SeedDefaults fills an empty database with the demo leaderboard.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	repo := repository.NewEntryRepo(db)
	n, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count entries: %w", err)
	}
	if n > 0 {
		return nil
	}
	demo := leaderboard.DemoData()
	for _, category := range leaderboard.Categories() {
		for idx, e := range demo.EntriesFor(category) {
			if err := repo.Upsert(ctx, EntryRow(category, idx, e)); err != nil {
				return fmt.Errorf("seed %s: %w", category.Key(), err)
			}
		}
	}
	return nil
}

// EntryRow converts an entry into a storage row. The id is derived from the
// category, position and player so reseeding is stable.
func EntryRow(category leaderboard.Category, sortOrder int, e leaderboard.Entry) repository.Entry {
	key := fmt.Sprintf("entry:%s:%d:%s", category.Key(), e.Position, e.PlayerName)
	return repository.Entry{
		ID:         uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String(),
		Category:   category.Key(),
		Position:   int64(e.Position),
		PlayerName: e.PlayerName,
		Score:      int64(e.Score),
		IsFriend:   e.IsFriend,
		IsSelf:     e.IsSelf,
		StreakDays: int64(e.Metadata.StreakDays),
		LastPlayed: e.Metadata.LastPlayed,
		SortOrder:  sortOrder,
	}
}
