package service

import (
	"context"
	"fmt"
	"math"

	"github.com/jask/birdboard/internal/database/repository"
	"github.com/jask/birdboard/internal/leaderboard"
)

// StoreClient serves leaderboard entries from the sqlite store.
type StoreClient struct {
	Entries *repository.EntryRepo
}

func (c *StoreClient) FetchCategory(ctx context.Context, category leaderboard.Category) ([]leaderboard.Entry, error) {
	rows, err := c.Entries.ListByCategory(ctx, category.Key())
	if err != nil {
		return nil, &leaderboard.FetchError{
			Message: fmt.Sprintf("fetch %s leaderboard: %v", category.Label(), err),
			Err:     err,
		}
	}
	out := make([]leaderboard.Entry, 0, len(rows))
	for _, r := range rows {
		e, err := toEntry(r)
		if err != nil {
			return nil, &leaderboard.FetchError{
				Message: fmt.Sprintf("fetch %s leaderboard: %v", category.Label(), err),
				Err:     err,
			}
		}
		out = append(out, e)
	}
	return out, nil
}

func toEntry(r repository.Entry) (leaderboard.Entry, error) {
	if r.Position <= 0 || r.Position > math.MaxUint32 || r.Score < 0 || r.StreakDays < 0 || r.StreakDays > math.MaxUint32 {
		return leaderboard.Entry{}, fmt.Errorf("entry %s has out of range values", r.ID)
	}
	return leaderboard.Entry{
		Position:   uint32(r.Position),
		PlayerName: r.PlayerName,
		Score:      uint64(r.Score),
		IsFriend:   r.IsFriend,
		IsSelf:     r.IsSelf,
		Metadata: leaderboard.Metadata{
			StreakDays: uint32(r.StreakDays),
			LastPlayed: r.LastPlayed,
		},
	}, nil
}
