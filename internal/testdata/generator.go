package testdata

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/jask/birdboard/internal/database"
	"github.com/jask/birdboard/internal/database/repository"
	"github.com/jask/birdboard/internal/leaderboard"
)

var names = []string{"SkyTalons", "PlayerZero", "WingsMcGraw", "Chonkster", "Beakmaster", "FeatherFury", "Nestor", "Pidge"}

// Generate builds a dataset with up to maxPerCategory entries per category.
// Positions ascend and at most one entry per category is the viewer.
func Generate(r *rand.Rand, maxPerCategory int) leaderboard.Data {
	out := make(map[leaderboard.Category][]leaderboard.Entry, len(leaderboard.Categories()))
	for _, c := range leaderboard.Categories() {
		n := r.Intn(maxPerCategory + 1)
		self := -1
		if n > 0 && r.Intn(2) == 0 {
			self = r.Intn(n)
		}
		score := uint64(r.Intn(500_000) + 1_000_000)
		list := make([]leaderboard.Entry, 0, n)
		for i := 0; i < n; i++ {
			score -= uint64(r.Intn(50_000))
			list = append(list, leaderboard.Entry{
				Position:   uint32(i + 1),
				PlayerName: fmt.Sprintf("%s%d", names[r.Intn(len(names))], i),
				Score:      score,
				IsFriend:   r.Intn(3) == 0,
				IsSelf:     i == self,
				Metadata: leaderboard.Metadata{
					StreakDays: uint32(r.Intn(90)),
					LastPlayed: fmt.Sprintf("2024-05-%02d 12:00 UTC", r.Intn(28)+1),
				},
			})
		}
		out[c] = list
	}
	return leaderboard.NewData(out)
}

// Seed writes data into the store, preserving per-category order.
func Seed(ctx context.Context, repo *repository.EntryRepo, data leaderboard.Data) error {
	for _, c := range leaderboard.Categories() {
		for idx, e := range data.EntriesFor(c) {
			if err := repo.Upsert(ctx, database.EntryRow(c, idx, e)); err != nil {
				return err
			}
		}
	}
	return nil
}
