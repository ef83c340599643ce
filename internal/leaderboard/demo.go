package leaderboard

func demoEntry(pos uint32, name string, score uint64, friend, self bool, streak uint32, lastPlayed string) Entry {
	return Entry{
		Position:   pos,
		PlayerName: name,
		Score:      score,
		IsFriend:   friend,
		IsSelf:     self,
		Metadata:   Metadata{StreakDays: streak, LastPlayed: lastPlayed},
	}
}

// DemoData is the sample leaderboard used for fresh stores and the in-memory
// source.
func DemoData() Data {
	return NewData(map[Category][]Entry{
		Global: {
			demoEntry(1, "SkyTalons", 1_240_000, false, false, 42, "2024-05-01 12:00 UTC"),
			demoEntry(2, "PlayerZero", 1_030_500, true, true, 60, "2024-05-02 12:00 UTC"),
			demoEntry(3, "WingsMcGraw", 980_000, true, false, 28, "2024-04-28 12:00 UTC"),
			demoEntry(4, "Chonkster", 870_500, false, false, 7, "2024-04-25 12:00 UTC"),
		},
		Friends: {
			demoEntry(1, "PlayerZero", 1_030_500, true, true, 60, "2024-05-02 12:00 UTC"),
			demoEntry(2, "WingsMcGraw", 980_000, true, false, 28, "2024-04-28 12:00 UTC"),
		},
		PersonalBest: {
			demoEntry(12, "PlayerZero", 1_030_500, true, true, 60, "2024-05-02 12:00 UTC"),
		},
	})
}
