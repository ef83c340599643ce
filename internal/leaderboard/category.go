package leaderboard

import "strings"

// Category is one of the fixed leaderboard partitions.
type Category int

const (
	Global Category = iota
	Friends
	PersonalBest
)

// Categories returns every category in tab order.
func Categories() []Category {
	return []Category{Global, Friends, PersonalBest}
}

// Label returns the display label shown on the category's tab.
func (c Category) Label() string {
	switch c {
	case Global:
		return "Global"
	case Friends:
		return "Friends"
	case PersonalBest:
		return "Personal Best"
	default:
		return "Unknown"
	}
}

func (c Category) String() string { return c.Label() }

// Key is the stable storage key for the category.
func (c Category) Key() string {
	switch c {
	case Global:
		return "global"
	case Friends:
		return "friends"
	case PersonalBest:
		return "personal_best"
	default:
		return ""
	}
}

// ParseCategory accepts either a display label or a storage key.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(s, c.Label()) || strings.EqualFold(s, c.Key()) {
			return c, true
		}
	}
	return Global, false
}
