// Package theme defines the style tokens applied to leaderboard output and
// resolves them to terminal styles.
package theme

import "strings"

// Theme is a set of named style tokens. A token is a space separated list of
// "fg:<color>" / "bg:<color>" words, optionally with "bold" or "underline".
type Theme struct {
	TableHeader     string `json:"table_header"`
	TableRow        string `json:"table_row"`
	HighlightSelf   string `json:"highlight_self"`
	HighlightFriend string `json:"highlight_friend"`
	SubduedText     string `json:"subdued_text"`
}

func Default() Theme {
	return Theme{
		TableHeader:     "fg:muted bg:surface-strong",
		TableRow:        "fg:default bg:surface",
		HighlightSelf:   "fg:accent-strong bg:surface-strong",
		HighlightFriend: "fg:accent bg:surface",
		SubduedText:     "fg:muted",
	}
}

// WithOverrides replaces tokens named in overrides. Keys use the JSON field
// names; blank values keep the current token.
func (t Theme) WithOverrides(overrides map[string]string) Theme {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(overrides[key]); v != "" {
			*dst = v
		}
	}
	set(&t.TableHeader, "table_header")
	set(&t.TableRow, "table_row")
	set(&t.HighlightSelf, "highlight_self")
	set(&t.HighlightFriend, "highlight_friend")
	set(&t.SubduedText, "subdued_text")
	return t
}
