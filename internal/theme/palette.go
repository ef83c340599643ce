package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// Semantic names usable in tokens.
var namedColors = map[string]lipgloss.Color{
	"default":        colorText,
	"muted":          colorSubtext0,
	"dim":            colorOverlay1,
	"accent":         colorLavender,
	"accent-strong":  colorPink,
	"surface":        colorBase,
	"surface-strong": colorSurface0,
	"border":         colorSurface1,
	"success":        colorGreen,
	"error":          colorRed,
	"warning":        colorYellow,
	"info":           colorTeal,
	"mauve":          colorMauve,
	"peach":          colorPeach,
	"blue":           colorBlue,
}

// Color looks up a palette name. Raw "#rrggbb" values and ANSI numbers pass
// through unchanged.
func Color(name string) (lipgloss.Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := namedColors[name]; ok {
		return c, true
	}
	if strings.HasPrefix(name, "#") && (len(name) == 7 || len(name) == 4) {
		return lipgloss.Color(name), true
	}
	if name != "" && strings.Trim(name, "0123456789") == "" {
		return lipgloss.Color(name), true
	}
	return "", false
}

// Style resolves a token into a lipgloss style. Unknown words are ignored.
func Style(token string) lipgloss.Style {
	s := lipgloss.NewStyle()
	for _, word := range strings.Fields(token) {
		key, value, hasValue := strings.Cut(word, ":")
		switch {
		case hasValue && key == "fg":
			if c, ok := Color(value); ok {
				s = s.Foreground(c)
			}
		case hasValue && key == "bg":
			if c, ok := Color(value); ok {
				s = s.Background(c)
			}
		case word == "bold":
			s = s.Bold(true)
		case word == "underline":
			s = s.Underline(true)
		}
	}
	return s
}
