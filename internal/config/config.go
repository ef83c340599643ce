package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Data     DataConfig
	UI       UIConfig
	Theme    ThemeConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path       string
	Migrations string
}

// DataConfig selects where leaderboard entries come from.
type DataConfig struct {
	Source string // "sqlite" or "memory"
	Seed   bool
	Reset  bool // wipe the store back to the demo dataset on start
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DefaultTab string `mapstructure:"default_tab"`
}

// ThemeConfig overrides individual style tokens. Empty values keep the default.
type ThemeConfig struct {
	TableHeader     string `mapstructure:"table_header"`
	TableRow        string `mapstructure:"table_row"`
	HighlightSelf   string `mapstructure:"highlight_self"`
	HighlightFriend string `mapstructure:"highlight_friend"`
	SubduedText     string `mapstructure:"subdued_text"`
}

// Overrides returns the token overrides keyed by theme field name.
func (t ThemeConfig) Overrides() map[string]string {
	return map[string]string{
		"table_header":     t.TableHeader,
		"table_row":        t.TableRow,
		"highlight_self":   t.HighlightSelf,
		"highlight_friend": t.HighlightFriend,
		"subdued_text":     t.SubduedText,
	}
}

// Load reads configuration from file and env. Env var overrides use prefix BIRDBOARD_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "birdboard", "birdboard.db"))
	v.SetDefault("database.migrations", "internal/database/migrations")
	v.SetDefault("data.source", "sqlite")
	v.SetDefault("data.seed", true)
	v.SetDefault("data.reset", false)
	v.SetDefault("ui.default_tab", "")
	for _, key := range []string{"table_header", "table_row", "highlight_self", "highlight_friend", "subdued_text"} {
		v.SetDefault("theme."+key, "")
	}

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BIRDBOARD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "birdboard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BIRDBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Data.Source = strings.ToLower(strings.TrimSpace(c.Data.Source))
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("BIRDBOARD_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "birdboard", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.migrations", cfg.Database.Migrations)
	v.Set("data.source", cfg.Data.Source)
	v.Set("data.seed", cfg.Data.Seed)
	v.Set("data.reset", cfg.Data.Reset)
	v.Set("ui.default_tab", cfg.UI.DefaultTab)
	for key, token := range cfg.Theme.Overrides() {
		v.Set("theme."+key, token)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
