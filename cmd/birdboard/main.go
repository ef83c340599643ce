package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/birdboard/internal/config"
	"github.com/jask/birdboard/internal/database"
	"github.com/jask/birdboard/internal/database/repository"
	"github.com/jask/birdboard/internal/leaderboard"
	"github.com/jask/birdboard/internal/prefs"
	"github.com/jask/birdboard/internal/screen"
	"github.com/jask/birdboard/internal/service"
	"github.com/jask/birdboard/internal/theme"
	"github.com/jask/birdboard/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var client leaderboard.Client
	switch cfg.Data.Source {
	case "memory":
		client = leaderboard.NewInMemoryClient(leaderboard.DemoData())
	case "sqlite", "":
		db, err := openStore(ctx, cfg)
		if err != nil {
			log.Fatalf("store: %v", err)
		}
		defer db.Close()
		client = &service.StoreClient{Entries: repository.NewEntryRepo(db)}
	default:
		log.Fatalf("config: unknown data.source %q", cfg.Data.Source)
	}

	th := theme.Default().WithOverrides(cfg.Theme.Overrides())
	scr := screen.NewLeaderboardScreen(client, th)
	restoreTab(scr, cfg)

	app := tui.New(ctx, scr)
	final, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	if err != nil {
		fmt.Printf("error: %v\n", err)
	}
	if a, ok := final.(*tui.App); ok && a.ActiveLabel() != "" {
		if err := prefs.SaveState(prefs.State{ActiveTab: a.ActiveLabel()}); err != nil {
			log.Printf("warn: could not save tab selection: %v", err)
		}
	}
}

func openStore(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path, cfg.Database.Migrations); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	switch {
	case cfg.Data.Reset:
		if err := (&service.MaintenanceService{DB: db}).Reset(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("reset: %w", err)
		}
	case cfg.Data.Seed:
		if err := database.SeedDefaults(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("seed defaults: %w", err)
		}
	}
	return db, nil
}

// restoreTab applies ui.default_tab, else the tab remembered from the last run.
func restoreTab(scr *screen.LeaderboardScreen, cfg config.Config) {
	label := strings.TrimSpace(cfg.UI.DefaultTab)
	if label == "" {
		state, err := prefs.LoadState()
		if err != nil {
			log.Printf("warn: ignoring saved ui state: %v", err)
		}
		label = state.ActiveTab
	}
	if label == "" {
		return
	}
	if !selectTab(scr, label) {
		log.Printf("warn: no tab named %q, starting on %s", label, leaderboard.Global.Label())
	}
}

// selectTab accepts a tab label or a category key such as "personal_best".
func selectTab(scr *screen.LeaderboardScreen, name string) bool {
	if scr.Tabs().SetActiveLabel(name) {
		return true
	}
	if c, ok := leaderboard.ParseCategory(name); ok {
		return scr.Tabs().SetActiveLabel(c.Label())
	}
	return false
}
