package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/birdboard/internal/database"
)

// MaintenanceService houses destructive store actions.
type MaintenanceService struct {
	DB *sql.DB
}

// Reset wipes all leaderboard entries and restores the demo dataset. The
// schema is kept intact.
func (s *MaintenanceService) Reset(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	if err := database.WithTx(s.DB, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM leaderboard_entries"); err != nil {
			return fmt.Errorf("reset leaderboard_entries: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return database.SeedDefaults(ctx, s.DB)
}
