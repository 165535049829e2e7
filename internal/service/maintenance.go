package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/swipedeck/internal/database"
)

// MaintenanceService houses destructive actions surfaced through the CLI.
type MaintenanceService struct {
	DB *sql.DB
}

// Reset wipes the journal. It keeps the schema intact.
func (s *MaintenanceService) Reset(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	if err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM decisions"); err != nil {
			return fmt.Errorf("reset table decisions: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return nil
}
