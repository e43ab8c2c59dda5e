package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateAuxiliaryIndexes creates PostgreSQL indexes that Ent cannot express.
func CreateAuxiliaryIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one non-archived batch per protocol.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS criteriabatch_protocol_id_active
		ON criteria_batches (protocol_id)
		WHERE NOT is_archived`)
	if err != nil {
		return fmt.Errorf("failed to create active-batch unique index: %w", err)
	}

	// GIN index for criterion text search in the review surface.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_criteria_text_gin
		ON criteria USING gin(to_tsvector('english', text))`)
	if err != nil {
		return fmt.Errorf("failed to create criterion text GIN index: %w", err)
	}

	return nil
}
