package migration

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// statements run in order; each is idempotent so Run can be called on
// every startup.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS datasets (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		source_file TEXT NOT NULL DEFAULT '',
		comparison_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS results (
		id TEXT PRIMARY KEY,
		dataset_id TEXT NOT NULL REFERENCES datasets(id) ON DELETE CASCADE,
		test_name TEXT NOT NULL,
		option_a TEXT NOT NULL DEFAULT '',
		option_b TEXT NOT NULL DEFAULT '',
		votes_a INTEGER NOT NULL DEFAULT 0,
		votes_b INTEGER NOT NULL DEFAULT 0,
		chi_square DOUBLE PRECISION NOT NULL DEFAULT 0,
		chi_p_value DOUBLE PRECISION NOT NULL DEFAULT 1,
		significant_95 BOOLEAN NOT NULL DEFAULT FALSE,
		significant_99 BOOLEAN NOT NULL DEFAULT FALSE,
		t_statistic DOUBLE PRECISION NOT NULL DEFAULT 0,
		t_p_value DOUBLE PRECISION NOT NULL DEFAULT 1,
		t_df INTEGER NOT NULL DEFAULT 0,
		mean_diff DOUBLE PRECISION NOT NULL DEFAULT 0,
		effect_h DOUBLE PRECISION NOT NULL DEFAULT 0,
		magnitude TEXT NOT NULL DEFAULT '',
		interpretation TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_results_dataset_id ON results(dataset_id)`,
}

// Run applies all schema statements in order.
func Run(db *sqlx.DB) error {
	for i, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration statement %d failed: %w", i+1, err)
		}
	}
	return nil
}
