package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"sigdash/domain/compare"
	"sigdash/domain/core"
	"sigdash/ports"
)

// resultRepository implements ports.ResultRepository
type resultRepository struct {
	db *sqlx.DB
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *sqlx.DB) ports.ResultRepository {
	return &resultRepository{db: db}
}

const insertResultQuery = `INSERT INTO results (
	id, dataset_id, test_name, option_a, option_b, votes_a, votes_b,
	chi_square, chi_p_value, significant_95, significant_99,
	t_statistic, t_p_value, t_df, mean_diff,
	effect_h, magnitude, interpretation, created_at
) VALUES (
	:id, :dataset_id, :test_name, :option_a, :option_b, :votes_a, :votes_b,
	:chi_square, :chi_p_value, :significant_95, :significant_99,
	:t_statistic, :t_p_value, :t_df, :mean_diff,
	:effect_h, :magnitude, :interpretation, :created_at
)`

// SaveAll persists all rows in a single transaction
func (r *resultRepository) SaveAll(ctx context.Context, rows []compare.ResultRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, row := range rows {
		if _, err := tx.NamedExecContext(ctx, insertResultQuery, row); err != nil {
			return fmt.Errorf("failed to insert result for %s: %w", row.TestName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit results: %w", err)
	}
	return nil
}

// ListByDataset retrieves all results for a dataset ordered by test name
func (r *resultRepository) ListByDataset(ctx context.Context, datasetID core.DatasetID) ([]compare.ResultRow, error) {
	query := `SELECT id, dataset_id, test_name, option_a, option_b, votes_a, votes_b,
		chi_square, chi_p_value, significant_95, significant_99,
		t_statistic, t_p_value, t_df, mean_diff,
		effect_h, magnitude, interpretation, created_at
	FROM results WHERE dataset_id = $1 ORDER BY test_name`

	var rows []compare.ResultRow
	if err := r.db.SelectContext(ctx, &rows, query, datasetID); err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return rows, nil
}
