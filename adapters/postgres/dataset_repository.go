package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"sigdash/domain/compare"
	"sigdash/domain/core"
	"sigdash/ports"
)

// datasetRepository implements ports.DatasetRepository. Only metadata is
// persisted; comparisons live in the source files and the results table.
type datasetRepository struct {
	db *sqlx.DB
}

// NewDatasetRepository creates a new dataset repository
func NewDatasetRepository(db *sqlx.DB) ports.DatasetRepository {
	return &datasetRepository{db: db}
}

// Create inserts a new dataset into the database
func (r *datasetRepository) Create(ctx context.Context, ds *compare.Dataset) error {
	query := `INSERT INTO datasets (id, name, source_file, comparison_count, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		ds.ID, ds.Name, ds.SourceFile, len(ds.Comparisons), ds.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create dataset: %w", err)
	}
	return nil
}

// GetByID retrieves dataset metadata by ID
func (r *datasetRepository) GetByID(ctx context.Context, id core.DatasetID) (*compare.Dataset, error) {
	query := `SELECT id, name, source_file, created_at FROM datasets WHERE id = $1`

	var ds compare.Dataset
	err := r.db.QueryRowContext(ctx, query, id).Scan(&ds.ID, &ds.Name, &ds.SourceFile, &ds.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("dataset not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get dataset: %w", err)
	}
	return &ds, nil
}

// List retrieves dataset metadata ordered by creation time, newest first
func (r *datasetRepository) List(ctx context.Context, limit, offset int) ([]*compare.Dataset, error) {
	query := `SELECT id, name, source_file, created_at FROM datasets
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryxContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}
	defer rows.Close()

	var datasets []*compare.Dataset
	for rows.Next() {
		var ds compare.Dataset
		if err := rows.Scan(&ds.ID, &ds.Name, &ds.SourceFile, &ds.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan dataset: %w", err)
		}
		datasets = append(datasets, &ds)
	}
	return datasets, rows.Err()
}

// Delete removes a dataset and cascades to its results
func (r *datasetRepository) Delete(ctx context.Context, id core.DatasetID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM datasets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	return nil
}
