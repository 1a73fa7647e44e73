// Package ports defines the persistence interfaces the adapters implement.
package ports

import (
	"context"

	"sigdash/domain/compare"
	"sigdash/domain/core"
)

// DatasetRepository persists dataset metadata.
type DatasetRepository interface {
	Create(ctx context.Context, ds *compare.Dataset) error
	GetByID(ctx context.Context, id core.DatasetID) (*compare.Dataset, error)
	List(ctx context.Context, limit, offset int) ([]*compare.Dataset, error)
	Delete(ctx context.Context, id core.DatasetID) error
}

// ResultRepository persists flattened analysis rows.
type ResultRepository interface {
	SaveAll(ctx context.Context, rows []compare.ResultRow) error
	ListByDataset(ctx context.Context, datasetID core.DatasetID) ([]compare.ResultRow, error)
}
