// Package ingest loads preference-test datasets from CSV and Excel files.
//
// The votes file carries one comparison per row:
//
//	test,option_a,option_b,votes_a,votes_b
//
// The optional ratings file carries one respondent score per row:
//
//	test,respondent,condition,score
//
// where condition is "a" or "b". Rows that fail to parse are skipped with a
// warning rather than aborting the load.
package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"sigdash/domain/compare"
	"sigdash/domain/core"
	"sigdash/internal"
	"sigdash/internal/errors"
)

// Reader loads a dataset from a votes file and an optional ratings file.
type Reader struct {
	votesPath   string
	ratingsPath string
	logger      *internal.Logger
}

// NewReader creates a Reader. ratingsPath may be empty.
func NewReader(votesPath, ratingsPath string) *Reader {
	return &Reader{
		votesPath:   votesPath,
		ratingsPath: ratingsPath,
		logger:      internal.DefaultLogger,
	}
}

// ReadDataset loads and merges the configured files into a Dataset.
func (r *Reader) ReadDataset(name string) (*compare.Dataset, error) {
	voteRows, err := readRows(r.votesPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read votes file %s", r.votesPath)
	}

	comparisons, index, err := r.parseVotes(voteRows)
	if err != nil {
		return nil, err
	}

	if r.ratingsPath != "" {
		ratingRows, err := readRows(r.ratingsPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read ratings file %s", r.ratingsPath)
		}
		r.mergeRatings(ratingRows, comparisons, index)
	}

	return &compare.Dataset{
		ID:          core.DatasetID(core.NewID()),
		Name:        name,
		SourceFile:  filepath.Base(r.votesPath),
		Comparisons: comparisons,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// parseVotes turns raw rows into comparisons, returning an index from test
// name to slice position for the ratings merge.
func (r *Reader) parseVotes(rows [][]string) ([]compare.Comparison, map[string]int, error) {
	if len(rows) < 2 {
		return nil, nil, errors.DatasetInvalid("votes file needs a header row and at least one data row")
	}

	comparisons := make([]compare.Comparison, 0, len(rows)-1)
	index := make(map[string]int)

	for i, row := range rows[1:] {
		if len(row) < 5 {
			r.logger.Warn("[ingest] votes row %d: expected 5 columns, got %d; skipping", i+2, len(row))
			continue
		}

		votesA, errA := strconv.Atoi(strings.TrimSpace(row[3]))
		votesB, errB := strconv.Atoi(strings.TrimSpace(row[4]))
		if errA != nil || errB != nil || votesA < 0 || votesB < 0 {
			r.logger.Warn("[ingest] votes row %d: invalid vote counts %q/%q; skipping", i+2, row[3], row[4])
			continue
		}

		name := strings.TrimSpace(row[0])
		index[name] = len(comparisons)
		comparisons = append(comparisons, compare.Comparison{
			ID:      core.ComparisonID(core.NewID()),
			Name:    name,
			OptionA: strings.TrimSpace(row[1]),
			OptionB: strings.TrimSpace(row[2]),
			VotesA:  votesA,
			VotesB:  votesB,
		})
	}

	if len(comparisons) == 0 {
		return nil, nil, errors.DatasetInvalid("votes file contained no valid rows")
	}

	return comparisons, index, nil
}

// mergeRatings appends per-respondent scores to the comparisons they belong to.
func (r *Reader) mergeRatings(rows [][]string, comparisons []compare.Comparison, index map[string]int) {
	if len(rows) < 2 {
		return
	}

	for i, row := range rows[1:] {
		if len(row) < 4 {
			r.logger.Warn("[ingest] ratings row %d: expected 4 columns, got %d; skipping", i+2, len(row))
			continue
		}

		pos, ok := index[strings.TrimSpace(row[0])]
		if !ok {
			r.logger.Warn("[ingest] ratings row %d: unknown test %q; skipping", i+2, row[0])
			continue
		}

		score, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil {
			r.logger.Warn("[ingest] ratings row %d: invalid score %q; skipping", i+2, row[3])
			continue
		}

		switch strings.ToLower(strings.TrimSpace(row[2])) {
		case "a":
			comparisons[pos].ScoresA = append(comparisons[pos].ScoresA, score)
		case "b":
			comparisons[pos].ScoresB = append(comparisons[pos].ScoresB, score)
		default:
			r.logger.Warn("[ingest] ratings row %d: unknown condition %q; skipping", i+2, row[2])
		}
	}
}

// readRows reads a CSV or XLSX file into raw string rows.
func readRows(path string) ([][]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}

	if strings.ToLower(filepath.Ext(path)) == ".xlsx" {
		return readExcelRows(path)
	}
	return readCSVRows(path)
}

func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows are handled upstream

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return rows, nil
}

func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	// Always read the first sheet.
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}
