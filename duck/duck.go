// Package duck materializes normalized batches into a DuckDB database.
//
// The database is always built fresh: tables are loaded into a temp file
// which is renamed over any prior database, so a failed run never leaves a
// half-loaded store at the published path.
package duck

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/marcboeker/go-duckdb/v2"
	"go.uber.org/zap"

	"github.com/internacia/dataset/doc"
	"github.com/internacia/dataset/errors"
	"github.com/internacia/dataset/export"
	"github.com/internacia/dataset/schema"
	"github.com/internacia/dataset/sym"
)

// DatabaseFile is the published database filename.
const DatabaseFile = "internacia.duckdb"

// Open opens a DuckDB database at the specified path.
// If logger is provided, logs database operations; otherwise operates silently.
func Open(path string, logger *zap.SugaredLogger) (*sql.DB, error) {
	if logger != nil {
		logger.Debugw("Opening database", "path", path, "symbol", sym.DB)
	}
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "failed to connect to database at %s", path)
	}
	return db, nil
}

// Batch pairs a category table with its normalized records.
type Batch struct {
	Table   *schema.Table
	Records []*doc.Map
}

// Materialize builds the relational store under outDir from the normalized
// batches. Each category is staged through the exporter's columnar path
// (same schema as the parquet artifact) and loaded inside a transaction,
// so a load failure never leaves that category's table partially
// populated. Row counts are verified against batch sizes.
//
// Returns the published database path and whether any category took the
// best-effort schema fallback.
func Materialize(outDir string, batches []Batch, logger *zap.SugaredLogger) (string, bool, error) {
	finalPath := filepath.Join(outDir, DatabaseFile)
	tmpPath := finalPath + ".building"

	// A stale build from an interrupted run is dead weight.
	os.Remove(tmpPath)
	os.Remove(tmpPath + ".wal")

	db, err := Open(tmpPath, logger)
	if err != nil {
		return "", false, err
	}

	fellBack := false
	err = func() error {
		defer db.Close()
		for _, batch := range batches {
			fb, err := loadTable(db, outDir, batch, logger)
			if err != nil {
				return err
			}
			fellBack = fellBack || fb
		}
		return nil
	}()
	if err != nil {
		os.Remove(tmpPath)
		return "", false, err
	}

	// Replace any prior database atomically.
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", false, errors.Wrapf(err, "failed to publish database at %s", finalPath)
	}
	return finalPath, fellBack, nil
}

func loadTable(db *sql.DB, outDir string, batch Batch, logger *zap.SugaredLogger) (bool, error) {
	name := batch.Table.Name

	// Stage the batch as parquet with the declared column layout; the
	// relational table shares the columnar schema by construction.
	stage, err := os.CreateTemp(outDir, "."+name+"-stage-*.parquet")
	if err != nil {
		return false, errors.Wrap(err, "failed to create staging file")
	}
	stagePath := stage.Name()
	stage.Close()
	defer os.Remove(stagePath)

	fellBack, err := export.Parquet(batch.Records, batch.Table, stagePath)
	if err != nil {
		return false, errors.Wrapf(err, "failed to stage %s", name)
	}

	tx, err := db.Begin()
	if err != nil {
		return false, errors.Wrap(err, "failed to begin transaction")
	}

	create := fmt.Sprintf("CREATE TABLE %s AS SELECT * FROM read_parquet('%s')",
		name, strings.ReplaceAll(stagePath, "'", "''"))
	if _, err := tx.Exec(create); err != nil {
		tx.Rollback()
		return false, errors.Wrapf(err, "failed to create table %s", name)
	}

	var count int
	if err := tx.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", name)).Scan(&count); err != nil {
		tx.Rollback()
		return false, errors.Wrapf(err, "failed to count rows of %s", name)
	}
	if count != len(batch.Records) {
		tx.Rollback()
		return false, errors.Newf("table %s has %d rows, expected %d", name, count, len(batch.Records))
	}

	if err := tx.Commit(); err != nil {
		return false, errors.Wrapf(err, "failed to commit table %s", name)
	}

	if logger != nil {
		logger.Infow("Materialized table",
			"table", name,
			"rows", count,
			"symbol", sym.DB,
		)
	}
	return fellBack, nil
}
