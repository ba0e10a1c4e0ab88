// Package export serializes normalized batches into the dataset artifact
// formats: zstd-compressed JSONL, zstd-compressed YAML, and Parquet.
//
// Every artifact write is atomic: content goes to a temp file in the
// target directory which is then renamed over the destination, so an
// interrupted run never leaves a truncated artifact behind. Existing files
// are overwritten, never merged.
package export

import (
	"io"
	"os"
	"path/filepath"

	"github.com/internacia/dataset/errors"
)

// ZstExt is the filename extension for zstd-compressed artifacts.
const ZstExt = ".zst"

// JSONLPath returns the line-delimited artifact path for a category.
func JSONLPath(outDir, category string) string {
	return filepath.Join(outDir, category+".jsonl"+ZstExt)
}

// YAMLPath returns the bulk-document artifact path for a category.
func YAMLPath(outDir, category string) string {
	return filepath.Join(outDir, category+".yaml"+ZstExt)
}

// ParquetPath returns the columnar artifact path for a category.
func ParquetPath(outDir, category string) string {
	return filepath.Join(outDir, category+".parquet")
}

// writeAtomic writes an artifact via a temp file + rename so readers never
// observe a partially written file.
func writeAtomic(path string, write func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file in %s", dir)
	}
	tmpPath := tmp.Name()

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "failed to flush %s", tmpPath)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "failed to move artifact into place at %s", path)
	}
	return nil
}
