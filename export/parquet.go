package export

import (
	"encoding/json"
	"io"

	"github.com/go-viper/mapstructure/v2"
	"github.com/parquet-go/parquet-go"
	pqzstd "github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/internacia/dataset/doc"
	"github.com/internacia/dataset/errors"
	"github.com/internacia/dataset/logger"
	"github.com/internacia/dataset/schema"
)

// Parquet writes the batch as a columnar artifact with the category's
// declared schema. The batch is converted strictly: a declared column that
// is absent materializes as null, and a mis-typed value is a conversion
// error rather than a silent widening. On conversion failure the export
// falls back to a best-effort weakly-typed decode into the same columns
// and reports the fallback; it never silently drops the artifact.
//
// Returns whether the fallback path was taken.
func Parquet(records []*doc.Map, table *schema.Table, path string) (bool, error) {
	switch table.Name {
	case schema.Countries:
		return parquetFile[schema.Country](records, path, table.Name)
	case schema.Intblocks:
		return parquetFile[schema.Block](records, path, table.Name)
	case schema.Blocktypes:
		return parquetFile[schema.BlockType](records, path, table.Name)
	default:
		return false, errors.Newf("no row type for category %s", table.Name)
	}
}

func parquetFile[T any](records []*doc.Map, path, category string) (bool, error) {
	fellBack := false
	rows, err := Rows[T](records)
	if err != nil {
		logger.Warnw("Schema conversion failed, writing best-effort parquet",
			"category", category,
			"path", path,
			"error", errors.Wrap(errors.ErrSchemaConversion, err.Error()))
		rows, err = rowsLenient[T](records)
		if err != nil {
			return false, errors.Wrap(
				errors.Wrap(errors.ErrSchemaConversion, err.Error()),
				"fallback parquet conversion failed")
		}
		fellBack = true
	}

	err = writeAtomic(path, func(w io.Writer) error {
		return writeParquet(rows, w)
	})
	return fellBack, err
}

// Rows strictly converts a normalized batch into the category's typed rows.
// The JSON round-trip enforces the declared types: a boolean in a text
// column or a string in a numeric column fails the conversion.
func Rows[T any](records []*doc.Map) ([]T, error) {
	rows := make([]T, len(records))
	for i, record := range records {
		raw, err := record.MarshalJSON()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode record %d", i)
		}
		if err := json.Unmarshal(raw, &rows[i]); err != nil {
			return nil, errors.Wrapf(err, "record %d does not fit the declared schema", i)
		}
	}
	return rows, nil
}

// rowsLenient is the best-effort fallback: a weakly-typed decode into the
// same row structs, so the artifact still carries the declared columns.
func rowsLenient[T any](records []*doc.Map) ([]T, error) {
	rows := make([]T, len(records))
	for i, record := range records {
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName:          "json",
			WeaklyTypedInput: true,
			Result:           &rows[i],
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to build lenient decoder")
		}
		if err := dec.Decode(record.Plain()); err != nil {
			return nil, errors.Wrapf(err, "record %d failed lenient decode", i)
		}
	}
	return rows, nil
}

func writeParquet[T any](rows []T, w io.Writer) error {
	pw := parquet.NewGenericWriter[T](w, parquet.Compression(&pqzstd.Codec{
		Level: pqzstd.SpeedBestCompression,
	}))
	if len(rows) > 0 {
		if _, err := pw.Write(rows); err != nil {
			pw.Close()
			return errors.Wrap(err, "parquet write failed")
		}
	}
	if err := pw.Close(); err != nil {
		return errors.Wrap(err, "parquet close failed")
	}
	return nil
}
