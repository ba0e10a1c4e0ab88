package export

import (
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/internacia/dataset/doc"
	"github.com/internacia/dataset/errors"
)

// compressionLevel is fixed at best compression: artifacts are built once
// per run and published, so output size beats encode speed.
const compressionLevel = zstd.SpeedBestCompression

// JSONL writes the batch as zstd-compressed line-delimited JSON. Each
// record is one self-describing line with field order preserved.
func JSONL(records []*doc.Map, path string) error {
	return writeAtomic(path, func(w io.Writer) error {
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(compressionLevel))
		if err != nil {
			return errors.Wrap(err, "failed to create zstd writer")
		}
		for i, record := range records {
			line, err := record.MarshalJSON()
			if err != nil {
				enc.Close()
				return errors.Wrapf(err, "failed to encode record %d", i)
			}
			if _, err := enc.Write(append(line, '\n')); err != nil {
				enc.Close()
				return errors.Wrap(err, "compressed write failed")
			}
		}
		return enc.Close()
	})
}
