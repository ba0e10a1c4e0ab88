package export

import (
	"io"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/internacia/dataset/doc"
	"github.com/internacia/dataset/errors"
)

// YAML writes the whole batch as one zstd-compressed YAML document. Field
// order follows the source documents so output stays diffable across runs.
func YAML(records []*doc.Map, path string) error {
	return writeAtomic(path, func(w io.Writer) error {
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(compressionLevel))
		if err != nil {
			return errors.Wrap(err, "failed to create zstd writer")
		}
		ye := yaml.NewEncoder(zw)
		ye.SetIndent(2)
		if err := ye.Encode(records); err != nil {
			ye.Close()
			zw.Close()
			return errors.Wrap(err, "yaml encode failed")
		}
		if err := ye.Close(); err != nil {
			zw.Close()
			return errors.Wrap(err, "yaml close failed")
		}
		return zw.Close()
	})
}
