// Package corpus discovers and parses the document tree.
//
// Documents are one-record-per-file YAML mappings grouped by category. The
// loader never mutates inputs; a malformed document is reported and skipped
// so one bad file cannot sink a whole batch.
package corpus

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/internacia/dataset/doc"
	"github.com/internacia/dataset/errors"
	"github.com/internacia/dataset/logger"
)

// Failure records one document that could not be parsed.
type Failure struct {
	Path string
	Err  error
}

// Batch is the ordered result of loading one category.
type Batch struct {
	Records  []*doc.Map
	Failures []Failure
}

// LoadDir recursively loads all *.yaml documents under root. Enumeration
// order is lexical path order for reproducibility. Documents with an
// empty/null body are skipped; parse failures are logged with their path,
// recorded on the batch, and excluded.
func LoadDir(root string) (*Batch, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewMissingInputError("corpus directory not found: %s", root)
		}
		return nil, errors.Wrapf(err, "failed to stat %s", root)
	}
	if !info.IsDir() {
		return nil, errors.NewMissingInputError("corpus path is not a directory: %s", root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".yaml") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to enumerate %s", root)
	}
	sort.Strings(paths)

	batch := &Batch{}
	for _, path := range paths {
		record, err := loadDocument(path)
		if err != nil {
			logger.Warnw("Skipping malformed document", "path", path, "error", err)
			batch.Failures = append(batch.Failures, Failure{Path: path, Err: err})
			continue
		}
		if record == nil {
			continue // empty body
		}
		batch.Records = append(batch.Records, record)
	}
	return batch, nil
}

// LoadFile loads a single YAML file whose body is a list of records
// (the blocktypes corpus). A null body yields an empty batch.
func LoadFile(path string) (*Batch, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewMissingInputError("corpus file not found: %s", path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	body, err := parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	if body == nil {
		return &Batch{}, nil
	}

	list, ok := body.([]interface{})
	if !ok {
		return nil, errors.Newf("%s: expected a list of records", path)
	}

	batch := &Batch{}
	for i, elem := range list {
		record, ok := elem.(*doc.Map)
		if !ok {
			logger.Warnw("Skipping non-mapping record", "path", path, "index", i)
			batch.Failures = append(batch.Failures, Failure{
				Path: path,
				Err:  errors.Newf("record %d is not a mapping", i),
			})
			continue
		}
		batch.Records = append(batch.Records, record)
	}
	return batch, nil
}

// loadDocument parses one document file into an ordered record. Returns
// (nil, nil) for an empty/null body.
func loadDocument(path string) (*doc.Map, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}

	body, err := parse(raw)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	record, ok := body.(*doc.Map)
	if !ok {
		return nil, errors.Wrap(errors.ErrDocumentParse, "document body is not a mapping")
	}
	return record, nil
}

func parse(raw []byte) (interface{}, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, errors.Wrap(errors.Wrap(errors.ErrDocumentParse, err.Error()), "yaml parse failed")
	}
	if node.Kind == 0 {
		return nil, nil // empty file
	}
	body, err := doc.Decode(&node)
	if err != nil {
		return nil, errors.Wrap(errors.Wrap(errors.ErrDocumentParse, err.Error()), "decode failed")
	}
	return body, nil
}

// CountFiles reports how many *.yaml documents exist under root, without
// parsing them. Used by the read-only info command.
func CountFiles(root string) (int, error) {
	count := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".yaml") {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to enumerate %s", root)
	}
	return count, nil
}

// Subdirs lists the immediate subdirectories of root in lexical order.
func Subdirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", root)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
