// Package pipeline orchestrates the dataset build: load the corpus,
// normalize each category, fan out to the requested artifact formats, and
// materialize the relational store. Categories and formats are processed
// sequentially; each (category, format) artifact is independent and atomic.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/internacia/dataset/conf"
	"github.com/internacia/dataset/corpus"
	"github.com/internacia/dataset/doc"
	"github.com/internacia/dataset/duck"
	"github.com/internacia/dataset/errors"
	"github.com/internacia/dataset/export"
	"github.com/internacia/dataset/logger"
	"github.com/internacia/dataset/normalize"
	"github.com/internacia/dataset/schema"
)

// Format is an artifact format token.
type Format string

const (
	FormatJSONL   Format = "jsonl"
	FormatYAML    Format = "yaml"
	FormatParquet Format = "parquet"
	FormatDuckDB  Format = "duckdb"
)

// AllFormats lists the supported formats in output order.
var AllFormats = []Format{FormatJSONL, FormatYAML, FormatParquet, FormatDuckDB}

// ParseFormats validates a comma-separated format list. An unknown token
// is a usage error; nothing is built in that case.
func ParseFormats(spec string) ([]Format, error) {
	valid := make(map[Format]bool, len(AllFormats))
	for _, f := range AllFormats {
		valid[f] = true
	}

	seen := make(map[Format]bool)
	var formats []Format
	for _, token := range strings.Split(spec, ",") {
		f := Format(strings.ToLower(strings.TrimSpace(token)))
		if !valid[f] {
			return nil, errors.NewUsageError("invalid format: %q (valid: jsonl, yaml, parquet, duckdb)", token)
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	if len(formats) == 0 {
		return nil, errors.NewUsageError("no formats requested")
	}
	return formats, nil
}

// Result summarizes one build run.
type Result struct {
	// Counts maps category to the number of loaded+normalized records.
	Counts map[string]int
	// ParseFailures maps category to the number of excluded documents.
	ParseFailures map[string]int
	// Artifacts lists every file written, in write order.
	Artifacts []string
	// Warnings lists recovered problems (schema fallbacks, duplicates).
	Warnings []string
}

// batchSet is the loaded and normalized corpus, one batch per category.
type batchSet struct {
	table    *schema.Table
	records  []*doc.Map
	failures int
}

// Build runs the pipeline: validate inputs, load and normalize the three
// categories, export the requested formats, and materialize the
// relational store if requested.
//
// All inputs are validated before the first write, so a missing corpus
// directory aborts without touching the output. The context is checked
// before each artifact write; cancellation stops the run between files,
// never mid-file.
func Build(ctx context.Context, cfg *conf.Config, formats []Format, em Emitter) (*Result, error) {
	if em == nil {
		em = NopEmitter{}
	}

	// Fail on absent inputs before any output exists.
	for _, path := range []string{cfg.CountriesDir(), cfg.IntblocksDir(), cfg.BlocktypesFile()} {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.NewMissingInputError("required input not found: %s", path)
			}
			return nil, errors.Wrapf(err, "failed to stat %s", path)
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create output directory %s", cfg.OutputDir)
	}

	result := &Result{
		Counts:        make(map[string]int),
		ParseFailures: make(map[string]int),
	}

	var batches []batchSet
	for _, tbl := range schema.Tables() {
		em.EmitStage("load", tbl.Name)

		var loaded *corpus.Batch
		var err error
		switch tbl.Name {
		case schema.Blocktypes:
			loaded, err = corpus.LoadFile(cfg.BlocktypesFile())
		case schema.Countries:
			loaded, err = corpus.LoadDir(cfg.CountriesDir())
		default:
			loaded, err = corpus.LoadDir(cfg.IntblocksDir())
		}
		if err != nil {
			return nil, err
		}
		for _, f := range loaded.Failures {
			em.EmitWarning(fmt.Sprintf("excluded document %s: %v", f.Path, f.Err))
		}

		em.EmitStage("normalize", tbl.Name)
		records := normalize.Batch(loaded.Records, tbl)

		for _, id := range normalize.Duplicates(records, tbl) {
			msg := fmt.Sprintf("duplicate %s identifier %q", tbl.Name, id)
			logger.Warnw("Duplicate identifier in batch", "category", tbl.Name, "id", id)
			em.EmitWarning(msg)
			result.Warnings = append(result.Warnings, msg)
		}

		batches = append(batches, batchSet{table: tbl, records: records, failures: len(loaded.Failures)})
		result.Counts[tbl.Name] = len(records)
		result.ParseFailures[tbl.Name] = len(loaded.Failures)
	}

	for _, format := range formats {
		if format == FormatDuckDB {
			continue // materialized last
		}
		for _, batch := range batches {
			if err := ctx.Err(); err != nil {
				return result, errors.Wrap(err, "build interrupted")
			}
			path, warn, err := exportOne(batch, format, cfg.OutputDir)
			if err != nil {
				return result, errors.Wrapf(err, "failed to export %s as %s", batch.table.Name, format)
			}
			if warn != "" {
				em.EmitWarning(warn)
				result.Warnings = append(result.Warnings, warn)
			}
			em.EmitArtifact(path)
			result.Artifacts = append(result.Artifacts, path)
		}
	}

	if hasFormat(formats, FormatDuckDB) {
		if err := ctx.Err(); err != nil {
			return result, errors.Wrap(err, "build interrupted")
		}
		em.EmitStage("materialize", duck.DatabaseFile)

		duckBatches := make([]duck.Batch, len(batches))
		for i, b := range batches {
			duckBatches[i] = duck.Batch{Table: b.table, Records: b.records}
		}
		path, fellBack, err := duck.Materialize(cfg.OutputDir, duckBatches, logger.Logger)
		if err != nil {
			return result, errors.Wrap(err, "materialization failed")
		}
		if fellBack {
			warn := "relational load used best-effort schema conversion"
			em.EmitWarning(warn)
			result.Warnings = append(result.Warnings, warn)
		}
		em.EmitArtifact(path)
		result.Artifacts = append(result.Artifacts, path)
	}

	summary := map[string]interface{}{"output_dir": cfg.OutputDir}
	for category, count := range result.Counts {
		summary[category] = count
	}
	em.EmitComplete(summary)
	return result, nil
}

func exportOne(batch batchSet, format Format, outDir string) (path, warning string, err error) {
	category := batch.table.Name
	switch format {
	case FormatJSONL:
		path = export.JSONLPath(outDir, category)
		err = export.JSONL(batch.records, path)
	case FormatYAML:
		path = export.YAMLPath(outDir, category)
		err = export.YAML(batch.records, path)
	case FormatParquet:
		path = export.ParquetPath(outDir, category)
		var fellBack bool
		fellBack, err = export.Parquet(batch.records, batch.table, path)
		if fellBack {
			warning = fmt.Sprintf("%s parquet used best-effort schema conversion", category)
		}
	default:
		err = errors.Newf("unhandled format %s", format)
	}
	return path, warning, err
}

func hasFormat(formats []Format, want Format) bool {
	for _, f := range formats {
		if f == want {
			return true
		}
	}
	return false
}

// CorpusInfo describes the corpus without touching it.
type CorpusInfo struct {
	CountriesFound  bool
	CountriesFiles  int
	IntblocksFound  bool
	IntblocksFiles  int
	IntblockGroups  []string
	BlocktypesFound bool
	BlocktypesCount int
}

// Info reports corpus size per category. Read-only: no artifact is
// produced and missing inputs are reported, not fatal.
func Info(cfg *conf.Config) (*CorpusInfo, error) {
	info := &CorpusInfo{}

	if _, err := os.Stat(cfg.CountriesDir()); err == nil {
		info.CountriesFound = true
		n, err := corpus.CountFiles(cfg.CountriesDir())
		if err != nil {
			return nil, err
		}
		info.CountriesFiles = n
	}

	if _, err := os.Stat(cfg.IntblocksDir()); err == nil {
		info.IntblocksFound = true
		n, err := corpus.CountFiles(cfg.IntblocksDir())
		if err != nil {
			return nil, err
		}
		info.IntblocksFiles = n

		groups, err := corpus.Subdirs(cfg.IntblocksDir())
		if err != nil {
			return nil, err
		}
		info.IntblockGroups = groups
	}

	if _, err := os.Stat(cfg.BlocktypesFile()); err == nil {
		info.BlocktypesFound = true
		batch, err := corpus.LoadFile(cfg.BlocktypesFile())
		if err != nil {
			return nil, err
		}
		info.BlocktypesCount = len(batch.Records)
	}

	return info, nil
}
