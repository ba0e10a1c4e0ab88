package commands

import (
	"github.com/spf13/cobra"

	"github.com/internacia/dataset/conf"
	"github.com/internacia/dataset/logger"
	"github.com/internacia/dataset/pipeline"
	"github.com/internacia/dataset/sym"
)

// BuildCmd represents the build command
var BuildCmd = &cobra.Command{
	Use:   "build",
	Short: sym.Build + " Build dataset artifacts from the corpus",
	Long: sym.Build + ` build — Build dataset artifacts from the corpus

Loads the countries, intblocks and blocktypes documents, normalizes each
category against its schema, and writes one artifact per (category, format)
into the output directory. Documents that fail to parse are excluded with a
warning; the rest of the build continues.

Examples:
  internacia build                            # All formats, configured directories
  internacia build -o /tmp/out -f jsonl,yaml  # Text formats only, custom output
  internacia build --data-dir ./corpus        # Alternate corpus root`,
	RunE: runBuild,
}

var (
	buildOutputFlag  string
	buildFormatsFlag string
	buildDataFlag    string
)

func init() {
	BuildCmd.Flags().StringVarP(&buildOutputFlag, "output-dir", "o", "", "Output directory for artifacts (default from config)")
	BuildCmd.Flags().StringVarP(&buildFormatsFlag, "formats", "f", "", "Comma-separated formats: jsonl, yaml, parquet, duckdb (default from config)")
	BuildCmd.Flags().StringVar(&buildDataFlag, "data-dir", "", "Corpus root directory (default from config)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := conf.Load()
	if err != nil {
		return err
	}
	if buildDataFlag != "" {
		cfg.DataDir = buildDataFlag
	}
	if buildOutputFlag != "" {
		cfg.OutputDir = buildOutputFlag
	}

	spec := cfg.Formats
	if buildFormatsFlag != "" {
		spec = buildFormatsFlag
	}

	// Validate the format list before anything touches the filesystem.
	formats, err := pipeline.ParseFormats(spec)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	var em pipeline.Emitter
	if jsonOutput {
		em = pipeline.NewJSONEmitter()
	} else {
		em = pipeline.NewCLIEmitter()
	}

	logger.Infow("Starting dataset build",
		"data_dir", cfg.DataDir,
		"output_dir", cfg.OutputDir,
		"formats", formats,
	)

	result, err := pipeline.Build(cmd.Context(), cfg, formats, em)
	if err != nil {
		return err
	}

	logger.Infow("Dataset build complete",
		"artifacts", len(result.Artifacts),
		"warnings", len(result.Warnings),
	)
	return nil
}
