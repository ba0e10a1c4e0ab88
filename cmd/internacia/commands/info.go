package commands

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/internacia/dataset/conf"
	"github.com/internacia/dataset/pipeline"
	"github.com/internacia/dataset/sym"
)

// InfoCmd represents the info command
var InfoCmd = &cobra.Command{
	Use:   "info",
	Short: sym.Stats + " Show corpus statistics",
	Long: sym.Stats + ` info — Show corpus statistics

Reports document counts per category without building anything. Missing
corpus directories are reported, not fatal.`,
	RunE: runInfo,
}

var infoDataFlag string

func init() {
	InfoCmd.Flags().StringVar(&infoDataFlag, "data-dir", "", "Corpus root directory (default from config)")
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := conf.Load()
	if err != nil {
		return err
	}
	if infoDataFlag != "" {
		cfg.DataDir = infoDataFlag
	}

	info, err := pipeline.Info(cfg)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	pterm.Printf("%s Corpus at %s\n\n", sym.Stats, pterm.LightCyan(cfg.DataDir))

	printCategory("countries", info.CountriesFound, info.CountriesFiles, "documents")
	printCategory("intblocks", info.IntblocksFound, info.IntblocksFiles, "documents")
	if info.IntblocksFound && len(info.IntblockGroups) > 0 {
		pterm.Printf("    groups: %s\n", strings.Join(info.IntblockGroups, ", "))
	}
	printCategory("blocktypes", info.BlocktypesFound, info.BlocktypesCount, "entries")

	return nil
}

func printCategory(name string, found bool, count int, unit string) {
	if !found {
		pterm.Printf("  %s %s: not found\n", pterm.Red("✗"), name)
		return
	}
	pterm.Printf("  %s %s: %d %s\n", sym.OK, name, count, unit)
}
