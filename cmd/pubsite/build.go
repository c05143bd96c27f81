package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqlab/pubsite/internal/site"
)

var (
	buildBib   string
	buildLinks string
	buildOut   string
)

func init() {
	buildCmd.Flags().StringVar(&buildBib, "bib", "", "Bibliography file (default: config or data/publications.bib)")
	buildCmd.Flags().StringVar(&buildLinks, "links", "", "Author link table (default: config or data/author_links.yml)")
	buildCmd.Flags().StringVar(&buildOut, "out", "", "Output JSON file (default: config or data/publications.json)")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the publications JSON from the bibliography",
	Long: `Build the publications JSON document from the BibTeX bibliography.

Records are sorted newest-first (year, then title, both descending;
unknown years last). Authors missing from the link table simply get an
empty URL, and entries with missing fields still produce records.

Examples:
  pubsite build
  pubsite build --bib refs.bib --out site/pubs.json
  pubsite build --json`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	result, err := site.Build(cfg)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	if jsonOutput {
		return outputJSON(result)
	}
	fmt.Printf("Wrote %s (%d records)\n", result.OutPath, result.Count)
	return nil
}
