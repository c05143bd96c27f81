package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqlab/pubsite/internal/authorlinks"
	"github.com/seqlab/pubsite/internal/bibtex"
	"github.com/seqlab/pubsite/internal/pdfcheck"
	"github.com/seqlab/pubsite/internal/site"
)

func init() {
	checkCmd.Flags().StringVar(&buildBib, "bib", "", "Bibliography file (default: config or data/publications.bib)")
	checkCmd.Flags().StringVar(&buildLinks, "links", "", "Author link table (default: config or data/author_links.yml)")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Cross-check record pdf fields against local PDF files",
	Long: `Check every record whose pdf field names a local file.

Reports pdf paths that cannot be read, and PDFs whose embedded DOI
disagrees with the record's doi field. Diagnostic only: issues do not
fail the command or change the build output.

Examples:
  pubsite check
  pubsite check --json`,
	RunE: runCheck,
}

// CheckResult is the JSON output of the check command.
type CheckResult struct {
	Checked int              `json:"checked"`
	Issues  []pdfcheck.Issue `json:"issues"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	entries, err := bibtex.ParseFile(cfg.BibPath)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	links, err := authorlinks.Load(cfg.LinksPath)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	pubs := site.Records(entries, links)
	issues := pdfcheck.Check(pubs)

	if jsonOutput {
		result := CheckResult{Checked: len(pubs), Issues: issues}
		if result.Issues == nil {
			result.Issues = []pdfcheck.Issue{}
		}
		return outputJSON(result)
	}

	if len(issues) == 0 {
		fmt.Printf("Checked %d records, no issues\n", len(pubs))
		return nil
	}
	fmt.Printf("Checked %d records, %d issues:\n", len(pubs), len(issues))
	for _, issue := range issues {
		fmt.Printf("  %s: %s (%s)\n", issue.ID, issue.Reason, issue.PDF)
	}
	return nil
}
