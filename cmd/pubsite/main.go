// Package main provides the pubsite CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// jsonOutput switches command output from human-readable to JSON.
var jsonOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pubsite",
	Short: "Build a publications page from a BibTeX bibliography",
	Long: `pubsite turns a BibTeX bibliography into the sorted JSON document
a publications listing page consumes.

It normalizes messy field text, splits author lists, resolves arXiv and
DOI links, and pairs authors with profile URLs from an optional lookup
table. Every entry in the bibliography produces exactly one output
record; sparse entries just have empty fields.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Use JSON output instead of human-readable")
	rootCmd.Version = Version
}
