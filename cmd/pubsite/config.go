package main

import (
	"github.com/joho/godotenv"

	"github.com/seqlab/pubsite/internal/config"
)

// mustLoadConfig resolves the effective paths: defaults, then pubsite.yml,
// then environment (including a local .env), then command-line flags.
func mustLoadConfig() *config.Config {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	if buildBib != "" {
		cfg.BibPath = buildBib
	}
	if buildLinks != "" {
		cfg.LinksPath = buildLinks
	}
	if buildOut != "" {
		cfg.OutPath = buildOut
	}
	return cfg
}
