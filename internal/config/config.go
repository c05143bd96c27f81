// Package config resolves where the build reads its inputs and writes
// its output.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default paths, relative to the working directory.
const (
	DefaultBibPath   = "data/publications.bib"
	DefaultLinksPath = "data/author_links.yml"
	DefaultOutPath   = "data/publications.json"

	// ConfigFile is the optional per-project config file name.
	ConfigFile = "pubsite.yml"
)

// Environment variable overrides. These beat the config file but lose to
// command-line flags.
const (
	EnvBib   = "PUBSITE_BIB"
	EnvLinks = "PUBSITE_LINKS"
	EnvOut   = "PUBSITE_OUT"
)

// Config holds the three paths the pipeline needs. Values are threaded
// explicitly into the build; nothing reads them from ambient state.
type Config struct {
	BibPath   string `yaml:"bib_path"`
	LinksPath string `yaml:"links_path"`
	OutPath   string `yaml:"out_path"`
}

// Load builds the effective configuration: defaults, overlaid by an
// optional pubsite.yml in the working directory, overlaid by environment
// variables. A missing config file is normal.
func Load() (*Config, error) {
	cfg := &Config{
		BibPath:   DefaultBibPath,
		LinksPath: DefaultLinksPath,
		OutPath:   DefaultOutPath,
	}

	data, err := os.ReadFile(ConfigFile)
	if err == nil {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", ConfigFile, err)
		}
		cfg.merge(fileCfg)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", ConfigFile, err)
	}

	cfg.merge(Config{
		BibPath:   os.Getenv(EnvBib),
		LinksPath: os.Getenv(EnvLinks),
		OutPath:   os.Getenv(EnvOut),
	})

	return cfg, nil
}

// merge overlays non-empty fields of other onto c.
func (c *Config) merge(other Config) {
	if other.BibPath != "" {
		c.BibPath = other.BibPath
	}
	if other.LinksPath != "" {
		c.LinksPath = other.LinksPath
	}
	if other.OutPath != "" {
		c.OutPath = other.OutPath
	}
}
