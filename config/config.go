// Package config loads the YAML bundle that names the four files a
// Segmenter needs: the sandhi rule table, the lexicon dictionary, and the
// two scoring-model count files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/steosofficial/sanskritmorphy/sanskriterr"
)

// Environment variable names that override the corresponding YAML field.
const (
	EnvSandhiRulesPath      = "SANSKRITMORPHY_SANDHI_RULES_PATH"
	EnvLexiconPath          = "SANSKRITMORPHY_LEXICON_PATH"
	EnvLemmaCountsPath      = "SANSKRITMORPHY_LEMMA_COUNTS_PATH"
	EnvTransitionCountsPath = "SANSKRITMORPHY_TRANSITION_COUNTS_PATH"
)

// Config names the four files a Segmenter is built from.
type Config struct {
	SandhiRules      string `yaml:"sandhi_rules"`
	LexiconPath      string `yaml:"lexicon_path"`
	LemmaCounts      string `yaml:"lemma_counts"`
	TransitionCounts string `yaml:"transition_counts"`
}

// Load reads and validates the YAML bundle at path. Every field may be
// overridden by its environment variable, applied after the file is
// parsed. All four resulting paths must be non-empty or loading fails.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading config %q: %v", sanskriterr.ErrConfigLoad, path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing config %q: %v", sanskriterr.ErrConfigLoad, path, err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvSandhiRulesPath); v != "" {
		cfg.SandhiRules = v
	}
	if v := os.Getenv(EnvLexiconPath); v != "" {
		cfg.LexiconPath = v
	}
	if v := os.Getenv(EnvLemmaCountsPath); v != "" {
		cfg.LemmaCounts = v
	}
	if v := os.Getenv(EnvTransitionCountsPath); v != "" {
		cfg.TransitionCounts = v
	}
}

func (c *Config) validate() error {
	for name, v := range map[string]string{
		"sandhi_rules":      c.SandhiRules,
		"lexicon_path":      c.LexiconPath,
		"lemma_counts":      c.LemmaCounts,
		"transition_counts": c.TransitionCounts,
	} {
		if v == "" {
			return fmt.Errorf("%w: %q is required", sanskriterr.ErrConfigLoad, name)
		}
	}
	return nil
}
