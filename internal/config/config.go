// Package config loads the optional matatu.hcl file that overrides table
// conventions and session defaults.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/kampala/matatu/internal/game"
)

// Config represents the complete configuration file. Blocks are pointers
// so a file may omit either one.
type Config struct {
	Session *SessionSettings `hcl:"session,block"`
	Rules   *RulesSettings   `hcl:"rules,block"`
}

// SessionSettings contains defaults for the play and sim commands.
type SessionSettings struct {
	Players int   `hcl:"players,optional"`
	Stake   int   `hcl:"stake,optional"`
	Balance int   `hcl:"balance,optional"`
	Seed    int64 `hcl:"seed,optional"`
}

// RulesSettings mirrors game.Rules. Booleans are pointers so an absent
// setting falls back to the default rather than to false.
type RulesSettings struct {
	HandSize         int   `hcl:"hand_size,optional"`
	CutThreshold     int   `hcl:"cut_threshold,optional"`
	CutCountsOwnHand *bool `hcl:"cut_counts_own_hand,optional"`
	CutSuitFromFlip  *bool `hcl:"cut_suit_from_flip,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Session: &SessionSettings{
			Players: 2,
			Stake:   50,
			Balance: 1000,
		},
		Rules: &RulesSettings{},
	}
}

// Load reads an HCL configuration file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing blocks and values
	defaults := Default()
	if cfg.Session == nil {
		cfg.Session = defaults.Session
	}
	if cfg.Rules == nil {
		cfg.Rules = defaults.Rules
	}
	if cfg.Session.Players == 0 {
		cfg.Session.Players = defaults.Session.Players
	}
	if cfg.Session.Stake == 0 {
		cfg.Session.Stake = defaults.Session.Stake
	}
	if cfg.Session.Balance == 0 {
		cfg.Session.Balance = defaults.Session.Balance
	}

	return &cfg, nil
}

// GameRules resolves the rules block against game.DefaultRules.
func (c *Config) GameRules() game.Rules {
	rules := game.DefaultRules()
	if c.Rules == nil {
		return rules
	}
	if c.Rules.HandSize != 0 {
		rules.HandSize = c.Rules.HandSize
	}
	if c.Rules.CutThreshold != 0 {
		rules.CutThreshold = c.Rules.CutThreshold
	}
	if c.Rules.CutCountsOwnHand != nil {
		rules.CutCountsOwnHand = *c.Rules.CutCountsOwnHand
	}
	if c.Rules.CutSuitFromFlip != nil {
		rules.CutSuitFromFlip = *c.Rules.CutSuitFromFlip
	}
	return rules
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Session.Players < 2 || c.Session.Players > game.MaxPlayers {
		return fmt.Errorf("players must be between 2 and %d, got %d", game.MaxPlayers, c.Session.Players)
	}
	if c.Session.Stake < 1 {
		return fmt.Errorf("stake must be positive, got %d", c.Session.Stake)
	}
	if err := c.GameRules().Validate(); err != nil {
		return fmt.Errorf("invalid rules: %w", err)
	}
	return nil
}
