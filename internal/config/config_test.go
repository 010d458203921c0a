package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kampala/matatu/internal/game"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matatu.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Session.Players)
	assert.Equal(t, 50, cfg.Session.Stake)
	assert.Equal(t, 1000, cfg.Session.Balance)
	assert.Equal(t, game.DefaultRules(), cfg.GameRules())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
session {
  players = 3
  stake   = 100
  balance = 500
  seed    = 42
}

rules {
  hand_size           = 5
  cut_threshold       = 30
  cut_counts_own_hand = true
  cut_suit_from_flip  = false
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.Session.Players)
	assert.Equal(t, 100, cfg.Session.Stake)
	assert.Equal(t, 500, cfg.Session.Balance)
	assert.Equal(t, int64(42), cfg.Session.Seed)

	rules := cfg.GameRules()
	assert.Equal(t, 5, rules.HandSize)
	assert.Equal(t, 30, rules.CutThreshold)
	assert.True(t, rules.CutCountsOwnHand)
	assert.False(t, rules.CutSuitFromFlip)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
rules {
  cut_threshold = 20
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Session.Players)

	rules := cfg.GameRules()
	assert.Equal(t, 20, rules.CutThreshold)
	assert.Equal(t, 7, rules.HandSize)
	assert.False(t, rules.CutCountsOwnHand)
	assert.True(t, rules.CutSuitFromFlip, "absent booleans keep their defaults")
}

func TestLoadInvalidHCL(t *testing.T) {
	path := writeConfig(t, `session { players = `)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Session.Players = 9
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Session.Stake = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Rules.CutThreshold = -1
	assert.Error(t, cfg.Validate())
}
