package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/kampala/matatu/internal/config"
	"github.com/kampala/matatu/internal/tui"
)

type PlayCmd struct {
	Players int    `default:"0" help:"Number of players including you (default from config, 2)"`
	Stake   int    `default:"0" help:"Stake per hand (default from config, 50)"`
	Seed    int64  `default:"0" help:"RNG seed (0 for time-based)"`
	Config  string `default:"matatu.hcl" help:"Path to HCL config file"`
	Debug   bool   `help:"Enable debug logging to stderr"`
}

func (c *PlayCmd) Run() error {
	logger := newLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if c.Players != 0 {
		cfg.Session.Players = c.Players
	}
	if c.Stake != 0 {
		cfg.Session.Stake = c.Stake
	}
	if c.Seed != 0 {
		cfg.Session.Seed = c.Seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.Session.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	model := tui.NewModel(logger, tui.Options{
		Players: cfg.Session.Players,
		Stake:   cfg.Session.Stake,
		Balance: cfg.Session.Balance,
		Seed:    seed,
		Rules:   cfg.GameRules(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

func newLogger(debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{Level: level})
}
