package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/kampala/matatu/internal/bot"
	"github.com/kampala/matatu/internal/config"
	"github.com/kampala/matatu/internal/game"
	"github.com/kampala/matatu/internal/randutil"
)

// maxSimTurns bounds a single game; a seeded playout that runs this long
// indicates an engine loop.
const maxSimTurns = 5000

type SimCmd struct {
	Games   int    `default:"10000" help:"Number of games to simulate"`
	Players int    `default:"0" help:"Players per game (default from config, 2)"`
	Seed    int64  `default:"0" help:"Master RNG seed (0 for time-based)"`
	Workers int    `default:"0" help:"Parallel workers (0 for GOMAXPROCS)"`
	Config  string `default:"matatu.hcl" help:"Path to HCL config file"`
	Debug   bool   `help:"Enable debug logging"`
}

type gameResult struct {
	winner int
	cut    bool
	turns  int
}

type simStats struct {
	games     int
	wins      []int
	cutWins   int
	emptyWins int
	turns     int
	maxTurns  int
}

func (s *simStats) add(r gameResult) {
	s.games++
	s.wins[r.winner]++
	if r.cut {
		s.cutWins++
	} else {
		s.emptyWins++
	}
	s.turns += r.turns
	if r.turns > s.maxTurns {
		s.maxTurns = r.turns
	}
}

func (c *SimCmd) Run() error {
	logger := newLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if c.Players != 0 {
		cfg.Session.Players = c.Players
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	players := cfg.Session.Players
	rules := cfg.GameRules()

	fmt.Printf("simulating %d games, %d players, seed %d, %d workers\n",
		c.Games, players, c.Seed, workers)

	// Per-game seeds come from the master RNG up front so the results are
	// independent of worker scheduling.
	masterRng := randutil.New(c.Seed)
	seeds := make([]int64, c.Games)
	for i := range seeds {
		seeds[i] = int64(masterRng.Uint64())
	}

	start := time.Now()
	results := make([]gameResult, c.Games)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range seeds {
		g.Go(func() error {
			r, err := playOneGame(seeds[i], players, rules, logger)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i, seeds[i], err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	stats := &simStats{wins: make([]int, players)}
	for _, r := range results {
		stats.add(r)
	}
	printSimResults(stats, elapsed)
	return nil
}

// playOneGame runs a full game with every seat driven by the CPU strategy.
func playOneGame(seed int64, players int, rules game.Rules, logger *log.Logger) (gameResult, error) {
	state, err := game.NewGame(players, seed, rules)
	if err != nil {
		return gameResult{}, err
	}

	strategy := bot.New(randutil.Derive(seed, 1))

	for !state.GameOver() {
		if state.Turn() >= maxSimTurns {
			return gameResult{}, fmt.Errorf("no winner after %d turns", maxSimTurns)
		}
		actions := state.LegalActions()
		if len(actions) == 0 {
			return gameResult{}, fmt.Errorf("player %d has no legal actions on turn %d", state.Current(), state.Turn())
		}
		action := strategy.Choose(state, actions)
		next, err := state.Apply(action)
		if err != nil {
			return gameResult{}, fmt.Errorf("turn %d: %w", state.Turn(), err)
		}
		logger.Debug("applied action", "turn", state.Turn(), "player", state.Current(), "action", action)
		state = next
	}

	winner, _ := state.Winner()
	return gameResult{
		winner: winner,
		cut:    state.HandCount(winner) > 0,
		turns:  state.Turn(),
	}, nil
}

func printSimResults(stats *simStats, elapsed time.Duration) {
	fmt.Printf("\n=== RESULTS ===\n")
	fmt.Printf("games: %d in %v (%.0f games/sec)\n",
		stats.games, elapsed.Round(time.Millisecond), float64(stats.games)/elapsed.Seconds())
	for seat, wins := range stats.wins {
		fmt.Printf("seat %d wins: %d (%.1f%%)\n", seat, wins, pct(wins, stats.games))
	}
	fmt.Printf("endings: %d by cut (%.1f%%), %d by emptying the hand (%.1f%%)\n",
		stats.cutWins, pct(stats.cutWins, stats.games),
		stats.emptyWins, pct(stats.emptyWins, stats.games))
	fmt.Printf("turns: %.1f avg, %d max\n",
		float64(stats.turns)/float64(stats.games), stats.maxTurns)
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
