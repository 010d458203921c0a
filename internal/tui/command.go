package tui

import (
	"fmt"
	"strings"

	"github.com/kampala/matatu/internal/deck"
	"github.com/kampala/matatu/internal/game"
)

// Command is a parsed user input line.
type Command struct {
	Deal   bool
	Quit   bool
	Action game.Action
}

// ParseCommand turns an input line into a Command. Plays are written
// "play 8h"; aces need a declared suit, "play ah s". A bare card token is
// treated as a play for convenience.
func ParseCommand(input string) (Command, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	switch fields[0] {
	case "quit", "q", "exit":
		return Command{Quit: true}, nil
	case "deal", "new":
		return Command{Deal: true}, nil
	case "draw", "d":
		return Command{Action: game.DrawAction()}, nil
	case "cut":
		return Command{Action: game.CutAction()}, nil
	case "play", "p":
		fields = fields[1:]
		if len(fields) == 0 {
			return Command{}, fmt.Errorf("play needs a card, e.g. play 8h")
		}
	}

	card, err := deck.ParseCard(fields[0])
	if err != nil {
		return Command{}, fmt.Errorf("unknown command %q (try play/draw/cut/deal/quit)", input)
	}

	if card.Rank == deck.Ace {
		if len(fields) < 2 {
			return Command{}, fmt.Errorf("declare a suit with the ace, e.g. play %s h", strings.ToLower(fields[0]))
		}
		declared, err := deck.ParseSuit(fields[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Action: game.PlayAceAction(card, declared)}, nil
	}
	return Command{Action: game.PlayCardAction(card)}, nil
}
