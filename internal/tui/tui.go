// Package tui implements the interactive play mode: a Bubble Tea program
// that drives the engine for a human seat against CPU opponents.
package tui

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/kampala/matatu/internal/bot"
	"github.com/kampala/matatu/internal/deck"
	"github.com/kampala/matatu/internal/game"
	"github.com/kampala/matatu/internal/randutil"
)

// humanSeat is the seat the human always occupies.
const humanSeat = 0

// Options configures a play session.
type Options struct {
	Players    int
	Stake      int
	Balance    int
	Seed       int64
	Rules      game.Rules
	Clock      quartz.Clock
	ThinkDelay time.Duration
}

// cpuMoveMsg asks the model to apply one CPU action. The hand number
// guards against moves scheduled for a hand that has since ended.
type cpuMoveMsg struct {
	handNum int
}

// Model is the Bubble Tea model for a play session.
type Model struct {
	logger *log.Logger
	clock  quartz.Clock

	rules      game.Rules
	players    int
	thinkDelay time.Duration

	masterRng *rand.Rand
	cpu       *bot.Strategy

	state   *game.State
	handNum int
	balance int
	stake   int

	// UI components
	logViewport viewport.Model
	actionInput textinput.Model
	gameLog     []string

	width       int
	height      int
	initialized bool
	quitting    bool
}

// NewModel creates the play model and deals the first hand.
func NewModel(logger *log.Logger, opts Options) *Model {
	if opts.Players == 0 {
		opts.Players = 2
	}
	if opts.Stake == 0 {
		opts.Stake = 50
	}
	if opts.Balance == 0 {
		opts.Balance = 1000
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.ThinkDelay == 0 {
		opts.ThinkDelay = 600 * time.Millisecond
	}
	if opts.Rules == (game.Rules{}) {
		opts.Rules = game.DefaultRules()
	}

	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "play 8h | play ah s | draw | cut | deal | quit"
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	m := &Model{
		logger:      logger.WithPrefix("tui"),
		clock:       opts.Clock,
		rules:       opts.Rules,
		players:     opts.Players,
		thinkDelay:  opts.ThinkDelay,
		masterRng:   randutil.New(opts.Seed),
		cpu:         bot.New(randutil.Derive(opts.Seed, 1)),
		balance:     opts.Balance,
		stake:       opts.Stake,
		logViewport: vp,
		actionInput: ti,
	}
	m.startHand()
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logViewport.Width = msg.Width - 2
		m.logViewport.Height = max(msg.Height-10, 3)
		m.initialized = true
		m.refreshLog()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.actionInput.Value()
			m.actionInput.Reset()
			return m, m.handleInput(line)
		}

	case cpuMoveMsg:
		return m, m.applyCPUMove(msg)
	}

	var cmd tea.Cmd
	m.actionInput, cmd = m.actionInput.Update(msg)
	return m, cmd
}

// handleInput parses and executes one line of user input.
func (m *Model) handleInput(line string) tea.Cmd {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	cmd, err := ParseCommand(line)
	if err != nil {
		m.appendLog(ErrorStyle.Render(err.Error()))
		return nil
	}

	switch {
	case cmd.Quit:
		m.quitting = true
		return tea.Quit

	case cmd.Deal:
		if m.state != nil && !m.state.GameOver() {
			m.appendLog(ErrorStyle.Render("hand still in progress"))
			return nil
		}
		m.startHand()
		return nil

	default:
		return m.applyHumanAction(cmd.Action)
	}
}

func (m *Model) applyHumanAction(a game.Action) tea.Cmd {
	if m.state == nil || m.state.GameOver() {
		m.appendLog(ErrorStyle.Render("no hand in progress, type deal"))
		return nil
	}
	if m.state.Current() != humanSeat {
		m.appendLog(ErrorStyle.Render("not your turn"))
		return nil
	}

	next, err := m.state.Apply(a)
	if err != nil {
		var illegalErr *game.IllegalActionError
		if errors.As(err, &illegalErr) {
			m.appendLog(ErrorStyle.Render(illegalErr.Reason))
			m.appendLog(InfoStyle.Render("legal: " + m.legalSummary()))
			return nil
		}
		// Invariant violations are engine bugs, not user mistakes.
		m.logger.Error("engine failure", "error", err)
		m.appendLog(ErrorStyle.Render(err.Error()))
		m.quitting = true
		return tea.Quit
	}

	m.describeMove(humanSeat, a)
	m.state = next

	if m.state.GameOver() {
		m.finishHand()
		return nil
	}
	if m.state.Current() != humanSeat {
		return m.cpuTurnCmd()
	}
	return nil
}

// applyCPUMove applies one CPU action and reschedules itself while the
// turn stays with a CPU seat (extra turns, forced-draw chains).
func (m *Model) applyCPUMove(msg cpuMoveMsg) tea.Cmd {
	if msg.handNum != m.handNum || m.state == nil || m.state.GameOver() {
		return nil
	}
	if m.state.Current() == humanSeat {
		return nil
	}

	seat := m.state.Current()
	action := m.cpu.Choose(m.state, m.state.LegalActions())
	next, err := m.state.Apply(action)
	if err != nil {
		m.logger.Error("cpu produced an unplayable action", "action", action, "error", err)
		m.appendLog(ErrorStyle.Render(err.Error()))
		m.quitting = true
		return tea.Quit
	}

	m.describeMove(seat, action)
	m.state = next

	if m.state.GameOver() {
		m.finishHand()
		return nil
	}
	if m.state.Current() != humanSeat {
		return m.cpuTurnCmd()
	}
	return nil
}

// cpuTurnCmd schedules the next CPU move after a think delay. The delay
// runs on the injected clock so tests can advance it manually.
func (m *Model) cpuTurnCmd() tea.Cmd {
	hand := m.handNum
	return func() tea.Msg {
		timer := m.clock.NewTimer(m.thinkDelay)
		<-timer.C
		return cpuMoveMsg{handNum: hand}
	}
}

func (m *Model) startHand() {
	m.handNum++
	seed := int64(m.masterRng.Uint64())
	state, err := game.NewGame(m.players, seed, m.rules)
	if err != nil {
		m.logger.Error("failed to deal", "error", err)
		m.appendLog(ErrorStyle.Render("deal failed: " + err.Error()))
		return
	}
	m.state = state
	m.logger.Debug("dealt new hand", "hand", m.handNum, "seed", seed)
	m.appendLog(StatusStyle.Render(fmt.Sprintf("--- hand %d --- stake %d, balance %d", m.handNum, m.stake, m.balance)))
	m.appendLog(fmt.Sprintf("cut suit %s, first discard %s", state.CutSuit(), m.renderCard(state.TopDiscard())))
}

func (m *Model) finishHand() {
	winner, _ := m.state.Winner()
	if winner == humanSeat {
		m.balance += m.stake
		m.appendLog(SuccessStyle.Render(fmt.Sprintf("you win! +%d, balance %d", m.stake, m.balance)))
	} else {
		m.balance -= m.stake
		m.appendLog(ErrorStyle.Render(fmt.Sprintf("%s wins. -%d, balance %d", m.seatName(winner), m.stake, m.balance)))
	}
	m.appendLog(InfoStyle.Render("type deal for the next hand"))
}

// describeMove logs an action without leaking hidden information: drawn
// cards are only named for the human seat.
func (m *Model) describeMove(seat int, a game.Action) {
	name := m.seatName(seat)
	switch a.Kind {
	case game.Draw:
		if seat == humanSeat {
			m.appendLog(fmt.Sprintf("%s draw a card", name))
		} else {
			m.appendLog(fmt.Sprintf("%s draws a card", name))
		}
	case game.PlayAce:
		m.appendLog(fmt.Sprintf("%s: %s, wild suit %s", name, m.renderCard(a.Card), a.Declared))
	case game.Cut:
		m.appendLog(ActionsStyle.Render(fmt.Sprintf("%s cuts with %s!", name, m.renderCard(deck.NewCard(m.state.CutSuit(), deck.Seven)))))
	default:
		m.appendLog(fmt.Sprintf("%s: %s", name, m.renderCard(a.Card)))
	}
}

func (m *Model) seatName(seat int) string {
	if seat == humanSeat {
		return "you"
	}
	if m.players == 2 {
		return "cpu"
	}
	return fmt.Sprintf("cpu%d", seat)
}

func (m *Model) legalSummary() string {
	parts := make([]string, 0, 8)
	seenAce := map[deck.Card]bool{}
	for _, a := range m.state.LegalActions() {
		switch a.Kind {
		case game.PlayCard:
			parts = append(parts, m.renderCard(a.Card))
		case game.PlayAce:
			if !seenAce[a.Card] {
				seenAce[a.Card] = true
				parts = append(parts, m.renderCard(a.Card)+"+suit")
			}
		case game.Draw:
			parts = append(parts, "draw")
		case game.Cut:
			parts = append(parts, "cut")
		}
	}
	if len(parts) == 0 {
		return "nothing (draw pile exhausted)"
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

func (m *Model) appendLog(line string) {
	m.gameLog = append(m.gameLog, line)
	m.refreshLog()
}

func (m *Model) refreshLog() {
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()
}

// View renders the session
func (m *Model) View() string {
	if m.quitting {
		return fmt.Sprintf("final balance: %d\n", m.balance)
	}
	if !m.initialized || m.state == nil {
		return "dealing..."
	}

	var b strings.Builder

	header := fmt.Sprintf(" matatu · hand %d · stake %d · balance %d ", m.handNum, m.stake, m.balance)
	b.WriteString(HeaderStyle.Render(header))
	b.WriteString("\n\n")

	status := fmt.Sprintf("top %s · cut %s · draw pile %d",
		m.renderCard(m.state.TopDiscard()), m.state.CutSuit(), m.state.StockCount())
	if declared, ok := m.state.DeclaredSuit(); ok {
		status += fmt.Sprintf(" · wild %s", declared)
	}
	if m.state.PendingDraw() > 0 {
		status += ActionsStyle.Render(fmt.Sprintf(" · forced draw %d", m.state.PendingDraw()))
	}
	b.WriteString(StatusStyle.Render(status))
	b.WriteString("\n")

	for seat := 0; seat < m.players; seat++ {
		if seat == humanSeat {
			continue
		}
		b.WriteString(InfoStyle.Render(fmt.Sprintf("%s holds %d cards", m.seatName(seat), m.state.HandCount(seat))))
		b.WriteString("\n")
	}

	hand := m.state.Hand(humanSeat)
	cards := make([]string, len(hand))
	for i, c := range hand {
		cards[i] = m.renderCard(c)
	}
	b.WriteString(fmt.Sprintf("your hand (%d pts): %s\n", m.state.HandPoints(humanSeat), strings.Join(cards, " ")))

	if !m.state.GameOver() && m.state.Current() == humanSeat {
		b.WriteString(ActionsStyle.Render("your turn · legal: " + m.legalSummary()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.logViewport.View())
	b.WriteString("\n")
	b.WriteString(m.actionInput.View())
	return b.String()
}
