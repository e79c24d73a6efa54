// Package engine runs a game: the player roster, turn order, dice, the
// development deck and the phase machine that validates and applies actions.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/talgya/hexsettlers/internal/economy"
	"github.com/talgya/hexsettlers/internal/entropy"
	"github.com/talgya/hexsettlers/internal/world"
)

//go:generate mockgen -source=game.go -destination=mocks/mock_game.go -package=mocks

// Dice rolls two six-sided dice. Every roll must be in [2, 12].
type Dice interface {
	Roll() int
}

// Deck is the development card draw pile. ok is false once it is empty.
type Deck interface {
	Take() (card economy.DevelopmentCard, ok bool)
}

// Player is a seat at the table. Players are identified by color alone.
type Player struct {
	Color     world.Color
	Inventory *economy.Inventory
}

// Params configures a new game.
type Params struct {
	Board   *world.Board
	Players []world.Color // seat order; duplicates are ignored
	Dice    Dice
	Deck    Deck            // nil means no development cards
	Intn    func(n int) int // steal picks; nil means crypto/rand
}

// Record is one submitted action and its outcome.
type Record struct {
	Seq    int
	Turn   int
	Action Action
	Phase  PhaseKind // phase the action was submitted in
	Next   PhaseKind // phase after it
	Roll   int       // dice result, if the action rolled
	Err    error     // nil if accepted
}

// Game is a running game. It is not safe for concurrent use; actions are
// applied one at a time through Apply.
type Game struct {
	board   *world.Board
	players []*Player
	seats   map[world.Color]int
	dice    Dice
	deck    Deck
	intn    func(n int) int

	phase    Phase
	current  int
	turn     int
	lastRoll int
	rolled   int // roll made by the action being applied

	longestRoad world.Color
	largestArmy world.Color

	history []Record
}

// NewGame seats the players and starts in the starting-player roll-off.
// The first listed player rolls first.
func NewGame(p Params) *Game {
	if p.Board == nil {
		panic("engine: nil board")
	}
	if p.Dice == nil {
		panic("engine: nil dice")
	}
	g := &Game{
		board: p.Board,
		seats: make(map[world.Color]int),
		dice:  p.Dice,
		deck:  p.Deck,
		intn:  p.Intn,
	}
	if g.deck == nil {
		g.deck = economy.NewDeck()
	}
	if g.intn == nil {
		g.intn = entropy.CryptoIntn()
	}
	for _, c := range p.Players {
		if c == world.ColorNone {
			panic("engine: player without color")
		}
		if _, ok := g.seats[c]; ok {
			continue
		}
		g.seats[c] = len(g.players)
		g.players = append(g.players, &Player{Color: c, Inventory: economy.NewInventory()})
	}
	if len(g.players) == 0 {
		panic("engine: no players")
	}
	g.phase = newStartingPlayerPhase(len(g.players))
	slog.Debug("game created", "players", len(g.players), "board", g.board)
	return g
}

// Apply validates an action against the current phase and commits it. A
// non-nil error means the action was rejected and nothing changed. An actor
// that is not seated is a programmer error and panics.
func (g *Game) Apply(a Action) error {
	if a == nil {
		panic("engine: nil action")
	}
	g.seat(a.Actor())

	before := g.phase.Kind()
	g.rolled = 0
	var err error
	if Allowed(before, a.Kind()) {
		err = g.phase.apply(g, a)
	} else {
		err = ErrActionNotAllowed
	}

	rec := Record{
		Seq:    len(g.history) + 1,
		Turn:   g.turn,
		Action: a,
		Phase:  before,
		Next:   g.phase.Kind(),
		Roll:   g.rolled,
		Err:    err,
	}
	g.history = append(g.history, rec)

	if err != nil {
		slog.Debug("action rejected", "player", a.Actor(), "action", a.Kind(), "phase", before, "reason", err)
		return err
	}
	slog.Debug("action applied", "player", a.Actor(), "action", a.Kind(), "phase", before)
	return nil
}

func (g *Game) setPhase(p Phase) {
	if from := g.phase.Kind(); from != p.Kind() {
		slog.Debug("phase change", "from", from, "to", p.Kind(), "player", g.CurrentPlayer())
	}
	g.phase = p
}

// seat returns the roster index of c. Unknown colors panic.
func (g *Game) seat(c world.Color) int {
	i, ok := g.seats[c]
	if !ok {
		panic(fmt.Sprintf("engine: color %s is not seated", c))
	}
	return i
}

func (g *Game) isCurrent(c world.Color) bool {
	return g.seat(c) == g.current
}

func (g *Game) inventory(c world.Color) *economy.Inventory {
	return g.players[g.seat(c)].Inventory
}

func (g *Game) nextPlayer() {
	g.current = (g.current + 1) % len(g.players)
}

func (g *Game) roll() int {
	r := g.dice.Roll()
	if r < 2 || r > 12 {
		panic(fmt.Sprintf("engine: dice rolled %d", r))
	}
	g.lastRoll, g.rolled = r, r
	return r
}

// Board returns the shared board.
func (g *Game) Board() *world.Board { return g.board }

// Phase returns the active phase.
func (g *Game) Phase() Phase { return g.phase }

// CurrentPlayer returns the color whose turn it is.
func (g *Game) CurrentPlayer() world.Color { return g.players[g.current].Color }

// Turn counts completed turns of the main game.
func (g *Game) Turn() int { return g.turn }

// LastRoll returns the most recent dice result, or 0 before the first roll.
func (g *Game) LastRoll() int { return g.lastRoll }

// Players returns the colors in seat order.
func (g *Game) Players() []world.Color {
	out := make([]world.Color, len(g.players))
	for i, p := range g.players {
		out[i] = p.Color
	}
	return out
}

// Player returns the seat for c. Unknown colors panic.
func (g *Game) Player(c world.Color) *Player {
	return g.players[g.seat(c)]
}

// History returns every action submitted so far, in order.
func (g *Game) History() []Record {
	return append([]Record(nil), g.history...)
}
