package engine

import (
	"log/slog"
	"slices"

	"github.com/talgya/hexsettlers/internal/world"
)

// StartingPlayerPhase decides who places first. Eligible players roll once
// each in seat order. A unique top roll wins; a tie sends only the tied
// players into another round.
type StartingPlayerPhase struct {
	eligible []int       // seats still in the roll-off, ascending
	rolls    map[int]int // seat → roll this round
}

func newStartingPlayerPhase(players int) *StartingPlayerPhase {
	eligible := make([]int, players)
	for i := range eligible {
		eligible[i] = i
	}
	return &StartingPlayerPhase{eligible: eligible, rolls: make(map[int]int)}
}

func (p *StartingPlayerPhase) Kind() PhaseKind { return PhaseStartingPlayer }

// Eligible returns the number of players still in the roll-off.
func (p *StartingPlayerPhase) Eligible() int { return len(p.eligible) }

func (p *StartingPlayerPhase) apply(g *Game, a Action) error {
	switch a.(type) {
	case RollDice:
		return p.roll(g, a.Actor())
	}
	return ErrActionNotAllowed
}

func (p *StartingPlayerPhase) roll(g *Game, actor world.Color) error {
	if !g.isCurrent(actor) {
		return ErrNotYourTurn
	}
	p.rolls[g.current] = g.roll()
	if len(p.rolls) < len(p.eligible) {
		g.current = p.next(g.current, len(g.players))
		return nil
	}

	best := 0
	var top []int
	for seat, r := range p.rolls {
		switch {
		case r > best:
			best, top = r, []int{seat}
		case r == best:
			top = append(top, seat)
		}
	}
	if len(top) == 1 {
		g.current = top[0]
		slog.Info("starting player decided", "player", g.CurrentPlayer(), "roll", best)
		g.setPhase(newSetupPhase(g, 1))
		return nil
	}

	slices.Sort(top)
	slog.Debug("starting roll tied", "roll", best, "players", len(top))
	p.eligible = top
	p.rolls = make(map[int]int)
	g.current = p.next(g.current, len(g.players))
	return nil
}

// next returns the first eligible seat after from, wrapping around.
func (p *StartingPlayerPhase) next(from, players int) int {
	for i := 1; i <= players; i++ {
		seat := (from + i) % players
		if slices.Contains(p.eligible, seat) {
			return seat
		}
	}
	return from
}
