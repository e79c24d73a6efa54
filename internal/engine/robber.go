package engine

import (
	"log/slog"
	"slices"

	"github.com/talgya/hexsettlers/internal/world"
)

// DiscardPhase waits for every player over the hand limit to discard half.
type DiscardPhase struct {
	owed map[world.Color]int // cards each remaining player must discard
}

func (*DiscardPhase) Kind() PhaseKind { return PhaseDiscardResources }

// Owed returns the cards c still has to discard.
func (p *DiscardPhase) Owed(c world.Color) int { return p.owed[c] }

func (p *DiscardPhase) apply(g *Game, a Action) error {
	switch a := a.(type) {
	case DiscardResources:
		return p.discard(g, a)
	}
	return ErrActionNotAllowed
}

func (p *DiscardPhase) discard(g *Game, a DiscardResources) error {
	n, ok := p.owed[a.Player]
	if !ok {
		return ErrNoDiscardDue
	}
	if !a.Resources.Valid() || a.Resources.Total() != n {
		return ErrDiscardAmount
	}
	inv := g.inventory(a.Player)
	if !inv.Pay(a.Resources) {
		return ErrInsufficient
	}
	delete(p.owed, a.Player)
	slog.Debug("discarded", "player", a.Player, "resources", a.Resources)
	if len(p.owed) == 0 {
		g.setPhase(&MoveRobberPhase{})
	}
	return nil
}

// MoveRobberPhase has the current player move the robber and then steal from
// a player with a building on the new tile. After a knight it resumes the
// interrupted action phase; otherwise a fresh action phase starts.
type MoveRobberPhase struct {
	moved   bool
	victims []world.Color

	knight bool
	resume ActionPhase
}

func (*MoveRobberPhase) Kind() PhaseKind { return PhaseMoveRobber }

// Moved reports whether the robber has been moved in this phase.
func (p *MoveRobberPhase) Moved() bool { return p.moved }

// Victims returns the players that can be stolen from, in seat order.
func (p *MoveRobberPhase) Victims() []world.Color { return slices.Clone(p.victims) }

func (p *MoveRobberPhase) apply(g *Game, a Action) error {
	switch a := a.(type) {
	case MoveRobber:
		return p.move(g, a)
	case StealResource:
		return p.steal(g, a)
	}
	return ErrActionNotAllowed
}

func (p *MoveRobberPhase) move(g *Game, a MoveRobber) error {
	if !g.isCurrent(a.Player) {
		return ErrNotYourTurn
	}
	if p.moved {
		return ErrRobberMoved
	}
	if err := g.board.SetRobber(a.To); err != nil {
		return err
	}
	p.moved = true

	seen := make(map[world.Color]bool)
	for _, bl := range g.board.TileBuildings(a.To) {
		if bl.Color != a.Player {
			seen[bl.Color] = true
		}
	}
	for _, pl := range g.players {
		if seen[pl.Color] {
			p.victims = append(p.victims, pl.Color)
		}
	}
	slog.Debug("robber moved", "player", a.Player, "to", a.To, "victims", len(p.victims))
	if len(p.victims) == 0 {
		p.finish(g)
	}
	return nil
}

func (p *MoveRobberPhase) steal(g *Game, a StealResource) error {
	if !g.isCurrent(a.Player) {
		return ErrNotYourTurn
	}
	if !p.moved {
		return ErrRobberNotMovedYet
	}
	if !slices.Contains(p.victims, a.Victim) {
		return ErrNotVictim
	}
	if r, ok := g.inventory(a.Victim).Steal(g.intn); ok {
		g.inventory(a.Player).Add(r, 1)
		slog.Debug("resource stolen", "player", a.Player, "victim", a.Victim)
	}
	p.finish(g)
	return nil
}

func (p *MoveRobberPhase) finish(g *Game) {
	if p.knight {
		resumed := p.resume
		g.setPhase(&resumed)
		return
	}
	g.setPhase(newActionPhase())
}
