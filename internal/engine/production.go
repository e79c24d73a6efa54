// Resource production: a roll pays every building on the matching tiles.
package engine

import (
	"log/slog"

	"github.com/talgya/hexsettlers/internal/economy"
	"github.com/talgya/hexsettlers/internal/world"
)

// RobberRoll is the roll that produces nothing and wakes the robber.
const RobberRoll = 7

// DiscardLimit is the largest hand that survives a robber roll intact.
const DiscardLimit = 7

// RollPhase opens a turn: the current player rolls for production.
type RollPhase struct{}

func (*RollPhase) Kind() PhaseKind { return PhaseRollForResources }

func (p *RollPhase) apply(g *Game, a Action) error {
	switch a.(type) {
	case RollDice:
		if !g.isCurrent(a.Actor()) {
			return ErrNotYourTurn
		}
		roll := g.roll()
		if roll == RobberRoll {
			g.enterDiscard()
			return nil
		}
		g.produce(roll)
		g.setPhase(newActionPhase())
		return nil
	}
	return ErrActionNotAllowed
}

// produce pays every building on a tile numbered roll, except the tile under
// the robber. Settlements yield one card and cities two.
func (g *Game) produce(roll int) {
	robber, hasRobber := g.board.Robber()
	paid := make(map[world.Color]economy.ResourceSet)
	for _, coord := range g.board.TilesForRoll(roll) {
		if hasRobber && coord == robber {
			continue
		}
		tile := g.board.Tile(coord)
		if !tile.Resource.Producing() {
			continue
		}
		for _, bl := range g.board.TileBuildings(coord) {
			g.inventory(bl.Color).Add(tile.Resource, bl.Type.Yield())
			set := paid[bl.Color]
			set[tile.Resource] += bl.Type.Yield()
			paid[bl.Color] = set
		}
	}
	for c, set := range paid {
		slog.Debug("production", "roll", roll, "player", c, "resources", set)
	}
}

// enterDiscard starts the robber sequence. Players over the limit discard
// first; with nobody over it the robber moves straight away.
func (g *Game) enterDiscard() {
	owed := make(map[world.Color]int)
	for _, pl := range g.players {
		if total := pl.Inventory.TotalResources(); total > DiscardLimit {
			owed[pl.Color] = total / 2
		}
	}
	if len(owed) == 0 {
		g.setPhase(&MoveRobberPhase{})
		return
	}
	g.setPhase(&DiscardPhase{owed: owed})
}
