package engine

import (
	"log/slog"

	"github.com/talgya/hexsettlers/internal/world"
)

// SetupPhase is one round of initial placement: each player places a
// settlement and then a road touching it. Round 1 runs in seat order from the
// starting player, round 2 in reverse. Round 2 settlements pay out their
// neighboring tiles once setup ends.
type SetupPhase struct {
	round      int
	order      []int // seats in placement order
	step       int
	settlement *world.Position  // placed this step, awaiting its road
	placed     []world.Position // settlement placed at each finished step
}

func newSetupPhase(g *Game, round int) *SetupPhase {
	n := len(g.players)
	order := make([]int, n)
	for i := range order {
		if round == 1 {
			order[i] = (g.current + i) % n
		} else {
			order[i] = (g.current - i + n) % n
		}
	}
	return &SetupPhase{round: round, order: order}
}

func (p *SetupPhase) Kind() PhaseKind { return PhaseSetup }

// Round returns 1 or 2.
func (p *SetupPhase) Round() int { return p.round }

func (p *SetupPhase) apply(g *Game, a Action) error {
	switch a := a.(type) {
	case AddBuilding:
		return p.addSettlement(g, a)
	case AddRoad:
		return p.addRoad(g, a)
	}
	return ErrActionNotAllowed
}

func (p *SetupPhase) addSettlement(g *Game, a AddBuilding) error {
	if !g.isCurrent(a.Player) {
		return ErrNotYourTurn
	}
	if p.settlement != nil {
		return ErrAlreadyPlaced
	}
	if a.Type != world.Settlement {
		return ErrSettlementOnly
	}
	inv := g.inventory(a.Player)
	if !inv.HasBuilding(world.Settlement) {
		return ErrNoStock
	}
	bl := world.Building{Color: a.Player, Type: world.Settlement}
	if err := g.board.AddBuilding(a.Position, bl, true); err != nil {
		return err
	}
	inv.UseBuilding(world.Settlement)
	pos := a.Position
	p.settlement = &pos
	return nil
}

func (p *SetupPhase) addRoad(g *Game, a AddRoad) error {
	if !g.isCurrent(a.Player) {
		return ErrNotYourTurn
	}
	if p.settlement == nil {
		return ErrNoSettlementPlaced
	}
	touches := false
	for _, e := range p.settlement.VertexEdges() {
		touches = touches || e.SameEdge(a.Position)
	}
	if !touches {
		return ErrRoadNotAtSettlement
	}
	inv := g.inventory(a.Player)
	if inv.Roads() == 0 {
		return ErrNoStock
	}
	if err := g.board.AddRoad(a.Position, world.Road{Color: a.Player}, true); err != nil {
		return err
	}
	inv.UseRoad()

	p.placed = append(p.placed, *p.settlement)
	p.settlement = nil
	p.step++
	if p.step < len(p.order) {
		g.current = p.order[p.step]
		return nil
	}

	if p.round == 1 {
		g.setPhase(newSetupPhase(g, 2))
		return nil
	}
	p.grantStartingResources(g)
	slog.Info("setup complete", "starting_player", g.CurrentPlayer())
	g.setPhase(&RollPhase{})
	return nil
}

// grantStartingResources credits one card per producing tile around each
// round 2 settlement.
func (p *SetupPhase) grantStartingResources(g *Game) {
	for i, pos := range p.placed {
		inv := g.players[p.order[i]].Inventory
		for _, coord := range pos.VertexCoords() {
			if tile := g.board.Tile(coord); tile != nil && tile.Resource.Producing() {
				inv.Add(tile.Resource, 1)
			}
		}
	}
}
