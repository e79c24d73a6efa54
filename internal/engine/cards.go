package engine

import (
	"log/slog"

	"github.com/talgya/hexsettlers/internal/world"
)

// Development card phases. Each resolves a single card and then resumes the
// action phase it interrupted, exactly as it was left.

// MonopolyPhase takes every card of one kind from all other players.
type MonopolyPhase struct {
	resume ActionPhase
}

func (*MonopolyPhase) Kind() PhaseKind { return PhaseMonopoly }

func (p *MonopolyPhase) apply(g *Game, a Action) error {
	switch a := a.(type) {
	case Monopoly:
		if !g.isCurrent(a.Player) {
			return ErrNotYourTurn
		}
		if !a.Resource.Producing() {
			return ErrInvalidResource
		}
		taken := 0
		for _, pl := range g.players {
			if pl.Color != a.Player {
				taken += pl.Inventory.Clear(a.Resource)
			}
		}
		g.inventory(a.Player).Add(a.Resource, taken)
		slog.Debug("monopoly", "player", a.Player, "resource", a.Resource, "taken", taken)
		resume(g, p.resume)
		return nil
	}
	return ErrActionNotAllowed
}

// RoadBuildingPhase places up to two free roads, fewer if stock runs out.
type RoadBuildingPhase struct {
	left   int
	resume ActionPhase
}

func (*RoadBuildingPhase) Kind() PhaseKind { return PhaseRoadBuilding }

// Remaining returns the free roads still to place.
func (p *RoadBuildingPhase) Remaining() int { return p.left }

func (p *RoadBuildingPhase) apply(g *Game, a Action) error {
	switch a := a.(type) {
	case AddRoad:
		if !g.isCurrent(a.Player) {
			return ErrNotYourTurn
		}
		inv := g.inventory(a.Player)
		if inv.Roads() == 0 {
			return ErrNoStock
		}
		if err := g.board.AddRoad(a.Position, world.Road{Color: a.Player}, false); err != nil {
			return err
		}
		inv.UseRoad()
		g.awardLongestRoad()
		p.left--
		if p.left == 0 || inv.Roads() == 0 {
			resume(g, p.resume)
		}
		return nil
	}
	return ErrActionNotAllowed
}

// YearOfPlentyPhase takes two resources of the player's choice from the bank.
type YearOfPlentyPhase struct {
	resume ActionPhase
}

func (*YearOfPlentyPhase) Kind() PhaseKind { return PhaseYearOfPlenty }

func (p *YearOfPlentyPhase) apply(g *Game, a Action) error {
	switch a := a.(type) {
	case YearOfPlenty:
		if !g.isCurrent(a.Player) {
			return ErrNotYourTurn
		}
		if !a.First.Producing() || !a.Second.Producing() {
			return ErrInvalidResource
		}
		inv := g.inventory(a.Player)
		inv.Add(a.First, 1)
		inv.Add(a.Second, 1)
		resume(g, p.resume)
		return nil
	}
	return ErrActionNotAllowed
}

func resume(g *Game, p ActionPhase) {
	g.setPhase(&p)
}
