package engine

import (
	"github.com/talgya/hexsettlers/internal/economy"
	"github.com/talgya/hexsettlers/internal/world"
)

// Snapshot is a serializable view of the game between actions.
type Snapshot struct {
	Phase       string           `json:"phase"`
	Current     string           `json:"current"`
	Turn        int              `json:"turn"`
	LastRoll    int              `json:"last_roll"`
	Robber      *world.HexCoord  `json:"robber,omitempty"`
	LongestRoad string           `json:"longest_road,omitempty"`
	LargestArmy string           `json:"largest_army,omitempty"`
	Winner      string           `json:"winner,omitempty"`
	Players     []PlayerSnapshot `json:"players"`
}

// PlayerSnapshot is one seat in a Snapshot.
type PlayerSnapshot struct {
	Color       string         `json:"color"`
	Points      int            `json:"points"`
	Resources   map[string]int `json:"resources"`
	Cards       map[string]int `json:"cards"`
	UsedKnights int            `json:"used_knights"`
	Settlements int            `json:"settlements"`
	Cities      int            `json:"cities"`
	Roads       int            `json:"roads"`
	RoadLength  int            `json:"road_length"`
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:    g.phase.Kind().String(),
		Current:  g.CurrentPlayer().String(),
		Turn:     g.turn,
		LastRoll: g.lastRoll,
	}
	if c, ok := g.board.Robber(); ok {
		s.Robber = &c
	}
	if c, ok := g.LongestRoadHolder(); ok {
		s.LongestRoad = c.String()
	}
	if c, ok := g.LargestArmyHolder(); ok {
		s.LargestArmy = c.String()
	}
	if c, ok := g.Winner(); ok {
		s.Winner = c.String()
	}
	for _, pl := range g.players {
		inv := pl.Inventory
		ps := PlayerSnapshot{
			Color:       pl.Color.String(),
			Points:      g.Points(pl.Color),
			Resources:   make(map[string]int),
			Cards:       make(map[string]int),
			UsedKnights: inv.UsedKnights(),
			Settlements: inv.Stock(world.Settlement),
			Cities:      inv.Stock(world.City),
			Roads:       inv.Roads(),
			RoadLength:  g.board.LongestRoad(pl.Color),
		}
		for _, r := range world.Resources {
			if n := inv.Resource(r); n > 0 {
				ps.Resources[r.String()] = n
			}
		}
		for _, c := range economy.DevelopmentCards {
			if n := inv.DevelopmentCards(c); n > 0 {
				ps.Cards[c.String()] = n
			}
		}
		s.Players = append(s.Players, ps)
	}
	return s
}
