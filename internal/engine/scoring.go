package engine

import (
	"log/slog"

	"github.com/talgya/hexsettlers/internal/world"
)

// Scoring thresholds.
const (
	WinningPoints      = 10
	TitlePoints        = 2
	LargestArmyMinimum = 3
	LongestRoadMinimum = 5
)

// awardLargestArmy gives the title to the unique leader in knights played,
// once they reach the minimum. A tie leaves the holder unchanged.
func (g *Game) awardLargestArmy() {
	holder, n := g.uniqueLeader(LargestArmyMinimum, func(c world.Color) int {
		return g.inventory(c).UsedKnights()
	})
	if holder != world.ColorNone && holder != g.largestArmy {
		slog.Info("largest army", "player", holder, "knights", n)
		g.largestArmy = holder
	}
}

// awardLongestRoad gives the title to the unique leader in road length,
// once they reach the minimum. A tie leaves the holder unchanged.
func (g *Game) awardLongestRoad() {
	holder, n := g.uniqueLeader(LongestRoadMinimum, g.board.LongestRoad)
	if holder != world.ColorNone && holder != g.longestRoad {
		slog.Info("longest road", "player", holder, "length", n)
		g.longestRoad = holder
	}
}

func (g *Game) uniqueLeader(minimum int, score func(world.Color) int) (world.Color, int) {
	best, holder, tied := 0, world.ColorNone, false
	for _, pl := range g.players {
		switch s := score(pl.Color); {
		case s > best:
			best, holder, tied = s, pl.Color, false
		case s == best:
			tied = true
		}
	}
	if best < minimum || tied {
		return world.ColorNone, best
	}
	return holder, best
}

// LongestRoadHolder returns the holder of the longest road title, if any.
func (g *Game) LongestRoadHolder() (world.Color, bool) {
	return g.longestRoad, g.longestRoad != world.ColorNone
}

// LargestArmyHolder returns the holder of the largest army title, if any.
func (g *Game) LargestArmyHolder() (world.Color, bool) {
	return g.largestArmy, g.largestArmy != world.ColorNone
}

// Points returns the victory points of c: one per settlement, two per city,
// one per victory point card and two per title held.
func (g *Game) Points(c world.Color) int {
	points := g.inventory(c).VictoryPoints()
	for _, pb := range g.board.Buildings(c) {
		points += pb.Building.Type.Points()
	}
	if g.longestRoad == c {
		points += TitlePoints
	}
	if g.largestArmy == c {
		points += TitlePoints
	}
	return points
}

// Winner returns the current player if they have reached the winning total.
// Other players over the total win only once their own turn comes round.
func (g *Game) Winner() (world.Color, bool) {
	c := g.CurrentPlayer()
	if g.Points(c) >= WinningPoints {
		return c, true
	}
	return world.ColorNone, false
}
