package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talgya/hexsettlers/internal/economy"
	"github.com/talgya/hexsettlers/internal/entropy"
	"github.com/talgya/hexsettlers/internal/world"
)

const (
	red   = world.ColorRed
	blue  = world.ColorBlue
	white = world.ColorWhite
)

var (
	center = world.HexCoord{Q: 0, R: 0}
	north  = world.HexCoord{Q: 0, R: -1}
	east   = world.HexCoord{Q: 1, R: -1}
	desert = world.HexCoord{Q: -2, R: 2}
)

// testBoard is a radius 2 board of wool 6 tiles, except lumber 8 in the
// center, ore 5 to the north, brick 9 to the north-east and the desert in a
// corner under the robber. The center carries a generic harbor on corner
// three and a brick harbor on corner five.
func testBoard() *world.Board {
	special := map[world.HexCoord]*world.Tile{
		center: world.NewTile(world.ResourceLumber, 8).
			WithHarbor(world.DirThree, world.HarborAny).
			WithHarbor(world.DirFive, world.HarborBrick),
		north:  world.NewTile(world.ResourceOre, 5),
		east:   world.NewTile(world.ResourceBrick, 9),
		desert: world.NewTile(world.ResourceNothing, 7),
	}
	b := world.NewBuilder()
	for q := -2; q <= 2; q++ {
		for r := -2; r <= 2; r++ {
			c := world.HexCoord{Q: q, R: r}
			if world.Distance(center, c) > 2 {
				continue
			}
			if t, ok := special[c]; ok {
				b.AddTile(c, t)
			} else {
				b.AddTile(c, world.NewTile(world.ResourceWool, 6))
			}
		}
	}
	return b.WithRobber(desert).Build()
}

// tb is the part of testing.T that rapid.T also provides.
type tb interface {
	Helper()
	Errorf(format string, args ...any)
	FailNow()
}

func scripted(t tb, rolls ...int) *entropy.ScriptedDice {
	t.Helper()
	d, err := entropy.NewScriptedDice(rolls...)
	require.NoError(t, err)
	return d
}

func newTestGame(t tb, dice Dice, deck Deck, colors ...world.Color) *Game {
	t.Helper()
	if dice == nil {
		dice = scripted(t, 8)
	}
	return NewGame(Params{
		Board:   testBoard(),
		Players: colors,
		Dice:    dice,
		Deck:    deck,
		Intn:    func(int) int { return 0 },
	})
}

// inPhase forces the game into p with seat current to move.
func inPhase(g *Game, p Phase, current world.Color) *Game {
	g.phase = p
	g.current = g.seat(current)
	return g
}

func give(g *Game, c world.Color, pairs map[world.Resource]int) {
	g.inventory(c).Receive(economy.Set(pairs))
}

func place(t *testing.T, g *Game, c world.Color, p world.Position, bt world.BuildingType) {
	t.Helper()
	if bt == world.City {
		require.NoError(t, g.board.AddBuilding(p, world.Building{Color: c, Type: world.Settlement}, true))
	}
	require.NoError(t, g.board.AddBuilding(p, world.Building{Color: c, Type: bt}, true))
}

func road(t *testing.T, g *Game, c world.Color, p world.Position) {
	t.Helper()
	require.NoError(t, g.board.AddRoad(p, world.Road{Color: c}, true))
}

func kind(g *Game) PhaseKind { return g.Phase().Kind() }
