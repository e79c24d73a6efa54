package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hexsettlers/internal/economy"
	"github.com/talgya/hexsettlers/internal/world"
)

func playKnights(g *Game, c world.Color, n int) {
	inv := g.inventory(c)
	for range n {
		inv.AddDevelopmentCard(economy.Knight)
		inv.UseDevelopmentCard(economy.Knight)
	}
}

func TestLargestArmy(t *testing.T) {
	g := newTestGame(t, nil, nil, red, blue)

	playKnights(g, red, 2)
	g.awardLargestArmy()
	_, ok := g.LargestArmyHolder()
	assert.False(t, ok, "two knights are not enough")

	playKnights(g, red, 1)
	g.awardLargestArmy()
	holder, ok := g.LargestArmyHolder()
	require.True(t, ok)
	assert.Equal(t, red, holder)

	// Blue ties; red keeps the title.
	playKnights(g, blue, 3)
	g.awardLargestArmy()
	holder, _ = g.LargestArmyHolder()
	assert.Equal(t, red, holder)

	playKnights(g, blue, 1)
	g.awardLargestArmy()
	holder, _ = g.LargestArmyHolder()
	assert.Equal(t, blue, holder)
	assert.Equal(t, TitlePoints, g.Points(blue))
	assert.Zero(t, g.Points(red))
}

func TestLongestRoadAwardedOnPlacement(t *testing.T) {
	g := actionGame(t, nil)
	place(t, g, red, world.At(0, 0, world.DirOne), world.Settlement)
	for _, d := range []world.Direction{world.DirOne, world.DirTwo, world.DirThree, world.DirFour} {
		road(t, g, red, world.At(0, 0, d))
	}
	give(g, red, map[world.Resource]int{world.ResourceBrick: 1, world.ResourceLumber: 1})

	require.NoError(t, g.Apply(AddRoad{Player: red, Position: world.At(0, 0, world.DirFive)}))
	holder, ok := g.LongestRoadHolder()
	require.True(t, ok)
	assert.Equal(t, red, holder)
	assert.Equal(t, 1+TitlePoints, g.Points(red))
}

func TestLongestRoadTieKeepsNobody(t *testing.T) {
	g := actionGame(t, nil)
	for _, d := range world.Directions[:5] {
		road(t, g, blue, world.At(-1, 2, d))
		road(t, g, red, world.At(1, -1, d))
	}
	g.awardLongestRoad()
	_, ok := g.LongestRoadHolder()
	assert.False(t, ok)
}

func TestWinnerIsOnlyTheCurrentPlayer(t *testing.T) {
	g := actionGame(t, nil)
	for range WinningPoints {
		g.inventory(blue).AddDevelopmentCard(economy.VictoryPoint)
	}
	assert.Equal(t, WinningPoints, g.Points(blue))
	_, ok := g.Winner()
	assert.False(t, ok, "blue has enough points but it is red's turn")

	require.NoError(t, g.Apply(EndTurn{Player: red}))
	winner, ok := g.Winner()
	require.True(t, ok)
	assert.Equal(t, blue, winner)
	assert.Equal(t, "blue", g.Snapshot().Winner)
}

func TestPointsCountBuildings(t *testing.T) {
	g := actionGame(t, nil)
	place(t, g, red, world.At(0, 0, world.DirOne), world.City)
	place(t, g, red, world.At(0, 0, world.DirFour), world.Settlement)
	g.inventory(red).AddDevelopmentCard(economy.VictoryPoint)
	assert.Equal(t, 4, g.Points(red))
}

func TestSnapshot(t *testing.T) {
	g := actionGame(t, nil)
	give(g, red, map[world.Resource]int{world.ResourceOre: 2})
	g.inventory(blue).AddDevelopmentCard(economy.Knight)

	s := g.Snapshot()
	assert.Equal(t, "action", s.Phase)
	assert.Equal(t, "red", s.Current)
	require.NotNil(t, s.Robber)
	assert.Equal(t, desert, *s.Robber)
	require.Len(t, s.Players, 2)
	assert.Equal(t, map[string]int{"ore": 2}, s.Players[0].Resources)
	assert.Equal(t, map[string]int{"knight": 1}, s.Players[1].Cards)
	assert.Equal(t, economy.DefaultRoads, s.Players[1].Roads)
}
