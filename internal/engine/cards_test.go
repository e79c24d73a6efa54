package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/talgya/hexsettlers/internal/economy"
	"github.com/talgya/hexsettlers/internal/engine/mocks"
	"github.com/talgya/hexsettlers/internal/world"
)

func TestKnightResumesActionPhase(t *testing.T) {
	ctrl := gomock.NewController(t)
	deck := mocks.NewMockDeck(ctrl)
	deck.EXPECT().Take().Return(economy.YearOfPlenty, true)
	g := actionGame(t, deck)
	inv := g.inventory(red)
	inv.AddDevelopmentCard(economy.Knight)
	inv.AddDevelopmentCard(economy.Monopoly)
	give(g, red, map[world.Resource]int{world.ResourceOre: 1, world.ResourceGrain: 1, world.ResourceWool: 1})
	place(t, g, blue, world.At(0, 0, world.DirOne), world.Settlement)
	give(g, blue, map[world.Resource]int{world.ResourceWool: 1})

	require.NoError(t, g.Apply(BuyDevelopmentCard{Player: red}))
	require.NoError(t, g.Apply(UseDevelopmentCard{Player: red, Card: economy.Knight}))
	require.Equal(t, PhaseMoveRobber, kind(g))
	assert.Equal(t, 1, inv.UsedKnights())

	require.NoError(t, g.Apply(MoveRobber{Player: red, To: center}))
	require.Equal(t, PhaseMoveRobber, kind(g))
	require.NoError(t, g.Apply(StealResource{Player: red, Victim: blue}))

	require.Equal(t, PhaseAction, kind(g))
	resumed := g.Phase().(*ActionPhase)
	assert.True(t, resumed.UsedCard())
	assert.Equal(t, 1, resumed.Bought(economy.YearOfPlenty))
	assert.Equal(t, 1, inv.Resource(world.ResourceWool))

	assert.ErrorIs(t, g.Apply(UseDevelopmentCard{Player: red, Card: economy.Monopoly}), ErrCardAlreadyUsed)
}

func TestKnightWithoutVictimsResumes(t *testing.T) {
	g := actionGame(t, nil)
	g.inventory(red).AddDevelopmentCard(economy.Knight)

	require.NoError(t, g.Apply(UseDevelopmentCard{Player: red, Card: economy.Knight}))
	require.NoError(t, g.Apply(MoveRobber{Player: red, To: north}))
	require.Equal(t, PhaseAction, kind(g))
	assert.True(t, g.Phase().(*ActionPhase).UsedCard())
}

func TestMonopoly(t *testing.T) {
	g := newTestGame(t, nil, nil, red, blue, white)
	inPhase(g, newActionPhase(), red)
	g.inventory(red).AddDevelopmentCard(economy.Monopoly)
	give(g, red, map[world.Resource]int{world.ResourceOre: 1})
	give(g, blue, map[world.Resource]int{world.ResourceOre: 2, world.ResourceWool: 1})
	give(g, white, map[world.Resource]int{world.ResourceOre: 3})

	require.NoError(t, g.Apply(UseDevelopmentCard{Player: red, Card: economy.Monopoly}))
	require.Equal(t, PhaseMonopoly, kind(g))
	assert.ErrorIs(t, g.Apply(Monopoly{Player: blue, Resource: world.ResourceOre}), ErrNotYourTurn)
	assert.ErrorIs(t, g.Apply(Monopoly{Player: red, Resource: world.ResourceNothing}), ErrInvalidResource)
	assert.ErrorIs(t, g.Apply(EndTurn{Player: red}), ErrActionNotAllowed)

	require.NoError(t, g.Apply(Monopoly{Player: red, Resource: world.ResourceOre}))
	assert.Equal(t, PhaseAction, kind(g))
	assert.Equal(t, 6, g.inventory(red).Resource(world.ResourceOre))
	assert.Zero(t, g.inventory(blue).Resource(world.ResourceOre))
	assert.Equal(t, 1, g.inventory(blue).Resource(world.ResourceWool))
	assert.Zero(t, g.inventory(white).TotalResources())
}

func TestYearOfPlenty(t *testing.T) {
	g := actionGame(t, nil)
	g.inventory(red).AddDevelopmentCard(economy.YearOfPlenty)

	require.NoError(t, g.Apply(UseDevelopmentCard{Player: red, Card: economy.YearOfPlenty}))
	require.Equal(t, PhaseYearOfPlenty, kind(g))
	require.NoError(t, g.Apply(YearOfPlenty{Player: red, First: world.ResourceGrain, Second: world.ResourceGrain}))

	assert.Equal(t, PhaseAction, kind(g))
	assert.Equal(t, 2, g.inventory(red).Resource(world.ResourceGrain))
}

func TestRoadBuilding(t *testing.T) {
	g := actionGame(t, nil)
	place(t, g, red, world.At(0, 0, world.DirOne), world.Settlement)
	g.inventory(red).AddDevelopmentCard(economy.RoadBuilding)

	require.NoError(t, g.Apply(UseDevelopmentCard{Player: red, Card: economy.RoadBuilding}))
	require.Equal(t, PhaseRoadBuilding, kind(g))
	assert.Equal(t, 2, g.Phase().(*RoadBuildingPhase).Remaining())

	assert.ErrorIs(t, g.Apply(AddRoad{Player: red, Position: world.At(0, 0, world.DirFour)}), world.ErrRoadNotLinked)
	require.NoError(t, g.Apply(AddRoad{Player: red, Position: world.At(0, 0, world.DirOne)}))
	require.Equal(t, PhaseRoadBuilding, kind(g))
	require.NoError(t, g.Apply(AddRoad{Player: red, Position: world.At(0, 0, world.DirTwo)}))

	assert.Equal(t, PhaseAction, kind(g))
	assert.Zero(t, g.inventory(red).TotalResources())
	assert.Equal(t, economy.DefaultRoads-2, g.inventory(red).Roads())
}

func TestRoadBuildingLimitedByStock(t *testing.T) {
	g := actionGame(t, nil)
	place(t, g, red, world.At(0, 0, world.DirOne), world.Settlement)
	inv := g.inventory(red)
	inv.AddDevelopmentCard(economy.RoadBuilding)
	inv.SetStock(5, 4, 1)

	require.NoError(t, g.Apply(UseDevelopmentCard{Player: red, Card: economy.RoadBuilding}))
	assert.Equal(t, 1, g.Phase().(*RoadBuildingPhase).Remaining())
	require.NoError(t, g.Apply(AddRoad{Player: red, Position: world.At(0, 0, world.DirOne)}))
	assert.Equal(t, PhaseAction, kind(g))
}

func TestRoadBuildingWithoutStock(t *testing.T) {
	g := actionGame(t, nil)
	inv := g.inventory(red)
	inv.AddDevelopmentCard(economy.RoadBuilding)
	inv.SetStock(5, 4, 0)

	require.NoError(t, g.Apply(UseDevelopmentCard{Player: red, Card: economy.RoadBuilding}))
	assert.Equal(t, PhaseAction, kind(g))
	assert.True(t, g.Phase().(*ActionPhase).UsedCard())
}
