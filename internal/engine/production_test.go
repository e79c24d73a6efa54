package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hexsettlers/internal/economy"
	"github.com/talgya/hexsettlers/internal/world"
)

func rollGame(t *testing.T, rolls ...int) *Game {
	g := newTestGame(t, scripted(t, rolls...), nil, red, blue)
	return inPhase(g, &RollPhase{}, red)
}

func TestRollProduces(t *testing.T) {
	g := rollGame(t, 8)
	// Red city on lumber/ore/brick, blue settlement on the center's fourth corner.
	place(t, g, red, world.At(0, 0, world.DirOne), world.City)
	place(t, g, blue, world.At(0, 0, world.DirFour), world.Settlement)

	require.NoError(t, g.Apply(RollDice{Player: red}))

	assert.Equal(t, PhaseAction, kind(g))
	assert.Equal(t, 8, g.LastRoll())
	assert.Equal(t, economy.ResourceSet{world.ResourceLumber: 2}, g.inventory(red).Resources())
	assert.Equal(t, economy.ResourceSet{world.ResourceLumber: 1}, g.inventory(blue).Resources())
}

func TestRobberBlocksProduction(t *testing.T) {
	g := rollGame(t, 8)
	place(t, g, red, world.At(0, 0, world.DirOne), world.Settlement)
	require.NoError(t, g.board.SetRobber(center))

	require.NoError(t, g.Apply(RollDice{Player: red}))
	assert.Equal(t, PhaseAction, kind(g))
	assert.Zero(t, g.inventory(red).TotalResources())
}

func TestRollOutOfTurn(t *testing.T) {
	g := rollGame(t, 8)
	assert.ErrorIs(t, g.Apply(RollDice{Player: blue}), ErrNotYourTurn)
	assert.Equal(t, PhaseRollForResources, kind(g))
	assert.Zero(t, g.LastRoll())
}

func TestSevenSkipsDiscardWhenHandsAreSmall(t *testing.T) {
	g := rollGame(t, 7)
	give(g, red, map[world.Resource]int{world.ResourceOre: 7})

	require.NoError(t, g.Apply(RollDice{Player: red}))
	assert.Equal(t, PhaseMoveRobber, kind(g))
	assert.Equal(t, 7, g.inventory(red).TotalResources())
}

func TestSevenDiscardsHalf(t *testing.T) {
	g := rollGame(t, 7)
	give(g, red, map[world.Resource]int{world.ResourceOre: 5, world.ResourceWool: 4})
	give(g, blue, map[world.Resource]int{world.ResourceGrain: 8})

	require.NoError(t, g.Apply(RollDice{Player: red}))
	require.Equal(t, PhaseDiscardResources, kind(g))
	discard := g.Phase().(*DiscardPhase)
	assert.Equal(t, 4, discard.Owed(red))
	assert.Equal(t, 4, discard.Owed(blue))

	tooFew := economy.ResourceSet{world.ResourceOre: 3}
	assert.ErrorIs(t, g.Apply(DiscardResources{Player: red, Resources: tooFew}), ErrDiscardAmount)
	notHeld := economy.ResourceSet{world.ResourceBrick: 4}
	assert.ErrorIs(t, g.Apply(DiscardResources{Player: red, Resources: notHeld}), ErrInsufficient)
	assert.Equal(t, 9, g.inventory(red).TotalResources())

	require.NoError(t, g.Apply(DiscardResources{Player: red, Resources: economy.ResourceSet{world.ResourceOre: 2, world.ResourceWool: 2}}))
	assert.ErrorIs(t, g.Apply(DiscardResources{Player: red, Resources: tooFew}), ErrNoDiscardDue)
	assert.Equal(t, PhaseDiscardResources, kind(g))

	require.NoError(t, g.Apply(DiscardResources{Player: blue, Resources: economy.ResourceSet{world.ResourceGrain: 4}}))
	assert.Equal(t, PhaseMoveRobber, kind(g))
	assert.Equal(t, 5, g.inventory(red).TotalResources())
	assert.Equal(t, 4, g.inventory(blue).TotalResources())
}
