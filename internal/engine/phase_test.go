package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/talgya/hexsettlers/internal/economy"
	"github.com/talgya/hexsettlers/internal/world"
)

func sampleActions(c world.Color) []Action {
	at := world.At(0, 0, world.DirOne)
	return []Action{
		RollDice{Player: c},
		AddBuilding{Player: c, Position: at, Type: world.Settlement},
		AddRoad{Player: c, Position: at},
		DiscardResources{Player: c},
		MoveRobber{Player: c, To: center},
		StealResource{Player: c, Victim: blue},
		OfferTrade{Player: c, To: blue, Offer: economy.ResourceSet{world.ResourceOre: 1}},
		AcceptTrade{Player: c},
		DeclineTrade{Player: c},
		EndTurn{Player: c},
		YearOfPlenty{Player: c, First: world.ResourceOre, Second: world.ResourceOre},
		Monopoly{Player: c, Resource: world.ResourceOre},
		BuyDevelopmentCard{Player: c},
		UseDevelopmentCard{Player: c, Card: economy.Knight},
		Exchange{Player: c, Offer: world.ResourceOre, Receive: world.ResourceWool},
	}
}

func phasesUnderTest(g *Game) []Phase {
	return []Phase{
		newStartingPlayerPhase(len(g.players)),
		newSetupPhase(g, 1),
		&RollPhase{},
		&DiscardPhase{owed: map[world.Color]int{red: 4}},
		&MoveRobberPhase{},
		newActionPhase(),
		&MonopolyPhase{},
		&RoadBuildingPhase{left: 2},
		&YearOfPlentyPhase{},
	}
}

func TestEveryActionKindHasASample(t *testing.T) {
	seen := map[ActionKind]bool{}
	for _, a := range sampleActions(red) {
		seen[a.Kind()] = true
	}
	assert.Len(t, seen, len(actionNames))
}

func TestIllegalActionsChangeNothing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := newTestGame(t, scripted(t, 8), nil, red, blue)
		phases := phasesUnderTest(g)
		phase := phases[rapid.IntRange(0, len(phases)-1).Draw(t, "phase")]
		actions := sampleActions(red)
		a := actions[rapid.IntRange(0, len(actions)-1).Draw(t, "action")]
		if Allowed(phase.Kind(), a.Kind()) {
			t.Skip("legal here")
		}

		inPhase(g, phase, red)
		give(g, red, map[world.Resource]int{world.ResourceOre: 3})
		before := g.Snapshot()

		if err := g.Apply(a); err != ErrActionNotAllowed {
			t.Fatalf("%s in %s: got %v", a.Kind(), phase.Kind(), err)
		}
		if g.Phase() != phase {
			t.Fatalf("%s in %s changed phase", a.Kind(), phase.Kind())
		}
		after := g.Snapshot()
		if before.Players[0].Resources["ore"] != after.Players[0].Resources["ore"] {
			t.Fatalf("%s in %s changed resources", a.Kind(), phase.Kind())
		}
	})
}

func TestLegalActions(t *testing.T) {
	assert.Equal(t, []ActionKind{KindRollDice}, LegalActions(PhaseRollForResources))
	assert.True(t, Allowed(PhaseAction, KindExchange))
	assert.False(t, Allowed(PhaseRoadBuilding, KindEndTurn))
	for k := range phaseNames {
		assert.NotEmpty(t, LegalActions(k), "%s", k)
	}
}

func TestParseActionKind(t *testing.T) {
	k, err := ParseActionKind("Use_Development_Card")
	assert.NoError(t, err)
	assert.Equal(t, KindUseDevelopmentCard, k)
	_, err = ParseActionKind("cheat")
	assert.Error(t, err)
}
