package engine

import "slices"

// PhaseKind identifies a turn phase.
type PhaseKind uint8

const (
	PhaseStartingPlayer PhaseKind = iota + 1
	PhaseSetup
	PhaseRollForResources
	PhaseDiscardResources
	PhaseMoveRobber
	PhaseAction
	PhaseMonopoly
	PhaseRoadBuilding
	PhaseYearOfPlenty
)

var phaseNames = map[PhaseKind]string{
	PhaseStartingPlayer:   "determine_starting_player",
	PhaseSetup:            "setup",
	PhaseRollForResources: "roll_for_resources",
	PhaseDiscardResources: "discard_resources",
	PhaseMoveRobber:       "move_robber",
	PhaseAction:           "action",
	PhaseMonopoly:         "monopoly",
	PhaseRoadBuilding:     "road_building",
	PhaseYearOfPlenty:     "year_of_plenty",
}

func (k PhaseKind) String() string {
	if s, ok := phaseNames[k]; ok {
		return s
	}
	return "unknown"
}

// Phase is the game's current turn phase. The implementations are the phase
// types in this package; each accepts only the actions listed for its kind.
type Phase interface {
	Kind() PhaseKind
	apply(g *Game, a Action) error
}

// legal lists the actions each phase accepts. Anything else is rejected
// before the phase sees it.
var legal = map[PhaseKind][]ActionKind{
	PhaseStartingPlayer:   {KindRollDice},
	PhaseSetup:            {KindAddBuilding, KindAddRoad},
	PhaseRollForResources: {KindRollDice},
	PhaseDiscardResources: {KindDiscardResources},
	PhaseMoveRobber:       {KindMoveRobber, KindStealResource},
	PhaseAction: {
		KindOfferTrade, KindAcceptTrade, KindDeclineTrade,
		KindAddBuilding, KindAddRoad, KindExchange,
		KindBuyDevelopmentCard, KindUseDevelopmentCard, KindEndTurn,
	},
	PhaseMonopoly:     {KindMonopoly},
	PhaseRoadBuilding: {KindAddRoad},
	PhaseYearOfPlenty: {KindYearOfPlenty},
}

// Allowed reports whether phase p accepts action a.
func Allowed(p PhaseKind, a ActionKind) bool {
	return slices.Contains(legal[p], a)
}

// LegalActions returns the actions phase p accepts.
func LegalActions(p PhaseKind) []ActionKind {
	return slices.Clone(legal[p])
}
