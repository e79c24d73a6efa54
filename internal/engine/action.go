package engine

import (
	"fmt"
	"strings"

	"github.com/talgya/hexsettlers/internal/economy"
	"github.com/talgya/hexsettlers/internal/world"
)

// ActionKind identifies one of the player moves.
type ActionKind uint8

const (
	KindRollDice ActionKind = iota + 1
	KindAddBuilding
	KindAddRoad
	KindDiscardResources
	KindMoveRobber
	KindStealResource
	KindOfferTrade
	KindAcceptTrade
	KindDeclineTrade
	KindEndTurn
	KindYearOfPlenty
	KindMonopoly
	KindBuyDevelopmentCard
	KindUseDevelopmentCard
	KindExchange
)

var actionNames = map[ActionKind]string{
	KindRollDice:           "roll_dice",
	KindAddBuilding:        "add_building",
	KindAddRoad:            "add_road",
	KindDiscardResources:   "discard_resources",
	KindMoveRobber:         "move_robber",
	KindStealResource:      "steal_resource",
	KindOfferTrade:         "offer_trade",
	KindAcceptTrade:        "accept_trade",
	KindDeclineTrade:       "decline_trade",
	KindEndTurn:            "end_turn",
	KindYearOfPlenty:       "year_of_plenty",
	KindMonopoly:           "monopoly",
	KindBuyDevelopmentCard: "buy_development_card",
	KindUseDevelopmentCard: "use_development_card",
	KindExchange:           "exchange",
}

func (k ActionKind) String() string {
	if s, ok := actionNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseActionKind maps an action name to its kind.
func ParseActionKind(s string) (ActionKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range actionNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// Action is a single player move. Actor is the player submitting it.
type Action interface {
	Kind() ActionKind
	Actor() world.Color
}

// RollDice rolls for the starting player or for production.
type RollDice struct {
	Player world.Color
}

// AddBuilding places a settlement or upgrades one to a city.
type AddBuilding struct {
	Player   world.Color
	Position world.Position
	Type     world.BuildingType
}

// AddRoad places a road on an edge.
type AddRoad struct {
	Player   world.Color
	Position world.Position
}

// DiscardResources gives up half a hand after a 7.
type DiscardResources struct {
	Player    world.Color
	Resources economy.ResourceSet
}

// MoveRobber relocates the robber.
type MoveRobber struct {
	Player world.Color
	To     world.HexCoord
}

// StealResource takes a random card from a player next to the robber.
type StealResource struct {
	Player world.Color
	Victim world.Color
}

// OfferTrade proposes a trade: Player gives Offer to To and gets Receive.
type OfferTrade struct {
	Player  world.Color
	To      world.Color
	Offer   economy.ResourceSet
	Receive economy.ResourceSet
}

// AcceptTrade settles the pending trade. Only its receiving player may accept.
type AcceptTrade struct {
	Player world.Color
}

// DeclineTrade drops the pending trade.
type DeclineTrade struct {
	Player world.Color
}

// EndTurn passes play to the next player.
type EndTurn struct {
	Player world.Color
}

// YearOfPlenty takes two resources from the bank.
type YearOfPlenty struct {
	Player        world.Color
	First, Second world.Resource
}

// Monopoly takes every card of one kind from all other players.
type Monopoly struct {
	Player   world.Color
	Resource world.Resource
}

// BuyDevelopmentCard draws from the development deck.
type BuyDevelopmentCard struct {
	Player world.Color
}

// UseDevelopmentCard plays a held card.
type UseDevelopmentCard struct {
	Player world.Color
	Card   economy.DevelopmentCard
}

// Exchange trades with the bank at the player's best rate for Offer.
type Exchange struct {
	Player  world.Color
	Offer   world.Resource
	Receive world.Resource
}

func (RollDice) Kind() ActionKind           { return KindRollDice }
func (AddBuilding) Kind() ActionKind        { return KindAddBuilding }
func (AddRoad) Kind() ActionKind            { return KindAddRoad }
func (DiscardResources) Kind() ActionKind   { return KindDiscardResources }
func (MoveRobber) Kind() ActionKind         { return KindMoveRobber }
func (StealResource) Kind() ActionKind      { return KindStealResource }
func (OfferTrade) Kind() ActionKind         { return KindOfferTrade }
func (AcceptTrade) Kind() ActionKind        { return KindAcceptTrade }
func (DeclineTrade) Kind() ActionKind       { return KindDeclineTrade }
func (EndTurn) Kind() ActionKind            { return KindEndTurn }
func (YearOfPlenty) Kind() ActionKind       { return KindYearOfPlenty }
func (Monopoly) Kind() ActionKind           { return KindMonopoly }
func (BuyDevelopmentCard) Kind() ActionKind { return KindBuyDevelopmentCard }
func (UseDevelopmentCard) Kind() ActionKind { return KindUseDevelopmentCard }
func (Exchange) Kind() ActionKind           { return KindExchange }

func (a RollDice) Actor() world.Color           { return a.Player }
func (a AddBuilding) Actor() world.Color        { return a.Player }
func (a AddRoad) Actor() world.Color            { return a.Player }
func (a DiscardResources) Actor() world.Color   { return a.Player }
func (a MoveRobber) Actor() world.Color         { return a.Player }
func (a StealResource) Actor() world.Color      { return a.Player }
func (a OfferTrade) Actor() world.Color         { return a.Player }
func (a AcceptTrade) Actor() world.Color        { return a.Player }
func (a DeclineTrade) Actor() world.Color       { return a.Player }
func (a EndTurn) Actor() world.Color            { return a.Player }
func (a YearOfPlenty) Actor() world.Color       { return a.Player }
func (a Monopoly) Actor() world.Color           { return a.Player }
func (a BuyDevelopmentCard) Actor() world.Color { return a.Player }
func (a UseDevelopmentCard) Actor() world.Color { return a.Player }
func (a Exchange) Actor() world.Color           { return a.Player }
