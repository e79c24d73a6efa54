package engine

import (
	"log/slog"

	"github.com/talgya/hexsettlers/internal/economy"
	"github.com/talgya/hexsettlers/internal/world"
)

// Bank exchange rates.
const (
	BankRate           = 4
	GenericHarborRate  = 3
	SpecificHarborRate = 2
)

// ActionPhase is the body of a turn: trading, building, buying and playing
// development cards until the current player ends the turn. A pending trade
// blocks everything except answering it.
//
// ActionPhase holds no references, so the card phases can keep a copy and
// resume it unchanged.
type ActionPhase struct {
	trade    economy.Trade
	trading  bool
	bought   economy.CardCounts // cards bought this turn, per kind
	usedCard bool
}

func newActionPhase() *ActionPhase {
	return &ActionPhase{}
}

func (*ActionPhase) Kind() PhaseKind { return PhaseAction }

// PendingTrade returns the trade awaiting an answer, if any.
func (p *ActionPhase) PendingTrade() (economy.Trade, bool) { return p.trade, p.trading }

// UsedCard reports whether a development card was played this turn.
func (p *ActionPhase) UsedCard() bool { return p.usedCard }

// Bought returns how many cards of kind c were bought this turn.
func (p *ActionPhase) Bought(c economy.DevelopmentCard) int { return p.bought[c] }

func (p *ActionPhase) apply(g *Game, a Action) error {
	switch a := a.(type) {
	case OfferTrade:
		return p.offerTrade(g, a)
	case AcceptTrade:
		return p.answerTrade(g, a.Player, true)
	case DeclineTrade:
		return p.answerTrade(g, a.Player, false)
	}

	if p.trading {
		return ErrTradePending
	}
	if !g.isCurrent(a.Actor()) {
		return ErrNotYourTurn
	}
	switch a := a.(type) {
	case AddBuilding:
		return p.addBuilding(g, a)
	case AddRoad:
		return p.addRoad(g, a)
	case Exchange:
		return p.exchange(g, a)
	case BuyDevelopmentCard:
		return p.buyCard(g, a)
	case UseDevelopmentCard:
		return p.useCard(g, a)
	case EndTurn:
		g.nextPlayer()
		g.turn++
		g.setPhase(&RollPhase{})
		return nil
	}
	return ErrActionNotAllowed
}

func (p *ActionPhase) offerTrade(g *Game, a OfferTrade) error {
	if p.trading {
		return ErrTradePending
	}
	if !g.isCurrent(a.Player) {
		return ErrNotYourTurn
	}
	t := economy.Trade{From: a.Player, To: a.To, Offer: a.Offer, Receive: a.Receive}
	if !t.Valid() || (t.Offer.IsEmpty() && t.Receive.IsEmpty()) {
		return ErrInvalidTrade
	}
	if !t.Affordable(g.inventory(t.From), g.inventory(t.To)) {
		return ErrInsufficient
	}
	p.trade, p.trading = t, true
	slog.Debug("trade offered", "from", t.From, "to", t.To, "offer", t.Offer, "receive", t.Receive)
	return nil
}

func (p *ActionPhase) answerTrade(g *Game, actor world.Color, accept bool) error {
	if !p.trading {
		return ErrNoTrade
	}
	g.seat(actor)
	if actor != p.trade.To {
		return ErrNotTradePartner
	}
	if accept && !p.trade.Settle(g.inventory(p.trade.From), g.inventory(p.trade.To)) {
		return ErrInsufficient
	}
	slog.Debug("trade answered", "from", p.trade.From, "to", p.trade.To, "accepted", accept)
	p.trade, p.trading = economy.Trade{}, false
	return nil
}

func (p *ActionPhase) addBuilding(g *Game, a AddBuilding) error {
	cost := economy.BuildingCost(a.Type)
	inv := g.inventory(a.Player)
	if !inv.Has(cost) {
		return ErrInsufficient
	}
	if !inv.HasBuilding(a.Type) {
		return ErrNoStock
	}
	if err := g.board.AddBuilding(a.Position, world.Building{Color: a.Player, Type: a.Type}, false); err != nil {
		return err
	}
	inv.Pay(cost)
	inv.UseBuilding(a.Type)
	slog.Debug("building placed", "player", a.Player, "type", a.Type, "at", a.Position)
	return nil
}

func (p *ActionPhase) addRoad(g *Game, a AddRoad) error {
	inv := g.inventory(a.Player)
	if !inv.Has(economy.RoadCost) {
		return ErrInsufficient
	}
	if inv.Roads() == 0 {
		return ErrNoStock
	}
	if err := g.board.AddRoad(a.Position, world.Road{Color: a.Player}, false); err != nil {
		return err
	}
	inv.Pay(economy.RoadCost)
	inv.UseRoad()
	g.awardLongestRoad()
	return nil
}

func (p *ActionPhase) exchange(g *Game, a Exchange) error {
	if !a.Offer.Producing() || !a.Receive.Producing() || a.Offer == a.Receive {
		return ErrInvalidResource
	}
	rate := g.ExchangeRate(a.Player, a.Offer)
	inv := g.inventory(a.Player)
	if !inv.Remove(a.Offer, rate) {
		return ErrInsufficient
	}
	inv.Add(a.Receive, 1)
	slog.Debug("bank exchange", "player", a.Player, "offer", a.Offer, "rate", rate, "receive", a.Receive)
	return nil
}

// ExchangeRate returns how many of offer c pays the bank for one card. A
// harbor counts only when c has a building on it.
func (g *Game) ExchangeRate(c world.Color, offer world.Resource) int {
	switch {
	case g.board.HasHarbor(c, world.HarborFor(offer)):
		return SpecificHarborRate
	case g.board.HasHarbor(c, world.HarborAny):
		return GenericHarborRate
	default:
		return BankRate
	}
}

func (p *ActionPhase) buyCard(g *Game, a BuyDevelopmentCard) error {
	inv := g.inventory(a.Player)
	if !inv.Has(economy.DevelopmentCardCost) {
		return ErrInsufficient
	}
	card, ok := g.deck.Take()
	if !ok {
		return ErrDeckEmpty
	}
	inv.Pay(economy.DevelopmentCardCost)
	inv.AddDevelopmentCard(card)
	p.bought[card]++
	slog.Debug("development card bought", "player", a.Player)
	return nil
}

// useCard plays a card held since before this turn. At most one card is
// played per turn. Every card except victory points hands off to a phase
// that resumes this one when it resolves.
func (p *ActionPhase) useCard(g *Game, a UseDevelopmentCard) error {
	if p.usedCard {
		return ErrCardAlreadyUsed
	}
	inv := g.inventory(a.Player)
	if !a.Card.Usable() || inv.DevelopmentCards(a.Card) <= p.bought[a.Card] {
		return ErrCardNotPlayable
	}
	inv.UseDevelopmentCard(a.Card)
	p.usedCard = true
	slog.Debug("development card used", "player", a.Player, "card", a.Card)

	switch a.Card {
	case economy.Knight:
		g.awardLargestArmy()
		g.setPhase(&MoveRobberPhase{knight: true, resume: *p})
	case economy.RoadBuilding:
		if n := min(2, inv.Roads()); n > 0 {
			g.setPhase(&RoadBuildingPhase{left: n, resume: *p})
		}
	case economy.YearOfPlenty:
		g.setPhase(&YearOfPlentyPhase{resume: *p})
	case economy.Monopoly:
		g.setPhase(&MonopolyPhase{resume: *p})
	}
	return nil
}
