package economy

import "github.com/talgya/hexsettlers/internal/world"

// Trade is an offer from one player to another: From gives Offer and
// receives Receive.
type Trade struct {
	From    world.Color `json:"from"`
	To      world.Color `json:"to"`
	Offer   ResourceSet `json:"offer"`
	Receive ResourceSet `json:"receive"`
}

// Valid reports whether the trade names two different players and carries
// only non-negative amounts.
func (t Trade) Valid() bool {
	return t.From != world.ColorNone && t.To != world.ColorNone && t.From != t.To &&
		t.Offer.Valid() && t.Receive.Valid()
}

// Affordable reports whether both sides currently hold their part.
func (t Trade) Affordable(from, to *Inventory) bool {
	return from.Has(t.Offer) && to.Has(t.Receive)
}

// Settle swaps both sides atomically. It reports false and changes nothing if
// either side no longer holds its part.
func (t Trade) Settle(from, to *Inventory) bool {
	if !t.Valid() || !t.Affordable(from, to) {
		return false
	}
	from.Pay(t.Offer)
	to.Pay(t.Receive)
	to.Receive(t.Offer)
	from.Receive(t.Receive)
	return true
}
