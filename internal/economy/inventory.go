package economy

import (
	"fmt"

	"github.com/talgya/hexsettlers/internal/world"
)

// Starting stock of pieces per player.
const (
	DefaultSettlements = 5
	DefaultCities      = 4
	DefaultRoads       = 15
)

// Inventory is everything a player holds. It is mutated in place for the
// whole game; no count ever goes negative.
type Inventory struct {
	resources   ResourceSet
	cards       CardCounts
	usedKnights int

	settlements int
	cities      int
	roads       int
}

// NewInventory creates an empty hand with the default piece stock.
func NewInventory() *Inventory {
	return &Inventory{
		settlements: DefaultSettlements,
		cities:      DefaultCities,
		roads:       DefaultRoads,
	}
}

// Resource returns the amount of r held.
func (inv *Inventory) Resource(r world.Resource) int {
	return inv.resources[r]
}

// Resources returns a copy of all resource counts.
func (inv *Inventory) Resources() ResourceSet {
	return inv.resources
}

// TotalResources returns the number of resource cards held.
func (inv *Inventory) TotalResources() int {
	return inv.resources.Total()
}

// Add credits n units of r.
func (inv *Inventory) Add(r world.Resource, n int) {
	if !r.Producing() || n < 0 {
		panic(fmt.Sprintf("economy: cannot add %d %s", n, r))
	}
	inv.resources[r] += n
}

// Remove debits n units of r. It reports false and changes nothing if fewer
// than n are held.
func (inv *Inventory) Remove(r world.Resource, n int) bool {
	if n < 0 || inv.resources[r] < n {
		return false
	}
	inv.resources[r] -= n
	return true
}

// Has reports whether every amount in s is held.
func (inv *Inventory) Has(s ResourceSet) bool {
	for r, n := range s {
		if inv.resources[r] < n {
			return false
		}
	}
	return true
}

// Pay debits all of s, or nothing if any amount is short.
func (inv *Inventory) Pay(s ResourceSet) bool {
	if !s.Valid() || !inv.Has(s) {
		return false
	}
	for r, n := range s {
		inv.resources[r] -= n
	}
	return true
}

// Receive credits all of s.
func (inv *Inventory) Receive(s ResourceSet) {
	if !s.Valid() {
		panic(fmt.Sprintf("economy: cannot receive %s", s))
	}
	for r, n := range s {
		inv.resources[r] += n
	}
}

// Clear removes every unit of r and returns how many there were.
func (inv *Inventory) Clear(r world.Resource) int {
	n := inv.resources[r]
	inv.resources[r] = 0
	return n
}

// Steal removes one card chosen uniformly over individual cards. intn must
// return an index in [0, n). ok is false if the hand is empty.
func (inv *Inventory) Steal(intn func(n int) int) (world.Resource, bool) {
	total := inv.TotalResources()
	if total == 0 {
		return world.ResourceNothing, false
	}
	// Card index in [1, total], then walk the kinds in fixed order.
	idx := intn(total) + 1
	for _, r := range world.Resources {
		if idx <= inv.resources[r] {
			inv.resources[r]--
			return r, true
		}
		idx -= inv.resources[r]
	}
	panic("economy: steal index outside hand")
}

// Stock returns the pieces of type t left to place.
func (inv *Inventory) Stock(t world.BuildingType) int {
	switch t {
	case world.Settlement:
		return inv.settlements
	case world.City:
		return inv.cities
	default:
		panic(fmt.Sprintf("economy: invalid building type %d", t))
	}
}

// HasBuilding reports whether a piece of type t is left.
func (inv *Inventory) HasBuilding(t world.BuildingType) bool {
	return inv.Stock(t) > 0
}

// UseBuilding takes a piece from stock. A city hands its settlement piece back.
func (inv *Inventory) UseBuilding(t world.BuildingType) bool {
	if !inv.HasBuilding(t) {
		return false
	}
	switch t {
	case world.Settlement:
		inv.settlements--
	case world.City:
		inv.cities--
		inv.settlements++
	}
	return true
}

// Roads returns the road pieces left.
func (inv *Inventory) Roads() int {
	return inv.roads
}

// UseRoad takes a road piece from stock.
func (inv *Inventory) UseRoad() bool {
	if inv.roads == 0 {
		return false
	}
	inv.roads--
	return true
}

// SetStock overrides the piece stock.
func (inv *Inventory) SetStock(settlements, cities, roads int) {
	if settlements < 0 || cities < 0 || roads < 0 {
		panic("economy: negative stock")
	}
	inv.settlements, inv.cities, inv.roads = settlements, cities, roads
}

// DevelopmentCards returns how many cards of kind c are held.
func (inv *Inventory) DevelopmentCards(c DevelopmentCard) int {
	return inv.cards[c]
}

// Cards returns a copy of all development card counts.
func (inv *Inventory) Cards() CardCounts {
	return inv.cards
}

// AddDevelopmentCard puts a card into the hand.
func (inv *Inventory) AddDevelopmentCard(c DevelopmentCard) {
	if int(c) >= numCards {
		panic(fmt.Sprintf("economy: invalid development card %d", c))
	}
	inv.cards[c]++
}

// UseDevelopmentCard plays a held card. Victory points cannot be played.
// Knights played are tallied for the largest army.
func (inv *Inventory) UseDevelopmentCard(c DevelopmentCard) bool {
	if !c.Usable() || inv.cards[c] == 0 {
		return false
	}
	inv.cards[c]--
	if c == Knight {
		inv.usedKnights++
	}
	return true
}

// UsedKnights returns the number of knights played.
func (inv *Inventory) UsedKnights() int {
	return inv.usedKnights
}

// VictoryPoints returns the points granted by held victory point cards.
func (inv *Inventory) VictoryPoints() int {
	return inv.cards[VictoryPoint]
}
