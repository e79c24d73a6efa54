// Package economy provides per-player holdings: resource cards, development
// cards, building stock, the build cost table and player-to-player trades.
package economy

import (
	"fmt"
	"strings"

	"github.com/talgya/hexsettlers/internal/world"
)

// numKinds sizes arrays indexed by world.Resource. The desert slot stays zero.
const numKinds = int(world.ResourceWool) + 1

// ResourceSet is a fixed-size array holding a count per resource kind.
type ResourceSet [numKinds]int

// Set builds a ResourceSet from (kind, amount) pairs.
func Set(pairs map[world.Resource]int) ResourceSet {
	var s ResourceSet
	for r, n := range pairs {
		s[r] += n
	}
	return s
}

// Of returns the amount of r.
func (s ResourceSet) Of(r world.Resource) int {
	return s[r]
}

// Total returns the sum over all kinds.
func (s ResourceSet) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// IsEmpty returns true if all quantities are zero.
func (s ResourceSet) IsEmpty() bool {
	for _, n := range s {
		if n != 0 {
			return false
		}
	}
	return true
}

// Valid reports whether every amount is non-negative and nothing is asked
// of the desert.
func (s ResourceSet) Valid() bool {
	if s[world.ResourceNothing] != 0 {
		return false
	}
	for _, n := range s {
		if n < 0 {
			return false
		}
	}
	return true
}

func (s ResourceSet) String() string {
	var parts []string
	for _, r := range world.Resources {
		if s[r] != 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", r, s[r]))
		}
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Build costs.
var (
	SettlementCost      = ResourceSet{world.ResourceBrick: 1, world.ResourceLumber: 1, world.ResourceWool: 1, world.ResourceGrain: 1}
	CityCost            = ResourceSet{world.ResourceOre: 3, world.ResourceGrain: 2}
	RoadCost            = ResourceSet{world.ResourceBrick: 1, world.ResourceLumber: 1}
	DevelopmentCardCost = ResourceSet{world.ResourceOre: 1, world.ResourceGrain: 1, world.ResourceWool: 1}
)

// BuildingCost returns the cost of a building type.
func BuildingCost(t world.BuildingType) ResourceSet {
	switch t {
	case world.Settlement:
		return SettlementCost
	case world.City:
		return CityCost
	default:
		panic(fmt.Sprintf("economy: invalid building type %d", t))
	}
}
