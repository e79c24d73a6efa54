package world

import (
	"fmt"
	"strings"
)

// Resource is what a tile produces.
type Resource uint8

const (
	ResourceNothing Resource = iota // Desert, only ever numbered 7
	ResourceBrick
	ResourceLumber
	ResourceOre
	ResourceGrain
	ResourceWool
)

// Resources lists the producing kinds in their fixed order. Random card
// selection walks this order.
var Resources = [5]Resource{ResourceBrick, ResourceLumber, ResourceOre, ResourceGrain, ResourceWool}

// ResourceName returns a human-readable name for a resource.
func ResourceName(r Resource) string {
	switch r {
	case ResourceNothing:
		return "nothing"
	case ResourceBrick:
		return "brick"
	case ResourceLumber:
		return "lumber"
	case ResourceOre:
		return "ore"
	case ResourceGrain:
		return "grain"
	case ResourceWool:
		return "wool"
	default:
		return "unknown"
	}
}

func (r Resource) String() string { return ResourceName(r) }

// Producing reports whether r is one of the five tradeable kinds.
func (r Resource) Producing() bool {
	return r >= ResourceBrick && r <= ResourceWool
}

// ParseResource is the inverse of ResourceName.
func ParseResource(s string) (Resource, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for r := ResourceNothing; r <= ResourceWool; r++ {
		if ResourceName(r) == s {
			return r, nil
		}
	}
	if s == "desert" {
		return ResourceNothing, nil
	}
	return 0, fmt.Errorf("unknown resource %q", s)
}

// Harbor improves the bank exchange rate for whoever builds on its vertex.
type Harbor uint8

const (
	HarborNone Harbor = iota
	HarborAny         // 3:1 on any kind
	HarborBrick       // 2:1 brick
	HarborLumber
	HarborOre
	HarborGrain
	HarborWool
)

// HarborFor returns the 2:1 harbor for a resource.
func HarborFor(r Resource) Harbor {
	if !r.Producing() {
		return HarborNone
	}
	return HarborBrick + Harbor(r-ResourceBrick)
}

func (h Harbor) String() string {
	switch {
	case h == HarborNone:
		return "none"
	case h == HarborAny:
		return "any"
	case h <= HarborWool:
		return ResourceName(ResourceBrick + Resource(h-HarborBrick))
	default:
		return "unknown"
	}
}

// ParseHarbor maps "any" or a resource name to a Harbor.
func ParseHarbor(s string) (Harbor, error) {
	if strings.EqualFold(strings.TrimSpace(s), "any") {
		return HarborAny, nil
	}
	r, err := ParseResource(s)
	if err != nil || !r.Producing() {
		return HarborNone, fmt.Errorf("unknown harbor %q", s)
	}
	return HarborFor(r), nil
}

// Color identifies a player. The zero value is no player.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorBlue
	ColorOrange
	ColorWhite
	ColorGreen
	ColorBrown
)

var colorNames = map[Color]string{
	ColorNone:   "none",
	ColorRed:    "red",
	ColorBlue:   "blue",
	ColorOrange: "orange",
	ColorWhite:  "white",
	ColorGreen:  "green",
	ColorBrown:  "brown",
}

func (c Color) String() string {
	if s, ok := colorNames[c]; ok {
		return s
	}
	return "unknown"
}

// MarshalText encodes the color by name so journals stay readable.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (c *Color) UnmarshalText(b []byte) error {
	if string(b) == "none" {
		*c = ColorNone
		return nil
	}
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseColor maps a color name to a Color.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range colorNames {
		if c != ColorNone && name == s {
			return c, nil
		}
	}
	return ColorNone, fmt.Errorf("unknown color %q", s)
}

// BuildingType distinguishes settlements from cities.
type BuildingType uint8

const (
	Settlement BuildingType = iota + 1
	City
)

func (t BuildingType) String() string {
	switch t {
	case Settlement:
		return "settlement"
	case City:
		return "city"
	default:
		return "unknown"
	}
}

// Yield is the number of resource cards the building collects per matching roll.
func (t BuildingType) Yield() int {
	switch t {
	case Settlement:
		return 1
	case City:
		return 2
	default:
		return 0
	}
}

// Points is the victory point value of the building.
func (t BuildingType) Points() int { return t.Yield() }

// ParseBuildingType maps "settlement"/"city" to a BuildingType.
func ParseBuildingType(s string) (BuildingType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "settlement":
		return Settlement, nil
	case "city":
		return City, nil
	}
	return 0, fmt.Errorf("unknown building type %q", s)
}

// Building occupies a vertex.
type Building struct {
	Color Color        `json:"color"`
	Type  BuildingType `json:"type"`
}

// Road occupies an edge.
type Road struct {
	Color Color `json:"color"`
}

// Tile is a single hex on the board. Occupants are stored in fixed slots
// indexed by Direction; an empty slot holds the zero value.
type Tile struct {
	Resource Resource `json:"resource"`
	Number   int      `json:"number"`

	roads     [6]Road
	buildings [6]Building
	harbors   [6]Harbor
}

// NewTile creates an empty tile. The desert must carry 7.
func NewTile(resource Resource, number int) *Tile {
	if number < 2 || number > 12 {
		panic(fmt.Sprintf("world: tile number %d out of range", number))
	}
	if resource > ResourceWool {
		panic(fmt.Sprintf("world: invalid resource %d", resource))
	}
	if resource == ResourceNothing && number != 7 {
		panic("world: desert tile must carry 7")
	}
	return &Tile{Resource: resource, Number: number}
}

// WithRoad pre-seeds a road. An occupied slot is left unchanged.
func (t *Tile) WithRoad(d Direction, road Road) *Tile {
	if t.roads[d].Color == ColorNone {
		t.roads[d] = road
	}
	return t
}

// WithBuilding pre-seeds a building. An occupied slot is left unchanged.
func (t *Tile) WithBuilding(d Direction, b Building) *Tile {
	if t.buildings[d].Type == 0 {
		t.buildings[d] = b
	}
	return t
}

// WithHarbor attaches a harbor to a corner. An occupied slot is left unchanged.
func (t *Tile) WithHarbor(d Direction, h Harbor) *Tile {
	if t.harbors[d] == HarborNone {
		t.harbors[d] = h
	}
	return t
}

func (t *Tile) road(d Direction) (Road, bool) {
	r := t.roads[d]
	return r, r.Color != ColorNone
}

func (t *Tile) building(d Direction) (Building, bool) {
	b := t.buildings[d]
	return b, b.Type != 0
}

func (t *Tile) harbor(d Direction) (Harbor, bool) {
	h := t.harbors[d]
	return h, h != HarborNone
}
