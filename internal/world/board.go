package world

import (
	"fmt"
	"sort"
)

// RuleError is a placement rejected by the board rules. It is an ordinary
// outcome; the board is left unchanged.
type RuleError string

func (e RuleError) Error() string { return string(e) }

var (
	ErrEdgeOccupied    = RuleError("edge already has a road")
	ErrRoadNotLinked   = RuleError("road does not touch an own building or road")
	ErrVertexOccupied  = RuleError("vertex already has a building")
	ErrDistanceRule    = RuleError("building too close to another building")
	ErrBuildingIsolate = RuleError("settlement does not touch an own road")
	ErrNoSettlement    = RuleError("city must replace an own settlement")
	ErrUnknownTile     = RuleError("no tile at coordinate")
	ErrRobberNotMoved  = RuleError("robber must move to a different tile")
)

// Board holds every registered tile and the robber. All occupant writes go
// through AddRoad and AddBuilding, which keeps the equivalent descriptions of
// a vertex or edge reading identically.
type Board struct {
	tiles     map[HexCoord]*Tile
	robber    HexCoord
	hasRobber bool
}

// Builder assembles a Board before play starts.
type Builder struct {
	tiles     map[HexCoord]*Tile
	robber    HexCoord
	hasRobber bool
}

// NewBuilder creates an empty board builder.
func NewBuilder() *Builder {
	return &Builder{tiles: make(map[HexCoord]*Tile)}
}

// AddTile registers a tile. A coordinate already registered keeps its first tile.
func (b *Builder) AddTile(coord HexCoord, tile *Tile) *Builder {
	if _, ok := b.tiles[coord]; ok {
		return b
	}
	if tile == nil {
		panic("world: nil tile")
	}
	b.tiles[coord] = tile
	return b
}

// WithRobber places the robber on a tile.
func (b *Builder) WithRobber(coord HexCoord) *Builder {
	b.robber = coord
	b.hasRobber = true
	return b
}

// Build returns the assembled board.
func (b *Builder) Build() *Board {
	if b.hasRobber {
		if _, ok := b.tiles[b.robber]; !ok {
			panic(fmt.Sprintf("world: robber placed on unregistered tile %s", b.robber))
		}
	}
	tiles := make(map[HexCoord]*Tile, len(b.tiles))
	for c, t := range b.tiles {
		tiles[c] = t
	}
	return &Board{tiles: tiles, robber: b.robber, hasRobber: b.hasRobber}
}

// Tile returns the tile at coord, or nil if none is registered.
func (b *Board) Tile(coord HexCoord) *Tile {
	return b.tiles[coord]
}

// Contains reports whether a tile is registered at coord.
func (b *Board) Contains(coord HexCoord) bool {
	_, ok := b.tiles[coord]
	return ok
}

// TileCount returns the number of registered tiles.
func (b *Board) TileCount() int {
	return len(b.tiles)
}

// Coordinates returns every registered coordinate in (q, r) order.
func (b *Board) Coordinates() []HexCoord {
	out := make([]HexCoord, 0, len(b.tiles))
	for c := range b.tiles {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Q != out[j].Q {
			return out[i].Q < out[j].Q
		}
		return out[i].R < out[j].R
	})
	return out
}

// TilesForRoll returns the coordinates whose number matches roll.
func (b *Board) TilesForRoll(roll int) []HexCoord {
	var out []HexCoord
	for _, c := range b.Coordinates() {
		if b.tiles[c].Number == roll {
			out = append(out, c)
		}
	}
	return out
}

// Robber returns the robber's tile, if placed.
func (b *Board) Robber() (HexCoord, bool) {
	return b.robber, b.hasRobber
}

// SetRobber moves the robber. It must land on a registered tile other than
// the one it is on.
func (b *Board) SetRobber(coord HexCoord) error {
	if !b.Contains(coord) {
		return ErrUnknownTile
	}
	if b.hasRobber && b.robber == coord {
		return ErrRobberNotMoved
	}
	b.robber = coord
	b.hasRobber = true
	return nil
}

// Road returns the road on the edge at p, from whichever description holds it.
func (b *Board) Road(p Position) (Road, bool) {
	for _, e := range p.EdgePositions() {
		if t := b.tiles[e.Coord]; t != nil {
			if r, ok := t.road(e.Dir); ok {
				return r, true
			}
		}
	}
	return Road{}, false
}

// Building returns the building on the vertex at p.
func (b *Board) Building(p Position) (Building, bool) {
	for _, v := range p.VertexPositions() {
		if t := b.tiles[v.Coord]; t != nil {
			if bl, ok := t.building(v.Dir); ok {
				return bl, true
			}
		}
	}
	return Building{}, false
}

// Harbor returns the harbor attached to the vertex at p.
func (b *Board) Harbor(p Position) (Harbor, bool) {
	for _, v := range p.VertexPositions() {
		if t := b.tiles[v.Coord]; t != nil {
			if h, ok := t.harbor(v.Dir); ok {
				return h, true
			}
		}
	}
	return HarborNone, false
}

// edgeSlot picks where a road on p is stored: the first description backed
// by a registered tile.
func (b *Board) edgeSlot(p Position) (*Tile, Direction) {
	for _, e := range p.EdgePositions() {
		if t := b.tiles[e.Coord]; t != nil {
			return t, e.Dir
		}
	}
	panic(fmt.Sprintf("world: edge %s touches no registered tile", p))
}

// vertexSlot picks where a building on p is stored: the description that
// already holds one, otherwise the first backed by a registered tile.
func (b *Board) vertexSlot(p Position) (*Tile, Direction) {
	var first *Tile
	var firstDir Direction
	for _, v := range p.VertexPositions() {
		t := b.tiles[v.Coord]
		if t == nil {
			continue
		}
		if _, ok := t.building(v.Dir); ok {
			return t, v.Dir
		}
		if first == nil {
			first, firstDir = t, v.Dir
		}
	}
	if first == nil {
		panic(fmt.Sprintf("world: vertex %s touches no registered tile", p))
	}
	return first, firstDir
}

// AddRoad places a road on the edge at p. Outside setup the road must touch
// an own building at one of its endpoints or an own road on an adjacent edge.
func (b *Board) AddRoad(p Position, road Road, setup bool) error {
	if road.Color == ColorNone {
		panic("world: road without color")
	}
	tile, dir := b.edgeSlot(p)
	if _, ok := b.Road(p); ok {
		return ErrEdgeOccupied
	}
	if !setup && !b.roadLinked(p, road.Color) {
		return ErrRoadNotLinked
	}
	tile.roads[dir] = road
	return nil
}

func (b *Board) roadLinked(p Position, c Color) bool {
	for _, v := range p.EdgeVertices() {
		if bl, ok := b.Building(v); ok && bl.Color == c {
			return true
		}
	}
	for _, e := range p.AdjacentEdges() {
		if r, ok := b.Road(e); ok && r.Color == c {
			return true
		}
	}
	return false
}

// AddBuilding places a building on the vertex at p. A settlement needs an
// empty vertex with empty neighbors and, outside setup, an own road touching
// it. A city only ever replaces an own settlement.
func (b *Board) AddBuilding(p Position, bl Building, setup bool) error {
	if bl.Color == ColorNone {
		panic("world: building without color")
	}
	tile, dir := b.vertexSlot(p)
	present, occupied := b.Building(p)

	switch bl.Type {
	case Settlement:
		if occupied {
			return ErrVertexOccupied
		}
		for _, v := range p.AdjacentVertices() {
			if _, ok := b.Building(v); ok {
				return ErrDistanceRule
			}
		}
		if !setup && !b.vertexHasRoad(p, bl.Color) {
			return ErrBuildingIsolate
		}
	case City:
		if !occupied || present.Color != bl.Color || present.Type != Settlement {
			return ErrNoSettlement
		}
	default:
		panic(fmt.Sprintf("world: invalid building type %d", bl.Type))
	}

	tile.buildings[dir] = bl
	return nil
}

func (b *Board) vertexHasRoad(p Position, c Color) bool {
	for _, e := range p.VertexEdges() {
		if r, ok := b.Road(e); ok && r.Color == c {
			return true
		}
	}
	return false
}

// PlacedBuilding is a building together with where it stands.
type PlacedBuilding struct {
	Position Position `json:"position"`
	Building Building `json:"building"`
}

// Buildings lists every building of color c, once each.
func (b *Board) Buildings(c Color) []PlacedBuilding {
	var out []PlacedBuilding
	for _, coord := range b.Coordinates() {
		t := b.tiles[coord]
		for _, d := range Directions {
			if bl, ok := t.building(d); ok && bl.Color == c {
				out = append(out, PlacedBuilding{Position: Position{coord, d}, Building: bl})
			}
		}
	}
	return out
}

// Roads lists the canonical edge of every road of color c.
func (b *Board) Roads(c Color) []Position {
	var out []Position
	for _, coord := range b.Coordinates() {
		t := b.tiles[coord]
		for _, d := range Directions {
			if r, ok := t.road(d); ok && r.Color == c {
				out = append(out, Position{coord, d}.CanonicalEdge())
			}
		}
	}
	return out
}

// TileBuildings returns the buildings on the six corners of the tile at coord.
func (b *Board) TileBuildings(coord HexCoord) []Building {
	var out []Building
	for _, d := range Directions {
		if bl, ok := b.Building(Position{coord, d}); ok {
			out = append(out, bl)
		}
	}
	return out
}

// HasHarbor reports whether c owns a building on a vertex carrying h.
func (b *Board) HasHarbor(c Color, h Harbor) bool {
	if h == HarborNone {
		return false
	}
	for _, pb := range b.Buildings(c) {
		if got, ok := b.Harbor(pb.Position); ok && got == h {
			return true
		}
	}
	return false
}

// String returns a summary of the board.
func (b *Board) String() string {
	return fmt.Sprintf("Board(tiles=%d, robber=%s)", len(b.tiles), b.robber)
}
