package world

import "fmt"

// Position is a (tile, direction) pair. Read as a corner it addresses a
// vertex; read as a side it addresses an edge. The same physical vertex has
// up to three descriptions and the same edge up to two; the tables below map
// between them. None of the lookups check whether a tile is registered.
type Position struct {
	Coord HexCoord  `json:"coord"`
	Dir   Direction `json:"dir"`
}

// At builds a Position from raw axial values.
func At(q, r int, d Direction) Position {
	return Position{Coord: HexCoord{Q: q, R: r}, Dir: d}
}

func (p Position) String() string {
	return fmt.Sprintf("%s/%s", p.Coord, p.Dir)
}

// rel is a position relative to the tile a lookup starts from.
type rel struct {
	dq, dr int
	dir    Direction
}

func (p Position) offset(x rel) Position {
	return Position{Coord: p.Coord.Add(x.dq, x.dr), Dir: x.dir}
}

// vertexTable: for corner k, the two other tiles sharing it and the corner
// index as seen from each of them.
var vertexTable = [6][2]rel{
	DirOne:   {{0, -1, DirThree}, {1, -1, DirFive}},
	DirTwo:   {{1, -1, DirFour}, {1, 0, DirSix}},
	DirThree: {{1, 0, DirFive}, {0, 1, DirOne}},
	DirFour:  {{0, 1, DirSix}, {-1, 1, DirTwo}},
	DirFive:  {{-1, 1, DirOne}, {-1, 0, DirThree}},
	DirSix:   {{-1, 0, DirTwo}, {0, -1, DirFour}},
}

// edgeTable: for side k, the tile across it and the side index it uses.
var edgeTable = [6]rel{
	DirOne:   {1, -1, DirFour},
	DirTwo:   {1, 0, DirFive},
	DirThree: {0, 1, DirSix},
	DirFour:  {-1, 1, DirOne},
	DirFive:  {-1, 0, DirTwo},
	DirSix:   {0, -1, DirThree},
}

// adjacentVertexTable: the three corners one edge away from corner k.
var adjacentVertexTable = [6][3]rel{
	DirOne:   {{0, 0, DirSix}, {0, 0, DirTwo}, {0, -1, DirTwo}},
	DirTwo:   {{0, 0, DirOne}, {0, 0, DirThree}, {1, -1, DirThree}},
	DirThree: {{0, 0, DirTwo}, {0, 0, DirFour}, {1, 0, DirFour}},
	DirFour:  {{0, 0, DirThree}, {0, 0, DirFive}, {0, 1, DirFive}},
	DirFive:  {{0, 0, DirFour}, {0, 0, DirSix}, {-1, 1, DirSix}},
	DirSix:   {{0, 0, DirFive}, {0, 0, DirOne}, {-1, 0, DirOne}},
}

// adjacentEdgeTable: the four sides sharing an endpoint with side k. The
// first and third share corner k, the second and fourth share corner k+1.
var adjacentEdgeTable = [6][4]rel{
	DirOne:   {{0, 0, DirSix}, {0, 0, DirTwo}, {1, -1, DirFive}, {1, -1, DirThree}},
	DirTwo:   {{0, 0, DirOne}, {0, 0, DirThree}, {1, 0, DirSix}, {1, 0, DirFour}},
	DirThree: {{0, 0, DirTwo}, {0, 0, DirFour}, {0, 1, DirOne}, {0, 1, DirFive}},
	DirFour:  {{0, 0, DirThree}, {0, 0, DirFive}, {-1, 1, DirTwo}, {-1, 1, DirSix}},
	DirFive:  {{0, 0, DirFour}, {0, 0, DirSix}, {-1, 0, DirThree}, {-1, 0, DirOne}},
	DirSix:   {{0, 0, DirFive}, {0, 0, DirOne}, {0, -1, DirFour}, {0, -1, DirTwo}},
}

// vertexEdgeTable: the three sides meeting at corner k.
var vertexEdgeTable = [6][3]rel{
	DirOne:   {{0, 0, DirOne}, {0, 0, DirSix}, {1, -1, DirFive}},
	DirTwo:   {{0, 0, DirTwo}, {0, 0, DirOne}, {1, 0, DirSix}},
	DirThree: {{0, 0, DirThree}, {0, 0, DirTwo}, {0, 1, DirOne}},
	DirFour:  {{0, 0, DirFour}, {0, 0, DirThree}, {-1, 1, DirTwo}},
	DirFive:  {{0, 0, DirFive}, {0, 0, DirFour}, {-1, 0, DirThree}},
	DirSix:   {{0, 0, DirSix}, {0, 0, DirFive}, {0, -1, DirFour}},
}

// edgeVertexTable: the two corners bounding side k.
var edgeVertexTable = [6][2]rel{
	DirOne:   {{0, 0, DirOne}, {0, 0, DirTwo}},
	DirTwo:   {{0, 0, DirTwo}, {0, 0, DirThree}},
	DirThree: {{0, 0, DirThree}, {0, 0, DirFour}},
	DirFour:  {{0, 0, DirFour}, {0, 0, DirFive}},
	DirFive:  {{0, 0, DirFive}, {0, 0, DirSix}},
	DirSix:   {{0, 0, DirSix}, {0, 0, DirOne}},
}

func (p Position) mustValid() {
	if !p.Dir.Valid() {
		panic(fmt.Sprintf("world: invalid direction %d", p.Dir))
	}
}

// VertexPositions returns every description of the vertex at p, p first.
func (p Position) VertexPositions() [3]Position {
	p.mustValid()
	t := vertexTable[p.Dir]
	return [3]Position{p, p.offset(t[0]), p.offset(t[1])}
}

// EdgePositions returns both descriptions of the edge at p, p first.
func (p Position) EdgePositions() [2]Position {
	p.mustValid()
	return [2]Position{p, p.offset(edgeTable[p.Dir])}
}

// VertexCoords returns the three tiles touching the vertex at p.
func (p Position) VertexCoords() [3]HexCoord {
	vs := p.VertexPositions()
	return [3]HexCoord{vs[0].Coord, vs[1].Coord, vs[2].Coord}
}

// AdjacentVertices returns the three vertices one edge away from the vertex at p.
func (p Position) AdjacentVertices() [3]Position {
	p.mustValid()
	var out [3]Position
	for i, x := range adjacentVertexTable[p.Dir] {
		out[i] = p.offset(x)
	}
	return out
}

// AdjacentEdges returns the four edges sharing an endpoint with the edge at p.
func (p Position) AdjacentEdges() [4]Position {
	p.mustValid()
	var out [4]Position
	for i, x := range adjacentEdgeTable[p.Dir] {
		out[i] = p.offset(x)
	}
	return out
}

// VertexEdges returns the three edges touching the vertex at p.
func (p Position) VertexEdges() [3]Position {
	p.mustValid()
	var out [3]Position
	for i, x := range vertexEdgeTable[p.Dir] {
		out[i] = p.offset(x)
	}
	return out
}

// EdgeVertices returns the two endpoints of the edge at p.
func (p Position) EdgeVertices() [2]Position {
	p.mustValid()
	t := edgeVertexTable[p.Dir]
	return [2]Position{p.offset(t[0]), p.offset(t[1])}
}

func (p Position) less(o Position) bool {
	if p.Coord.Q != o.Coord.Q {
		return p.Coord.Q < o.Coord.Q
	}
	if p.Coord.R != o.Coord.R {
		return p.Coord.R < o.Coord.R
	}
	return p.Dir < o.Dir
}

// CanonicalVertex returns the smallest description of the vertex at p, so
// that equivalent descriptions compare equal.
func (p Position) CanonicalVertex() Position {
	best := p
	for _, v := range p.VertexPositions() {
		if v.less(best) {
			best = v
		}
	}
	return best
}

// CanonicalEdge returns the smallest description of the edge at p.
func (p Position) CanonicalEdge() Position {
	best := p
	for _, e := range p.EdgePositions() {
		if e.less(best) {
			best = e
		}
	}
	return best
}

// SameVertex reports whether p and o describe the same vertex.
func (p Position) SameVertex(o Position) bool {
	return p.CanonicalVertex() == o.CanonicalVertex()
}

// SameEdge reports whether p and o describe the same edge.
func (p Position) SameEdge(o Position) bool {
	return p.CanonicalEdge() == o.CanonicalEdge()
}
