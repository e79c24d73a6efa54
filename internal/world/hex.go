// Package world provides the hex board: axial coordinates, corner/side
// addressing shared between neighboring tiles, tiles and their occupants,
// and the placement rules that read and write them.
package world

import "fmt"

// HexCoord represents a tile position on the hex grid using axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type HexCoord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate.
func (h HexCoord) S() int {
	return -h.Q - h.R
}

// Add offsets a coordinate.
func (h HexCoord) Add(dq, dr int) HexCoord {
	return HexCoord{Q: h.Q + dq, R: h.R + dr}
}

func (h HexCoord) String() string {
	return fmt.Sprintf("(%d,%d)", h.Q, h.R)
}

// Direction names one of a tile's six corners or six sides, clockwise.
// Side k runs from corner k to corner k+1.
type Direction uint8

const (
	DirOne Direction = iota
	DirTwo
	DirThree
	DirFour
	DirFive
	DirSix
)

// Directions lists all six directions in clockwise order.
var Directions = [6]Direction{DirOne, DirTwo, DirThree, DirFour, DirFive, DirSix}

var directionNames = [6]string{"one", "two", "three", "four", "five", "six"}

func (d Direction) String() string {
	if d > DirSix {
		return "unknown"
	}
	return directionNames[d]
}

// Valid reports whether d is one of the six directions.
func (d Direction) Valid() bool {
	return d <= DirSix
}

// ParseDirection maps "one".."six" (or "1".."6") to a Direction.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if s == name || s == fmt.Sprint(i+1) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Neighbors returns the six adjacent hex coordinates, indexed by the side
// they are shared across.
func (h HexCoord) Neighbors() [6]HexCoord {
	var result [6]HexCoord
	for i, rel := range edgeTable {
		result[i] = h.Add(rel.dq, rel.dr)
	}
	return result
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b HexCoord) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	// Max of the three absolute differences in cube coordinates.
	return max(dq, dr, ds)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
