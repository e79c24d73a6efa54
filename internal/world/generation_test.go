package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateClassicBoard(t *testing.T) {
	b := Generate(GenConfig{Radius: 2, Seed: 42})
	require.Equal(t, 19, b.TileCount())

	counts := ResourceCounts(b)
	assert.Equal(t, 1, counts[ResourceNothing])
	assert.Equal(t, 4, counts[ResourceLumber])
	assert.Equal(t, 4, counts[ResourceWool])
	assert.Equal(t, 4, counts[ResourceGrain])
	assert.Equal(t, 3, counts[ResourceBrick])
	assert.Equal(t, 3, counts[ResourceOre])

	robber, ok := b.Robber()
	require.True(t, ok)
	desert := b.Tile(robber)
	assert.Equal(t, ResourceNothing, desert.Resource)
	assert.Equal(t, 7, desert.Number)

	tokens := map[int]int{}
	for _, c := range b.Coordinates() {
		if tile := b.Tile(c); tile.Resource.Producing() {
			tokens[tile.Number]++
		}
	}
	want := map[int]int{}
	for _, n := range numberTokens {
		want[n]++
	}
	assert.Equal(t, want, tokens)
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(GenConfig{Radius: 2, Seed: 7})
	b := Generate(GenConfig{Radius: 2, Seed: 7})
	for _, c := range a.Coordinates() {
		require.True(t, b.Contains(c))
		assert.Equal(t, a.Tile(c).Resource, b.Tile(c).Resource, "tile %s", c)
		assert.Equal(t, a.Tile(c).Number, b.Tile(c).Number, "tile %s", c)
	}
}

func TestGenerateHarborsOnCoast(t *testing.T) {
	b := Generate(GenConfig{Radius: 2, Seed: 3})
	harbors := 0
	for _, c := range b.Coordinates() {
		for _, d := range Directions {
			if _, ok := b.Tile(c).harbor(d); ok {
				harbors++
				assert.Equal(t, 2, Distance(HexCoord{}, c), "harbor inland at %s", c)
			}
		}
	}
	assert.NotZero(t, harbors)
	assert.Zero(t, harbors%2, "harbors come in corner pairs")
}

func TestGenerateLargerBoard(t *testing.T) {
	b := Generate(GenConfig{Radius: 3, Seed: 11})
	assert.Equal(t, 37, b.TileCount())
	assert.Equal(t, 1, ResourceCounts(b)[ResourceNothing])
}

func TestRingCoords(t *testing.T) {
	for radius := 1; radius <= 3; radius++ {
		ring := ringCoords(radius)
		assert.Len(t, ring, 6*radius)
		seen := map[HexCoord]bool{}
		for _, c := range ring {
			assert.Equal(t, radius, Distance(HexCoord{}, c))
			seen[c] = true
		}
		assert.Len(t, seen, 6*radius)
	}
}
