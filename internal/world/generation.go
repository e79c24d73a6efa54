// Board generation using simplex noise.
// Resources are dealt out in noise order so that like tiles cluster, number
// tokens are shuffled from the standard set and harbors ring the coast.
package world

import (
	"math"
	"math/rand"
	"sort"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds board generation parameters.
type GenConfig struct {
	Radius int   // Board radius (2 gives the classic 19 tiles)
	Seed   int64 // Random seed (0 = random)
}

// DefaultGenConfig returns the classic board.
func DefaultGenConfig() GenConfig {
	return GenConfig{Radius: 2}
}

// resourceMix is the classic 19-tile distribution, desert included.
var resourceMix = []Resource{
	ResourceLumber, ResourceLumber, ResourceLumber, ResourceLumber,
	ResourceWool, ResourceWool, ResourceWool, ResourceWool,
	ResourceGrain, ResourceGrain, ResourceGrain, ResourceGrain,
	ResourceBrick, ResourceBrick, ResourceBrick,
	ResourceOre, ResourceOre, ResourceOre,
	ResourceNothing,
}

// numberTokens is the classic token set for the 18 producing tiles.
var numberTokens = []int{5, 2, 6, 3, 8, 10, 9, 12, 11, 4, 8, 10, 9, 4, 5, 6, 3, 11}

// harborMix is the classic nine harbors.
var harborMix = []Harbor{
	HarborAny, HarborBrick, HarborAny, HarborLumber, HarborAny,
	HarborOre, HarborGrain, HarborAny, HarborWool,
}

// Generate creates a board with resources, numbers, harbors and the robber
// on the desert.
func Generate(cfg GenConfig) *Board {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	if cfg.Radius < 1 {
		cfg.Radius = 1
	}
	rng := rand.New(rand.NewSource(seed))
	noise := opensimplex.NewNormalized(seed)

	type scored struct {
		coord HexCoord
		value float64
	}
	var cells []scored
	origin := HexCoord{}
	for q := -cfg.Radius; q <= cfg.Radius; q++ {
		for r := -cfg.Radius; r <= cfg.Radius; r++ {
			coord := HexCoord{Q: q, R: r}
			if Distance(origin, coord) > cfg.Radius {
				continue
			}
			// Hex axial → cartesian: x = q + r*0.5, y = r * sqrt(3)/2
			x := float64(q) + float64(r)*0.5
			y := float64(r) * math.Sqrt(3.0) / 2.0
			v := octaveNoise(noise, x, y, 3, 0.35, 0.5) + rng.Float64()*0.05
			cells = append(cells, scored{coord, v})
		}
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].value < cells[j].value })

	// Larger boards repeat the producing mix; there is always one desert.
	producing := resourceMix[:len(resourceMix)-1]
	pool := []Resource{ResourceNothing}
	for i := 0; len(pool) < len(cells); i++ {
		pool = append(pool, producing[i%len(producing)])
	}
	sort.SliceStable(pool, func(i, j int) bool { return pool[i] < pool[j] })

	tokens := make([]int, 0, len(cells)-1)
	for len(tokens) < len(cells)-1 {
		tokens = append(tokens, numberTokens[len(tokens)%len(numberTokens)])
	}
	rng.Shuffle(len(tokens), func(i, j int) { tokens[i], tokens[j] = tokens[j], tokens[i] })

	b := NewBuilder()
	for i, cell := range cells {
		res := pool[i]
		if res == ResourceNothing {
			b.AddTile(cell.coord, NewTile(ResourceNothing, 7))
			b.WithRobber(cell.coord)
			continue
		}
		b.AddTile(cell.coord, NewTile(res, tokens[0]))
		tokens = tokens[1:]
	}
	placeHarbors(b, cfg.Radius)

	return b.Build()
}

// placeHarbors attaches harbors to both corners of every other outward
// facing side around the outer ring.
func placeHarbors(b *Builder, radius int) {
	var coast []Position
	for _, coord := range ringCoords(radius) {
		for _, d := range Directions {
			rel := edgeTable[d]
			if _, ok := b.tiles[coord.Add(rel.dq, rel.dr)]; !ok {
				coast = append(coast, Position{coord, d})
			}
		}
	}
	for i, h := 0, 0; i < len(coast); i += 3 {
		ends := coast[i].EdgeVertices()
		if harborNear(b, ends[0]) || harborNear(b, ends[1]) {
			continue
		}
		tile := b.tiles[coast[i].Coord]
		tile.WithHarbor(ends[0].Dir, harborMix[h%len(harborMix)])
		tile.WithHarbor(ends[1].Dir, harborMix[h%len(harborMix)])
		h++
	}
}

// harborNear reports whether p or any vertex next to it already has a harbor.
func harborNear(b *Builder, p Position) bool {
	adj := p.AdjacentVertices()
	for _, q := range append([]Position{p}, adj[:]...) {
		for _, v := range q.VertexPositions() {
			if t := b.tiles[v.Coord]; t != nil {
				if _, ok := t.harbor(v.Dir); ok {
					return true
				}
			}
		}
	}
	return false
}

// ringCoords walks the outer ring clockwise starting from (0, -radius).
func ringCoords(radius int) []HexCoord {
	var out []HexCoord
	c := HexCoord{Q: 0, R: -radius}
	for _, d := range Directions {
		step := edgeTable[(d+1)%6]
		for i := 0; i < radius; i++ {
			out = append(out, c)
			c = c.Add(step.dq, step.dr)
		}
	}
	return out
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// ResourceCounts returns a summary of resource distribution.
func ResourceCounts(b *Board) map[Resource]int {
	counts := make(map[Resource]int)
	for _, t := range b.tiles {
		counts[t.Resource]++
	}
	return counts
}
