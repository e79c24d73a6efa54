package world

// LongestRoad returns the length of the longest continuous road of color c.
//
// Every owned edge is tried as a start, leaving through either endpoint. The
// walk continues through the far endpoint of each edge and may reuse a vertex
// but never an edge already on the current path, so a closed ring of N edges
// counts N. The result is recomputed from scratch on every call.
func (b *Board) LongestRoad(c Color) int {
	owned := make(map[Position]bool)
	for _, e := range b.Roads(c) {
		owned[e] = true
	}

	best := 0
	used := make(map[Position]bool, len(owned))
	for e := range owned {
		for _, start := range e.EdgeVertices() {
			used[e] = true
			if n := 1 + b.walkRoad(e, start.CanonicalVertex(), owned, used); n > best {
				best = n
			}
			delete(used, e)
		}
	}
	return best
}

// walkRoad extends a path that has just crossed edge e starting from vertex
// from, returning the most edges it can still add.
func (b *Board) walkRoad(e, from Position, owned, used map[Position]bool) int {
	ends := e.EdgeVertices()
	far := ends[0].CanonicalVertex()
	if far == from {
		far = ends[1].CanonicalVertex()
	}

	best := 0
	for _, next := range far.VertexEdges() {
		next = next.CanonicalEdge()
		if !owned[next] || used[next] {
			continue
		}
		used[next] = true
		if n := 1 + b.walkRoad(next, far, owned, used); n > best {
			best = n
		}
		delete(used, next)
	}
	return best
}
