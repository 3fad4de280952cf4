package raster

// buildNeighbors fills the per-node 4-neighbor and diagonal lookup
// tables from a halo-padded index lattice: the grid is embedded in a
// (rows+2)×(cols+2) frame whose ring cells hold NoNode, so every node,
// boundary or not, reads its eight neighbors with the same arithmetic
// and off-grid positions resolve to the sentinel instead of wrapping.
//
// Complexity: O(N) time and memory.
func (g *Grid) buildNeighbors() {
	hCols := g.cols + 2
	halo := make([]Node, (g.rows+2)*hCols)
	for i := range halo {
		halo[i] = NoNode
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			halo[(r+1)*hCols+(c+1)] = g.Index(r, c)
		}
	}
	at := func(hr, hc int) Node { return halo[hr*hCols+hc] }

	n := g.NumNodes()
	g.neighbors = make([][4]Node, n)
	g.diagonals = make([][4]Node, n)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			id := g.Index(r, c)
			hr, hc := r+1, c+1
			g.neighbors[id] = [4]Node{
				at(hr, hc+1), // E
				at(hr+1, hc), // N
				at(hr, hc-1), // W
				at(hr-1, hc), // S
			}
			g.diagonals[id] = [4]Node{
				at(hr+1, hc+1), // NE
				at(hr+1, hc-1), // NW
				at(hr-1, hc-1), // SW
				at(hr-1, hc+1), // SE
			}
		}
	}
}

// Neighbors4 returns the orthogonal neighbors of node n in the fixed
// order [E, N, W, S]; off-grid entries hold NoNode.
// Complexity: O(1).
func (g *Grid) Neighbors4(n Node) [4]Node { return g.neighbors[n] }

// Diagonals returns the diagonal neighbors of node n in the fixed
// order [NE, NW, SW, SE]; off-grid entries hold NoNode.
// Complexity: O(1).
func (g *Grid) Diagonals(n Node) [4]Node { return g.diagonals[n] }

// HasBoundaryNeighbor reports whether any of the eight neighbors of
// node n is off-grid or a non-interior node.
// Complexity: O(1).
func (g *Grid) HasBoundaryNeighbor(n Node) bool {
	for _, m := range g.neighbors[n] {
		if !m.Valid() || g.status[m] != StatusInterior {
			return true
		}
	}
	for _, m := range g.diagonals[n] {
		if !m.Valid() || g.status[m] != StatusInterior {
			return true
		}
	}
	return false
}
