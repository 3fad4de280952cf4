package raster

import "math"

// buildLinks fills the link tail/head/length tables and the per-node
// incident, in-link and out-link lists.
//
// Numbering follows the four consecutive ID ranges documented on Grid:
// vertical, horizontal, north-east diagonal, north-west diagonal. Every
// link is directed from its lower-row (or, for horizontal links,
// lower-column) endpoint, so "tail → head" always points north, east,
// north-east or north-west.
//
// Complexity: O(N) time and memory.
func (g *Grid) buildLinks() {
	rows, cols := g.rows, g.cols
	numVertical := cols * (rows - 1)
	numHorizontal := rows * (cols - 1)
	numDiagonal := (rows - 1) * (cols - 1)
	g.numOrtho = numVertical + numHorizontal
	total := g.numOrtho + 2*numDiagonal

	g.linkTail = make([]Node, 0, total)
	g.linkHead = make([]Node, 0, total)
	g.linkLen = make([]float64, 0, total)

	diagLen := g.spacing * math.Sqrt2

	// Vertical links: (r,c) → (r+1,c).
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols; c++ {
			g.appendLink(g.Index(r, c), g.Index(r+1, c), g.spacing)
		}
	}
	// Horizontal links: (r,c) → (r,c+1).
	for r := 0; r < rows; r++ {
		for c := 0; c < cols-1; c++ {
			g.appendLink(g.Index(r, c), g.Index(r, c+1), g.spacing)
		}
	}
	// North-east diagonals: (r,c) → (r+1,c+1).
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			g.appendLink(g.Index(r, c), g.Index(r+1, c+1), diagLen)
		}
	}
	// North-west diagonals: (r,c) → (r+1,c-1).
	for r := 0; r < rows-1; r++ {
		for c := 1; c < cols; c++ {
			g.appendLink(g.Index(r, c), g.Index(r+1, c-1), diagLen)
		}
	}

	// Per-node link lists. Links are appended in ascending ID order, so
	// each list comes out sorted, which the steepest-descent tie-break
	// depends on.
	n := g.NumNodes()
	g.incident = make([][]Link, n)
	g.inLinks = make([][]Link, n)
	g.outLinks = make([][]Link, n)
	for l := 0; l < total; l++ {
		tail, head := g.linkTail[l], g.linkHead[l]
		g.incident[tail] = append(g.incident[tail], Link(l))
		g.incident[head] = append(g.incident[head], Link(l))
		g.outLinks[tail] = append(g.outLinks[tail], Link(l))
		g.inLinks[head] = append(g.inLinks[head], Link(l))
	}
}

func (g *Grid) appendLink(tail, head Node, length float64) {
	g.linkTail = append(g.linkTail, tail)
	g.linkHead = append(g.linkHead, head)
	g.linkLen = append(g.linkLen, length)
}

// NumLinks returns the total link count, orthogonal plus diagonal.
func (g *Grid) NumLinks() int { return len(g.linkTail) }

// NumOrthogonalLinks returns the count of vertical and horizontal (D4)
// links; their IDs occupy [0, NumOrthogonalLinks).
func (g *Grid) NumOrthogonalLinks() int { return g.numOrtho }

// NumDiagonalLinks returns the count of diagonal links; their IDs
// occupy [NumOrthogonalLinks, NumLinks).
func (g *Grid) NumDiagonalLinks() int { return len(g.linkTail) - g.numOrtho }

// LinkTail returns the tail node of link l.
func (g *Grid) LinkTail(l Link) Node { return g.linkTail[l] }

// LinkHead returns the head node of link l.
func (g *Grid) LinkHead(l Link) Node { return g.linkHead[l] }

// LinkLength returns the Cartesian length of link l: spacing for
// orthogonal links, spacing·√2 for diagonal links.
func (g *Grid) LinkLength(l Link) float64 { return g.linkLen[l] }

// IsDiagonal reports whether link l joins diagonal neighbors.
func (g *Grid) IsDiagonal(l Link) bool { return int(l) >= g.numOrtho }

// IncidentLinks returns every link touching node n (as tail or head),
// in ascending link ID order. The slice is shared with the topology
// tables: treat it as read-only.
func (g *Grid) IncidentLinks(n Node) []Link { return g.incident[n] }

// OutLinks returns the links whose tail is node n, ascending.
// Read-only, like IncidentLinks.
func (g *Grid) OutLinks(n Node) []Link { return g.outLinks[n] }

// InLinks returns the links whose head is node n, ascending.
// Read-only, like IncidentLinks.
func (g *Grid) InLinks(n Node) []Link { return g.inLinks[n] }

// LinkOtherEnd returns the endpoint of link l that is not n. The
// result is unspecified if n is not an endpoint of l.
func (g *Grid) LinkOtherEnd(l Link, n Node) Node {
	if g.linkTail[l] == n {
		return g.linkHead[l]
	}
	return g.linkTail[l]
}
