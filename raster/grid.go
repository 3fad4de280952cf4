// Package raster models a rectangular lattice of nodes joined by
// orthogonal (D4) and diagonal links, the substrate for steepest-descent
// flow routing. See doc.go for the full picture.
package raster

import (
	"sync"
)

// Grid is a rectangular lattice of rows×cols nodes with precomputed,
// read-only topology tables and mutable per-node boundary statuses.
//
// Node IDs are row-major from the south-west corner: node 0 is (row 0,
// col 0), node cols-1 ends the bottom row, and node rows*cols-1 is the
// north-east corner.
//
// Link IDs partition into four consecutive ranges:
//
//	[0, V)             vertical links, tail (r,c) → head (r+1,c)
//	[V, V+H)           horizontal links, tail (r,c) → head (r,c+1)
//	[V+H, V+H+D)       north-east diagonals, tail (r,c) → head (r+1,c+1)
//	[V+H+D, V+H+2D)    north-west diagonals, tail (r,c) → head (r+1,c-1)
//
// with V = cols·(rows-1), H = rows·(cols-1), D = (rows-1)·(cols-1).
// Orthogonal links therefore always carry lower IDs than diagonal
// links, and the lowest-link-ID tie-break prefers orthogonal flow.
//
// All topology tables are built once at construction in O(N) and never
// mutated afterwards; only node statuses (and through them the cached
// active-link sets) change, guarded by an internal mutex so a single
// writer and concurrent readers of the cache stay race-free.
type Grid struct {
	rows, cols int
	spacing    float64

	nodeX, nodeY []float64

	// Link tables, all indexed by Link ID.
	linkTail []Node
	linkHead []Node
	linkLen  []float64
	numOrtho int // count of vertical+horizontal links; diagonals follow

	// Per-node link lists, ascending link ID.
	incident [][]Link
	inLinks  [][]Link
	outLinks [][]Link

	// Halo-derived per-node lookups; off-grid entries hold NoNode.
	neighbors [][4]Node // order: E, N, W, S
	diagonals [][4]Node // order: NE, NW, SW, SE

	mu      sync.Mutex
	status  []NodeStatus
	version uint64
	d4Cache activeCache
	d8Cache activeCache

	floatFields map[string][]float64
	intFields   map[string][]int
	boolFields  map[string][]bool
}

// activeCache is a version-stamped memo of one active-link derivation.
type activeCache struct {
	version uint64 // boundary version the set was derived at; 0 = never
	set     ActiveLinkSet
}

// New constructs a rows×cols Grid with the given options.
//
// Every perimeter node starts with the status chosen by
// WithBoundaryStatus (fixed-value by default); all other nodes start
// interior. The boundary version starts at 1, so a freshly built grid
// already counts as one boundary configuration.
//
// Returns ErrEmptyGrid if rows or cols is below 1, ErrBadSpacing if the
// spacing option is not positive.
//
// Complexity: O(rows·cols) time and memory.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.spacing <= 0 {
		return nil, ErrBadSpacing
	}

	n := rows * cols
	g := &Grid{
		rows:        rows,
		cols:        cols,
		spacing:     o.spacing,
		nodeX:       make([]float64, n),
		nodeY:       make([]float64, n),
		status:      make([]NodeStatus, n),
		version:     1,
		floatFields: make(map[string][]float64),
		intFields:   make(map[string][]int),
		boolFields:  make(map[string][]bool),
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c
			g.nodeX[id] = o.originX + float64(c)*o.spacing
			g.nodeY[id] = o.originY + float64(r)*o.spacing
		}
	}

	g.buildLinks()
	g.buildNeighbors()

	for _, b := range g.BoundaryNodes() {
		g.status[b] = o.perimeter
	}

	return g, nil
}

// Rows returns the number of node rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of node columns.
func (g *Grid) Cols() int { return g.cols }

// NumNodes returns the total node count rows·cols.
func (g *Grid) NumNodes() int { return g.rows * g.cols }

// Spacing returns the uniform node spacing.
func (g *Grid) Spacing() float64 { return g.spacing }

// NodeX returns the x coordinate of node n.
func (g *Grid) NodeX(n Node) float64 { return g.nodeX[n] }

// NodeY returns the y coordinate of node n.
func (g *Grid) NodeY(n Node) float64 { return g.nodeY[n] }

// Index maps grid coordinates to the row-major node ID row*Cols+col.
// Complexity: O(1).
func (g *Grid) Index(row, col int) Node {
	return Node(row*g.cols + col)
}

// Coordinate converts a node ID back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(n Node) (row, col int) {
	return int(n) / g.cols, int(n) % g.cols
}

// InBounds reports whether (row, col) lies within the lattice.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// BoundaryNodes returns the IDs of all perimeter nodes, ascending.
// Complexity: O(perimeter).
func (g *Grid) BoundaryNodes() []Node {
	if g.rows == 1 || g.cols == 1 {
		// Degenerate lattice: every node sits on the perimeter.
		all := make([]Node, g.NumNodes())
		for i := range all {
			all[i] = Node(i)
		}
		return all
	}
	out := make([]Node, 0, 2*g.rows+2*g.cols-4)
	for c := 0; c < g.cols; c++ { // bottom row
		out = append(out, g.Index(0, c))
	}
	for r := 1; r < g.rows-1; r++ { // left and right columns
		out = append(out, g.Index(r, 0), g.Index(r, g.cols-1))
	}
	for c := 0; c < g.cols; c++ { // top row
		out = append(out, g.Index(g.rows-1, c))
	}
	return out
}

// InteriorNodes returns the IDs of all non-perimeter nodes, ascending.
// Complexity: O(N).
func (g *Grid) InteriorNodes() []Node {
	if g.rows <= 2 || g.cols <= 2 {
		return nil
	}
	out := make([]Node, 0, (g.rows-2)*(g.cols-2))
	for r := 1; r < g.rows-1; r++ {
		for c := 1; c < g.cols-1; c++ {
			out = append(out, g.Index(r, c))
		}
	}
	return out
}
