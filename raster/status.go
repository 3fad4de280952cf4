package raster

// Boundary-condition state. Node statuses are the only mutable part of
// a Grid; every mutation bumps the monotonically increasing boundary
// version, which is how downstream flow directors detect that their
// cached active-link sets have gone stale.

// Status returns the boundary status of node n.
func (g *Grid) Status(n Node) NodeStatus {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status[n]
}

// Statuses returns the per-node status array. The slice is live: it
// reflects later boundary mutations. Treat it as read-only and mutate
// only through SetStatus and friends, which keep the boundary version
// in step.
func (g *Grid) Statuses() []NodeStatus { return g.status }

// BoundaryVersion returns the current boundary configuration version.
// It starts at 1 and increases by one on every status mutation; it
// never decreases.
func (g *Grid) BoundaryVersion() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.version
}

// SetStatus assigns status s to node n and advances the boundary
// version. Returns ErrNodeOutOfRange if n is not a grid node.
func (g *Grid) SetStatus(n Node, s NodeStatus) error {
	if int(n) < 0 || int(n) >= g.NumNodes() {
		return ErrNodeOutOfRange
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.status[n] = s
	g.version++
	return nil
}

// SetPerimeterStatus assigns status s to every perimeter node in one
// step (one version bump, not one per node).
func (g *Grid) SetPerimeterStatus(s NodeStatus) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, b := range g.BoundaryNodes() {
		g.status[b] = s
	}
	g.version++
}

// CloseSides sets every node on the selected perimeter sides to
// StatusClosed, leaving the remaining sides untouched. The top and
// bottom sides span whole rows; the left and right sides span only the
// rows strictly between them, so corner nodes belong to the top/bottom
// sides and an open bottom row stays open corner to corner. One version
// bump covers the whole call.
//
// CloseSides(SideRight|SideTop|SideLeft) is the usual way to leave a
// single open outlet edge for a drainage experiment.
func (g *Grid) CloseSides(sides Side) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if sides&SideRight != 0 {
		for r := 1; r < g.rows-1; r++ {
			g.status[g.Index(r, g.cols-1)] = StatusClosed
		}
	}
	if sides&SideTop != 0 {
		for c := 0; c < g.cols; c++ {
			g.status[g.Index(g.rows-1, c)] = StatusClosed
		}
	}
	if sides&SideLeft != 0 {
		for r := 1; r < g.rows-1; r++ {
			g.status[g.Index(r, 0)] = StatusClosed
		}
	}
	if sides&SideBottom != 0 {
		for c := 0; c < g.cols; c++ {
			g.status[g.Index(0, c)] = StatusClosed
		}
	}
	g.version++
}

// BaseLevelNodes returns the IDs of all nodes whose status is a
// base-level (fixed-value or fixed-gradient) boundary, ascending.
// Complexity: O(N).
func (g *Grid) BaseLevelNodes() []Node {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []Node
	for i, s := range g.status {
		if s.BaseLevel() {
			out = append(out, Node(i))
		}
	}
	return out
}
