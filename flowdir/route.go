package flowdir

import (
	"sync"

	"github.com/clementinemw/flowgrid/raster"
)

// RouteInput bundles the read-only, invocation-scoped inputs of one
// steepest-descent routing pass. Nothing in it is mutated by Route.
type RouteInput struct {
	// Elevation is the per-node surface snapshot; its length defines
	// the node count.
	Elevation []float64
	// Links is the active-link set derived from the current boundary
	// statuses, IDs ascending.
	Links raster.ActiveLinkSet
	// Gradients holds, per entry of Links, the signed gradient across
	// that link: positive = uphill from tail to head.
	Gradients []float64
	// BaseLevel lists the nodes that may absorb flow without draining
	// further (fixed-value and fixed-gradient boundaries).
	BaseLevel []raster.Node
	// NumLinks is the size of the grid's full link table; link-indexed
	// scratch masks are sized by it.
	NumLinks int
	// Incident returns the links touching a node, in ascending link ID
	// order — the order that fixes tie-breaking.
	Incident func(n raster.Node) []raster.Link
	// Workers shards the per-node loop across goroutines when > 1.
	Workers int
}

// Route computes single-path steepest-descent flow directions and
// writes them into out, fully overwriting all four arrays.
//
// Per node n, independently of every other node:
//
//  1. Scan n's incident links in ascending link ID order, keeping only
//     active ones.
//  2. A link is a candidate iff its gradient points downhill away from
//     n; the outgoing magnitude is (elev[n]−elev[m])/length, already
//     embodied in the signed per-link gradient.
//  3. The maximum magnitude wins; on a tie the first (lowest-ID) link
//     encountered wins, so orthogonal links beat equally steep
//     diagonals by construction of the link numbering.
//  4. No candidate: n receives from itself with slope 0 and no link,
//     and is flagged a sink unless it is base level.
//  5. Base-level nodes always self-receive and are never sinks, even
//     when a downhill neighbor exists.
//
// The pass is embarrassingly parallel: each node reads only the shared
// frozen inputs and writes only its own output slots, so Workers > 1
// shards the node range with no locking and bit-identical results.
//
// Returns ErrTopologyOutOfSync if Links references nodes or links
// outside the tables, or if Gradients is not aligned with Links; out is
// left unpublished (partially overwritten scratch, never exposed by the
// Director) in that case.
//
// Complexity: O(NumLinks + N·d) time, O(NumLinks) scratch memory,
// where d ≤ 8 is the incident-link count.
func Route(in RouteInput, out *Result) error {
	n := len(in.Elevation)

	// Invariant sweep before touching out: a desynced set is fatal.
	if in.Incident == nil {
		return ErrTopologyOutOfSync
	}
	if len(in.Gradients) != in.Links.Len() || len(in.Links.Tails) != in.Links.Len() || len(in.Links.Heads) != in.Links.Len() {
		return ErrTopologyOutOfSync
	}
	for i, l := range in.Links.IDs {
		if int(l) < 0 || int(l) >= in.NumLinks {
			return ErrTopologyOutOfSync
		}
		if t, h := in.Links.Tails[i], in.Links.Heads[i]; int(t) < 0 || int(t) >= n || int(h) < 0 || int(h) >= n {
			return ErrTopologyOutOfSync
		}
	}
	for _, b := range in.BaseLevel {
		if int(b) < 0 || int(b) >= n {
			return ErrTopologyOutOfSync
		}
	}

	out.reset(n)

	// Link-indexed views of the active set: activity mask, signed
	// gradient and tail node per link ID.
	active := make([]bool, in.NumLinks)
	grad := make([]float64, in.NumLinks)
	tail := make([]raster.Node, in.NumLinks)
	head := make([]raster.Node, in.NumLinks)
	for i, l := range in.Links.IDs {
		active[l] = true
		grad[l] = in.Gradients[i]
		tail[l] = in.Links.Tails[i]
		head[l] = in.Links.Heads[i]
	}

	base := make([]bool, n)
	for _, b := range in.BaseLevel {
		base[b] = true
	}

	routeRange := func(lo, hi int) {
		for id := lo; id < hi; id++ {
			node := raster.Node(id)
			if base[id] {
				// Base level absorbs flow; it never drains further.
				out.Receiver[id] = id
				out.SteepestSlope[id] = 0
				out.LinkToReceiver[id] = int(raster.NoLink)
				out.Sink[id] = false
				continue
			}
			best := 0.0
			bestLink := raster.NoLink
			bestRecv := id
			for _, l := range in.Incident(node) {
				if !active[l] {
					continue
				}
				// Downhill magnitude leaving this node across l.
				var down float64
				var m raster.Node
				if tail[l] == node {
					down = -grad[l]
					m = head[l]
				} else {
					down = grad[l]
					m = tail[l]
				}
				if down > best {
					best = down
					bestLink = l
					bestRecv = int(m)
				}
			}
			out.Receiver[id] = bestRecv
			out.SteepestSlope[id] = best
			out.LinkToReceiver[id] = int(bestLink)
			out.Sink[id] = bestRecv == id
		}
	}

	if in.Workers > 1 && n > 1 {
		workers := in.Workers
		if workers > n {
			workers = n
		}
		var wg sync.WaitGroup
		chunk := (n + workers - 1) / workers
		for lo := 0; lo < n; lo += chunk {
			hi := lo + chunk
			if hi > n {
				hi = n
			}
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				routeRange(lo, hi)
			}(lo, hi)
		}
		wg.Wait()
	} else {
		routeRange(0, n)
	}

	return nil
}
